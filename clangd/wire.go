package clangd

import (
	"encoding/json"

	"github.com/juju/errors"
)

// wireSemanticToken is the JSON shape this package expects for one semantic
// token: LSP type/modifier names spelled out, rather than clangd's
// bit-packed delta encoding, since producing that packed form is the
// language server's job, not this highlighter's.
type wireSemanticToken struct {
	Line      int      `json:"line"`
	Column    int      `json:"column"`
	Length    int      `json:"length"`
	Type      string   `json:"type"`
	Modifiers []string `json:"modifiers"`
	// ColorVariant and LastReference are optional extensions for the
	// color-variance feature (see SemanticTokenColorVariance).
	ColorVariant  int  `json:"colorVariant"`
	LastReference bool `json:"lastReference"`
}

// DecodeSemanticTokensJSON parses a JSON array of wire-format semantic
// tokens into the sorted []SemanticToken slice Highlight expects. Tokens
// must already be in position order in the input; this function does not
// re-sort them, matching the LSP guarantee that servers emit them in
// order.
func DecodeSemanticTokensJSON(data []byte) ([]SemanticToken, error) {
	var wire []wireSemanticToken
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, errors.Annotate(err, "decode semantic tokens")
	}

	result := make([]SemanticToken, 0, len(wire))
	for _, w := range wire {
		// Unknown type names fall back to TokenUnknown and unknown modifier
		// names are ignored, matching clangd's own forward-compatibility
		// behavior for LSP servers newer than this client.
		typ, ok := ParseSemanticTokenType(w.Type)
		if !ok {
			typ = TokenUnknown
		}

		var mods SemanticTokenModifiers
		for _, name := range w.Modifiers {
			ApplySemanticTokenModifier(&mods, name)
		}

		result = append(result, SemanticToken{
			Pos:    Position{Line: w.Line, Column: w.Column},
			Length: w.Length,
			Info:   SemanticTokenInfo{Type: typ, Modifiers: mods},
			ColorVariance: SemanticTokenColorVariance{
				ColorVariant:  w.ColorVariant,
				LastReference: w.LastReference,
			},
		})
	}

	return result, nil
}
