// Package clangd implements the semantic-token-driven highlighter mode: a
// C-family tokenizer over the raw source, reconciled against an external
// stream of LSP semantic tokens supplied by a language server.
package clangd

// SemanticTokenType is the restricted set of LSP semantic token types that
// clangd actually emits, reordered from the clangd-15 "initialize" response
// for readability.
type SemanticTokenType int

const (
	TokenParameter SemanticTokenType = iota
	TokenVariable
	TokenProperty
	TokenEnumMember

	TokenFunction
	TokenMethod

	TokenClass
	TokenInterface
	TokenEnum
	TokenType

	TokenConcept
	// LSP calls this "typeParameter"; clangd reports both type parameters
	// and non-type template parameters under it.
	TokenTemplateParameter

	TokenNamespace

	// LSP calls this "comment"; clangd repurposes it to mark
	// preprocessor-disabled code, not actual comments.
	TokenDisabledCode

	TokenMacro

	TokenUnknown
)

// ParseSemanticTokenType maps an LSP token type name to its
// SemanticTokenType, reporting false for anything clangd is not known to
// emit.
func ParseSemanticTokenType(name string) (SemanticTokenType, bool) {
	switch name {
	case "variable":
		return TokenVariable, true
	case "parameter":
		return TokenParameter, true
	case "function":
		return TokenFunction, true
	case "method":
		return TokenMethod, true
	case "property":
		return TokenProperty, true
	case "class":
		return TokenClass, true
	case "interface":
		return TokenInterface, true
	case "enum":
		return TokenEnum, true
	case "enumMember":
		return TokenEnumMember, true
	case "type":
		return TokenType, true
	case "unknown":
		return TokenUnknown, true
	case "namespace":
		return TokenNamespace, true
	case "typeParameter":
		return TokenTemplateParameter, true
	case "concept":
		return TokenConcept, true
	case "macro":
		return TokenMacro, true
	case "comment":
		return TokenDisabledCode, true
	default:
		return 0, false
	}
}

// SemanticTokenScope distinguishes declarations visible at function, class,
// file or global scope. Not every token carries one: template parameters
// and disabled code never do.
type SemanticTokenScope int

const (
	ScopeNone SemanticTokenScope = iota
	ScopeFunction
	ScopeClass
	ScopeFile
	ScopeGlobal
)

// SemanticTokenModifiers mirrors the LSP modifier bitset with named fields
// instead of flags, since most modifiers are mutually exclusive in
// practice.
type SemanticTokenModifiers struct {
	IsDeclaration    bool
	IsDeprecated     bool
	IsDeduced        bool
	IsReadonly       bool
	IsStatic         bool
	IsAbstract       bool
	IsVirtual        bool
	IsDependentName  bool
	IsFromStdlib     bool
	IsOutParameter   bool
	Scope            SemanticTokenScope
}

// ApplySemanticTokenModifier looks up the mutator for an LSP modifier name
// and reports whether the name was recognized.
func ApplySemanticTokenModifier(m *SemanticTokenModifiers, name string) bool {
	switch name {
	case "declaration":
		m.IsDeclaration = true
	case "deprecated":
		m.IsDeprecated = true
	case "deduced":
		m.IsDeduced = true
	case "readonly":
		m.IsReadonly = true
	case "static":
		m.IsStatic = true
	case "abstract":
		m.IsAbstract = true
	case "virtual":
		m.IsVirtual = true
	case "dependentName":
		m.IsDependentName = true
	case "defaultLibrary":
		m.IsFromStdlib = true
	case "usedAsMutableReference":
		m.IsOutParameter = true
	case "functionScope":
		m.Scope = ScopeFunction
	case "classScope":
		m.Scope = ScopeClass
	case "fileScope":
		m.Scope = ScopeFile
	case "globalScope":
		m.Scope = ScopeGlobal
	default:
		return false
	}
	return true
}

// SemanticTokenInfo is the type+modifiers pair clangd reports for one
// identifier occurrence.
type SemanticTokenInfo struct {
	Type      SemanticTokenType
	Modifiers SemanticTokenModifiers
}

// SemanticTokenColorVariance lets the caller distinguish successive
// references to the same symbol with a different shade, e.g. alternating
// parameter colors. It has no effect on this package's own HTML output; it
// is threaded through untouched for consumers that render it themselves.
type SemanticTokenColorVariance struct {
	ColorVariant  int
	LastReference bool
}

// SemanticToken is one LSP semantic token positioned in the source buffer.
type SemanticToken struct {
	Pos            Position
	Length         int
	Info           SemanticTokenInfo
	ColorVariance  SemanticTokenColorVariance
}

// PosBegin returns the token's starting position.
func (t SemanticToken) PosBegin() Position {
	return t.Pos
}

// PosEnd returns the position just past the token, which clangd always
// reports as lying on the same line as Pos.
func (t SemanticToken) PosEnd() Position {
	return Position{Line: t.Pos.Line, Column: t.Pos.Column + t.Length}
}
