package clangd

import (
	"strings"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func concatOrigins(toks []CodeToken) string {
	var b strings.Builder
	for _, tk := range toks {
		b.WriteString(tk.Origin.Str)
	}
	return b.String()
}

func syntaxKinds(toks []CodeToken) []SyntaxToken {
	kinds := make([]SyntaxToken, len(toks))
	for i, tk := range toks {
		kinds[i] = tk.Syntax
	}
	return kinds
}

func TestFillWithTokensReconstructsSourceVerbatim(t *testing.T) {
	code := `#include <cstdio>

int main() {
  // say hi
  printf("hi %d\n", 1);
  return 0;
}
`
	toks, err := NewTokenizer(code, []string{"int", "return"}).FillWithTokens(true)
	require.NoError(t, err)
	assert.Equal(t, code, concatOrigins(toks))
	assert.Equal(t, EndOfInput, toks[len(toks)-1].Syntax)
}

func TestTokenizerRecognizesKeywords(t *testing.T) {
	toks, err := NewTokenizer("int x;", []string{"int"}).FillWithTokens(false)
	require.NoError(t, err)

	require.True(t, len(toks) > 0)
	assert.Equal(t, Keyword, toks[0].Syntax)
	assert.Equal(t, "int", toks[0].Origin.Str)
}

func TestTokenizerRecognizesSplicedKeyword(t *testing.T) {
	code := "in\\\nt x;"
	toks, err := NewTokenizer(code, []string{"int"}).FillWithTokens(false)
	require.NoError(t, err)

	require.True(t, len(toks) > 0)
	assert.Equal(t, Keyword, toks[0].Syntax)
	assert.Equal(t, "in\\\nt", toks[0].Origin.Str)
}

func TestTokenizerPreprocessorIncludeHeaderFile(t *testing.T) {
	toks, err := NewTokenizer("#include <vector>\n", nil).FillWithTokens(false)
	require.NoError(t, err)

	var sawHash, sawDirective, sawHeader bool
	for _, tk := range toks {
		switch {
		case tk.Syntax == PreprocessorHash:
			sawHash = true
		case tk.Syntax == PreprocessorDirective && tk.Origin.Str == "include":
			sawDirective = true
		case tk.Syntax == PreprocessorHeaderFile && tk.Origin.Str == "<vector>":
			sawHeader = true
		}
	}
	assert.True(t, sawHash)
	assert.True(t, sawDirective)
	assert.True(t, sawHeader)
}

func TestTokenizerDefineWithMacroParams(t *testing.T) {
	toks, err := NewTokenizer("#define ADD(a, b) ((a) + (b))\n", nil).FillWithTokens(false)
	require.NoError(t, err)

	var macroName string
	params := map[string]bool{}
	var sawParamUse bool
	for _, tk := range toks {
		switch tk.Syntax {
		case PreprocessorMacro:
			macroName = tk.Origin.Str
		case PreprocessorMacroParam:
			params[tk.Origin.Str] = true
			sawParamUse = true
		}
	}
	assert.Equal(t, "ADD", macroName)
	assert.True(t, params["a"])
	assert.True(t, params["b"])
	assert.True(t, sawParamUse)
}

func TestTokenizerRawStringLiteralRoundTrip(t *testing.T) {
	code := `auto s = R"delim(hello "world")delim";`
	toks, err := NewTokenizer(code, []string{"auto"}).FillWithTokens(false)
	require.NoError(t, err)
	assert.Equal(t, code, concatOrigins(toks))

	var sawPrefix, sawBody bool
	for _, tk := range toks {
		if tk.Syntax == LiteralPrefix && tk.Origin.Str == "R" {
			sawPrefix = true
		}
		if tk.Syntax == LiteralString && tk.Origin.Str == `hello "world"` {
			sawBody = true
		}
	}
	assert.True(t, sawPrefix)
	assert.True(t, sawBody)
}

func TestTokenizerEscapeSequenceAndFormatSequence(t *testing.T) {
	code := `printf("%*ld\n", width, value);`
	toks, err := NewTokenizer(code, nil).FillWithTokens(true)
	require.NoError(t, err)

	var sawFormat, sawEscape bool
	for _, tk := range toks {
		if tk.Syntax == FormatSequence && tk.Origin.Str == "%*ld" {
			sawFormat = true
		}
		if tk.Syntax == EscapeSequence && tk.Origin.Str == `\n` {
			sawEscape = true
		}
	}
	assert.True(t, sawFormat)
	assert.True(t, sawEscape)
}

func TestTokenizerUserDefinedLiteralSuffix(t *testing.T) {
	code := `auto d = 3.0_deg;`
	toks, err := NewTokenizer(code, []string{"auto"}).FillWithTokens(false)
	require.NoError(t, err)

	var sawSuffix bool
	for _, tk := range toks {
		if tk.Syntax == LiteralSuffix && tk.Origin.Str == "_deg" {
			sawSuffix = true
		}
	}
	assert.True(t, sawSuffix)
}

func TestTokenizerMultiLineCommentSpansLines(t *testing.T) {
	code := "/* disabled\nacross lines */\nint x;\n"
	toks, err := NewTokenizer(code, []string{"int"}).FillWithTokens(false)
	require.NoError(t, err)
	assert.Equal(t, code, concatOrigins(toks))

	var sawBegin, sawEnd bool
	for _, tk := range toks {
		if tk.Syntax == CommentBeginMulti {
			sawBegin = true
		}
		if tk.Syntax == CommentEnd {
			sawEnd = true
		}
	}
	assert.True(t, sawBegin)
	assert.True(t, sawEnd)
}

func TestTokenizerTodoTagInsideSingleLineComment(t *testing.T) {
	code := "// TODO: fix this\n"
	toks, err := NewTokenizer(code, nil).FillWithTokens(false)
	require.NoError(t, err)

	var sawTag bool
	for _, tk := range toks {
		if tk.Syntax == CommentTagTodo {
			sawTag = true
		}
	}
	assert.True(t, sawTag)
}

func TestTokenizerSplicedIdentifierReconstructsVerbatim(t *testing.T) {
	code := "void func\\\ntion();\n"
	toks, err := NewTokenizer(code, []string{"void"}).FillWithTokens(false)
	require.NoError(t, err)
	assert.Equal(t, code, concatOrigins(toks))

	var sawIdent bool
	for _, tk := range toks {
		if tk.Syntax == Identifier && tk.Origin.Str == "func\\\ntion" {
			sawIdent = true
		}
	}
	assert.True(t, sawIdent)
}

func TestTokenizerUnterminatedStringReturnsSyntaxError(t *testing.T) {
	_, err := NewTokenizer(`"unterminated`, nil).FillWithTokens(false)
	require.Error(t, err)

	cerr, ok := errors.Cause(err).(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrSyntax, cerr.Reason)
}
