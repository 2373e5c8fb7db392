package gcc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const s6Admonition = `bad-printf.cc:6:19: warning: format '%ld' expects argument of type 'long int', but argument 4 has type 'double' [-Wformat=]`
const s6Code = `    6 |   printf ("%s: %*ld ", fieldname, column - width, value);`
const s6Underline = `      |                ~~~^                               ~~~~~`

func TestClassifySequenceS6(t *testing.T) {
	admon, ok := classifyLine(s6Admonition, nil, nil)
	require.True(t, ok)
	require.Equal(t, Admonition, admon)

	code, ok := classifyLine(s6Code, &admon, nil)
	require.True(t, ok)
	require.Equal(t, Code, code)

	n, ok := hasLineNumbering(s6Code)
	require.True(t, ok)

	underline, ok := classifyLine(s6Underline, &code, &n)
	require.True(t, ok)
	assert.Equal(t, Underline, underline)
}

func TestHasLineNumberingCorrectlyRecognizesGCCPrefix(t *testing.T) {
	n, ok := hasLineNumbering(s6Code)
	require.True(t, ok)
	assert.Equal(t, `    6 |`, s6Code[:n])
}

func TestHasLineNumberingRejectsPlainCode(t *testing.T) {
	_, ok := hasLineNumbering(`printf("hi");`)
	assert.False(t, ok)
}

func TestHighlightS6EndToEnd(t *testing.T) {
	diag := s6Admonition + "\n" + s6Code + "\n" + s6Underline + "\n"

	html, err := Highlight(diag, Options{})
	require.NoError(t, err)

	assert.Contains(t, html, `<span class="white">bad-printf.cc:6:19: </span>`)
	assert.Contains(t, html, `<span class="magenta">warning:</span>`)
	// The quote/bracket delimiter bytes themselves stay attached to the
	// surrounding normal-colored text; only the content between them takes
	// the highlight/severity color.
	assert.Contains(t, html, `<span class="white">%ld</span>`)
	assert.Contains(t, html, `<span class="white">long int</span>`)
	assert.Contains(t, html, `<span class="white">double</span>`)
	assert.Contains(t, html, `<span class="magenta">-Wformat=</span>`)
}

func TestHighlightRejectsIllegalTransition(t *testing.T) {
	_, err := Highlight("  this starts with a space but is the very first line\n", Options{})
	require.Error(t, err)
}

func TestParseUnderlineMainAndExtra(t *testing.T) {
	info := ParseUnderline(`   ~~~^      ~~~~~`)
	require.True(t, info.Main.Present())
	assert.Equal(t, 3, info.Main.FirstColumn)
	assert.Equal(t, 4, info.Main.Length)
	assert.Equal(t, 3, info.MainPivot-info.Main.FirstColumn, "pivot must be where '^' sits within the run")

	require.True(t, info.Extra1.Present())
	assert.Equal(t, 13, info.Extra1.FirstColumn)
	assert.Equal(t, 5, info.Extra1.Length)

	assert.False(t, info.Extra2.Present())
}

func concatTokens(toks []Token) string {
	var b strings.Builder
	for _, tok := range toks {
		b.WriteString(tok.Origin)
	}
	return b.String()
}

func TestParseAdmonitionTextHighlightsQuotesAndBracket(t *testing.T) {
	body := ` expected 'int' here [-Wfoo]`
	toks := parseAdmonitionText(body, AdmonitionError)

	require.Equal(t, body, concatTokens(toks), "tokens must reconstruct the input body byte for byte")

	var sawQuoted, sawBracket bool
	for _, tok := range toks {
		if tok.Origin == "int" && tok.Color == ColorHighlight {
			sawQuoted = true
		}
		if tok.Origin == "-Wfoo" && tok.Color == ColorError {
			sawBracket = true
		}
	}
	assert.True(t, sawQuoted, "expected the quoted phrase's content highlighted")
	assert.True(t, sawBracket, "expected the bracketed flag's content colored by severity")
}

func TestParseAdmonitionTextTypographicQuotes(t *testing.T) {
	body := " expected ‘int’ here"
	toks := parseAdmonitionText(body, AdmonitionNote)
	require.Equal(t, body, concatTokens(toks))

	var found bool
	for _, tok := range toks {
		if tok.Origin == "int" && tok.Color == ColorHighlight {
			found = true
		}
	}
	assert.True(t, found)
}

func TestFragmentConcatenationInvariant(t *testing.T) {
	diag := s6Admonition + "\n" + s6Code + "\n" + s6Underline + "\n"
	tok, err := NewTokenizer(diag).FillWithTokens()
	require.NoError(t, err)

	var b strings.Builder
	for _, tk := range tok {
		b.WriteString(tk.Origin)
	}
	assert.Equal(t, diag, b.String())
}
