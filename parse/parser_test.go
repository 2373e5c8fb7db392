package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentifier(t *testing.T) {
	c := NewCursor("foo_bar123 rest")
	frag := c.ParseIdentifier()
	require.Equal(t, "foo_bar123", frag.Str)

	c2 := NewCursor("123abc")
	empty := c2.ParseIdentifier()
	assert.True(t, empty.Empty())
}

func TestParseNumericLiteral(t *testing.T) {
	cases := []string{"123", "0x1F", "0b101", "1.5", "1.5e10", "0x1p4", "3'000"}
	for _, in := range cases {
		c := NewCursor(in + " ")
		frag := c.ParseNumericLiteral()
		assert.Equal(t, in, frag.Str, "input %q", in)
	}
}

func TestParseEscapeSequence(t *testing.T) {
	c := NewCursor(`\n rest`)
	frag := c.ParseEscapeSequence()
	require.Equal(t, `\n`, frag.Str)

	c2 := NewCursor(`\x41 rest`)
	frag2 := c2.ParseEscapeSequence()
	require.Equal(t, `\x41`, frag2.Str)
}

func TestParseRawStringLiteralRoundTrip(t *testing.T) {
	c := NewCursor(`R"(body)"`)

	prefix := c.ParseRawStringLiteralPrefix()
	require.Equal(t, "R", prefix.Str)

	open := c.ParseExactly('"')
	require.Equal(t, `"`, open.Str)

	delim := c.ParseRawStringLiteralDelimiterOpen()
	assert.True(t, delim.Empty()) // no delimiter characters in this literal

	openParen := c.ParseExactly('(')
	require.Equal(t, "(", openParen.Str)

	body := c.ParseRawStringLiteralBody("")
	require.Equal(t, "body", body.Str)
}

func TestParseFormatSequencePrintf(t *testing.T) {
	c := NewCursor("%*ld rest")
	frag := c.ParseFormatSequencePrintf()
	require.Equal(t, "%*ld", frag.Str)
}

func TestParseSymbolExcludesCommentOpeners(t *testing.T) {
	c := NewCursor("// comment")
	frag := c.ParseSymbol()
	assert.True(t, frag.Empty())
}

func TestCursorMonotonicityOnFailure(t *testing.T) {
	c := NewCursor("abc")
	before := c.CurrentPosition()
	frag := c.ParseExactly('z')
	assert.True(t, frag.Empty())
	assert.Equal(t, before, c.CurrentPosition())
}
