package parse

import (
	"testing"

	"github.com/achl-go/achl/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func TestAnyCharAndExactly(t *testing.T) {
	it := text.NewSplicedIterator("ab", text.Position{})
	require.True(t, AnyChar()(it))
	assert.False(t, Exactly('a')(it))
	assert.True(t, Exactly('b')(it))
	assert.True(t, it.Done())
}

func TestLiteralBacktracksOnMismatch(t *testing.T) {
	it := text.NewSplicedIterator("function", text.Position{})
	startPos := it.Position()

	assert.False(t, Literal("func2")(it))
	assert.Equal(t, startPos, it.Position(), "failed Literal must restore position")

	assert.True(t, Literal("func")(it))
	assert.Equal(t, byte('t'), it.Current())
}

func TestZeroOrMoreNeverFails(t *testing.T) {
	it := text.NewSplicedIterator("abc", text.Position{})
	assert.True(t, ZeroOrMore(Exactly('z'))(it))
	assert.Equal(t, byte('a'), it.Current())

	assert.True(t, ZeroOrMore(Char(isDigit))(it)) // still zero matches, still succeeds
}

func TestOneOrMoreRequiresAtLeastOne(t *testing.T) {
	it := text.NewSplicedIterator("123abc", text.Position{})
	assert.True(t, OneOrMore(Char(isDigit))(it))
	assert.Equal(t, byte('a'), it.Current())

	it2 := text.NewSplicedIterator("abc", text.Position{})
	assert.False(t, OneOrMore(Char(isDigit))(it2))
	assert.Equal(t, byte('a'), it2.Current())
}

func TestOptionalAlwaysSucceeds(t *testing.T) {
	it := text.NewSplicedIterator("abc", text.Position{})
	assert.True(t, Optional(Exactly('z'))(it))
	assert.Equal(t, byte('a'), it.Current())
	assert.True(t, Optional(Exactly('a'))(it))
	assert.Equal(t, byte('b'), it.Current())
}

func TestNotAndLookahead(t *testing.T) {
	it := text.NewSplicedIterator("//comment", text.Position{})
	assert.True(t, Lookahead(Literal("//"))(it))
	assert.Equal(t, byte('/'), it.Current(), "lookahead must not consume")

	assert.False(t, Not(Literal("//"))(it))
	assert.Equal(t, byte('/'), it.Current(), "failed Not must not consume either")

	assert.True(t, Not(Literal("/*"))(it))
}

func TestOrCommitsToFirstMatch(t *testing.T) {
	p := Or(Literal("int"), Literal("integer"))
	it := text.NewSplicedIterator("integer", text.Position{})
	assert.True(t, p(it))
	assert.Equal(t, byte('e'), it.Current(), "Or must commit to the first alternative that matches")
}

func TestExceptCarvesExclusion(t *testing.T) {
	anyButSlashStar := Except(AnyChar(), Literal("/*"))

	it := text.NewSplicedIterator("/*", text.Position{})
	assert.False(t, anyButSlashStar(it))

	it2 := text.NewSplicedIterator("/x", text.Position{})
	assert.True(t, anyButSlashStar(it2))
	assert.Equal(t, byte('x'), it2.Current())
}

func TestSeqBacktracksAsAWhole(t *testing.T) {
	p := Seq(Exactly('a'), Exactly('b'), Exactly('z'))
	it := text.NewSplicedIterator("abc", text.Position{})
	assert.False(t, p(it))
	assert.Equal(t, byte('a'), it.Current(), "partial match must be undone")

	p2 := Seq(Exactly('a'), Exactly('b'), Exactly('c'))
	assert.True(t, p2(it))
	assert.True(t, it.Done())
}
