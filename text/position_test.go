package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionAdvance(t *testing.T) {
	p := Position{Line: 0, Column: 3}
	assert.Equal(t, Position{Line: 0, Column: 4}, p.Advance('x'))
	assert.Equal(t, Position{Line: 1, Column: 0}, p.Advance('\n'))
}

func TestPositionLess(t *testing.T) {
	assert.True(t, (Position{Line: 0, Column: 5}).Less(Position{Line: 1, Column: 0}))
	assert.True(t, (Position{Line: 2, Column: 1}).Less(Position{Line: 2, Column: 2}))
	assert.False(t, (Position{Line: 2, Column: 2}).Less(Position{Line: 2, Column: 2}))
	assert.True(t, (Position{Line: 2, Column: 2}).LessEqual(Position{Line: 2, Column: 2}))
}

func TestLocatedSpanMerge(t *testing.T) {
	line := "123.0f"
	digits := NewLocatedSpan(line, 0, 0, 3)
	name := NewLocatedSpan(line, 0, 3, 3)
	merged := MergeLocatedSpans(digits, name)
	require.Equal(t, "123.0f", merged.Str())
	assert.Equal(t, 0, merged.Column())
	assert.Equal(t, 6, merged.Length())
}

func TestCountLinesIgnoresTrailingNewline(t *testing.T) {
	assert.Equal(t, 0, CountLines(""))
	assert.Equal(t, 1, CountLines("abc"))
	assert.Equal(t, 1, CountLines("abc\n"))
	assert.Equal(t, 2, CountLines("abc\ndef"))
	assert.Equal(t, 2, CountLines("abc\ndef\n"))
}
