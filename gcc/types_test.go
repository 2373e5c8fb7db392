package gcc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineClassificationString(t *testing.T) {
	assert.Equal(t, "admonition", Admonition.String())
	assert.Equal(t, "underline", Underline.String())
	assert.Equal(t, "unknown", LineClassification(999).String())
}

func TestUnderlineRunPresent(t *testing.T) {
	assert.False(t, UnderlineRun{}.Present())
	assert.True(t, UnderlineRun{FirstColumn: 3}.Present())
	assert.True(t, UnderlineRun{Length: 2}.Present())
}
