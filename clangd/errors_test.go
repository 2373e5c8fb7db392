package clangd

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorReasonStringsAreDistinctAndNonEmpty(t *testing.T) {
	reasons := []ErrorReason{
		ErrSyntax, ErrUnsupported, ErrInvalidSemanticTokenData,
		ErrInternalMissedSemanticToken, ErrInternalUnhandledPreprocessor,
		ErrInternalUnhandledContext, ErrInternalUnhandledComment,
		ErrInternalRawStringLiteralQuoteOpen, ErrInternalRawStringLiteralQuoteClose,
		ErrInternalRawStringLiteralParenOpen, ErrInternalRawStringLiteralParenClose,
		ErrInternalTokenToAction, ErrInternalFindMatchingTokens,
	}
	seen := map[string]bool{}
	for _, r := range reasons {
		s := r.String()
		assert.NotEmpty(t, s)
		assert.False(t, seen[s], "duplicate error string %q", s)
		seen[s] = true
	}
}

func TestErrorReasonStringUnknownValue(t *testing.T) {
	assert.Equal(t, "unknown error", ErrorReason(999).String())
}

func TestNewErrorIsUnwrappableViaCause(t *testing.T) {
	err := newError(ErrSyntax, Position{Line: 2, Column: 5})

	cerr, ok := errors.Cause(err).(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrSyntax, cerr.Reason)
	assert.Equal(t, Position{Line: 2, Column: 5}, cerr.Pos)
	assert.Contains(t, cerr.Error(), "2:5")
}
