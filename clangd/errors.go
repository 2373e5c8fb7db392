package clangd

import (
	"fmt"

	"github.com/juju/errors"
)

// ErrorReason classifies why highlighting failed: either the input genuinely
// doesn't parse as C-family code / valid semantic-token data, or the
// tokenizer reached a state it has no handling for.
type ErrorReason int

const (
	ErrSyntax ErrorReason = iota
	ErrUnsupported
	ErrInvalidSemanticTokenData
	ErrInternalMissedSemanticToken
	ErrInternalUnhandledPreprocessor
	ErrInternalUnhandledContext
	ErrInternalUnhandledComment
	ErrInternalRawStringLiteralQuoteOpen
	ErrInternalRawStringLiteralQuoteClose
	ErrInternalRawStringLiteralParenOpen
	ErrInternalRawStringLiteralParenClose
	ErrInternalTokenToAction
	ErrInternalFindMatchingTokens
)

func (r ErrorReason) String() string {
	switch r {
	case ErrSyntax:
		return "syntax error"
	case ErrUnsupported:
		return "unsupported construct"
	case ErrInvalidSemanticTokenData:
		return "invalid semantic token data"
	case ErrInternalMissedSemanticToken:
		return "internal: missed semantic token"
	case ErrInternalUnhandledPreprocessor:
		return "internal: unhandled preprocessor state"
	case ErrInternalUnhandledContext:
		return "internal: unhandled context state"
	case ErrInternalUnhandledComment:
		return "internal: unhandled comment state"
	case ErrInternalRawStringLiteralQuoteOpen:
		return "internal: raw string literal quote open"
	case ErrInternalRawStringLiteralQuoteClose:
		return "internal: raw string literal quote close"
	case ErrInternalRawStringLiteralParenOpen:
		return "internal: raw string literal paren open"
	case ErrInternalRawStringLiteralParenClose:
		return "internal: raw string literal paren close"
	case ErrInternalTokenToAction:
		return "internal: no css class for token"
	case ErrInternalFindMatchingTokens:
		return "internal: semantic token does not align with any code token"
	default:
		return "unknown error"
	}
}

// Error is the clangd-mode highlighting failure type: a reason plus the
// source position it occurred at.
type Error struct {
	Reason ErrorReason
	Pos    Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("clangd highlight: %s at %d:%d", e.Reason, e.Pos.Line, e.Pos.Column)
}

func newError(reason ErrorReason, pos Position) error {
	return errors.Trace(&Error{Reason: reason, Pos: pos})
}
