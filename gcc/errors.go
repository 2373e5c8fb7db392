package gcc

import (
	"fmt"

	"github.com/juju/errors"

	"github.com/achl-go/achl/text"
)

// ErrorReason classifies why classifying or coloring one line of diagnostic
// text failed.
type ErrorReason int

const (
	ErrCannotClassify ErrorReason = iota
	ErrExpectedPathBeforeSeparator
	ErrExpectedSeverityPrefix
)

func (r ErrorReason) String() string {
	switch r {
	case ErrCannotClassify:
		return "can not classify line"
	case ErrExpectedPathBeforeSeparator:
		return "expected non-zero length path before ',' or ':'"
	case ErrExpectedSeverityPrefix:
		return "expected a severity prefix (note:, warning: or error:)"
	default:
		return "unknown error"
	}
}

// Error is a gcc-mode highlighting failure: a reason plus the diagnostic
// text location it occurred at.
type Error struct {
	Reason   ErrorReason
	Location text.LocatedSpan
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s\n%s", e.Reason, text.RenderLocatedSpan(e.Location))
}

func newError(reason ErrorReason, loc text.LocatedSpan) error {
	return errors.Trace(&Error{Reason: reason, Location: loc})
}
