package mirror

import (
	"fmt"

	"github.com/juju/errors"

	"github.com/achl-go/achl/text"
)

// Error reason strings, grounded on the original tool's own constants so a
// caller comparing against a known message keeps working.
const (
	ErrExpectedIdentifier     = "expected identifier"
	ErrExpectedSymbol         = "expected symbol"
	ErrExpectedNumber         = "expected number"
	ErrExpectedQuoted         = "expected quoted text"
	ErrExpectedLineFeed       = "expected line feed"
	ErrMismatchedSymbol       = "mismatched symbol"
	ErrInvalidNumber          = "invalid number"
	ErrInsufficientCharacters = "insufficient characters for fixed-length span"
	ErrExhaustedColor         = "color input exhausted but code remains"
	ErrExpectedSpanClass      = "expected span class name"
	ErrInvalidCSSClass        = "invalid CSS class"
)

// Error is a mirror-mode highlighting failure: a reason plus the two
// locations it spans — where in the color template the offending token
// was read from, and where in the code it was being matched against.
// ExtraReason carries supplementary detail (e.g. the rejected class name)
// when non-empty.
type Error struct {
	Reason        string
	ColorLocation text.LocatedSpan
	CodeLocation  text.LocatedSpan
	ExtraReason   string
}

func (e *Error) Error() string {
	msg := e.Reason
	if e.ExtraReason != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.ExtraReason)
	}
	return fmt.Sprintf("%s\nin code %sin color %s", msg,
		text.RenderLocatedSpan(e.CodeLocation), text.RenderLocatedSpan(e.ColorLocation))
}

func newError(reason string, colorLoc, codeLoc text.LocatedSpan, extra string) error {
	return errors.Trace(&Error{Reason: reason, ColorLocation: colorLoc, CodeLocation: codeLoc, ExtraReason: extra})
}
