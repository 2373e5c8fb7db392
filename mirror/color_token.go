package mirror

import "github.com/achl-go/achl/text"

// ColorTokenKind tags which of the color template's token shapes a
// ColorToken carries. Distinct kinds use disjoint subsets of ColorToken's
// fields; see the comment on each kind for which ones apply.
type ColorTokenKind int

const (
	// IdentifierSpan colors the next identifier in the code with Class.
	IdentifierSpan ColorTokenKind = iota
	// FixedLengthSpanToken colors exactly Length characters of code with
	// Class (empty means no span at all, just paste the text), and
	// NameOrigin/LengthOrigin are kept for Error reporting.
	FixedLengthSpanToken
	// LineDelimitedSpanToken colors the rest of the current code line with
	// Class (which may be empty).
	LineDelimitedSpanToken
	// SymbolToken asserts that the next code character equals Expected.
	SymbolToken
	// NumberToken colors the next run of digits with Class.
	NumberToken
	// EmptyTokenKind consumes nothing and emits nothing.
	EmptyTokenKind
	// QuotedSpanToken colors a quoted code literal, with Escape-led escape
	// sequences inside it wrapped in EscapeClass.
	QuotedSpanToken
	// EndOfLineToken asserts the next code character is a newline, advances
	// past it, and loads the following code line.
	EndOfLineToken
	// EndOfInputKind signals the color template has nothing left.
	EndOfInputKind
	// InvalidTokenKind is an unrecognized color character; Reason explains
	// why.
	InvalidTokenKind
)

// ColorToken is one instruction read from the color template, paired with
// the template span it was read from (for error reporting).
type ColorToken struct {
	Kind   ColorTokenKind
	Origin text.LocatedSpan

	Class          string
	Length         int
	NameOrigin     text.LocatedSpan
	LengthOrigin   text.LocatedSpan
	ExpectedSymbol byte
	PrimaryClass   string
	EscapeClass    string
	Delimiter      byte
	Escape         byte
	Reason         string
}
