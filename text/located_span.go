package text

// LocatedSpan anchors a slice of one source line for diagnostic underlining:
// the whole line (including its trailing newline, if any), the zero-based
// line number, the zero-based starting column, and the slice length. The
// invariant Column+Length <= len(Line) always holds.
type LocatedSpan struct {
	line       string
	lineNumber int
	column     int
	length     int
}

// NewLocatedSpan builds a LocatedSpan, panicking if the span would run past
// the end of line — callers in this package never construct an out-of-range
// span, so this is a programmer-error guard, not a validation path.
func NewLocatedSpan(line string, lineNumber, column, length int) LocatedSpan {
	if column+length > len(line) {
		panic("text: located span exceeds line bounds")
	}
	return LocatedSpan{line: line, lineNumber: lineNumber, column: column, length: length}
}

func (s LocatedSpan) Line() string       { return s.line }
func (s LocatedSpan) LineNumber() int    { return s.lineNumber }
func (s LocatedSpan) Column() int        { return s.column }
func (s LocatedSpan) Length() int        { return s.length }
func (s LocatedSpan) IsEmpty() bool      { return s.length == 0 }

// Str returns the text covered by the span.
func (s LocatedSpan) Str() string {
	if s.length == 0 {
		return ""
	}
	return s.line[s.column : s.column+s.length]
}

// MergeLocatedSpans concatenates two adjacent spans on the same line into
// one, used by the mirror color tokenizer to report a combined location for
// a numeric-length directive (digits immediately followed by a class name).
func MergeLocatedSpans(lhs, rhs LocatedSpan) LocatedSpan {
	if lhs.line != rhs.line || lhs.lineNumber != rhs.lineNumber {
		panic("text: cannot merge located spans from different lines")
	}
	if lhs.column+lhs.length != rhs.column {
		panic("text: located spans to merge must be adjacent")
	}
	return LocatedSpan{line: lhs.line, lineNumber: lhs.lineNumber, column: lhs.column, length: lhs.length + rhs.length}
}
