package text

// Range is a half-open [First, Last) pair of positions.
type Range struct {
	First Position
	Last  Position
}

// Empty reports whether the range covers zero bytes.
func (r Range) Empty() bool {
	return r.First == r.Last
}

// Fragment is a borrowed slice of the original buffer plus the range it was
// extracted from. The source buffer must outlive every fragment derived
// from it; fragments never copy their backing text.
type Fragment struct {
	Str   string
	Range Range
}

// Empty reports whether the fragment carries no text. Str and Range agree by
// construction: every fragment built by this package has len(Str) == 0 iff
// Range.Empty().
func (f Fragment) Empty() bool {
	return f.Range.Empty()
}
