// Package parse implements a small Boost.Spirit-style parser combinator
// library over text.SplicedIterator: every parser is a plain function that
// tries to consume a prefix of the iterator, reporting success or failure by
// return value and leaving the iterator untouched on failure.
package parse

import "github.com/achl-go/achl/text"

// Parser attempts to consume some logical characters starting at it. On
// success it advances it past what it matched and returns true. On failure
// it must leave it exactly where it found it and return false.
type Parser func(it *text.SplicedIterator) bool

// AnyChar matches and consumes a single character, failing only at the end
// of input.
func AnyChar() Parser {
	return func(it *text.SplicedIterator) bool {
		if it.Done() {
			return false
		}
		it.Advance()
		return true
	}
}

// Char matches and consumes a single character satisfying pred.
func Char(pred func(byte) bool) Parser {
	return func(it *text.SplicedIterator) bool {
		if it.Done() || !pred(it.Current()) {
			return false
		}
		it.Advance()
		return true
	}
}

// Exactly matches and consumes the single literal character c.
func Exactly(c byte) Parser {
	return Char(func(b byte) bool { return b == c })
}

// Literal matches and consumes the literal string s, logical
// character by logical character, backtracking to the starting position on
// any mismatch.
func Literal(s string) Parser {
	return func(it *text.SplicedIterator) bool {
		saved := it.Clone()
		for i := 0; i < len(s); i++ {
			if it.Done() || it.Current() != s[i] {
				it.Restore(saved)
				return false
			}
			it.Advance()
		}
		return true
	}
}
