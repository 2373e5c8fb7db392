package parse

import "github.com/achl-go/achl/text"

// ZeroOrMore matches p as many times as possible, including zero. It never
// fails.
func ZeroOrMore(p Parser) Parser {
	return func(it *text.SplicedIterator) bool {
		for p(it) {
		}
		return true
	}
}

// OneOrMore matches p one or more times.
func OneOrMore(p Parser) Parser {
	return func(it *text.SplicedIterator) bool {
		if !p(it) {
			return false
		}
		for p(it) {
		}
		return true
	}
}

// Optional matches p zero or one time. It never fails.
func Optional(p Parser) Parser {
	return func(it *text.SplicedIterator) bool {
		p(it)
		return true
	}
}

// Not is a negative lookahead: it succeeds without consuming input iff p
// would fail at the current position.
func Not(p Parser) Parser {
	return func(it *text.SplicedIterator) bool {
		saved := it.Clone()
		ok := p(it)
		it.Restore(saved)
		return !ok
	}
}

// Lookahead is a positive lookahead: it succeeds without consuming input iff
// p would succeed at the current position.
func Lookahead(p Parser) Parser {
	return func(it *text.SplicedIterator) bool {
		saved := it.Clone()
		ok := p(it)
		it.Restore(saved)
		return ok
	}
}

// Or tries each alternative in order, committing to the first one that
// succeeds.
func Or(ps ...Parser) Parser {
	return func(it *text.SplicedIterator) bool {
		for _, p := range ps {
			if p(it) {
				return true
			}
		}
		return false
	}
}

// Except matches main only if excluded does not match at the same position
// — used to carve exclusions like "any character except the start of a
// block comment" out of a broader parser.
func Except(main, excluded Parser) Parser {
	return func(it *text.SplicedIterator) bool {
		saved := it.Clone()
		if excluded(it) {
			it.Restore(saved)
			return false
		}
		it.Restore(saved)
		return main(it)
	}
}

// Seq matches every parser in order, backtracking to the starting position
// if any of them fails partway through.
func Seq(ps ...Parser) Parser {
	return func(it *text.SplicedIterator) bool {
		saved := it.Clone()
		for _, p := range ps {
			if !p(it) {
				it.Restore(saved)
				return false
			}
		}
		return true
	}
}
