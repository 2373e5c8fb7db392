package clangd

import (
	"sort"

	"github.com/achl-go/achl/text"
)

// Reconcile attaches semantic-token information from a language server onto
// the plain lexical tokens produced by Tokenizer. semanticTokens must
// already be sorted by position, as the LSP guarantees. code must be the
// exact buffer tokens was tokenized from.
//
// A run of consecutive semantic tokens is treated as one logical entity
// when each but the last ends in a line-continuation splice — this is how
// clangd reports a single spliced identifier as multiple same-info tokens,
// one per physical line.
func Reconcile(code string, tokens []CodeToken, semanticTokens []SemanticToken) error {
	it := text.NewSplicedIterator(code, text.Position{})

	i := 0
	for i < len(semanticTokens) {
		groupStart := i
		for i < len(semanticTokens) {
			str := semanticTokenText(it, semanticTokens[i])
			if !text.EndsWithBackslashWhitespace(str) {
				// no more splice: accept this token and stop the group
				i++
				break
			}
			if semanticTokens[i].Info != semanticTokens[groupStart].Info {
				return newError(ErrInvalidSemanticTokenData, semanticTokens[i].Pos)
			}
			i++
		}

		if groupStart == i {
			return newError(ErrInternalMissedSemanticToken, text.Position{})
		}

		first := semanticTokens[groupStart]
		last := semanticTokens[i-1]

		lo, hi := findMatchingTokens(tokens, first.PosBegin(), last.PosEnd())
		if lo >= hi {
			return newError(ErrInternalFindMatchingTokens, first.PosBegin())
		}

		for j := lo; j < hi; j++ {
			info := first.Info
			tokens[j].SemanticInfo = &info
			tokens[j].ColorVariance = first.ColorVariance
			if tokens[j].Syntax == Symbol {
				tokens[j].Syntax = OverloadedOperator
			}
		}
	}

	return nil
}

// semanticTokenText advances it (monotonically, since semantic tokens are
// processed in position order) up to tok's start and returns the tok.Length
// raw bytes from there — tok.Length counts raw, splice-inclusive bytes, the
// same way clangd's own token spans do, not logical characters, so it must
// not be consumed through Advance.
func semanticTokenText(it *text.SplicedIterator, tok SemanticToken) string {
	for it.Position().Less(tok.PosBegin()) {
		it.Advance()
	}
	raw := it.RemainingText()
	if tok.Length < len(raw) {
		raw = raw[:tok.Length]
	}
	return raw
}

// findMatchingTokens returns the half-open index range of tokens whose
// origin lies within [start, stop), using the same lower/upper-bound
// alignment as a binary search over sorted, non-overlapping fragments.
//
// Splice introduces two corner cases this function must paper over:
//  1. The tokenizer ignores a leading splice on a fragment but the
//     language server's column numbers do not — this works out by
//     coincidence, since clangd reports the column one past the splice,
//     which is exactly where lower_bound already lands.
//  2. The tokenizer parses (and includes) a trailing splice in a token's
//     origin, but the language server's span ends before it — handled
//     explicitly below by extending the match by one token.
func findMatchingTokens(tokens []CodeToken, start, stop Position) (lo, hi int) {
	lo = sort.Search(len(tokens), func(i int) bool {
		return !tokens[i].Origin.Range.First.Less(start)
	})
	hi = sort.Search(len(tokens), func(i int) bool {
		return stop.Less(tokens[i].Origin.Range.Last)
	})

	if lo > hi {
		return 0, 0
	}
	if hi < len(tokens) && text.EndsWithBackslashWhitespace(tokens[hi].Origin.Str) {
		hi++
	}
	return lo, hi
}
