package mirror

import (
	"strconv"

	"github.com/achl-go/achl/text"
)

// ColorTokenizer reads the color template: a tiny vocabulary of keywords
// (num/str/chr), numeric span directives (digits followed by a class name
// or a backtick), and symbols, line by line.
type ColorTokenizer struct {
	extractor *text.Extractor
}

func NewColorTokenizer(color string) *ColorTokenizer {
	return &ColorTokenizer{extractor: text.NewExtractor(color)}
}

func (t *ColorTokenizer) HasReachedEnd() bool { return t.extractor.HasReachedEnd() }

func (t *ColorTokenizer) CurrentLocation() text.LocatedSpan { return t.extractor.CurrentLocation() }

// NextToken reads the next instruction from the template according to
// opts's keyword/class vocabulary.
func (t *ColorTokenizer) NextToken(opts ColorOptions) ColorToken {
	c, ok := t.extractor.PeekNextChar()
	if !ok {
		if !t.extractor.LoadNextLine() {
			return ColorToken{Kind: EndOfInputKind, Origin: t.extractor.CurrentLocation()}
		}
		c, ok = t.extractor.PeekNextChar()
		if !ok {
			return ColorToken{Kind: EndOfInputKind, Origin: t.extractor.CurrentLocation()}
		}
	}

	switch {
	case text.IsAlphaOrUnderscore(c):
		extracted := t.extractor.ExtractAlphasUnderscores()
		identifier := extracted.Str()

		switch identifier {
		case opts.NumKeyword:
			return ColorToken{Kind: NumberToken, Origin: extracted, Class: opts.NumClass}
		case opts.StrKeyword:
			return ColorToken{
				Kind: QuotedSpanToken, Origin: extracted,
				PrimaryClass: opts.StrClass, EscapeClass: opts.StrEscClass,
				Delimiter: '"', Escape: opts.EscapeChar,
			}
		case opts.ChrKeyword:
			return ColorToken{
				Kind: QuotedSpanToken, Origin: extracted,
				PrimaryClass: opts.ChrClass, EscapeClass: opts.ChrEscClass,
				Delimiter: '\'', Escape: opts.EscapeChar,
			}
		}

		return ColorToken{Kind: IdentifierSpan, Origin: extracted, Class: identifier}

	case text.IsDigit(c):
		extractedDigits := t.extractor.ExtractDigits()
		extractedName := t.extractor.ExtractAlphasUnderscores()

		num, err := strconv.ParseUint(extractedDigits.Str(), 10, 64)
		if err != nil {
			return ColorToken{Kind: InvalidTokenKind, Origin: extractedDigits, Reason: ErrInvalidNumber}
		}

		class := extractedName.Str()
		hasClass := true
		if class == "" {
			if next, ok := t.extractor.PeekNextChar(); ok && next == opts.EmptyTokenChar {
				extractedName = t.extractor.ExtractNCharacters(1)
				hasClass = false
			} else {
				return ColorToken{Kind: InvalidTokenKind, Origin: extractedDigits, Reason: ErrExpectedSpanClass}
			}
		}
		if !hasClass {
			class = ""
		}

		merged := text.MergeLocatedSpans(extractedDigits, extractedName)

		if num == 0 {
			return ColorToken{Kind: LineDelimitedSpanToken, Origin: merged, Class: class}
		}

		return ColorToken{
			Kind: FixedLengthSpanToken, Origin: merged,
			Class: class, Length: int(num), NameOrigin: extractedName, LengthOrigin: extractedDigits,
		}

	case c == '\n':
		return ColorToken{Kind: EndOfLineToken, Origin: t.extractor.ExtractNCharacters(1)}

	case c == opts.EmptyTokenChar:
		return ColorToken{Kind: EmptyTokenKind, Origin: t.extractor.ExtractNCharacters(1)}
	}

	extractedSymbol := t.extractor.ExtractNCharacters(1)
	return ColorToken{Kind: SymbolToken, Origin: extractedSymbol, ExpectedSymbol: extractedSymbol.Str()[0]}
}
