package parse

import "github.com/achl-go/achl/text"

// Cursor wraps a text.SplicedIterator and turns the Parser combinators into
// a fragment-returning API: every Parse* method either consumes a logical
// prefix of the remaining text and returns it as a text.Fragment, or leaves
// the cursor untouched and returns an empty fragment at the current
// position.
type Cursor struct {
	it *text.SplicedIterator
}

// NewCursor builds a Cursor over text starting at the zero position.
func NewCursor(src string) *Cursor {
	return &Cursor{it: text.NewSplicedIterator(src, text.Position{})}
}

// HasReachedEnd reports whether the cursor has exhausted its text.
func (c *Cursor) HasReachedEnd() bool {
	return c.it.Done()
}

// CurrentPosition returns the logical position of the cursor.
func (c *Cursor) CurrentPosition() text.Position {
	return c.it.Position()
}

// EmptyMatch returns a zero-length fragment anchored at the current
// position, used by callers as the result of a failed or optional parse.
func (c *Cursor) EmptyMatch() text.Fragment {
	pos := c.CurrentPosition()
	return text.Fragment{Str: "", Range: text.Range{First: pos, Last: pos}}
}

// Parse runs p against the cursor, returning the matched fragment on
// success or EmptyMatch on failure. The cursor only advances on success.
func (c *Cursor) Parse(p Parser) text.Fragment {
	start := c.it.Clone()
	if !p(c.it) {
		return c.EmptyMatch()
	}
	return text.Fragment{
		Str:   text.StrFromRange(start, c.it),
		Range: text.Range{First: start.Position(), Last: c.it.Position()},
	}
}

func (c *Cursor) ParseExactly(ch byte) text.Fragment    { return c.Parse(Exactly(ch)) }
func (c *Cursor) ParseLiteral(s string) text.Fragment   { return c.Parse(Literal(s)) }
func (c *Cursor) ParseNewline() text.Fragment           { return c.ParseExactly('\n') }

func (c *Cursor) ParseNonNewlineWhitespace() text.Fragment {
	return c.Parse(OneOrMore(Char(text.IsNonNewlineWhitespace)))
}

func (c *Cursor) ParseDigits() text.Fragment {
	return c.Parse(OneOrMore(digitDecimal))
}

func (c *Cursor) ParseIdentifier() text.Fragment {
	return c.Parse(identifierParser)
}

func (c *Cursor) ParseNumericLiteral() text.Fragment {
	return c.Parse(numericLiteral)
}

func (c *Cursor) ParseTextLiteralPrefix(quote byte) text.Fragment {
	return c.Parse(Seq(textLiteralPrefix, Lookahead(Exactly(quote))))
}

func (c *Cursor) ParseCharLiteralPrefix() text.Fragment   { return c.ParseTextLiteralPrefix('\'') }
func (c *Cursor) ParseStringLiteralPrefix() text.Fragment { return c.ParseTextLiteralPrefix('"') }

func (c *Cursor) ParseRawStringLiteralPrefix() text.Fragment {
	return c.Parse(Seq(Optional(textLiteralPrefix), Exactly('R'), Lookahead(Exactly('"'))))
}

func (c *Cursor) ParseRawStringLiteralDelimiterOpen() text.Fragment {
	return c.Parse(OneOrMore(Char(func(b byte) bool {
		return text.IsFromBasicCharacterSet(b) && b != '(' && b != ')' && b != '\\' && !text.IsWhitespace(b)
	})))
}

func (c *Cursor) ParseRawStringLiteralBody(delimiter string) text.Fragment {
	closing := Seq(Exactly(')'), Literal(delimiter), Lookahead(Exactly('"')))
	return c.Parse(OneOrMore(Except(AnyChar(), closing)))
}

func (c *Cursor) ParseRawStringLiteralDelimiterClose(delimiter string) text.Fragment {
	return c.ParseLiteral(delimiter)
}

func (c *Cursor) ParseSymbols() text.Fragment {
	isSymbol := func(b byte) bool {
		return b == '!' || b == '%' || b == '&' ||
			(0x28 <= b && b <= 0x2f) ||
			(0x3a <= b && b <= 0x3f) ||
			b == '[' || b == ']' || b == '^' || b == '{' || b == '|' || b == '}' || b == '~'
	}
	excluded := Or(Literal("//"), Literal("/*"))
	return c.Parse(OneOrMore(Except(Char(isSymbol), excluded)))
}

func (c *Cursor) ParseCommentTagTodo() text.Fragment    { return c.Parse(commentTagTodo) }
func (c *Cursor) ParseCommentTagDoxygen() text.Fragment { return c.Parse(commentTagDoxygen) }

func (c *Cursor) ParseCommentSingleBody() text.Fragment {
	return c.Parse(OneOrMore(Except(Except(AnyChar(), Exactly('\n')), commentTagTodo)))
}

func (c *Cursor) ParseCommentSingleDoxygenBody() text.Fragment {
	excluded := Or(Exactly('\n'), commentTagDoxygen, commentTagTodo)
	return c.Parse(OneOrMore(Except(AnyChar(), excluded)))
}

func (c *Cursor) ParseCommentMultiBody() text.Fragment {
	excluded := Or(Literal("*/"), commentTagTodo)
	return c.Parse(OneOrMore(Except(AnyChar(), excluded)))
}

func (c *Cursor) ParseCommentMultiDoxygenBody() text.Fragment {
	excluded := Or(Literal("*/"), commentTagDoxygen, commentTagTodo)
	return c.Parse(OneOrMore(Except(AnyChar(), excluded)))
}

// ParseQuoted matches beginDelimiter, then any run of characters other than
// endDelimiter or newline, then endDelimiter. There is no escape handling —
// it is meant for simple preprocessor quoting like <header.h>.
func (c *Cursor) ParseQuoted(beginDelimiter, endDelimiter byte) text.Fragment {
	body := ZeroOrMore(Char(func(b byte) bool { return b != endDelimiter && b != '\n' }))
	return c.Parse(Seq(Exactly(beginDelimiter), body, Exactly(endDelimiter)))
}

func (c *Cursor) ParseEscapeSequence() text.Fragment {
	return c.Parse(OneOrMore(Seq(
		Exactly('\\'),
		Or(escapeSimple, escapeNumeric, escapeImplementationDefined),
	)))
}

func (c *Cursor) ParseTextLiteralBody(delimiter byte) text.Fragment {
	return c.Parse(OneOrMore(Except(AnyChar(), Exactly(delimiter))))
}

// ParseFormatSequencePrintf matches one printf-style conversion specifier:
// '%' [flags] [width] [.precision] [length] conversion, or the literal "%%"
// escape.
func (c *Cursor) ParseFormatSequencePrintf() text.Fragment {
	return c.Parse(printfFormatSequence)
}

// ParseNewlines matches one or more newlines (bare '\n' or "\r\n"), used
// to collapse consecutive blank lines into a single whitespace token.
func (c *Cursor) ParseNewlines() text.Fragment {
	return c.Parse(OneOrMore(Or(Exactly('\n'), Literal("\r\n"))))
}

// ParsePreprocessorDiagnosticMessage matches everything up to (not
// including) a newline or the start of a comment — the free-form text
// after #error and #warning.
func (c *Cursor) ParsePreprocessorDiagnosticMessage() text.Fragment {
	excluded := Or(Exactly('\n'), Literal("//"), Literal("/*"))
	return c.Parse(OneOrMore(Except(AnyChar(), excluded)))
}

// ParseSymbol matches exactly one punctuation/operator character, excluding
// the two-character comment openers.
func (c *Cursor) ParseSymbol() text.Fragment {
	isSymbolChar := func(b byte) bool {
		return b == '!' || b == '%' || b == '&' ||
			(0x28 <= b && b <= 0x2f) ||
			(0x3a <= b && b <= 0x3f) ||
			b == '[' || b == ']' || b == '^' || b == '{' || b == '|' || b == '}' || b == '~'
	}
	excluded := Or(Literal("//"), Literal("/*"))
	return c.Parse(Except(Char(isSymbolChar), excluded))
}
