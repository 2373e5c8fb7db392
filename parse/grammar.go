package parse

import "github.com/achl-go/achl/text"

// digitSequence matches a run of digit, each one optionally preceded by a
// single-quote digit separator (allowed in numeric literals since C++14).
func digitSequence(digit Parser) Parser {
	return ZeroOrMore(Seq(Optional(Exactly('\'')), digit))
}

var (
	digitBinary  = Char(text.IsDigitBinary)
	digitOctal   = Char(text.IsDigitOctal)
	digitDecimal = Char(text.IsDigit)
	digitHex     = Char(text.IsDigitHex)

	hexPrefix = Or(Literal("0x"), Literal("0X"))

	exponentTail    = Seq(Optional(Or(Exactly('+'), Exactly('-'))), OneOrMore(digitDecimal))
	exponentDecimal = Seq(Or(Exactly('e'), Exactly('E')), exponentTail)
	exponentHex     = Seq(Or(Exactly('p'), Exactly('P')), exponentTail)

	identifierParser = Seq(
		Char(text.IsAlphaOrUnderscore),
		ZeroOrMore(Char(text.IsAlnumOrUnderscore)),
	)

	textLiteralPrefix = Or(Exactly('L'), Literal("u8"), Exactly('u'), Exactly('U'))

	escapeSimple = Char(func(c byte) bool {
		switch c {
		case '\'', '"', '?', '\\', 'a', 'b', 'f', 'n', 'r', 't', 'v':
			return true
		}
		return false
	})

	escapeNumeric = Or(
		Seq(digitOctal, digitOctal, digitOctal),
		Seq(digitOctal, digitOctal),
		digitOctal,
		Seq(Exactly('o'), Exactly('{'), OneOrMore(digitOctal), Exactly('}')),
		Seq(Exactly('x'), OneOrMore(digitHex)),
		Seq(Exactly('x'), Exactly('{'), OneOrMore(digitHex), Exactly('}')),
		Seq(Exactly('u'), digitHex, digitHex, digitHex, digitHex),
		Seq(Exactly('u'), Exactly('{'), OneOrMore(digitHex), Exactly('}')),
		Seq(Exactly('U'), digitHex, digitHex, digitHex, digitHex, digitHex, digitHex, digitHex, digitHex),
		Seq(Exactly('N'), Exactly('{'), OneOrMore(Char(func(c byte) bool {
			return ('A' <= c && c <= 'Z') || text.IsDigit(c) || c == '-' || c == ' '
		})), Exactly('}')),
	)

	escapeImplementationDefined = Char(text.IsFromBasicCharacterSet)

	commentTagTodo = keyword(Or(Literal("TODO"), Literal("FIXME")))

	commentTagDoxygen = Seq(Exactly('@'), OneOrMore(Char(text.IsAlpha)))

	printfFlag   = Char(func(c byte) bool { return c == '-' || c == '+' || c == ' ' || c == '0' || c == '#' })
	printfWidth  = Or(OneOrMore(digitDecimal), Exactly('*'))
	printfPrec   = Seq(Exactly('.'), Optional(printfWidth))
	printfLength = Or(Literal("hh"), Literal("ll"), Exactly('h'), Exactly('l'), Exactly('j'), Exactly('z'), Exactly('t'), Exactly('L'))
	printfConv   = Char(func(c byte) bool {
		switch c {
		case 'd', 'i', 'o', 'u', 'x', 'X', 'e', 'E', 'f', 'F', 'g', 'G', 'a', 'A', 'c', 's', 'p', 'n', '%':
			return true
		}
		return false
	})

	printfFormatSequence = Or(
		Literal("%%"),
		Seq(Exactly('%'), ZeroOrMore(printfFlag), Optional(printfWidth), Optional(printfPrec), Optional(printfLength), printfConv),
	)

	numericLiteral = Or(
		// floating point - hex
		Seq(hexPrefix, ZeroOrMore(digitHex), Exactly('.'), OneOrMore(digitHex), exponentHex),
		Seq(hexPrefix, OneOrMore(digitHex), Optional(Exactly('.')), exponentHex),
		// floating point - decimal
		Seq(ZeroOrMore(digitDecimal), Exactly('.'), OneOrMore(digitDecimal), Optional(exponentDecimal)),
		Seq(OneOrMore(digitDecimal), Exactly('.'), Optional(exponentDecimal)),
		Seq(OneOrMore(digitDecimal), exponentDecimal),
		// integers - hex
		Seq(hexPrefix, digitHex, digitSequence(digitHex)),
		// integers - binary
		Seq(Or(Literal("0b"), Literal("0B")), digitBinary, digitSequence(digitBinary)),
		// integers - octal
		Seq(Exactly('0'), digitSequence(digitOctal)),
		// integers - decimal
		Seq(Except(digitDecimal, Exactly('0')), digitSequence(digitDecimal)),
	)
)

// keyword turns p into a parser that additionally requires it not be
// immediately followed by an identifier character — so "TODOS" does not
// match the "TODO" tag.
func keyword(p Parser) Parser {
	return Seq(p, Not(Char(text.IsAlnumOrUnderscore)))
}
