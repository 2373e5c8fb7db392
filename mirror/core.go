package mirror

import (
	"github.com/achl-go/achl/htmlgen"
	"github.com/achl-go/achl/text"
)

// Highlight walks color, a tiny per-character template describing how to
// color code, token by token, pasting the matching slice of code into the
// output HTML for each one. The two inputs are driven in lockstep: each
// color token consumes some amount of code from the same cursor, so a color
// template that asks for more code than exists, or stops before code does,
// is reported as an error rather than silently truncating either side.
func Highlight(code, color string, opts Options) (string, error) {
	wrapInTable := opts.Generation.TableWrapCSSClass != ""
	builder := htmlgen.NewBuilder(len(code) * 2)
	builder.ReplaceUnderscoresToHyphens = opts.Generation.ReplaceUnderscoresToHyphens
	if wrapInTable {
		builder.OpenTable(text.CountLines(code), opts.Generation.TableWrapCSSClass)
	}

	colorTokenizer := NewColorTokenizer(color)
	codeExtractor := text.NewExtractor(code)

	for {
		colorToken := colorTokenizer.NextToken(opts.Color)
		lastCodeLocation := codeExtractor.CurrentLocation()

		if colorToken.Kind == EndOfInputKind {
			break
		}

		if err := emitColorToken(builder, colorToken, codeExtractor, lastCodeLocation, opts.Generation); err != nil {
			return "", err
		}
	}

	if !codeExtractor.HasReachedEnd() {
		return "", newError(ErrExhaustedColor, colorTokenizer.CurrentLocation(), codeExtractor.RemainingLineText(), "")
	}

	if wrapInTable {
		builder.CloseTable()
	}

	return builder.String(), nil
}

// emitColorToken executes one color instruction against codeExtractor and
// writes the resulting HTML, or returns the mismatch/invalid-input error it
// produced.
func emitColorToken(
	b *htmlgen.Builder,
	colorTn ColorToken,
	codeExtr *text.Extractor,
	lastCodeLocation text.LocatedSpan,
	genOpts GenerationOptions,
) error {
	switch colorTn.Kind {
	case IdentifierSpan:
		extracted := codeExtr.ExtractIdentifier()
		if extracted.IsEmpty() {
			return newError(ErrExpectedIdentifier, colorTn.Origin, extracted, "")
		}
		if err := checkClass(colorTn.Origin, extracted, colorTn.Class, genOpts); err != nil {
			return err
		}
		b.AppendSpan(colorTn.Class, extracted.Str())
		return nil

	case FixedLengthSpanToken:
		extracted := codeExtr.ExtractNCharacters(colorTn.Length)
		if extracted.IsEmpty() && colorTn.Length != 0 {
			return newError(ErrInsufficientCharacters, colorTn.Origin, codeExtr.CurrentLocation(), "")
		}
		if err := checkClass(colorTn.Origin, extracted, colorTn.Class, genOpts); err != nil {
			return err
		}
		b.AppendSpan(colorTn.Class, extracted.Str())
		return nil

	case LineDelimitedSpanToken:
		extracted := codeExtr.ExtractUntilEndOfLine()
		// empty extraction is allowed here, unlike IdentifierSpan/FixedLengthSpan
		if err := checkClass(colorTn.Origin, extracted, colorTn.Class, genOpts); err != nil {
			return err
		}
		b.AppendSpan(colorTn.Class, extracted.Str())
		return nil

	case SymbolToken:
		extracted := codeExtr.ExtractNCharacters(1)
		if extracted.IsEmpty() {
			return newError(ErrExpectedSymbol, colorTn.Origin, extracted, "")
		}
		if extracted.Str()[0] != colorTn.ExpectedSymbol {
			return newError(ErrMismatchedSymbol, colorTn.Origin, extracted, "")
		}
		b.AppendEscaped(extracted.Str())
		return nil

	case NumberToken:
		extracted := codeExtr.ExtractDigits()
		if extracted.IsEmpty() {
			return newError(ErrExpectedNumber, colorTn.Origin, extracted, "")
		}
		if err := checkClass(colorTn.Origin, extracted, colorTn.Class, genOpts); err != nil {
			return err
		}
		b.AppendSpan(colorTn.Class, extracted.Str())
		return nil

	case EmptyTokenKind:
		return nil

	case QuotedSpanToken:
		extracted := codeExtr.ExtractQuoted(colorTn.Delimiter, colorTn.Escape)
		if extracted.IsEmpty() {
			return newError(ErrExpectedQuoted, colorTn.Origin, extracted, "")
		}
		if err := checkClass(colorTn.Origin, extracted, colorTn.PrimaryClass, genOpts); err != nil {
			return err
		}
		if err := checkClass(colorTn.Origin, extracted, colorTn.EscapeClass, genOpts); err != nil {
			return err
		}
		b.AppendQuoted(extracted.Str(), colorTn.Escape, colorTn.PrimaryClass, colorTn.EscapeClass)
		return nil

	case EndOfLineToken:
		extracted := codeExtr.ExtractNCharacters(1)
		if extracted.IsEmpty() || extracted.Str()[0] != '\n' {
			return newError(ErrExpectedLineFeed, colorTn.Origin, extracted, "")
		}
		b.AppendEscaped(extracted.Str())
		codeExtr.LoadNextLine() // no more lines is not an error here
		return nil

	case InvalidTokenKind:
		return newError(colorTn.Reason, colorTn.Origin, lastCodeLocation, "")

	default:
		return nil
	}
}

// checkClass validates class against genOpts.ValidCSSClasses, if the caller
// configured an allowlist. An empty class (meaning "paste without a span")
// is always allowed.
func checkClass(colorOrigin, codeOrigin text.LocatedSpan, class string, genOpts GenerationOptions) error {
	if class == "" || genOpts.ValidCSSClasses == "" {
		return nil
	}
	if isValidCSSClass(class, genOpts.ValidCSSClasses) {
		return nil
	}
	return newError(ErrInvalidCSSClass, colorOrigin, codeOrigin, class)
}

// isValidCSSClass reports whether class appears as a whole word (bounded by
// non alpha/underscore characters, or the ends of validClasses) somewhere
// in the whitespace-separated allowlist.
func isValidCSSClass(class, validClasses string) bool {
	n := len(class)
	for i := 0; i+n <= len(validClasses); i++ {
		if validClasses[i:i+n] != class {
			continue
		}
		if i > 0 && text.IsAlphaOrUnderscore(validClasses[i-1]) {
			continue
		}
		if i+n < len(validClasses) && text.IsAlphaOrUnderscore(validClasses[i+n]) {
			continue
		}
		return true
	}
	return false
}
