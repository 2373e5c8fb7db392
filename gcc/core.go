package gcc

import (
	"github.com/achl-go/achl/htmlgen"
	"github.com/achl-go/achl/text"
)

// CSSClassNames maps each color role to the CSS class that renders it.
// Field names mirror the palette GCC's own HTML diagnostic output uses.
type CSSClassNames struct {
	Grey    string // default color
	White   string // paths and code citations
	Cyan    string // note
	Magenta string // warning
	Red     string // error
	Green   string // extra highlight 1
	Blue    string // extra highlight 2
}

func DefaultCSSClassNames() CSSClassNames {
	return CSSClassNames{
		Grey:    "grey",
		White:   "white",
		Cyan:    "cyan",
		Magenta: "magenta",
		Red:     "red",
		Green:   "green",
		Blue:    "blue",
	}
}

func (names CSSClassNames) classFor(c TokenColor) string {
	switch c {
	case ColorHighlight:
		return names.White
	case ColorNote:
		return names.Cyan
	case ColorWarning:
		return names.Magenta
	case ColorError:
		return names.Red
	case ColorExtraHighlight1:
		return names.Green
	case ColorExtraHighlight2:
		return names.Blue
	default:
		return names.Grey
	}
}

// Options configures a gcc-mode highlight run.
type Options struct {
	// TableWrapCSSClass, when non-empty, wraps the output in a
	// line-numbered table whose code column carries this class.
	TableWrapCSSClass string
	Palette           CSSClassNames
}

// Highlight classifies and colors one compiler diagnostic transcript.
func Highlight(diagnosticText string, opts Options) (string, error) {
	tokenizer := NewTokenizer(diagnosticText)
	tokens, err := tokenizer.FillWithTokens()
	if err != nil {
		return "", err
	}

	palette := opts.Palette
	if (palette == CSSClassNames{}) {
		palette = DefaultCSSClassNames()
	}

	builder := htmlgen.NewBuilder(len(diagnosticText) * 2)
	wrapInTable := opts.TableWrapCSSClass != ""
	if wrapInTable {
		builder.OpenTable(text.CountLines(diagnosticText), opts.TableWrapCSSClass)
	}

	for _, tok := range tokens {
		builder.AppendSpan(palette.classFor(tok.Color), tok.Origin)
	}

	if wrapInTable {
		builder.CloseTable()
	}

	return builder.String(), nil
}
