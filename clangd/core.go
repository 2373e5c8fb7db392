package clangd

import (
	"github.com/juju/errors"

	"github.com/achl-go/achl/htmlgen"
	"github.com/achl-go/achl/text"
)

// Options configures a clangd-mode highlight run.
type Options struct {
	// TableWrapCSSClass, when non-empty, wraps the output in a
	// line-numbered table whose code column carries this class.
	TableWrapCSSClass string
	// ColorVariants is the number of distinct shades a color-varying
	// semantic token family may cycle through. It is accepted but not
	// read: Highlight renders no variant-specific class, and each code
	// token's ColorVariance comes from its semantic token alone.
	ColorVariants int
	// HighlightPrintfFormatting, when set, recognizes printf-style format
	// specifiers inside string and character literals as their own
	// FormatSequence tokens.
	HighlightPrintfFormatting bool
}

// Highlight tokenizes code as C-family source, reconciles the result
// against semanticTokens from a language server, and renders the outcome
// as HTML. semanticTokens must be sorted by position; keywords need not be
// sorted.
func Highlight(code string, semanticTokens []SemanticToken, keywords []string, opts Options) (string, error) {
	tokenizer := NewTokenizer(code, keywords)
	tokens, err := tokenizer.FillWithTokens(opts.HighlightPrintfFormatting)
	if err != nil {
		return "", errors.Trace(err)
	}

	if err := Reconcile(code, tokens, semanticTokens); err != nil {
		return "", errors.Trace(err)
	}

	builder := htmlgen.NewBuilder(len(code) * 5)
	wrapInTable := opts.TableWrapCSSClass != ""
	if wrapInTable {
		builder.OpenTable(text.CountLines(code), opts.TableWrapCSSClass)
	}

	for _, t := range tokens {
		act := tokenToAction(t)
		if act.err != nil {
			return "", errors.Trace(act.err)
		}

		switch {
		case act.openSpan && act.closeSpan:
			classes := []string{act.cssClass}
			if act.isDisabledCode {
				classes = append(classes, cssDisabledCode)
			}
			builder.OpenSpan(classes...)
			builder.AppendEscaped(t.Origin.Str)
			builder.CloseSpan()
		case act.openSpan:
			classes := []string{act.cssClass}
			if act.isDisabledCode {
				classes = append(classes, cssDisabledCode)
			}
			builder.OpenSpan(classes...)
			builder.AppendEscaped(t.Origin.Str)
		case act.closeSpan:
			builder.AppendEscaped(t.Origin.Str)
			builder.CloseSpan()
		default:
			builder.AppendEscaped(t.Origin.Str)
		}
	}

	if wrapInTable {
		builder.CloseTable()
	}

	return builder.String(), nil
}
