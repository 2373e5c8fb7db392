package mirror

// ColorOptions configures the little `num`/`str`/`chr` keyword vocabulary
// the color tokenizer recognizes, and the two control characters (escape,
// empty-token) that have no alphabetic spelling.
type ColorOptions struct {
	NumKeyword string
	StrKeyword string
	ChrKeyword string

	NumClass string

	StrClass    string
	StrEscClass string

	ChrClass    string
	ChrEscClass string

	EscapeChar     byte
	EmptyTokenChar byte
}

// DefaultColorOptions matches the original tool's built-in vocabulary.
func DefaultColorOptions() ColorOptions {
	return ColorOptions{
		NumKeyword: "num",
		StrKeyword: "str",
		ChrKeyword: "chr",

		NumClass: "lit_num",

		StrClass:    "lit_str",
		StrEscClass: "esc_seq",

		ChrClass:    "lit_chr",
		ChrEscClass: "esc_seq",

		EscapeChar:     '\\',
		EmptyTokenChar: '`',
	}
}

// GenerationOptions controls the HTML output shape, independent of how
// color tokens are recognized.
type GenerationOptions struct {
	// ReplaceUnderscoresToHyphens rewrites every CSS class's underscores to
	// hyphens as it is written out, for callers whose stylesheets use
	// kebab-case class names while the color template uses snake_case.
	ReplaceUnderscoresToHyphens bool
	// TableWrapCSSClass, when non-empty, wraps the output in a
	// line-numbered table whose code column carries this class.
	TableWrapCSSClass string
	// ValidCSSClasses, when non-empty, is a whitespace-separated whole-word
	// list of the only class names the template is allowed to reference;
	// anything else fails with ErrInvalidCSSClass.
	ValidCSSClasses string
}

// Options bundles everything a mirror-mode highlight run needs.
type Options struct {
	Generation GenerationOptions
	Color      ColorOptions
}
