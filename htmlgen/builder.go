// Package htmlgen assembles the escaped HTML output shared by all three
// highlighter modes: a forward-only stream of spans wrapped in an optional
// line-numbered table.
package htmlgen

import "strings"

// Builder accumulates HTML into a single string, escaping every piece of
// source text as it is appended. It never looks back at what it already
// wrote — every span must be opened and closed in order.
type Builder struct {
	b strings.Builder
	// ReplaceUnderscoresToHyphens rewrites every CSS class name's
	// underscores to hyphens as it is written, for callers whose
	// stylesheets use kebab-case while the input vocabulary uses
	// snake_case.
	ReplaceUnderscoresToHyphens bool
}

// NewBuilder returns a Builder with cap bytes of initial capacity
// pre-reserved, matching the teacher's "reserve by estimated output size"
// pattern.
func NewBuilder(cap int) *Builder {
	b := &Builder{}
	b.b.Grow(cap)
	return b
}

// String returns the accumulated HTML.
func (b *Builder) String() string {
	return b.b.String()
}

// OpenTable starts a two-column table: a line-number gutter for the given
// number of lines, then a <pre> tagged with codeClass for the code itself.
func (b *Builder) OpenTable(lines int, codeClass string) {
	b.b.WriteString(`<table class="codetable">` +
		`<tbody><tr><td class="linenos"><div class="linenodiv"><pre>`)
	for i := 1; i <= lines; i++ {
		b.b.WriteString(itoa(i))
		b.b.WriteByte('\n')
	}
	b.b.WriteString(`</pre></div></td><td class="code"><pre class="code `)
	b.b.WriteString(codeClass)
	b.b.WriteString(`">`)
}

// CloseTable closes the structure opened by OpenTable.
func (b *Builder) CloseTable() {
	b.b.WriteString(`</pre></td></tr></tbody></table>`)
}

// OpenSpan writes <span class="..."> for the given classes, joined by a
// space.
func (b *Builder) OpenSpan(classes ...string) {
	b.b.WriteString(`<span class="`)
	for i, c := range classes {
		if i > 0 {
			b.b.WriteByte(' ')
		}
		b.appendClass(c)
	}
	b.b.WriteString(`">`)
}

// CloseSpan writes </span>.
func (b *Builder) CloseSpan() {
	b.b.WriteString(`</span>`)
}

func (b *Builder) appendClass(class string) {
	if !b.ReplaceUnderscoresToHyphens {
		b.b.WriteString(class)
		return
	}
	for i := 0; i < len(class); i++ {
		if class[i] == '_' {
			b.b.WriteByte('-')
		} else {
			b.b.WriteByte(class[i])
		}
	}
}

// AppendEscaped HTML-escapes and appends text verbatim, with no span
// wrapping.
func (b *Builder) AppendEscaped(text string) {
	for i := 0; i < len(text); i++ {
		b.appendEscapedByte(text[i])
	}
}

// AppendSpan wraps text in a single-class span, or appends it bare when
// class is empty.
func (b *Builder) AppendSpan(class, text string) {
	if class == "" {
		b.AppendEscaped(text)
		return
	}
	b.OpenSpan(class)
	b.AppendEscaped(text)
	b.CloseSpan()
}

// AppendQuoted wraps a quoted literal in primaryClass, additionally
// wrapping every escapeChar-led escape sequence in escapeClass. text must
// be a well-formed quoted string: non-empty text starts and ends with the
// same quote character, and every occurrence of escapeChar is followed by
// at least one more character.
func (b *Builder) AppendQuoted(text string, escapeChar byte, primaryClass, escapeClass string) {
	b.OpenSpan(primaryClass)

	insideEscape := false
	escapeOpened := false
	for i := 0; i < len(text); i++ {
		c := text[i]

		if insideEscape {
			b.appendEscapedByte(c)
			insideEscape = false
			continue
		}

		if c == escapeChar {
			if !escapeOpened {
				b.OpenSpan(escapeClass)
				escapeOpened = true
			}
			insideEscape = true
			b.appendEscapedByte(c)
			continue
		}

		if escapeOpened {
			b.CloseSpan()
			escapeOpened = false
		}

		b.appendEscapedByte(c)
	}

	if escapeOpened {
		b.CloseSpan()
	}

	b.CloseSpan()
}

func (b *Builder) appendEscapedByte(c byte) {
	switch c {
	case '&':
		b.b.WriteString("&amp;")
	case '<':
		b.b.WriteString("&lt;")
	case '>':
		b.b.WriteString("&gt;")
	default:
		b.b.WriteByte(c)
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
