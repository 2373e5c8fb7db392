package text

import "strings"

// RenderLocatedSpan formats a LocatedSpan the way the mirror and gcc error
// reports do: a one-based line number, the full source line, and an
// underline beneath the span — '~' repeated for its length, or a single '^'
// for a zero-length span. Indentation before the underline mirrors the
// original line's whitespace byte for byte so tabs line up under tabs.
func RenderLocatedSpan(span LocatedSpan) string {
	var b strings.Builder
	b.WriteString("line ")
	b.WriteString(itoa(span.LineNumber() + 1))
	b.WriteString(":\n")

	line := span.Line()
	b.WriteString(line)
	if line == "" || line[len(line)-1] != '\n' {
		b.WriteByte('\n')
	}

	for i := 0; i < span.Column(); i++ {
		if i < len(line) && line[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}

	if span.Length() == 0 {
		b.WriteByte('^')
	} else {
		for i := 0; i < span.Length(); i++ {
			b.WriteByte('~')
		}
	}
	b.WriteByte('\n')

	return b.String()
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
