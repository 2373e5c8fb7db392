package gcc

import (
	"strings"

	"github.com/achl-go/achl/text"
)

const (
	strInFileIncludedFrom = "In file included from "
	strFrom               = "                 from "
	strNote               = "note:"
	strWarning            = "warning:"
	strError              = "error:"
)

// classifyLine decides what kind of diagnostic line line is, given the
// classification of the line immediately before it (nil at the very start
// of the text) and the code line's captured numbering-prefix length, if
// any. Reports false when no legal transition exists for this input.
func classifyLine(line string, previous *LineClassification, numberingLength *int) (LineClassification, bool) {
	if strings.HasPrefix(line, strInFileIncludedFrom) || strings.HasPrefix(line, strFrom) {
		return Include, true
	}
	if !strings.HasPrefix(line, " ") {
		return Admonition, true
	}
	if previous == nil {
		return 0, false
	}

	switch *previous {
	case Admonition:
		return Code, true
	case Code:
		if isUnderlineLine(line, numberingLength) {
			return Underline, true
		}
		if isDiffLine(line) {
			return Diff, true
		}
		return 0, false
	case Underline:
		if isSeparatorLine(line, numberingLength) {
			return Separator, true
		}
		return Proposition, true
	case Separator:
		return Hint, true
	case Hint:
		return Proposition, true
	case Diff:
		return Code, true
	default:
		return 0, false
	}
}

func isDiffLine(line string) bool {
	return strings.HasPrefix(line, "  +++ |")
}

func skipLineNumbering(line string, n int) string {
	if n > len(line) {
		return line
	}
	return line[n:]
}

func isUnderlineLine(line string, numberingLength *int) bool {
	if numberingLength != nil {
		line = skipLineNumbering(line, *numberingLength)
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c != ' ' && c != '~' && c != '^' {
			return false
		}
	}
	return true
}

func isSeparatorLine(line string, numberingLength *int) bool {
	if numberingLength != nil {
		line = skipLineNumbering(line, *numberingLength)
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c != ' ' && c != '|' {
			return false
		}
	}
	return true
}

// hasLineNumbering looks for a "<spaces><digits><space>|" prefix (GCC 9+'s
// "    14 | " line numbering) and, if found, returns its length (up to and
// including the '|').
func hasLineNumbering(line string) (int, bool) {
	i := 0
	for i < len(line) && line[i] == ' ' {
		i++
	}
	if i == 0 {
		return 0, false
	}

	oldI := i
	for i < len(line) && text.IsDigit(line[i]) {
		i++
	}
	if i == oldI {
		return 0, false
	}

	if i >= len(line) || line[i] != ' ' {
		return 0, false
	}
	i++
	if i >= len(line) || line[i] != '|' {
		return 0, false
	}

	return i + 1, true
}

// numCharsUntilLastMatch returns one past the rightmost index in s
// satisfying pred, or 0 if pred never matches.
func numCharsUntilLastMatch(s string, pred func(byte) bool) int {
	for i := len(s) - 1; i >= 0; i-- {
		if pred(s[i]) {
			return i + 1
		}
	}
	return 0
}

// Tokenizer turns compiler diagnostic text into a sequence of colored
// Tokens, one line classification at a time.
type Tokenizer struct {
	extractor              *text.Extractor
	previousClassification *LineClassification
	lastAdmonitionType     AdmonitionType
	lineNumberingLength    *int
}

func NewTokenizer(diagnosticText string) *Tokenizer {
	return &Tokenizer{extractor: text.NewExtractor(diagnosticText)}
}

func (t *Tokenizer) HasReachedEnd() bool              { return t.extractor.HasReachedEnd() }
func (t *Tokenizer) CurrentLocation() text.LocatedSpan { return t.extractor.CurrentLocation() }

// FillWithTokens classifies and colors every line of the diagnostic text.
func (t *Tokenizer) FillWithTokens() ([]Token, error) {
	var tokens []Token
	for !t.extractor.HasReachedEnd() {
		if err := t.parseLine(&tokens); err != nil {
			return nil, err
		}
	}
	return tokens, nil
}

func (t *Tokenizer) parseLine(tokens *[]Token) error {
	content := strings.TrimSuffix(t.extractor.RemainingLineText().Str(), "\n")

	classification, ok := classifyLine(content, t.previousClassification, t.lineNumberingLength)
	if !ok {
		return newError(ErrCannotClassify, t.extractor.CurrentLocation())
	}

	var err error
	switch classification {
	case Include:
		err = t.parseIncludeLine(tokens)
	case Admonition:
		err = t.parseAdmonitionLine(tokens)
	case Code:
		t.parseCodeLine(tokens, content)
	case Underline:
		t.parseUnderlineLine(tokens)
	case Separator:
		t.parseSeparatorLine(tokens)
	case Hint:
		t.parseHintLine(tokens)
	case Proposition:
		t.parsePropositionLine(tokens)
	case Diff:
		t.parseDiffLine(tokens)
	}
	if err != nil {
		return err
	}

	cl := classification
	t.previousClassification = &cl
	return nil
}

// finishLine flushes whatever remains unconsumed on the current physical
// line (normally just the trailing newline) and advances to the next one.
func (t *Tokenizer) finishLine(tokens *[]Token) {
	rest := t.extractor.ExtractUntilEndOfLine()
	nl := t.extractor.ExtractNCharacters(1)
	combined := rest.Str() + nl.Str()
	if combined != "" {
		*tokens = append(*tokens, Token{combined, ColorNormal})
	}
	t.extractor.LoadNextLine()
}

func (t *Tokenizer) parseIncludeLine(tokens *[]Token) error {
	prefix := t.extractor.ExtractNCharacters(len(strInFileIncludedFrom))
	*tokens = append(*tokens, Token{prefix.Str(), ColorNormal})

	rem := strings.TrimSuffix(t.extractor.RemainingLineText().Str(), "\n")
	n := numCharsUntilLastMatch(rem, func(c byte) bool { return c == ',' || c == ':' })
	if n == 0 {
		return newError(ErrExpectedPathBeforeSeparator, t.extractor.CurrentLocation())
	}

	path := t.extractor.ExtractNCharacters(n)
	*tokens = append(*tokens, Token{path.Str(), ColorHighlight})

	t.finishLine(tokens)
	return nil
}

// severityPrefixIndex finds the earliest occurrence of "note:", "warning:"
// or "error:" in content and reports its byte index and which one matched.
func severityPrefixIndex(content string) (idx int, sev string, found bool) {
	best := -1
	var bestSev string
	for _, s := range []string{strNote, strWarning, strError} {
		if i := strings.Index(content, s); i >= 0 && (best < 0 || i < best) {
			best, bestSev = i, s
		}
	}
	if best < 0 {
		return 0, "", false
	}
	return best, bestSev, true
}

func (t *Tokenizer) parseAdmonitionLine(tokens *[]Token) error {
	content := strings.TrimSuffix(t.extractor.RemainingLineText().Str(), "\n")
	idx, sev, ok := severityPrefixIndex(content)
	if !ok {
		return newError(ErrExpectedSeverityPrefix, t.extractor.CurrentLocation())
	}

	prefix := t.extractor.ExtractNCharacters(idx)
	*tokens = append(*tokens, Token{prefix.Str(), ColorHighlight})

	switch sev {
	case strNote:
		t.lastAdmonitionType = AdmonitionNote
		*tokens = append(*tokens, Token{t.extractor.ExtractNCharacters(len(sev)).Str(), ColorNote})
	case strWarning:
		t.lastAdmonitionType = AdmonitionWarning
		*tokens = append(*tokens, Token{t.extractor.ExtractNCharacters(len(sev)).Str(), ColorWarning})
	case strError:
		t.lastAdmonitionType = AdmonitionError
		*tokens = append(*tokens, Token{t.extractor.ExtractNCharacters(len(sev)).Str(), ColorError})
	}

	body := t.extractor.ExtractUntilEndOfLine()
	*tokens = append(*tokens, parseAdmonitionText(body.Str(), t.lastAdmonitionType)...)

	t.finishLine(tokens)
	return nil
}

func (t *Tokenizer) parseCodeLine(tokens *[]Token, content string) {
	if n, ok := hasLineNumbering(content); ok {
		t.lineNumberingLength = &n
		numbering := t.extractor.ExtractNCharacters(n)
		*tokens = append(*tokens, Token{numbering.Str(), ColorNormal})
	} else {
		t.lineNumberingLength = nil
	}

	code := t.extractor.ExtractUntilEndOfLine()
	*tokens = append(*tokens, Token{code.Str(), ColorNormal})

	t.finishLine(tokens)
}

func (t *Tokenizer) parseUnderlineLine(tokens *[]Token) {
	if t.lineNumberingLength != nil {
		numbering := t.extractor.ExtractNCharacters(*t.lineNumberingLength)
		*tokens = append(*tokens, Token{numbering.Str(), ColorNormal})
	}

	underline := t.extractor.ExtractUntilEndOfLine()
	info := ParseUnderline(underline.Str())
	*tokens = append(*tokens, colorUnderlineRuns(underline.Str(), info)...)

	t.finishLine(tokens)
}

func (t *Tokenizer) parseSeparatorLine(tokens *[]Token) {
	if t.lineNumberingLength != nil {
		numbering := t.extractor.ExtractNCharacters(*t.lineNumberingLength)
		*tokens = append(*tokens, Token{numbering.Str(), ColorNormal})
	}
	rest := t.extractor.ExtractUntilEndOfLine()
	*tokens = append(*tokens, colorNonSpaceRunsCycling(rest.Str())...)
	t.finishLine(tokens)
}

func (t *Tokenizer) parseHintLine(tokens *[]Token) {
	if t.lineNumberingLength != nil {
		numbering := t.extractor.ExtractNCharacters(*t.lineNumberingLength)
		*tokens = append(*tokens, Token{numbering.Str(), ColorNormal})
	}
	rest := t.extractor.ExtractUntilEndOfLine()
	*tokens = append(*tokens, colorNonSpaceRunsCycling(rest.Str())...)
	t.finishLine(tokens)
}

func (t *Tokenizer) parsePropositionLine(tokens *[]Token) {
	if t.lineNumberingLength != nil {
		numbering := t.extractor.ExtractNCharacters(*t.lineNumberingLength)
		*tokens = append(*tokens, Token{numbering.Str(), ColorNormal})
	}
	rest := t.extractor.ExtractUntilEndOfLine()
	*tokens = append(*tokens, colorNonSpaceRunsCycling(rest.Str())...)
	t.finishLine(tokens)
}

func (t *Tokenizer) parseDiffLine(tokens *[]Token) {
	rest := t.extractor.ExtractUntilEndOfLine()
	*tokens = append(*tokens, Token{rest.Str(), ColorHighlight})
	t.finishLine(tokens)
}

// colorUnderlineRuns paints raw (a line of only spaces, '~' and '^') byte
// by byte: info.Main in the highlight color, info.Extra1/Extra2 in the two
// extra-highlight colors, everything else left normal — then collapses the
// result into maximal same-color runs.
func colorUnderlineRuns(raw string, info UnderlineInfo) []Token {
	colors := make([]TokenColor, len(raw))

	paint := func(u UnderlineRun, c TokenColor) {
		if !u.Present() {
			return
		}
		for i := u.FirstColumn; i < u.FirstColumn+u.Length && i < len(colors); i++ {
			colors[i] = c
		}
	}
	paint(info.Main, ColorHighlight)
	paint(info.Extra1, ColorExtraHighlight1)
	paint(info.Extra2, ColorExtraHighlight2)

	return runLengthEncode(raw, colors)
}

func runLengthEncode(raw string, colors []TokenColor) []Token {
	var tokens []Token
	start := 0
	for i := 1; i <= len(raw); i++ {
		if i == len(raw) || colors[i] != colors[start] {
			tokens = append(tokens, Token{raw[start:i], colors[start]})
			start = i
		}
	}
	return tokens
}

// colorNonSpaceRunsCycling colors each maximal run of non-space characters
// in raw, cycling through highlight/extra1/extra2 in left-to-right order;
// runs of spaces stay normal. Used for separator/hint/proposition lines,
// whose columns visually line up beneath an underline's runs.
func colorNonSpaceRunsCycling(raw string) []Token {
	palette := []TokenColor{ColorHighlight, ColorExtraHighlight1, ColorExtraHighlight2}
	var tokens []Token
	i := 0
	runIdx := 0
	for i < len(raw) {
		if raw[i] == ' ' {
			start := i
			for i < len(raw) && raw[i] == ' ' {
				i++
			}
			tokens = append(tokens, Token{raw[start:i], ColorNormal})
			continue
		}
		start := i
		for i < len(raw) && raw[i] != ' ' {
			i++
		}
		tokens = append(tokens, Token{raw[start:i], palette[runIdx%len(palette)]})
		runIdx++
	}
	return tokens
}
