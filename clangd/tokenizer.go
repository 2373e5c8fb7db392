package clangd

import (
	"github.com/achl-go/achl/parse"
	"github.com/achl-go/achl/text"
)

// Tokenizer turns C-family source into a flat stream of CodeToken values. It
// has no awareness of semantic tokens — attaching those happens afterward,
// during reconciliation (reconcile.go) — so the same Tokenizer serves any
// caller that only wants lexical structure.
type Tokenizer struct {
	cursor   *parse.Cursor
	keywords []string

	preprocessorState PreprocessorState
	contextState      ContextState

	preprocessorMacroParams []string
	rawStringLiteralDelim   string
}

// NewTokenizer builds a Tokenizer over code. keywords need not be sorted;
// isKeyword scans them linearly so it can compare splice-aware.
func NewTokenizer(code string, keywords []string) *Tokenizer {
	kw := append([]string(nil), keywords...)
	return &Tokenizer{cursor: parse.NewCursor(code), keywords: kw}
}

// HasReachedEnd reports whether the tokenizer has consumed all input. A
// true result doesn't mean tokens have stopped: a pending comment-close or
// the final EndOfInput token may still be emitted.
func (t *Tokenizer) HasReachedEnd() bool {
	return t.cursor.HasReachedEnd()
}

// CurrentPosition returns the tokenizer's current logical position.
func (t *Tokenizer) CurrentPosition() Position {
	return t.cursor.CurrentPosition()
}

func (t *Tokenizer) emptyMatch() Fragment {
	return t.cursor.EmptyMatch()
}

func (t *Tokenizer) errAt(reason ErrorReason) error {
	return newError(reason, t.CurrentPosition())
}

func tok(origin Fragment, syntax SyntaxToken) CodeToken {
	return CodeToken{Syntax: syntax, Origin: origin}
}

// FillWithTokens tokenizes the entire buffer, returning every token up to
// and including the terminal EndOfInput token.
func (t *Tokenizer) FillWithTokens(highlightPrintfFormatting bool) ([]CodeToken, error) {
	var tokens []CodeToken
	for {
		token, err := t.NextCodeToken(highlightPrintfFormatting)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		if token.Syntax == EndOfInput {
			return tokens, nil
		}
	}
}

// NextCodeToken produces the next lexical token from the buffer.
func (t *Tokenizer) NextCodeToken(highlightPrintfFormatting bool) (CodeToken, error) {
	switch t.contextState {
	case ContextLiteralEndOptionalSuffix:
		t.contextState = ContextNone
		if id := t.cursor.ParseIdentifier(); !id.Empty() {
			return tok(id, LiteralSuffix), nil
		}
		return t.nextCodeTokenContextNone()

	case ContextNone:
		return t.nextCodeTokenContextNone()

	case ContextCommentSingle:
		return t.nextCodeTokenContextComment(false, false)
	case ContextCommentSingleDoxygen:
		return t.nextCodeTokenContextComment(false, true)
	case ContextCommentMulti:
		return t.nextCodeTokenContextComment(true, false)
	case ContextCommentMultiDoxygen:
		return t.nextCodeTokenContextComment(true, true)
	case ContextCommentEnd:
		t.contextState = ContextNone
		return tok(t.emptyMatch(), CommentEnd), nil

	case ContextLiteralCharacter:
		return t.nextCodeTokenQuotedLiteral('\'', false, highlightPrintfFormatting)
	case ContextLiteralString:
		return t.nextCodeTokenQuotedLiteral('"', true, highlightPrintfFormatting)

	case ContextLiteralStringRawQuoteOpen:
		if quote := t.cursor.ParseExactly('"'); !quote.Empty() {
			t.contextState = ContextLiteralStringRawDelimiterOpen
			return tok(quote, LiteralStringRawQuote), nil
		}
		return CodeToken{}, t.errAt(ErrInternalRawStringLiteralQuoteOpen)

	case ContextLiteralStringRawDelimiterOpen:
		t.contextState = ContextLiteralStringRawParenOpen
		if delim := t.cursor.ParseRawStringLiteralDelimiterOpen(); !delim.Empty() {
			t.rawStringLiteralDelim = delim.Str
			return tok(delim, LiteralStringRawDelimiter), nil
		}
		return t.nextRawStringParenOpen()

	case ContextLiteralStringRawParenOpen:
		return t.nextRawStringParenOpen()

	case ContextLiteralStringRawBody:
		t.contextState = ContextLiteralStringRawParenClose
		if body := t.cursor.ParseRawStringLiteralBody(t.rawStringLiteralDelim); !body.Empty() {
			return tok(body, LiteralString), nil
		}
		return t.nextRawStringParenClose()

	case ContextLiteralStringRawParenClose:
		return t.nextRawStringParenClose()

	case ContextLiteralStringRawDelimiterClose:
		t.contextState = ContextLiteralStringRawQuoteClose
		delim := t.rawStringLiteralDelim
		t.rawStringLiteralDelim = ""
		if d := t.cursor.ParseRawStringLiteralDelimiterClose(delim); !d.Empty() {
			return tok(d, LiteralStringRawDelimiter), nil
		}
		return t.nextRawStringQuoteClose()

	case ContextLiteralStringRawQuoteClose:
		return t.nextRawStringQuoteClose()
	}

	return CodeToken{}, t.errAt(ErrInternalUnhandledContext)
}

func (t *Tokenizer) nextRawStringParenOpen() (CodeToken, error) {
	if paren := t.cursor.ParseExactly('('); !paren.Empty() {
		t.contextState = ContextLiteralStringRawBody
		return tok(paren, LiteralStringRawParen), nil
	}
	return CodeToken{}, t.errAt(ErrInternalRawStringLiteralParenOpen)
}

func (t *Tokenizer) nextRawStringParenClose() (CodeToken, error) {
	if paren := t.cursor.ParseExactly(')'); !paren.Empty() {
		t.contextState = ContextLiteralStringRawDelimiterClose
		return tok(paren, LiteralStringRawParen), nil
	}
	return CodeToken{}, t.errAt(ErrInternalRawStringLiteralParenClose)
}

func (t *Tokenizer) nextRawStringQuoteClose() (CodeToken, error) {
	if quote := t.cursor.ParseExactly('"'); !quote.Empty() {
		t.contextState = ContextNone
		return tok(quote, LiteralStringRawQuote), nil
	}
	return CodeToken{}, t.errAt(ErrInternalRawStringLiteralQuoteClose)
}

func (t *Tokenizer) onParsedNewline() {
	t.preprocessorState = LineBegin
	t.preprocessorMacroParams = nil
}

func (t *Tokenizer) nextCodeTokenContextNone() (CodeToken, error) {
	if t.cursor.HasReachedEnd() {
		return tok(t.emptyMatch(), EndOfInput), nil
	}

	// Comments are checked first: they outrank everything else in parsing
	// priority except trigraphs (unsupported) and splices (handled at the
	// iterator level).
	if c := t.cursor.ParseLiteral("///"); !c.Empty() {
		t.contextState = ContextCommentSingleDoxygen
		return tok(c, CommentBeginSingleDoxygen), nil
	}
	if c := t.cursor.ParseLiteral("//"); !c.Empty() {
		t.contextState = ContextCommentSingle
		return tok(c, CommentBeginSingle), nil
	}
	// "/**/" must be checked explicitly: it contains "/**", which would
	// otherwise be read as the start of a doc comment.
	if c := t.cursor.ParseLiteral("/**/"); !c.Empty() {
		t.contextState = ContextCommentEnd
		return tok(c, CommentBeginMulti), nil
	}
	if c := t.cursor.ParseLiteral("/**"); !c.Empty() {
		t.contextState = ContextCommentMultiDoxygen
		return tok(c, CommentBeginMultiDoxygen), nil
	}
	if c := t.cursor.ParseLiteral("/*"); !c.Empty() {
		t.contextState = ContextCommentMulti
		return tok(c, CommentBeginMulti), nil
	}

	if ws := t.cursor.ParseNonNewlineWhitespace(); !ws.Empty() {
		return tok(ws, Whitespace), nil
	}
	if nl := t.cursor.ParseNewlines(); !nl.Empty() {
		t.onParsedNewline()
		return tok(nl, Whitespace), nil
	}

	return t.nextCodeTokenPreprocessor()
}

// nextCodeTokenPreprocessor implements the per-line preprocessor state
// machine. Design notes, carried over from the original implementation:
//
// #if/#elif/#endif and other directives without a dedicated state take a
// varying, unbounded number of tokens (even __has_include(<file>) inside a
// condition) — the pragmatic choice is to accept anything as
// preprocessor_other while still coloring string and integer literals.
// #ifdef/#ifndef/#elifdef/#elifndef take a macro name, like #undef.
//
//	#define IDENTIFIER identifier                 -> hash directive macro-name macro-body
//	#define IDENTIFIER(param) body-with-param      -> hash directive macro-name (macro-param | keywords | literals | #/##)*
//	#undef IDENTIFIER                              -> hash directive macro-name
//	#include "file" / <file>                       -> hash directive header-file (anything else is a syntax error)
//	#line 123 "filename"                           -> hash directive number [string]
//	#error / #warning / #pragma / unknown-directive -> hash directive other*
func (t *Tokenizer) nextCodeTokenPreprocessor() (CodeToken, error) {
	switch t.preprocessorState {
	case LineBegin:
		if hash := t.cursor.ParseExactly('#'); !hash.Empty() {
			t.preprocessorState = AfterHash
			return tok(hash, PreprocessorHash), nil
		}
		t.preprocessorState = NoPreprocessor
		return t.nextCodeTokenBasic(false)

	case NoPreprocessor:
		return t.nextCodeTokenBasic(false)

	case AfterHash:
		if id := t.cursor.ParseIdentifier(); !id.Empty() {
			t.preprocessorState = preprocessorDirectiveToState(id.Str)
			return tok(id, PreprocessorDirective), nil
		}
		return CodeToken{}, t.errAt(ErrSyntax)

	case AfterDefine:
		if id := t.cursor.ParseIdentifier(); !id.Empty() {
			t.preprocessorState = AfterDefineIdentifier
			return tok(id, PreprocessorMacro), nil
		}
		return CodeToken{}, t.errAt(ErrSyntax)

	case AfterDefineIdentifier:
		if paren := t.cursor.ParseExactly('('); !paren.Empty() {
			t.preprocessorState = AfterDefineIdentifierParenOpen
			return tok(paren, NothingSpecial), nil
		}
		t.preprocessorState = MacroBody
		return t.nextCodeTokenBasic(true)

	case MacroBody:
		return t.nextCodeTokenBasic(true)

	case AfterDefineIdentifierParenOpen:
		// For simplicity this accepts identifier/","/"..." in any order,
		// including combinations that aren't valid C++. Detecting invalid
		// code is not this tokenizer's job.
		if paren := t.cursor.ParseExactly(')'); !paren.Empty() {
			t.preprocessorState = MacroBody
			return tok(paren, NothingSpecial), nil
		}
		if id := t.cursor.ParseIdentifier(); !id.Empty() {
			t.preprocessorMacroParams = append(t.preprocessorMacroParams, id.Str)
			return tok(id, PreprocessorMacroParam), nil
		}
		if comma := t.cursor.ParseExactly(','); !comma.Empty() {
			return tok(comma, NothingSpecial), nil
		}
		if ellipsis := t.cursor.ParseLiteral("..."); !ellipsis.Empty() {
			return tok(ellipsis, NothingSpecial), nil
		}
		return CodeToken{}, t.errAt(ErrSyntax)

	case AfterConditionalOrUndef:
		if id := t.cursor.ParseIdentifier(); !id.Empty() {
			return tok(id, PreprocessorMacro), nil
		}
		return CodeToken{}, t.errAt(ErrSyntax)

	case AfterInclude:
		if q := t.cursor.ParseQuoted('<', '>'); !q.Empty() {
			return tok(q, PreprocessorHeaderFile), nil
		}
		if q := t.cursor.ParseQuoted('"', '"'); !q.Empty() {
			return tok(q, PreprocessorHeaderFile), nil
		}
		return CodeToken{}, t.errAt(ErrSyntax)

	case AfterErrorWarning:
		// These can have arbitrary syntax (except comments), so the whole
		// rest of the message is one preprocessor_other token — it may
		// contain unbalanced parens and quotes.
		if msg := t.cursor.ParsePreprocessorDiagnosticMessage(); !msg.Empty() {
			return tok(msg, PreprocessorOther), nil
		}
		return CodeToken{}, t.errAt(ErrInternalUnhandledPreprocessor)

	case AfterLine, AfterOther:
		if q := t.cursor.ParseQuoted('"', '"'); !q.Empty() {
			return tok(q, LiteralString), nil
		}
		// Directives other than macros only support integer literals.
		if digits := t.cursor.ParseDigits(); !digits.Empty() {
			return tok(digits, LiteralNumber), nil
		}
		if id := t.cursor.ParseIdentifier(); !id.Empty() {
			return tok(id, PreprocessorOther), nil
		}
		if sym := t.cursor.ParseSymbols(); !sym.Empty() {
			return tok(sym, PreprocessorOther), nil
		}
		return CodeToken{}, t.errAt(ErrSyntax)
	}

	return CodeToken{}, t.errAt(ErrInternalUnhandledPreprocessor)
}

func preprocessorDirectiveToState(directive string) PreprocessorState {
	switch {
	case text.CompareSplicedWithRaw(directive, "include"):
		return AfterInclude
	case text.CompareSplicedWithRaw(directive, "define"):
		return AfterDefine
	case text.CompareSplicedWithRaw(directive, "ifdef"),
		text.CompareSplicedWithRaw(directive, "ifndef"),
		text.CompareSplicedWithRaw(directive, "elifdef"),
		text.CompareSplicedWithRaw(directive, "elifndef"),
		text.CompareSplicedWithRaw(directive, "undef"):
		return AfterConditionalOrUndef
	case text.CompareSplicedWithRaw(directive, "line"):
		return AfterLine
	case text.CompareSplicedWithRaw(directive, "error"),
		text.CompareSplicedWithRaw(directive, "warning"):
		return AfterErrorWarning
	default:
		return AfterOther
	}
}

func (t *Tokenizer) nextCodeTokenContextComment(isMultiline, isDoxygen bool) (CodeToken, error) {
	if isDoxygen {
		if tag := t.cursor.ParseCommentTagDoxygen(); !tag.Empty() {
			return tok(tag, CommentTagDoxygen), nil
		}
	}
	if tag := t.cursor.ParseCommentTagTodo(); !tag.Empty() {
		return tok(tag, CommentTagTodo), nil
	}

	if isMultiline {
		var body Fragment
		if isDoxygen {
			body = t.cursor.ParseCommentMultiDoxygenBody()
		} else {
			body = t.cursor.ParseCommentMultiBody()
		}
		if !body.Empty() {
			return tok(body, NothingSpecial), nil
		}

		if end := t.cursor.ParseLiteral("*/"); !end.Empty() {
			t.contextState = ContextNone
			return tok(end, CommentEnd), nil
		}
	} else {
		var body Fragment
		if isDoxygen {
			body = t.cursor.ParseCommentSingleDoxygenBody()
		} else {
			body = t.cursor.ParseCommentSingleBody()
		}
		if !body.Empty() {
			return tok(body, NothingSpecial), nil
		}

		if nl := t.cursor.ParseNewlines(); !nl.Empty() {
			t.contextState = ContextNone
			t.onParsedNewline()
			return tok(nl, CommentEnd), nil
		}

		// End of file also closes a single-line comment, so CommentEnd is
		// emitted before context-none code produces EndOfInput.
		if t.cursor.HasReachedEnd() {
			t.contextState = ContextNone
			return tok(t.emptyMatch(), CommentEnd), nil
		}
	}

	return CodeToken{}, t.errAt(ErrInternalUnhandledComment)
}

func (t *Tokenizer) nextCodeTokenQuotedLiteral(delimiter byte, allowSuffix, highlightPrintfFormatting bool) (CodeToken, error) {
	if esc := t.cursor.ParseEscapeSequence(); !esc.Empty() {
		return tok(esc, EscapeSequence), nil
	}
	if highlightPrintfFormatting {
		if fmtSeq := t.cursor.ParseFormatSequencePrintf(); !fmtSeq.Empty() {
			return tok(fmtSeq, FormatSequence), nil
		}
	}
	if body := t.cursor.ParseTextLiteralBody(delimiter); !body.Empty() {
		return tok(body, NothingSpecial), nil
	}
	if delim := t.cursor.ParseExactly(delimiter); !delim.Empty() {
		if allowSuffix {
			t.contextState = ContextLiteralEndOptionalSuffix
		} else {
			t.contextState = ContextNone
		}
		return tok(delim, LiteralTextEnd), nil
	}
	return CodeToken{}, t.errAt(ErrSyntax)
}

// isKeyword scans t.keywords linearly, comparing splice-aware: identifier
// may itself carry a line-continuation splice (e.g. "in\<newline>t"), so a
// plain string-equality or binary search would miss a keyword spelled that
// way.
func (t *Tokenizer) isKeyword(identifier string) bool {
	for _, kw := range t.keywords {
		if text.CompareSplicedWithRaw(identifier, kw) {
			return true
		}
	}
	return false
}

func (t *Tokenizer) isInMacroParams(param string) bool {
	for _, p := range t.preprocessorMacroParams {
		if text.CompareSplicedSymmetric(p, param) {
			return true
		}
	}
	return false
}

func (t *Tokenizer) nextCodeTokenBasic(insideMacroBody bool) (CodeToken, error) {
	if prefix := t.cursor.ParseRawStringLiteralPrefix(); !prefix.Empty() {
		t.contextState = ContextLiteralStringRawQuoteOpen
		return tok(prefix, LiteralPrefix), nil
	}
	if prefix := t.cursor.ParseTextLiteralPrefix('\''); !prefix.Empty() {
		return tok(prefix, LiteralPrefix), nil
	}
	if prefix := t.cursor.ParseTextLiteralPrefix('"'); !prefix.Empty() {
		return tok(prefix, LiteralPrefix), nil
	}
	if quote := t.cursor.ParseExactly('\''); !quote.Empty() {
		t.contextState = ContextLiteralCharacter
		return tok(quote, LiteralCharBegin), nil
	}
	if quote := t.cursor.ParseExactly('"'); !quote.Empty() {
		t.contextState = ContextLiteralString
		return tok(quote, LiteralStringBegin), nil
	}
	if lit := t.cursor.ParseNumericLiteral(); !lit.Empty() {
		t.contextState = ContextLiteralEndOptionalSuffix
		return tok(lit, LiteralNumber), nil
	}
	if id := t.cursor.ParseIdentifier(); !id.Empty() {
		if t.isKeyword(id.Str) {
			return tok(id, Keyword), nil
		}
		if insideMacroBody {
			if t.isInMacroParams(id.Str) {
				return tok(id, PreprocessorMacroParam), nil
			}
			return tok(id, PreprocessorMacroBody), nil
		}
		return tok(id, Identifier), nil
	}
	if hash := t.cursor.ParseExactly('#'); !hash.Empty() {
		if insideMacroBody {
			return tok(hash, PreprocessorHash), nil
		}
		return CodeToken{}, t.errAt(ErrSyntax)
	}
	// Only one symbol is parsed at a time: adjacent symbols can each be a
	// token of a different kind (bracket, operator, overloaded operator).
	if sym := t.cursor.ParseSymbol(); !sym.Empty() {
		if insideMacroBody {
			return tok(sym, PreprocessorMacroBody), nil
		}
		return tok(sym, Symbol), nil
	}
	return CodeToken{}, t.errAt(ErrSyntax)
}
