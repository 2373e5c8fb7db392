package clangd

// SyntaxToken enumerates every lexical role the tokenizer can assign to a
// fragment of source text. Semantic information (for Identifier and
// Keyword tokens) is attached separately, during reconciliation against the
// language server's semantic tokens — see reconcile.go.
type SyntaxToken int

const (
	// PreprocessorHash is '#' or '##', both as a directive marker and as
	// the stringize/paste operators inside a macro body.
	PreprocessorHash SyntaxToken = iota
	// PreprocessorDirective is the bare directive name after '#', with no
	// leading '#' of its own. Whitespace may separate the two.
	PreprocessorDirective
	// PreprocessorHeaderFile covers a "quoted" or <bracketed> header name
	// after #include.
	PreprocessorHeaderFile
	PreprocessorMacro
	// PreprocessorMacroParam is a parameter name in a function-like macro's
	// parameter list.
	PreprocessorMacroParam
	PreprocessorMacroBody
	// PreprocessorOther covers anything else in a preprocessor line not
	// already covered: text after #error/#warning and similar. Literals
	// and keywords inside macro bodies still use their regular tokens.
	PreprocessorOther

	CommentBeginSingle
	CommentBeginSingleDoxygen
	CommentBeginMulti
	CommentBeginMultiDoxygen
	CommentEnd
	CommentTagTodo
	CommentTagDoxygen

	Keyword

	// Identifier is any identifier not in the tokenizer's keyword list,
	// reported with no semantic info attached until reconciliation
	// possibly fills it in.
	Identifier

	LiteralPrefix
	LiteralSuffix
	LiteralNumber
	// LiteralString is string text reported as a single token with no
	// escape-sequence tokens inside it: a quoted string in a preprocessor
	// line, or the body of a raw string literal.
	LiteralString
	LiteralCharBegin
	LiteralStringBegin
	// LiteralTextEnd closes both char and string literals.
	LiteralTextEnd
	LiteralStringRawQuote
	LiteralStringRawDelimiter
	LiteralStringRawParen
	EscapeSequence
	FormatSequence

	Whitespace
	// NothingSpecial marks a fragment that is syntactically inside some
	// context but carries no highlight of its own.
	NothingSpecial
	// Symbol is a single punctuation/operator character.
	Symbol
	// OverloadedOperator is a Symbol that reconciliation matched against a
	// semantic token, meaning clangd resolved it to a user-defined
	// operator overload.
	OverloadedOperator

	EndOfInput
)

// CodeToken is one lexical unit of tokenized source. SemanticInfo is nil
// until reconciliation attaches language-server data to it; ColorVariance
// is only meaningful once SemanticInfo is set.
type CodeToken struct {
	Syntax        SyntaxToken
	Origin        Fragment
	SemanticInfo  *SemanticTokenInfo
	ColorVariance SemanticTokenColorVariance
}
