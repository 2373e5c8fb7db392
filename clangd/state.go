package clangd

// PreprocessorState tracks where on a logical line the tokenizer is
// relative to a preprocessor directive. It resets to LineBegin at the start
// of every logical line.
type PreprocessorState int

const (
	// LineBegin is the state before any non-whitespace character has been
	// read on the line. If the first non-whitespace character is '#', the
	// line is a preprocessor directive.
	LineBegin PreprocessorState = iota
	// NoPreprocessor means the first non-whitespace character was read and
	// it was not '#' — this line is definitely not a directive.
	NoPreprocessor

	AfterHash

	AfterDefine
	AfterDefineIdentifier
	AfterDefineIdentifierParenOpen
	// MacroBody covers both object-like and function-like macro bodies.
	MacroBody
	// AfterConditionalOrUndef handles #ifdef, #ifndef, #elifdef, #elifndef
	// and #undef, all of which take exactly one macro-name identifier.
	AfterConditionalOrUndef
	AfterInclude
	AfterLine
	AfterErrorWarning
	// AfterOther is any unrecognized directive name, which falls back to
	// generic preprocessor coloring for the remainder of the line.
	AfterOther
)

// ContextState tracks the tokenizer's position inside a comment or literal
// that can span multiple calls (and, for comments, multiple lines).
type ContextState int

const (
	ContextNone ContextState = iota
	ContextCommentSingle
	ContextCommentSingleDoxygen
	ContextCommentMulti
	ContextCommentMultiDoxygen
	ContextCommentEnd
	ContextLiteralCharacter
	ContextLiteralString
	ContextLiteralEndOptionalSuffix
	ContextLiteralStringRawQuoteOpen
	ContextLiteralStringRawDelimiterOpen
	ContextLiteralStringRawParenOpen
	ContextLiteralStringRawBody
	ContextLiteralStringRawParenClose
	ContextLiteralStringRawDelimiterClose
	ContextLiteralStringRawQuoteClose
)
