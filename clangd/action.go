package clangd

// CSS class names emitted for each syntax role, gathered in one place so
// the whole class scheme can be read here instead of reverse-engineered
// from generated HTML.
const (
	cssPPHash       = "pp-hash"
	cssPPDirective  = "pp-directive"
	cssPPHeaderFile = "pp-header"
	cssPPMacro      = "pp-macro"
	cssPPMacroParam = "pp-macro-param"
	cssPPMacroBody  = "pp-macro-body"
	cssPPOther      = "pp-other"

	cssCommentSingle        = "com-single"
	cssCommentSingleDoxygen = "com-single-dox"
	cssCommentMulti         = "com-multi"
	cssCommentMultiDoxygen  = "com-multi-dox"
	cssCommentTagTodo       = "com-tag-todo"
	cssCommentTagDoxygen    = "com-tag-dox"

	cssKeyword = "keyword"

	cssLiteralNumber             = "lit-num"
	cssLiteralCharacter          = "lit-chr"
	cssLiteralString             = "lit-str"
	cssLiteralStringRawDelimiter = "lit-str-raw-delim"
	cssLiteralPrefix             = "lit-pre"
	cssLiteralSuffix             = "lit-suf"
	cssEscapeSequence            = "esc-seq"
	cssFormatSequence            = "fmt-seq"

	cssUnknown = "unknown"

	cssDisabledCode = "disabled-code"
	cssMacro        = "macro"

	cssParameter         = "param"
	cssOutParameter      = "param-out"
	cssTemplateParameter = "param-tmpl"

	cssVariableLocal  = "var-local"
	cssVariableGlobal = "var-global"
	cssVariableMember = "var-member"
	cssEnumerator     = "enum"

	cssFunctionFree       = "func-free"
	cssFunctionMember     = "func-member"
	cssFunctionVirtual    = "func-virtual"
	cssOverloadedOperator = "oo"

	cssTypeClass     = "type-class"
	cssTypeInterface = "type-interface"
	cssTypeEnum      = "type-enum"
	cssTypeGeneric   = "type"

	cssConcept       = "concept"
	cssDependentName = "dep-name"
	cssNamespace     = "namespace"
)

// semanticTokenCSSClass maps a semantic token's type and modifiers to its
// CSS class, reporting false when info.Type is not one of the
// SemanticTokenType values this package defines.
func semanticTokenCSSClass(info SemanticTokenInfo) (string, bool) {
	variableOrGlobal := func(local string) string {
		if info.Modifiers.IsStatic || info.Modifiers.Scope == ScopeFile || info.Modifiers.Scope == ScopeGlobal {
			return cssVariableGlobal
		}
		return local
	}

	if info.Modifiers.IsOutParameter {
		return cssOutParameter, true
	}

	switch info.Type {
	case TokenParameter:
		return cssParameter, true
	case TokenVariable:
		return variableOrGlobal(cssVariableLocal), true
	case TokenProperty:
		return variableOrGlobal(cssVariableMember), true
	case TokenEnumMember:
		return cssEnumerator, true
	case TokenFunction:
		return cssFunctionFree, true
	case TokenMethod:
		if info.Modifiers.IsVirtual {
			return cssFunctionVirtual, true
		}
		return cssFunctionMember, true
	case TokenClass:
		return cssTypeClass, true
	case TokenInterface:
		return cssTypeInterface, true
	case TokenEnum:
		return cssTypeEnum, true
	case TokenType:
		return cssTypeGeneric, true
	case TokenConcept:
		return cssConcept, true
	case TokenTemplateParameter:
		return cssTemplateParameter, true
	case TokenNamespace:
		return cssNamespace, true
	case TokenDisabledCode:
		return cssDisabledCode, true
	case TokenMacro:
		return cssMacro, true
	case TokenUnknown:
		if info.Modifiers.IsDependentName {
			return cssDependentName, true
		}
		// clangd does not report attributes; identifiers from disabled
		// code that weren't already caught by TokenDisabledCode also
		// land here.
		return cssUnknown, true
	}

	return "", false
}

// specialMeaningIdentifiers lists keyword-shaped identifiers that act as
// keywords only when clangd reports no semantic info for them; when it
// does, the occurrence is some other use of the name (e.g. a variable
// called "final") and should be colored by that semantic info instead.
var specialMeaningIdentifiers = []string{
	"final", "override",
	"transaction_safe", "transaction_safe_dynamic",
	"import", "module",
	"pre", "post",
	"trivially_relocatable_if_eligible", "replaceable_if_eligible",
}

// action is what the HTML generator actually does with one code token:
// write raw escaped text, optionally wrapped in a span.
type action struct {
	cssClass       string
	openSpan       bool
	closeSpan      bool
	isDisabledCode bool
	isSemantic     bool
	colorVariance  SemanticTokenColorVariance
	err            *Error
}

func openPasteClose(cssClass string, disabled bool) action {
	return action{cssClass: cssClass, openSpan: true, closeSpan: true, isDisabledCode: disabled}
}

func openSpanPasteText(cssClass string, disabled bool) action {
	return action{cssClass: cssClass, openSpan: true, isDisabledCode: disabled}
}

func pasteTextCloseSpan() action {
	return action{closeSpan: true}
}

func pasteOnly() action {
	return action{}
}

func identifierAction(info SemanticTokenInfo, variance SemanticTokenColorVariance) action {
	cssClass, ok := semanticTokenCSSClass(info)
	if !ok {
		return action{err: &Error{Reason: ErrInternalTokenToAction}}
	}
	return action{cssClass: cssClass, openSpan: true, closeSpan: true, isSemantic: true, colorVariance: variance}
}

// tokenToAction translates one reconciled code token into a rendering
// action. tok.SemanticInfo is the result of reconciliation (see
// reconcile.go); a token the reconciler never touched leaves it nil.
func tokenToAction(tok CodeToken) action {
	isDisabledCode := tok.SemanticInfo != nil && tok.SemanticInfo.Type == TokenDisabledCode

	if tok.Syntax == Identifier {
		if tok.SemanticInfo != nil {
			return identifierAction(*tok.SemanticInfo, tok.ColorVariance)
		}
		return openPasteClose(cssUnknown, false)
	}

	switch tok.Syntax {
	case PreprocessorHash:
		return openPasteClose(cssPPHash, isDisabledCode)
	case PreprocessorDirective:
		return openPasteClose(cssPPDirective, isDisabledCode)
	case PreprocessorHeaderFile:
		return openPasteClose(cssPPHeaderFile, isDisabledCode)
	case PreprocessorMacro:
		return openPasteClose(cssPPMacro, isDisabledCode)
	case PreprocessorMacroParam:
		return openPasteClose(cssPPMacroParam, isDisabledCode)
	case PreprocessorMacroBody:
		return openPasteClose(cssPPMacroBody, isDisabledCode)
	case PreprocessorOther:
		return openPasteClose(cssPPOther, isDisabledCode)

	case CommentBeginSingle:
		return openSpanPasteText(cssCommentSingle, false)
	case CommentBeginSingleDoxygen:
		return openSpanPasteText(cssCommentSingleDoxygen, false)
	case CommentBeginMulti:
		return openSpanPasteText(cssCommentMulti, false)
	case CommentBeginMultiDoxygen:
		return openSpanPasteText(cssCommentMultiDoxygen, false)
	case CommentEnd:
		return pasteTextCloseSpan()
	case CommentTagTodo:
		return openPasteClose(cssCommentTagTodo, false)
	case CommentTagDoxygen:
		return openPasteClose(cssCommentTagDoxygen, false)

	case Keyword:
		if tok.SemanticInfo != nil {
			for _, name := range specialMeaningIdentifiers {
				if tok.Origin.Str == name {
					return identifierAction(*tok.SemanticInfo, tok.ColorVariance)
				}
			}
		}
		return openPasteClose(cssKeyword, isDisabledCode)

	case LiteralPrefix:
		return openPasteClose(cssLiteralPrefix, isDisabledCode)
	case LiteralSuffix:
		return openPasteClose(cssLiteralSuffix, isDisabledCode)
	case LiteralNumber:
		return openPasteClose(cssLiteralNumber, isDisabledCode)
	case LiteralString:
		return openPasteClose(cssLiteralString, isDisabledCode)
	case LiteralCharBegin:
		return openSpanPasteText(cssLiteralCharacter, isDisabledCode)
	case LiteralStringBegin:
		return openSpanPasteText(cssLiteralString, isDisabledCode)
	case LiteralTextEnd:
		return pasteTextCloseSpan()
	case LiteralStringRawQuote:
		return openPasteClose(cssLiteralString, isDisabledCode)
	case LiteralStringRawDelimiter:
		return openPasteClose(cssLiteralStringRawDelimiter, isDisabledCode)
	case LiteralStringRawParen:
		return openPasteClose(cssLiteralStringRawDelimiter, isDisabledCode)
	case EscapeSequence:
		return openPasteClose(cssEscapeSequence, isDisabledCode)
	case FormatSequence:
		return openPasteClose(cssFormatSequence, isDisabledCode)

	case OverloadedOperator:
		return openPasteClose(cssOverloadedOperator, isDisabledCode)

	case Whitespace, NothingSpecial:
		return pasteOnly()

	case Symbol:
		if isDisabledCode {
			// no CSS class of its own; fold into disabled-code styling
			return openPasteClose(cssDisabledCode, false)
		}
		return pasteOnly()

	case EndOfInput:
		return action{}

	default:
		return action{err: &Error{Reason: ErrInternalTokenToAction}}
	}
}
