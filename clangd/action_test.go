package clangd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenToActionKeyword(t *testing.T) {
	a := tokenToAction(CodeToken{Syntax: Keyword, Origin: Fragment{Str: "int"}})
	assert.Equal(t, cssKeyword, a.cssClass)
	assert.True(t, a.openSpan)
	assert.True(t, a.closeSpan)
	assert.Nil(t, a.err)
}

func TestTokenToActionPlainIdentifierFallsBackToUnknown(t *testing.T) {
	a := tokenToAction(CodeToken{Syntax: Identifier, Origin: Fragment{Str: "x"}})
	assert.Equal(t, cssUnknown, a.cssClass)
}

func TestTokenToActionSemanticIdentifierUsesSemanticClass(t *testing.T) {
	info := SemanticTokenInfo{Type: TokenFunction}
	a := tokenToAction(CodeToken{Syntax: Identifier, Origin: Fragment{Str: "foo"}, SemanticInfo: &info})
	assert.Equal(t, cssFunctionFree, a.cssClass)
	assert.True(t, a.isSemantic)
}

func TestTokenToActionMethodVirtualVsPlain(t *testing.T) {
	virtual := SemanticTokenInfo{Type: TokenMethod, Modifiers: SemanticTokenModifiers{IsVirtual: true}}
	plain := SemanticTokenInfo{Type: TokenMethod}

	a := tokenToAction(CodeToken{Syntax: Identifier, SemanticInfo: &virtual})
	assert.Equal(t, cssFunctionVirtual, a.cssClass)

	b := tokenToAction(CodeToken{Syntax: Identifier, SemanticInfo: &plain})
	assert.Equal(t, cssFunctionMember, b.cssClass)
}

func TestTokenToActionGlobalVariablePromotedFromLocal(t *testing.T) {
	global := SemanticTokenInfo{Type: TokenVariable, Modifiers: SemanticTokenModifiers{Scope: ScopeGlobal}}
	local := SemanticTokenInfo{Type: TokenVariable}

	a := tokenToAction(CodeToken{Syntax: Identifier, SemanticInfo: &global})
	assert.Equal(t, cssVariableGlobal, a.cssClass)

	b := tokenToAction(CodeToken{Syntax: Identifier, SemanticInfo: &local})
	assert.Equal(t, cssVariableLocal, b.cssClass)
}

func TestTokenToActionOutParameterOverridesType(t *testing.T) {
	info := SemanticTokenInfo{Type: TokenVariable, Modifiers: SemanticTokenModifiers{IsOutParameter: true}}
	a := tokenToAction(CodeToken{Syntax: Identifier, SemanticInfo: &info})
	assert.Equal(t, cssOutParameter, a.cssClass)
}

func TestTokenToActionSpecialMeaningKeywordWithSemanticInfoUsesIdentifierColoring(t *testing.T) {
	info := SemanticTokenInfo{Type: TokenVariable}
	a := tokenToAction(CodeToken{Syntax: Keyword, Origin: Fragment{Str: "final"}, SemanticInfo: &info})
	assert.Equal(t, cssVariableLocal, a.cssClass)
	assert.True(t, a.isSemantic)
}

func TestTokenToActionSpecialMeaningKeywordWithoutSemanticInfoStaysKeyword(t *testing.T) {
	a := tokenToAction(CodeToken{Syntax: Keyword, Origin: Fragment{Str: "final"}})
	assert.Equal(t, cssKeyword, a.cssClass)
}

func TestTokenToActionDisabledCodeFoldsSymbol(t *testing.T) {
	info := SemanticTokenInfo{Type: TokenDisabledCode}
	a := tokenToAction(CodeToken{Syntax: Symbol, Origin: Fragment{Str: ";"}, SemanticInfo: &info})
	assert.Equal(t, cssDisabledCode, a.cssClass)
}

func TestTokenToActionPlainSymbolHasNoClass(t *testing.T) {
	a := tokenToAction(CodeToken{Syntax: Symbol, Origin: Fragment{Str: ";"}})
	assert.Equal(t, "", a.cssClass)
	assert.False(t, a.openSpan)
}

func TestTokenToActionUnknownSemanticDependentName(t *testing.T) {
	info := SemanticTokenInfo{Type: TokenUnknown, Modifiers: SemanticTokenModifiers{IsDependentName: true}}
	a := tokenToAction(CodeToken{Syntax: Identifier, SemanticInfo: &info})
	assert.Equal(t, cssDependentName, a.cssClass)
}

func TestTokenToActionEndOfInputIsNoop(t *testing.T) {
	a := tokenToAction(CodeToken{Syntax: EndOfInput})
	assert.Equal(t, action{}, a)
}

func TestSemanticTokenCSSClassRejectsUndefinedCombination(t *testing.T) {
	_, ok := semanticTokenCSSClass(SemanticTokenInfo{Type: SemanticTokenType(999)})
	require.False(t, ok)
}
