package clangd

import "github.com/achl-go/achl/text"

// Position, Range and Fragment are the text substrate types, aliased into
// this package so the tokenizer and reconciler read naturally without a
// text. qualifier on every line.
type (
	Position = text.Position
	Range    = text.Range
	Fragment = text.Fragment
)
