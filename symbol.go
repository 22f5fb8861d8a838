package huffman

import (
	"unicode/utf8"
)

// Symbol represents a single Unicode scalar value in the text being coded.
type Symbol rune

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(utf8.MaxRune)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// Valid returns true iff s is a Unicode scalar value.
func (s Symbol) Valid() bool {
	return s >= 0 && s <= MaxSymbol && utf8.ValidRune(rune(s))
}
