package huffman

import (
	"strings"

	"github.com/pkg/errors"
)

// Encoder encodes text with a CodeTable.
type Encoder struct {
	table CodeTable
}

// NewEncoder returns an Encoder for the given table.  The table is not
// copied and must not be modified while the Encoder is in use.
func NewEncoder(table CodeTable) *Encoder {
	return &Encoder{table: table}
}

// Encode returns the concatenation of the codes for every symbol of text, in
// order.  Returns an error wrapping ErrMissingSymbol if text holds a symbol
// the table has no code for.
func (e *Encoder) Encode(text string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(text) * e.table.MinSize())
	for offset, r := range text {
		hc, found := e.table[Symbol(r)]
		if !found {
			return "", errors.Wrapf(ErrMissingSymbol, "symbol %q at byte offset %d", r, offset)
		}
		sb.WriteString(string(hc))
	}
	return sb.String(), nil
}

// Table returns the CodeTable this Encoder was built with.
func (e *Encoder) Table() CodeTable {
	return e.table
}
