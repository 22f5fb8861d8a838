package huffman

import (
	"fmt"

	"github.com/pkg/errors"
)

// Result holds the output of Compress: the encoded bits and the CodeTable
// needed to decode them.
type Result struct {
	Bits  string
	Table CodeTable

	numSymbols uint64
	textBytes  int
}

// Compress builds a Huffman code for text and encodes text with it.  Returns
// an error wrapping ErrEmptyInput if text is empty.
func Compress(text string) (*Result, error) {
	freqs := CountFrequencies(text)
	t, err := BuildTree(freqs)
	if err != nil {
		return nil, errors.Wrap(err, "huffman.Compress")
	}
	table := t.CodeTable()

	bits, err := NewEncoder(table).Encode(text)
	if err != nil {
		return nil, errors.Wrap(err, "huffman.Compress")
	}

	return &Result{
		Bits:       bits,
		Table:      table,
		numSymbols: t.Freq(),
		textBytes:  len(text),
	}, nil
}

// Decompress decodes bits with table.
func Decompress(bits string, table CodeTable) (string, error) {
	d, err := NewDecoder(table)
	if err != nil {
		return "", errors.Wrap(err, "huffman.Decompress")
	}
	text, err := d.Decode(bits)
	if err != nil {
		return "", errors.Wrap(err, "huffman.Decompress")
	}
	return text, nil
}

// Stats describes how well a text compressed.
type Stats struct {
	// Symbols is the number of symbols in the original text.
	Symbols uint64

	// DistinctSymbols is the number of entries in the code table.
	DistinctSymbols int

	// TextBits is the size of the original text in bits, as UTF-8.
	TextBits uint64

	// FixedBits is the size the text would have with a fixed-length code
	// just wide enough for DistinctSymbols.
	FixedBits uint64

	// EncodedBits is the number of bits in the Huffman encoding.
	EncodedBits uint64
}

// Stats returns statistics about this Result.  Only a Result returned by
// Compress knows the size of its original text.
func (res *Result) Stats() Stats {
	distinct := len(res.Table)
	return Stats{
		Symbols:         res.numSymbols,
		DistinctSymbols: distinct,
		TextBits:        8 * uint64(res.textBytes),
		FixedBits:       res.numSymbols * log2uint64(uint64(distinct)),
		EncodedBits:     uint64(len(res.Bits)),
	}
}

// Ratio returns EncodedBits / TextBits, or 0 if TextBits is 0.
func (s Stats) Ratio() float64 {
	if s.TextBits == 0 {
		return 0
	}
	return float64(s.EncodedBits) / float64(s.TextBits)
}

// String returns a one-line summary of the statistics.
func (s Stats) String() string {
	return fmt.Sprintf("%d symbols (%d distinct): %d bits as UTF-8, %d bits fixed-width, %d bits Huffman (ratio %.3f)",
		s.Symbols, s.DistinctSymbols, s.TextBits, s.FixedBits, s.EncodedBits, s.Ratio())
}

var _ fmt.Stringer = Stats{}
