package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Decoder decodes bit strings produced by an Encoder with the same
// CodeTable.
type Decoder struct {
	table      map[Code]decoderData
	numSymbols int
	minSize    int
	maxSize    int
}

// NewDecoder builds a Decoder for the given table.
//
// The table usually comes from an artifact on disk, so it is checked rather
// than trusted: it must be non-empty, every code must be a non-empty string
// of '0' and '1', and no code may equal or be a prefix of another.  Errors
// wrap ErrMalformedArtifact.
//
func NewDecoder(table CodeTable) (*Decoder, error) {
	if len(table) == 0 {
		return nil, errors.Wrap(ErrMalformedArtifact, "empty code table")
	}

	sorted := make(byCode, 0, len(table))
	for symbol, hc := range table {
		if !symbol.Valid() {
			return nil, errors.Wrapf(ErrMalformedArtifact, "invalid symbol %d", symbol)
		}
		if !hc.Valid() {
			return nil, errors.Wrapf(ErrMalformedArtifact, "invalid code %s for symbol %q", hc, rune(symbol))
		}
		sorted = append(sorted, symbolAndCode{symbol, hc})
	}
	sorted.Sort()

	minSize, maxSize := table.sizes()

	// len(d.table) is about n×log2(n) when filled.
	numTableSlots := uint64(len(table)) * log2uint64(uint64(len(table)))

	d := &Decoder{
		table:      make(map[Code]decoderData, numTableSlots),
		numSymbols: len(table),
		minSize:    minSize,
		maxSize:    maxSize,
	}
	for _, item := range sorted {
		if err := fillTable(d.table, item.symbol, item.code); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Decode reverses Encoder.Encode.  Bits are matched greedily against the
// code table; since the codes are prefix-free, the first complete code found
// is the only one that can match.
//
// Returns an error wrapping ErrUnmatchedBits if bits contains anything other
// than '0' and '1', if some run of bits is not the start of any code, or if
// bits ends partway through a code.
//
func (d *Decoder) Decode(bits string) (string, error) {
	var sb strings.Builder
	if d.maxSize > 0 {
		sb.Grow(len(bits) / d.maxSize)
	}

	start := 0
	for index := 0; index < len(bits); index++ {
		if bit := bits[index]; bit != '0' && bit != '1' {
			return "", errors.Wrapf(ErrUnmatchedBits, "invalid bit %q at offset %d", bit, index)
		}
		symbol, minSize, _ := d.Lookup(Code(bits[start : index+1]))
		if minSize == 0 {
			return "", errors.Wrapf(ErrUnmatchedBits, "bits %q at offset %d match no code", bits[start:index+1], start)
		}
		if symbol != InvalidSymbol {
			sb.WriteRune(rune(symbol))
			start = index + 1
		}
	}
	if start != len(bits) {
		return "", errors.Wrapf(ErrUnmatchedBits, "input ends inside a code: %d trailing bits %q", len(bits)-start, bits[start:])
	}
	return sb.String(), nil
}

// Lookup attempts to decode a Code into a Symbol.
//
// If hc is a complete code, symbol >= 0 and minSize == maxSize == hc.Size().
//
// If hc is a proper prefix of one or more codes, symbol == InvalidSymbol and
// minSize and maxSize are the bit lengths of the shortest and longest of
// those codes.
//
// If hc is neither, symbol == InvalidSymbol and minSize == maxSize == 0.
//
func (d *Decoder) Lookup(hc Code) (symbol Symbol, minSize int, maxSize int) {
	dd, found := d.table[hc]
	if !found {
		return InvalidSymbol, 0, 0
	}
	return dd.symbol, dd.minSize, dd.maxSize
}

// NumSymbols is the number of symbols in the code.
func (d *Decoder) NumSymbols() int {
	return d.numSymbols
}

// MinSize is the bit length of the shortest legal code.
func (d *Decoder) MinSize() int {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d *Decoder) MaxSize() int {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make(byPrefix, 0, len(d.table))
	for hc := range d.table {
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		dd := d.table[hc]
		fmt.Fprintf(&buf, "\tLookup(%s) = {%d, %d, %d}\n", hc, dd.symbol, dd.minSize, dd.maxSize)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

type decoderData struct {
	symbol  Symbol
	minSize int
	maxSize int
}

// fillTable records hc as the code for symbol, then walks up through every
// proper prefix of hc (down to the empty prefix), marking each one as an
// interior position and widening its min/max sizes to cover hc.
func fillTable(table map[Code]decoderData, symbol Symbol, hc Code) error {
	size := hc.Size()

	if ddOld, found := table[hc]; found {
		if ddOld.symbol != InvalidSymbol {
			return errors.Wrapf(ErrMalformedArtifact, "code %s is assigned to both %q and %q", hc, rune(ddOld.symbol), rune(symbol))
		}
		return errors.Wrapf(ErrMalformedArtifact, "code %s for %q is a prefix of another code", hc, rune(symbol))
	}
	table[hc] = decoderData{symbol, size, size}

	for prefix := hc[:size-1]; ; prefix = prefix[:len(prefix)-1] {
		ddNew := decoderData{InvalidSymbol, size, size}
		if ddOld, found := table[prefix]; found {
			if ddOld.symbol != InvalidSymbol {
				return errors.Wrapf(ErrMalformedArtifact, "code %s for %q is a prefix of code %s for %q",
					prefix, rune(ddOld.symbol), hc, rune(symbol))
			}
			if ddNew.minSize > ddOld.minSize {
				ddNew.minSize = ddOld.minSize
			}
			if ddNew.maxSize < ddOld.maxSize {
				ddNew.maxSize = ddOld.maxSize
			}

			// If table[prefix] already covers hc, so does every shorter
			// prefix.
			if ddOld == ddNew {
				break
			}
		}
		table[prefix] = ddNew

		if prefix == "" {
			break
		}
	}
	return nil
}

// type byPrefix {{{

type byPrefix []Code

func (list byPrefix) Sort() {
	sort.Sort(list)
}

func (list byPrefix) Len() int {
	return len(list)
}

func (list byPrefix) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byPrefix) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Size() != b.Size() {
		return a.Size() < b.Size()
	}
	return a < b
}

var _ sort.Interface = byPrefix(nil)

// }}}
