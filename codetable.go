package huffman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// CodeTable maps each Symbol of an alphabet to its Code.  A CodeTable built
// by Tree.CodeTable is prefix-free: no Code is a prefix of another.
//
// On the wire a CodeTable is a JSON object whose keys are one-character
// strings and whose values are the codes, e.g. {"a":"0","b":"10","c":"11"}.
//
type CodeTable map[Symbol]Code

// Len returns the number of symbols in the table.
func (table CodeTable) Len() int {
	return len(table)
}

// Lookup returns the Code for symbol, if any.
func (table CodeTable) Lookup(symbol Symbol) (Code, bool) {
	hc, found := table[symbol]
	return hc, found
}

// Symbols returns the Symbols in this table, sorted ascending.
func (table CodeTable) Symbols() []Symbol {
	out := make(bySymbol, 0, len(table))
	for symbol := range table {
		out = append(out, symbol)
	}
	out.Sort()
	return out
}

// MinSize is the bit length of the shortest code, or 0 for an empty table.
func (table CodeTable) MinSize() int {
	minSize, _ := table.sizes()
	return minSize
}

// MaxSize is the bit length of the longest code, or 0 for an empty table.
func (table CodeTable) MaxSize() int {
	_, maxSize := table.sizes()
	return maxSize
}

func (table CodeTable) sizes() (minSize int, maxSize int) {
	first := true
	for _, hc := range table {
		size := hc.Size()
		if first {
			first = false
			minSize, maxSize = size, size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	}
	return
}

// Equal returns true iff both tables hold the same symbols with the same
// codes.
func (table CodeTable) Equal(other CodeTable) bool {
	if len(table) != len(other) {
		return false
	}
	for symbol, hc := range table {
		if otherCode, found := other[symbol]; !found || otherCode != hc {
			return false
		}
	}
	return true
}

// Validate checks that the table is non-empty, that every key is a Unicode
// scalar value, that every code is a non-empty string of '0' and '1', and
// that no code is a prefix of another (including duplicates).  Errors wrap
// ErrMalformedArtifact.
//
func (table CodeTable) Validate() error {
	if len(table) == 0 {
		return errors.Wrap(ErrMalformedArtifact, "empty code table")
	}

	sorted := make(byCode, 0, len(table))
	for symbol, hc := range table {
		if !symbol.Valid() {
			return errors.Wrapf(ErrMalformedArtifact, "invalid symbol %d", symbol)
		}
		if !hc.Valid() {
			return errors.Wrapf(ErrMalformedArtifact, "invalid code %s for symbol %q", hc, rune(symbol))
		}
		sorted = append(sorted, symbolAndCode{symbol, hc})
	}
	sorted.Sort()

	// In lexical order, a code that is a prefix of any other code is also
	// a prefix of the code right after it.

	for index := 1; index < len(sorted); index++ {
		prev, next := sorted[index-1], sorted[index]
		if next.code.HasPrefix(prev.code) {
			return errors.Wrapf(ErrMalformedArtifact, "code %s for %q is a prefix of code %s for %q",
				prev.code, rune(prev.symbol), next.code, rune(next.symbol))
		}
	}
	return nil
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (table CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", table.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", table.MaxSize())
	for _, symbol := range table.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%q) = %s\n", rune(symbol), table[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// MarshalJSON fulfills json.Marshaler.
func (table CodeTable) MarshalJSON() ([]byte, error) {
	raw := make(map[string]string, len(table))
	for symbol, hc := range table {
		if !symbol.Valid() {
			return nil, errors.Errorf("huffman: cannot marshal invalid symbol %d", symbol)
		}
		raw[string(rune(symbol))] = string(hc)
	}
	return json.Marshal(raw)
}

// UnmarshalJSON fulfills json.Unmarshaler.  The decoded table must pass
// Validate.
func (table *CodeTable) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrapf(ErrMalformedArtifact, "code table: %v", err)
	}

	out := make(CodeTable, len(raw))
	for key, value := range raw {
		r, size := utf8.DecodeRuneInString(key)
		if size == 0 || size != len(key) || (r == utf8.RuneError && size == 1) {
			return errors.Wrapf(ErrMalformedArtifact, "code table key %q is not a single character", key)
		}
		hc, err := ParseCode(value)
		if err != nil {
			return errors.Wrapf(err, "code table entry %q", key)
		}
		out[Symbol(r)] = hc
	}

	if err := out.Validate(); err != nil {
		return err
	}
	*table = out
	return nil
}

var _ json.Marshaler = CodeTable(nil)
var _ json.Unmarshaler = (*CodeTable)(nil)

// type symbolAndCode + type byCode {{{

type symbolAndCode struct {
	symbol Symbol
	code   Code
}

type byCode []symbolAndCode

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.code != b.code {
		return a.code < b.code
	}
	return a.symbol < b.symbol
}

var _ sort.Interface = byCode(nil)

// }}}
