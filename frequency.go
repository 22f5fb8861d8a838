package huffman

import (
	"sort"
)

// FrequencyTable maps each distinct Symbol in a text to the number of times
// it occurs.  Every count is positive.
type FrequencyTable map[Symbol]uint64

// CountFrequencies counts the occurrences of each Symbol in text.  An empty
// text yields an empty table.
func CountFrequencies(text string) FrequencyTable {
	freqs := make(FrequencyTable)
	for _, r := range text {
		freqs[Symbol(r)]++
	}
	return freqs
}

// Symbols returns the Symbols in this table, sorted ascending.
func (freqs FrequencyTable) Symbols() []Symbol {
	out := make(bySymbol, 0, len(freqs))
	for symbol := range freqs {
		out = append(out, symbol)
	}
	out.Sort()
	return out
}

// Total returns the sum of all counts, saturating at math.MaxUint64.
func (freqs FrequencyTable) Total() uint64 {
	var total uint64
	for _, freq := range freqs {
		total = addSaturating(total, freq)
	}
	return total
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}
