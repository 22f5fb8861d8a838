package huffman

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Code represents a sequence of bits, written out as the characters '0' and
// '1'.  The first character is the first bit.
type Code string

// ParseCode validates s and returns it as a Code.  A Code must hold at least
// one bit and nothing but '0' and '1'.
func ParseCode(s string) (Code, error) {
	hc := Code(s)
	if !hc.Valid() {
		return "", errors.Wrapf(ErrMalformedArtifact, "invalid code %q", s)
	}
	return hc, nil
}

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// Valid returns true iff this Code is non-empty and made only of '0' and '1'.
func (hc Code) Valid() bool {
	return hc != "" && isBitString(string(hc))
}

// Append returns a new Code with bit appended to the end.
func (hc Code) Append(bit byte) Code {
	if bit == 0 {
		return hc + "0"
	}
	return hc + "1"
}

// HasPrefix returns true iff prefix is a prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

// isBitString returns true iff s is made only of '0' and '1'.  The empty
// string qualifies.
func isBitString(s string) bool {
	return indexNonBit(s) < 0
}

// indexNonBit returns the index of the first byte in s that is neither '0'
// nor '1', or -1.
func indexNonBit(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return i
		}
	}
	return -1
}
