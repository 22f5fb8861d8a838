package huffman

import (
	mathbits "math/bits"
)

// log2uint64 returns the number of bits needed to count to x-1, i.e. the
// width of a fixed-length code for an alphabet of x symbols.  It never
// returns less than 1.
func log2uint64(x uint64) uint64 {
	if x <= 1 {
		return 1
	}
	return uint64(64 - mathbits.LeadingZeros64(x-1))
}

// addSaturating returns a+b, or math.MaxUint64 if the sum overflows.
func addSaturating(a, b uint64) uint64 {
	sum, carry := mathbits.Add64(a, b, 0)
	if carry != 0 {
		return ^uint64(0)
	}
	return sum
}
