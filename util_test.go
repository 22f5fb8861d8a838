package huffman

import (
	"math"
	"testing"
)

func TestLog2Uint64(t *testing.T) {
	type testRow struct {
		x      uint64
		expect uint64
	}

	testData := [...]testRow{
		{0, 1},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{256, 8},
		{257, 9},
		{math.MaxUint64, 64},
	}
	for _, row := range testData {
		if actual := log2uint64(row.x); actual != row.expect {
			t.Errorf("log2uint64(%d): expected %d, got %d", row.x, row.expect, actual)
		}
	}
}

func TestAddSaturating(t *testing.T) {
	if actual := addSaturating(2, 3); actual != 5 {
		t.Errorf("expected 5, got %d", actual)
	}
	if actual := addSaturating(math.MaxUint64, 1); actual != math.MaxUint64 {
		t.Errorf("expected %d, got %d", uint64(math.MaxUint64), actual)
	}
	if actual := addSaturating(math.MaxUint64-1, 1); actual != math.MaxUint64 {
		t.Errorf("expected %d, got %d", uint64(math.MaxUint64), actual)
	}
}
