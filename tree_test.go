package huffman

import (
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

// makeTestFreqs returns frequencies with no ties at any stage of the merge,
// so the tree they produce has exactly one possible shape.
func makeTestFreqs() FrequencyTable {
	return FrequencyTable{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45}
}

func makeTestTree() *Tree {
	tree, err := BuildTree(makeTestFreqs())
	if err != nil {
		panic(err)
	}
	return tree
}

func TestBuildTree(t *testing.T) {
	tree := makeTestTree()

	if freq := tree.Freq(); freq != 100 {
		t.Errorf("expected root frequency 100, got %d", freq)
	}
	if n := tree.NumLeaves(); n != 6 {
		t.Errorf("expected 6 leaves, got %d", n)
	}

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tRoot() = 10\n",
		"\t0 = leaf('a', 5)\n",
		"\t1 = leaf('b', 9)\n",
		"\t2 = leaf('c', 12)\n",
		"\t3 = leaf('d', 13)\n",
		"\t4 = leaf('e', 16)\n",
		"\t5 = leaf('f', 45)\n",
		"\t6 = node(0, 1, 14)\n",
		"\t7 = node(2, 3, 25)\n",
		"\t8 = node(6, 4, 30)\n",
		"\t9 = node(7, 8, 55)\n",
		"\t10 = node(5, 9, 100)\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestBuildTree_Empty(t *testing.T) {
	type testRow struct {
		name  string
		freqs FrequencyTable
	}

	testData := [...]testRow{
		{"nil", nil},
		{"empty", FrequencyTable{}},
		{"zeroes", FrequencyTable{'a': 0, 'b': 0}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			tree, err := BuildTree(row.freqs)
			if !errors.Is(err, ErrEmptyInput) {
				t.Errorf("expected ErrEmptyInput, got %v", err)
			}
			if tree != nil {
				t.Errorf("expected nil tree, got %v", tree)
			}
		})
	}
}

func TestBuildTree_SkipsZeroes(t *testing.T) {
	tree, err := BuildTree(FrequencyTable{'a': 3, 'b': 0, 'c': 1})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	table := tree.CodeTable()
	if _, found := table['b']; found {
		t.Errorf("symbol with frequency 0 was assigned a code: %v", table)
	}
	if table.Len() != 2 {
		t.Errorf("expected 2 codes, got %d", table.Len())
	}
}

func TestBuildTree_Saturates(t *testing.T) {
	tree, err := BuildTree(FrequencyTable{'a': math.MaxUint64, 'b': 1})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if freq := tree.Freq(); freq != math.MaxUint64 {
		t.Errorf("expected root frequency %d, got %d", uint64(math.MaxUint64), freq)
	}
}

func TestTree_CodeTable(t *testing.T) {
	table := makeTestTree().CodeTable()

	expectTable := CodeTable{
		'a': "1100",
		'b': "1101",
		'c': "100",
		'd': "101",
		'e': "111",
		'f': "0",
	}
	if !expectTable.Equal(table) {
		t.Errorf("wrong table:\n\texpect: %v\n\tactual: %v", expectTable, table)
	}
}

func TestTree_CodeTable_SingleLeaf(t *testing.T) {
	tree, err := BuildTree(CountFrequencies("aaaa"))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if n := tree.NumLeaves(); n != 1 {
		t.Errorf("expected 1 leaf, got %d", n)
	}
	if freq := tree.Freq(); freq != 4 {
		t.Errorf("expected root frequency 4, got %d", freq)
	}

	table := tree.CodeTable()
	expectTable := CodeTable{'a': "0"}
	if !expectTable.Equal(table) {
		t.Errorf("wrong table:\n\texpect: %v\n\tactual: %v", expectTable, table)
	}
}

func TestNewCodeTable_Empty(t *testing.T) {
	_, err := NewCodeTable("")
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}
