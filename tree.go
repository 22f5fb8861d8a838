package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Tree is a Huffman tree.  Its nodes live in a single arena and refer to
// their children by index, so the whole tree is released at once.
type Tree struct {
	nodes []node
	root  nodeID
}

type nodeID int32

const noChild = nodeID(-1)

// node is either a leaf (symbol valid, no children) or an internal node
// (symbol == InvalidSymbol, exactly two children).
type node struct {
	symbol Symbol
	freq   uint64
	left   nodeID
	right  nodeID
}

func (n node) isLeaf() bool {
	return n.left == noChild
}

// BuildTree builds a Huffman tree from the given frequencies.  Symbols with a
// frequency of 0 are omitted.  Returns ErrEmptyInput if no symbol remains.
//
// Equal frequencies are resolved in favor of the node created first, and
// leaves are created in ascending Symbol order, so the result is a pure
// function of freqs.  Callers should not rely on the exact shape beyond that.
//
func BuildTree(freqs FrequencyTable) (*Tree, error) {
	symbols := freqs.Symbols()

	t := &Tree{nodes: make([]node, 0, 2*len(symbols))}
	h := idHeap{tree: t}
	for _, symbol := range symbols {
		freq := freqs[symbol]
		if freq == 0 {
			continue
		}
		h.list = append(h.list, t.push(node{symbol, freq, noChild, noChild}))
	}
	if len(h.list) == 0 {
		return nil, ErrEmptyInput
	}
	h.Init()

	// Repeatedly merge the two lightest nodes.  The first one popped goes
	// on the left.

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeID)
		b := heap.Pop(&h).(nodeID)
		freqSum := addSaturating(t.nodes[a].freq, t.nodes[b].freq)
		heap.Push(&h, t.push(node{InvalidSymbol, freqSum, a, b}))
	}

	t.root = heap.Pop(&h).(nodeID)
	return t, nil
}

func (t *Tree) push(n node) nodeID {
	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return id
}

// Freq returns the frequency of the root, i.e. the total number of symbols
// the tree was built from.
func (t *Tree) Freq() uint64 {
	return t.nodes[t.root].freq
}

// NumLeaves returns the number of distinct symbols in the tree.
func (t *Tree) NumLeaves() int {
	// A full binary tree with n leaves has 2n-1 nodes.
	return (len(t.nodes) + 1) / 2
}

// CodeTable walks the tree and assigns each leaf the path from the root to
// it, '0' for every left turn and '1' for every right turn.
//
// A tree consisting of a single leaf has no paths, so that leaf is assigned
// the code "0".
//
func (t *Tree) CodeTable() CodeTable {
	table := make(CodeTable, t.NumLeaves())

	if root := t.nodes[t.root]; root.isLeaf() {
		table[root.symbol] = Code("0")
		return table
	}

	// Walk the tree with an explicit stack.  The stack holds only internal
	// nodes; its depth is the length of the code under construction.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		id   nodeID
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, 32)
	stack = append(stack, stackItem{id: t.root})

	processChild := func(child nodeID, code Code) {
		n := t.nodes[child]
		if !n.isLeaf() {
			stack = append(stack, stackItem{id: child, code: code})
			return
		}
		_, dupe := table[n.symbol]
		assert.Assertf(!dupe, "symbol %d appears in more than one leaf", n.symbol)
		table[n.symbol] = code
	}

	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		n := t.nodes[top.id]
		assert.Assertf(n.left != noChild && n.right != noChild, "internal node %d lacks a child", top.id)
		switch x {
		case 0:
			processChild(n.left, top.code.Append(0))
		case 1:
			processChild(n.right, top.code.Append(1))
		case 2:
			stack = stack[:len(stack)-1]
		}
	}

	assert.Assertf(len(table) == t.NumLeaves(), "generated %d codes for %d leaves", len(table), t.NumLeaves())
	return table
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.root)
	for index, n := range t.nodes {
		if n.isLeaf() {
			fmt.Fprintf(&buf, "\t%d = leaf(%q, %d)\n", index, rune(n.symbol), n.freq)
		} else {
			fmt.Fprintf(&buf, "\t%d = node(%d, %d, %d)\n", index, n.left, n.right, n.freq)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// NewCodeTable counts the symbols in text, builds a Huffman tree from the
// counts, and returns the resulting code table.
func NewCodeTable(text string) (CodeTable, error) {
	t, err := BuildTree(CountFrequencies(text))
	if err != nil {
		return nil, errors.Wrap(err, "huffman.NewCodeTable")
	}
	return t.CodeTable(), nil
}

// type idHeap {{{

type idHeap struct {
	tree *Tree
	list []nodeID
}

func (h *idHeap) Init() {
	heap.Init(h)
}

func (h *idHeap) Len() int {
	return len(h.list)
}

func (h *idHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *idHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	af, bf := h.tree.nodes[a].freq, h.tree.nodes[b].freq
	if af != bf {
		return af < bf
	}
	return a < b
}

func (h *idHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeID))
}

func (h *idHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*idHeap)(nil)

// }}}
