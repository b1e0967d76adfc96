package blockcoding

import (
	"container/heap"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// A Node is a node of a Huffman tree.
// Leaves hold a token and have Left and Right set to -1.
// Internal nodes hold the summed probability of their two children, which are indices into Tree.Nodes.
type Node struct {
	Token       string
	Prob        float64
	Left, Right int
}

// IsLeaf reports whether n is a leaf.
func (n Node) IsLeaf() bool {
	return n.Left < 0
}

// A Tree is a strict binary Huffman tree stored in an arena.
type Tree struct {
	Nodes []Node
	Root  int
}

// nodeQueue is a min-heap of arena indices ordered by probability, then by index.
type nodeQueue struct {
	tree *Tree
	ids  []int
}

func (q *nodeQueue) Len() int { return len(q.ids) }
func (q *nodeQueue) Less(i, j int) bool {
	a, b := q.tree.Nodes[q.ids[i]].Prob, q.tree.Nodes[q.ids[j]].Prob
	if a != b {
		return a < b
	}
	return q.ids[i] < q.ids[j]
}
func (q *nodeQueue) Swap(i, j int)      { q.ids[i], q.ids[j] = q.ids[j], q.ids[i] }
func (q *nodeQueue) Push(x interface{}) { q.ids = append(q.ids, x.(int)) }
func (q *nodeQueue) Pop() interface{} {
	n := len(q.ids)
	id := q.ids[n-1]
	q.ids = q.ids[:n-1]
	return id
}

// BuildTree builds a Huffman tree for d.
//
// Ties are broken by creation order: leaves are created in the order of d.Tokens(),
// merged nodes after them, and among nodes of equal probability the earliest created is extracted first.
// The first of the two extracted nodes becomes the left child.
func BuildTree(d Distribution) (*Tree, error) {
	if len(d) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "empty distribution")
	}

	tokens := d.Tokens()
	tree := &Tree{Nodes: make([]Node, 0, 2*len(tokens)-1)}
	q := &nodeQueue{tree: tree, ids: make([]int, 0, len(tokens))}
	for i, t := range tokens {
		tree.Nodes = append(tree.Nodes, Node{Token: t, Prob: d[t], Left: -1, Right: -1})
		q.ids = append(q.ids, i)
	}
	heap.Init(q)

	for q.Len() > 1 {
		left := heap.Pop(q).(int)
		right := heap.Pop(q).(int)
		tree.Nodes = append(tree.Nodes, Node{
			Prob:  tree.Nodes[left].Prob + tree.Nodes[right].Prob,
			Left:  left,
			Right: right,
		})
		heap.Push(q, len(tree.Nodes)-1)
	}
	tree.Root = heap.Pop(q).(int)
	return tree, nil
}

// A Code is a Huffman codeword written as a string of '0' and '1'.
type Code string

// A CodeTable maps tokens to their codewords.
type CodeTable map[string]Code

// Codes reads the code table off the leaf paths of t, 0 for a left edge and 1 for a right edge.
// A tree consisting of a single leaf assigns it the code "0".
func (t *Tree) Codes() CodeTable {
	table := make(CodeTable)
	if t.Nodes[t.Root].IsLeaf() {
		table[t.Nodes[t.Root].Token] = "0"
		return table
	}

	type step struct {
		id   int
		code Code
	}
	stack := []step{{id: t.Root}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.Nodes[s.id]
		if n.IsLeaf() {
			table[n.Token] = s.code
			continue
		}
		stack = append(stack, step{id: n.Right, code: s.code + "1"})
		stack = append(stack, step{id: n.Left, code: s.code + "0"})
	}
	return table
}

// ExpectedLength returns the average codeword length in bits under d.
func (table CodeTable) ExpectedLength(d Distribution) (float64, error) {
	var l float64
	for _, t := range d.Tokens() {
		c, ok := table[t]
		if !ok {
			return -1, errors.WithStack(&MissingCodeError{Token: t})
		}
		l += float64(len(c)) * d[t]
	}
	return l, nil
}

// IsPrefixFree reports whether no codeword of table is a prefix of another.
func (table CodeTable) IsPrefixFree() bool {
	codes := make([]string, 0, len(table))
	for _, c := range table {
		codes = append(codes, string(c))
	}
	sort.Strings(codes)

	// In lexical order a codeword that prefixes any other also prefixes its successor.
	for i := 1; i < len(codes); i++ {
		if strings.HasPrefix(codes[i], codes[i-1]) {
			return false
		}
	}
	return true
}
