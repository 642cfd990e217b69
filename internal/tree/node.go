package tree

import "github.com/coregx/rxe/internal/bignum"

// Node is one position within an Alternative: either a literal byte
// drawn from Bytes, or a nested sub-Tree (spec.md §3 Node). A
// back-reference node has Sub set to another node's Tree but owns none
// of its state; it is a slave of its target during both Current and
// Iterate/Seek.
type Node struct {
	Bytes     []byte // ascending, deduplicated byte set; nil when Sub != nil
	Sub       *Tree  // nested sub-expression or back-reference target
	IsBackref bool

	Nitems *bignum.Int // cardinality contributed by this node

	Iterator int // current index into Bytes; unused when Sub != nil
}

// NewLiteralNode builds a node over an explicit byte set, as produced by
// a character class, a wildcard, or a single literal character.
func NewLiteralNode(bytes []byte) *Node {
	return &Node{
		Bytes:  bytes,
		Nitems: bignum.FromInt(len(bytes)),
	}
}

// NewSubNode wraps a nested sub-expression tree as one node of an outer
// Alternative (a parenthesized group, or the lowering of a quantifier).
func NewSubNode(sub *Tree) *Node {
	return &Node{
		Sub:    sub,
		Nitems: new(bignum.Int).Set(sub.Nitems),
	}
}

// NewBackrefNode wraps a reference to an already-parsed sub-tree. Its
// cardinality is always 1: a back-reference contributes no independent
// choice, it mirrors whatever its target currently holds.
func NewBackrefNode(target *Tree) *Node {
	return &Node{
		Sub:       target,
		IsBackref: true,
		Nitems:    bignum.One(),
	}
}

// Len reports how many distinct values this node can take on its own
// (ignoring any nested sub-tree's internal structure).
func (n *Node) Len() int {
	return len(n.Bytes)
}
