package tree

import "github.com/coregx/rxe/internal/bignum"

// Alt is one alternative of a Tree: an ordered sequence of Nodes
// concatenated together (spec.md §3 Alternative). Its cardinality is the
// product of its Nodes' cardinalities; Start is its offset within the
// owning Tree's mixed-radix numbering, the running prefix sum of the
// nitems of the alternatives before it.
type Alt struct {
	Nodes []*Node

	Nitems *bignum.Int
	Start  *bignum.Int
}

// NewAlt returns an empty alternative. Nitems starts at one (the empty
// concatenation generates exactly the empty string) and grows as nodes
// are appended.
func NewAlt() *Alt {
	return &Alt{Nitems: bignum.One()}
}

// AddNode appends a node, folding its cardinality into the
// alternative's running product.
func (a *Alt) AddNode(n *Node) {
	a.Nodes = append(a.Nodes, n)
	a.Nitems = bignum.Mul(a.Nitems, n.Nitems)
}

// Tail returns the last node appended to a, or nil if a is still empty.
// The parser consults this before lowering a quantifier (spec.md §4.6,
// §4.7): `?` and `{n,m}` both rewrite the node most recently added.
func (a *Alt) Tail() *Node {
	if len(a.Nodes) == 0 {
		return nil
	}
	return a.Nodes[len(a.Nodes)-1]
}

// ReplaceTail swaps the last node for n, folding the substitution into
// the running product: the old tail's contribution is divided out
// exactly (its cardinality always evenly divides Nitems) and the new
// tail's contribution multiplied in. This is how quantifier lowering
// updates an alternative's count without the reference implementation's
// separate x/n/p bookkeeping — AddNode/ReplaceTail already keep Nitems
// current after every change.
func (a *Alt) ReplaceTail(n *Node) {
	last := len(a.Nodes) - 1
	old := a.Nodes[last]
	a.Nodes[last] = n
	q, _ := bignum.QuoRem(a.Nitems, old.Nitems)
	a.Nitems = bignum.Mul(q, n.Nitems)
}
