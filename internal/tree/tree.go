package tree

import "github.com/coregx/rxe/internal/bignum"

// Tree is a counted parse tree: a set of Alternatives, any one of which
// may be selected, each contributing its own nitems to the whole
// (spec.md §3 Tree). Nitems is the sum of every Alternative's nitems.
//
// Brt is the back-reference table shared by an entire parse (only the
// root Tree's table is ever consulted; sub-trees created for `(?N)`
// recursion and quantifier lowering carry a nil Brt, matching the
// reference implementation where only rxe_new_regex's top-level object
// owns one).
type Tree struct {
	Alts []*Alt

	Nitems *bignum.Int
	Status Status
	ErrPos int // byte offset where Status was first set; meaningless when Status is Ok
	Closed bool

	Brt *BackrefTable

	curr int // index into Alts: the alternative Current/Iterate/Seek operate on
}

// NewTree returns an empty tree ready to receive alternatives.
func NewTree() *Tree {
	return &Tree{Nitems: bignum.Zero()}
}

// AddAlt appends an alternative, recording its Start as the running sum
// of every prior alternative's Nitems and folding its Nitems into the
// tree's total.
func (t *Tree) AddAlt(a *Alt) {
	a.Start = new(bignum.Int).Set(t.Nitems)
	t.Alts = append(t.Alts, a)
	t.Nitems = bignum.Add(t.Nitems, a.Nitems)
}

// Close finalizes the tree: once Closed, no more alternatives may be
// appended and the tree is safe to enumerate. Mirrors the reference
// implementation's rxe_close, which forbids further growth after a
// top-level parse finishes (sub-expressions close themselves as soon as
// their ')' is seen).
func (t *Tree) Close() {
	t.Closed = true
}
