package parser

import (
	"github.com/coregx/rxe/internal/tree"
)

// parseDecimal reads a run of ASCII digits and returns their value. ok
// is false if no digit was present at the cursor.
func (p *parser) parseDecimal() (int, bool) {
	start := p.pos
	n := 0
	for !p.eof() && isDigit(p.peek()) {
		n = n*10 + int(p.next()-'0')
	}
	return n, p.pos > start
}

// parseRepetition lowers `{r0[,r1]}` (spec.md §4.7), replacing tail —
// the alternative's last node, already confirmed non-nil by the caller
// — with a sub-tree of one alternative per repetition count in
// [r0, r1], the k-th holding k concatenated clones of tail. The cursor
// is positioned just after the '{' on entry. Returns false (with t's
// Status set) on any of the repeat-specific parse errors.
func (p *parser) parseRepetition(alt *tree.Alt, tail *tree.Node, t *tree.Tree) bool {
	r0, ok := p.parseDecimal()
	if !ok {
		return p.fail(t, tree.BadRepetition)
	}
	r1 := r0
	if p.peek() == ',' {
		p.next()
		if p.peek() == '}' {
			return p.fail(t, tree.Infinite)
		}
		r1, ok = p.parseDecimal()
		if !ok {
			return p.fail(t, tree.BadRepetition)
		}
	}
	if p.next() != '}' {
		return p.fail(t, tree.UnterminatedRepeat)
	}
	if r0 > r1 {
		return p.fail(t, tree.BadRepetition)
	}

	sub := tree.NewTree()
	shallow := true
	for k := r0; k <= r1; k++ {
		a := tree.NewAlt()
		for i := 0; i < k; i++ {
			var clone *tree.Node
			if shallow {
				clone = tree.ShallowCloneNode(tail)
				shallow = false
			} else {
				clone = tree.CloneNode(tail)
			}
			a.AddNode(clone)
		}
		sub.AddAlt(a)
	}
	sub.Close()

	alt.ReplaceTail(tree.NewSubNode(sub))
	return true
}
