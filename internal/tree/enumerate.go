package tree

import (
	"github.com/coregx/rxe/internal/bignum"
	"github.com/coregx/rxe/internal/conv"
)

// Current appends the string generated by the tree's present cursor
// position to dst, stopping once len(dst) reaches maxlen (a caller
// supplies maxlen to cap pathological patterns; 0 means unbounded).
// Grounded on rxe_current's recursive walk over the active alternative's
// node list, printing a literal byte or recursing into a nested Tree.
func (t *Tree) Current(dst []byte, maxlen int) []byte {
	if t == nil || len(t.Alts) == 0 {
		return dst
	}
	alt := t.Alts[t.curr]
	for _, n := range alt.Nodes {
		if maxlen > 0 && len(dst) >= maxlen {
			break
		}
		if n.Sub != nil {
			dst = n.Sub.Current(dst, maxlen)
			continue
		}
		dst = append(dst, n.Bytes[n.Iterator])
	}
	return dst
}

// Iterate advances the tree to the next generated string in enumeration
// order, treating it as a mixed-radix odometer: the active alternative's
// nodes are the digits, walked from the last to the first, each carrying
// into the one before it on overflow. A back-reference node is never
// incremented directly — it has no Iterate call of its own — so once
// reached with an outstanding carry it behaves like a digit of radix
// one, always passing the carry further left, since it must track
// whatever its target alternative already settled on.
//
// Returns true if the whole tree wrapped back to its first string (the
// caller has completed one full cycle).
func (t *Tree) Iterate() bool {
	if t == nil || len(t.Alts) == 0 {
		return true
	}
	alt := t.Alts[t.curr]

	carry := true
	i := len(alt.Nodes) - 1
	for carry && i >= 0 {
		n := alt.Nodes[i]
		if n.Sub != nil && !n.IsBackref {
			carry = n.Sub.Iterate()
		}
		if !carry {
			break
		}
		if n.Sub != nil {
			// sub-tree or back-reference node: radix-one digit, always
			// overflows once the carry reaches it.
			i--
			continue
		}
		n.Iterator++
		if n.Iterator >= len(n.Bytes) {
			n.Iterator = 0
			i--
		} else {
			carry = false
		}
	}

	if carry {
		if t.curr+1 < len(t.Alts) {
			t.curr++
			carry = false
		} else {
			t.curr = 0
		}
	}
	return carry
}

// Seek repositions the tree so Current will produce the string at
// position pos within [0, Nitems). It returns true if pos is out of
// range, in which case the tree's cursor is left in an unspecified
// state and the caller must not trust Current.
//
// Grounded on rxe_seek: first a linear scan (from the last alternative
// backward) finds the alternative whose Start is the greatest one not
// exceeding pos, then pos minus that Start is resolved digit by digit
// against each node's local base, least-significant (last) node first.
func (t *Tree) Seek(pos *bignum.Int) bool {
	if t == nil || len(t.Alts) == 0 {
		return true
	}

	p := new(bignum.Int).Set(pos)
	idx := -1
	for i := len(t.Alts) - 1; i >= 0; i-- {
		if t.Alts[i].Start.Cmp(p) <= 0 {
			idx = i
			p.Sub(p, t.Alts[i].Start)
			break
		}
	}
	if idx < 0 {
		return true
	}
	t.curr = idx
	alt := t.Alts[idx]

	for i := len(alt.Nodes) - 1; i >= 0; i-- {
		n := alt.Nodes[i]
		if n.IsBackref {
			continue
		}
		var base *bignum.Int
		if n.Sub != nil {
			base = n.Sub.Nitems
		} else {
			base = bignum.FromInt(n.Len())
		}
		if bignum.IsZero(base) {
			panic("tree: node with zero cardinality")
		}
		q, r := bignum.QuoRem(p, base)
		p = q
		if n.Sub != nil {
			n.Sub.Seek(r)
		} else {
			n.Iterator = conv.BigToInt(r)
		}
	}

	return bignum.Sign(p) > 0
}

// Reset repositions the tree at its first generated string: the first
// alternative, every node's iterator zeroed.
func (t *Tree) Reset() {
	t.curr = 0
	for _, a := range t.Alts {
		for _, n := range a.Nodes {
			n.Iterator = 0
			if n.Sub != nil && !n.IsBackref {
				n.Sub.Reset()
			}
		}
	}
}
