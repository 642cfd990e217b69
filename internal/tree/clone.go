package tree

import "github.com/coregx/rxe/internal/bignum"

// CloneNode copies src for reuse in a freshly materialized alternative
// (spec.md §4.6/§4.7: lowering `?` and `{n,m}` duplicates the preceding
// node or group once per repeated slot). A back-reference node is always
// shared, never duplicated: rxe_node_deep_clone treats is_backref nodes
// as a plain pointer copy because the node is a slave of its target, not
// an owner of a sub-tree worth copying. For every other node, the nested
// sub-tree (if any) is recursively cloned, so that iterating one
// repetition's contents doesn't alias another's; ShallowCloneNode is the
// variant that shares the original sub-tree, used for the first repeated
// slot only.
func CloneNode(src *Node) *Node {
	dst := &Node{
		IsBackref: src.IsBackref,
		Nitems:    new(bignum.Int).Set(src.Nitems),
	}
	if len(src.Bytes) > 0 {
		dst.Bytes = append([]byte(nil), src.Bytes...)
	}
	switch {
	case src.Sub == nil:
		// literal node, nothing further to copy
	case src.IsBackref:
		dst.Sub = src.Sub
	default:
		dst.Sub = CloneTree(src.Sub)
	}
	return dst
}

// ShallowCloneNode is CloneNode's non-backref case without recursing
// into the sub-tree: dst shares src's Sub pointer outright. Used for the
// first duplicated slot of a quantifier lowering, where nothing has
// observed or mutated the shared sub-tree yet.
func ShallowCloneNode(src *Node) *Node {
	dst := &Node{
		IsBackref: src.IsBackref,
		Sub:       src.Sub,
		Nitems:    new(bignum.Int).Set(src.Nitems),
	}
	if len(src.Bytes) > 0 {
		dst.Bytes = append([]byte(nil), src.Bytes...)
	}
	return dst
}

// CloneTree deep-copies an entire sub-tree: every alternative and every
// node, recursively. The clone's Brt is left nil; only the root tree of
// a parse ever owns a back-reference table, and a cloned sub-tree is
// never itself the target of a later `\N`.
func CloneTree(src *Tree) *Tree {
	dst := &Tree{
		Nitems: new(bignum.Int).Set(src.Nitems),
		Status: src.Status,
		Closed: src.Closed,
	}
	for _, a := range src.Alts {
		dstAlt := &Alt{
			Nitems: new(bignum.Int).Set(a.Nitems),
			Start:  new(bignum.Int).Set(a.Start),
		}
		dstAlt.Nodes = make([]*Node, len(a.Nodes))
		for i, n := range a.Nodes {
			dstAlt.Nodes[i] = CloneNode(n)
		}
		dst.Alts = append(dst.Alts, dstAlt)
	}
	return dst
}
