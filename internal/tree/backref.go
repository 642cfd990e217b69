package tree

// BackrefTable records, in the order their opening parentheses were
// seen, every sub-tree a `\N` or `(?N)` reference may later resolve
// against. The root tree itself is never entered (spec.md §4.5: `\1`
// refers to the first *parenthesized* group, not the whole pattern), so
// index 0 in the table corresponds to backreference number 1.
//
// Grounded on bkreftbl.c's geometrically-doubling pointer array; Go's
// append already amortizes the same way, so the table is just a slice
// with a constructor that takes the caller's capacity hint.
type BackrefTable struct {
	entries []*Tree
}

// NewBackrefTable returns an empty table, pre-sized to hint entries
// (spec.md's Config.BackrefTableHint) to cut down on reallocation for
// patterns with many groups.
func NewBackrefTable(hint int) *BackrefTable {
	if hint < 0 {
		hint = 0
	}
	return &BackrefTable{entries: make([]*Tree, 0, hint)}
}

// Add records sub as the next group in open-paren order and returns its
// one-based backreference number.
func (b *BackrefTable) Add(sub *Tree) int {
	b.entries = append(b.entries, sub)
	return len(b.entries)
}

// Get resolves a one-based backreference number. ok is false if num is
// out of range (INVALID_BACKREF).
func (b *BackrefTable) Get(num int) (*Tree, bool) {
	if num < 1 || num > len(b.entries) {
		return nil, false
	}
	return b.entries[num-1], true
}

// Len reports how many groups have been recorded so far. (The parser
// itself rejects a backreference to a group not yet opened through
// Get's range check.)
func (b *BackrefTable) Len() int {
	return len(b.entries)
}
