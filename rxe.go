// Package rxe treats a regular expression denoting a finite language as
// a countable, indexable set of strings rather than a matcher: Parse
// builds a counted parse tree whose exact cardinality is an arbitrary-
// precision integer, whose members can be walked in a deterministic
// order one at a time, and whose n-th member can be produced directly
// without walking the n-1 before it.
//
// Parse always succeeds in the sense that it returns a non-nil *Tree;
// malformed or infinite patterns are reported through the Tree's Err
// method rather than as a second return value, mirroring the reference
// implementation's parse/error split (a Tree is cheap enough to build
// speculatively and interrogate afterward).
//
//	t := rxe.Parse(`[A-Z]{2}-[0-9]{4}`, rxe.DefaultConfig())
//	if err := t.Err(); err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(t.Cardinality()) // 6760000
//	fmt.Println(t.Current(0))    // AA-0000
package rxe

import (
	"math/big"

	"github.com/coregx/rxe/internal/parser"
	"github.com/coregx/rxe/internal/tree"
)

// Tree is a parsed pattern: either a rejected source (inspect Err) or a
// finite language ready to be counted, walked, and randomly accessed.
// A Tree is not safe for concurrent use; distinct Trees returned by
// distinct Parse calls are independent.
type Tree struct {
	root   *tree.Tree
	source string
}

// Parse lowers source into a Tree under cfg. The zero Config is not
// itself meaningful as a default; callers should start from
// DefaultConfig and override individual fields.
func Parse(source string, cfg Config) *Tree {
	flags := parser.Flags{Caseless: cfg.Caseless, DotAll: cfg.DotAll}
	root := parser.Parse([]byte(source), flags, cfg.BackrefTableHint)
	return &Tree{root: root, source: source}
}

// Err reports why Parse rejected source, or nil if it was accepted.
func (t *Tree) Err() error {
	if t.root.Status == tree.Ok {
		return nil
	}
	return &ParseError{Pattern: t.source, Offset: t.root.ErrPos, Status: t.root.Status}
}

// Status returns the raw parse-result code, Ok on success.
func (t *Tree) Status() Status { return t.root.Status }

// Cardinality returns the exact number of distinct strings the pattern
// generates. The result is a fresh *big.Int; mutating it does not
// affect the Tree.
func (t *Tree) Cardinality() *big.Int {
	return new(big.Int).Set(t.root.Nitems)
}

// Current returns the string at the Tree's present cursor position.
// maxlen caps the result length; 0 means unbounded. A freshly parsed
// Tree starts positioned at its first member (index 0).
func (t *Tree) Current(maxlen int) string {
	return string(t.root.Current(nil, maxlen))
}

// Iterate advances the cursor to the next member in enumeration order
// and reports whether doing so wrapped back around to the first member
// (i.e. the cursor was already on the last one).
func (t *Tree) Iterate() bool {
	return t.root.Iterate()
}

// Next is Iterate's complement: it advances the cursor and reports
// whether there is a next member to read with Current, false once the
// last member has been consumed.
func (t *Tree) Next() bool {
	return !t.root.Iterate()
}

// Seek positions the cursor at the member with the given index within
// [0, Cardinality()). It reports true if pos is out of range, in which
// case Current must not be trusted until a fresh Seek or Reset.
func (t *Tree) Seek(pos *big.Int) bool {
	return t.root.Seek(pos)
}

// Reset repositions the cursor at the first member (index 0).
func (t *Tree) Reset() {
	t.root.Reset()
}
