// Package parser lowers a regex source string into a counted parse tree
// (spec.md §4.4-§4.9). It is a recursive-descent parser: each '(' opens
// a new recursion level whose alternation accumulates directly into a
// freshly allocated sub-tree, already registered in the shared
// back-reference table before it is parsed (spec.md §4.1), so a
// forward `\N` or `(?N)` referring to the group currently being parsed
// resolves to an entry that exists but is not yet Closed.
//
// Grounded on the reference implementation's parse.c: the same token
// dispatch, the same escape table (internal/charclass), the same
// quantifier-lowering rewrites. Where parse.c tracks three running
// bigints (x, n, p) per recursion level purely to undo the last node's
// contribution to an alternative's product when a quantifier rewrites
// it, this parser instead lets tree.Alt's Nitems stay authoritative at
// all times via AddNode/ReplaceTail — equivalent bookkeeping, less
// state to carry by hand.
package parser

import (
	"github.com/coregx/rxe/internal/charclass"
	"github.com/coregx/rxe/internal/tree"
)

// parser holds the mutable scan position over a single regex source
// string. A back-reference table is shared across the whole parse
// (created once by Parse and threaded into every recursion level).
type parser struct {
	src []byte
	pos int
	brt *tree.BackrefTable
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) next() byte {
	if p.eof() {
		return 0
	}
	c := p.src[p.pos]
	p.pos++
	return c
}

// fail records status on t along with the cursor's current byte offset,
// and always returns false so call sites can write `return p.fail(...)`.
func (p *parser) fail(t *tree.Tree, status tree.Status) bool {
	t.Status = status
	t.ErrPos = p.pos
	return false
}

// Parse lowers src into a counted parse tree under flags, using
// backrefHint as the back-reference table's initial capacity
// (spec.md §4.1). A leading '^' at position 0 is consumed and ignored
// (spec.md §6.1); the regex is always implicitly anchored.
//
// Parse always returns a non-nil Tree; callers must inspect its Status
// before trusting Nitems or using the enumerator.
func Parse(src []byte, flags Flags, backrefHint int) *tree.Tree {
	if len(src) > 0 && src[0] == '^' {
		src = src[1:]
	}

	brt := tree.NewBackrefTable(backrefHint)
	p := &parser{src: src, brt: brt}

	root := tree.NewTree()
	root.Brt = brt
	p.parseInto(root, flags, 0)
	root.Close()
	return root
}

// parseInto fills t with the alternatives found starting at the
// parser's current position, at the given recursion depth (0 at the
// root). It returns once the sub-expression is exhausted: on ')' at
// depth>0, on end-of-string at depth 0, or as soon as an error sets
// t.Status (fail-fast, spec.md §7 — the first error wins and no
// further input is diagnosed).
func (p *parser) parseInto(t *tree.Tree, flags Flags, depth int) {
	alt := tree.NewAlt()
	quantifier := false
	prev := byte(0)

	for {
		c := p.next()
		switch c {
		case ')':
			if depth == 0 {
				p.fail(t, tree.TooManyParens)
				return
			}
			t.AddAlt(alt)
			return

		case 0:
			if depth > 0 {
				p.fail(t, tree.TooLittleParens)
				return
			}
			t.AddAlt(alt)
			return

		case '|':
			t.AddAlt(alt)
			alt = tree.NewAlt()
			quantifier = false
			prev = c

		case '(':
			if !p.handleGroup(t, alt, &flags, depth, &quantifier) {
				return
			}
			prev = c

		case '*', '+':
			p.fail(t, tree.Infinite)
			return

		case '?':
			if quantifier {
				p.fail(t, tree.NestedQuantifiers)
				return
			}
			tail := alt.Tail()
			if tail == nil {
				p.fail(t, tree.LoneQuantifier)
				return
			}
			sub := tree.NewTree()
			sub.AddAlt(tree.NewAlt())
			body := tree.NewAlt()
			body.AddNode(tree.ShallowCloneNode(tail))
			sub.AddAlt(body)
			sub.Close()
			alt.ReplaceTail(tree.NewSubNode(sub))
			quantifier = true
			prev = c

		case '{':
			if quantifier {
				p.fail(t, tree.NestedQuantifiers)
				return
			}
			tail := alt.Tail()
			if tail == nil {
				p.fail(t, tree.LoneQuantifier)
				return
			}
			if !p.parseRepetition(alt, tail, t) {
				return
			}
			quantifier = true
			prev = c

		case '[':
			set, rest, ok := charclass.ScanClass(p.src[p.pos:], flags.Caseless)
			if !ok {
				p.fail(t, tree.UnterminatedClass)
				return
			}
			p.pos = len(p.src) - len(rest)
			alt.AddNode(tree.NewLiteralNode(set.Bytes()))
			quantifier = false
			prev = c

		case '.':
			set := charclass.DotClass(flags.DotAll)
			alt.AddNode(tree.NewLiteralNode(set.Bytes()))
			quantifier = false
			prev = c

		case '\\':
			if !p.handleEscape(alt, t, flags, &quantifier) {
				return
			}
			prev = p.src[p.pos-1]

		case '$':
			if p.eof() && prev != '\\' {
				prev = c
				continue
			}
			fallthrough
		default:
			alt.AddNode(tree.NewLiteralNode(literalBytes(c, flags.Caseless)))
			quantifier = false
			prev = c
		}
	}
}

// handleGroup lowers everything that can follow '(' (spec.md §4.5,
// §4.9): an inline-flags-only group, a recursion reference `(?N)`, or
// an ordinary (optionally flagged, optionally non-capturing) group.
// Returns false if t.Status was set and the caller should unwind.
func (p *parser) handleGroup(t *tree.Tree, alt *tree.Alt, flags *Flags, depth int, quantifier *bool) bool {
	newFlags, action, ok := p.scanInlineFlags(*flags)
	if !ok {
		return p.fail(t, tree.UnterminatedFlags)
	}

	switch action {
	case flagEnclosing:
		// No node produced; the new flags take effect for the rest of
		// the enclosing group, later alternatives included. quantifier
		// is left untouched: an inline-flags-only group is not itself a
		// concrete token.
		*flags = newFlags
		return true

	case flagRecursion:
		num, ok := p.parseDecimal()
		if !ok {
			return p.fail(t, tree.InvalidConstant)
		}
		switch p.peek() {
		case 0:
			return p.fail(t, tree.TooLittleParens)
		case ')':
			p.next()
		default:
			return p.fail(t, tree.InvalidConstant)
		}
		target, found := p.brt.Get(num)
		if !found {
			return p.fail(t, tree.InvalidBackref)
		}
		if !target.Closed {
			return p.fail(t, tree.Infinite)
		}
		alt.AddNode(tree.NewSubNode(tree.CloneTree(target)))
		*quantifier = false
		return true

	default: // flagNone or flagScoped: an ordinary group
		sub := tree.NewTree()
		p.brt.Add(sub)
		p.parseInto(sub, newFlags, depth+1)
		sub.Close()
		if sub.Status != tree.Ok {
			t.Status = sub.Status
			t.ErrPos = sub.ErrPos
			return false
		}
		alt.AddNode(tree.NewSubNode(sub))
		*quantifier = false
		return true
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// literalBytes returns the byte set a single literal character
// contributes: just c, plus its opposite-case sibling when caseless
// folding applies and c is an ASCII letter (spec.md §9: deduplicated,
// since the fold byte is only added when it actually differs from c).
// The result is ascending, like every other node byte set.
func literalBytes(c byte, caseless bool) []byte {
	if !caseless || !isASCIILetter(c) {
		return []byte{c}
	}
	folded := c ^ 0x20
	if folded == c {
		return []byte{c}
	}
	if folded < c {
		return []byte{folded, c}
	}
	return []byte{c, folded}
}
