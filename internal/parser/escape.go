package parser

import (
	"github.com/coregx/rxe/internal/charclass"
	"github.com/coregx/rxe/internal/tree"
)

// handleEscape lowers `\X` (spec.md §4.8). The cursor is positioned just
// after the backslash on entry. It always clears *quantifier: an escape
// is a concrete token, same as any literal or group.
func (p *parser) handleEscape(alt *tree.Alt, t *tree.Tree, flags Flags, quantifier *bool) bool {
	*quantifier = false

	if p.eof() {
		return p.fail(t, tree.UnterminatedLiteral)
	}
	c := p.next()

	switch {
	case c >= '0' && c <= '9':
		p.pos--
		num, _ := p.parseDecimal()
		target, found := p.brt.Get(num)
		if !found {
			return p.fail(t, tree.InvalidBackref)
		}
		if !target.Closed {
			return p.fail(t, tree.Infinite)
		}
		alt.AddNode(tree.NewBackrefNode(target))
		return true

	case c == 'x':
		val, rest, ok := charclass.ParseHexEscape(p.src[p.pos:])
		if !ok {
			return p.fail(t, tree.UnterminatedHexConstant)
		}
		p.pos = len(p.src) - len(rest)
		alt.AddNode(tree.NewLiteralNode(literalBytes(val, flags.Caseless)))
		return true

	default:
		esc, found := charclass.LookupEscape(c)
		if !found {
			alt.AddNode(tree.NewLiteralNode(literalBytes(c, flags.Caseless)))
			return true
		}
		switch esc.Kind {
		case charclass.EscapeIgnore:
			return true
		case charclass.EscapeLiteral:
			alt.AddNode(tree.NewLiteralNode(literalBytes(esc.Byte, flags.Caseless)))
			return true
		case charclass.EscapeClass:
			set, _, ok := charclass.ScanClass([]byte(esc.Body), false)
			if !ok {
				return p.fail(t, tree.UnterminatedClass)
			}
			alt.AddNode(tree.NewLiteralNode(set.Bytes()))
			return true
		default: // charclass.EscapeUnimplemented
			return p.fail(t, tree.Unimplemented)
		}
	}
}
