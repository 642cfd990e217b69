package parser

// Flags are the two parse-time flags spec.md §6.2 exposes (CASELESS=1,
// DOTALL=2 in the reference implementation's bitmask).
type Flags struct {
	Caseless bool
	DotAll   bool
}

// flagAction classifies what a `(?...` prefix turned out to be, once
// scanInlineFlags has consumed it (spec.md §4.9).
type flagAction int

const (
	// flagNone: no '?' followed the '(' at all; an ordinary group.
	flagNone flagAction = iota
	// flagScoped: `(?ims-im:` — flags apply only within this group.
	flagScoped
	// flagEnclosing: `(?ims-im)` — flags apply to the enclosing scope,
	// and no node or sub-tree is produced.
	flagEnclosing
	// flagRecursion: `(?N` — a recursion reference, not a flags prefix.
	// The digit has been unread; the caller parses the number itself.
	flagRecursion
)

// scanInlineFlags consumes an optional `?ims-im` prefix right after '('.
// If the next byte isn't '?', it is a no-op and reports flagNone with
// the flags unchanged. Grounded on parse.c's handle_flags: a run of 'i'
// (CASELESS) and 'm' (DOTALL) letters, '-' flipping subsequent letters
// from set to clear, terminated by ':' (flagScoped), ')' (flagEnclosing)
// or a digit (flagRecursion, which backs off one byte so the digit can
// be re-read as a recursion number). Unknown flag letters are consumed
// and silently ignored, matching the reference implementation's default
// case. ok is false only on end-of-input before a terminator
// (UNTERMINATED_FLAGS).
func (p *parser) scanInlineFlags(flags Flags) (Flags, flagAction, bool) {
	if p.peek() != '?' {
		return flags, flagNone, true
	}
	p.next()

	set := true
	for {
		c := p.next()
		switch {
		case c == 0:
			return flags, flagNone, false
		case c == ')':
			return flags, flagEnclosing, true
		case c == ':':
			return flags, flagScoped, true
		case c == 'i':
			flags.Caseless = set
		case c == 'm':
			flags.DotAll = set
		case c == '-':
			set = false
		case c >= '0' && c <= '9':
			p.pos--
			return flags, flagRecursion, true
		}
	}
}
