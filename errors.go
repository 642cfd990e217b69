package rxe

import (
	"errors"
	"fmt"

	"github.com/coregx/rxe/internal/tree"
)

// Status is the parse-result code attached to a failed pattern (spec.md
// §7). The zero value, Ok, never appears on an error returned from
// Tree.Err: a non-nil error always carries one of the other values.
type Status = tree.Status

const (
	Ok                      = tree.Ok
	Infinite                = tree.Infinite
	TooManyParens           = tree.TooManyParens
	TooLittleParens         = tree.TooLittleParens
	LoneQuantifier          = tree.LoneQuantifier
	NestedQuantifiers       = tree.NestedQuantifiers
	UnterminatedLiteral     = tree.UnterminatedLiteral
	UnterminatedClass       = tree.UnterminatedClass
	UnterminatedRepeat      = tree.UnterminatedRepeat
	UnterminatedFlags       = tree.UnterminatedFlags
	BadRepetition           = tree.BadRepetition
	Unimplemented           = tree.Unimplemented
	InvalidBackref          = tree.InvalidBackref
	InvalidConstant         = tree.InvalidConstant
	UnterminatedHexConstant = tree.UnterminatedHexConstant
)

// ErrInfinite is the sentinel wrapped by every ParseError whose Status is
// Infinite: the pattern denotes an unbounded language (an unescaped '*'
// or '+', an open-ended `{n,}`, or a backreference/recursion reference
// to a group that has not yet closed). Callers that only care whether a
// pattern was rejected for being infinite, as opposed to malformed, can
// test with errors.Is(err, rxe.ErrInfinite).
var ErrInfinite = errors.New("pattern denotes an infinite language")

// ErrMalformed is the sentinel wrapped by every other non-Ok Status:
// syntax the parser does not accept at all (mismatched parentheses, a
// quantifier with nothing to repeat, an unterminated class or escape, an
// out-of-range backreference, and so on).
var ErrMalformed = errors.New("malformed pattern")

// ParseError reports why Parse rejected a pattern: the pattern text
// itself, the byte offset the parser had reached when it gave up, and
// the Status code classifying the failure.
type ParseError struct {
	Pattern string
	Offset  int
	Status  Status
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("rxe: %s at offset %d in %q", e.Status.Message(), e.Offset, e.Pattern)
}

// Unwrap lets errors.Is(err, ErrInfinite) and errors.Is(err, ErrMalformed)
// classify a ParseError without the caller needing to compare Status
// directly.
func (e *ParseError) Unwrap() error {
	if e.Status == Infinite {
		return ErrInfinite
	}
	return ErrMalformed
}
