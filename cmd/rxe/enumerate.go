package main

import (
	"fmt"
	"io"
	"math/big"

	"github.com/coregx/rxe"
)

const maxMemberLen = 100

// enumerateOnce seeks to pos (already 0-based, relative to the Tree's
// own indexing) and prints exactly one member, used by -r's random
// sampling where each draw is independent and unnumbered column widths
// don't apply.
func enumerateOnce(t *rxe.Tree, stdout, stderr io.Writer, offset int64, pos, zero *big.Int, sep byte, numbered bool) int {
	if t.Seek(pos) {
		fmt.Fprintln(stderr, "seek past end")
		return exitSeekPastEnd
	}
	if numbered {
		idx := new(big.Int).Add(pos, big.NewInt(offset))
		printGrouped(stdout, "", idx, " ", sep)
	}
	fmt.Fprintln(stdout, t.Current(maxMemberLen))
	return exitOK
}

// enumerateRange walks members from index `from` for `count` of them (or
// to the end of the language if count is zero), optionally prefixing
// each with its index. Grounded on the reference implementation's
// enumerate(): nd is the number of column positions reserved for the
// grouped index, shrinking by one each time the index crosses a power
// of ten (step1) or a multiple-of-three power of ten (step2), so the
// member strings stay left-aligned as the index grows a digit.
func enumerateRange(t *rxe.Tree, stdout, stderr io.Writer, offset int64, from, count *big.Int, sep byte, numbered bool) int {
	final := new(big.Int)
	if count.Sign() != 0 {
		final.Add(from, count)
		final.Sub(final, big.NewInt(1))
	} else {
		final.Set(t.Cardinality())
		final.Add(final, big.NewInt(offset-1))
	}
	final.Sub(final, big.NewInt(1-offset))

	nd := decimalLen(final)
	nd += (nd-1)/3 - 1
	nd0 := decimalLen(from)
	nd -= nd0 + (nd0-1)/3 - 1

	idx := new(big.Int).Set(from)
	step1 := ceilingMultiple(idx, big.NewInt(10))
	step2 := ceilingMultiple(idx, big.NewInt(1000))

	pos := new(big.Int).Sub(from, big.NewInt(offset))
	if t.Seek(pos) {
		fmt.Fprintln(stderr, "seek past end")
		return exitSeekPastEnd
	}

	remaining := new(big.Int).Set(count)
	for {
		if numbered {
			fmt.Fprintf(stdout, "%*s", nd, "")
			printGrouped(stdout, "", idx, " ", sep)
			idx.Add(idx, big.NewInt(1))
			if idx.Cmp(step1) == 0 {
				nd--
				step1.Mul(step1, big.NewInt(10))
				if idx.Cmp(step2) == 0 {
					nd--
					step2.Mul(step2, big.NewInt(1000))
				}
			}
		}
		fmt.Fprintln(stdout, t.Current(maxMemberLen))
		if !t.Next() {
			break
		}
		if count.Sign() != 0 {
			remaining.Sub(remaining, big.NewInt(1))
			if remaining.Sign() == 0 {
				break
			}
		}
	}
	return exitOK
}

// ceilingMultiple returns the smallest multiple of step that is >= x and
// strictly positive, matching mpz_cdiv_q's round-up-toward-zero-or-more
// division used to seed enumerate()'s column-width thresholds.
func ceilingMultiple(x, step *big.Int) *big.Int {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(x, step, m)
	if m.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	result := new(big.Int).Mul(q, step)
	if result.Sign() == 0 {
		result.Set(step)
	}
	return result
}

// decimalLen returns the number of decimal digits in x's magnitude
// (mpz_len: the smallest n such that 10^n > x).
func decimalLen(x *big.Int) int {
	r := big.NewInt(10)
	n := 0
	for {
		n++
		if r.Cmp(x) > 0 {
			return n
		}
		r.Mul(r, big.NewInt(10))
	}
}
