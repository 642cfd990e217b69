package main

import (
	"fmt"
	"io"
	"math"
	"math/big"
)

// printGrouped writes x in decimal, its digits grouped in threes from
// the right by sep (or not grouped at all when sep is 0), bracketed by
// prefix and suffix. Grounded on the reference implementation's
// print_grouped: walk the digit string left to right, inserting a
// separator every three digits once a non-zero digit has been seen
// (suppressing a leading separator before any significant digit).
func printGrouped(w io.Writer, prefix string, x *big.Int, suffix string, sep byte) {
	if prefix != "" {
		fmt.Fprint(w, prefix)
	}
	if x.Sign() == 0 {
		fmt.Fprint(w, "0")
	} else {
		digits := x.String()
		i := 2 - len(digits)%3
		seenSignificant := false
		for _, d := range digits {
			i++
			if i == 3 {
				i = 0
				if seenSignificant && sep != 0 {
					fmt.Fprintf(w, "%c", sep)
				}
			}
			if d > '0' {
				seenSignificant = true
			}
			if seenSignificant {
				fmt.Fprintf(w, "%c", d)
			}
		}
	}
	if suffix != "" {
		fmt.Fprint(w, suffix)
	}
}

// printMagnitudeHint prints, for base 10 and base 2, whether the exact
// cardinality equals or merely approximates that base raised to its
// log, the order-of-magnitude hint the reference CLI shows alongside
// the exact grouped count.
func printMagnitudeHint(w io.Writer, n *big.Int) {
	logD := math.Log(bigFloat(n))
	for _, base := range [...]int{10, 2} {
		l := logD / math.Log(float64(base))
		r := math.Round(l)
		pow := new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(r)), nil)
		op := "~"
		if n.Cmp(pow) == 0 {
			op = "="
			l = r
		}
		fmt.Fprintf(w, "%s %2d^%g\n", op, base, l)
	}
}

func bigFloat(n *big.Int) float64 {
	f := new(big.Float).SetInt(n)
	v, _ := f.Float64()
	return v
}
