// Package conv provides safe integer conversion helpers for the regex
// generator.
//
// These functions perform bounds checking before narrowing integer conversions
// to prevent silent overflow. They panic on overflow since this indicates a
// programming error (e.g., regex pattern too large for internal limits).
package conv

import "math/big"

// BigToInt safely converts a non-negative *big.Int to an int.
// Panics if n is negative or does not fit in an int. Used where a
// combinatorial offset is known by construction to be small (a
// mixed-radix remainder used as a byte-set index) even though it is
// carried as a big.Int up to that point.
func BigToInt(n *big.Int) int {
	if !n.IsInt64() {
		panic("integer overflow: big.Int value out of int range")
	}
	v := n.Int64()
	if v < 0 || int64(int(v)) != v {
		panic("integer overflow: big.Int value out of int range")
	}
	return int(v)
}
