// Package bignum is a thin adapter over math/big, the arbitrary-precision
// integer facility this module treats as an external capability (the Go
// analogue of the GMP dependency in the reference implementation this
// design is grounded on).
//
// Every combinatorial quantity in the tree package (cardinalities, index
// offsets, mixed-radix digits) is an Int and is built mostly through the
// handful of operations exposed here. Int is an alias for big.Int, and
// the tree package also calls big.Int methods (Set, Sub, Cmp) on it
// directly.
package bignum

import (
	"crypto/rand"
	"io"
	"math/big"
)

// Int is the arbitrary-precision integer type used throughout this module.
// It is an alias for *big.Int so callers can still use math/big helpers
// (formatting, SetString, etc.) directly where convenient.
type Int = big.Int

// Zero returns a new Int set to 0.
func Zero() *Int { return new(big.Int) }

// One returns a new Int set to 1.
func One() *Int { return big.NewInt(1) }

// FromUint64 returns a new Int set to n.
func FromUint64(n uint64) *Int { return new(big.Int).SetUint64(n) }

// FromInt returns a new Int set to n.
func FromInt(n int) *Int { return big.NewInt(int64(n)) }

// Add returns a + b as a new Int. Neither operand is mutated.
func Add(a, b *Int) *Int { return new(big.Int).Add(a, b) }

// AddInto sets dst = a + b and returns dst.
func AddInto(dst, a, b *Int) *Int { return dst.Add(a, b) }

// Mul returns a * b as a new Int. Neither operand is mutated.
func Mul(a, b *Int) *Int { return new(big.Int).Mul(a, b) }

// MulInto sets dst = a * b and returns dst.
func MulInto(dst, a, b *Int) *Int { return dst.Mul(a, b) }

// Pow returns base^exp as a new Int (exp must be non-negative).
func Pow(base *Int, exp uint64) *Int {
	return new(big.Int).Exp(base, FromUint64(exp), nil)
}

// QuoRem computes the truncated quotient and remainder of a/b, i.e.
// a = q*b + r with |r| < |b| and r's sign matching a's (Go's
// (*big.Int).QuoRem semantics, matching GMP's mpz_tdiv_qr used by the
// reference implementation).
func QuoRem(a, b *Int) (q, r *Int) {
	q, r = new(big.Int), new(big.Int)
	q.QuoRem(a, b, r)
	return q, r
}

// Cmp compares a and b, returning -1, 0, or +1.
func Cmp(a, b *Int) int { return a.Cmp(b) }

// Sign returns -1, 0, or +1 depending on the sign of n.
func Sign(n *Int) int { return n.Sign() }

// IsZero reports whether n is exactly zero.
func IsZero(n *Int) bool { return n.Sign() == 0 }

// RandomBelow returns a uniform random Int in [0, n), reading entropy from
// src. n must be strictly positive.
func RandomBelow(src io.Reader, n *Int) (*Int, error) {
	return rand.Int(src, n)
}
