package bignum

import (
	"crypto/rand"
	"testing"
)

func TestZeroOneFromUint64(t *testing.T) {
	if Sign(Zero()) != 0 {
		t.Fatal("Zero() is not zero")
	}
	if Cmp(One(), FromUint64(1)) != 0 {
		t.Fatal("One() != FromUint64(1)")
	}
	if Cmp(FromInt(-3), FromUint64(0)) >= 0 {
		t.Fatal("FromInt(-3) should be negative")
	}
}

func TestAddMulPow(t *testing.T) {
	a, b := FromInt(6), FromInt(7)
	if Cmp(Add(a, b), FromInt(13)) != 0 {
		t.Fatal("Add(6, 7) != 13")
	}
	if Cmp(Mul(a, b), FromInt(42)) != 0 {
		t.Fatal("Mul(6, 7) != 42")
	}
	if Cmp(Pow(FromInt(2), 10), FromInt(1024)) != 0 {
		t.Fatal("Pow(2, 10) != 1024")
	}
}

func TestAddIntoMulIntoDoNotAllocateFresh(t *testing.T) {
	dst := Zero()
	AddInto(dst, FromInt(2), FromInt(3))
	if Cmp(dst, FromInt(5)) != 0 {
		t.Fatal("AddInto(2, 3) != 5")
	}
	MulInto(dst, dst, FromInt(4))
	if Cmp(dst, FromInt(20)) != 0 {
		t.Fatal("MulInto(5, 4) != 20")
	}
}

func TestQuoRem(t *testing.T) {
	q, r := QuoRem(FromInt(17), FromInt(5))
	if Cmp(q, FromInt(3)) != 0 || Cmp(r, FromInt(2)) != 0 {
		t.Fatalf("QuoRem(17, 5) = (%v, %v), want (3, 2)", q, r)
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(Zero()) {
		t.Fatal("IsZero(Zero()) = false")
	}
	if IsZero(One()) {
		t.Fatal("IsZero(One()) = true")
	}
}

func TestRandomBelowStaysInRange(t *testing.T) {
	n := FromInt(1000)
	for i := 0; i < 50; i++ {
		v, err := RandomBelow(rand.Reader, n)
		if err != nil {
			t.Fatalf("RandomBelow: %v", err)
		}
		if Sign(v) < 0 || Cmp(v, n) >= 0 {
			t.Fatalf("RandomBelow(1000) = %v, out of [0, 1000)", v)
		}
	}
}
