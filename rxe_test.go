package rxe

import (
	"errors"
	"math/big"
	"testing"
)

func TestParseValidPatternHasNilErr(t *testing.T) {
	tree := Parse(`[0-9]{3}`, DefaultConfig())
	if err := tree.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
	want := big.NewInt(1000)
	if tree.Cardinality().Cmp(want) != 0 {
		t.Fatalf("Cardinality() = %s, want %s", tree.Cardinality(), want)
	}
}

func TestParseInfinitePatternReportsErrInfinite(t *testing.T) {
	tree := Parse(`a*`, DefaultConfig())
	err := tree.Err()
	if err == nil {
		t.Fatal("Err() = nil, want a *ParseError")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("Err() = %T, want *ParseError", err)
	}
	if pe.Status != Infinite {
		t.Fatalf("Status = %v, want Infinite", pe.Status)
	}
	if !errors.Is(err, ErrInfinite) {
		t.Fatalf("errors.Is(err, ErrInfinite) = false for %v", err)
	}
}

func TestParseMalformedPatternReportsErrMalformed(t *testing.T) {
	tree := Parse(`a)`, DefaultConfig())
	if tree.Status() != TooManyParens {
		t.Fatalf("Status() = %v, want TooManyParens", tree.Status())
	}
	if !errors.Is(tree.Err(), ErrMalformed) {
		t.Fatalf("errors.Is(Err(), ErrMalformed) = false for %v", tree.Err())
	}
}

func TestSeekMatchesCurrentAfterIteration(t *testing.T) {
	tree := Parse(`[a-c][a-c]`, DefaultConfig())
	var walked []string
	for {
		walked = append(walked, tree.Current(0))
		if !tree.Next() {
			break
		}
	}
	if len(walked) != 9 {
		t.Fatalf("walked %d members, want 9", len(walked))
	}
	for i, want := range walked {
		if tree.Seek(big.NewInt(int64(i))) {
			t.Fatalf("Seek(%d) reported out of range", i)
		}
		if got := tree.Current(0); got != want {
			t.Fatalf("Seek(%d); Current() = %q, want %q", i, got, want)
		}
	}
}

func TestSeekPastEndReportsOutOfRange(t *testing.T) {
	tree := Parse(`[a-c]`, DefaultConfig())
	if !tree.Seek(tree.Cardinality()) {
		t.Fatal("Seek(Cardinality()) = false, want true (out of range)")
	}
}

func TestResetReturnsToFirstMember(t *testing.T) {
	tree := Parse(`[a-c]`, DefaultConfig())
	first := tree.Current(0)
	tree.Next()
	tree.Next()
	tree.Reset()
	if got := tree.Current(0); got != first {
		t.Fatalf("Current() after Reset() = %q, want %q", got, first)
	}
}

func TestCaselessConfigFoldsLiterals(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Caseless = true
	tree := Parse(`ab`, cfg)
	want := big.NewInt(4)
	if tree.Cardinality().Cmp(want) != 0 {
		t.Fatalf("Cardinality() = %s, want %s", tree.Cardinality(), want)
	}
}
