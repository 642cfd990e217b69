package main

import (
	"bytes"
	"math/big"
	"testing"
)

func TestPrintGroupedInsertsSeparatorEveryThreeDigits(t *testing.T) {
	var buf bytes.Buffer
	printGrouped(&buf, "", big.NewInt(6760000), "", ',')
	want := "6,760,000"
	if got := buf.String(); got != want {
		t.Fatalf("printGrouped = %q, want %q", got, want)
	}
}

func TestPrintGroupedZero(t *testing.T) {
	var buf bytes.Buffer
	printGrouped(&buf, "", big.NewInt(0), "", ',')
	if got := buf.String(); got != "0" {
		t.Fatalf("printGrouped(0) = %q, want \"0\"", got)
	}
}

func TestPrintGroupedNoSeparator(t *testing.T) {
	var buf bytes.Buffer
	printGrouped(&buf, "", big.NewInt(6760000), "", 0)
	want := "6760000"
	if got := buf.String(); got != want {
		t.Fatalf("printGrouped = %q, want %q", got, want)
	}
}

func TestDecimalLen(t *testing.T) {
	cases := map[int64]int{
		0: 1, 9: 1, 10: 2, 99: 2, 100: 3, 999: 3, 1000: 4,
	}
	for n, want := range cases {
		if got := decimalLen(big.NewInt(n)); got != want {
			t.Errorf("decimalLen(%d) = %d, want %d", n, got, want)
		}
	}
}
