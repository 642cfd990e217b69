package main

import (
	"flag"
	"fmt"
	"io"
	"math/big"

	"github.com/coregx/rxe"
	"github.com/coregx/rxe/internal/bignum"
	"github.com/coregx/rxe/internal/seed"
)

// Exit codes, mirroring the reference implementation's die() call sites.
const (
	exitOK          = 0
	exitUsage       = 1
	exitSeekPastEnd = 100
	exitAllocFailed = 111
)

// run parses args, drives a Tree built from the trailing regex argument,
// and writes its output to stdout/stderr. It returns the process exit
// code rather than an error so every one of the reference CLI's three
// distinct exit codes survives the translation to Go.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rxe", flag.ContinueOnError)
	fs.SetOutput(stderr)

	caseless := fs.Bool("i", false, "case-insensitive matching")
	dotAll := fs.Bool("s", false, "'.' also matches newline")
	numbered := fs.Bool("n", false, "prefix each enumerated member with its index")
	enumerateAll := fs.Bool("e", false, "enumerate every member")
	zeroBased := fs.Bool("z", false, "use 0-based indexing (default is 1-based)")
	fromFlag := fs.String("f", "", "start enumeration at this index")
	countFlag := fs.String("c", "", "enumerate this many members")
	toFlag := fs.String("t", "", "end enumeration at this index (inclusive)")
	randomPick := fs.Bool("r", false, "pick -c uniform-random members instead of enumerating in order")
	commaSep := fs.Bool(",", false, "group digits with ',' (default)")
	underscoreSep := fs.Bool("_", false, "group digits with '_'")
	dotSep := fs.Bool(".", false, "group digits with '.'")
	noSep := fs.Bool("~", false, "do not group digits")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "rxe - count and enumerate the finite language a regex denotes\n\n")
		fmt.Fprintf(stderr, "Usage:\n  rxe [-isnez] [-c count] [-f from] [-t to] [-r] <regex>\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args[1:]); err != nil {
		return exitUsage
	}

	pattern := fs.Arg(0)
	if pattern == "" {
		fmt.Fprintln(stderr, "missing regex")
		fs.Usage()
		return exitUsage
	}

	sep := separator(*commaSep, *underscoreSep, *dotSep, *noSep)

	cfg := rxe.DefaultConfig()
	cfg.Caseless = *caseless
	cfg.DotAll = *dotAll

	t := rxe.Parse(pattern, cfg)
	if err := t.Err(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	offset := int64(1)
	if *zeroBased {
		offset = 0
	}

	doEnumerate := *enumerateAll || *numbered
	from := big.NewInt(offset)
	count := big.NewInt(0)
	haveTo := *toFlag != ""

	if haveTo || *countFlag != "" {
		val := *countFlag
		if haveTo {
			val = *toFlag
		}
		n, ok := new(big.Int).SetString(val, 10)
		if !ok || n.Sign() <= 0 {
			fmt.Fprintln(stderr, "count must be strictly positive")
			return exitUsage
		}
		count = n
		doEnumerate = true
	}

	if *fromFlag != "" {
		n, ok := new(big.Int).SetString(*fromFlag, 10)
		if !ok {
			fmt.Fprintln(stderr, "invalid -f value")
			return exitUsage
		}
		from = n
		if count.Sign() == 0 {
			count = big.NewInt(1)
		}
		doEnumerate = true
	}

	if *randomPick {
		return runRandom(t, stdout, stderr, offset, count, sep, *numbered)
	}

	if haveTo {
		count.Sub(count, from)
		count.Add(count, big.NewInt(1))
		if count.Sign() <= 0 {
			fmt.Fprintln(stderr, "start point must be before finish")
			return exitUsage
		}
	}
	if from.Cmp(big.NewInt(offset)) < 0 {
		fmt.Fprintf(stderr, "start point can't be less than %d\n", offset)
		return exitUsage
	}

	if doEnumerate {
		return enumerateRange(t, stdout, stderr, offset, from, count, sep, *numbered)
	}

	printGrouped(stdout, "", t.Cardinality(), "\n", sep)
	printMagnitudeHint(stdout, t.Cardinality())
	return exitOK
}

func separator(comma, underscore, dot, none bool) byte {
	switch {
	case none:
		return 0
	case dot:
		return '.'
	case underscore:
		return '_'
	default:
		return ',' // comma is also the default when no separator flag is given
	}
}

// runRandom implements -r: draw -c (default 1) uniform-random indices in
// [0, Cardinality()) and print each member once, unnumbered unless -n
// was also given.
func runRandom(t *rxe.Tree, stdout, stderr io.Writer, offset int64, count *big.Int, sep byte, numbered bool) int {
	if count.Sign() == 0 {
		count = big.NewInt(1)
	}
	zero := big.NewInt(0)
	for {
		pos, err := bignum.RandomBelow(seed.Reader, t.Cardinality())
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitAllocFailed
		}
		if code := enumerateOnce(t, stdout, stderr, offset, pos, zero, sep, numbered); code != exitOK {
			return code
		}
		count.Sub(count, big.NewInt(1))
		if count.Sign() == 0 {
			return exitOK
		}
	}
}
