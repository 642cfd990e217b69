package parser

import (
	"math/big"
	"testing"

	"github.com/coregx/rxe/internal/tree"
)

func parse(t *testing.T, src string) *tree.Tree {
	t.Helper()
	root := Parse([]byte(src), Flags{}, 4)
	return root
}

func members(t *testing.T, root *tree.Tree) []string {
	t.Helper()
	if root.Status != tree.Ok {
		t.Fatalf("unexpected parse error: %s", root.Status)
	}
	var out []string
	root.Reset()
	for {
		out = append(out, string(root.Current(nil, 0)))
		if root.Iterate() {
			break
		}
	}
	return out
}

func TestDigitClassCardinality(t *testing.T) {
	root := parse(t, `[0-9]{3}`)
	if root.Status != tree.Ok {
		t.Fatalf("status = %s", root.Status)
	}
	want := big.NewInt(1000)
	if root.Nitems.Cmp(want) != 0 {
		t.Fatalf("nitems = %s, want %s", root.Nitems, want)
	}
}

func TestAlternationWithOptionalSuffix(t *testing.T) {
	root := parse(t, `(cat|dog)s?`)
	got := members(t, root)
	want := []string{"cat", "cats", "dog", "dogs"}
	if !equalStrings(got, want) {
		t.Fatalf("members = %v, want %v", got, want)
	}
}

func TestLetterDigitPattern(t *testing.T) {
	root := parse(t, `[A-Z]{2}-[0-9]{4}`)
	want := big.NewInt(6760000)
	if root.Nitems.Cmp(want) != 0 {
		t.Fatalf("nitems = %s, want %s", root.Nitems, want)
	}
}

func TestBackrefAfterAlternation(t *testing.T) {
	root := parse(t, `(ab|c)\1`)
	got := members(t, root)
	want := []string{"abab", "cc"}
	if !equalStrings(got, want) {
		t.Fatalf("members = %v, want %v", got, want)
	}
}

func TestDotWithDotAll(t *testing.T) {
	root := Parse([]byte(`a.b`), Flags{DotAll: true}, 4)
	want := big.NewInt(256)
	if root.Nitems.Cmp(want) != 0 {
		t.Fatalf("nitems = %s, want %s", root.Nitems, want)
	}
}

func TestDotWithoutDotAllExcludesNewline(t *testing.T) {
	root := Parse([]byte(`a.b`), Flags{}, 4)
	want := big.NewInt(255)
	if root.Nitems.Cmp(want) != 0 {
		t.Fatalf("nitems = %s, want %s", root.Nitems, want)
	}
}

func TestRejectsInfiniteStar(t *testing.T) {
	root := parseErr(t, `a*`)
	if root.Status != tree.Infinite {
		t.Fatalf("status = %s, want Infinite", root.Status)
	}
}

func TestRejectsInfinitePlus(t *testing.T) {
	root := parseErr(t, `a+`)
	if root.Status != tree.Infinite {
		t.Fatalf("status = %s, want Infinite", root.Status)
	}
}

func TestRejectsInfiniteOpenRepeat(t *testing.T) {
	root := parseErr(t, `a{3,}`)
	if root.Status != tree.Infinite {
		t.Fatalf("status = %s, want Infinite", root.Status)
	}
}

func TestRejectsUnbalancedOpenParen(t *testing.T) {
	root := parseErr(t, `((a)`)
	if root.Status != tree.TooLittleParens {
		t.Fatalf("status = %s, want TooLittleParens", root.Status)
	}
}

func TestRejectsUnbalancedCloseParen(t *testing.T) {
	root := parseErr(t, `a)`)
	if root.Status != tree.TooManyParens {
		t.Fatalf("status = %s, want TooManyParens", root.Status)
	}
}

func TestRejectsBadRepetitionRange(t *testing.T) {
	root := parseErr(t, `a{3,2}`)
	if root.Status != tree.BadRepetition {
		t.Fatalf("status = %s, want BadRepetition", root.Status)
	}
}

func TestRejectsTopLevelBackrefToUnseenGroup(t *testing.T) {
	root := parseErr(t, `\5`)
	if root.Status != tree.InvalidBackref {
		t.Fatalf("status = %s, want InvalidBackref", root.Status)
	}
}

func TestEmptyAlternativeAddsOneMember(t *testing.T) {
	root := parse(t, `a||b`)
	got := members(t, root)
	want := []string{"a", "", "b"}
	if !equalStrings(got, want) {
		t.Fatalf("members = %v, want %v", got, want)
	}
}

func TestEmptyGroupMatchesOnlyEmptyString(t *testing.T) {
	root := parse(t, `()`)
	got := members(t, root)
	want := []string{""}
	if !equalStrings(got, want) {
		t.Fatalf("members = %v, want %v", got, want)
	}
}

func TestZeroRepetitionIsEmptyString(t *testing.T) {
	root := parse(t, `a{0}`)
	got := members(t, root)
	want := []string{""}
	if !equalStrings(got, want) {
		t.Fatalf("members = %v, want %v", got, want)
	}
}

func TestZeroToTwoRepetition(t *testing.T) {
	root := parse(t, `a{0,2}`)
	got := members(t, root)
	want := []string{"", "a", "aa"}
	if !equalStrings(got, want) {
		t.Fatalf("members = %v, want %v", got, want)
	}
}

func TestBackrefDoesNotDoubleAlternationCount(t *testing.T) {
	root := parse(t, `(a|b)\1`)
	got := members(t, root)
	want := []string{"aa", "bb"}
	if !equalStrings(got, want) {
		t.Fatalf("members = %v, want %v (backref must not independently vary)", got, want)
	}
}

func TestRecursionReferenceVariesIndependently(t *testing.T) {
	root := parse(t, `(a|b)(?1)`)
	got := members(t, root)
	want := []string{"aa", "ab", "ba", "bb"}
	if !equalStrings(got, want) {
		t.Fatalf("members = %v, want %v (recursion must vary independently)", got, want)
	}
}

func TestCaselessFoldsLiterals(t *testing.T) {
	root := Parse([]byte(`a`), Flags{Caseless: true}, 4)
	got := members(t, root)
	want := []string{"A", "a"}
	if !equalStrings(got, want) {
		t.Fatalf("members = %v, want %v", got, want)
	}
}

func TestScopedFlagsDoNotLeakPastGroup(t *testing.T) {
	root := parse(t, `(?i:a)a`)
	got := members(t, root)
	want := []string{"Aa", "aa"}
	if !equalStrings(got, want) {
		t.Fatalf("members = %v, want %v", got, want)
	}
}

func TestNonCapturingGroupStillGetsBackrefNumber(t *testing.T) {
	root := parse(t, `(?:a)\1`)
	got := members(t, root)
	want := []string{"aa"}
	if !equalStrings(got, want) {
		t.Fatalf("members = %v, want %v", got, want)
	}
}

func TestQuantifierAfterGroupIsNotNested(t *testing.T) {
	root := parse(t, `a?(b)?`)
	if root.Status != tree.Ok {
		t.Fatalf("status = %s, want Ok (a group is a concrete token that clears the quantifier flag)", root.Status)
	}
}

func TestHexEscape(t *testing.T) {
	root := parse(t, `\x41`)
	got := members(t, root)
	want := []string{"A"}
	if !equalStrings(got, want) {
		t.Fatalf("members = %v, want %v", got, want)
	}
}

func TestLeadingCaretIsConsumedAndIgnored(t *testing.T) {
	root := parse(t, `^a`)
	got := members(t, root)
	want := []string{"a"}
	if !equalStrings(got, want) {
		t.Fatalf("members = %v, want %v", got, want)
	}
}

func parseErr(t *testing.T, src string) *tree.Tree {
	t.Helper()
	return Parse([]byte(src), Flags{}, 4)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
