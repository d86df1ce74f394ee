package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"strtrace/internal/trace"
)

func scanRolling(t *testing.T, text, pattern string, base, modulus int64) (RollingScan, []trace.Step) {
	t.Helper()
	ph, _, err := HashPattern([]byte(pattern), base, modulus)
	if err != nil {
		t.Fatal(err)
	}
	return ScanRollingHash([]byte(text), []byte(pattern), ph, base, modulus)
}

func TestHashPattern(t *testing.T) {
	// "AB" = 65*256 + 66 = 16706; 16706 mod 101 = 41
	h, steps, err := HashPattern([]byte("AB"), 256, 101)
	if err != nil {
		t.Fatal(err)
	}
	if h != 16706%101 {
		t.Fatalf("hash = %d, want %d", h, 16706%101)
	}
	if len(steps) != 4 {
		t.Fatalf("want init + 2 hash steps + complete, got %d steps", len(steps))
	}
	second := steps[2].(trace.HashStep)
	if second.Before != 65 || second.After != h {
		t.Fatalf("second hash step = %+v", second)
	}
}

func TestHashPatternRejectsBadParams(t *testing.T) {
	for _, tc := range []struct{ base, mod int64 }{{0, 101}, {256, 0}, {-1, 101}, {256, -7}} {
		if _, steps, err := HashPattern([]byte("A"), tc.base, tc.mod); !errors.Is(err, ErrInvalidInput) || steps != nil {
			t.Errorf("base=%d mod=%d: err=%v steps=%d", tc.base, tc.mod, err, len(steps))
		}
	}
	if _, _, err := HashPattern(nil, 256, 101); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty pattern: %v", err)
	}
}

func TestScanRollingHash(t *testing.T) {
	tests := []struct {
		name, text, pattern string
		want                []int
		spurious            int
	}{
		{"geeks", "GEEKSFORGEEKS", "GEEK", []int{0, 8}, 0},
		{"cdd", "ABCCDDAEFG", "CDD", []int{3}, 0},
		{"several", "AABAACAADAABAABA", "AABA", []int{0, 9, 12}, 0},
		// window 6 "BACDABABC" collides with the pattern under mod 101
		{"natural collision", "ABABDABACDABABCABAB", "ABABCABAB", []int{10}, 1},
		{"none", "ABCDEF", "XYZ", []int{}, 0},
	}
	for _, tc := range tests {
		rs, _ := scanRolling(t, tc.text, tc.pattern, DefaultBase, DefaultModulus)
		if diff := cmp.Diff(tc.want, rs.Matches); diff != "" {
			t.Errorf("%s: matches (-want +got):\n%s", tc.name, diff)
		}
		if rs.SpuriousHits != tc.spurious {
			t.Errorf("%s: spurious hits = %d, want %d", tc.name, rs.SpuriousHits, tc.spurious)
		}
		if want := len(tc.text) - len(tc.pattern) + 1; rs.HashComparisons != want {
			t.Errorf("%s: hash comparisons = %d, want %d", tc.name, rs.HashComparisons, want)
		}
	}
}

// Every rolled hash must equal the hash of the same window computed from scratch.
func TestRollingUpdateMatchesScratch(t *testing.T) {
	cases := []struct {
		text, pattern string
		base, mod     int64
	}{
		{"GEEKSFORGEEKS", "GEEK", 256, 101},
		{"ABABDABACDABABCABAB", "ABABCABAB", 256, 101},
		{"the quick brown fox jumps over the lazy dog", "o", 256, 101},
		{"zyxwvutsrqponmlkjihgfedcba", "zyxw", 31, 1_000_000_007},
		{"\x00\xff\x00\xff\x00\xff", "\xff\x00", 257, 13},
		{"overflow-check-with-a-huge-modulus", "huge", math.MaxInt64 - 24, math.MaxInt64},
	}
	for _, tc := range cases {
		_, steps := scanRolling(t, tc.text, tc.pattern, tc.base, tc.mod)
		m := len(tc.pattern)
		rolls := 0
		for _, s := range steps {
			r, ok := s.(trace.RKRoll)
			if !ok {
				continue
			}
			rolls++
			want := int64(windowHash([]byte(tc.text[r.Position:r.Position+m]), uint64(tc.base), uint64(tc.mod)))
			if r.NewHash != want {
				t.Fatalf("%q window %d: rolled %d, scratch %d", tc.text, r.Position, r.NewHash, want)
			}
			if r.NewHash < 0 || r.NewHash >= tc.mod {
				t.Fatalf("%q window %d: hash %d outside [0, %d)", tc.text, r.Position, r.NewHash, tc.mod)
			}
			if r.Window != tc.text[r.Position:r.Position+m] {
				t.Fatalf("window text %q at %d", r.Window, r.Position)
			}
		}
		if want := len(tc.text) - m; rolls != want {
			t.Fatalf("%q: %d rolls, want %d", tc.text, rolls, want)
		}
	}
}

func TestForcedCollisionIsSpurious(t *testing.T) {
	// "JU" and "AB" share hash 41 under base 256, modulus 101.
	rs, steps := scanRolling(t, "JUAB", "AB", DefaultBase, DefaultModulus)
	if diff := cmp.Diff([]int{2}, rs.Matches); diff != "" {
		t.Fatalf("matches (-want +got):\n%s", diff)
	}
	var hit *trace.RKSpuriousHit
	for _, s := range steps {
		if sp, ok := s.(trace.RKSpuriousHit); ok {
			hit = &sp
		}
	}
	if hit == nil {
		t.Fatal("expected a spurious_hit step")
	}
	if hit.Position != 0 || hit.MismatchAt != 0 || len(hit.Checks) != 1 {
		t.Fatalf("spurious hit = %+v", *hit)
	}
}

func TestModulusOneMakesEveryWindowCollide(t *testing.T) {
	rs, steps := scanRolling(t, "ABCABC", "CA", 256, 1)
	if diff := cmp.Diff([]int{2}, rs.Matches); diff != "" {
		t.Fatalf("matches (-want +got):\n%s", diff)
	}
	if rs.SpuriousHits != 4 {
		t.Fatalf("spurious hits = %d, want 4", rs.SpuriousHits)
	}
	for _, s := range steps {
		if s.Kind() == trace.KindHashMismatch {
			t.Fatalf("modulus 1 cannot produce a hash mismatch")
		}
	}
}

func TestVerificationStopsAtFirstMismatch(t *testing.T) {
	rs, steps := scanRolling(t, "ABX", "ABC", 256, 1)
	if len(rs.Matches) != 0 || rs.CharComparisons != 3 {
		t.Fatalf("scan = %+v", rs)
	}
	sp := steps[2].(trace.RKSpuriousHit)
	if sp.MismatchAt != 2 || sp.Checks[2].Equal {
		t.Fatalf("spurious = %+v", sp)
	}
}

func TestRollingCompleteStep(t *testing.T) {
	rs, steps := scanRolling(t, "GEEKSFORGEEKS", "GEEK", DefaultBase, DefaultModulus)
	done, ok := steps[len(steps)-1].(trace.RKComplete)
	if !ok {
		t.Fatalf("last step is %T", steps[len(steps)-1])
	}
	if done.HashComparisons != rs.HashComparisons || done.CharComparisons != rs.CharComparisons {
		t.Fatalf("complete = %+v, scan = %+v", done, rs)
	}
	if rs.CharComparisons != 8 {
		t.Fatalf("char comparisons = %d, want 8", rs.CharComparisons)
	}
}
