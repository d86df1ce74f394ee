package engine

import (
	"fmt"

	"strtrace/internal/trace"
)

// Algorithm names a scanning pipeline.
type Algorithm string

const (
	ExactMatch  Algorithm = "kmp"
	RollingHash Algorithm = "rabin-karp"
)

// Algorithms lists every pipeline in canonical output order.
var Algorithms = []Algorithm{ExactMatch, RollingHash}

// ParseAlgorithm accepts a pipeline name or one of its aliases.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "kmp", "exact":
		return ExactMatch, nil
	case "rabin-karp", "rk", "rolling":
		return RollingHash, nil
	}
	return "", fmt.Errorf("unknown algorithm %q", s)
}

// HashParams are the rolling-hash parameters and derived values of a run.
type HashParams struct {
	Base        int64
	Modulus     int64
	PatternHash int64
	HighOrder   int64 // base^(m-1) mod modulus
}

// Summary holds the metrics derived from a run.
type Summary struct {
	Matches         []int
	MatchCount      int
	Comparisons     int // exact-match character comparisons
	HashComparisons int
	CharComparisons int // rolling-hash verification comparisons
	SpuriousHits    int
	PreprocessSteps int
	MatchingSteps   int

	TimeComplexity       string
	SpaceComplexity      string
	PreprocessComplexity string
}

// Result is everything one run produced. It is built once and must be
// treated as read-only afterwards.
type Result struct {
	ID        string // optional caller label (batch case id)
	Algorithm Algorithm
	Text      string
	Pattern   string

	FailureTable []int       // ExactMatch only
	Hash         *HashParams // RollingHash only

	Preprocessing []trace.Step
	Matching      []trace.Step
	Summary       Summary
}

// RunExactMatch builds the failure table of pattern and scans text with it.
func RunExactMatch(text, pattern string) (Result, error) {
	if err := ValidateText(text, pattern); err != nil {
		return Result{}, err
	}
	t, p := []byte(text), []byte(pattern)

	table, pre, err := BuildFailureTable(p)
	if err != nil {
		return Result{}, err
	}
	matches, scan, comparisons := ScanExact(t, p, table)

	return Result{
		Algorithm:     ExactMatch,
		Text:          text,
		Pattern:       pattern,
		FailureTable:  table,
		Preprocessing: pre,
		Matching:      scan,
		Summary: Summary{
			Matches:              matches,
			MatchCount:           len(matches),
			Comparisons:          comparisons,
			PreprocessSteps:      len(pre),
			MatchingSteps:        len(scan),
			TimeComplexity:       "O(n + m)",
			SpaceComplexity:      "O(m)",
			PreprocessComplexity: "O(m)",
		},
	}, nil
}

// RunRollingHash hashes pattern and scans text with a rolling window hash.
// Use DefaultBase and DefaultModulus unless the caller overrides them.
func RunRollingHash(text, pattern string, base, modulus int64) (Result, error) {
	if err := ValidateText(text, pattern); err != nil {
		return Result{}, err
	}
	if err := ValidateHashParams(base, modulus); err != nil {
		return Result{}, err
	}
	t, p := []byte(text), []byte(pattern)

	ph, pre, err := HashPattern(p, base, modulus)
	if err != nil {
		return Result{}, err
	}
	rs, scan := ScanRollingHash(t, p, ph, base, modulus)

	return Result{
		Algorithm: RollingHash,
		Text:      text,
		Pattern:   pattern,
		Hash: &HashParams{
			Base:        base,
			Modulus:     modulus,
			PatternHash: ph,
			HighOrder:   rs.HighOrder,
		},
		Preprocessing: pre,
		Matching:      scan,
		Summary: Summary{
			Matches:              rs.Matches,
			MatchCount:           len(rs.Matches),
			HashComparisons:      rs.HashComparisons,
			CharComparisons:      rs.CharComparisons,
			SpuriousHits:         rs.SpuriousHits,
			PreprocessSteps:      len(pre),
			MatchingSteps:        len(scan),
			TimeComplexity:       "O(n + m) average, O(n * m) worst",
			SpaceComplexity:      "O(1)",
			PreprocessComplexity: "O(m)",
		},
	}, nil
}

// Run dispatches to the pipeline named by a.
func Run(a Algorithm, text, pattern string, base, modulus int64) (Result, error) {
	switch a {
	case ExactMatch:
		return RunExactMatch(text, pattern)
	case RollingHash:
		return RunRollingHash(text, pattern, base, modulus)
	}
	return Result{}, fmt.Errorf("unknown algorithm %q", a)
}
