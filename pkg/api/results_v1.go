// Package api holds the stable wire schema of strtrace results.
package api

// ResultV1 is the stable JSON/JSONL schema for one algorithm run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	ID           string        `json:"id,omitempty"`
	Algorithm    string        `json:"algorithm"` // "kmp" | "rabin-karp"
	Text         string        `json:"text"`
	Pattern      string        `json:"pattern"`
	FailureTable []int         `json:"failure_table,omitempty"`
	HashParams   *HashParamsV1 `json:"hash_params,omitempty"`

	Preprocessing []StepV1 `json:"preprocessing,omitempty"`
	Matching      []StepV1 `json:"matching,omitempty"`

	Summary SummaryV1 `json:"summary"`
}

// HashParamsV1 describes the rolling-hash parameters of a run.
type HashParamsV1 struct {
	Base        int64 `json:"base"`
	Modulus     int64 `json:"modulus"`
	PatternHash int64 `json:"pattern_hash"`
	HighOrder   int64 `json:"high_order"` // base^(m-1) mod modulus
}

// SummaryV1 carries match offsets, counters, and complexity labels.
type SummaryV1 struct {
	Matches         []int `json:"matches"`
	MatchCount      int   `json:"match_count"`
	Comparisons     int   `json:"comparisons,omitempty"`
	HashComparisons int   `json:"hash_comparisons,omitempty"`
	CharComparisons int   `json:"char_comparisons,omitempty"`
	SpuriousHits    int   `json:"spurious_hits,omitempty"`
	PreprocessSteps int   `json:"preprocessing_steps"`
	MatchingSteps   int   `json:"matching_steps"`

	TimeComplexity       string `json:"time_complexity"`
	SpaceComplexity      string `json:"space_complexity"`
	PreprocessComplexity string `json:"preprocessing_complexity"`
}

// StepV1 is one trace record. Index is the emission order within its phase.
// Optional numeric fields are pointers so that a legitimate zero still shows.
type StepV1 struct {
	Index       int    `json:"index"`
	Phase       string `json:"phase"` // "preprocessing" | "matching"
	Type        string `json:"type"`
	Description string `json:"description"`

	I          *int  `json:"i,omitempty"`
	J          *int  `json:"j,omitempty"`
	Length     *int  `json:"length,omitempty"`
	From       *int  `json:"from,omitempty"`
	To         *int  `json:"to,omitempty"`
	Position   *int  `json:"position,omitempty"`
	NextJ      *int  `json:"next_j,omitempty"`
	MismatchAt *int  `json:"mismatch_at,omitempty"`
	Table      []int `json:"table,omitempty"`
	Matches    []int `json:"matches,omitempty"`
	MatchCount *int  `json:"match_count,omitempty"`

	Char        string `json:"char,omitempty"`
	TextChar    string `json:"text_char,omitempty"`
	PatternChar string `json:"pattern_char,omitempty"`
	Window      string `json:"window,omitempty"`
	Removed     string `json:"removed,omitempty"`
	Added       string `json:"added,omitempty"`

	// Byte values of the char fields above. JSON strings replace bytes that
	// are not valid UTF-8 with U+FFFD; the codes are always exact.
	CharCode        *int `json:"char_code,omitempty"`
	TextCharCode    *int `json:"text_char_code,omitempty"`
	PatternCharCode *int `json:"pattern_char_code,omitempty"`
	RemovedCode     *int `json:"removed_code,omitempty"`
	AddedCode       *int `json:"added_code,omitempty"`

	Base        *int64 `json:"base,omitempty"`
	Modulus     *int64 `json:"modulus,omitempty"`
	Hash        *int64 `json:"hash,omitempty"`
	HashBefore  *int64 `json:"hash_before,omitempty"`
	PatternHash *int64 `json:"pattern_hash,omitempty"`
	WindowHash  *int64 `json:"window_hash,omitempty"`
	HighOrder   *int64 `json:"high_order,omitempty"`
	OldHash     *int64 `json:"old_hash,omitempty"`
	NewHash     *int64 `json:"new_hash,omitempty"`

	Comparisons     *int `json:"comparisons,omitempty"`
	HashComparisons *int `json:"hash_comparisons,omitempty"`
	CharComparisons *int `json:"char_comparisons,omitempty"`
	SpuriousHits    *int `json:"spurious_hits,omitempty"`
	TextLength      *int `json:"text_length,omitempty"`
	PatternLength   *int `json:"pattern_length,omitempty"`

	Checks []CharCheckV1 `json:"checks,omitempty"`
}

// CharCheckV1 is one verification comparison of a rolling-hash candidate.
type CharCheckV1 struct {
	PatternIndex int    `json:"pattern_index"`
	TextIndex    int    `json:"text_index"`
	PatternChar  string `json:"pattern_char"`
	TextChar     string `json:"text_char"`
	Equal        bool   `json:"equal"`

	PatternCharCode *int `json:"pattern_char_code,omitempty"`
	TextCharCode    *int `json:"text_char_code,omitempty"`
}
