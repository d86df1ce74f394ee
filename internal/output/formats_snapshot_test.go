package output

import "testing"

func TestFormats_Stable(t *testing.T) {
	if FormatText != "text" || FormatJSON != "json" || FormatJSONL != "jsonl" {
		t.Fatalf("output format constants changed")
	}
}

func TestTSVHeader_Stable(t *testing.T) {
	const want = "id\talgorithm\ttext_len\tpattern_len\tmatch_count\tmatches\tcomparisons\thash_comparisons\tchar_comparisons\tspurious_hits\tpreprocessing_steps\tmatching_steps"
	if TSVHeader != want {
		t.Fatalf("TSVHeader changed:\n got:  %q\n want: %q", TSVHeader, want)
	}
}
