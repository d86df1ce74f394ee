package output

// Output formats understood by writers.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "id\talgorithm\ttext_len\tpattern_len\tmatch_count\tmatches\tcomparisons\thash_comparisons\tchar_comparisons\tspurious_hits\tpreprocessing_steps\tmatching_steps"
