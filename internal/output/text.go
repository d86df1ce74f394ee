package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"strtrace/internal/engine"
)

// IntsCSV joins offsets with commas; "-" for none.
func IntsCSV(a []int) string {
	if len(a) == 0 {
		return "-"
	}
	ss := make([]string, len(a))
	for i, v := range a {
		ss[i] = strconv.Itoa(v)
	}
	return strings.Join(ss, ",")
}

// FormatRowTSV returns the summary columns of r (no trailing newline).
func FormatRowTSV(r engine.Result) string {
	id := r.ID
	if id == "" {
		id = "-"
	}
	s := r.Summary
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d",
		id, r.Algorithm, len(r.Text), len(r.Pattern),
		s.MatchCount, IntsCSV(s.Matches),
		s.Comparisons, s.HashComparisons, s.CharComparisons, s.SpuriousHits,
		s.PreprocessSteps, s.MatchingSteps,
	)
}

// StreamText prints one TSV row per result arriving on in, each optionally
// followed by the block render returns. It keeps draining in after a write
// error so the producer never blocks.
func StreamText(w io.Writer, in <-chan engine.Result, header, pretty bool, render func(engine.Result) string) error {
	var err error
	if header {
		_, err = fmt.Fprintln(w, TSVHeader)
	}
	for r := range in {
		if err != nil {
			continue
		}
		err = writeTextRow(w, r, pretty, render)
	}
	return err
}

func writeTextRow(w io.Writer, r engine.Result, pretty bool, render func(engine.Result) string) error {
	if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
		return err
	}
	if pretty && render != nil {
		if _, err := io.WriteString(w, render(r)); err != nil {
			return err
		}
	}
	return nil
}
