package engine

import "strtrace/internal/trace"

// ScanExact finds every occurrence of pattern in text using the failure table
// built by BuildFailureTable. Occurrences may overlap. The text index never
// moves backwards; on a mismatch only the pattern index falls back.
//
// Callers must pass a table built for pattern; ScanExact does not re-validate.
func ScanExact(text, pattern []byte, table []int) (matches []int, steps []trace.Step, comparisons int) {
	n, m := len(text), len(pattern)
	matches = []int{}

	var log trace.Log
	log.Add(trace.KMPInit{
		Note:       trace.Notef("start scan: text length %d, pattern length %d, i = 0, j = 0", n, m),
		TextLen:    n,
		PatternLen: m,
		Table:      trace.Snapshot(table),
	})
	if m == 0 {
		log.Add(trace.KMPComplete{Note: trace.Notef("empty pattern, nothing to scan"), Matches: []int{}})
		return matches, log.Steps(), 0
	}

	i, j := 0, 0
	for i < n {
		if pattern[j] == text[i] {
			comparisons++
			log.Add(trace.KMPMatch{
				Note:        trace.Notef("text[%d] = %q matches pattern[%d]", i, text[i], j),
				I:           i,
				J:           j,
				Char:        text[i],
				Comparisons: comparisons,
			})
			i++
			j++
			if j == m {
				pos := i - j
				matches = append(matches, pos)
				next := table[j-1]
				log.Add(trace.KMPFound{
					Note:        trace.Notef("pattern found at index %d; continue with j = lps[%d] = %d", pos, j-1, next),
					Position:    pos,
					I:           i,
					NextJ:       next,
					MatchCount:  len(matches),
					Comparisons: comparisons,
				})
				j = next
			}
			continue
		}

		comparisons++
		if j != 0 {
			from := j
			j = table[j-1]
			log.Add(trace.KMPShift{
				Note: trace.Notef("text[%d] = %q differs from pattern[%d] = %q; shift j from %d to lps[%d] = %d, i stays %d",
					i, text[i], from, pattern[from], from, from-1, j, i),
				I:           i,
				From:        from,
				To:          j,
				TextChar:    text[i],
				PatternChar: pattern[from],
				Comparisons: comparisons,
			})
			continue
		}
		log.Add(trace.KMPAdvance{
			Note:        trace.Notef("text[%d] = %q differs from pattern[0] = %q; advance i to %d", i, text[i], pattern[0], i+1),
			I:           i,
			TextChar:    text[i],
			PatternChar: pattern[0],
			Comparisons: comparisons,
		})
		i++
	}

	log.Add(trace.KMPComplete{
		Note:        trace.Notef("scan complete: %d match(es) with %d comparison(s)", len(matches), comparisons),
		Matches:     trace.Snapshot(matches),
		Comparisons: comparisons,
	})
	return matches, log.Steps(), comparisons
}
