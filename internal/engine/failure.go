package engine

import "strtrace/internal/trace"

// BuildFailureTable computes the longest-proper-prefix-suffix table of pattern
// and the trace of how it was built. table[i] is the length of the longest
// proper prefix of pattern[:i+1] that is also a suffix of it.
func BuildFailureTable(pattern []byte) ([]int, []trace.Step, error) {
	m := len(pattern)
	if m == 0 {
		return nil, nil, invalid("pattern is empty")
	}

	table := make([]int, m)
	var log trace.Log
	log.Add(trace.LPSInit{
		Note:       trace.Notef("start failure table for %q: lps[0] = 0, prefix length 0, i = 1", pattern),
		PatternLen: m,
		Table:      trace.Snapshot(table),
	})

	length := 0
	for i := 1; i < m; {
		if pattern[i] == pattern[length] {
			length++
			table[i] = length
			log.Add(trace.LPSMatch{
				Note: trace.Notef("pattern[%d] = %q equals pattern[%d]; prefix length grows to %d, lps[%d] = %d",
					i, pattern[i], length-1, length, i, length),
				I:      i,
				Length: length,
				Char:   pattern[i],
				Table:  trace.Snapshot(table),
			})
			i++
			continue
		}
		if length != 0 {
			from := length
			length = table[length-1]
			log.Add(trace.LPSFallback{
				Note: trace.Notef("pattern[%d] = %q differs from pattern[%d] = %q; fall back from %d to lps[%d] = %d and retry i = %d",
					i, pattern[i], from, pattern[from], from, from-1, length, i),
				I:     i,
				From:  from,
				To:    length,
				Table: trace.Snapshot(table),
			})
			continue
		}
		table[i] = 0
		log.Add(trace.LPSZero{
			Note:  trace.Notef("pattern[%d] = %q differs from pattern[0] with no prefix to fall back to; lps[%d] = 0", i, pattern[i], i),
			I:     i,
			Table: trace.Snapshot(table),
		})
		i++
	}

	log.Add(trace.LPSComplete{
		Note:  trace.Notef("failure table complete: %v", table),
		Table: trace.Snapshot(table),
	})
	return table, log.Steps(), nil
}
