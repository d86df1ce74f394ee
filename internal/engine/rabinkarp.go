package engine

import "strtrace/internal/trace"

// RollingScan is the outcome of ScanRollingHash.
type RollingScan struct {
	Matches         []int
	HashComparisons int
	CharComparisons int
	SpuriousHits    int
	HighOrder       int64
}

// ScanRollingHash slides a window of len(pattern) over text, comparing window
// hashes with patternHash and verifying hash matches character by character.
// Each next window hash is derived from the previous one in O(1).
//
// Callers must validate inputs first (see ValidateText, ValidateHashParams);
// ScanRollingHash assumes 0 < len(pattern) <= len(text) and positive params.
func ScanRollingHash(text, pattern []byte, patternHash, base, modulus int64) (RollingScan, []trace.Step) {
	n, m := len(text), len(pattern)
	b, q := uint64(base), uint64(modulus)
	ph := uint64(patternHash)

	high := highOrder(m-1, b, q)
	wh := windowHash(text[:m], b, q)
	res := RollingScan{Matches: []int{}, HighOrder: int64(high)}

	var log trace.Log
	log.Add(trace.RKInit{
		Note: trace.Notef("start scan: h = %d^%d mod %d = %d, pattern hash %d, first window %q hash %d",
			base, m-1, modulus, high, ph, text[:m], wh),
		PatternHash: patternHash,
		WindowHash:  int64(wh),
		HighOrder:   int64(high),
		Window:      string(text[:m]),
	})

	for i := 0; i <= n-m; i++ {
		window := text[i : i+m]
		res.HashComparisons++
		if wh != ph {
			log.Add(trace.RKHashMismatch{
				Note:            trace.Notef("window %d %q hash %d != pattern hash %d; skip", i, window, wh, ph),
				Position:        i,
				Window:          string(window),
				WindowHash:      int64(wh),
				PatternHash:     patternHash,
				HashComparisons: res.HashComparisons,
			})
		} else {
			log.Add(trace.RKHashMatch{
				Note:            trace.Notef("window %d %q hash %d == pattern hash; verify characters", i, window, wh),
				Position:        i,
				Window:          string(window),
				WindowHash:      int64(wh),
				PatternHash:     patternHash,
				HashComparisons: res.HashComparisons,
			})
			verify(&log, &res, text, pattern, i)
		}

		if i < n-m {
			old := wh
			wh = rollHash(old, text[i], text[i+m], high, b, q)
			log.Add(trace.RKRoll{
				Note: trace.Notef("roll: drop %q, add %q; hash = (%d * (%d - %d * %d) + %d) mod %d = %d",
					text[i], text[i+m], base, old, text[i], high, text[i+m], modulus, wh),
				Position: i + 1,
				Removed:  text[i],
				Added:    text[i+m],
				OldHash:  int64(old),
				NewHash:  int64(wh),
				Window:   string(text[i+1 : i+1+m]),
			})
		}
	}

	log.Add(trace.RKComplete{
		Note: trace.Notef("scan complete: %d match(es), %d hash comparison(s), %d character comparison(s), %d spurious hit(s)",
			len(res.Matches), res.HashComparisons, res.CharComparisons, res.SpuriousHits),
		Matches:         trace.Snapshot(res.Matches),
		HashComparisons: res.HashComparisons,
		CharComparisons: res.CharComparisons,
		SpuriousHits:    res.SpuriousHits,
	})
	return res, log.Steps()
}

// verify compares pattern against text[pos:] and records a found or a
// spurious-hit step. It stops at the first differing character.
func verify(log *trace.Log, res *RollingScan, text, pattern []byte, pos int) {
	checks := make([]trace.CharCheck, 0, len(pattern))
	for j := range pattern {
		res.CharComparisons++
		c := trace.CharCheck{
			PatternIndex: j,
			TextIndex:    pos + j,
			PatternChar:  pattern[j],
			TextChar:     text[pos+j],
			Equal:        pattern[j] == text[pos+j],
		}
		checks = append(checks, c)
		if !c.Equal {
			res.SpuriousHits++
			log.Add(trace.RKSpuriousHit{
				Note: trace.Notef("spurious hit at %d: text[%d] = %q differs from pattern[%d] = %q despite equal hashes",
					pos, pos+j, text[pos+j], j, pattern[j]),
				Position:        pos,
				MismatchAt:      j,
				Checks:          checks,
				CharComparisons: res.CharComparisons,
			})
			return
		}
	}
	res.Matches = append(res.Matches, pos)
	log.Add(trace.RKFound{
		Note:            trace.Notef("pattern found at index %d: all %d characters verified", pos, len(pattern)),
		Position:        pos,
		Checks:          checks,
		MatchCount:      len(res.Matches),
		CharComparisons: res.CharComparisons,
	})
}
