package output

import (
	"fmt"

	"strtrace/internal/engine"
	"strtrace/internal/trace"
	"strtrace/pkg/api"
)

// Step phases on the wire.
const (
	PhasePreprocessing = "preprocessing"
	PhaseMatching      = "matching"
)

// Options controls what the conversion keeps.
type Options struct {
	// Steps includes the preprocessing and matching traces. When false only
	// the summary and auxiliary table/hash are emitted.
	Steps bool
}

// DefaultOptions emits everything.
var DefaultOptions = Options{Steps: true}

// ToAPIResult converts a domain Result to the stable wire schema (v1).
func ToAPIResult(r engine.Result, opt Options) api.ResultV1 {
	v := api.ResultV1{
		ID:           r.ID,
		Algorithm:    string(r.Algorithm),
		Text:         r.Text,
		Pattern:      r.Pattern,
		FailureTable: append([]int(nil), r.FailureTable...),
		Summary: api.SummaryV1{
			Matches:              append([]int{}, r.Summary.Matches...),
			MatchCount:           r.Summary.MatchCount,
			Comparisons:          r.Summary.Comparisons,
			HashComparisons:      r.Summary.HashComparisons,
			CharComparisons:      r.Summary.CharComparisons,
			SpuriousHits:         r.Summary.SpuriousHits,
			PreprocessSteps:      r.Summary.PreprocessSteps,
			MatchingSteps:        r.Summary.MatchingSteps,
			TimeComplexity:       r.Summary.TimeComplexity,
			SpaceComplexity:      r.Summary.SpaceComplexity,
			PreprocessComplexity: r.Summary.PreprocessComplexity,
		},
	}
	if r.Hash != nil {
		v.HashParams = &api.HashParamsV1{
			Base:        r.Hash.Base,
			Modulus:     r.Hash.Modulus,
			PatternHash: r.Hash.PatternHash,
			HighOrder:   r.Hash.HighOrder,
		}
	}
	if opt.Steps {
		v.Preprocessing = ToAPISteps(PhasePreprocessing, r.Preprocessing)
		v.Matching = ToAPISteps(PhaseMatching, r.Matching)
	}
	return v
}

func toAPIResults(list []engine.Result, opt Options) []api.ResultV1 {
	out := make([]api.ResultV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIResult(r, opt))
	}
	return out
}

// ToAPISteps converts a trace, numbering steps in emission order.
func ToAPISteps(phase string, steps []trace.Step) []api.StepV1 {
	out := make([]api.StepV1, 0, len(steps))
	for i, s := range steps {
		out = append(out, ToAPIStep(phase, i, s))
	}
	return out
}

// ToAPIStep converts one step. It panics on a step type it does not know,
// which can only mean a variant was added to trace without updating this switch.
func ToAPIStep(phase string, index int, s trace.Step) api.StepV1 {
	v := api.StepV1{
		Index:       index,
		Phase:       phase,
		Type:        string(s.Kind()),
		Description: s.Describe(),
	}

	switch st := s.(type) {
	case trace.LPSInit:
		v.PatternLength = ip(st.PatternLen)
		v.Table = copyInts(st.Table)
	case trace.LPSMatch:
		v.I, v.Length = ip(st.I), ip(st.Length)
		v.Char, v.CharCode = ch(st.Char), code(st.Char)
		v.Table = copyInts(st.Table)
	case trace.LPSFallback:
		v.I, v.From, v.To = ip(st.I), ip(st.From), ip(st.To)
		v.Length = ip(st.To)
		v.Table = copyInts(st.Table)
	case trace.LPSZero:
		v.I = ip(st.I)
		v.Length = ip(0)
		v.Table = copyInts(st.Table)
	case trace.LPSComplete:
		v.Table = copyInts(st.Table)

	case trace.KMPInit:
		v.TextLength, v.PatternLength = ip(st.TextLen), ip(st.PatternLen)
		v.I, v.J = ip(0), ip(0)
		v.Table = copyInts(st.Table)
	case trace.KMPMatch:
		v.I, v.J = ip(st.I), ip(st.J)
		v.Char, v.CharCode = ch(st.Char), code(st.Char)
		v.Comparisons = ip(st.Comparisons)
	case trace.KMPFound:
		v.Position, v.I, v.NextJ = ip(st.Position), ip(st.I), ip(st.NextJ)
		v.MatchCount = ip(st.MatchCount)
		v.Comparisons = ip(st.Comparisons)
	case trace.KMPShift:
		v.I, v.From, v.To = ip(st.I), ip(st.From), ip(st.To)
		v.J = ip(st.To)
		v.TextChar, v.PatternChar = ch(st.TextChar), ch(st.PatternChar)
		v.TextCharCode, v.PatternCharCode = code(st.TextChar), code(st.PatternChar)
		v.Comparisons = ip(st.Comparisons)
	case trace.KMPAdvance:
		v.I, v.J = ip(st.I), ip(0)
		v.TextChar, v.PatternChar = ch(st.TextChar), ch(st.PatternChar)
		v.TextCharCode, v.PatternCharCode = code(st.TextChar), code(st.PatternChar)
		v.Comparisons = ip(st.Comparisons)
	case trace.KMPComplete:
		v.Matches = copyInts(st.Matches)
		v.Comparisons = ip(st.Comparisons)

	case trace.HashInit:
		v.Base, v.Modulus = i64(st.Base), i64(st.Modulus)
		v.Hash = i64(0)
	case trace.HashStep:
		v.I = ip(st.I)
		v.Char, v.CharCode = ch(st.Char), code(st.Char)
		v.HashBefore, v.Hash = i64(st.Before), i64(st.After)
	case trace.HashComplete:
		v.Hash = i64(st.Hash)

	case trace.RKInit:
		v.PatternHash, v.WindowHash, v.HighOrder = i64(st.PatternHash), i64(st.WindowHash), i64(st.HighOrder)
		v.Window = st.Window
		v.Position = ip(0)
	case trace.RKHashMatch:
		v.Position = ip(st.Position)
		v.Window = st.Window
		v.WindowHash, v.PatternHash = i64(st.WindowHash), i64(st.PatternHash)
		v.HashComparisons = ip(st.HashComparisons)
	case trace.RKHashMismatch:
		v.Position = ip(st.Position)
		v.Window = st.Window
		v.WindowHash, v.PatternHash = i64(st.WindowHash), i64(st.PatternHash)
		v.HashComparisons = ip(st.HashComparisons)
	case trace.RKFound:
		v.Position = ip(st.Position)
		v.Checks = toAPIChecks(st.Checks)
		v.MatchCount = ip(st.MatchCount)
		v.CharComparisons = ip(st.CharComparisons)
	case trace.RKSpuriousHit:
		v.Position, v.MismatchAt = ip(st.Position), ip(st.MismatchAt)
		v.Checks = toAPIChecks(st.Checks)
		v.CharComparisons = ip(st.CharComparisons)
	case trace.RKRoll:
		v.Position = ip(st.Position)
		v.Removed, v.Added = ch(st.Removed), ch(st.Added)
		v.RemovedCode, v.AddedCode = code(st.Removed), code(st.Added)
		v.OldHash, v.NewHash = i64(st.OldHash), i64(st.NewHash)
		v.Window = st.Window
	case trace.RKComplete:
		v.Matches = copyInts(st.Matches)
		v.HashComparisons = ip(st.HashComparisons)
		v.CharComparisons = ip(st.CharComparisons)
		v.SpuriousHits = ip(st.SpuriousHits)

	default:
		panic(fmt.Sprintf("output: unhandled step type %T", s))
	}
	return v
}

func toAPIChecks(cs []trace.CharCheck) []api.CharCheckV1 {
	out := make([]api.CharCheckV1, len(cs))
	for i, c := range cs {
		out[i] = api.CharCheckV1{
			PatternIndex: c.PatternIndex,
			TextIndex:    c.TextIndex,
			PatternChar:  ch(c.PatternChar),
			TextChar:     ch(c.TextChar),
			Equal:        c.Equal,

			PatternCharCode: code(c.PatternChar),
			TextCharCode:    code(c.TextChar),
		}
	}
	return out
}

func ip(v int) *int { return &v }

func i64(v int64) *int64 { return &v }

func ch(b byte) string { return string([]byte{b}) }

func code(b byte) *int { return ip(int(b)) }

func copyInts(a []int) []int { return append([]int(nil), a...) }
