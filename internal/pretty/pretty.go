// Package pretty renders a Result's traces as ASCII replay blocks: one
// header line per step, followed by the text with the pattern aligned at the
// step's offset and a caret/mark track under the compared position.
package pretty

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"strtrace/internal/engine"
	"strtrace/internal/trace"
)

// Options control the ASCII rendering.
type Options struct {
	// Text columns shown per aligned row. If <=0, use default (72).
	MaxWidth int

	// Steps rendered per phase; the rest are summarized. 0 renders all.
	MaxSteps int

	// Language used to group numbers in the summary lines.
	Lang language.Tag

	// Glyphs
	CaretGlyph    string // default "^"
	EqualGlyph    string // default "|"
	MismatchGlyph string // default "x"
	DotGlyph      string // default "." (cropped text)
}

// DefaultOptions is used by RenderResult.
var DefaultOptions = Options{
	MaxWidth:      72,
	MaxSteps:      0,
	Lang:          language.English,
	CaretGlyph:    "^",
	EqualGlyph:    "|",
	MismatchGlyph: "x",
	DotGlyph:      ".",
}

const (
	linePrefix = "# "
	indent     = "    "
)

func (o Options) caret() string    { return orDefault(o.CaretGlyph, DefaultOptions.CaretGlyph) }
func (o Options) equal() string    { return orDefault(o.EqualGlyph, DefaultOptions.EqualGlyph) }
func (o Options) mismatch() string { return orDefault(o.MismatchGlyph, DefaultOptions.MismatchGlyph) }
func (o Options) dot() string      { return orDefault(o.DotGlyph, DefaultOptions.DotGlyph) }

func (o Options) width() int {
	if o.MaxWidth <= 0 {
		return DefaultOptions.MaxWidth
	}
	return o.MaxWidth
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// RenderResult keeps the simple entry point (uses DefaultOptions).
func RenderResult(r engine.Result) string {
	return RenderResultWithOptions(r, DefaultOptions)
}

// RenderResultWithOptions prints the summary followed by both phases.
func RenderResultWithOptions(r engine.Result, opt Options) string {
	p := message.NewPrinter(opt.Lang)
	var b strings.Builder

	fmt.Fprintf(&b, "%s%s: pattern %q in text of %s byte(s)\n", linePrefix, r.Algorithm, r.Pattern, p.Sprintf("%d", len(r.Text)))
	s := r.Summary
	switch r.Algorithm {
	case engine.ExactMatch:
		b.WriteString(p.Sprintf("%smatches %d at [%s], %d comparison(s), lps %v\n",
			linePrefix, s.MatchCount, joinInts(s.Matches), s.Comparisons, r.FailureTable))
	case engine.RollingHash:
		b.WriteString(p.Sprintf("%smatches %d at [%s], %d hash / %d char comparison(s), %d spurious hit(s)\n",
			linePrefix, s.MatchCount, joinInts(s.Matches), s.HashComparisons, s.CharComparisons, s.SpuriousHits))
		if r.Hash != nil {
			b.WriteString(p.Sprintf("%sbase %d, modulus %d, pattern hash %d, h %d\n",
				linePrefix, r.Hash.Base, r.Hash.Modulus, r.Hash.PatternHash, r.Hash.HighOrder))
		}
	}
	fmt.Fprintf(&b, "%stime %s, space %s\n", linePrefix, s.TimeComplexity, s.SpaceComplexity)

	renderPhase(&b, "preprocessing", r, r.Preprocessing, opt)
	renderPhase(&b, "matching", r, r.Matching, opt)

	b.WriteString("#\n")
	return b.String()
}

func renderPhase(b *strings.Builder, name string, r engine.Result, steps []trace.Step, opt Options) {
	fmt.Fprintf(b, "%s-- %s (%d steps) --\n", linePrefix, name, len(steps))
	for i, s := range steps {
		if opt.MaxSteps > 0 && i >= opt.MaxSteps {
			fmt.Fprintf(b, "%s... %d more step(s)\n", linePrefix, len(steps)-i)
			return
		}
		fmt.Fprintf(b, "%s[%3d] %-13s %s\n", linePrefix, i, s.Kind(), s.Describe())
		RenderStep(b, r.Text, r.Pattern, s, opt)
	}
}

// RenderStep writes the aligned rows for one step. Bracket steps
// (init/complete) and hash-only steps without a position draw nothing extra.
func RenderStep(b *strings.Builder, text, pattern string, s trace.Step, opt Options) {
	switch st := s.(type) {
	case trace.LPSMatch:
		patternRow(b, pattern, st.I, opt)
		fmt.Fprintf(b, "%s%slps %v\n", linePrefix, indent, st.Table)
	case trace.LPSFallback:
		patternRow(b, pattern, st.I, opt)
		fmt.Fprintf(b, "%s%slength %d -> %d\n", linePrefix, indent, st.From, st.To)
	case trace.LPSZero:
		patternRow(b, pattern, st.I, opt)
		fmt.Fprintf(b, "%s%slps %v\n", linePrefix, indent, st.Table)
	case trace.HashStep:
		patternRow(b, pattern, st.I, opt)
		fmt.Fprintf(b, "%s%shash %d -> %d\n", linePrefix, indent, st.Before, st.After)

	case trace.KMPMatch:
		aligned(b, text, pattern, st.I-st.J, st.I, nil, opt)
	case trace.KMPShift:
		aligned(b, text, pattern, st.I-st.From, st.I, nil, opt)
		aligned(b, text, pattern, st.I-st.To, st.I, nil, opt)
	case trace.KMPAdvance:
		aligned(b, text, pattern, st.I, st.I, nil, opt)
	case trace.KMPFound:
		aligned(b, text, pattern, st.Position, -1, allEqual(len(pattern)), opt)

	case trace.RKHashMatch:
		aligned(b, text, pattern, st.Position, -1, nil, opt)
	case trace.RKHashMismatch:
		aligned(b, text, pattern, st.Position, -1, nil, opt)
	case trace.RKFound:
		aligned(b, text, pattern, st.Position, -1, st.Checks, opt)
	case trace.RKSpuriousHit:
		aligned(b, text, pattern, st.Position, -1, st.Checks, opt)
	case trace.RKRoll:
		fmt.Fprintf(b, "%s%s-%q +%q  %d -> %d\n", linePrefix, indent, st.Removed, st.Added, st.OldHash, st.NewHash)
	}
}

// patternRow draws the pattern with a caret under position i.
func patternRow(b *strings.Builder, pattern string, i int, opt Options) {
	fmt.Fprintf(b, "%s%s%s\n", linePrefix, indent, pattern)
	fmt.Fprintf(b, "%s%s%s%s\n", linePrefix, indent, strings.Repeat(" ", i), opt.caret())
}

// aligned draws text, the pattern shifted to offset, and either a caret under
// text column caret (>= 0) or a mark track built from checks.
func aligned(b *strings.Builder, text, pattern string, offset, caret int, checks []trace.CharCheck, opt Options) {
	lo, hi := viewport(len(text), offset, caret, opt.width())

	var row strings.Builder
	if lo > 0 {
		row.WriteString(opt.dot())
	} else {
		row.WriteByte(' ')
	}
	row.WriteString(text[lo:hi])
	if hi < len(text) {
		row.WriteString(opt.dot())
	}
	fmt.Fprintf(b, "%s%s%s\n", linePrefix, indent, row.String())

	// pattern row, clipped to the viewport
	var pr strings.Builder
	pr.WriteByte(' ')
	for col := lo; col < hi; col++ {
		k := col - offset
		if k >= 0 && k < len(pattern) {
			pr.WriteByte(pattern[k])
		} else {
			pr.WriteByte(' ')
		}
	}
	fmt.Fprintf(b, "%s%s%s\n", linePrefix, indent, strings.TrimRight(pr.String(), " "))

	var mk strings.Builder
	mk.WriteByte(' ')
	switch {
	case checks != nil:
		for col := lo; col < hi; col++ {
			k := col - offset
			if k >= 0 && k < len(checks) {
				if checks[k].Equal {
					mk.WriteString(opt.equal())
				} else {
					mk.WriteString(opt.mismatch())
				}
			} else {
				mk.WriteByte(' ')
			}
		}
	case caret >= lo:
		mk.WriteString(strings.Repeat(" ", caret-lo))
		mk.WriteString(opt.caret())
	default:
		return
	}
	fmt.Fprintf(b, "%s%s%s\n", linePrefix, indent, strings.TrimRight(mk.String(), " "))
}

// viewport picks [lo, hi) of the text to show so the aligned pattern (and
// caret) stay visible within width columns.
func viewport(n, offset, caret, width int) (lo, hi int) {
	if n <= width {
		return 0, n
	}
	lo = offset - 2
	if caret >= 0 && caret >= lo+width {
		lo = caret - width + 1
	}
	if lo > n-width {
		lo = n - width
	}
	if lo < 0 {
		lo = 0
	}
	return lo, lo + width
}

func allEqual(n int) []trace.CharCheck {
	out := make([]trace.CharCheck, n)
	for i := range out {
		out[i].Equal = true
	}
	return out
}

func joinInts(a []int) string {
	ss := make([]string, len(a))
	for i, v := range a {
		ss[i] = fmt.Sprint(v)
	}
	return strings.Join(ss, ",")
}
