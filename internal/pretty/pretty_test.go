package pretty

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"strtrace/internal/engine"
	"strtrace/internal/trace"
)

// writeIfUpdate rewrites the golden when UPDATE_GOLDEN=1.
func writeIfUpdate(path string, got string) (updated bool, err error) {
	if os.Getenv("UPDATE_GOLDEN") != "1" {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	return true, os.WriteFile(path, []byte(got), 0644)
}

func mustRead(path string, t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s (UPDATE_GOLDEN=1 writes it): %v", path, err)
	}
	return string(b)
}

func mustRun(t *testing.T, a engine.Algorithm, text, pattern string) engine.Result {
	t.Helper()
	r, err := engine.Run(a, text, pattern, engine.DefaultBase, engine.DefaultModulus)
	if err != nil {
		t.Fatalf("run %s: %v", a, err)
	}
	return r
}

func checkGolden(t *testing.T, name, got string) {
	t.Helper()
	path := filepath.Join("testdata", name)
	if updated, err := writeIfUpdate(path, got); err != nil {
		t.Fatalf("write golden: %v", err)
	} else if updated {
		t.Logf("wrote %s", path)
		return
	}
	want := mustRead(path, t)
	if got != want {
		t.Fatalf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderExactMatch_Golden(t *testing.T) {
	checkGolden(t, "kmp.golden", RenderResult(mustRun(t, engine.ExactMatch, "AABAACAADAABAABA", "AABA")))
}

func TestRenderRollingHash_Golden(t *testing.T) {
	checkGolden(t, "rabinkarp.golden", RenderResult(mustRun(t, engine.RollingHash, "GEEKSFORGEEKS", "GEEK")))
}

func TestRenderExactMatch_Content(t *testing.T) {
	got := RenderResult(mustRun(t, engine.ExactMatch, "AABAACAADAABAABA", "AABA"))
	for _, want := range []string{
		`# kmp: pattern "AABA" in text of 16 byte(s)`,
		"# matches 3 at [0,9,12]",
		"# -- preprocessing (",
		"# -- matching (",
		"pattern_found",
		"fallback",
		"time O(n + m), space O(m)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	if !strings.HasSuffix(got, "#\n") {
		t.Errorf("block must end with a bare # line")
	}
}

func TestRenderRollingHash_SpuriousMarks(t *testing.T) {
	// "JU" and "AB" collide under base 256, modulus 101.
	got := RenderResult(mustRun(t, engine.RollingHash, "JUAB", "AB"))
	for _, want := range []string{
		"1 spurious hit(s)",
		"spurious_hit",
		"base 256, modulus 101, pattern hash 41",
		"     x", // mismatch mark under the first verified column
		"     ||",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderGroupsLargeNumbers(t *testing.T) {
	text := strings.Repeat("A", 1233) + "B"
	r := mustRun(t, engine.RollingHash, text, "B")
	got := RenderResultWithOptions(r, Options{MaxSteps: 1, Lang: language.English})
	if !strings.Contains(got, "text of 1,234 byte(s)") {
		t.Errorf("expected grouped length:\n%s", got)
	}
	if !strings.Contains(got, "1,234 hash /") {
		t.Errorf("expected grouped hash comparisons")
	}
	if !strings.Contains(got, "more step(s)") {
		t.Errorf("MaxSteps should summarize the tail")
	}
}

func TestAlignedCropsLongText(t *testing.T) {
	text := strings.Repeat("x", 100) + "NEEDLE" + strings.Repeat("y", 100)
	var b strings.Builder
	aligned(&b, text, "NEEDLE", 100, 103, nil, Options{MaxWidth: 20})
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("want text, pattern and caret rows, got %d:\n%s", len(lines), b.String())
	}
	if !strings.HasPrefix(lines[0], linePrefix+indent+".") || !strings.HasSuffix(lines[0], ".") {
		t.Errorf("cropped row should carry dots on both ends: %q", lines[0])
	}
	if !strings.Contains(lines[1], "NEEDLE") {
		t.Errorf("pattern row lost the pattern: %q", lines[1])
	}
	// caret sits under text column 103, i.e. the 'D'
	textRow := strings.TrimPrefix(lines[0], linePrefix+indent)
	caretRow := strings.TrimPrefix(lines[2], linePrefix+indent)
	if c := strings.Index(caretRow, "^"); c < 0 || textRow[c] != 'D' {
		t.Errorf("caret misplaced:\n%s\n%s", textRow, caretRow)
	}
}

func TestRenderStepSkipsBrackets(t *testing.T) {
	var b strings.Builder
	RenderStep(&b, "ABC", "A", trace.KMPComplete{}, DefaultOptions)
	RenderStep(&b, "ABC", "A", trace.HashInit{Base: 256, Modulus: 101}, DefaultOptions)
	if b.Len() != 0 {
		t.Fatalf("bracket steps should draw nothing, got %q", b.String())
	}
}
