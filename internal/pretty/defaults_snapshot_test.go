package pretty

import (
	"testing"

	"golang.org/x/text/language"
)

func TestDefaultOptions_Stable(t *testing.T) {
	d := DefaultOptions
	if d.CaretGlyph == "" || d.EqualGlyph == "" || d.MismatchGlyph == "" || d.DotGlyph == "" {
		t.Fatalf("glyphs must be non-empty")
	}
	// Spot checks of current defaults (don't lock everything, just the external look)
	if d.CaretGlyph != "^" || d.EqualGlyph != "|" || d.MismatchGlyph != "x" || d.DotGlyph != "." {
		t.Fatalf("DefaultOptions visual defaults changed")
	}
	if d.MaxWidth != 72 || d.MaxSteps != 0 || d.Lang != language.English {
		t.Fatalf("DefaultOptions layout defaults changed: %+v", d)
	}
}

func TestZeroOptionsFallBackToDefaults(t *testing.T) {
	var o Options
	if o.caret() != "^" || o.equal() != "|" || o.mismatch() != "x" || o.dot() != "." || o.width() != 72 {
		t.Fatalf("zero Options should resolve to defaults")
	}
}
