package cases

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"

	"strtrace/internal/engine"
)

func TestParse(t *testing.T) {
	in := "# id\ttext\tpattern\n" +
		"\n" +
		"geeks\tGEEKSFORGEEKS\tGEEK\n" +
		"spaces\ta b a b\tb a\t31\t1000000007\r\n"
	got, err := Parse(strings.NewReader(in), "mem", 256, 101)
	if err != nil {
		t.Fatal(err)
	}
	want := []Case{
		{ID: "geeks", Text: "GEEKSFORGEEKS", Pattern: "GEEK", Base: 256, Modulus: 101},
		{ID: "spaces", Text: "a b a b", Pattern: "b a", Base: 31, Modulus: 1000000007},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("cases (-want +got):\n%s", diff)
	}
}

func TestParseReportsEveryBadLine(t *testing.T) {
	in := strings.Join([]string{
		"ok\tABC\tB",
		"short\tABC",             // 2: field count
		"four\tABC\tB\t7",        // 3: field count
		"long\tAB\tABC",          // 4: pattern longer than text
		"badmod\tABC\tB\t256\t0", // 5: modulus
		"nan\tABC\tB\tx\t101",    // 6: base
		"ok\tXYZ\tZ",             // 7: duplicate
	}, "\n")
	_, err := Parse(strings.NewReader(in), "f.tsv", 256, 101)
	var me *multierror.Error
	if !errors.As(err, &me) {
		t.Fatalf("want *multierror.Error, got %T %v", err, err)
	}
	if len(me.Errors) != 6 {
		t.Fatalf("want 6 line errors, got %d: %v", len(me.Errors), err)
	}
	for _, line := range []string{"f.tsv:2:", "f.tsv:3:", "f.tsv:4:", "f.tsv:5:", "f.tsv:6:", "f.tsv:7:"} {
		if !strings.Contains(err.Error(), line) {
			t.Errorf("missing %s in %v", line, err)
		}
	}
	if !errors.Is(err, engine.ErrInvalidInput) {
		t.Errorf("validation failures should wrap ErrInvalidInput")
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse(strings.NewReader("# only a comment\n\n"), "e", 256, 101); !errors.Is(err, ErrNoCases) {
		t.Fatalf("err = %v", err)
	}
}

func TestLoadTSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.tsv")
	if err := os.WriteFile(path, []byte("a\tAABAACAADAABAABA\tAABA\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadTSV(path, 256, 101)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Pattern != "AABA" {
		t.Fatalf("got %+v", got)
	}
	if _, err := LoadTSV(filepath.Join(t.TempDir(), "missing.tsv"), 256, 101); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file: %v", err)
	}
}
