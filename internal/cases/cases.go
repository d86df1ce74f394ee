// Package cases loads batches of (text, pattern) inputs from TSV files.
package cases

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"strtrace/internal/engine"
)

// Case is one input to run through the selected algorithms.
type Case struct {
	ID      string
	Text    string
	Pattern string
	Base    int64
	Modulus int64
}

// ErrNoCases is returned for a file without a single case line.
var ErrNoCases = errors.New("no cases")

// LoadTSV reads a tab-separated file with
// id text pattern [base modulus]
// base / modulus are optional together and default to the given values.
// Blank lines and lines starting with '#' are skipped. Every bad line is
// reported, not only the first.
func LoadTSV(path string, base, modulus int64) ([]Case, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Parse(fh, path, base, modulus)
}

// Parse is LoadTSV over any reader; name prefixes error positions.
func Parse(r io.Reader, name string, base, modulus int64) ([]Case, error) {
	var (
		list []Case
		errs *multierror.Error
		seen = map[string]int{}
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64<<10), 16<<20)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || line[0] == '#' {
			continue
		}
		c, err := parseLine(line, base, modulus)
		if err == nil {
			if prev, dup := seen[c.ID]; dup {
				err = fmt.Errorf("duplicate id %q (first on line %d)", c.ID, prev)
			}
		}
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s:%d: %w", name, ln, err))
			continue
		}
		seen[c.ID] = ln
		list = append(list, c)
	}
	if err := sc.Err(); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("%s: %w", name, err))
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoCases)
	}
	return list, nil
}

func parseLine(line string, base, modulus int64) (Case, error) {
	f := strings.Split(line, "\t")
	if len(f) != 3 && len(f) != 5 {
		return Case{}, fmt.Errorf("bad field count %d (want 3 or 5)", len(f))
	}
	c := Case{ID: strings.TrimSpace(f[0]), Text: f[1], Pattern: f[2], Base: base, Modulus: modulus}
	if c.ID == "" {
		return Case{}, errors.New("empty id")
	}
	if len(f) == 5 {
		var err error
		if c.Base, err = strconv.ParseInt(strings.TrimSpace(f[3]), 10, 64); err != nil {
			return Case{}, fmt.Errorf("base: %w", err)
		}
		if c.Modulus, err = strconv.ParseInt(strings.TrimSpace(f[4]), 10, 64); err != nil {
			return Case{}, fmt.Errorf("modulus: %w", err)
		}
	}
	if err := engine.ValidateText(c.Text, c.Pattern); err != nil {
		return Case{}, err
	}
	if err := engine.ValidateHashParams(c.Base, c.Modulus); err != nil {
		return Case{}, err
	}
	return c, nil
}
