// Package clibase holds the flag set, usage and validation shared by the
// strtrace command line.
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"strtrace/internal/cliutil"
	"strtrace/internal/config"
	"strtrace/internal/engine"
)

// AlgorithmBoth selects every algorithm, in engine.Algorithms order.
const AlgorithmBoth = "both"

// Common holds the CLI fields of strtrace.
type Common struct {
	// Input
	Text      string
	Pattern   string
	CaseFiles []string

	// Algorithm
	Algorithm string
	Base      int64
	Modulus   int64

	// Performance
	Threads int

	// Output
	Output          string // text|json|jsonl
	Pretty          bool
	NoSteps         bool
	MatchedOnly     bool
	Header          bool
	NoMatchExitCode int

	// Misc
	Quiet    bool
	Version  bool
	Examples bool
}

// sliceValue appends each value to a *[]string (for --cases)
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}

func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// Register wires the flags onto fs, taking hash and thread defaults from
// def, and returns a pointer to the "no-header" bool that AfterParse folds
// into Common.Header.
func Register(fs *flag.FlagSet, c *Common, def config.Config) *bool {
	// Inputs
	fs.StringVar(&c.Text, "text", "", "text to search")
	fs.StringVar(&c.Pattern, "pattern", "", "pattern to search for")
	fs.StringVar(&c.Text, "t", "", "alias of --text")
	fs.StringVar(&c.Pattern, "p", "", "alias of --pattern")
	casesVal := &sliceValue{dst: &c.CaseFiles}
	fs.Var(casesVal, "cases", "TSV case file(s) (repeatable) or '-'")

	// Algorithm
	fs.StringVar(&c.Algorithm, "algorithm", AlgorithmBoth, "kmp | rabin-karp | both")
	fs.StringVar(&c.Algorithm, "a", AlgorithmBoth, "alias of --algorithm")
	fs.Int64Var(&c.Base, "base", def.Base, "rolling-hash base")
	fs.Int64Var(&c.Modulus, "modulus", def.Modulus, "rolling-hash modulus")

	// Performance
	fs.IntVar(&c.Threads, "threads", def.Threads, "worker threads (0=all CPUs)")

	// Output
	fs.StringVar(&c.Output, "output", "json", "output: json | jsonl | text")
	fs.StringVar(&c.Output, "o", "json", "alias of --output")
	fs.BoolVar(&c.Pretty, "pretty", false, "ASCII replay block after each row (text)")
	fs.BoolVar(&c.NoSteps, "no-steps", false, "omit step traces (json, jsonl)")
	fs.BoolVar(&c.MatchedOnly, "matched-only", false, "emit only results with at least one match")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line (text)")
	fs.IntVar(&c.NoMatchExitCode, "no-match-exit-code", 1, "exit code when nothing matched")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "log errors only")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit")
	fs.BoolVar(&c.Version, "version", false, "print version and exit")
	fs.BoolVar(&c.Examples, "examples", false, "print usage examples and exit")

	return &noHeader
}

// AfterParse finalizes header and expands positionals, then runs validation.
func AfterParse(c *Common, noHeader *bool, posArgs []string) error {
	c.Header = !*noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		c.CaseFiles = append(c.CaseFiles, exp...)
	}
	return Validate(c)
}

// Algorithms resolves --algorithm; call after Validate.
func Algorithms(name string) ([]engine.Algorithm, error) {
	if name == AlgorithmBoth {
		return append([]engine.Algorithm(nil), engine.Algorithms...), nil
	}
	a, err := engine.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return []engine.Algorithm{a}, nil
}

// Validate applies the CLI invariants and returns the first violation.
func Validate(c *Common) error {
	usingFile := len(c.CaseFiles) > 0
	usingInline := c.Text != "" || c.Pattern != ""
	switch {
	case usingFile && usingInline:
		return errors.New("--cases conflicts with --text/--pattern")
	case usingInline && (c.Text == "" || c.Pattern == ""):
		return errors.New("--text and --pattern must be supplied together")
	case !usingFile && !usingInline:
		return errors.New("provide --cases or --text/--pattern")
	}
	if usingInline {
		if err := engine.ValidateText(c.Text, c.Pattern); err != nil {
			return err
		}
	}
	if _, err := Algorithms(c.Algorithm); err != nil {
		return fmt.Errorf("invalid --algorithm %q", c.Algorithm)
	}
	if err := engine.ValidateHashParams(c.Base, c.Modulus); err != nil {
		return fmt.Errorf("--base/--modulus: %w", err)
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	switch c.Output {
	case "text", "json", "jsonl":
	default:
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	if c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
