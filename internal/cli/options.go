// Package cli parses the strtrace command line into Options.
package cli

import (
	"flag"

	"strtrace/internal/clibase"
	"strtrace/internal/cliutil"
	"strtrace/internal/config"
	"strtrace/internal/engine"
)

// Options holds all CLI flags and arguments.
type Options struct {
	clibase.Common

	// Algorithms is --algorithm resolved, in run order.
	Algorithms []engine.Algorithm
}

// ParseArgs registers and parses all flags, returns an Options struct.
// def supplies the environment-derived defaults. flag.ErrHelp and
// clibase.ErrPrintedAndExitOK are returned for -h and --examples.
func ParseArgs(fs *flag.FlagSet, argv []string, def config.Config) (Options, error) {
	var opt Options
	noHeader := clibase.Register(fs, &opt.Common, def)

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if opt.Version {
		return opt, nil
	}
	if opt.Examples {
		return opt, clibase.ErrPrintedAndExitOK
	}
	posArgs = append(posArgs, fs.Args()...)

	if err := clibase.AfterParse(&opt.Common, noHeader, posArgs); err != nil {
		return opt, err
	}
	algos, err := clibase.Algorithms(opt.Algorithm)
	if err != nil {
		return opt, err
	}
	opt.Algorithms = algos
	return opt, nil
}
