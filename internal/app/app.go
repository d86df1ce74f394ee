// Package app is the strtrace command: flags and env in, results out.
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"

	"strtrace/internal/appcore"
	"strtrace/internal/cases"
	"strtrace/internal/cli"
	"strtrace/internal/clibase"
	"strtrace/internal/cliutil"
	"strtrace/internal/config"
	"strtrace/internal/logging"
	"strtrace/internal/telemetry"
	"strtrace/internal/version"
	"strtrace/internal/visitors"
	"strtrace/internal/writers"
)

const name = "strtrace"

// flushed maps the final flush of a usage/version screen to an exit code.
func flushed(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return appcore.ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitOutput
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushed(outw, stderr, appcore.ExitOK)
	}

	opts, err := cli.ParseArgs(fs, argv, cfg)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flushed(outw, stderr, appcore.ExitOK)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			cli.PrintExamples(outw, name)
			return flushed(outw, stderr, appcore.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushed(outw, stderr, appcore.ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flushed(outw, stderr, appcore.ExitOK)
	}

	level := cfg.LogLevel
	if opts.Quiet {
		level = "error"
	}
	log := logging.New(level, cfg.LogFormat, stderr)

	shutdown, err := telemetry.Setup(parent, name, cfg.OTelEndpoint, cfg.OTelEnabled)
	if err != nil {
		log.Warn("tracing disabled", "err", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			log.Warn("trace flush failed", "err", err)
		}
	}()

	list, err := loadCases(opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}
	log.Debug("cases loaded", "count", len(list), "files", len(opts.CaseFiles))

	var visit appcore.VisitorFunc = visitors.PassThrough{}.Visit
	if opts.MatchedOnly {
		visit = visitors.MatchedOnly{}.Visit
	}

	coreOpts := appcore.Options{
		Algorithms:      opts.Algorithms,
		Threads:         opts.Threads,
		NoMatchExitCode: opts.NoMatchExitCode,
	}
	writer := appcore.NewResultWriterFactory(opts.Output, opts.Header, opts.Pretty, !opts.NoSteps)
	return appcore.Run(parent, stdout, stderr, log, coreOpts, list, visit, writer)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// loadCases builds the inline case or reads every case file, reporting all
// bad files and lines together. IDs must be unique across files.
func loadCases(opts cli.Options) ([]cases.Case, error) {
	if len(opts.CaseFiles) == 0 {
		return []cases.Case{{
			Text: opts.Text, Pattern: opts.Pattern,
			Base: opts.Base, Modulus: opts.Modulus,
		}}, nil
	}

	var (
		list []cases.Case
		errs *multierror.Error
		seen = map[string]string{}
	)
	for _, path := range opts.CaseFiles {
		var (
			cs  []cases.Case
			err error
		)
		if path == cliutil.Stdin {
			cs, err = cases.Parse(os.Stdin, "<stdin>", opts.Base, opts.Modulus)
		} else {
			cs, err = cases.LoadTSV(path, opts.Base, opts.Modulus)
		}
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		for _, c := range cs {
			if prev, dup := seen[c.ID]; dup {
				errs = multierror.Append(errs, fmt.Errorf("%s: duplicate id %q (also in %s)", path, c.ID, prev))
				continue
			}
			seen[c.ID] = path
			list = append(list, c)
		}
	}
	return list, errs.ErrorOrNil()
}
