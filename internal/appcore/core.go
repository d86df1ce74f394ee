// Package appcore runs a validated batch: pipeline, visitor, writer, exit code.
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"strtrace/internal/cases"
	"strtrace/internal/cmdutil"
	"strtrace/internal/engine"
	"strtrace/internal/pipeline"
	"strtrace/internal/writers"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitOutput    = 3
	ExitCancelled = 130
)

type Options struct {
	Algorithms []engine.Algorithm
	Threads    int

	NoMatchExitCode int
}

// VisitorFunc decides whether a result reaches the writer.
type VisitorFunc func(engine.Result) (keep bool, out engine.Result, err error)

func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	log *slog.Logger,
	o Options,
	list []cases.Case,
	visit VisitorFunc,
	wf ResultWriterFactory,
) int {
	outw := bufio.NewWriter(stdout)

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	start := time.Now()
	log.Debug("run started", "cases", len(list), "algorithms", len(o.Algorithms), "threads", thr, "format", wf.Format)

	total, perr := cmdutil.RunStream(
		ctx,
		pipeline.Config{Threads: thr, Algorithms: o.Algorithms},
		list,
		visit,
		func(r engine.Result) error {
			select {
			case inCh <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; werr != nil {
		fmt.Fprintln(stderr, werr)
		return ExitOutput
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return ExitOutput
	}

	if perr != nil {
		switch {
		case errors.Is(perr, context.Canceled):
			log.Warn("run cancelled", "results", total.Results)
			return ExitCancelled
		case errors.Is(perr, engine.ErrInvalidInput):
			fmt.Fprintln(stderr, perr)
			return ExitUsage
		}
		fmt.Fprintln(stderr, perr)
		return ExitOutput
	}

	log.Info("run finished", "results", total.Results, "matches", total.Matches, "elapsed", time.Since(start))
	if total.Matches == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}
