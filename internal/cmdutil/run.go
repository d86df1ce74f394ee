// Package cmdutil glues the pipeline, a visitor and a writer channel.
package cmdutil

import (
	"context"

	"strtrace/internal/cases"
	"strtrace/internal/engine"
	"strtrace/internal/pipeline"
)

// Totals counts what RunStream saw.
type Totals struct {
	Results int // results kept by the visitor and sent
	Matches int // occurrences across the kept results
}

// RunStream runs the shared pipeline, applies a visitor, and streams results via send.
// It returns the totals of kept outputs and the first error encountered.
func RunStream(
	ctx context.Context,
	cfg pipeline.Config,
	list []cases.Case,
	visit func(engine.Result) (bool, engine.Result, error),
	send func(engine.Result) error,
) (Totals, error) {
	var t Totals
	err := pipeline.ForEachResult(ctx, cfg, list, func(r engine.Result) error {
		keep, out, vErr := visit(r)
		if vErr != nil {
			return vErr
		}
		if !keep {
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		t.Results++
		t.Matches += out.Summary.MatchCount
		return nil
	})
	return t, err
}
