package pipeline

import (
	"context"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"strtrace/internal/cases"
	"strtrace/internal/engine"
)

// TracerName names the tracer used for per-run spans.
const TracerName = "strtrace/pipeline"

// Config controls the run pipeline.
type Config struct {
	Threads    int                // worker goroutines; 0 means runtime.NumCPU()
	Algorithms []engine.Algorithm // run per case, in this order
	Run        Runner             // nil means engine.Run
}

type job struct {
	seq  int
	c    cases.Case
	algo engine.Algorithm
}

type done struct {
	seq int
	r   engine.Result
}

// ForEachResult runs every case with every configured algorithm and calls
// visit once per result, ordered by case then algorithm regardless of the
// thread count. It returns the first error encountered (a visit error, a run
// error, or context cancellation).
func ForEachResult(
	ctx context.Context,
	cfg Config,
	list []cases.Case,
	visit func(engine.Result) error,
) error {
	run := cfg.Run
	if run == nil {
		run = engine.Run
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	total := len(list) * len(cfg.Algorithms)
	if total == 0 {
		return nil
	}
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if threads > total {
		threads = total
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	jobs := make(chan job, threads*2)
	results := make(chan done, threads*2)
	tracer := otel.Tracer(TracerName)

	// Feed work
	g.Go(func() error {
		defer close(jobs)
		seq := 0
		for _, c := range list {
			for _, a := range cfg.Algorithms {
				if err := gctx.Err(); err != nil {
					return err
				}
				select {
				case <-gctx.Done():
					return gctx.Err()
				case jobs <- job{seq: seq, c: c, algo: a}:
				}
				seq++
			}
		}
		return nil
	})

	// Workers
	for w := 0; w < threads; w++ {
		g.Go(func() error {
			for j := range jobs {
				r, err := runOne(gctx, tracer, run, j)
				if err != nil {
					return err
				}
				select {
				case results <- done{seq: j.seq, r: r}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	var gerr error
	go func() {
		gerr = g.Wait()
		close(results)
	}()

	// Collector: re-sequence and visit.
	var (
		verr    error
		next    int
		pending = make(map[int]engine.Result, threads*2)
	)
	for d := range results {
		if verr != nil {
			continue
		}
		pending[d.seq] = d.r
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err := visit(r); err != nil {
				verr = err
				cancel()
				break
			}
		}
	}

	if verr != nil {
		return verr
	}
	return gerr
}

func runOne(ctx context.Context, tracer trace.Tracer, run Runner, j job) (engine.Result, error) {
	_, span := tracer.Start(ctx, "strtrace.run", trace.WithAttributes(
		attribute.String("case.id", j.c.ID),
		attribute.String("algorithm", string(j.algo)),
		attribute.Int("text.length", len(j.c.Text)),
		attribute.Int("pattern.length", len(j.c.Pattern)),
	))
	defer span.End()

	r, err := run(j.algo, j.c.Text, j.c.Pattern, j.c.Base, j.c.Modulus)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return engine.Result{}, err
	}
	r.ID = j.c.ID
	span.SetAttributes(
		attribute.Int("matches", r.Summary.MatchCount),
		attribute.Int("steps", r.Summary.PreprocessSteps+r.Summary.MatchingSteps),
	)
	return r, nil
}
