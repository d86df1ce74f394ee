package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"strtrace/internal/cases"
	"strtrace/internal/engine"
)

func sampleCases() []cases.Case {
	texts := []struct{ text, pattern string }{
		{"ABABDABACDABABCABAB", "ABABCABAB"},
		{"AABAACAADAABAABA", "AABA"},
		{"GEEKSFORGEEKS", "GEEK"},
		{"ABCCDDAEFG", "CDD"},
		{"JUAB", "AB"},
	}
	var out []cases.Case
	for i, tp := range texts {
		out = append(out, cases.Case{
			ID: fmt.Sprintf("c%d", i), Text: tp.text, Pattern: tp.pattern,
			Base: engine.DefaultBase, Modulus: engine.DefaultModulus,
		})
	}
	return out
}

func collect(t *testing.T, cfg Config, list []cases.Case) []engine.Result {
	t.Helper()
	var got []engine.Result
	err := ForEachResult(context.Background(), cfg, list, func(r engine.Result) error {
		got = append(got, r)
		return nil
	})
	if err != nil {
		t.Fatalf("pipeline err: %v", err)
	}
	return got
}

func TestForEachResult_ParallelEqualsSerial(t *testing.T) {
	list := sampleCases()
	serial := collect(t, Config{Threads: 1, Algorithms: engine.Algorithms}, list)
	parallel := collect(t, Config{Threads: 8, Algorithms: engine.Algorithms}, list)
	if len(serial) != len(list)*2 {
		t.Fatalf("want %d results, got %d", len(list)*2, len(serial))
	}
	if diff := cmp.Diff(serial, parallel); diff != "" {
		t.Fatalf("parallel output differs (-serial +parallel):\n%s", diff)
	}
	for i, r := range serial {
		if r.ID != list[i/2].ID || r.Algorithm != engine.Algorithms[i%2] {
			t.Fatalf("result %d is %s/%s", i, r.ID, r.Algorithm)
		}
	}
}

// Later jobs finish first; output order must not change.
func TestForEachResult_ReordersSlowRuns(t *testing.T) {
	list := sampleCases()
	slow := func(a engine.Algorithm, text, pattern string, base, modulus int64) (engine.Result, error) {
		time.Sleep(time.Duration(len(text)) * time.Millisecond)
		return engine.Run(a, text, pattern, base, modulus)
	}
	got := collect(t, Config{Threads: 4, Algorithms: []engine.Algorithm{engine.ExactMatch}, Run: slow}, list)
	for i, r := range got {
		if r.ID != list[i].ID {
			t.Fatalf("position %d holds %s", i, r.ID)
		}
	}
}

func TestForEachResult_VisitErrorStops(t *testing.T) {
	errStop := errors.New("stop")
	n := 0
	err := ForEachResult(context.Background(), Config{Threads: 2, Algorithms: engine.Algorithms}, sampleCases(),
		func(engine.Result) error {
			n++
			return errStop
		})
	if !errors.Is(err, errStop) {
		t.Fatalf("err = %v", err)
	}
	if n != 1 {
		t.Fatalf("visit called %d times after error", n)
	}
}

func TestForEachResult_RunErrorPropagates(t *testing.T) {
	bad := cases.Case{ID: "bad", Text: "AB", Pattern: "ABC", Base: 256, Modulus: 101}
	err := ForEachResult(context.Background(), Config{Threads: 2, Algorithms: engine.Algorithms},
		append(sampleCases(), bad), func(engine.Result) error { return nil })
	if !errors.Is(err, engine.ErrInvalidInput) {
		t.Fatalf("err = %v", err)
	}
}

func TestForEachResult_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ForEachResult(ctx, Config{Threads: 1, Algorithms: engine.Algorithms}, sampleCases(),
		func(engine.Result) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}

func TestForEachResult_Empty(t *testing.T) {
	if got := collect(t, Config{Algorithms: engine.Algorithms}, nil); len(got) != 0 {
		t.Fatalf("got %d results", len(got))
	}
}

func TestForEachResult_SpanPerRun(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	list := sampleCases()[:2]
	collect(t, Config{Threads: 2, Algorithms: engine.Algorithms}, list)

	spans := sr.Ended()
	if len(spans) != 4 {
		t.Fatalf("want 4 spans, got %d", len(spans))
	}
	for _, s := range spans {
		if s.Name() != "strtrace.run" {
			t.Fatalf("span name %q", s.Name())
		}
		attrs := map[attribute.Key]attribute.Value{}
		for _, kv := range s.Attributes() {
			attrs[kv.Key] = kv.Value
		}
		if _, ok := attrs["matches"]; !ok {
			t.Fatalf("span lacks matches attribute: %v", s.Attributes())
		}
		if a := attrs["algorithm"].AsString(); a != "kmp" && a != "rabin-karp" {
			t.Fatalf("algorithm attribute %q", a)
		}
	}
}
