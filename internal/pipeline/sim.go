package pipeline

import "strtrace/internal/engine"

// Runner is the minimal capability the pipeline needs.
// engine.Run satisfies it; tests substitute fakes.
type Runner func(a engine.Algorithm, text, pattern string, base, modulus int64) (engine.Result, error)

var _ Runner = engine.Run
