// Package visitors filters results between the pipeline and the writer.
package visitors

import "strtrace/internal/engine"

// PassThrough keeps every result unchanged.
type PassThrough struct{}

func (PassThrough) Visit(r engine.Result) (keep bool, out engine.Result, err error) {
	return true, r, nil
}

// MatchedOnly drops results without a single occurrence.
type MatchedOnly struct{}

func (MatchedOnly) Visit(r engine.Result) (keep bool, out engine.Result, err error) {
	return r.Summary.MatchCount > 0, r, nil
}
