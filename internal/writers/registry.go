package writers

import (
	"fmt"
	"io"
	"sort"

	"strtrace/internal/engine"
	"strtrace/internal/output"
	"strtrace/internal/pretty"
)

// Config carries the presentation switches shared by all result writers.
type Config struct {
	Header        bool // TSV header row (text)
	Pretty        bool // ASCII replay block after each row (text)
	PrettyOptions pretty.Options
	Output        output.Options // step inclusion (json, jsonl)
}

// ResultWriterFunc consumes results from in until it is closed.
type ResultWriterFunc func(w io.Writer, in <-chan engine.Result, cfg Config) error

// ResultWriters maps an output format to its writer. Register in init()
// blocks next to each writer.
var ResultWriters = map[string]ResultWriterFunc{}

// RegisterResult adds or replaces (last wins) the writer for format.
func RegisterResult(format string, fn ResultWriterFunc) { ResultWriters[format] = fn }

// Formats lists the registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(ResultWriters))
	for f := range ResultWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// WriteResults dispatches to the writer registered for format. An unknown
// format still drains in.
func WriteResults(format string, w io.Writer, in <-chan engine.Result, cfg Config) error {
	fn, ok := ResultWriters[format]
	if !ok {
		for range in {
		}
		return fmt.Errorf("unknown result format %q (no writer registered)", format)
	}
	return fn(w, in, cfg)
}
