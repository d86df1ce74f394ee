package writers

import (
	"encoding/json"
	"io"

	"strtrace/internal/engine"
	"strtrace/internal/jsonlutil"
	"strtrace/internal/output"
	"strtrace/internal/pretty"
)

func init() {
	RegisterResult(output.FormatJSON, writeJSON)
	RegisterResult(output.FormatJSONL, writeJSONL)
	RegisterResult(output.FormatText, writeText)
}

// StartResultWriter spins up a writer goroutine for engine.Result items.
// The error channel yields exactly one value once in is closed and drained.
func StartResultWriter(out io.Writer, format string, cfg Config, bufSize int) (chan<- engine.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Result, bufSize)
	errCh := make(chan error, 1)

	go func() {
		errCh <- WriteResults(format, out, in, cfg)
	}()

	return in, errCh
}

// json needs the whole run to produce one array, so it buffers.
func writeJSON(w io.Writer, in <-chan engine.Result, cfg Config) error {
	var buf []engine.Result
	for r := range in {
		buf = append(buf, r)
	}
	return suppressBroken(output.WriteJSON(w, buf, cfg.Output))
}

// writeJSONL streams each result as one JSON line (v1).
func writeJSONL(w io.Writer, in <-chan engine.Result, cfg Config) error {
	return jsonlutil.Stream(w, in,
		func(enc *json.Encoder, r engine.Result) error {
			return enc.Encode(output.ToAPIResult(r, cfg.Output))
		},
		IsBrokenPipe,
	)
}

func writeText(w io.Writer, in <-chan engine.Result, cfg Config) error {
	popt := cfg.PrettyOptions
	return suppressBroken(output.StreamText(w, in, cfg.Header, cfg.Pretty,
		func(r engine.Result) string { return pretty.RenderResultWithOptions(r, popt) },
	))
}

func suppressBroken(err error) error {
	if IsBrokenPipe(err) {
		return nil
	}
	return err
}
