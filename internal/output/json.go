package output

import (
	"io"

	"strtrace/internal/engine"
	"strtrace/internal/jsonutil"
)

// WriteJSON writes a single JSON array of v1 results (pretty-indented).
func WriteJSON(w io.Writer, list []engine.Result, opt Options) error {
	return jsonutil.EncodePretty(w, toAPIResults(list, opt))
}
