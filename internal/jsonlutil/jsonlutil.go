// Package jsonlutil streams values as JSON Lines through a pooled buffer.
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Reuse a 64 KiB buffered writer across JSONL streams to avoid per-stream mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Stream encodes every value from in as one line on out until in is closed.
//   - encode: fn to encode one value (convert to wire type & enc.Encode)
//   - isBroken: recognizer for broken/closed pipe errors to suppress them
//
// After the first error the rest of in is drained and discarded, so the
// producer never blocks on a dead consumer. Errors isBroken recognizes are
// reported as nil.
func Stream[T any](out io.Writer, in <-chan T, encode func(*json.Encoder, T) error, isBroken func(error) bool) error {
	bw := bwPool.Get().(*bufio.Writer)
	// Rebind to the actual output while keeping the pooled buffer.
	bw.Reset(out)
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := json.NewEncoder(bw)

	var err error
	for v := range in {
		if err != nil {
			continue
		}
		err = encode(enc, v)
	}
	if err == nil {
		err = bw.Flush()
	}
	if err != nil && isBroken != nil && isBroken(err) {
		return nil
	}
	return err
}
