// Package engine contains the instrumented string-matching core: the
// failure-table builder and exact-match scanner, the polynomial hasher and
// rolling-hash scanner, and the result assembler on top of them.
//
// It never imports app, writers, cli, pipeline or output; keep it domain-only.
// Every exported function is pure: same input, same Result, no shared state.
//
// External outputs must not depend on the internal shape here; use pkg/api
// for stable wire types (JSON/JSONL v1).
package engine
