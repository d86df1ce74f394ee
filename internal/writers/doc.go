// Package writers turns engine results into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (pretty blocks, JSON/JSONL/TSV).
//   - Engine stays domain-only; Pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
//   - Every writer drains its input channel, even after an error.
package writers
