// Package pipeline fans (case, algorithm) runs out to a worker pool, wraps
// each run in a tracing span, and hands results to a visit callback in
// input order.
//
// The only contract to implement is Runner (engine.Run satisfies it).
// This keeps the pipeline swappable and testable.
package pipeline
