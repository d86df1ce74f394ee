// Package trace holds the step records emitted by the scanners in engine.
//
// A trace is an append-only, totally ordered sequence of Steps. Each Step is
// self-contained: it carries copies of every working value it mentions, so a
// consumer can replay a trace without access to the final result.
//
// The set of Step implementations is closed; only this package can add one.
package trace

import "fmt"

// Kind is the wire tag of a step.
type Kind string

const (
	KindInit         Kind = "init"
	KindMatch        Kind = "match"
	KindFallback     Kind = "fallback"
	KindZero         Kind = "zero"
	KindShift        Kind = "shift"
	KindAdvance      Kind = "advance"
	KindFound        Kind = "pattern_found"
	KindHashStep     Kind = "hash_step"
	KindHashMatch    Kind = "hash_match"
	KindHashMismatch Kind = "hash_mismatch"
	KindSpuriousHit  Kind = "spurious_hit"
	KindRollingHash  Kind = "rolling_hash"
	KindComplete     Kind = "complete"
)

// Step is one atomic algorithm event.
type Step interface {
	Kind() Kind
	Describe() string
	sealed()
}

// Note is the human-readable explanation shared by every step.
type Note struct {
	Explanation string
}

func (n Note) Describe() string { return n.Explanation }

// Notef builds a Note with fmt.Sprintf semantics.
func Notef(format string, a ...any) Note {
	return Note{Explanation: fmt.Sprintf(format, a...)}
}

// Log collects steps in emission order.
type Log struct {
	steps []Step
}

// Add appends s. Steps are never reordered or removed.
func (l *Log) Add(s Step) { l.steps = append(l.steps, s) }

// Steps returns the recorded sequence. The caller owns the returned slice.
func (l *Log) Steps() []Step {
	out := make([]Step, len(l.steps))
	copy(out, l.steps)
	return out
}

// Snapshot copies v so a step never aliases a slice that keeps changing.
func Snapshot(v []int) []int {
	if v == nil {
		return nil
	}
	out := make([]int, len(v))
	copy(out, v)
	return out
}
