// Package session defines the state scoped to a single transformation run.
// A Run is created by the engine when the run starts and handed explicitly
// to every component that reads or contributes to it.
package session

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Run is the state shared by all passes of one run.
type Run struct {
	// ID identifies the run in logs.
	ID string
	// Flag records whether the target dependency was found.
	Flag *FeatureFlag

	pass  atomic.Int32
	edits atomic.Int64
}

// New starts a run with a fresh id and an unset flag.
func New() *Run {
	return &Run{
		ID:   uuid.NewString(),
		Flag: &FeatureFlag{},
	}
}

// BeginPass advances the pass number, resets the edit counter and returns
// the new pass number (starting at 1).
func (r *Run) BeginPass() int {
	r.edits.Store(0)
	return int(r.pass.Add(1))
}

// Pass returns the current pass number, or 0 before the first pass.
func (r *Run) Pass() int {
	return int(r.pass.Load())
}

// RecordEdits adds n to the current pass's edit counter.
func (r *Run) RecordEdits(n int) {
	r.edits.Add(int64(n))
}

// Edits returns the number of edits recorded in the current pass.
func (r *Run) Edits() int {
	return int(r.edits.Load())
}
