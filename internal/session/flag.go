package session

import "sync/atomic"

// FeatureFlag is a boolean that can only go from false to true. It is safe
// for concurrent use.
type FeatureFlag struct {
	v atomic.Bool
}

// Set turns the flag on. It reports whether this call was the one that
// changed it.
func (f *FeatureFlag) Set() bool {
	return f.v.CompareAndSwap(false, true)
}

// Enabled reports whether the flag is on.
func (f *FeatureFlag) Enabled() bool {
	return f.v.Load()
}
