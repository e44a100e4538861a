// Package search drives the parallel, cancellable walk over mismatch
// masks: SharedState tracks the cross-worker outcome flag, RunWorker
// runs one partition of one popcount level, and Driver owns the outer
// m-loop and worker fan-out.
package search

import "sync/atomic"

// Status is the shared found-flag a Driver's workers poll
// cooperatively once per candidate. There is no preemption: a worker
// only notices a Found/Error status set by a sibling the next time it
// checks, so in-flight candidates at other workers still finish their
// current Derive/Matches call before exiting.
type Status int32

const (
	StatusNotFound Status = 0
	StatusFound    Status = 1
	StatusError    Status = -1
)

// SharedState is the atomic coordination point shared read-write
// across every worker spawned for a single popcount level.
type SharedState struct {
	status        int32
	validatedKeys int64
}

// NewSharedState returns a fresh NotFound state with a zeroed counter.
func NewSharedState() *SharedState {
	return &SharedState{}
}

// Status returns the current found-flag value.
func (s *SharedState) Status() Status {
	return Status(atomic.LoadInt32(&s.status))
}

// TrySetFound transitions the flag to Found unless it is already
// Found or Error, and reports whether this call made the transition.
// Only the first worker to find a match wins; later callers are no-ops.
func (s *SharedState) TrySetFound() bool {
	return atomic.CompareAndSwapInt32(&s.status, int32(StatusNotFound), int32(StatusFound))
}

// SetError transitions the flag to Error unless a match was already
// found, which always takes priority over a later error.
func (s *SharedState) SetError() {
	atomic.CompareAndSwapInt32(&s.status, int32(StatusNotFound), int32(StatusError))
}

// AddKeys adds n to the validated-candidate counter.
func (s *SharedState) AddKeys(n int64) {
	atomic.AddInt64(&s.validatedKeys, n)
}

// ValidatedKeys returns the total number of candidates every worker
// has derived and compared so far.
func (s *SharedState) ValidatedKeys() int64 {
	return atomic.LoadInt64(&s.validatedKeys)
}
