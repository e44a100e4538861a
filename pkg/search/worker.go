package search

import (
	"rbcvalidator/internal/rbcerr"
	"rbcvalidator/pkg/seed"
	"rbcvalidator/pkg/seed/perm"
	"rbcvalidator/pkg/validator"
)

// checkInterval is how many candidates a worker validates between
// found-flag polls. At 1 the flag is read before every candidate, so
// after a sibling sets Found or Error a worker finishes at most the
// Derive/Matches call already in flight.
const checkInterval = 1

// Result is what RunWorker reports back to the driver.
type Result struct {
	Found     bool
	Candidate seed.Bits256
	Err       error
}

// RunWorker validates every candidate in one (popcount m, colex range)
// partition against v, XORing each mismatch mask from it against host.
// It polls state every checkInterval candidates and returns as soon as
// a sibling worker has set Found or Error, or once its own Derive call
// fails, or once its range is exhausted.
func RunWorker(host seed.Bits256, it *perm.Iterator, v validator.Validator, state *SharedState) Result {
	var validated int64
	for !it.Ended() {
		if validated%checkInterval == 0 && state.Status() != StatusNotFound {
			state.AddKeys(validated)
			return Result{}
		}

		mask := it.Current()
		candidate := host.Xor(mask)

		artifact, err := v.Derive(candidate)
		if err != nil {
			state.AddKeys(validated)
			state.SetError()
			return Result{Err: rbcerr.Cryptof("worker: derive failed: %v", err)}
		}
		validated++

		if v.Matches(artifact) {
			if state.TrySetFound() {
				state.AddKeys(validated)
				return Result{Found: true, Candidate: candidate}
			}
			state.AddKeys(validated)
			return Result{}
		}

		it.Next()
	}

	state.AddKeys(validated)
	return Result{}
}
