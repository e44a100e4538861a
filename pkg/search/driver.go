package search

import (
	"math/big"
	"sync"

	"rbcvalidator/internal/rbcerr"
	"rbcvalidator/pkg/seed"
	"rbcvalidator/pkg/seed/perm"
	"rbcvalidator/pkg/validator"
)

// Config is everything Driver.Run needs to search the Hamming ball
// [MinDist, MaxDist] around Host for a candidate whose validator
// output matches the target baked into ValidatorConfig.
type Config struct {
	Host seed.Bits256

	// N is the subseed length: only the first N bits (1..256) are ever
	// corrupted/iterated over, the rest of Host passes through
	// unchanged. Corresponds to spec's subseed_length / --subkey.
	N       int
	MinDist int
	MaxDist int
	Workers int

	// ValidatorConfig is cloned into one Validator instance per
	// worker via validator.New, so each worker owns private state.
	ValidatorConfig validator.Config

	// All keeps Run going through every popcount level in
	// [MinDist, MaxDist] after a match instead of returning at the
	// first matching level; set by --all and implied by --benchmark.
	// Within one level the workers still stop at the first match, and
	// Outcome holds only the last match found, not every match.
	All bool

	// OnLevelStart, if set, is called with each popcount level before
	// its workers are spawned, letting the CLI print a progress banner
	// without Driver depending on any output format.
	OnLevelStart func(m int)
}

// Outcome is the aggregate result of a full Driver.Run call.
type Outcome struct {
	Found         bool
	Candidate     seed.Bits256
	ValidatedKeys int64
	Err           error
}

// Driver owns one search run: it iterates popcount levels m from
// MinDist to MaxDist, and for each level partitions C(N, m) masks
// across Workers goroutines, one per non-empty partition, all started
// at once (no semaphore), and drains their results from a shared
// channel the way the teacher's DiscoverServers does.
type Driver struct {
	cfg Config
}

// NewDriver validates cfg and returns a ready Driver.
func NewDriver(cfg Config) (*Driver, error) {
	if cfg.Workers <= 0 {
		return nil, rbcerr.Argumentf("worker count %d must be positive", cfg.Workers)
	}
	if cfg.N < 1 || cfg.N > seed.Size*8 {
		return nil, rbcerr.Argumentf("subseed length %d must be in [1,%d]", cfg.N, seed.Size*8)
	}
	if cfg.MinDist < 0 || cfg.MinDist > cfg.MaxDist || cfg.MaxDist > cfg.N {
		return nil, rbcerr.Argumentf("mismatch range [%d,%d] invalid for subseed length %d", cfg.MinDist, cfg.MaxDist, cfg.N)
	}
	return &Driver{cfg: cfg}, nil
}

// Run walks every popcount level in order, returning as soon as a
// level yields a match unless All is set, in which case it exhausts
// every level and reports the last match found along with the total
// validated-candidate count across the whole run.
func (d *Driver) Run() Outcome {
	var out Outcome
	for m := d.cfg.MinDist; m <= d.cfg.MaxDist; m++ {
		if d.cfg.OnLevelStart != nil {
			d.cfg.OnLevelStart(m)
		}
		levelOut := d.runLevel(m)
		out.ValidatedKeys += levelOut.ValidatedKeys
		if levelOut.Err != nil {
			out.Err = levelOut.Err
			return out
		}
		if levelOut.Found {
			out.Found = true
			out.Candidate = levelOut.Candidate
			if !d.cfg.All {
				return out
			}
		}
	}
	return out
}

// runLevel partitions C(n, m) masks across Workers goroutines and
// returns once every partition has finished or the shared state has
// been set to Found/Error.
func (d *Driver) runLevel(m int) Outcome {
	n := d.cfg.N
	total := perm.Binomial(n, m)
	if total.Sign() == 0 {
		return Outcome{}
	}

	state := NewSharedState()
	w := d.cfg.Workers
	if wBig := big.NewInt(int64(w)); wBig.Cmp(total) > 0 {
		// Never spawn more workers than there are candidates; Partition
		// already returns empty ranges for the excess, but skipping
		// them here avoids allocating validators that will do nothing.
		if total.IsInt64() {
			w = int(total.Int64())
		}
	}

	results := make(chan Result, w)
	var wg sync.WaitGroup

	for r := 0; r < w; r++ {
		rng, err := perm.Partition(r, w, m, n)
		if err != nil {
			return Outcome{Err: err}
		}
		if rng.Empty() {
			continue
		}

		wg.Add(1)
		go func(rng perm.Range) {
			defer wg.Done()

			it, err := perm.New(n, m, rng.First, rng.Last)
			if err != nil {
				state.SetError()
				results <- Result{Err: err}
				return
			}
			v, err := validator.New(d.cfg.ValidatorConfig)
			if err != nil {
				state.SetError()
				results <- Result{Err: err}
				return
			}
			defer v.Close()

			results <- RunWorker(d.cfg.Host, it, v, state)
		}(rng)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var out Outcome
	for res := range results {
		if res.Err != nil && out.Err == nil {
			out.Err = res.Err
		}
		if res.Found {
			out.Found = true
			out.Candidate = res.Candidate
		}
	}
	out.ValidatedKeys = state.ValidatedKeys()
	return out
}
