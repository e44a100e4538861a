package validator

import "rbcvalidator/internal/rbcerr"

// Config carries the per-run auxiliary inputs a validator's Create
// needs beyond the candidate seed: the target artifact to match
// against, and whichever of IV/UUID/salt/digest length the chosen
// algorithm requires. One Config is shared read-only across workers;
// each worker calls New to build its own Validator instance from it.
type Config struct {
	Algo   Algo
	Target []byte

	UUID [16]byte // cipher modes: fixed plaintext block
	IV   []byte   // cipher modes requiring one (chacha20)

	Salt []byte // hash/XOF modes: optional prefix

	DigestSize int // XOF modes: caller-chosen output length
}

// New constructs a fresh Validator for the given Config. Called once
// per worker so that each worker owns private state (cipher context,
// EC scratch space, digest buffer).
func New(cfg Config) (Validator, error) {
	switch cfg.Algo.Mode {
	case ModeCipher:
		return newCipherValidator(cfg)
	case ModeEC:
		return newECValidator(cfg)
	case ModeHash:
		if cfg.Algo.XOF {
			return newXOFValidator(cfg)
		}
		return newHashValidator(cfg)
	default:
		return nil, rbcerr.Argumentf("unsupported mode for algorithm %q", cfg.Algo.Abbr)
	}
}
