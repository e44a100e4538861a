package cliconfig

import (
	"crypto/rand"

	"github.com/google/uuid"

	"rbcvalidator/internal/rbcerr"
	"rbcvalidator/pkg/seed"
	"rbcvalidator/pkg/validator"
)

// fillRandom self-generates a host seed, corrupts it at exactly
// MismatchesK random bit positions to produce the "real" seed, derives
// the target artifact from the real seed under algo, and discards the
// real seed - the --random/--benchmark self-test mode, which exercises
// the same search the CLI runs against externally supplied targets
// without requiring the caller to pre-compute one.
func fillRandom(cfg *Config, algo validator.Algo) error {
	var host seed.Bits256
	if _, err := rand.Read(host[:]); err != nil {
		return rbcerr.Resource("failed to generate random host seed")
	}
	cfg.HostSeed = host

	positions, err := randomPositions(cfg.Subkey, cfg.MismatchesK)
	if err != nil {
		return err
	}
	real := host.Xor(seed.MaskFromPositions(positions))

	if algo.Mode == validator.ModeCipher {
		var u [16]byte
		if _, err := rand.Read(u[:]); err != nil {
			return rbcerr.Resource("failed to generate random UUID plaintext")
		}
		id, err := uuid.FromBytes(u[:])
		if err != nil {
			return rbcerr.Argumentf("invalid generated UUID: %v", err)
		}
		cfg.UUID = id
		if algo.Abbr == "chacha20" {
			iv := make([]byte, 16)
			if _, err := rand.Read(iv); err != nil {
				return rbcerr.Resource("failed to generate random IV")
			}
			cfg.IV = iv
		}
	}

	v, err := validator.New(validator.Config{
		Algo:       algo,
		UUID:       cfg.UUID,
		IV:         cfg.IV,
		DigestSize: cfg.SubkeySize,
	})
	if err != nil {
		return err
	}
	defer v.Close()

	target, err := v.Derive(real)
	if err != nil {
		return rbcerr.Cryptof("failed to derive target from generated seed: %v", err)
	}
	cfg.Target = target
	return nil
}

// randomPositions draws k distinct bit positions in [0, n) uniformly
// via rejection sampling against crypto/rand.
func randomPositions(n, k int) ([]int, error) {
	if k > n {
		return nil, rbcerr.Argumentf("mismatches %d exceeds %d bits", k, n)
	}
	seen := make(map[int]bool, k)
	out := make([]int, 0, k)
	for len(out) < k {
		idx, err := randomInt(n)
		if err != nil {
			return nil, err
		}
		if seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, idx)
	}
	return out, nil
}

func randomInt(n int) (int, error) {
	var buf [4]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return 0, rbcerr.Resource("failed to read random bytes")
		}
		v := int(buf[0])<<24 | int(buf[1])<<16 | int(buf[2])<<8 | int(buf[3])
		if v < 0 {
			v = -v
		}
		// Reject values in the final partial bucket to keep the
		// distribution uniform over [0, n).
		limit := (1 << 31) - (1<<31)%n
		if v < limit {
			return v % n, nil
		}
	}
}
