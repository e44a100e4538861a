package validator

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"hash"

	"golang.org/x/crypto/sha3"

	"rbcvalidator/internal/rbcerr"
	"rbcvalidator/pkg/seed"
)

// hashValidator computes a fixed-length digest of an optional salt
// prefix followed by the candidate seed, mirroring the teacher's
// CanonicalSHA256 adapter but generalized across the whole md5/sha1/
// sha2/sha3 family instead of being hand-pinned to SHA-256.
type hashValidator struct {
	newHash func() hash.Hash
	target  []byte
	salt    []byte
}

func newHashValidator(cfg Config) (Validator, error) {
	factory, err := hashFactory(cfg.Algo.Abbr)
	if err != nil {
		return nil, err
	}
	return &hashValidator{
		newHash: factory,
		target:  cfg.Target,
		salt:    cfg.Salt,
	}, nil
}

func hashFactory(abbr string) (func() hash.Hash, error) {
	switch abbr {
	case "md5":
		return md5.New, nil
	case "sha1":
		return sha1.New, nil
	case "sha224":
		return sha256.New224, nil
	case "sha256":
		return sha256.New, nil
	case "sha384":
		return sha512.New384, nil
	case "sha512":
		return sha512.New, nil
	case "sha3-224":
		return sha3.New224, nil
	case "sha3-256":
		return sha3.New256, nil
	case "sha3-384":
		return sha3.New384, nil
	case "sha3-512":
		return sha3.New512, nil
	default:
		return nil, rbcerr.Argumentf("hash validator does not support %q", abbr)
	}
}

func (v *hashValidator) Derive(candidate seed.Bits256) ([]byte, error) {
	h := v.newHash()
	if len(v.salt) > 0 {
		h.Write(v.salt)
	}
	h.Write(candidate.Bytes())
	return h.Sum(nil), nil
}

func (v *hashValidator) Matches(artifact []byte) bool {
	return len(artifact) == len(v.target) && subtle.ConstantTimeCompare(artifact, v.target) == 1
}

func (v *hashValidator) Close() error { return nil }
