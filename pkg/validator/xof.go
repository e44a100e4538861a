package validator

import (
	"crypto/subtle"

	"golang.org/x/crypto/sha3"

	"rbcvalidator/internal/kangaroo12"
	"rbcvalidator/internal/rbcerr"
	"rbcvalidator/pkg/seed"
)

// xofValidator derives a caller-chosen-length digest via an
// extendable-output function, the variable-length counterpart of
// hashValidator.
type xofValidator struct {
	abbr       string
	target     []byte
	salt       []byte
	digestSize int
}

func newXOFValidator(cfg Config) (Validator, error) {
	size := cfg.DigestSize
	if size <= 0 {
		size = len(cfg.Target)
	}
	return &xofValidator{
		abbr:       cfg.Algo.Abbr,
		target:     cfg.Target,
		salt:       cfg.Salt,
		digestSize: size,
	}, nil
}

func (v *xofValidator) Derive(candidate seed.Bits256) ([]byte, error) {
	switch v.abbr {
	case "shake128":
		x := sha3.NewShake128()
		if len(v.salt) > 0 {
			x.Write(v.salt)
		}
		x.Write(candidate.Bytes())
		out := make([]byte, v.digestSize)
		x.Read(out)
		return out, nil
	case "shake256":
		x := sha3.NewShake256()
		if len(v.salt) > 0 {
			x.Write(v.salt)
		}
		x.Write(candidate.Bytes())
		out := make([]byte, v.digestSize)
		x.Read(out)
		return out, nil
	case "kang12":
		msg := candidate.Bytes()
		if len(v.salt) > 0 {
			msg = append(append([]byte{}, v.salt...), msg...)
		}
		return kangaroo12.Sum(msg, nil, v.digestSize), nil
	default:
		return nil, rbcerr.Argumentf("xof validator does not support %q", v.abbr)
	}
}

func (v *xofValidator) Matches(artifact []byte) bool {
	return len(artifact) == len(v.target) && subtle.ConstantTimeCompare(artifact, v.target) == 1
}

func (v *xofValidator) Close() error { return nil }
