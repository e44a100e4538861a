package validator

import (
	"crypto/elliptic"
	"crypto/subtle"

	"rbcvalidator/internal/rbcerr"
	"rbcvalidator/pkg/seed"
)

// ecValidator derives the Secp256r1 public point reached by scalar
// base multiplication with the candidate seed as scalar, and compares
// its SEC1 encoding to the target artifact. Grounded on
// wyf-ACCEPT-eth2030/pkg/crypto/p256.go's use of crypto/elliptic's
// P256 curve for scalar-base-point multiplication.
type ecValidator struct {
	curve      elliptic.Curve
	target     []byte
	compressed bool
}

func newECValidator(cfg Config) (Validator, error) {
	// The target's length distinguishes SEC1 compressed (33 bytes for
	// P-256) from uncompressed (65 bytes) encoding; both are valid per
	// the primitive menu.
	compressed := len(cfg.Target) == 33
	return &ecValidator{
		curve:      elliptic.P256(),
		target:     cfg.Target,
		compressed: compressed,
	}, nil
}

func (v *ecValidator) Derive(candidate seed.Bits256) ([]byte, error) {
	x, y := v.curve.ScalarBaseMult(candidate.Bytes())
	if x.Sign() == 0 && y.Sign() == 0 {
		return nil, rbcerr.Crypto("scalar multiplication produced the point at infinity")
	}
	if v.compressed {
		return elliptic.MarshalCompressed(v.curve, x, y), nil
	}
	return elliptic.Marshal(v.curve, x, y), nil
}

func (v *ecValidator) Matches(artifact []byte) bool {
	return len(artifact) == len(v.target) && subtle.ConstantTimeCompare(artifact, v.target) == 1
}

func (v *ecValidator) Close() error { return nil }
