package validator

import (
	"crypto/aes"
	"crypto/subtle"

	"golang.org/x/crypto/chacha20"

	"rbcvalidator/internal/rbcerr"
	"rbcvalidator/pkg/seed"
)

// cipherValidator encrypts the fixed UUID plaintext with the candidate
// seed as key and compares the ciphertext to the target artifact.
type cipherValidator struct {
	algo   Algo
	target []byte
	uuid   [16]byte
	iv     []byte
}

func newCipherValidator(cfg Config) (Validator, error) {
	return &cipherValidator{
		algo:   cfg.Algo,
		target: cfg.Target,
		uuid:   cfg.UUID,
		iv:     cfg.IV,
	}, nil
}

func (v *cipherValidator) Derive(candidate seed.Bits256) ([]byte, error) {
	switch v.algo.Abbr {
	case "aes":
		return v.deriveAES(candidate)
	case "chacha20":
		return v.deriveChaCha20(candidate)
	default:
		return nil, rbcerr.Argumentf("cipher validator does not support %q", v.algo.Abbr)
	}
}

// deriveAES encrypts the 16-byte UUID plaintext as a single AES-256
// block. crypto/cipher deliberately omits ECB mode (it leaks block
// equality), so the single-block encrypt call below is hand-rolled
// directly against crypto/aes.NewCipher, the way the teacher's
// CanonicalSHA256 hand-rolls its nonce-substitution loop directly
// against crypto/sha256 rather than reaching for a helper package.
func (v *cipherValidator) deriveAES(candidate seed.Bits256) ([]byte, error) {
	block, err := aes.NewCipher(candidate.Bytes())
	if err != nil {
		return nil, rbcerr.Cryptof("aes: %v", err)
	}
	out := make([]byte, aes.BlockSize)
	block.Encrypt(out, v.uuid[:])
	return out, nil
}

// deriveChaCha20 matches the original OpenSSL EVP ChaCha20 IV layout:
// a 16-byte IV split into a 4-byte little-endian initial counter
// followed by a 12-byte nonce.
func (v *cipherValidator) deriveChaCha20(candidate seed.Bits256) ([]byte, error) {
	if len(v.iv) != 16 {
		return nil, rbcerr.Argumentf("chacha20 requires a 16-byte IV, got %d", len(v.iv))
	}
	counter := uint32(v.iv[0]) | uint32(v.iv[1])<<8 | uint32(v.iv[2])<<16 | uint32(v.iv[3])<<24
	nonce := v.iv[4:16]

	c, err := chacha20.NewUnauthenticatedCipher(candidate.Bytes(), nonce)
	if err != nil {
		return nil, rbcerr.Cryptof("chacha20: %v", err)
	}
	c.SetCounter(counter)

	out := make([]byte, len(v.uuid))
	c.XORKeyStream(out, v.uuid[:])
	return out, nil
}

func (v *cipherValidator) Matches(artifact []byte) bool {
	return len(artifact) == len(v.target) && subtle.ConstantTimeCompare(artifact, v.target) == 1
}

func (v *cipherValidator) Close() error { return nil }
