// Package validator defines the pluggable cryptographic-transform
// contract (ValidatorIface in the design) and the concrete adapters
// wrapping the cipher/EC/hash primitive menu. It mirrors the teacher
// repo's pluggable hash-method architecture
// (pkg/hashing/core.HashMethod / pkg/hashing/factory), generalized
// from "compute a SHA-256" to "derive an artifact from a candidate
// seed under a chosen primitive and compare it to a target".
package validator

import "rbcvalidator/pkg/seed"

// Validator is the capability every concrete primitive adapter
// implements. Each worker owns an exclusive instance for the duration
// of one (m, rank) search; instances are never shared across workers.
type Validator interface {
	// Derive produces the artifact candidate would yield under this
	// validator's primitive.
	Derive(candidate seed.Bits256) ([]byte, error)
	// Matches compares a derived artifact to the stored target using
	// constant-time-friendly byte equality.
	Matches(artifact []byte) bool
	// Close releases any buffers/contexts owned by this instance.
	Close() error
}

// Mode classifies which primitive family an Algo belongs to.
type Mode int

const (
	ModeNone Mode = iota
	ModeCipher
	ModeEC
	ModeHash
)

// Algo describes one entry of the --mode menu, mirroring
// original_source/src/rbc_validator.c's supportedAlgos table.
type Algo struct {
	Abbr     string
	FullName string
	Mode     Mode
	XOF      bool // variable-length digest (shake128/256, kang12)
}

// Algos is the --mode menu, in CLI help order. The "none" entry has no
// validator: New returns an ArgumentError for it, and cliconfig.Parse
// rejects it.
var Algos = []Algo{
	{Abbr: "none", FullName: "None", Mode: ModeNone},
	{Abbr: "aes", FullName: "AES-256-ECB", Mode: ModeCipher},
	{Abbr: "chacha20", FullName: "ChaCha20", Mode: ModeCipher},
	{Abbr: "ecc", FullName: "Secp256r1", Mode: ModeEC},
	{Abbr: "md5", FullName: "MD5", Mode: ModeHash},
	{Abbr: "sha1", FullName: "SHA1", Mode: ModeHash},
	{Abbr: "sha224", FullName: "SHA2-224", Mode: ModeHash},
	{Abbr: "sha256", FullName: "SHA2-256", Mode: ModeHash},
	{Abbr: "sha384", FullName: "SHA2-384", Mode: ModeHash},
	{Abbr: "sha512", FullName: "SHA2-512", Mode: ModeHash},
	{Abbr: "sha3-224", FullName: "SHA3-224", Mode: ModeHash},
	{Abbr: "sha3-256", FullName: "SHA3-256", Mode: ModeHash},
	{Abbr: "sha3-384", FullName: "SHA3-384", Mode: ModeHash},
	{Abbr: "sha3-512", FullName: "SHA3-512", Mode: ModeHash},
	{Abbr: "shake128", FullName: "SHAKE128", Mode: ModeHash, XOF: true},
	{Abbr: "shake256", FullName: "SHAKE256", Mode: ModeHash, XOF: true},
	{Abbr: "kang12", FullName: "KangarooTwelve", Mode: ModeHash, XOF: true},
}

// FindAlgo looks up an Algo by its --mode abbreviation.
func FindAlgo(abbr string) (Algo, bool) {
	for _, a := range Algos {
		if a.Abbr == abbr {
			return a, true
		}
	}
	return Algo{}, false
}

// FixedDigestSize returns the digest length in bytes for the
// fixed-length hash algorithms, or 0 for modes without one (ciphers,
// EC, and the XOF hashes, whose length is caller-chosen).
func FixedDigestSize(abbr string) int {
	switch abbr {
	case "md5":
		return 16
	case "sha1":
		return 20
	case "sha224", "sha3-224":
		return 28
	case "sha256", "sha3-256":
		return 32
	case "sha384", "sha3-384":
		return 48
	case "sha512", "sha3-512":
		return 64
	default:
		return 0
	}
}
