package validator

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"

	"rbcvalidator/pkg/seed"
)

func TestHashValidatorMatchesKnownDigest(t *testing.T) {
	candidate, err := seed.FromBytes(make([]byte, seed.Size))
	require.NoError(t, err)

	sum := sha256.Sum256(candidate.Bytes())

	algo, ok := FindAlgo("sha256")
	require.True(t, ok)

	v, err := New(Config{Algo: algo, Target: sum[:]})
	require.NoError(t, err)
	defer v.Close()

	artifact, err := v.Derive(candidate)
	require.NoError(t, err)
	require.True(t, v.Matches(artifact))
}

func TestHashValidatorRejectsWrongTarget(t *testing.T) {
	candidate, _ := seed.FromBytes(make([]byte, seed.Size))
	algo, _ := FindAlgo("sha256")
	v, err := New(Config{Algo: algo, Target: make([]byte, 32)})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer v.Close()

	artifact, err := v.Derive(candidate)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	if v.Matches(artifact) {
		t.Error("zero target should not match the real digest of the zero seed")
	}
}

func TestHashValidatorAppliesSalt(t *testing.T) {
	candidate, _ := seed.FromBytes(make([]byte, seed.Size))
	algo, _ := FindAlgo("sha256")

	withoutSalt, _ := New(Config{Algo: algo})
	defer withoutSalt.Close()
	a1, _ := withoutSalt.Derive(candidate)

	withSalt, _ := New(Config{Algo: algo, Salt: []byte("pepper")})
	defer withSalt.Close()
	a2, _ := withSalt.Derive(candidate)

	if string(a1) == string(a2) {
		t.Error("salted and unsalted digests should differ")
	}
}
