package validator

import (
	"testing"

	"rbcvalidator/pkg/seed"
)

func TestAESValidatorRoundTrip(t *testing.T) {
	candidate, _ := seed.FromBytes(make([]byte, seed.Size))
	algo, ok := FindAlgo("aes")
	if !ok {
		t.Fatal("aes mode missing from Algos")
	}

	var uuidBytes [16]byte
	for i := range uuidBytes {
		uuidBytes[i] = byte(i)
	}

	probe, err := New(Config{Algo: algo, UUID: uuidBytes})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer probe.Close()

	target, err := probe.Derive(candidate)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	v, err := New(Config{Algo: algo, Target: target, UUID: uuidBytes})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer v.Close()

	artifact, err := v.Derive(candidate)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	if !v.Matches(artifact) {
		t.Error("expected AES-256-ECB encryption of the same plaintext/key to match")
	}
}

func TestChaCha20ValidatorRoundTrip(t *testing.T) {
	candidate, _ := seed.FromBytes(make([]byte, seed.Size))
	algo, ok := FindAlgo("chacha20")
	if !ok {
		t.Fatal("chacha20 mode missing from Algos")
	}

	iv := make([]byte, 16)
	for i := range iv {
		iv[i] = byte(i + 1)
	}
	var uuidBytes [16]byte

	probe, err := New(Config{Algo: algo, UUID: uuidBytes, IV: iv})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	target, _ := probe.Derive(candidate)
	probe.Close()

	v, err := New(Config{Algo: algo, Target: target, UUID: uuidBytes, IV: iv})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer v.Close()

	artifact, err := v.Derive(candidate)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	if !v.Matches(artifact) {
		t.Error("expected chacha20 keystream to match for the same key/iv/plaintext")
	}
}

func TestChaCha20ValidatorRejectsBadIVLength(t *testing.T) {
	algo, _ := FindAlgo("chacha20")
	v, err := New(Config{Algo: algo, IV: []byte{0x01, 0x02}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	candidate, _ := seed.FromBytes(make([]byte, seed.Size))
	if _, err := v.Derive(candidate); err == nil {
		t.Error("expected error for a non-16-byte IV")
	}
}
