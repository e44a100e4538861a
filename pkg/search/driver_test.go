package search

import (
	"testing"

	"rbcvalidator/pkg/seed"
	"rbcvalidator/pkg/validator"
)

func TestDriverFindsPlantedMismatch(t *testing.T) {
	var host seed.Bits256
	for i := range host {
		host[i] = byte(i)
	}
	real := host.ToggleBit(3).ToggleBit(100)

	algo, _ := validator.FindAlgo("sha256")
	probe, err := validator.New(validator.Config{Algo: algo})
	if err != nil {
		t.Fatalf("validator.New failed: %v", err)
	}
	target, err := probe.Derive(real)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	probe.Close()

	driver, err := NewDriver(Config{
		Host:    host,
		N:       seed.Size * 8,
		MinDist: 0,
		MaxDist: 2,
		Workers: 4,
		ValidatorConfig: validator.Config{
			Algo:   algo,
			Target: target,
		},
	})
	if err != nil {
		t.Fatalf("NewDriver failed: %v", err)
	}

	outcome := driver.Run()
	if outcome.Err != nil {
		t.Fatalf("Run returned error: %v", outcome.Err)
	}
	if !outcome.Found {
		t.Fatal("expected to find the planted candidate")
	}
	if outcome.Candidate != real {
		t.Errorf("found candidate %s, want %s", outcome.Candidate.Hex(), real.Hex())
	}
}

func TestDriverReportsNotFoundWhenOutOfRange(t *testing.T) {
	var host seed.Bits256
	real := host.ToggleBit(0).ToggleBit(1).ToggleBit(2).ToggleBit(3).ToggleBit(4)

	algo, _ := validator.FindAlgo("sha256")
	probe, _ := validator.New(validator.Config{Algo: algo})
	target, _ := probe.Derive(real)
	probe.Close()

	driver, err := NewDriver(Config{
		Host:    host,
		N:       seed.Size * 8,
		MinDist: 0,
		MaxDist: 2, // real differs by 5 bits, outside the searched range
		Workers: 2,
		ValidatorConfig: validator.Config{
			Algo:   algo,
			Target: target,
		},
	})
	if err != nil {
		t.Fatalf("NewDriver failed: %v", err)
	}

	outcome := driver.Run()
	if outcome.Err != nil {
		t.Fatalf("Run returned error: %v", outcome.Err)
	}
	if outcome.Found {
		t.Error("expected no match within the searched distance range")
	}
}

func TestDriverRespectsSubseedLength(t *testing.T) {
	// n=8: only the first byte of host is ever corrupted/searched;
	// bits 8..255 stay fixed and must match exactly for a hit.
	var host seed.Bits256
	real := host.ToggleBit(1).ToggleBit(4)

	algo, _ := validator.FindAlgo("sha256")
	probe, _ := validator.New(validator.Config{Algo: algo})
	target, _ := probe.Derive(real)
	probe.Close()

	driver, err := NewDriver(Config{
		Host:    host,
		N:       8,
		MinDist: 0,
		MaxDist: 2,
		Workers: 3,
		ValidatorConfig: validator.Config{
			Algo:   algo,
			Target: target,
		},
	})
	if err != nil {
		t.Fatalf("NewDriver failed: %v", err)
	}

	outcome := driver.Run()
	if outcome.Err != nil {
		t.Fatalf("Run returned error: %v", outcome.Err)
	}
	if !outcome.Found {
		t.Fatal("expected to find the planted candidate within the first 8 bits")
	}
	if outcome.Candidate != real {
		t.Errorf("found candidate %s, want %s", outcome.Candidate.Hex(), real.Hex())
	}
}

func TestDriverRejectsInvalidConfig(t *testing.T) {
	if _, err := NewDriver(Config{Workers: 0}); err == nil {
		t.Error("expected error for zero workers")
	}
	if _, err := NewDriver(Config{Workers: 1, N: 0}); err == nil {
		t.Error("expected error for N out of [1,256]")
	}
	if _, err := NewDriver(Config{Workers: 1, N: seed.Size * 8 + 1}); err == nil {
		t.Error("expected error for N exceeding 256")
	}
	if _, err := NewDriver(Config{Workers: 1, N: 8, MinDist: 5, MaxDist: 2}); err == nil {
		t.Error("expected error for MinDist > MaxDist")
	}
	if _, err := NewDriver(Config{Workers: 1, N: 8, MinDist: 0, MaxDist: 9}); err == nil {
		t.Error("expected error for MaxDist exceeding N")
	}
}
