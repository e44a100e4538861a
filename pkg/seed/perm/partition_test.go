package perm

import (
	"math/big"
	"testing"
)

func TestPartitionBalancedSizes(t *testing.T) {
	// C(8,3) = 56 over 5 workers: sizes {12,11,11,11,11}.
	n, m, w := 8, 3, 5
	wantSizes := []int64{12, 11, 11, 11, 11}
	wantFirst := []int64{0, 12, 23, 34, 45}
	wantLast := []int64{11, 22, 33, 44, 55}

	for r := 0; r < w; r++ {
		rng, err := Partition(r, w, m, n)
		if err != nil {
			t.Fatalf("Partition(%d) failed: %v", r, err)
		}
		if rng.First.Int64() != wantFirst[r] {
			t.Errorf("Partition(%d).First = %s, want %d", r, rng.First, wantFirst[r])
		}
		if rng.Last.Int64() != wantLast[r] {
			t.Errorf("Partition(%d).Last = %s, want %d", r, rng.Last, wantLast[r])
		}
		size := new(big.Int).Sub(rng.Last, rng.First)
		size.Add(size, big.NewInt(1))
		if size.Int64() != wantSizes[r] {
			t.Errorf("Partition(%d) size = %s, want %d", r, size, wantSizes[r])
		}
	}
}

func TestPartitionCoversExactlyOnce(t *testing.T) {
	n, m, w := 8, 3, 5
	total := Binomial(n, m)
	seen := make([]bool, total.Int64())
	for r := 0; r < w; r++ {
		rng, err := Partition(r, w, m, n)
		if err != nil {
			t.Fatalf("Partition(%d) failed: %v", r, err)
		}
		for i := rng.First.Int64(); i <= rng.Last.Int64(); i++ {
			if seen[i] {
				t.Fatalf("index %d covered by more than one partition", i)
			}
			seen[i] = true
		}
	}
	for i, s := range seen {
		if !s {
			t.Errorf("index %d not covered by any partition", i)
		}
	}
}

func TestPartitionMoreWorkersThanCandidates(t *testing.T) {
	// C(4,4) = 1 candidate, 3 workers: only rank 0 gets a nonempty range.
	n, m, w := 4, 4, 3
	for r := 0; r < w; r++ {
		rng, err := Partition(r, w, m, n)
		if err != nil {
			t.Fatalf("Partition(%d) failed: %v", r, err)
		}
		if r == 0 {
			if rng.Empty() {
				t.Error("rank 0 should get the sole candidate")
			}
		} else if !rng.Empty() {
			t.Errorf("rank %d should be empty, got [%s,%s]", r, rng.First, rng.Last)
		}
	}
}

func TestPartitionRejectsInvalidRank(t *testing.T) {
	if _, err := Partition(-1, 5, 3, 8); err == nil {
		t.Error("expected error for negative rank")
	}
	if _, err := Partition(5, 5, 3, 8); err == nil {
		t.Error("expected error for rank == worker count")
	}
	if _, err := Partition(0, 0, 3, 8); err == nil {
		t.Error("expected error for zero workers")
	}
}
