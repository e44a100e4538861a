package perm

import (
	"math/big"

	"rbcvalidator/internal/rbcerr"
)

// Range is a closed colex-index range [First, Last] assigned to one
// worker. Empty reports whether the range has no indices at all,
// which happens when there are fewer candidates than workers; the
// driver must skip spawning a worker for an empty range.
type Range struct {
	First, Last *big.Int
}

// Empty reports whether First > Last.
func (r Range) Empty() bool {
	return r.First.Cmp(r.Last) > 0
}

// Partition computes the colex-index range assigned to rank r out of
// w workers, over the C(n, m) masks of popcount m. Partitions are
// disjoint, contiguous, their union is [0, C(n,m)-1], and sizes never
// differ by more than one; the first (C(n,m) mod w) partitions get the
// extra element.
func Partition(r, w, m, n int) (Range, error) {
	if w <= 0 {
		return Range{}, rbcerr.Argumentf("worker count %d must be positive", w)
	}
	if r < 0 || r >= w {
		return Range{}, rbcerr.Argumentf("rank %d out of range [0,%d)", r, w)
	}

	total := Binomial(n, m)
	wBig := big.NewInt(int64(w))
	base := new(big.Int)
	rem := new(big.Int)
	base.QuoRem(total, wBig, rem)

	remInt := int(rem.Int64())
	rBig := big.NewInt(int64(r))

	var first, last big.Int
	if r < remInt {
		// first = r*(base+1)
		basePlusOne := new(big.Int).Add(base, big.NewInt(1))
		first.Mul(rBig, basePlusOne)
		last.Add(&first, base)
	} else {
		// first = rem*(base+1) + (r-rem)*base
		basePlusOne := new(big.Int).Add(base, big.NewInt(1))
		remPart := new(big.Int).Mul(rem, basePlusOne)
		rMinusRem := new(big.Int).Sub(rBig, rem)
		rPart := new(big.Int).Mul(rMinusRem, base)
		first.Add(remPart, rPart)
		last.Add(&first, base)
		last.Sub(&last, big.NewInt(1))
	}

	return Range{First: &first, Last: &last}, nil
}
