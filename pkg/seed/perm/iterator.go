package perm

import (
	"math/big"

	"rbcvalidator/internal/rbcerr"
	"rbcvalidator/pkg/seed"
)

// Iterator lazily enumerates the mismatch masks of popcount m over n
// bits, in colex order of their set-bit positions, restricted to the
// closed range [first, last] of colex indices.
type Iterator struct {
	n, m      int
	positions []int // ascending, length m
	index     *big.Int
	last      *big.Int
	ended     bool
}

// New constructs an Iterator over colex indices [first, last]. It
// fails with an ArgumentError when m > n, first > last, or last is
// out of range for C(n, m).
func New(n, m int, first, last *big.Int) (*Iterator, error) {
	if m < 0 || m > n {
		return nil, rbcerr.Argumentf("mismatches %d exceeds subseed length %d", m, n)
	}
	if first.Sign() < 0 || first.Cmp(last) > 0 {
		return nil, rbcerr.Argumentf("first index %s exceeds last index %s", first, last)
	}
	total := Binomial(n, m)
	if last.Cmp(total) >= 0 {
		return nil, rbcerr.Argumentf("last index %s is out of range for C(%d,%d) = %s", last, n, m, total)
	}

	it := &Iterator{
		n:     n,
		m:     m,
		index: new(big.Int).Set(first),
		last:  new(big.Int).Set(last),
	}
	if m == 0 {
		it.positions = nil
		return it, nil
	}
	it.positions = unrank(n, m, first)
	return it, nil
}

// Ended reports whether the last index has already been emitted and
// consumed by a further Next call.
func (it *Iterator) Ended() bool {
	return it.ended
}

// Current returns the mismatch mask at the iterator's current index.
// Only meaningful while !Ended().
func (it *Iterator) Current() seed.Bits256 {
	return seed.MaskFromPositions(it.positions)
}

// Index returns the current colex index (for tests and counters).
func (it *Iterator) Index() *big.Int {
	return new(big.Int).Set(it.index)
}

// Next advances the iterator by one colex index. Once the index that
// was emitted equals last, the following Next call sets Ended.
func (it *Iterator) Next() {
	if it.ended {
		return
	}
	if it.index.Cmp(it.last) >= 0 {
		it.ended = true
		return
	}
	it.advance()
	it.index.Add(it.index, big.NewInt(1))
}

// advance applies the colex successor rule: find the smallest j such
// that positions[j+1] - positions[j] > 1 (treating positions[m] = n),
// increment positions[j], and reset positions[0:j] to 0..j-1.
func (it *Iterator) advance() {
	m := it.m
	for j := 0; j < m; j++ {
		next := it.n
		if j+1 < m {
			next = it.positions[j+1]
		}
		if next-it.positions[j] > 1 {
			it.positions[j]++
			for i := 0; i < j; i++ {
				it.positions[i] = i
			}
			return
		}
	}
}

// unrank computes the m ascending set-bit positions for colex index i,
// via the combinatorial number system: pick the largest p_{j-1} with
// C(p_{j-1}, j) <= remaining index, subtract, and recurse downward.
func unrank(n, m int, index *big.Int) []int {
	positions := make([]int, m)
	rem := new(big.Int).Set(index)
	for j := m; j >= 1; j-- {
		p := j - 1
		for p+1 <= n-1 {
			c := Binomial(p+1, j)
			if c.Cmp(rem) > 0 {
				break
			}
			p++
		}
		positions[j-1] = p
		rem.Sub(rem, Binomial(p, j))
	}
	return positions
}

// Rank returns the colex index of the given ascending set-bit
// positions, the inverse of unrank. Exposed for round-trip testing.
func Rank(positions []int) *big.Int {
	total := new(big.Int)
	for j, p := range positions {
		total.Add(total, Binomial(p, j+1))
	}
	return total
}
