// Package perm enumerates the mismatch masks of a given Hamming weight
// in colex order over their set-bit positions, and partitions that
// enumeration across a fixed number of workers. C(n, m) routinely
// exceeds 2^64 (C(256,128) ~ 5.8e75), so every index in this package
// is an arbitrary-precision math/big.Int.
package perm

import "math/big"

// Binomial returns C(n, k) as a big.Int, or 0 if k is out of [0, n].
func Binomial(n, k int) *big.Int {
	if k < 0 || k > n {
		return big.NewInt(0)
	}
	if k == 0 || k == n {
		return big.NewInt(1)
	}
	if k > n-k {
		k = n - k
	}

	result := big.NewInt(1)
	num := new(big.Int)
	den := new(big.Int)
	for i := 0; i < k; i++ {
		num.SetInt64(int64(n - i))
		result.Mul(result, num)
		den.SetInt64(int64(i + 1))
		result.Div(result, den) // exact: result is C(n,i+1) after this step
	}
	return result
}
