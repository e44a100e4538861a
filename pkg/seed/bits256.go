// Package seed implements the 256-bit seed value used throughout the
// search: the host seed, the candidate seed it is XORed against, and
// the mismatch masks the permutation iterator emits.
package seed

import (
	"encoding/hex"
	"fmt"
	"math/bits"
)

// Size is the seed length in bytes.
const Size = 32

// Bits256 is an immutable 256-bit value. Byte 0 holds bits 0-7 (bit 0
// is the LSB of byte 0), matching the original implementation's
// corrupted-seed generator, which this repo's PermIterator mask layout
// and validator key feed both keep consistent with.
type Bits256 [Size]byte

// FromBytes copies b into a Bits256; b must be exactly Size bytes long.
func FromBytes(b []byte) (Bits256, error) {
	var v Bits256
	if len(b) != Size {
		return v, fmt.Errorf("seed: expected %d bytes, got %d", Size, len(b))
	}
	copy(v[:], b)
	return v, nil
}

// ParseHex decodes a lowercase or uppercase hex string into a Bits256.
func ParseHex(s string) (Bits256, error) {
	var v Bits256
	if len(s) != Size*2 {
		return v, fmt.Errorf("seed: expected %d hex characters, got %d", Size*2, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return v, fmt.Errorf("seed: invalid hex: %w", err)
	}
	copy(v[:], b)
	return v, nil
}

// Hex renders the seed as lowercase hex, the form the CLI prints the
// winning candidate in.
func (v Bits256) Hex() string {
	return hex.EncodeToString(v[:])
}

// Bytes returns the underlying 32 bytes.
func (v Bits256) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, v[:])
	return out
}

// Xor returns v XOR other.
func (v Bits256) Xor(other Bits256) Bits256 {
	var out Bits256
	for i := range v {
		out[i] = v[i] ^ other[i]
	}
	return out
}

// Bit reports whether bit i (0 = LSB of byte 0) is set.
func (v Bits256) Bit(i int) bool {
	return v[i/8]&(1<<uint(i%8)) != 0
}

// ToggleBit returns a copy of v with bit i flipped.
func (v Bits256) ToggleBit(i int) Bits256 {
	out := v
	out[i/8] ^= 1 << uint(i%8)
	return out
}

// PopCount returns the number of set bits.
func (v Bits256) PopCount() int {
	n := 0
	for _, b := range v {
		n += bits.OnesCount8(b)
	}
	return n
}

// SetBits returns the ascending indices of the set bits.
func (v Bits256) SetBits() []int {
	var out []int
	for i := 0; i < Size*8; i++ {
		if v.Bit(i) {
			out = append(out, i)
		}
	}
	return out
}

// MaskFromPositions builds a Bits256 with exactly the given bit
// positions set; used by PermIterator to materialize a mismatch mask.
func MaskFromPositions(positions []int) Bits256 {
	var v Bits256
	for _, p := range positions {
		v[p/8] |= 1 << uint(p%8)
	}
	return v
}
