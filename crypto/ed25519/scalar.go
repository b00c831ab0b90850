// Scalar arithmetic modulo the group order
//
//	L = 2^252 + 27742317777372353535851937790883648493.
//
// Scalars are little-endian byte strings unpacked into 21-bit signed limbs.
// Limb k sits at bit 21k, so limb k+12 sits at 2^252 above limb k and is
// folded down using 2^252 = -27742317777372353535851937790883648493 (mod L),
// whose 21-bit digits are the six fold coefficients below.

package ed25519

import (
	"fmt"

	"github.com/holiman/uint256"
)

const scalarLimbs = 24

// foldCoefficients are the limbs of -(L - 2^252) mod 2^126, added at offsets
// 0..5 below the folded limb's position minus 12.
var foldCoefficients = [6]int64{666643, 470296, 654183, -997805, 136657, -683901}

type wideScalar [scalarLimbs]int64

// Reduce returns s mod L for a 64-byte little-endian s. The result is the
// canonical 32-byte encoding in [0, L).
func Reduce(s []byte) ([]byte, error) {
	if len(s) != 64 {
		return nil, fmt.Errorf("%w: reduce needs 64 bytes, got %d", ErrInvalidLength, len(s))
	}
	var w wideScalar
	for i := 0; i < scalarLimbs-1; i++ {
		w[i] = loadLimb(s, i)
	}
	w[23] = load4(s[60:]) >> 3

	w.reduce()
	return w.pack(), nil
}

// MultiplyAndAdd returns (a*b + c) mod L for 32-byte little-endian a, b and
// c. The result is the canonical 32-byte encoding in [0, L).
func MultiplyAndAdd(a, b, c []byte) ([]byte, error) {
	for _, in := range [][]byte{a, b, c} {
		if len(in) != 32 {
			return nil, fmt.Errorf("%w: multiply-and-add needs 32-byte operands, got %d", ErrInvalidLength, len(in))
		}
	}
	av, bv, cv := unpackScalar(a), unpackScalar(b), unpackScalar(c)

	var w wideScalar
	copy(w[:12], cv[:])
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			w[i+j] += av[i] * bv[j]
		}
	}

	for i := 0; i <= 22; i += 2 {
		w.carryRound(i)
	}
	for i := 1; i <= 21; i += 2 {
		w.carryRound(i)
	}
	w.reduce()
	return w.pack(), nil
}

// IsCanonicalScalar reports whether the 32-byte little-endian s is below L.
// Signature verifiers use it to reject malleable S values.
func IsCanonicalScalar(s []byte) bool {
	if len(s) != 32 {
		return false
	}
	var be [32]byte
	for i := range s {
		be[31-i] = s[i]
	}
	v := new(uint256.Int).SetBytes32(be[:])
	return v.Lt(groupOrder)
}

// unpackScalar splits a 32-byte value into twelve 21-bit limbs; the top limb
// keeps the remaining 25 bits.
func unpackScalar(in []byte) [12]int64 {
	var out [12]int64
	for i := 0; i < 11; i++ {
		out[i] = loadLimb(in, i)
	}
	out[11] = load4(in[28:]) >> 7
	return out
}

// loadLimb extracts the 21-bit limb starting at bit 21i.
func loadLimb(in []byte, i int) int64 {
	bit := 21 * i
	return (load4(in[bit/8:]) >> (bit % 8)) & (1<<21 - 1)
}

// fold eliminates limb i (12 <= i <= 23) by adding its multiple of
// 2^252 mod L into limbs i-12 .. i-7.
func (w *wideScalar) fold(i int) {
	for k, c := range foldCoefficients {
		w[i-12+k] += w[i] * c
	}
	w[i] = 0
}

// carryRound moves the rounded overflow of limb i into limb i+1, leaving
// limb i in [-2^20, 2^20).
func (w *wideScalar) carryRound(i int) {
	c := (w[i] + 1<<20) >> 21
	w[i+1] += c
	w[i] -= c << 21
}

// carryFloor moves the floored overflow of limb i into limb i+1, leaving
// limb i in [0, 2^21).
func (w *wideScalar) carryFloor(i int) {
	c := w[i] >> 21
	w[i+1] += c
	w[i] -= c << 21
}

// reduce folds the limbs above 2^252 down in three tiers and normalises the
// low twelve limbs to [0, 2^21).
func (w *wideScalar) reduce() {
	for i := 23; i >= 18; i-- {
		w.fold(i)
	}
	for i := 6; i <= 16; i += 2 {
		w.carryRound(i)
	}
	for i := 7; i <= 15; i += 2 {
		w.carryRound(i)
	}

	for i := 17; i >= 12; i-- {
		w.fold(i)
	}
	for i := 0; i <= 10; i += 2 {
		w.carryRound(i)
	}
	for i := 1; i <= 11; i += 2 {
		w.carryRound(i)
	}

	w.fold(12)
	for i := 0; i <= 11; i++ {
		w.carryFloor(i)
	}
	w.fold(12)
	for i := 0; i <= 10; i++ {
		w.carryFloor(i)
	}
}

// pack writes limbs 0..11 as 21-bit fields into 32 bytes.
func (w *wideScalar) pack() []byte {
	out := make([]byte, 32)
	var acc uint64
	bits, pos := 0, 0
	for i := 0; i < 12; i++ {
		acc |= uint64(w[i]) << bits
		bits += 21
		for bits >= 8 && pos < len(out) {
			out[pos] = byte(acc)
			acc >>= 8
			bits -= 8
			pos++
		}
	}
	if pos < len(out) {
		out[pos] = byte(acc)
	}
	return out
}
