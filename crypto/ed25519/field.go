// Field arithmetic over GF(p), p = 2^255 - 19.
//
// An element is ten signed limbs h[0..9] representing
//
//	h[0] + 2^26 h[1] + 2^51 h[2] + 2^77 h[3] + ... + 2^230 h[9]
//
// with limbs alternating between 26 and 25 bits. Results of Add and Subtract
// are not carried; Multiply and the squaring functions carry back down to
// |h[i]| <= 1.01 * 2^(25 or 26). Values are immutable: every operation
// returns a new element.

package ed25519

import (
	"crypto/subtle"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// FieldElement is an element of GF(2^255 - 19) in ref10 radix 2^25.5 form.
// The limb representation of a value is not unique; use Equal or Encode to
// compare elements.
type FieldElement [10]int32

// Field constants.
var (
	FieldZero = FieldElement{}
	FieldOne  = FieldElement{1}
	FieldTwo  = FieldElement{2}
)

// NewFieldElement builds a field element from exactly ten limbs. Limb bounds
// are not checked; callers supply limbs within the documented magnitudes.
func NewFieldElement(limbs []int32) (FieldElement, error) {
	var f FieldElement
	if len(limbs) != len(f) {
		return f, fmt.Errorf("%w: field element needs %d limbs, got %d", ErrInvalidLength, len(f), len(limbs))
	}
	copy(f[:], limbs)
	return f, nil
}

// Limbs returns a copy of the limb vector.
func (f FieldElement) Limbs() []int32 {
	out := make([]int32, len(f))
	copy(out, f[:])
	return out
}

// Add returns f + g without carrying.
func (f FieldElement) Add(g FieldElement) FieldElement {
	var h FieldElement
	for i := range h {
		h[i] = f[i] + g[i]
	}
	return h
}

// Subtract returns f - g without carrying.
func (f FieldElement) Subtract(g FieldElement) FieldElement {
	var h FieldElement
	for i := range h {
		h[i] = f[i] - g[i]
	}
	return h
}

// Negate returns -f.
func (f FieldElement) Negate() FieldElement {
	return FieldZero.Subtract(f)
}

// IsNonZero reports whether f is not congruent to zero mod p.
func (f FieldElement) IsNonZero() bool {
	var zero [32]byte
	enc := f.Encode()
	return subtle.ConstantTimeCompare(enc[:], zero[:]) == 0
}

// IsNegative reports whether the canonical value of f is odd, which is the
// sign convention of the point encoding.
func (f FieldElement) IsNegative() bool {
	enc := f.Encode()
	return enc[0]&1 == 1
}

// Equal reports whether f and g represent the same field value. The
// comparison runs in constant time over the canonical encodings.
func (f FieldElement) Equal(g FieldElement) bool {
	a, b := f.Encode(), g.Encode()
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}

// String renders the canonical little-endian encoding as 0x-prefixed hex.
func (f FieldElement) String() string {
	enc := f.Encode()
	return hexutil.Encode(enc[:])
}

// ModP returns the canonical representative of f in [0, p) with every limb
// in its nominal range.
//
// Write q = floor(h/p). With |h| bounded by 1.1*2^(25,26) per limb,
// q = floor(2^-255 (h + 19 * 2^-25 h9 + 2^-1)), computed by the carry chain
// below. Subtracting pq leaves 0 <= h < p.
func (f FieldElement) ModP() FieldElement {
	h := f
	q := (19*h[9] + (1 << 24)) >> 25
	for i := 0; i < 10; i++ {
		q = (h[i] + q) >> limbBits(i)
	}
	h[0] += 19 * q
	for i := 0; i < 9; i++ {
		carry := h[i] >> limbBits(i)
		h[i+1] += carry
		h[i] -= carry << limbBits(i)
	}
	h[9] &= (1 << 25) - 1
	return h
}

// Encode returns the canonical 32-byte little-endian encoding of f.
func (f FieldElement) Encode() [32]byte {
	h := f.ModP()
	var s [32]byte
	var acc uint64
	bits, pos := 0, 0
	for i := 0; i < 10; i++ {
		acc |= uint64(uint32(h[i])) << bits
		bits += int(limbBits(i))
		for bits >= 8 {
			s[pos] = byte(acc)
			acc >>= 8
			bits -= 8
			pos++
		}
	}
	s[31] = byte(acc)
	return s
}

// DecodeFieldElement parses a 32-byte little-endian value. Bit 255 is
// ignored, so the result is the field element of the low 255 bits, which
// may be non-canonical (values in [p, 2^255) are accepted and reduced).
func DecodeFieldElement(b []byte) (FieldElement, error) {
	if len(b) != 32 {
		return FieldZero, fmt.Errorf("%w: field encoding needs 32 bytes, got %d", ErrInvalidLength, len(b))
	}
	h0 := load4(b[0:])
	h1 := load3(b[4:]) << 6
	h2 := load3(b[7:]) << 5
	h3 := load3(b[10:]) << 3
	h4 := load3(b[13:]) << 2
	h5 := load4(b[16:])
	h6 := load3(b[20:]) << 7
	h7 := load3(b[23:]) << 5
	h8 := load3(b[26:]) << 4
	h9 := (load3(b[29:]) & 0x7fffff) << 2

	// Odd limbs first, folding the top carry back with the factor 19.
	var c int64
	c = (h9 + 1<<24) >> 25
	h0 += c * 19
	h9 -= c << 25
	c = (h1 + 1<<24) >> 25
	h2 += c
	h1 -= c << 25
	c = (h3 + 1<<24) >> 25
	h4 += c
	h3 -= c << 25
	c = (h5 + 1<<24) >> 25
	h6 += c
	h5 -= c << 25
	c = (h7 + 1<<24) >> 25
	h8 += c
	h7 -= c << 25

	c = (h0 + 1<<25) >> 26
	h1 += c
	h0 -= c << 26
	c = (h2 + 1<<25) >> 26
	h3 += c
	h2 -= c << 26
	c = (h4 + 1<<25) >> 26
	h5 += c
	h4 -= c << 26
	c = (h6 + 1<<25) >> 26
	h7 += c
	h6 -= c << 26
	c = (h8 + 1<<25) >> 26
	h9 += c
	h8 -= c << 26

	return FieldElement{
		int32(h0), int32(h1), int32(h2), int32(h3), int32(h4),
		int32(h5), int32(h6), int32(h7), int32(h8), int32(h9),
	}, nil
}

// limbBits is the width of limb i: 26 for even limbs, 25 for odd ones.
func limbBits(i int) uint {
	return 26 - uint(i&1)
}

func load3(in []byte) int64 {
	return int64(in[0]) | int64(in[1])<<8 | int64(in[2])<<16
}

func load4(in []byte) int64 {
	return int64(in[0]) | int64(in[1])<<8 | int64(in[2])<<16 | int64(in[3])<<24
}

// cmov replaces f with g when b == 1 and leaves it when b == 0, without
// branching on b.
func (f *FieldElement) cmov(g *FieldElement, b int32) {
	mask := -b
	for i := range f {
		f[i] ^= mask & (f[i] ^ g[i])
	}
}
