package ed25519

// Multiply returns f * g.
//
// Inputs may carry limbs up to 1.65 * 2^(26,25) (one uncarried Add or
// Subtract of reduced operands). The schoolbook product folds every limb
// product that overflows 2^255 back down with the factor 19; odd*odd limb
// products carry an extra factor 2 because both limbs sit at half-bit
// offsets.
func (f FieldElement) Multiply(g FieldElement) FieldElement {
	f0, f1, f2, f3, f4 := int64(f[0]), int64(f[1]), int64(f[2]), int64(f[3]), int64(f[4])
	f5, f6, f7, f8, f9 := int64(f[5]), int64(f[6]), int64(f[7]), int64(f[8]), int64(f[9])
	f1x2, f3x2, f5x2, f7x2, f9x2 := 2*f1, 2*f3, 2*f5, 2*f7, 2*f9

	g0, g1, g2, g3, g4 := int64(g[0]), int64(g[1]), int64(g[2]), int64(g[3]), int64(g[4])
	g5, g6, g7, g8, g9 := int64(g[5]), int64(g[6]), int64(g[7]), int64(g[8]), int64(g[9])
	g1x19, g2x19, g3x19, g4x19, g5x19 := 19*g1, 19*g2, 19*g3, 19*g4, 19*g5
	g6x19, g7x19, g8x19, g9x19 := 19*g6, 19*g7, 19*g8, 19*g9

	h0 := f0*g0 + f1x2*g9x19 + f2*g8x19 + f3x2*g7x19 + f4*g6x19 + f5x2*g5x19 + f6*g4x19 + f7x2*g3x19 + f8*g2x19 + f9x2*g1x19
	h1 := f0*g1 + f1*g0 + f2*g9x19 + f3*g8x19 + f4*g7x19 + f5*g6x19 + f6*g5x19 + f7*g4x19 + f8*g3x19 + f9*g2x19
	h2 := f0*g2 + f1x2*g1 + f2*g0 + f3x2*g9x19 + f4*g8x19 + f5x2*g7x19 + f6*g6x19 + f7x2*g5x19 + f8*g4x19 + f9x2*g3x19
	h3 := f0*g3 + f1*g2 + f2*g1 + f3*g0 + f4*g9x19 + f5*g8x19 + f6*g7x19 + f7*g6x19 + f8*g5x19 + f9*g4x19
	h4 := f0*g4 + f1x2*g3 + f2*g2 + f3x2*g1 + f4*g0 + f5x2*g9x19 + f6*g8x19 + f7x2*g7x19 + f8*g6x19 + f9x2*g5x19
	h5 := f0*g5 + f1*g4 + f2*g3 + f3*g2 + f4*g1 + f5*g0 + f6*g9x19 + f7*g8x19 + f8*g7x19 + f9*g6x19
	h6 := f0*g6 + f1x2*g5 + f2*g4 + f3x2*g3 + f4*g2 + f5x2*g1 + f6*g0 + f7x2*g9x19 + f8*g8x19 + f9x2*g7x19
	h7 := f0*g7 + f1*g6 + f2*g5 + f3*g4 + f4*g3 + f5*g2 + f6*g1 + f7*g0 + f8*g9x19 + f9*g8x19
	h8 := f0*g8 + f1x2*g7 + f2*g6 + f3x2*g5 + f4*g4 + f5x2*g3 + f6*g2 + f7x2*g1 + f8*g0 + f9x2*g9x19
	h9 := f0*g9 + f1*g8 + f2*g7 + f3*g6 + f4*g5 + f5*g4 + f6*g3 + f7*g2 + f8*g1 + f9*g0

	return carryWide([10]int64{h0, h1, h2, h3, h4, h5, h6, h7, h8, h9})
}

// Square returns f * f.
func (f FieldElement) Square() FieldElement {
	return carryWide(squareWide(f))
}

// SquareAndDouble returns 2 * f * f.
func (f FieldElement) SquareAndDouble() FieldElement {
	h := squareWide(f)
	for i := range h {
		h[i] += h[i]
	}
	return carryWide(h)
}

// squareWide returns the uncarried 64-bit limbs of f*f, sharing the
// symmetric cross terms.
func squareWide(f FieldElement) [10]int64 {
	f0, f1, f2, f3, f4 := int64(f[0]), int64(f[1]), int64(f[2]), int64(f[3]), int64(f[4])
	f5, f6, f7, f8, f9 := int64(f[5]), int64(f[6]), int64(f[7]), int64(f[8]), int64(f[9])
	f0x2, f1x2, f2x2, f3x2 := 2*f0, 2*f1, 2*f2, 2*f3
	f4x2, f5x2, f6x2, f7x2 := 2*f4, 2*f5, 2*f6, 2*f7
	f5x38, f6x19, f7x38, f8x19, f9x38 := 38*f5, 19*f6, 38*f7, 19*f8, 38*f9

	return [10]int64{
		f0*f0 + f1x2*f9x38 + f2x2*f8x19 + f3x2*f7x38 + f4x2*f6x19 + f5*f5x38,
		f0x2*f1 + f2*f9x38 + f3x2*f8x19 + f4*f7x38 + f5x2*f6x19,
		f0x2*f2 + f1x2*f1 + f3x2*f9x38 + f4x2*f8x19 + f5x2*f7x38 + f6*f6x19,
		f0x2*f3 + f1x2*f2 + f4*f9x38 + f5x2*f8x19 + f6*f7x38,
		f0x2*f4 + f1x2*f3x2 + f2*f2 + f5x2*f9x38 + f6x2*f8x19 + f7*f7x38,
		f0x2*f5 + f1x2*f4 + f2x2*f3 + f6*f9x38 + f7x2*f8x19,
		f0x2*f6 + f1x2*f5x2 + f2x2*f4 + f3x2*f3 + f7x2*f9x38 + f8*f8x19,
		f0x2*f7 + f1x2*f6 + f2x2*f5 + f3x2*f4 + f8*f9x38,
		f0x2*f8 + f1x2*f7x2 + f2x2*f6 + f3x2*f5x2 + f4*f4 + f9*f9x38,
		f0x2*f9 + f1x2*f8 + f2x2*f7 + f3x2*f6 + f4x2*f5,
	}
}

// carryWide reduces 64-bit limb accumulators back to 26/25-bit limbs. The
// carries run on two interleaved lanes (0..4 and 4..8), then 9 wraps into 0
// with the factor 19 and a last carry settles limb 0.
func carryWide(h [10]int64) FieldElement {
	carry := func(i int) {
		bits := limbBits(i)
		c := (h[i] + 1<<(bits-1)) >> bits
		h[i] -= c << bits
		if i == 9 {
			h[0] += c * 19
			return
		}
		h[i+1] += c
	}
	for _, i := range [...]int{0, 4, 1, 5, 2, 6, 3, 7, 4, 8, 9, 0} {
		carry(i)
	}
	var out FieldElement
	for i := range out {
		out[i] = int32(h[i])
	}
	return out
}
