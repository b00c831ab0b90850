package ed25519

import (
	"fmt"

	"github.com/nem2030/nem2030/metrics"
)

// ScalarMultiply returns a*g in P3 for a 32-byte little-endian scalar a,
// running in time independent of a. g must be P3; its fixed-base table is
// built on first use.
//
// The top bit of a[31] must be clear. This is the caller's responsibility
// and is not checked; the scalar is not clamped.
func (g *GroupElement) ScalarMultiply(a []byte) (*GroupElement, error) {
	p, err := g.asExtended("scalar multiply")
	if err != nil {
		return nil, err
	}
	if len(a) != 32 {
		return nil, fmt.Errorf("%w: scalar needs 32 bytes, got %d", ErrInvalidLength, len(a))
	}
	table := g.singleTable(p)
	metrics.Ed25519ScalarMults.Inc()
	return newGroupElement(scalarMultTable(table, a)), nil
}

// DoubleScalarMultiplyVariableTime returns b*g - a*A in P2. Both g and A
// must be P3; missing sliding-window tables are built first.
//
// The running time depends on a and b. Use it only on public scalars, as in
// signature verification.
func (g *GroupElement) DoubleScalarMultiplyVariableTime(A *GroupElement, a, b []byte) (*GroupElement, error) {
	p, err := g.asExtended("double scalar multiply")
	if err != nil {
		return nil, err
	}
	q, err := A.asExtended("double scalar multiply")
	if err != nil {
		return nil, err
	}
	if len(a) != 32 || len(b) != 32 {
		return nil, fmt.Errorf("%w: scalars need 32 bytes, got %d and %d", ErrInvalidLength, len(a), len(b))
	}
	gTable := g.doubleTable(p)
	aTable := A.doubleTable(q)
	metrics.Ed25519DoubleScalarMults.Inc()
	return newGroupElement(doubleScalarMultTables(gTable, aTable, a, b)), nil
}

// scalarMultTable evaluates sum e[i] 16^i against the fixed-base table:
// first the odd nibbles, then a multiplication by 16, then the even ones.
func scalarMultTable(table *[32][8]precomputed, a []byte) extended {
	e := toRadix16(a)
	h := extendedZero
	for i := 1; i < 64; i += 2 {
		h = h.madd(selectPrecomputed(table, i/2, e[i])).toExtended()
	}

	h = h.dbl().toProjective().dbl().toProjective().dbl().toProjective().dbl().toExtended()

	for i := 0; i < 64; i += 2 {
		h = h.madd(selectPrecomputed(table, i/2, e[i])).toExtended()
	}
	return h
}

// doubleScalarMultTables computes b*P - a*A from the sliding-window digits
// of both scalars, where gTable holds odd multiples of P and aTable those of A.
func doubleScalarMultTables(gTable, aTable *[8]precomputed, a, b []byte) projective {
	aSlide := slide(a)
	bSlide := slide(b)

	i := 255
	for ; i >= 0; i-- {
		if aSlide[i] != 0 || bSlide[i] != 0 {
			break
		}
	}

	r := projectiveZero
	for ; i >= 0; i-- {
		t := r.dbl()

		if aSlide[i] > 0 {
			t = t.toExtended().msub(aTable[aSlide[i]/2])
		} else if aSlide[i] < 0 {
			t = t.toExtended().madd(aTable[-aSlide[i]/2])
		}

		if bSlide[i] > 0 {
			t = t.toExtended().madd(gTable[bSlide[i]/2])
		} else if bSlide[i] < 0 {
			t = t.toExtended().msub(gTable[-bSlide[i]/2])
		}

		r = t.toProjective()
	}
	return r
}

// toRadix16 writes a as 64 signed nibbles e[i] in [-8, 8) with
// a = sum e[i] 16^i. e[63] absorbs the final carry and stays below 8 when
// the top bit of a is clear.
func toRadix16(a []byte) [64]int8 {
	var e [64]int8
	for i := 0; i < 32; i++ {
		e[2*i] = int8(a[i] & 15)
		e[2*i+1] = int8(a[i]>>4) & 15
	}
	var carry int8
	for i := 0; i < 63; i++ {
		e[i] += carry
		carry = (e[i] + 8) >> 4
		e[i] -= carry << 4
	}
	e[63] += carry
	return e
}

// slide writes a in sliding-window form: every nonzero digit is odd and in
// [-15, 15], built by absorbing up to six higher bits into each set bit.
func slide(a []byte) [256]int8 {
	var r [256]int8
	for i := range r {
		r[i] = int8(1 & (a[i>>3] >> (i & 7)))
	}

	for i := range r {
		if r[i] == 0 {
			continue
		}
		for b := 1; b <= 6 && i+b < 256; b++ {
			if r[i+b] == 0 {
				continue
			}
			step := r[i+b] << b
			if r[i]+step <= 15 {
				r[i] += step
				r[i+b] = 0
			} else if r[i]-step >= -15 {
				r[i] -= step
				for k := i + b; k < 256; k++ {
					if r[k] == 0 {
						r[k] = 1
						break
					}
					r[k] = 0
				}
			} else {
				break
			}
		}
	}
	return r
}

// selectPrecomputed returns b * 256^pos * P from the table without branching
// on b, for b in [-8, 8].
func selectPrecomputed(table *[32][8]precomputed, pos int, b int8) precomputed {
	bNegative := negativeMask(b)
	bAbs := int32(b) - ((-bNegative & int32(b)) << 1)

	t := precomputedZero
	for i := range table[pos] {
		t.cmov(&table[pos][i], equalMask(bAbs, int32(i+1)))
	}
	minusT := precomputed{
		yPlusX:  t.yMinusX,
		yMinusX: t.yPlusX,
		xy2d:    t.xy2d.Negate(),
	}
	t.cmov(&minusT, bNegative)
	return t
}

// equalMask returns 1 if b == c and 0 otherwise, for small non-negative b, c.
func equalMask(b, c int32) int32 {
	x := uint32(b ^ c)
	x--
	return int32(x >> 31)
}

// negativeMask returns 1 if b < 0 and 0 otherwise.
func negativeMask(b int8) int32 {
	return int32(uint32(int32(b)) >> 31)
}
