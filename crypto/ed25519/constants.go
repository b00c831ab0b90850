package ed25519

import "github.com/holiman/uint256"

// Curve constants for -x^2 + y^2 = 1 + d x^2 y^2 over GF(2^255 - 19).
var (
	// curveD is d = -121665/121666.
	curveD = FieldElement{-10913610, 13857413, -15372611, 6949391, 114729, -8787816, -6275908, -3247719, -18696448, -12055116}

	// curveD2 is 2*d.
	curveD2 = FieldElement{-21827239, -5839606, -30745221, 13898782, 229458, 15978800, -12551817, -6495438, 29715968, 9444199}

	// sqrtM1 is a square root of -1, 2^((p-1)/4).
	sqrtM1 = FieldElement{-32595792, -7943725, 9377950, 3500415, 12389472, -272473, -25146209, -2005654, 326686, 11406482}
)

// groupOrder is L = 2^252 + 27742317777372353535851937790883648493, the
// order of the prime subgroup generated by the base point.
var groupOrder = uint256.MustFromDecimal("7237005577332262213973186563042994240857116359379907606001950938285454250989")

// GroupOrder returns a copy of L.
func GroupOrder() *uint256.Int {
	return new(uint256.Int).Set(groupOrder)
}

// basePointEncoding is the compressed base point: y = 4/5, x positive.
var basePointEncoding = [32]byte{
	0x58, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
}
