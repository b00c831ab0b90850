package ed25519

import "fmt"

// DecodeGroupElement decompresses a 32-byte point encoding into P3 with
// Z = 1. The low 255 bits hold y and bit 255 the sign of x. x is recovered
// as a square root of (y^2 - 1) / (d y^2 + 1):
//
//	x = u v^3 (u v^7)^((p-5)/8),  u = y^2 - 1,  v = d y^2 + 1
//
// corrected by sqrt(-1) when v x^2 = -u. Encodings with no square root fail
// with ErrInvalidArgument.
func DecodeGroupElement(b []byte) (*GroupElement, error) {
	if len(b) != 32 {
		return nil, fmt.Errorf("%w: point encoding needs 32 bytes, got %d", ErrInvalidLength, len(b))
	}
	y, err := DecodeFieldElement(b)
	if err != nil {
		return nil, err
	}
	yy := y.Square()
	u := yy.Subtract(FieldOne)
	v := yy.Multiply(curveD).Add(FieldOne)
	v3 := v.Square().Multiply(v)

	x := v3.Square().Multiply(v).Multiply(u).Pow22523()
	x = x.Multiply(v3).Multiply(u)

	vxx := x.Square().Multiply(v)
	if vxx.Subtract(u).IsNonZero() {
		if vxx.Add(u).IsNonZero() {
			return nil, fmt.Errorf("%w: %x is not a point encoding", ErrInvalidArgument, b)
		}
		x = x.Multiply(sqrtM1)
	}

	if x.IsNegative() != (b[31]>>7 == 1) {
		x = x.Negate()
	}
	return newGroupElement(extended{X: x, Y: y, Z: FieldOne, T: x.Multiply(y)}), nil
}
