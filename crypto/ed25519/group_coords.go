// Typed coordinate systems for points on -x^2 + y^2 = 1 + d x^2 y^2.
//
// Each representation is its own struct and every conversion or addition
// formula between them is a total function, so the scalar multiplication
// loops never need a representation check. The tagged GroupElement wrapper
// in group.go is the only place that validates representations.
//
// Formulas follow Hisil, Wong, Carter, Dawson, "Twisted Edwards curves
// revisited" (2008) in the ref10 layout.

package ed25519

// affineCoords is (x, y).
type affineCoords struct {
	x, y FieldElement
}

// projective is P2: (X:Y:Z) with x = X/Z, y = Y/Z.
type projective struct {
	X, Y, Z FieldElement
}

// extended is P3: (X:Y:Z:T) with x = X/Z, y = Y/Z and XY = ZT.
type extended struct {
	X, Y, Z, T FieldElement
}

// completed is P1xP1: ((X:Z), (Y:T)) with x = X/Z, y = Y/T.
type completed struct {
	X, Y, Z, T FieldElement
}

// precomputed is (y+x, y-x, 2d*x*y) for an affine point.
type precomputed struct {
	yPlusX, yMinusX, xy2d FieldElement
}

// cached is (Y+X, Y-X, Z, 2d*T) for an extended point.
type cached struct {
	yPlusX, yMinusX, Z, T2d FieldElement
}

var (
	projectiveZero  = projective{FieldZero, FieldOne, FieldOne}
	extendedZero    = extended{FieldZero, FieldOne, FieldOne, FieldZero}
	precomputedZero = precomputed{FieldOne, FieldOne, FieldZero}
)

func (p completed) toProjective() projective {
	return projective{
		X: p.X.Multiply(p.T),
		Y: p.Y.Multiply(p.Z),
		Z: p.Z.Multiply(p.T),
	}
}

func (p completed) toExtended() extended {
	return extended{
		X: p.X.Multiply(p.T),
		Y: p.Y.Multiply(p.Z),
		Z: p.Z.Multiply(p.T),
		T: p.X.Multiply(p.Y),
	}
}

// toProjective drops T.
func (p extended) toProjective() projective {
	return projective{p.X, p.Y, p.Z}
}

func (p extended) toCached() cached {
	return cached{
		yPlusX:  p.Y.Add(p.X),
		yMinusX: p.Y.Subtract(p.X),
		Z:       p.Z,
		T2d:     p.T.Multiply(curveD2),
	}
}

// toPrecomputed normalises p to Z = 1. It costs one inversion.
func (p extended) toPrecomputed() precomputed {
	recip := p.Z.Invert()
	x := p.X.Multiply(recip)
	y := p.Y.Multiply(recip)
	return precomputed{
		yPlusX:  y.Add(x),
		yMinusX: y.Subtract(x),
		xy2d:    x.Multiply(y).Multiply(curveD2),
	}
}

// dbl computes 2p:
//
//	X' = (X+Y)^2 - (Y^2+X^2)
//	Y' = Y^2 + X^2
//	Z' = Y^2 - X^2
//	T' = 2Z^2 - (Y^2-X^2)
func (p projective) dbl() completed {
	xx := p.X.Square()
	yy := p.Y.Square()
	b := p.Z.SquareAndDouble()
	aa := p.X.Add(p.Y).Square()
	yn := yy.Add(xx)
	zn := yy.Subtract(xx)
	return completed{
		X: aa.Subtract(yn),
		Y: yn,
		Z: zn,
		T: b.Subtract(zn),
	}
}

func (p extended) dbl() completed {
	return p.toProjective().dbl()
}

// madd adds an affine point given in precomputed form.
func (p extended) madd(q precomputed) completed {
	a := p.Y.Add(p.X).Multiply(q.yPlusX)
	b := p.Y.Subtract(p.X).Multiply(q.yMinusX)
	c := q.xy2d.Multiply(p.T)
	d := p.Z.Add(p.Z)
	return completed{
		X: a.Subtract(b),
		Y: a.Add(b),
		Z: d.Add(c),
		T: d.Subtract(c),
	}
}

// msub subtracts an affine point given in precomputed form. Negating q swaps
// y+x with y-x and flips the sign of 2dxy.
func (p extended) msub(q precomputed) completed {
	a := p.Y.Add(p.X).Multiply(q.yMinusX)
	b := p.Y.Subtract(p.X).Multiply(q.yPlusX)
	c := q.xy2d.Multiply(p.T)
	d := p.Z.Add(p.Z)
	return completed{
		X: a.Subtract(b),
		Y: a.Add(b),
		Z: d.Subtract(c),
		T: d.Add(c),
	}
}

func (p extended) add(q cached) completed {
	a := p.Y.Add(p.X).Multiply(q.yPlusX)
	b := p.Y.Subtract(p.X).Multiply(q.yMinusX)
	c := q.T2d.Multiply(p.T)
	zz := p.Z.Multiply(q.Z)
	d := zz.Add(zz)
	return completed{
		X: a.Subtract(b),
		Y: a.Add(b),
		Z: d.Add(c),
		T: d.Subtract(c),
	}
}

func (p extended) sub(q cached) completed {
	a := p.Y.Add(p.X).Multiply(q.yMinusX)
	b := p.Y.Subtract(p.X).Multiply(q.yPlusX)
	c := q.T2d.Multiply(p.T)
	zz := p.Z.Multiply(q.Z)
	d := zz.Add(zz)
	return completed{
		X: a.Subtract(b),
		Y: a.Add(b),
		Z: d.Subtract(c),
		T: d.Add(c),
	}
}

// negate returns the identity minus p.
func (p extended) negate() extended {
	return extendedZero.sub(p.toCached()).toExtended()
}

// affine returns (X/Z, Y/Z).
func (p projective) affine() affineCoords {
	recip := p.Z.Invert()
	return affineCoords{x: p.X.Multiply(recip), y: p.Y.Multiply(recip)}
}

// encode writes y with the sign of x in bit 255.
func (p projective) encode() [32]byte {
	a := p.affine()
	s := a.y.Encode()
	if a.x.IsNegative() {
		s[31] |= 0x80
	}
	return s
}

// onCurve checks 1 + d x^2 y^2 + x^2 == y^2.
func (a affineCoords) onCurve() bool {
	xx := a.x.Square()
	yy := a.y.Square()
	dxxyy := curveD.Multiply(xx).Multiply(yy)
	return FieldOne.Add(dxxyy).Add(xx).Equal(yy)
}

func (p projective) equal(q projective) bool {
	if p.Z.Equal(q.Z) {
		return p.X.Equal(q.X) && p.Y.Equal(q.Y)
	}
	return p.X.Multiply(q.Z).Equal(q.X.Multiply(p.Z)) &&
		p.Y.Multiply(q.Z).Equal(q.Y.Multiply(p.Z))
}

func (p precomputed) equal(q precomputed) bool {
	return p.yPlusX.Equal(q.yPlusX) && p.yMinusX.Equal(q.yMinusX) && p.xy2d.Equal(q.xy2d)
}

func (p cached) equal(q cached) bool {
	if p.Z.Equal(q.Z) {
		return p.yPlusX.Equal(q.yPlusX) && p.yMinusX.Equal(q.yMinusX) && p.T2d.Equal(q.T2d)
	}
	return p.yPlusX.Multiply(q.Z).Equal(q.yPlusX.Multiply(p.Z)) &&
		p.yMinusX.Multiply(q.Z).Equal(q.yMinusX.Multiply(p.Z)) &&
		p.T2d.Multiply(q.Z).Equal(q.T2d.Multiply(p.Z))
}

// cmov replaces p with q when b == 1, in constant time.
func (p *precomputed) cmov(q *precomputed, b int32) {
	p.yPlusX.cmov(&q.yPlusX, b)
	p.yMinusX.cmov(&q.yMinusX, b)
	p.xy2d.cmov(&q.xy2d, b)
}
