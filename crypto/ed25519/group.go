package ed25519

import (
	"fmt"
	"strings"
)

// Representation tags the coordinate system a GroupElement is held in.
type Representation int

const (
	// Affine is (x, y).
	Affine Representation = iota
	// P2 is projective (X:Y:Z) with x = X/Z, y = Y/Z.
	P2
	// P3 is extended (X:Y:Z:T) with x = X/Z, y = Y/Z, XY = ZT.
	P3
	// P1P1 is completed ((X:Z), (Y:T)) with x = X/Z, y = Y/T.
	P1P1
	// Precomputed is (y+x, y-x, 2dxy).
	Precomputed
	// Cached is (Y+X, Y-X, Z, 2dT).
	Cached
)

func (r Representation) String() string {
	switch r {
	case Affine:
		return "AFFINE"
	case P2:
		return "P2"
	case P3:
		return "P3"
	case P1P1:
		return "P1P1"
	case Precomputed:
		return "PRECOMPUTED"
	case Cached:
		return "CACHED"
	default:
		return fmt.Sprintf("Representation(%d)", int(r))
	}
}

// coordinates is implemented by the six typed coordinate structs.
type coordinates interface {
	representation() Representation
	fields() []FieldElement
}

func (affineCoords) representation() Representation { return Affine }
func (projective) representation() Representation   { return P2 }
func (extended) representation() Representation     { return P3 }
func (completed) representation() Representation    { return P1P1 }
func (precomputed) representation() Representation  { return Precomputed }
func (cached) representation() Representation       { return Cached }

func (a affineCoords) fields() []FieldElement { return []FieldElement{a.x, a.y} }
func (p projective) fields() []FieldElement   { return []FieldElement{p.X, p.Y, p.Z} }
func (p extended) fields() []FieldElement     { return []FieldElement{p.X, p.Y, p.Z, p.T} }
func (p completed) fields() []FieldElement    { return []FieldElement{p.X, p.Y, p.Z, p.T} }
func (p precomputed) fields() []FieldElement {
	return []FieldElement{p.yPlusX, p.yMinusX, p.xy2d}
}
func (p cached) fields() []FieldElement { return []FieldElement{p.yPlusX, p.yMinusX, p.Z, p.T2d} }

// GroupElement is a curve point tagged with its representation. It holds
// only the coordinates meaningful for that representation. Arithmetic never
// mutates a GroupElement; the only mutable state is the pair of lazily built
// precomputation tables, which are safe for concurrent use.
//
// A GroupElement must not be copied after first use.
type GroupElement struct {
	coords coordinates
	tables pointTables
}

func newGroupElement(c coordinates) *GroupElement {
	return &GroupElement{coords: c}
}

// NewAffine returns the point (x, y).
func NewAffine(x, y FieldElement) *GroupElement {
	return newGroupElement(affineCoords{x, y})
}

// NewP2 returns the projective point (X:Y:Z).
func NewP2(x, y, z FieldElement) *GroupElement {
	return newGroupElement(projective{x, y, z})
}

// NewP3 returns the extended point (X:Y:Z:T). T must equal XY/Z.
func NewP3(x, y, z, t FieldElement) *GroupElement {
	return newGroupElement(extended{x, y, z, t})
}

// NewP1P1 returns the completed point ((X:Z), (Y:T)).
func NewP1P1(x, y, z, t FieldElement) *GroupElement {
	return newGroupElement(completed{x, y, z, t})
}

// NewPrecomputed returns the point given as (y+x, y-x, 2dxy).
func NewPrecomputed(yPlusX, yMinusX, xy2d FieldElement) *GroupElement {
	return newGroupElement(precomputed{yPlusX, yMinusX, xy2d})
}

// NewCached returns the point given as (Y+X, Y-X, Z, 2dT).
func NewCached(yPlusX, yMinusX, z, t2d FieldElement) *GroupElement {
	return newGroupElement(cached{yPlusX, yMinusX, z, t2d})
}

// ZeroP3 returns the identity (0:1:1:0).
func ZeroP3() *GroupElement { return newGroupElement(extendedZero) }

// ZeroP2 returns the identity (0:1:1).
func ZeroP2() *GroupElement { return newGroupElement(projectiveZero) }

// ZeroPrecomputed returns the identity as (1, 1, 0).
func ZeroPrecomputed() *GroupElement { return newGroupElement(precomputedZero) }

// Representation returns the coordinate system of g.
func (g *GroupElement) Representation() Representation {
	return g.coords.representation()
}

// Coordinates returns the coordinates meaningful for the representation,
// in the order of the matching constructor.
func (g *GroupElement) Coordinates() []FieldElement {
	return g.coords.fields()
}

// ToP2 converts g to P2. Supported sources are P2, P3 and P1P1.
func (g *GroupElement) ToP2() (*GroupElement, error) { return g.ToRep(P2) }

// ToP3 converts g to P3. Supported sources are P3 and P1P1.
func (g *GroupElement) ToP3() (*GroupElement, error) { return g.ToRep(P3) }

// ToCached converts g to Cached. Supported sources are P3 and Cached.
func (g *GroupElement) ToCached() (*GroupElement, error) { return g.ToRep(Cached) }

// ToRep converts g to the target representation. The supported conversions
// are P2->P2, P3->{P2,P3,Cached}, P1P1->{P2,P3,P1P1}, Precomputed->Precomputed
// and Cached->Cached. Any other pair fails with ErrInvalidArgument. Affine
// points have no conversions at all and fail with
// ErrUnsupportedRepresentation.
func (g *GroupElement) ToRep(target Representation) (*GroupElement, error) {
	var out coordinates
	switch c := g.coords.(type) {
	case affineCoords:
		return nil, unsupported("conversion", g)
	case projective:
		if target == P2 {
			out = c
		}
	case extended:
		switch target {
		case P2:
			out = c.toProjective()
		case P3:
			out = c
		case Cached:
			out = c.toCached()
		}
	case completed:
		switch target {
		case P2:
			out = c.toProjective()
		case P3:
			out = c.toExtended()
		case P1P1:
			out = c
		}
	case precomputed:
		if target == Precomputed {
			out = c
		}
	case cached:
		if target == Cached {
			out = c
		}
	}
	if out == nil {
		return nil, fmt.Errorf("%w: no conversion from %v to %v", ErrInvalidArgument, g.Representation(), target)
	}
	return newGroupElement(out), nil
}

// Dbl returns 2g in P1P1. g must be P2 or P3.
func (g *GroupElement) Dbl() (*GroupElement, error) {
	switch c := g.coords.(type) {
	case projective:
		return newGroupElement(c.dbl()), nil
	case extended:
		return newGroupElement(c.dbl()), nil
	}
	return nil, unsupported("dbl", g)
}

// MAdd returns g + q in P1P1, for g in P3 and q in Precomputed.
func (g *GroupElement) MAdd(q *GroupElement) (*GroupElement, error) {
	p, pre, err := g.mixedOperands("madd", q)
	if err != nil {
		return nil, err
	}
	return newGroupElement(p.madd(pre)), nil
}

// MSub returns g - q in P1P1, for g in P3 and q in Precomputed.
func (g *GroupElement) MSub(q *GroupElement) (*GroupElement, error) {
	p, pre, err := g.mixedOperands("msub", q)
	if err != nil {
		return nil, err
	}
	return newGroupElement(p.msub(pre)), nil
}

// Add returns g + q in P1P1, for g in P3 and q in Cached.
func (g *GroupElement) Add(q *GroupElement) (*GroupElement, error) {
	p, c, err := g.cachedOperands("add", q)
	if err != nil {
		return nil, err
	}
	return newGroupElement(p.add(c)), nil
}

// Sub returns g - q in P1P1, for g in P3 and q in Cached.
func (g *GroupElement) Sub(q *GroupElement) (*GroupElement, error) {
	p, c, err := g.cachedOperands("sub", q)
	if err != nil {
		return nil, err
	}
	return newGroupElement(p.sub(c)), nil
}

// Negate returns -g in P3. g must be P3.
func (g *GroupElement) Negate() (*GroupElement, error) {
	p, ok := g.coords.(extended)
	if !ok {
		return nil, unsupported("negate", g)
	}
	return newGroupElement(p.negate()), nil
}

// Encode returns the 32-byte compressed encoding: y little-endian with the
// sign of x in the top bit. Elements that cannot be converted to P2 fail
// with ErrInvalidArgument, or ErrUnsupportedRepresentation for Affine.
func (g *GroupElement) Encode() ([32]byte, error) {
	p, err := g.asProjective()
	if err != nil {
		return [32]byte{}, err
	}
	return p.encode(), nil
}

// SatisfiesCurveEquation reports whether g lies on the curve. Affine points
// are checked directly; other representations go through P2, and those
// without a P2 conversion report false.
func (g *GroupElement) SatisfiesCurveEquation() bool {
	if a, ok := g.coords.(affineCoords); ok {
		return a.onCurve()
	}
	p, err := g.asProjective()
	if err != nil {
		return false
	}
	return p.affine().onCurve()
}

// Equal reports whether g and other denote the same point. other is first
// converted to g's representation; if no conversion exists the points are
// unequal. Coordinates are compared by cross-multiplication, so differing
// scale factors do not matter.
func (g *GroupElement) Equal(other *GroupElement) bool {
	if g == nil || other == nil {
		return g == other
	}
	o := other
	if other.Representation() != g.Representation() {
		var err error
		if o, err = other.ToRep(g.Representation()); err != nil {
			return false
		}
	}
	switch c := g.coords.(type) {
	case affineCoords:
		a := o.coords.(affineCoords)
		return c.x.Equal(a.x) && c.y.Equal(a.y)
	case projective:
		return c.equal(o.coords.(projective))
	case extended:
		return c.toProjective().equal(o.coords.(extended).toProjective())
	case completed:
		return c.toProjective().equal(o.coords.(completed).toProjective())
	case precomputed:
		return c.equal(o.coords.(precomputed))
	case cached:
		return c.equal(o.coords.(cached))
	}
	return false
}

// String lists the representation and its coordinates in hex.
func (g *GroupElement) String() string {
	var b strings.Builder
	b.WriteString(g.Representation().String())
	for _, f := range g.Coordinates() {
		b.WriteByte(' ')
		b.WriteString(f.String())
	}
	return b.String()
}

// asProjective returns g as P2 coordinates.
func (g *GroupElement) asProjective() (projective, error) {
	switch c := g.coords.(type) {
	case projective:
		return c, nil
	case extended:
		return c.toProjective(), nil
	case completed:
		return c.toProjective(), nil
	case affineCoords:
		return projective{}, unsupported("conversion", g)
	}
	return projective{}, fmt.Errorf("%w: no conversion from %v to %v", ErrInvalidArgument, g.Representation(), P2)
}

// asExtended returns g's P3 coordinates or ErrUnsupportedRepresentation.
func (g *GroupElement) asExtended(op string) (extended, error) {
	p, ok := g.coords.(extended)
	if !ok {
		return extended{}, unsupported(op, g)
	}
	return p, nil
}

func (g *GroupElement) mixedOperands(op string, q *GroupElement) (extended, precomputed, error) {
	p, err := g.asExtended(op)
	if err != nil {
		return extended{}, precomputed{}, err
	}
	pre, ok := q.coords.(precomputed)
	if !ok {
		return extended{}, precomputed{}, fmt.Errorf("%w: %s operand is %v, want %v", ErrUnsupportedRepresentation, op, q.Representation(), Precomputed)
	}
	return p, pre, nil
}

func (g *GroupElement) cachedOperands(op string, q *GroupElement) (extended, cached, error) {
	p, err := g.asExtended(op)
	if err != nil {
		return extended{}, cached{}, err
	}
	c, ok := q.coords.(cached)
	if !ok {
		return extended{}, cached{}, fmt.Errorf("%w: %s operand is %v, want %v", ErrUnsupportedRepresentation, op, q.Representation(), Cached)
	}
	return p, c, nil
}

func unsupported(op string, g *GroupElement) error {
	return fmt.Errorf("%w: %s on %v", ErrUnsupportedRepresentation, op, g.Representation())
}
