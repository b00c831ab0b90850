package ed25519

import "sync"

var (
	basePointOnce sync.Once
	basePoint     *GroupElement
)

// BasePoint returns the generator B in P3, decoded once per process with
// both multiplication tables already built. The returned element is shared;
// it is safe for concurrent use because arithmetic never mutates it.
func BasePoint() *GroupElement {
	basePointOnce.Do(func() {
		b, err := DecodeGroupElement(basePointEncoding[:])
		if err != nil {
			panic("ed25519: base point encoding does not decode: " + err.Error())
		}
		if err := b.PrecomputeForScalarMultiplication(); err != nil {
			panic(err)
		}
		if err := b.PrecomputeForDoubleScalarMultiplication(); err != nil {
			panic(err)
		}
		logger().Debug("initialised base point", "encoding", b.String())
		basePoint = b
	})
	return basePoint
}
