package ed25519

// Exponentiation by a fixed exponent is written as an addition chain over a
// small register file. Register 0 holds the input; every step squares one
// register a number of times, optionally multiplies by another register (read
// before the write), and stores the product.

const (
	regZ = iota
	reg0
	reg1
	reg2
	numChainRegs

	noMul = -1
)

type chainStep struct {
	from      int
	squarings int
	times     int
	to        int
}

type addChain struct {
	steps  []chainStep
	result int
}

// chainTo2p250 leaves z^(2^250 - 1) in reg1 and z^11 in reg0.
var chainTo2p250 = []chainStep{
	{regZ, 1, noMul, reg0},  // z^2
	{reg0, 2, noMul, reg1},  // z^8
	{reg1, 0, regZ, reg1},   // z^9
	{reg0, 0, reg1, reg0},   // z^11
	{reg0, 1, noMul, reg2},  // z^22
	{reg2, 0, reg1, reg1},   // z^(2^5 - 1)
	{reg1, 5, reg1, reg1},   // z^(2^10 - 1)
	{reg1, 10, reg1, reg2},  // z^(2^20 - 1)
	{reg2, 20, reg2, reg2},  // z^(2^40 - 1)
	{reg2, 10, reg1, reg1},  // z^(2^50 - 1)
	{reg1, 50, reg1, reg2},  // z^(2^100 - 1)
	{reg2, 100, reg2, reg2}, // z^(2^200 - 1)
	{reg2, 50, reg1, reg1},  // z^(2^250 - 1)
}

var (
	// invertChain raises to p - 2 = 2^255 - 21.
	invertChain = addChain{
		steps:  append(append([]chainStep{}, chainTo2p250...), chainStep{reg1, 5, reg0, reg0}),
		result: reg0,
	}

	// pow22523Chain raises to (p - 5) / 8 = 2^252 - 3.
	pow22523Chain = addChain{
		steps:  append(append([]chainStep{}, chainTo2p250...), chainStep{reg1, 2, regZ, reg0}),
		result: reg0,
	}
)

func (c addChain) run(z FieldElement) FieldElement {
	var regs [numChainRegs]FieldElement
	regs[regZ] = z
	for _, s := range c.steps {
		x := regs[s.from]
		for i := 0; i < s.squarings; i++ {
			x = x.Square()
		}
		if s.times != noMul {
			x = x.Multiply(regs[s.times])
		}
		regs[s.to] = x
	}
	return regs[c.result]
}

// Invert returns f^-1 via Fermat's little theorem (f^(p-2)). The inverse of
// zero is zero.
func (f FieldElement) Invert() FieldElement {
	return invertChain.run(f)
}

// Pow22523 returns f^((p-5)/8), the exponent used to take square roots while
// decoding points.
func (f FieldElement) Pow22523() FieldElement {
	return pow22523Chain.run(f)
}
