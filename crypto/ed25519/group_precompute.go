package ed25519

import (
	"sync"
	"sync/atomic"

	"github.com/nem2030/nem2030/log"
	"github.com/nem2030/nem2030/metrics"
)

// pointTables holds the two lazily built multiple tables of a P3 point. Each
// table is built at most once. IsPrecomputed* reads the atomic pointer and
// never triggers a build.
type pointTables struct {
	singleOnce sync.Once
	single     atomic.Pointer[[32][8]precomputed]
	doubleOnce sync.Once
	double     atomic.Pointer[[8]precomputed]
}

func logger() *log.Logger {
	return log.Default().Module("ed25519")
}

// PrecomputeForScalarMultiplication builds the [32][8] table used by
// ScalarMultiply, where entry [i][j] is (j+1) * 256^i * g. It is a no-op if
// the table already exists. g must be P3.
func (g *GroupElement) PrecomputeForScalarMultiplication() error {
	p, err := g.asExtended("precompute")
	if err != nil {
		return err
	}
	g.singleTable(p)
	return nil
}

// PrecomputeForDoubleScalarMultiplication builds the 8-entry table used by
// DoubleScalarMultiplyVariableTime, where entry i is (2i+1) * g. It is a
// no-op if the table already exists. g must be P3.
func (g *GroupElement) PrecomputeForDoubleScalarMultiplication() error {
	p, err := g.asExtended("precompute")
	if err != nil {
		return err
	}
	g.doubleTable(p)
	return nil
}

// IsPrecomputedForScalarMultiplication reports whether the fixed-base table
// has been built.
func (g *GroupElement) IsPrecomputedForScalarMultiplication() bool {
	return g.tables.single.Load() != nil
}

// IsPrecomputedForDoubleScalarMultiplication reports whether the
// sliding-window table has been built.
func (g *GroupElement) IsPrecomputedForDoubleScalarMultiplication() bool {
	return g.tables.double.Load() != nil
}

func (g *GroupElement) singleTable(p extended) *[32][8]precomputed {
	g.tables.singleOnce.Do(func() {
		timer := metrics.NewTimer(metrics.Ed25519TableBuildTime)
		g.tables.single.Store(buildSingleTable(p))
		metrics.Ed25519TablesSingleBuilt.Inc()
		logger().Debug("built fixed-base table", "entries", 32*8, "elapsed", timer.Stop())
	})
	return g.tables.single.Load()
}

func (g *GroupElement) doubleTable(p extended) *[8]precomputed {
	g.tables.doubleOnce.Do(func() {
		timer := metrics.NewTimer(metrics.Ed25519TableBuildTime)
		g.tables.double.Store(buildDoubleTable(p))
		metrics.Ed25519TablesDoubleBuilt.Inc()
		logger().Debug("built sliding-window table", "entries", 8, "elapsed", timer.Stop())
	})
	return g.tables.double.Load()
}

// buildSingleTable fills row i with 1..8 times 256^i * p. Rows step by 256
// because each radix-16 pass covers every second nibble.
func buildSingleTable(p extended) *[32][8]precomputed {
	var table [32][8]precomputed
	bi := p
	for i := range table {
		bij := bi
		biCached := bi.toCached()
		for j := range table[i] {
			table[i][j] = bij.toPrecomputed()
			bij = bij.add(biCached).toExtended()
		}
		for k := 0; k < 8; k++ {
			bi = bi.add(bi.toCached()).toExtended()
		}
	}
	return &table
}

// buildDoubleTable fills entry i with (2i+1) * p.
func buildDoubleTable(p extended) *[8]precomputed {
	var table [8]precomputed
	bi := p
	for i := range table {
		table[i] = bi.toPrecomputed()
		bi = p.add(p.add(bi.toCached()).toExtended().toCached()).toExtended()
	}
	return &table
}
