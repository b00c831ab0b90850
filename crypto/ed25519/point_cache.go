package ed25519

import (
	"github.com/ethereum/go-ethereum/common/lru"

	"github.com/nem2030/nem2030/metrics"
)

// DefaultPointCacheSize is the number of decoded points kept by
// NewPrecomputedPointCache when given a non-positive size.
const DefaultPointCacheSize = 1024

// PrecomputedPointCache keeps recently used public points decoded and with
// their sliding-window table built, keyed by encoding. Verifying many
// signatures of the same key then skips both the square root and the table
// construction. It is safe for concurrent use.
type PrecomputedPointCache struct {
	points *lru.Cache[[32]byte, *GroupElement]
}

// NewPrecomputedPointCache returns a cache holding at most size points.
func NewPrecomputedPointCache(size int) *PrecomputedPointCache {
	if size <= 0 {
		size = DefaultPointCacheSize
	}
	return &PrecomputedPointCache{points: lru.NewCache[[32]byte, *GroupElement](size)}
}

// Get returns the P3 point for the encoding, decoding it and building its
// double-scalar table on a miss. Encodings that do not decode are not cached.
func (c *PrecomputedPointCache) Get(encoding []byte) (*GroupElement, error) {
	var key [32]byte
	if len(encoding) == len(key) {
		copy(key[:], encoding)
		if p, ok := c.points.Get(key); ok {
			metrics.Ed25519PointCacheHits.Inc()
			return p, nil
		}
	}
	metrics.Ed25519PointCacheMisses.Inc()

	p, err := DecodeGroupElement(encoding)
	if err != nil {
		return nil, err
	}
	if err := p.PrecomputeForDoubleScalarMultiplication(); err != nil {
		return nil, err
	}
	if evicted := c.points.Add(key, p); evicted {
		logger().Debug("evicted cached point", "size", c.points.Len())
	}
	metrics.Ed25519PointCacheSize.Set(int64(c.points.Len()))
	return p, nil
}

// Contains reports whether the encoding is cached, without updating recency.
func (c *PrecomputedPointCache) Contains(encoding []byte) bool {
	var key [32]byte
	if len(encoding) != len(key) {
		return false
	}
	copy(key[:], encoding)
	return c.points.Contains(key)
}

// Len returns the number of cached points.
func (c *PrecomputedPointCache) Len() int {
	return c.points.Len()
}

// Purge drops every cached point.
func (c *PrecomputedPointCache) Purge() {
	c.points.Purge()
	metrics.Ed25519PointCacheSize.Set(0)
}
