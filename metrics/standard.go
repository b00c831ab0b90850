package metrics

// Pre-defined metrics for the Ed25519 arithmetic core. All metrics live in
// DefaultRegistry so they are globally accessible without passing a registry
// around.

var (
	// ---- Precomputation ----

	// Ed25519TablesSingleBuilt counts 32x8 fixed-base tables built.
	Ed25519TablesSingleBuilt = DefaultRegistry.Counter("ed25519.tables_single_built")
	// Ed25519TablesDoubleBuilt counts 8-entry sliding-window tables built.
	Ed25519TablesDoubleBuilt = DefaultRegistry.Counter("ed25519.tables_double_built")
	// Ed25519TableBuildTime records table construction time in milliseconds.
	Ed25519TableBuildTime = DefaultRegistry.Histogram("ed25519.table_build_ms")

	// ---- Scalar multiplication ----

	// Ed25519ScalarMults counts constant-time fixed-base multiplications.
	Ed25519ScalarMults = DefaultRegistry.Counter("ed25519.scalar_mults")
	// Ed25519DoubleScalarMults counts variable-time double-scalar
	// multiplications.
	Ed25519DoubleScalarMults = DefaultRegistry.Counter("ed25519.double_scalar_mults")

	// ---- Point cache ----

	// Ed25519PointCacheHits counts decoded-point cache hits.
	Ed25519PointCacheHits = DefaultRegistry.Counter("ed25519.point_cache_hits")
	// Ed25519PointCacheMisses counts decoded-point cache misses.
	Ed25519PointCacheMisses = DefaultRegistry.Counter("ed25519.point_cache_misses")
	// Ed25519PointCacheSize tracks the number of cached points.
	Ed25519PointCacheSize = DefaultRegistry.Gauge("ed25519.point_cache_size")
)
