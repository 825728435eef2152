package treezdd

// config holds Engine construction parameters.
type config struct {
	// nodeCapacity pre-sizes the unique node table.
	nodeCapacity int

	// cacheCapacity pre-sizes the CrossUnion/Union operation caches.
	cacheCapacity int

	// table, cu, un, when non-nil, are reused instead of freshly
	// allocated — the "shared caches across calls" optimization of
	// spec.md §9: two calls against the same triple produce
	// node-identical results for identical subexpressions.
	table *Table
	cu    opCache
	un    opCache
}

// Option configures Engine construction using the functional options
// pattern.
type Option func(*config)

// WithNodeCapacity pre-allocates storage for roughly the given number of
// internal ZDD nodes, avoiding reallocation during a large lowering.
//
// If n <= 0 the option has no effect.
func WithNodeCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.nodeCapacity = n
		}
	}
}

// WithCacheCapacity pre-allocates storage for roughly the given number of
// entries in each of the Union and CrossUnion operation caches.
//
// If n <= 0 the option has no effect.
func WithCacheCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.cacheCapacity = n
		}
	}
}

// WithSharedCaches reuses an existing (Table, CrossUnion cache, Union
// cache) triple instead of allocating a fresh one.
//
// Per spec.md §3 and §5, the caller is responsible for ensuring every
// Engine sharing this triple is used from a single goroutine at a time,
// and that no two Engines sharing only *part* of the triple are used
// together — a Table must only ever be paired with caches keyed against
// its own NodeIDs.
func WithSharedCaches(e *Engine) Option {
	return func(c *config) {
		c.table = e.table
		c.cu = e.cu
		c.un = e.un
	}
}

// newConfig applies defaults and then the supplied options in order.
func newConfig(opts ...Option) *config {
	cfg := &config{
		nodeCapacity:  0,
		cacheCapacity: 0,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
