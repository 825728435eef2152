package treezdd

// opCache memoizes a commutative binary ZDD operation. Keys are always
// canonicalized (smaller NodeID first) before lookup or insertion, per
// spec.md §4.3/§4.4's "canonicalize by ordering the pair" rule — this
// halves cache occupancy since op(a,b) and op(b,a) share one entry.
type opCache map[[2]NodeID]NodeID

func (c opCache) get(a, b NodeID) (NodeID, bool) {
	if a > b {
		a, b = b, a
	}
	id, ok := c[[2]NodeID{a, b}]
	return id, ok
}

func (c opCache) put(a, b NodeID, result NodeID) {
	if a > b {
		a, b = b, a
	}
	c[[2]NodeID{a, b}] = result
}

// Engine bundles the unique node table with the two binary-operation
// caches of spec.md §3: cu for CrossUnion, un for Union. They are kept
// separate because the two operations never share an entry.
//
// All nodes produced by an Engine's Trees/Subtrees/Union/CrossUnion calls
// live in its Table. Per spec.md §5, an Engine is not safe for concurrent
// use; independent parallel computations must each construct their own
// Engine (or explicitly opt into WithSharedCaches and serialize access
// themselves).
type Engine struct {
	table *Table
	cu    opCache
	un    opCache
}

// NewEngine creates an Engine with a fresh Table and caches, or with a
// shared triple if WithSharedCaches is supplied.
func NewEngine(opts ...Option) *Engine {
	cfg := newConfig(opts...)

	e := &Engine{
		table: cfg.table,
		cu:    cfg.cu,
		un:    cfg.un,
	}

	if e.table == nil {
		e.table = NewTableWithCapacity(cfg.nodeCapacity)
	}
	if e.cu == nil {
		e.cu = make(opCache, cfg.cacheCapacity)
	}
	if e.un == nil {
		e.un = make(opCache, cfg.cacheCapacity)
	}

	return e
}

// Table exposes the Engine's unique node table for read-only inspection
// (Var/Hi/Lo) and Size, per the ZDD-layer interface of spec.md §6.
func (e *Engine) Table() *Table {
	return e.table
}

// Singleton returns the ZDD denoting {{v}}.
func (e *Engine) Singleton(v uint64) NodeID {
	return e.table.Singleton(v)
}

// Union computes the set-theoretic union of a and b (spec.md §4.3).
func (e *Engine) Union(a, b NodeID) NodeID {
	return union(e.table, e.un, a, b)
}

// CrossUnion computes the pairwise union of set-members of a and b
// (spec.md §4.4).
func (e *Engine) CrossUnion(a, b NodeID) NodeID {
	return crossUnion(e.table, e.cu, e.un, a, b)
}

// Trees lowers expr into the ZDD whose elements are exactly the trees it
// describes (spec.md §4.1).
func (e *Engine) Trees(expr Expr) NodeID {
	return trees(expr, e.table, e.cu, e.un, 1)
}

// Subtrees lowers expr into the ZDD whose elements are all subtrees
// (including the empty prefix) of every tree expr describes (spec.md
// §4.1).
func (e *Engine) Subtrees(expr Expr) NodeID {
	return subtrees(expr, e.table, e.cu, e.un, 1)
}
