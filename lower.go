package treezdd

// trees lowers expr into the ZDD whose elements are exactly the trees it
// describes, with variable ids derived under hash prefix h (spec.md
// §4.1). The top-level call seeds h at 1.
func trees(expr Expr, t *Table, cu, un opCache, h uint64) NodeID {
	switch expr.tag {
	case TagBot:
		return Bot

	case TagTop:
		return Top

	case TagPrefix:
		hPrime := mix(h, expr.symbol)
		return crossUnion(t, cu, un, t.Singleton(hPrime), trees(*expr.child, t, cu, un, hPrime))

	case TagProduct:
		zdds := make([]NodeID, len(expr.children))
		for i, child := range expr.children {
			zdds[i] = trees(child, t, cu, un, h)
		}
		return crossUnionAll(t, cu, un, zdds)

	case TagSum:
		zdds := make([]NodeID, len(expr.children))
		for i, child := range expr.children {
			zdds[i] = trees(child, t, cu, un, h)
		}
		return unionAll(t, un, zdds)

	default:
		panic(invariantViolation("trees: unknown expression tag"))
	}
}

// subtrees lowers expr into the ZDD whose elements are all subtrees
// (including the empty prefix) of every tree expr describes (spec.md
// §4.1). A "subtree" here is any prefix-closed selection of edges
// starting from some node.
func subtrees(expr Expr, t *Table, cu, un opCache, h uint64) NodeID {
	switch expr.tag {
	case TagBot:
		return Bot

	case TagTop:
		return Top

	case TagPrefix:
		hPrime := mix(h, expr.symbol)
		contribution := crossUnion(t, cu, un, t.Singleton(hPrime), subtrees(*expr.child, t, cu, un, hPrime))
		// The Top contribution represents choosing the empty-prefix
		// subtree at this position: selecting nothing is always legal.
		return union(t, un, Top, contribution)

	case TagProduct:
		zdds := make([]NodeID, len(expr.children))
		for i, child := range expr.children {
			zdds[i] = subtrees(child, t, cu, un, h)
		}
		return crossUnionAll(t, cu, un, zdds)

	case TagSum:
		zdds := make([]NodeID, len(expr.children))
		for i, child := range expr.children {
			zdds[i] = subtrees(child, t, cu, un, h)
		}
		return unionAll(t, un, zdds)

	default:
		panic(invariantViolation("subtrees: unknown expression tag"))
	}
}

// Trees is the package-level convenience entry point: it lowers expr
// using a fresh Engine and returns both the Engine (for node inspection)
// and the resulting ZDD root.
func Trees(expr Expr) (*Engine, NodeID) {
	e := NewEngine()
	return e, e.Trees(expr)
}

// Subtrees is the package-level convenience entry point analogous to
// Trees, for the subtrees operation.
func Subtrees(expr Expr) (*Engine, NodeID) {
	e := NewEngine()
	return e, e.Subtrees(expr)
}
