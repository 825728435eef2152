package treezdd

// crossUnion computes the pairwise union of set-members of a and b:
// { S ∪ T | S ∈ den(a), T ∈ den(b) } (spec.md §4.4).
//
// Identities: crossUnion(Bot, x) == Bot, crossUnion(Top, x) == x. As in
// union, the pair is canonicalized (smaller NodeID first) before the
// cache lookup since crossUnion is commutative.
func crossUnion(t *Table, cu, un opCache, a, b NodeID) NodeID {
	if a == Bot || b == Bot {
		return Bot
	}
	if a == Top {
		return b
	}
	if b == Top {
		return a
	}

	if a > b {
		a, b = b, a
	}

	if result, ok := cu.get(a, b); ok {
		return result
	}

	va, vb := t.varOf(a), t.varOf(b)

	var result NodeID
	switch {
	case va < vb:
		result = t.make(va, crossUnion(t, cu, un, t.Hi(a), b), crossUnion(t, cu, un, t.Lo(a), b))
	case va > vb:
		result = t.make(vb, crossUnion(t, cu, un, a, t.Hi(b)), crossUnion(t, cu, un, a, t.Lo(b)))
	default:
		haHb := crossUnion(t, cu, un, t.Hi(a), t.Hi(b))
		haLb := crossUnion(t, cu, un, t.Hi(a), t.Lo(b))
		laHb := crossUnion(t, cu, un, t.Lo(a), t.Hi(b))
		hi := union(t, un, haHb, union(t, un, haLb, laHb))
		lo := crossUnion(t, cu, un, t.Lo(a), t.Lo(b))
		result = t.make(va, hi, lo)
	}

	cu.put(a, b, result)
	return result
}

// crossUnionAll folds crossUnion over zdds left-to-right, starting from
// Top, per spec.md §4.4 ("crossUnion on an array of ZDDs is the
// left-to-right fold starting from Top").
func crossUnionAll(t *Table, cu, un opCache, zdds []NodeID) NodeID {
	result := Top
	for _, z := range zdds {
		result = crossUnion(t, cu, un, result, z)
	}
	return result
}

// unionAll folds union over zdds left-to-right, starting from Bot.
func unionAll(t *Table, un opCache, zdds []NodeID) NodeID {
	result := Bot
	for _, z := range zdds {
		result = union(t, un, result, z)
	}
	return result
}
