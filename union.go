package treezdd

// union computes den(a) ∪ den(b) (spec.md §4.3).
//
// Identities: union(Bot, x) == x, union(a, a) == a. The pair is
// canonicalized (smaller NodeID first) before the cache lookup so that
// union(a,b) and union(b,a) share one cache entry; canonicalization is
// sound because union is commutative.
func union(t *Table, un opCache, a, b NodeID) NodeID {
	if a == Bot {
		return b
	}
	if b == Bot {
		return a
	}
	if a == b {
		return a
	}

	if a > b {
		a, b = b, a
	}

	if result, ok := un.get(a, b); ok {
		return result
	}

	va, vb := t.varOf(a), t.varOf(b)

	var result NodeID
	switch {
	case va < vb:
		result = t.make(va, t.Hi(a), union(t, un, t.Lo(a), b))
	case va > vb:
		result = t.make(vb, t.Hi(b), union(t, un, a, t.Lo(b)))
	default: // va == vb; neither a nor b is a sink since infVar only matches infVar and a==b is already handled
		result = t.make(va, union(t, un, t.Hi(a), t.Hi(b)), union(t, un, t.Lo(a), t.Lo(b)))
	}

	un.put(a, b, result)
	return result
}
