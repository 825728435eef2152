package treezdd

// Symbol is an opaque edge label. Only equality and stable hashing are
// required of it (spec.md §3); it is treated purely as a byte sequence,
// even though Go's string equality/hashing make string the natural
// representation.
type Symbol = string

// mix is the djb2-variant rolling path hash of spec.md §4.1 / §9. Given a
// running 64-bit hash seed and a symbol's bytes, it produces the variable
// id for a Prefix node. This exact recipe is part of the wire contract:
// any divergence produces non-interoperable variable ids, so it must
// never be replaced by a "better" hash.
//
//	h ← 5381
//	for each of the four high-to-low bytes b of the low 32 bits of seed: h ← (h·33) XOR b
//	for each byte c of sym: h ← (h·33) XOR c
func mix(seed uint64, sym Symbol) uint64 {
	h := uint64(5381)

	for i := 3; i >= 0; i-- {
		b := byte(seed >> (8 * uint(i)))
		h = (h * 33) ^ uint64(b)
	}

	for i := 0; i < len(sym); i++ {
		h = (h * 33) ^ uint64(sym[i])
	}

	return h
}

// Mix exposes the path hash for external callers (e.g. to predict a
// variable id for a known path, as in the S3–S6 seed scenarios of
// spec.md §8) without constructing an Engine.
func Mix(seed uint64, sym Symbol) uint64 {
	return mix(seed, sym)
}
