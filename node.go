package treezdd

import "fmt"

// NodeID represents a unique identifier for ZDD nodes.
// NodeIDs are assigned sequentially during construction and remain
// valid for the lifetime of the Table that produced them.
type NodeID uint32

// Reserved node IDs. NullNode is never a valid argument to a ZDD
// operation; Bot and Top are the two sinks of spec.md §3.
const (
	// NullNode represents an invalid or uninitialized node reference.
	NullNode NodeID = 0

	// Bot is the 0-terminal, denoting the empty family of sets (∅).
	Bot NodeID = 1

	// Top is the 1-terminal, denoting the family containing only the
	// empty set ({∅}).
	Top NodeID = 2
)

// infVar is the ordering key sinks compare as: every internal node's Var
// must be strictly less than infVar.
const infVar = ^uint64(0)

// Node represents an internal ZDD triple (var, hi, lo).
//
// ZDD nodes follow the invariants of spec.md §3:
//   - Var < varOf(hi) and Var < varOf(lo), with sinks treated as +infinity.
//   - Lo is the branch where the variable is not in the set.
//   - Hi is the branch where the variable is in the set; Hi != Bot
//     (zero-suppression).
type Node struct {
	Var uint64
	Lo  NodeID
	Hi  NodeID
}

// Table manages ZDD nodes with automatic deduplication and zero-suppression.
// It is the unique-node ("eq") cache of spec.md §3: identical (var, hi, lo)
// triples always resolve to the same NodeID.
//
// A Table is scoped to one top-level Trees/Subtrees call, or to a set of
// calls that deliberately share it via WithSharedCaches. Per spec.md §5 it
// is not safe for concurrent mutation — independent parallel computations
// must each use their own Table.
type Table struct {
	// nodes stores node data indexed by NodeID. Index 0 (NullNode), 1
	// (Bot) and 2 (Top) are reserved placeholders.
	nodes []Node

	// eq maps a node specification to its canonical NodeID.
	eq map[Node]NodeID
}

// NewTable creates a table pre-seeded with the two sinks.
func NewTable() *Table {
	return NewTableWithCapacity(0)
}

// NewTableWithCapacity pre-allocates storage for roughly the given number
// of internal nodes, beyond the three reserved IDs.
func NewTableWithCapacity(capacity int) *Table {
	return &Table{
		nodes: make([]Node, 3, 3+capacity),
		eq:    make(map[Node]NodeID, capacity),
	}
}

// varOf returns the ordering key for id, treating both sinks as +infinity.
func (t *Table) varOf(id NodeID) uint64 {
	if id == Bot || id == Top {
		return infVar
	}
	return t.nodes[id].Var
}

// GetNode retrieves an internal node by its ID.
//
// It panics with an invariantViolation if id is NullNode, a sink, or out
// of range: per spec.md §4.6 such calls are a programmer error, not a
// recoverable failure. Callers must check Bot/Top themselves before
// calling GetNode.
func (t *Table) GetNode(id NodeID) Node {
	if id == NullNode || id == Bot || id == Top || int(id) >= len(t.nodes) {
		panic(invariantViolation(fmt.Sprintf("node ID %d is not a valid internal node", id)))
	}
	return t.nodes[id]
}

// Var returns the variable of an internal node, or infVar for a sink.
// This is part of the read-only node-inspection interface of spec.md §6.
func (t *Table) Var(id NodeID) uint64 {
	if id == Bot || id == Top {
		return infVar
	}
	return t.GetNode(id).Var
}

// Hi returns the hi-branch of an internal node.
func (t *Table) Hi(id NodeID) NodeID {
	return t.GetNode(id).Hi
}

// Lo returns the lo-branch of an internal node.
func (t *Table) Lo(id NodeID) NodeID {
	return t.GetNode(id).Lo
}

// Size returns the number of internal nodes allocated so far (excluding
// the null placeholder and the two sinks).
func (t *Table) Size() int {
	return len(t.nodes) - 3
}

// make is the unique-node constructor of spec.md §4.2:
//  1. zero-suppression — hi == Bot collapses the node to lo.
//  2. hash-consing — an existing (var, hi, lo) triple is reused.
//  3. otherwise a fresh node is allocated and registered.
//
// The preconditions var < varOf(hi) and var < varOf(lo) are asserted and
// any violation panics rather than returning an error (spec.md §4.6, §7).
func (t *Table) make(v uint64, hi, lo NodeID) NodeID {
	if hi == Bot {
		return lo
	}

	if v >= t.varOf(hi) || v >= t.varOf(lo) {
		panic(invariantViolation(fmt.Sprintf(
			"make: var %d must be strictly less than var(hi)=%d and var(lo)=%d",
			v, t.varOf(hi), t.varOf(lo))))
	}

	key := Node{Var: v, Hi: hi, Lo: lo}
	if id, ok := t.eq[key]; ok {
		return id
	}

	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, key)
	t.eq[key] = id
	return id
}

// Singleton returns the ZDD denoting {{v}}.
func (t *Table) Singleton(v uint64) NodeID {
	return t.make(v, Top, Bot)
}
