// Package treezdd provides an algebra of sets of labeled trees, represented
// and manipulated through Zero-suppressed Binary Decision Diagrams (ZDDs).
//
// A tree-set expression (Bot, Top, Prefix, Product, Sum) describes a
// possibly-huge finite collection of rooted, edge-labeled trees. Lowering
// an expression with Trees or Subtrees materializes the ZDD whose elements
// are exactly that collection, using hash-consed nodes and memoized
// Union/CrossUnion operations for structural sharing.
package treezdd

import (
	"errors"
	"fmt"
)

// Deserialization errors (spec.md §4.6, §7). These are the only error path
// in the library: lowering an expression is total and never fails.
var (
	// ErrUnknownTag indicates a tag byte outside {0,1,2,3,4} was read.
	ErrUnknownTag = errors.New("treezdd: unknown expression tag")

	// ErrShortRead indicates the byte source was truncated mid-expression.
	ErrShortRead = errors.New("treezdd: short read")

	// ErrInvalidUTF8 indicates a symbol's bytes are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("treezdd: invalid UTF-8 symbol")
)

// invariantViolation builds the panic value raised when a Table
// precondition is broken. Per spec.md §4.6 and §7 this indicates a bug in
// the caller or the library, not a recoverable failure, so it is never
// returned as an error.
func invariantViolation(msg string) error {
	return fmt.Errorf("treezdd: invariant violation: %s", msg)
}
