package treezdd

import (
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"
)

// WriteExpr serializes expr to w using the tagged, big-endian,
// self-delimiting binary format of spec.md §4.5/§6:
//
//   - a one-byte tag (Bot=0, Top=1, Prefix=2, Product=3, Sum=4)
//   - Prefix: a 2-byte big-endian length-prefixed UTF-8 symbol, then the
//     child
//   - Product/Sum: a 4-byte big-endian child count, then each child
func WriteExpr(w io.Writer, expr Expr) error {
	if _, err := w.Write([]byte{byte(expr.tag)}); err != nil {
		return err
	}

	switch expr.tag {
	case TagBot, TagTop:
		return nil

	case TagPrefix:
		if err := writeSymbol(w, expr.symbol); err != nil {
			return err
		}
		return WriteExpr(w, *expr.child)

	case TagProduct, TagSum:
		return writeChildren(w, expr.children)

	default:
		panic(invariantViolation("WriteExpr: unknown expression tag"))
	}
}

func writeSymbol(w io.Writer, sym Symbol) error {
	if len(sym) > 0xFFFF {
		panic(invariantViolation("WriteExpr: symbol too long for 2-byte length prefix"))
	}
	var length [2]byte
	binary.BigEndian.PutUint16(length[:], uint16(len(sym)))
	if _, err := w.Write(length[:]); err != nil {
		return err
	}
	_, err := io.WriteString(w, sym)
	return err
}

func writeChildren(w io.Writer, children []Expr) error {
	var count [4]byte
	binary.BigEndian.PutUint32(count[:], uint32(len(children)))
	if _, err := w.Write(count[:]); err != nil {
		return err
	}
	for _, child := range children {
		if err := WriteExpr(w, child); err != nil {
			return err
		}
	}
	return nil
}

// ReadExpr deserializes an Expr from r, the inverse of WriteExpr.
//
// It returns ErrUnknownTag for a tag byte outside {0,1,2,3,4},
// ErrShortRead (wrapping the underlying io error) for a truncated
// stream, and ErrInvalidUTF8 if a symbol's bytes are not valid UTF-8.
// Any other error reported by r is returned unchanged. Lowering is total,
// so deserialization is the only failure path in the library (spec.md
// §4.6).
func ReadExpr(r io.Reader) (Expr, error) {
	var tagByte [1]byte
	if _, err := io.ReadFull(r, tagByte[:]); err != nil {
		return Expr{}, wrapShortRead(err)
	}

	switch Tag(tagByte[0]) {
	case TagBot:
		return Bot, nil

	case TagTop:
		return Top, nil

	case TagPrefix:
		sym, err := readSymbol(r)
		if err != nil {
			return Expr{}, err
		}
		child, err := ReadExpr(r)
		if err != nil {
			return Expr{}, err
		}
		return Prefix(sym, child), nil

	case TagProduct:
		children, err := readChildren(r)
		if err != nil {
			return Expr{}, err
		}
		return Product(children...), nil

	case TagSum:
		children, err := readChildren(r)
		if err != nil {
			return Expr{}, err
		}
		return Sum(children...), nil

	default:
		return Expr{}, ErrUnknownTag
	}
}

func readSymbol(r io.Reader) (Symbol, error) {
	var length [2]byte
	if _, err := io.ReadFull(r, length[:]); err != nil {
		return "", wrapShortRead(err)
	}
	n := binary.BigEndian.Uint16(length[:])

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", wrapShortRead(err)
	}

	if !utf8.Valid(buf) {
		return "", ErrInvalidUTF8
	}

	return string(buf), nil
}

// maxPreallocChildren bounds the initial allocation readChildren makes from
// an untrusted child count, so a truncated stream claiming billions of
// children fails with ErrShortRead instead of attempting a multi-GB
// allocation up front. Larger counts still work; they just grow via append.
const maxPreallocChildren = 1 << 16

func readChildren(r io.Reader) ([]Expr, error) {
	var count [4]byte
	if _, err := io.ReadFull(r, count[:]); err != nil {
		return nil, wrapShortRead(err)
	}
	n := binary.BigEndian.Uint32(count[:])

	prealloc := n
	if prealloc > maxPreallocChildren {
		prealloc = maxPreallocChildren
	}
	children := make([]Expr, 0, prealloc)
	for i := uint32(0); i < n; i++ {
		child, err := ReadExpr(r)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

func wrapShortRead(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: %w", ErrShortRead, err)
	}
	return err
}
