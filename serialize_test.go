package treezdd

import (
	"bytes"
	"errors"
	"testing"
)

func exprEqual(a, b Expr) bool {
	if a.tag != b.tag {
		return false
	}
	switch a.tag {
	case TagBot, TagTop:
		return true
	case TagPrefix:
		return a.symbol == b.symbol && exprEqual(*a.child, *b.child)
	case TagProduct, TagSum:
		if len(a.children) != len(b.children) {
			return false
		}
		for i := range a.children {
			if !exprEqual(a.children[i], b.children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func TestRoundTrip(t *testing.T) {
	exprs := []Expr{
		Bot,
		Top,
		Branch("a"),
		Branch("a", "b", "c"),
		Product(Branch("a"), Branch("b")),
		Sum(Branch("a"), Branch("b"), Bot, Top),
		Sum(Product(Branch("a"), Sum(Branch("b"), Top)), Bot),
	}

	for i, e := range exprs {
		var buf bytes.Buffer
		if err := WriteExpr(&buf, e); err != nil {
			t.Fatalf("case %d: WriteExpr failed: %v", i, err)
		}

		got, err := ReadExpr(&buf)
		if err != nil {
			t.Fatalf("case %d: ReadExpr failed: %v", i, err)
		}

		if !exprEqual(e, got) {
			t.Fatalf("case %d: round-trip mismatch: got %+v, want %+v", i, got, e)
		}
	}
}

func TestReadExprUnknownTag(t *testing.T) {
	buf := bytes.NewReader([]byte{0xFF})
	_, err := ReadExpr(buf)
	if !errors.Is(err, ErrUnknownTag) {
		t.Fatalf("expected ErrUnknownTag, got %v", err)
	}
}

func TestReadExprShortRead(t *testing.T) {
	// Tag byte for Prefix, then nothing: truncated before the length prefix.
	buf := bytes.NewReader([]byte{byte(TagPrefix)})
	_, err := ReadExpr(buf)
	if !errors.Is(err, ErrShortRead) {
		t.Fatalf("expected ErrShortRead, got %v", err)
	}
}

func TestReadExprInvalidUTF8(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(byte(TagPrefix))
	buf.Write([]byte{0x00, 0x01}) // length = 1
	buf.Write([]byte{0xFF})       // invalid UTF-8 byte

	_, err := ReadExpr(&buf)
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestWireTagValues(t *testing.T) {
	cases := []struct {
		expr Expr
		tag  byte
	}{
		{Bot, 0},
		{Top, 1},
		{Branch("a"), 2},
		{Product(), 3},
		{Sum(), 4},
	}

	for _, c := range cases {
		var buf bytes.Buffer
		if err := WriteExpr(&buf, c.expr); err != nil {
			t.Fatal(err)
		}
		if buf.Bytes()[0] != c.tag {
			t.Fatalf("tag(%v) = %d, want %d", c.expr.Tag(), buf.Bytes()[0], c.tag)
		}
	}
}
