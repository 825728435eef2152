package treezdd

import "testing"

func TestCrossUnionIdentities(t *testing.T) {
	e := NewEngine()
	x := e.Union(e.Singleton(1), e.Singleton(2))

	if got := e.CrossUnion(x, Top); got != x {
		t.Fatalf("crossUnion(x, Top) = %v, want x = %v", got, x)
	}
	if got := e.CrossUnion(Top, x); got != x {
		t.Fatalf("crossUnion(Top, x) = %v, want x = %v", got, x)
	}
	if got := e.CrossUnion(x, Bot); got != Bot {
		t.Fatalf("crossUnion(x, Bot) = %v, want Bot", got)
	}
	if got := e.CrossUnion(Bot, x); got != Bot {
		t.Fatalf("crossUnion(Bot, x) = %v, want Bot", got)
	}
}

func TestCrossUnionDenotation(t *testing.T) {
	e := NewEngine()
	a := e.Singleton(1)
	b := e.Singleton(2)

	result := e.CrossUnion(a, b)
	got := enumerate(e.table, result)
	want := [][]uint64{{1, 2}}

	if !setsEqual(got, want) {
		t.Fatalf("crossUnion(singleton(1), singleton(2)) denotes %v, want %v", got, want)
	}
}

func TestCrossUnionOfSumsDenotation(t *testing.T) {
	e := NewEngine()
	// {{1},{2}} x {{3},{4}} = {{1,3},{1,4},{2,3},{2,4}}
	a := e.Union(e.Singleton(1), e.Singleton(2))
	b := e.Union(e.Singleton(3), e.Singleton(4))

	result := e.CrossUnion(a, b)
	got := enumerate(e.table, result)
	want := [][]uint64{{1, 3}, {1, 4}, {2, 3}, {2, 4}}

	if !setsEqual(got, want) {
		t.Fatalf("crossUnion denotes %v, want %v", got, want)
	}
}

func TestCrossUnionCommutative(t *testing.T) {
	e := NewEngine()
	a := e.Union(e.Singleton(1), e.Singleton(3))
	b := e.Union(e.Singleton(2), e.Singleton(5))

	ab := e.CrossUnion(a, b)
	ba := e.CrossUnion(b, a)

	if !setsEqual(enumerate(e.table, ab), enumerate(e.table, ba)) {
		t.Fatal("crossUnion must be commutative")
	}
}

func TestCrossUnionAssociative(t *testing.T) {
	e := NewEngine()
	a := e.Union(e.Singleton(1), e.Singleton(2))
	b := e.Union(e.Singleton(3), e.Singleton(4))
	c := e.Union(e.Singleton(5), e.Singleton(6))

	left := e.CrossUnion(e.CrossUnion(a, b), c)
	right := e.CrossUnion(a, e.CrossUnion(b, c))

	if !setsEqual(enumerate(e.table, left), enumerate(e.table, right)) {
		t.Fatal("crossUnion must be associative")
	}
}

func TestCrossUnionDistributesOverUnion(t *testing.T) {
	e := NewEngine()
	a := e.Singleton(1)
	b := e.Union(e.Singleton(2), e.Singleton(3))
	c := e.Union(e.Singleton(4), e.Singleton(5))

	left := e.CrossUnion(a, e.Union(b, c))
	right := e.Union(e.CrossUnion(a, b), e.CrossUnion(a, c))

	if !setsEqual(enumerate(e.table, left), enumerate(e.table, right)) {
		t.Fatal("crossUnion(a, union(b,c)) must equal union(crossUnion(a,b), crossUnion(a,c))")
	}
}
