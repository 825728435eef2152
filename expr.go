package treezdd

// Tag identifies which of the five tree-set expression variants an Expr
// holds. Tag values match the wire format of spec.md §4.5.
type Tag uint8

const (
	TagBot     Tag = 0
	TagTop     Tag = 1
	TagPrefix  Tag = 2
	TagProduct Tag = 3
	TagSum     Tag = 4
)

func (tag Tag) String() string {
	switch tag {
	case TagBot:
		return "Bot"
	case TagTop:
		return "Top"
	case TagPrefix:
		return "Prefix"
	case TagProduct:
		return "Product"
	case TagSum:
		return "Sum"
	default:
		return "Unknown"
	}
}

// Expr is an immutable tree-set expression: Bot, Top, Prefix(symbol,
// child), Product(children), or Sum(children) (spec.md §3). The variant
// is closed and small, so a single tagged struct is used rather than an
// interface with one implementation per variant — constructors below are
// the only supported way to build one, keeping the representation
// internally consistent.
//
// Expressions are purely functional: constructors may share children
// freely, and an Expr value itself is never mutated after construction.
type Expr struct {
	tag      Tag
	symbol   Symbol
	child    *Expr
	children []Expr
}

// Tag reports which variant expr holds.
func (expr Expr) Tag() Tag { return expr.tag }

// Symbol returns the edge label of a Prefix expression. It is only
// meaningful when Tag() == TagPrefix.
func (expr Expr) Symbol() Symbol { return expr.symbol }

// Child returns the child of a Prefix expression. It is only meaningful
// when Tag() == TagPrefix.
func (expr Expr) Child() Expr { return *expr.child }

// Children returns the ordered children of a Product or Sum expression.
// It is only meaningful when Tag() is TagProduct or TagSum.
func (expr Expr) Children() []Expr { return expr.children }

// Bot is the empty set of trees.
var Bot = Expr{tag: TagBot}

// Top is the singleton set containing only the empty tree.
var Top = Expr{tag: TagTop}

// Prefix returns every tree of child with a single edge labeled symbol
// prepended at the root.
func Prefix(symbol Symbol, child Expr) Expr {
	return Expr{tag: TagPrefix, symbol: symbol, child: &child}
}

// PrefixPath right-folds a symbol sequence into nested Prefix nodes. An
// empty path returns expr unchanged.
func PrefixPath(path []Symbol, expr Expr) Expr {
	result := expr
	for i := len(path) - 1; i >= 0; i-- {
		result = Prefix(path[i], result)
	}
	return result
}

// Branch is equivalent to PrefixPath(path, Top): the singleton set
// containing exactly the one tree described by path.
func Branch(path ...Symbol) Expr {
	return PrefixPath(path, Top)
}

// Product returns the exterior product of its children: trees whose root
// has one edge per child expression, combined.
func Product(children ...Expr) Expr {
	kids := make([]Expr, len(children))
	copy(kids, children)
	return Expr{tag: TagProduct, children: kids}
}

// Sum returns the set-theoretic union of its children's sets of trees.
func Sum(children ...Expr) Expr {
	kids := make([]Expr, len(children))
	copy(kids, children)
	return Expr{tag: TagSum, children: kids}
}
