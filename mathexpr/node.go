package mathexpr

// A Kind identifies one production of the grammar.
//
// The declaration order is significant: it is the order
// in which the Generator walks the candidates when it
// samples a production.
type Kind int

const (
	VarX Kind = iota
	VarY
	RandomConstant
	Add
	Multiply
	Divide
	Sine
	Cosine
	Exp
	Sqrt
	MixUnbounded

	numKinds
)

// atomWeight splits a total atom weight of 0.4 evenly
// across the three atoms.
const atomWeight = 0.4 / 3

var kindWeights = [numKinds]float64{
	VarX:           atomWeight,
	VarY:           atomWeight,
	RandomConstant: atomWeight,
	Add:            0.15,
	Multiply:       0.15,
	Divide:         0.1,
	Sine:           0.1,
	Cosine:         0.1,
	Exp:            0.05,
	Sqrt:           0.05,
	MixUnbounded:   0.05,
}

var kindArities = [numKinds]int{
	Add:          2,
	Multiply:     2,
	Divide:       2,
	Sine:         1,
	Cosine:       1,
	Exp:          1,
	Sqrt:         1,
	MixUnbounded: 4,
}

var kindNames = [numKinds]string{
	VarX:           "x",
	VarY:           "y",
	RandomConstant: "const",
	Add:            "+",
	Multiply:       "*",
	Divide:         "/",
	Sine:           "sin",
	Cosine:         "cos",
	Exp:            "exp",
	Sqrt:           "sqrt",
	MixUnbounded:   "mix",
}

// Weight returns the relative probability with which the
// Generator selects k.
func (k Kind) Weight() float64 {
	return kindWeights[k.check()]
}

// Arity returns the number of children a node of kind k
// owns.
func (k Kind) Arity() int {
	return kindArities[k.check()]
}

// IsAtom reports whether k is a leaf production.
func (k Kind) IsAtom() bool {
	return k.Arity() == 0
}

// String returns the operator symbol or function name
// used when rendering k.
func (k Kind) String() string {
	return kindNames[k.check()]
}

func (k Kind) check() Kind {
	if k < 0 || k >= numKinds {
		panic("unknown node kind")
	}
	return k
}

// A Node is a sub-expression in a generated tree.
//
// Nodes are immutable once constructed and exclusively
// own their children.
type Node interface {
	// Kind returns the production this node instantiates.
	Kind() Kind

	// Eval evaluates the sub-expression at (x, y).
	// It has no side effects.
	Eval(x, y float64) float64

	// String returns the expression's textual formula.
	// The formula computes exactly what Eval computes.
	String() string

	// Children returns the node's children.
	// This slice should be a copy, meaning that the caller
	// may modify it.
	Children() []Node
}

// Depth returns the height of the tree rooted at n.
// A lone atom has depth 0.
func Depth(n Node) int {
	var max int
	for _, c := range n.Children() {
		if d := Depth(c) + 1; d > max {
			max = d
		}
	}
	return max
}

// Size returns the number of nodes in the tree rooted at
// n.
func Size(n Node) int {
	res := 1
	for _, c := range n.Children() {
		res += Size(c)
	}
	return res
}
