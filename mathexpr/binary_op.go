package mathexpr

import "math"

// DivideEpsilon is the magnitude below which a Divide
// denominator is treated as zero.
const DivideEpsilon = 1e-10

// BinaryOp is a binary operation between two nodes.
type BinaryOp struct {
	op    Kind
	left  Node
	right Node
}

// NewBinaryOp creates a binary operation.
// The kind must be Add, Multiply, or Divide.
func NewBinaryOp(op Kind, left, right Node) *BinaryOp {
	if op.Arity() != 2 {
		panic("not a binary operator: " + op.String())
	}
	if left == nil || right == nil {
		panic("nil operand")
	}
	return &BinaryOp{op: op, left: left, right: right}
}

// Kind returns the operator.
func (b *BinaryOp) Kind() Kind {
	return b.op
}

// Eval applies the operator to both operands.
//
// Division by a denominator smaller than DivideEpsilon in
// magnitude yields 1.
func (b *BinaryOp) Eval(x, y float64) float64 {
	switch b.op {
	case Add:
		return b.left.Eval(x, y) + b.right.Eval(x, y)
	case Multiply:
		return b.left.Eval(x, y) * b.right.Eval(x, y)
	case Divide:
		denom := b.right.Eval(x, y)
		if math.Abs(denom) < DivideEpsilon {
			return 1
		}
		return b.left.Eval(x, y) / denom
	}
	panic("unknown operator: " + b.op.String())
}

// String returns "(left op right)".
func (b *BinaryOp) String() string {
	return "(" + b.left.String() + " " + b.op.String() + " " + b.right.String() + ")"
}

// Children returns a slice with the left/right child.
func (b *BinaryOp) Children() []Node {
	return []Node{b.left, b.right}
}
