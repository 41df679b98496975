package mathexpr

import "strconv"

// A Var is a reference to one of the two inputs.
type Var struct {
	kind Kind
}

// NewVar creates a variable node.
// The kind must be VarX or VarY.
func NewVar(k Kind) *Var {
	if k != VarX && k != VarY {
		panic("not a variable kind: " + k.String())
	}
	return &Var{kind: k}
}

// Kind returns VarX or VarY.
func (v *Var) Kind() Kind {
	return v.kind
}

// Eval returns x or y.
func (v *Var) Eval(x, y float64) float64 {
	if v.kind == VarX {
		return x
	}
	return y
}

// String returns the variable's name.
func (v *Var) String() string {
	return v.kind.String()
}

// Children returns the empty slice.
func (v *Var) Children() []Node {
	return nil
}

// A Const is a constant sampled once when the tree was
// generated.
type Const struct {
	value float64
}

// NewConst creates a constant node.
func NewConst(value float64) *Const {
	return &Const{value: value}
}

// Value returns the stored constant.
func (c *Const) Value() float64 {
	return c.value
}

// Kind returns RandomConstant.
func (c *Const) Kind() Kind {
	return RandomConstant
}

// Eval returns the stored constant.
func (c *Const) Eval(x, y float64) float64 {
	return c.value
}

// String formats the constant with three decimals.
func (c *Const) String() string {
	return strconv.FormatFloat(c.value, 'f', 3, 64)
}

// Children returns the empty slice.
func (c *Const) Children() []Node {
	return nil
}
