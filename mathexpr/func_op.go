package mathexpr

import (
	"math"
	"strings"
)

// MaxExp is the ceiling applied to the result of Exp.
const MaxExp = 1e6

// FuncOp represents a call to one of the grammar's
// functions: sin, cos, exp, sqrt, or mix.
type FuncOp struct {
	fn   Kind
	args []Node
}

// NewFuncOp creates a function call.
// The number of arguments must match fn.Arity().
func NewFuncOp(fn Kind, args ...Node) *FuncOp {
	if fn.IsAtom() || fn.Arity() == 2 {
		panic("not a function: " + fn.String())
	}
	if len(args) != fn.Arity() {
		panic("wrong argument count for " + fn.String())
	}
	for _, a := range args {
		if a == nil {
			panic("nil argument")
		}
	}
	return &FuncOp{fn: fn, args: append([]Node{}, args...)}
}

// Kind returns the function.
func (f *FuncOp) Kind() Kind {
	return f.fn
}

// Eval evaluates the arguments and applies the function.
func (f *FuncOp) Eval(x, y float64) float64 {
	switch f.fn {
	case Sine:
		return math.Sin(f.args[0].Eval(x, y))
	case Cosine:
		return math.Cos(f.args[0].Eval(x, y))
	case Exp:
		res := math.Exp(f.args[0].Eval(x, y))
		// Also catches NaN.
		if !(res <= MaxExp) {
			return MaxExp
		}
		return res
	case Sqrt:
		return math.Sqrt(math.Abs(f.args[0].Eval(x, y)))
	case MixUnbounded:
		a := f.args[0].Eval(x, y)
		b := f.args[1].Eval(x, y)
		c := f.args[2].Eval(x, y)
		d := f.args[3].Eval(x, y)
		return (a*b + c*d) / (1 + math.Abs(a) + math.Abs(b))
	}
	panic("unknown function: " + f.fn.String())
}

// String returns a string for the function call.
// The absolute value taken by sqrt is written out.
func (f *FuncOp) String() string {
	argsStr := make([]string, len(f.args))
	for i, x := range f.args {
		argsStr[i] = x.String()
	}
	joined := strings.Join(argsStr, ", ")
	if f.fn == Sqrt {
		joined = "abs(" + joined + ")"
	}
	return f.fn.String() + "(" + joined + ")"
}

// Children returns the list of child nodes.
func (f *FuncOp) Children() []Node {
	return append([]Node{}, f.args...)
}
