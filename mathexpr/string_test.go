package mathexpr

import "testing"

func TestStrings(t *testing.T) {
	x := NewVar(VarX)
	y := NewVar(VarY)
	exprs := []Node{
		x,
		NewConst(-0.12345),
		NewBinaryOp(Add, x, NewBinaryOp(Multiply, NewConst(2), y)),
		NewBinaryOp(Divide, NewConst(0.5), NewFuncOp(Sine, y)),
		NewFuncOp(Cosine, NewFuncOp(Exp, x)),
		NewFuncOp(Sqrt, NewBinaryOp(Add, x, y)),
		NewFuncOp(MixUnbounded, x, y, NewConst(1), NewFuncOp(Sine, x)),
	}
	strs := []string{
		"x",
		"-0.123",
		"(x + (2.000 * y))",
		"(0.500 / sin(y))",
		"cos(exp(x))",
		"sqrt(abs((x + y)))",
		"mix(x, y, 1.000, sin(x))",
	}
	for i, x := range exprs {
		actual := x.String()
		expected := strs[i]
		if actual != expected {
			t.Errorf("expr %d: expected %s got %s", i, expected, actual)
		}
	}
}

func TestExpressionString(t *testing.T) {
	e := &Expression{Channels: [3]Node{
		NewVar(VarX),
		NewConst(0.25),
		NewBinaryOp(Multiply, NewVar(VarY), NewVar(VarY)),
	}}
	expected := "(x, 0.250, (y * y))"
	if actual := e.String(); actual != expected {
		t.Errorf("expected %s got %s", expected, actual)
	}
}

func TestStringsStable(t *testing.T) {
	g := NewGenerator(7)
	for i := 0; i < 50; i++ {
		n := g.Generate(5)
		if s1, s2 := n.String(), n.String(); s1 != s2 {
			t.Fatalf("rendering changed: %s then %s", s1, s2)
		}
	}
}
