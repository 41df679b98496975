package exprart

import (
	"math"
	"testing"

	"github.com/unixpickle/exprart/mathexpr"
)

func testExpression() *mathexpr.Expression {
	return &mathexpr.Expression{Channels: [3]mathexpr.Node{
		mathexpr.NewVar(mathexpr.VarX),
		mathexpr.NewVar(mathexpr.VarY),
		mathexpr.NewConst(0.5),
	}}
}

func TestSampleGrid(t *testing.T) {
	grid, err := SampleGrid(testExpression(), 4, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(grid.Channels[0]) != 8 {
		t.Fatalf("expected 8 samples got %d", len(grid.Channels[0]))
	}
	expectedX := []float64{-0.75, -0.25, 0.25, 0.75}
	expectedY := []float64{0.5, -0.5}
	for row, y := range expectedY {
		for col, x := range expectedX {
			idx := row*4 + col
			if grid.Channels[0][idx] != x || grid.Channels[1][idx] != y {
				t.Errorf("cell (%d, %d): expected (%f, %f) got (%f, %f)", col, row, x, y,
					grid.Channels[0][idx], grid.Channels[1][idx])
			}
			if grid.Channels[2][idx] != 0.5 {
				t.Errorf("cell (%d, %d): expected constant channel", col, row)
			}
		}
	}
}

func TestSampleGridSize(t *testing.T) {
	for _, size := range [][2]int{{0, 3}, {3, 0}, {-1, 4}} {
		if _, err := SampleGrid(testExpression(), size[0], size[1]); err == nil {
			t.Errorf("size %v: expected error", size)
		}
	}
}

func TestImage(t *testing.T) {
	grid, err := SampleGrid(testExpression(), 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	img := grid.Image()
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 3 {
		t.Fatalf("unexpected bounds %v", b)
	}
	left, right := img.RGBAAt(0, 1), img.RGBAAt(2, 1)
	if left.R != 0 || right.R != 255 {
		t.Errorf("red should span x: got %d and %d", left.R, right.R)
	}
	top, bottom := img.RGBAAt(1, 0), img.RGBAAt(1, 2)
	if top.G != 255 || bottom.G != 0 {
		t.Errorf("green should span y: got %d and %d", top.G, bottom.G)
	}
	if left.B != 128 || left.A != 255 {
		t.Errorf("expected flat blue and opaque alpha, got %v", left)
	}
}

func TestNormalizeNonFinite(t *testing.T) {
	res := normalize([]float64{math.NaN(), -math.MaxFloat64, math.Inf(1), math.MaxFloat64})
	expected := []uint8{0, 0, 0, 255}
	for i, x := range expected {
		if res[i] != x {
			t.Errorf("value %d: expected %d got %d", i, x, res[i])
		}
	}
}

func TestPatternGenerator(t *testing.T) {
	p := &PatternGenerator{
		Generator:   mathexpr.NewGenerator(9),
		MaxDepth:    2,
		RequireVars: true,
	}
	for i := 0; i < 20; i++ {
		expr, err := p.Generate()
		if err != nil {
			t.Fatal(err)
		}
		if !HasVar(expr) {
			t.Fatalf("expression without variables: %s", expr)
		}
		if expr.Depth() > 2 {
			t.Fatalf("expression too deep: %s", expr)
		}
	}
}

func TestHasVar(t *testing.T) {
	flat := &mathexpr.Expression{Channels: [3]mathexpr.Node{
		mathexpr.NewConst(0.1),
		mathexpr.NewFuncOp(mathexpr.Sine, mathexpr.NewConst(0.2)),
		mathexpr.NewConst(0.3),
	}}
	if HasVar(flat) {
		t.Error("constant expression reported a variable")
	}
	if !HasVar(testExpression()) {
		t.Error("expected a variable")
	}
}
