package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/alecthomas/repr"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/exprart/mathexpr"
)

func main() {
	var depth int
	var count int
	var seed int64
	var x, y float64
	var dump bool
	flag.IntVar(&depth, "depth", 4, "maximum expression depth")
	flag.IntVar(&count, "count", 3, "number of expressions")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	flag.Float64Var(&x, "x", 0.6, "x coordinate for evaluation")
	flag.Float64Var(&y, "y", 0.2, "y coordinate for evaluation")
	flag.BoolVar(&dump, "dump", false, "print the tree structure")
	flag.Parse()

	if depth < 0 {
		essentials.Die("Invalid depth:", depth)
	}

	gen := mathexpr.NewGenerator(seed)
	for i := 0; i < count; i++ {
		expr := gen.GenerateExpression(depth)
		r, g, b := expr.Eval(x, y)
		fmt.Printf("Expression %d: %s\n", i+1, expr)
		fmt.Printf("Evaluates to: (%g, %g, %g)\n", r, g, b)
		if dump {
			repr.Println(expr, repr.Indent("  "))
		}
	}
}
