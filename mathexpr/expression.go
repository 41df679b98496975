package mathexpr

// An Expression is the root of a generated function: three
// independent channels evaluated at the same (x, y).
type Expression struct {
	Channels [3]Node
}

// Eval evaluates every channel at (x, y).
func (e *Expression) Eval(x, y float64) (float64, float64, float64) {
	return e.Channels[0].Eval(x, y), e.Channels[1].Eval(x, y), e.Channels[2].Eval(x, y)
}

// String returns "(c0, c1, c2)".
func (e *Expression) String() string {
	return "(" + e.Channels[0].String() + ", " + e.Channels[1].String() + ", " +
		e.Channels[2].String() + ")"
}

// Depth returns the largest channel depth.
func (e *Expression) Depth() int {
	var max int
	for _, c := range e.Channels {
		if d := Depth(c); d > max {
			max = d
		}
	}
	return max
}
