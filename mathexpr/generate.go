package mathexpr

import "math/rand"

// A Generator generates random expressions.
//
// All randomness is drawn from Rand, one value per
// production and one per constant, depth-first and left
// to right. Seeding Rand therefore makes generation
// reproducible. A Generator must not be shared between
// goroutines.
type Generator struct {
	Rand *rand.Rand
}

// NewGenerator creates a Generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{Rand: rand.New(rand.NewSource(seed))}
}

// Generate generates a random node with a given maximum
// nesting depth.
// If maxDepth is 0, the result must have no children.
func (g *Generator) Generate(maxDepth int) Node {
	if maxDepth < 0 {
		panic("negative depth")
	}
	return g.generate(maxDepth, &kindWeights)
}

// GenerateExpression generates the three channels of an
// Expression, each with the given maximum depth.
func (g *Generator) GenerateExpression(maxDepth int) *Expression {
	var res Expression
	for i := range res.Channels {
		res.Channels[i] = g.Generate(maxDepth)
	}
	return &res
}

func (g *Generator) generate(depth int, weights *[numKinds]float64) Node {
	var total float64
	for k := Kind(0); k < numKinds; k++ {
		total += eligibleWeight(k, depth, weights)
	}
	if total == 0 {
		return g.randomConst()
	}

	choice := g.Rand.Float64() * total
	for k := Kind(0); k < numKinds; k++ {
		w := eligibleWeight(k, depth, weights)
		if w == 0 {
			continue
		}
		choice -= w
		if choice <= 0 {
			return g.produce(k, depth, weights)
		}
	}
	return g.randomConst()
}

func eligibleWeight(k Kind, depth int, weights *[numKinds]float64) float64 {
	if depth == 0 && !k.IsAtom() {
		return 0
	}
	return weights[k]
}

func (g *Generator) produce(k Kind, depth int, weights *[numKinds]float64) Node {
	switch k {
	case VarX, VarY:
		return NewVar(k)
	case RandomConstant:
		return g.randomConst()
	}
	children := make([]Node, k.Arity())
	for i := range children {
		children[i] = g.generate(depth-1, weights)
	}
	if k.Arity() == 2 {
		return NewBinaryOp(k, children[0], children[1])
	}
	return NewFuncOp(k, children...)
}

// randomConst samples a constant in [-1, 1).
func (g *Generator) randomConst() *Const {
	return NewConst(g.Rand.Float64()*2 - 1)
}
