// Package exprart renders randomly generated mathematical
// functions of two coordinates as images.
package exprart

import (
	"errors"

	"github.com/unixpickle/exprart/mathexpr"
)

// maxAttempts bounds the rejection loop in Generate.
const maxAttempts = 1000

// A PatternGenerator generates Expressions to be rendered
// as patterns.
type PatternGenerator struct {
	Generator *mathexpr.Generator
	MaxDepth  int

	// If RequireVars is set, expressions in which no
	// channel references x or y are rejected, since they
	// would render as a flat color.
	RequireVars bool
}

// Generate generates a random pattern expression.
func (p *PatternGenerator) Generate() (*mathexpr.Expression, error) {
	for i := 0; i < maxAttempts; i++ {
		expr := p.Generator.GenerateExpression(p.MaxDepth)
		if !p.RequireVars || HasVar(expr) {
			return expr, nil
		}
	}
	return nil, errors.New("no expression with variables generated")
}

// HasVar checks if any channel of e references x or y.
func HasVar(e *mathexpr.Expression) bool {
	for _, c := range e.Channels {
		if hasVar(c) {
			return true
		}
	}
	return false
}

func hasVar(n mathexpr.Node) bool {
	if k := n.Kind(); k == mathexpr.VarX || k == mathexpr.VarY {
		return true
	}
	for _, c := range n.Children() {
		if hasVar(c) {
			return true
		}
	}
	return false
}
