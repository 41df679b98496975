package exprart

import (
	"fmt"

	"github.com/unixpickle/exprart/mathexpr"
)

// A Grid stores the channels of an Expression evaluated
// at the centre of every cell of a width x height lattice
// covering [-1, 1] x [-1, 1].
//
// Channels are stored row-major. Row 0 is the top of the
// image, where y is largest.
type Grid struct {
	Width  int
	Height int

	Channels [3][]float64
}

// SampleGrid evaluates e at every cell of a new Grid.
func SampleGrid(e *mathexpr.Expression, width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("sample grid: invalid size %dx%d", width, height)
	}
	g := &Grid{Width: width, Height: height}
	for i := range g.Channels {
		g.Channels[i] = make([]float64, width*height)
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			x, y := g.Coord(col, row)
			idx := row*width + col
			g.Channels[0][idx], g.Channels[1][idx], g.Channels[2][idx] = e.Eval(x, y)
		}
	}
	return g, nil
}

// Coord returns the (x, y) coordinate sampled for the
// given cell.
func (g *Grid) Coord(col, row int) (x, y float64) {
	x = float64(2*col+1)/float64(g.Width) - 1
	y = 1 - float64(2*row+1)/float64(g.Height)
	return
}
