package exprart

import (
	"image"
	"image/color"
	"math"
)

// Image converts the grid to an opaque RGB image, using
// channels 0, 1, and 2 as red, green, and blue.
//
// Each channel is scaled independently so that its finite
// minimum maps to 0 and its finite maximum to 255. A
// constant channel maps to 128, and non-finite samples
// map to 0.
func (g *Grid) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	var planes [3][]uint8
	for i, ch := range g.Channels {
		planes[i] = normalize(ch)
	}
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			idx := row*g.Width + col
			img.SetRGBA(col, row, color.RGBA{
				R: planes[0][idx],
				G: planes[1][idx],
				B: planes[2][idx],
				A: 0xff,
			})
		}
	}
	return img
}

func normalize(values []float64) []uint8 {
	min, max := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if isFinite(v) {
			min = math.Min(min, v)
			max = math.Max(max, v)
		}
	}
	res := make([]uint8, len(values))
	for i, v := range values {
		switch {
		case !isFinite(v):
			res[i] = 0
		case max == min:
			res[i] = 128
		default:
			// Halved so that the range cannot overflow.
			frac := (v/2 - min/2) / (max/2 - min/2)
			res[i] = uint8(math.Round(255 * frac))
		}
	}
	return res
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
