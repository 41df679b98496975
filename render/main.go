package main

import (
	"flag"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/exprart"
	"github.com/unixpickle/exprart/mathexpr"
)

func main() {
	var depth int
	var size int
	var seed int64
	var outFile string
	flag.IntVar(&depth, "depth", 6, "maximum expression depth")
	flag.IntVar(&size, "size", 256, "image width and height")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	flag.StringVar(&outFile, "out", "pattern.png", "output PNG file")
	flag.Parse()

	if depth < 0 {
		essentials.Die("Invalid depth:", depth)
	}

	log.Println("Generating expression...")
	gen := &exprart.PatternGenerator{
		Generator:   mathexpr.NewGenerator(seed),
		MaxDepth:    depth,
		RequireVars: true,
	}
	expr, err := gen.Generate()
	if err != nil {
		essentials.Die(err)
	}
	log.Printf("seed %d: %s", seed, expr)

	log.Println("Sampling...")
	grid, err := exprart.SampleGrid(expr, size, size)
	if err != nil {
		essentials.Die(err)
	}

	if err := writeImage(outFile, grid); err != nil {
		essentials.Die(err)
	}
	log.Println("Wrote", outFile)
}

func writeImage(path string, grid *exprart.Grid) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return essentials.AddCtx("write image", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = essentials.AddCtx("write image", closeErr)
		}
	}()
	if err := png.Encode(f, grid.Image()); err != nil {
		return essentials.AddCtx("write image", err)
	}
	return nil
}
