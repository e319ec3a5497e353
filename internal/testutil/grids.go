package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-recfilter/grid"
)

// NoiseGrid returns a rows×cols grid of uniform noise in
// [-amplitude, amplitude) drawn from a fixed seed.
func NoiseGrid(seed int64, rows, cols int, amplitude float64) *grid.Grid {
	g := grid.New(rows, cols)
	rng := rand.New(rand.NewSource(seed))
	data := g.Data()
	for i := range data {
		data[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return g
}

// ImpulseGrid returns a zero grid with a single 1 at (r, c).
func ImpulseGrid(rows, cols, r, c int) *grid.Grid {
	g := grid.New(rows, cols)
	if r >= 0 && r < rows && c >= 0 && c < cols {
		g.Set(r, c, 1)
	}
	return g
}

// RampGrid returns a grid whose cell (r, c) holds r*cols + c.
func RampGrid(rows, cols int) *grid.Grid {
	g := grid.New(rows, cols)
	data := g.Data()
	for i := range data {
		data[i] = float64(i)
	}
	return g
}

// UniformAlphas returns a grid filled with alpha, in the shape a sweep
// expects for its alpha argument.
func UniformAlphas(rows, cols int, alpha float64) *grid.Grid {
	return grid.Filled(rows, cols, alpha)
}
