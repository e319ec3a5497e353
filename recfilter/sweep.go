package recfilter

import (
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-recfilter/grid"
)

// weights pairs an alpha grid with its complement 1-a so the sweeps do
// not recompute it on every pass. Both are read-only once built and may
// be shared between goroutines.
type weights struct {
	alpha *grid.Grid
	comp  *grid.Grid
}

func newWeights(alpha *grid.Grid) weights {
	comp := grid.New(alpha.Rows(), alpha.Cols())
	ones := make([]float64, alpha.Cols())

	for i := range ones {
		ones[i] = 1
	}

	for r := range alpha.Rows() {
		row := comp.Row(r)
		vecmath.ScaleBlock(row, alpha.Row(r), -1)
		vecmath.AddBlockInPlace(row, ones)
	}

	return weights{alpha: alpha, comp: comp}
}

// ForwardX runs the recurrence down the rows of g in place:
//
//	g[i, :] = (1 - a[i, :]) * g[i, :] + a[i, :] * g[i-1, :]   for i = 1 .. rows-1
//
// Row 0 is left unchanged. ForwardX panics if g and alphas differ in shape.
func ForwardX(g, alphas *grid.Grid) {
	mustMatch(g, alphas)
	newWeights(alphas).forwardX(g, make([]float64, g.Cols()))
}

// BackwardX runs the recurrence up the rows of g in place, from row
// rows-2 down to 0, each row pulling from the one below it. The last row
// is left unchanged.
func BackwardX(g, alphas *grid.Grid) {
	mustMatch(g, alphas)
	newWeights(alphas).backwardX(g, make([]float64, g.Cols()))
}

// ForwardY runs the recurrence along the columns of g in place, from
// column 1 to cols-1. Column 0 is left unchanged.
func ForwardY(g, alphas *grid.Grid) {
	mustMatch(g, alphas)
	newWeights(alphas).forwardY(g)
}

// BackwardY runs the recurrence along the columns of g in place, from
// column cols-2 down to 0. The last column is left unchanged.
func BackwardY(g, alphas *grid.Grid) {
	mustMatch(g, alphas)
	newWeights(alphas).backwardY(g)
}

// forwardX and backwardX work on whole rows. tmp is scratch of
// g.Cols() elements.
func (w weights) forwardX(g *grid.Grid, tmp []float64) {
	for i := 1; i < g.Rows(); i++ {
		w.blend(g.Row(i), g.Row(i-1), i, tmp)
	}
}

func (w weights) backwardX(g *grid.Grid, tmp []float64) {
	for i := g.Rows() - 2; i >= 0; i-- {
		w.blend(g.Row(i), g.Row(i+1), i, tmp)
	}
}

// blend sets row = comp[i]*row + alpha[i]*prev.
func (w weights) blend(row, prev []float64, i int, tmp []float64) {
	vecmath.MulBlock(tmp, w.alpha.Row(i), prev)
	vecmath.MulAddBlock(row, w.comp.Row(i), row, tmp)
}

// The column recurrences are independent per row, so they walk each
// contiguous row instead of striding down columns.
func (w weights) forwardY(g *grid.Grid) {
	for r := range g.Rows() {
		row, a, comp := g.Row(r), w.alpha.Row(r), w.comp.Row(r)
		for j := 1; j < len(row); j++ {
			row[j] = comp[j]*row[j] + a[j]*row[j-1]
		}
	}
}

func (w weights) backwardY(g *grid.Grid) {
	for r := range g.Rows() {
		row, a, comp := g.Row(r), w.alpha.Row(r), w.comp.Row(r)
		for j := len(row) - 2; j >= 0; j-- {
			row[j] = comp[j]*row[j] + a[j]*row[j+1]
		}
	}
}

func mustMatch(g, alphas *grid.Grid) {
	if err := checkShape("alphas", g.Shape(), alphas.Shape()); err != nil {
		panic(err)
	}
}
