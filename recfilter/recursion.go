package recfilter

import (
	"fmt"

	"github.com/cwbudde/algo-recfilter/grid"
)

// Run filters g in place with exactly iterations passes of ForwardX,
// BackwardX, ForwardY and BackwardY. There is no convergence check.
//
// alphasX and alphasY must have g's shape.
func Run(g, alphasX, alphasY *grid.Grid, iterations int) error {
	if iterations < 1 {
		return fmt.Errorf("%w: iterations must be >= 1: %d", ErrConfiguration, iterations)
	}

	if err := checkShape("alphas_x", g.Shape(), alphasX.Shape()); err != nil {
		return err
	}

	if err := checkShape("alphas_y", g.Shape(), alphasY.Shape()); err != nil {
		return err
	}

	run(g, newWeights(alphasX), newWeights(alphasY), iterations, make([]float64, g.Cols()))

	return nil
}

// run assumes shapes were checked. tmp is scratch of g.Cols() elements.
func run(g *grid.Grid, wx, wy weights, iterations int, tmp []float64) {
	for range iterations {
		wx.forwardX(g, tmp)
		wx.backwardX(g, tmp)
		wy.forwardY(g)
		wy.backwardY(g)
	}
}
