package field

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-recfilter/grid"
)

// FromMatrix builds a 2D field over (y, x) from m, whose rows run along y
// and columns along x.
func FromMatrix(name, units string, m mat.Matrix, y, x Coord) (*Field, error) {
	f := &Field{Name: name, Units: units, Dims: []Coord{y.clone(), x.clone()}}
	if err := f.setGrid(grid.FromDense(m)); err != nil {
		return nil, err
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// Matrix copies a 2D (y, x) field into a gonum matrix with rows along y,
// whatever the order of its dimensions.
func (f *Field) Matrix() (*mat.Dense, error) {
	g, err := f.Grid()
	if err != nil {
		return nil, err
	}

	return g.Dense(), nil
}
