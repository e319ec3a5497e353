package field

import (
	"fmt"
	"maps"

	"github.com/ctessum/sparse"

	"github.com/cwbudde/algo-recfilter/grid"
)

// HorizontalSlices returns the (y, x) slices of f, see [Field.Slices].
func (f *Field) HorizontalSlices() ([]*Field, error) {
	y, x, err := f.horizontalDims()
	if err != nil {
		return nil, err
	}

	return f.Slices(y, x)
}

// Slices cuts f into 2D fields over dimensions (yDim, xDim), in row-major
// order of the remaining dimensions. Each remaining dimension, and any
// aux coordinate along it, becomes a scalar coordinate of the slice,
// appended after f's own scalars.
func (f *Field) Slices(yDim, xDim int) ([]*Field, error) {
	n := f.NDim()
	if yDim < 0 || yDim >= n || xDim < 0 || xDim >= n || yDim == xDim {
		return nil, fmt.Errorf("%w: bad slice dimensions (%d, %d) for %d-dimensional field", ErrInvalidField, yDim, xDim, n)
	}

	var (
		others      []int
		otherShape  []int
		horizontals = map[int]int{yDim: 0, xDim: 1}
	)

	for d := range n {
		if d != yDim && d != xDim {
			others = append(others, d)
			otherShape = append(otherShape, f.Data.Shape[d])
		}
	}

	ny, nx := f.Data.Shape[yDim], f.Data.Shape[xDim]

	var out []*Field

	src := make([]int, n)

	forEachIndex(otherShape, func(combo []int) {
		s := &Field{
			Name:       f.Name,
			Units:      f.Units,
			Attributes: maps.Clone(f.Attributes),
			Dims:       []Coord{f.Dims[yDim].clone(), f.Dims[xDim].clone()},
			Scalars:    append([]ScalarCoord(nil), f.Scalars...),
			Data:       sparse.ZerosDense(ny, nx),
		}

		for k, d := range others {
			src[d] = combo[k]
			s.Scalars = append(s.Scalars, f.Dims[d].scalarAt(combo[k]))
		}

		for _, a := range f.Aux {
			if h, ok := horizontals[a.Dim]; ok {
				s.Aux = append(s.Aux, AuxCoord{Coord: a.clone(), Dim: h})
				continue
			}

			s.Scalars = append(s.Scalars, a.scalarAt(src[a.Dim]))
		}

		for iy := range ny {
			src[yDim] = iy
			for ix := range nx {
				src[xDim] = ix
				s.Data.Set(f.Data.Get(src...), iy, ix)
			}
		}

		out = append(out, s)
	})

	return out, nil
}

// Grid copies a 2D (y, x) field into a grid indexed [y, x], whichever
// order the field stores its dimensions in.
func (f *Field) Grid() (*grid.Grid, error) {
	y, x, err := f.horizontal2D()
	if err != nil {
		return nil, err
	}

	g := grid.New(f.Data.Shape[y], f.Data.Shape[x])
	idx := make([]int, 2)

	for r := range g.Rows() {
		row := g.Row(r)
		idx[y] = r

		for c := range row {
			idx[x] = c
			row[c] = f.Data.Get(idx...)
		}
	}

	return g, nil
}

// WithGrid returns a copy of the 2D field f holding the cells of g, which
// must have f's (y, x) shape.
func (f *Field) WithGrid(g *grid.Grid) (*Field, error) {
	out := f.shell()
	if err := out.setGrid(g); err != nil {
		return nil, err
	}

	return out, nil
}

// setGrid replaces f's data with the cells of g, allocating fresh storage.
func (f *Field) setGrid(g *grid.Grid) error {
	y, x, err := f.horizontal2DCoords()
	if err != nil {
		return err
	}

	want := grid.Shape{Rows: len(f.Dims[y].Points), Cols: len(f.Dims[x].Points)}
	if g.Shape() != want {
		return fmt.Errorf("%w: grid %v does not fit coordinates %v", ErrInvalidField, g.Shape(), want)
	}

	shape := make([]int, 2)
	shape[y], shape[x] = want.Rows, want.Cols
	// DenseArray.Set skips zero values, so it is only used on fresh zeroed arrays.
	f.Data = sparse.ZerosDense(shape...)
	idx := make([]int, 2)

	for r := range g.Rows() {
		row := g.Row(r)
		idx[y] = r

		for c, v := range row {
			idx[x] = c
			f.Data.Set(v, idx...)
		}
	}

	return nil
}

func (f *Field) horizontalDims() (y, x int, err error) {
	if y, err = f.AxisDim(AxisY); err != nil {
		return -1, -1, err
	}

	if x, err = f.AxisDim(AxisX); err != nil {
		return -1, -1, err
	}

	return y, x, nil
}

func (f *Field) horizontal2D() (y, x int, err error) {
	if f.Data == nil || f.NDim() != 2 {
		return -1, -1, fmt.Errorf("%w: %q", ErrNotHorizontal, f.Name)
	}

	return f.horizontal2DCoords()
}

// horizontal2DCoords locates y and x from the coordinates alone, so it
// works on a shell whose data has not been set yet.
func (f *Field) horizontal2DCoords() (y, x int, err error) {
	if len(f.Dims) != 2 {
		return -1, -1, fmt.Errorf("%w: %q has %d dimensions", ErrNotHorizontal, f.Name, len(f.Dims))
	}

	y, x, err = f.horizontalDims()
	if err != nil {
		return -1, -1, fmt.Errorf("%w: %w", ErrNotHorizontal, err)
	}

	return y, x, nil
}
