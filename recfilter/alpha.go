package recfilter

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-recfilter/field"
	"github.com/cwbudde/algo-recfilter/grid"
)

// BuildAlphas returns the halo-padded alpha grid for the x or y sweeps of
// slices shaped like ref, a 2D (y, x) field.
//
// Without a supplied alpha field the configured scalar alpha is broadcast
// over ref's shape; if that scalar is unset the result is
// [ErrMissingAlpha]. A supplied field must match ref's horizontal shape
// and hold values in [0, 1). Fields with more than two dimensions
// contribute their first horizontal slice.
//
// The grid is padded the same way as the data, so it lines up with every
// padded slice.
func (c Config) BuildAlphas(ref *field.Field, axis field.Axis, supplied *field.Field) (*grid.Grid, error) {
	var (
		name   string
		alpha  float64
		scalar bool
	)

	switch axis {
	case field.AxisX:
		name = "alphas_x"
		alpha, scalar = c.AlphaX()
	case field.AxisY:
		name = "alphas_y"
		alpha, scalar = c.AlphaY()
	default:
		return nil, fmt.Errorf("%w: alphas are defined for x and y, not %q", ErrConfiguration, axis)
	}

	refGrid, err := ref.Grid()
	if err != nil {
		return nil, err
	}

	var src *field.Field

	if supplied == nil {
		if !scalar {
			return nil, fmt.Errorf("%w: %s has neither a scalar alpha nor an alpha field", ErrMissingAlpha, name)
		}

		if src, err = ref.WithGrid(grid.Filled(refGrid.Rows(), refGrid.Cols(), alpha)); err != nil {
			return nil, err
		}
	} else {
		if src, err = horizontalSlice(supplied); err != nil {
			return nil, fmt.Errorf("recfilter: %s: %w", name, err)
		}

		g, err := src.Grid()
		if err != nil {
			return nil, err
		}

		if err := checkShape(name, refGrid.Shape(), g.Shape()); err != nil {
			return nil, err
		}

		if err := checkAlphaRange(name, g); err != nil {
			return nil, err
		}
	}

	padded, err := field.PadHalo(src, c.edgeWidth, c.edgeWidth, c.policy)
	if err != nil {
		return nil, err
	}

	return padded.Grid()
}

// AlphaField wraps a matrix of alphas, rows along y, as an alpha field on
// the horizontal coordinates of ref for use with [Process] or
// [Config.BuildAlphas]. Values are range checked when the field is used.
func AlphaField(ref *field.Field, m mat.Matrix) (*field.Field, error) {
	src, err := horizontalSlice(ref)
	if err != nil {
		return nil, err
	}

	y, err := src.AxisDim(field.AxisY)
	if err != nil {
		return nil, err
	}

	x, err := src.AxisDim(field.AxisX)
	if err != nil {
		return nil, err
	}

	return field.FromMatrix("alpha", "1", m, src.Dims[y], src.Dims[x])
}

func horizontalSlice(f *field.Field) (*field.Field, error) {
	if f.NDim() == 2 {
		return f, nil
	}

	slices, err := f.HorizontalSlices()
	if err != nil {
		return nil, err
	}

	if len(slices) == 0 {
		return nil, fmt.Errorf("%w: %q has no slices", field.ErrInvalidField, f.Name)
	}

	return slices[0], nil
}

func checkAlphaRange(name string, g *grid.Grid) error {
	for r := range g.Rows() {
		for c, a := range g.Row(r) {
			if math.IsNaN(a) || a < 0 || a >= 1 {
				return fmt.Errorf("%w: %s[%d, %d] = %g is outside [0, 1)", ErrConfiguration, name, r, c, a)
			}
		}
	}

	return nil
}
