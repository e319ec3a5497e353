package halo

import "fmt"

// PadCoord extends coordinate points by width values on each end,
// continuing the spacing of the two outermost points on that side. A
// single point is extended with unit spacing.
func PadCoord(points []float64, width int) ([]float64, error) {
	if width < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeWidth, width)
	}

	n := len(points)
	if n == 0 && width > 0 {
		return nil, ErrEmptyGrid
	}

	out := make([]float64, n+2*width)
	copy(out[width:], points)

	if width == 0 {
		return out, nil
	}

	lowStep, highStep := 1.0, 1.0
	if n > 1 {
		lowStep = points[1] - points[0]
		highStep = points[n-1] - points[n-2]
	}

	for k := 1; k <= width; k++ {
		out[width-k] = points[0] - float64(k)*lowStep
		out[width+n-1+k] = points[n-1] + float64(k)*highStep
	}

	return out, nil
}

// UnpadCoord removes width points from each end.
func UnpadCoord(points []float64, width int) ([]float64, error) {
	if width < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeWidth, width)
	}

	if len(points) < 2*width {
		return nil, fmt.Errorf("%w: %d points with width %d", ErrHaloTooWide, len(points), width)
	}

	return append([]float64(nil), points[width:len(points)-width]...), nil
}
