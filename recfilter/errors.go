package recfilter

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-recfilter/field"
	"github.com/cwbudde/algo-recfilter/grid"
)

var (
	// ErrConfiguration reports an invalid option or a configuration that
	// cannot run.
	ErrConfiguration = errors.New("recfilter: invalid configuration")

	// ErrMissingAlpha reports an axis with neither a scalar alpha nor an
	// alpha field.
	ErrMissingAlpha = errors.New("recfilter: missing alpha")

	// ErrShapeMismatch is matched by every [*ShapeMismatchError].
	ErrShapeMismatch = errors.New("recfilter: shape mismatch")

	// ErrMerge reports filtered slices that cannot be merged back.
	ErrMerge = field.ErrMerge
)

// ShapeMismatchError reports a grid whose shape differs from the shape it
// has to line up with.
type ShapeMismatchError struct {
	// What names the offending grid, e.g. "alphas_x" or "slice 3".
	What     string
	Expected grid.Shape
	Actual   grid.Shape
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("recfilter: %s shape %v does not match expected shape %v", e.What, e.Actual, e.Expected)
}

// Is lets errors.Is match [ErrShapeMismatch].
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}

func checkShape(what string, expected, actual grid.Shape) error {
	if expected == actual {
		return nil
	}

	return &ShapeMismatchError{What: what, Expected: expected, Actual: actual}
}
