package field

import (
	"fmt"
	"slices"

	"github.com/ctessum/sparse"
)

// Reconcile returns a field with the metadata and dimension order of
// original and the data of candidate.
//
// Every dimension of original must appear in candidate with the same
// points, or, for a length-one dimension, as a scalar coordinate with the
// same value; it is then promoted back to a dimension. A length-one
// candidate dimension that original holds as a scalar is squeezed out.
// Anything else fails with ErrReconcile.
func Reconcile(original, candidate *Field) (*Field, error) {
	if original.Data == nil || candidate.Data == nil {
		return nil, fmt.Errorf("%w: missing data", ErrReconcile)
	}

	// from[i] is the candidate dimension feeding original dimension i, or
	// -1 for a promoted scalar.
	from := make([]int, original.NDim())
	used := make([]bool, candidate.NDim())

	for i, c := range original.Dims {
		j := candidate.DimIndex(c.Name)
		if j >= 0 {
			if !slices.Equal(candidate.Dims[j].Points, c.Points) {
				return nil, fmt.Errorf("%w: points of %q differ", ErrReconcile, c.Name)
			}

			from[i] = j
			used[j] = true

			continue
		}

		k := slices.IndexFunc(candidate.Scalars, func(s ScalarCoord) bool { return s.Name == c.Name })
		if k < 0 || len(c.Points) != 1 || candidate.Scalars[k].Value != c.Points[0] {
			return nil, fmt.Errorf("%w: dimension %q not found in result", ErrReconcile, c.Name)
		}

		from[i] = -1
	}

	for j, ok := range used {
		c := candidate.Dims[j]

		squeezable := len(c.Points) == 1 &&
			slices.ContainsFunc(original.Scalars, func(s ScalarCoord) bool { return s.Name == c.Name })
		if !ok && !squeezable {
			return nil, fmt.Errorf("%w: unexpected dimension %q in result", ErrReconcile, c.Name)
		}
	}

	out := original.shell()
	out.Data = sparse.ZerosDense(original.Data.Shape...)
	src := make([]int, candidate.NDim())

	forEachIndex(original.Data.Shape, func(idx []int) {
		for i, j := range from {
			if j >= 0 {
				src[j] = idx[i]
			}
		}

		out.Data.Set(candidate.Data.Get(src...), idx...)
	})

	return out, nil
}
