package field

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ctessum/sparse"
)

// stackDim is a dimension rebuilt from a varying scalar coordinate, plus
// the scalars that are functions of it and become aux coordinates.
type stackDim struct {
	scalar int
	aux    []int
}

// Merge stacks slices that differ only in scalar coordinate values back
// into one field.
//
// Every scalar that takes more than one value across the slices becomes a
// new leading dimension, in scalar order, with its points in order of
// first appearance. A varying scalar whose value is determined by an
// earlier new dimension becomes an aux coordinate of that dimension
// instead, so repeating aux values such as a day per time step survive.
// Scalars with a single value stay scalar. Merge fails with ErrMerge when
// slices disagree on anything but scalar values, or when the scalar value
// combinations do not fill each new dimension exactly once.
func Merge(parts []*Field) (*Field, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: no slices", ErrMerge)
	}

	first := parts[0]
	for i, p := range parts[1:] {
		if reason := mismatch(first, p); reason != "" {
			return nil, fmt.Errorf("%w: slice %d: %s", ErrMerge, i+1, reason)
		}
	}

	values, pos := scalarPositions(parts)

	var dims []stackDim

	for s := range first.Scalars {
		if len(values[s]) < 2 {
			continue
		}

		if d := pairedDim(dims, s, values, pos); d >= 0 {
			dims[d].aux = append(dims[d].aux, s)
			continue
		}

		dims = append(dims, stackDim{scalar: s})
	}

	lens := make([]int, len(dims))
	total := 1

	for d, sd := range dims {
		lens[d] = len(values[sd.scalar])
		total *= lens[d]
	}

	if total != len(parts) {
		return nil, fmt.Errorf("%w: %d slices cannot fill stacked shape %v", ErrMerge, len(parts), lens)
	}

	seen := make([]bool, total)
	for i := range parts {
		flat := 0
		for d, sd := range dims {
			flat = flat*lens[d] + pos[i][sd.scalar]
		}

		if seen[flat] {
			return nil, fmt.Errorf("%w: slice %d repeats a scalar coordinate combination", ErrMerge, i)
		}

		seen[flat] = true
	}

	out := &Field{
		Name:       first.Name,
		Units:      first.Units,
		Attributes: maps.Clone(first.Attributes),
	}

	for d, sd := range dims {
		sc := first.Scalars[sd.scalar]
		out.Dims = append(out.Dims, Coord{Name: sc.Name, Units: sc.Units, Axis: sc.Axis, Points: slices.Clone(values[sd.scalar])})

		for _, s := range sd.aux {
			points := make([]float64, lens[d])
			for i := range parts {
				points[pos[i][sd.scalar]] = values[s][pos[i][s]]
			}

			a := first.Scalars[s]
			out.Aux = append(out.Aux, AuxCoord{Coord: Coord{Name: a.Name, Units: a.Units, Axis: a.Axis, Points: points}, Dim: d})
		}
	}

	for _, c := range first.Dims {
		out.Dims = append(out.Dims, c.clone())
	}

	for _, a := range first.Aux {
		out.Aux = append(out.Aux, AuxCoord{Coord: a.clone(), Dim: a.Dim + len(dims)})
	}

	for s, sc := range first.Scalars {
		if len(values[s]) == 1 {
			out.Scalars = append(out.Scalars, sc)
		}
	}

	inner := first.Data.Shape
	out.Data = sparse.ZerosDense(append(slices.Clone(lens), inner...)...)
	idx := make([]int, len(dims)+len(inner))

	for i, p := range parts {
		for d, sd := range dims {
			idx[d] = pos[i][sd.scalar]
		}

		forEachIndex(inner, func(in []int) {
			copy(idx[len(dims):], in)
			out.Data.Set(p.Data.Get(in...), idx...)
		})
	}

	return out, nil
}

// scalarPositions collects the distinct values of each scalar coordinate
// in order of first appearance, and the position of every slice's value.
func scalarPositions(parts []*Field) (values [][]float64, pos [][]int) {
	ns := len(parts[0].Scalars)
	values = make([][]float64, ns)
	pos = make([][]int, len(parts))

	for i, p := range parts {
		pos[i] = make([]int, ns)

		for s, sc := range p.Scalars {
			j := slices.Index(values[s], sc.Value)
			if j < 0 {
				values[s] = append(values[s], sc.Value)
				j = len(values[s]) - 1
			}

			pos[i][s] = j
		}
	}

	return values, pos
}

// pairedDim returns the stacked dimension whose scalar determines scalar s
// across all slices, or -1. Each value of the dimension's scalar must map
// to a single value of s; distinct dimension values may share one.
func pairedDim(dims []stackDim, s int, values [][]float64, pos [][]int) int {
	for d, sd := range dims {
		fwd := make([]int, len(values[sd.scalar]))
		for k := range fwd {
			fwd[k] = -1
		}

		paired := true

		for _, p := range pos {
			a, b := p[sd.scalar], p[s]
			if fwd[a] >= 0 && fwd[a] != b {
				paired = false
				break
			}

			fwd[a] = b
		}

		if paired {
			return d
		}
	}

	return -1
}

// mismatch describes why b cannot be stacked with a, or returns "".
func mismatch(a, b *Field) string {
	switch {
	case a.Name != b.Name || a.Units != b.Units:
		return fmt.Sprintf("name/units %q [%s] vs %q [%s]", b.Name, b.Units, a.Name, a.Units)
	case !maps.Equal(a.Attributes, b.Attributes):
		return "attributes differ"
	case !slices.Equal(a.Data.Shape, b.Data.Shape):
		return fmt.Sprintf("shape %v vs %v", b.Data.Shape, a.Data.Shape)
	case !slices.EqualFunc(a.Dims, b.Dims, Coord.equal):
		return "dimension coordinates differ"
	case !slices.EqualFunc(a.Aux, b.Aux, func(x, y AuxCoord) bool { return x.Dim == y.Dim && x.equal(y.Coord) }):
		return "aux coordinates differ"
	case !slices.EqualFunc(a.Scalars, b.Scalars, func(x, y ScalarCoord) bool {
		return x.Name == y.Name && x.Units == y.Units && x.Axis == y.Axis
	}):
		return "scalar coordinates differ"
	}

	return ""
}
