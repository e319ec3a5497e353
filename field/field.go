package field

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ctessum/sparse"
)

// Coord is a named coordinate with one point per cell along a dimension.
type Coord struct {
	Name   string
	Units  string
	Axis   Axis
	Points []float64
}

// AuxCoord is a coordinate that varies along dimension Dim without being
// its dimension coordinate, e.g. a forecast period alongside time.
type AuxCoord struct {
	Coord

	Dim int
}

// ScalarCoord is a coordinate with a single value.
type ScalarCoord struct {
	Name  string
	Units string
	Axis  Axis
	Value float64
}

// Field is a labelled N-dimensional float64 array.
type Field struct {
	Name       string
	Units      string
	Attributes map[string]string
	Dims       []Coord
	Aux        []AuxCoord
	Scalars    []ScalarCoord
	Data       *sparse.DenseArray
}

// New builds a field from data and one dimension coordinate per data
// dimension, and validates it.
func New(name, units string, data *sparse.DenseArray, dims ...Coord) (*Field, error) {
	f := &Field{Name: name, Units: units, Dims: dims, Data: data}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// Validate checks that the coordinates describe the data and that
// coordinate names are unique.
func (f *Field) Validate() error {
	if f.Data == nil {
		return fmt.Errorf("%w: %q has no data", ErrInvalidField, f.Name)
	}

	if len(f.Dims) != len(f.Data.Shape) {
		return fmt.Errorf("%w: %d dimension coordinates for %d dimensions", ErrInvalidField, len(f.Dims), len(f.Data.Shape))
	}

	seen := make(map[string]bool)

	claim := func(name string) error {
		if name == "" {
			return fmt.Errorf("%w: unnamed coordinate", ErrInvalidField)
		}

		if seen[name] {
			return fmt.Errorf("%w: duplicate coordinate %q", ErrInvalidField, name)
		}

		seen[name] = true

		return nil
	}

	for i, c := range f.Dims {
		if err := claim(c.Name); err != nil {
			return err
		}

		if len(c.Points) != f.Data.Shape[i] {
			return fmt.Errorf("%w: coordinate %q has %d points, dimension %d has length %d",
				ErrInvalidField, c.Name, len(c.Points), i, f.Data.Shape[i])
		}
	}

	for _, a := range f.Aux {
		if err := claim(a.Name); err != nil {
			return err
		}

		if a.Dim < 0 || a.Dim >= len(f.Dims) {
			return fmt.Errorf("%w: aux coordinate %q bound to missing dimension %d", ErrInvalidField, a.Name, a.Dim)
		}

		if len(a.Points) != f.Data.Shape[a.Dim] {
			return fmt.Errorf("%w: aux coordinate %q has %d points, dimension %d has length %d",
				ErrInvalidField, a.Name, len(a.Points), a.Dim, f.Data.Shape[a.Dim])
		}
	}

	for _, s := range f.Scalars {
		if err := claim(s.Name); err != nil {
			return err
		}
	}

	return nil
}

// NDim returns the number of dimensions.
func (f *Field) NDim() int { return len(f.Data.Shape) }

// Shape returns a copy of the data shape.
func (f *Field) Shape() []int { return slices.Clone(f.Data.Shape) }

// AxisDim returns the index of the only dimension whose coordinate has
// the given axis.
func (f *Field) AxisDim(axis Axis) (int, error) {
	found := -1

	for i, c := range f.Dims {
		if c.Axis != axis {
			continue
		}

		if found >= 0 {
			return -1, fmt.Errorf("%w: %q and %q are both %v", ErrAxisAmbiguous, f.Dims[found].Name, c.Name, axis)
		}

		found = i
	}

	if found < 0 {
		return -1, fmt.Errorf("%w: %v in %q", ErrAxisNotFound, axis, f.Name)
	}

	return found, nil
}

// DimIndex returns the dimension whose coordinate is called name, or -1.
func (f *Field) DimIndex(name string) int {
	return slices.IndexFunc(f.Dims, func(c Coord) bool { return c.Name == name })
}

// Copy returns a deep copy.
func (f *Field) Copy() *Field {
	out := f.shell()
	if f.Data != nil {
		out.Data = f.Data.Copy()
	}

	return out
}

// shell deep-copies everything but the data.
func (f *Field) shell() *Field {
	out := &Field{
		Name:       f.Name,
		Units:      f.Units,
		Attributes: maps.Clone(f.Attributes),
		Dims:       make([]Coord, len(f.Dims)),
		Aux:        make([]AuxCoord, len(f.Aux)),
		Scalars:    slices.Clone(f.Scalars),
	}

	for i, c := range f.Dims {
		out.Dims[i] = c.clone()
	}

	for i, a := range f.Aux {
		out.Aux[i] = AuxCoord{Coord: a.clone(), Dim: a.Dim}
	}

	return out
}

func (c Coord) clone() Coord {
	c.Points = slices.Clone(c.Points)
	return c
}

func (c Coord) equal(o Coord) bool {
	return c.Name == o.Name && c.Units == o.Units && c.Axis == o.Axis && slices.Equal(c.Points, o.Points)
}

// scalarAt turns point i of c into a scalar coordinate.
func (c Coord) scalarAt(i int) ScalarCoord {
	return ScalarCoord{Name: c.Name, Units: c.Units, Axis: c.Axis, Value: c.Points[i]}
}

// forEachIndex calls fn for every index of shape in row-major order. idx
// is reused between calls.
func forEachIndex(shape []int, fn func(idx []int)) {
	for _, n := range shape {
		if n == 0 {
			return
		}
	}

	idx := make([]int, len(shape))
	for {
		fn(idx)

		k := len(shape) - 1
		for ; k >= 0; k-- {
			idx[k]++
			if idx[k] < shape[k] {
				break
			}

			idx[k] = 0
		}

		if k < 0 {
			return
		}
	}
}
