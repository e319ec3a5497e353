package field

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/ctessum/sparse"
	"github.com/goccy/go-yaml"
)

// Format selects the document encoding used by [Encode].
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// document is the on-disk form of a field. Data is flattened row-major
// in dimension order.
type document struct {
	Name       string            `yaml:"name"`
	Units      string            `yaml:"units,omitempty"`
	Attributes map[string]string `yaml:"attributes,omitempty"`
	Dims       []coordDoc        `yaml:"dims"`
	Aux        []auxDoc          `yaml:"aux,omitempty"`
	Scalars    []scalarDoc       `yaml:"scalars,omitempty"`
	Data       []float64         `yaml:"data"`
}

type coordDoc struct {
	Name   string    `yaml:"name"`
	Units  string    `yaml:"units,omitempty"`
	Axis   string    `yaml:"axis,omitempty"`
	Points []float64 `yaml:"points"`
}

type auxDoc struct {
	Name   string    `yaml:"name"`
	Units  string    `yaml:"units,omitempty"`
	Axis   string    `yaml:"axis,omitempty"`
	Dim    int       `yaml:"dim"`
	Points []float64 `yaml:"points"`
}

type scalarDoc struct {
	Name  string  `yaml:"name"`
	Units string  `yaml:"units,omitempty"`
	Axis  string  `yaml:"axis,omitempty"`
	Value float64 `yaml:"value"`
}

// Decode reads a YAML or JSON field document.
func Decode(r io.Reader) (*Field, error) {
	var doc document
	if err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(&doc); err != nil {
		return nil, fmt.Errorf("field: decode: %w", err)
	}

	if len(doc.Dims) == 0 {
		return nil, fmt.Errorf("%w: document has no dimensions", ErrInvalidField)
	}

	f := &Field{Name: doc.Name, Units: doc.Units, Attributes: doc.Attributes}
	shape := make([]int, len(doc.Dims))
	size := 1

	for i, cd := range doc.Dims {
		c, err := cd.coord()
		if err != nil {
			return nil, err
		}

		f.Dims = append(f.Dims, c)
		shape[i] = len(c.Points)
		size *= shape[i]
	}

	for _, ad := range doc.Aux {
		c, err := coordDoc{Name: ad.Name, Units: ad.Units, Axis: ad.Axis, Points: ad.Points}.coord()
		if err != nil {
			return nil, err
		}

		f.Aux = append(f.Aux, AuxCoord{Coord: c, Dim: ad.Dim})
	}

	for _, sd := range doc.Scalars {
		axis, err := ParseAxis(sd.Axis)
		if err != nil {
			return nil, err
		}

		f.Scalars = append(f.Scalars, ScalarCoord{Name: sd.Name, Units: sd.Units, Axis: axis, Value: sd.Value})
	}

	if len(doc.Data) != size {
		return nil, fmt.Errorf("%w: %d data values for shape %v", ErrInvalidField, len(doc.Data), shape)
	}

	f.Data = sparse.ZerosDense(shape...)
	k := 0

	forEachIndex(shape, func(idx []int) {
		f.Data.Set(doc.Data[k], idx...)
		k++
	})

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// Encode writes f as a YAML or JSON document. JSON has no NaN or
// infinity, so FormatJSON rejects fields holding them with
// [ErrInvalidField]; YAML writes them as .nan and .inf.
func Encode(w io.Writer, f *Field, format Format) error {
	if format == FormatJSON {
		if err := checkFinite(f); err != nil {
			return err
		}
	}

	doc := document{Name: f.Name, Units: f.Units, Attributes: f.Attributes}

	for _, c := range f.Dims {
		doc.Dims = append(doc.Dims, docCoord(c))
	}

	for _, a := range f.Aux {
		doc.Aux = append(doc.Aux, auxDoc{Name: a.Name, Units: a.Units, Axis: a.Axis.String(), Dim: a.Dim, Points: a.Points})
	}

	for _, s := range f.Scalars {
		doc.Scalars = append(doc.Scalars, scalarDoc{Name: s.Name, Units: s.Units, Axis: s.Axis.String(), Value: s.Value})
	}

	doc.Data = make([]float64, 0, len(f.Data.Elements))
	forEachIndex(f.Data.Shape, func(idx []int) {
		doc.Data = append(doc.Data, f.Data.Get(idx...))
	})

	var opts []yaml.EncodeOption
	if format == FormatJSON {
		opts = append(opts, yaml.JSON())
	}

	out, err := yaml.MarshalWithOptions(doc, opts...)
	if err != nil {
		return fmt.Errorf("field: encode: %w", err)
	}

	if !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}

	_, err = w.Write(out)

	return err
}

func checkFinite(f *Field) error {
	notFinite := func(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

	if i := slices.IndexFunc(f.Data.Elements, notFinite); i >= 0 {
		return fmt.Errorf("%w: %q holds %g at offset %d, which JSON cannot represent", ErrInvalidField, f.Name, f.Data.Elements[i], i)
	}

	for _, c := range f.Dims {
		if slices.ContainsFunc(c.Points, notFinite) {
			return fmt.Errorf("%w: coordinate %q is not finite, which JSON cannot represent", ErrInvalidField, c.Name)
		}
	}

	for _, a := range f.Aux {
		if slices.ContainsFunc(a.Points, notFinite) {
			return fmt.Errorf("%w: coordinate %q is not finite, which JSON cannot represent", ErrInvalidField, a.Name)
		}
	}

	for _, sc := range f.Scalars {
		if notFinite(sc.Value) {
			return fmt.Errorf("%w: coordinate %q is not finite, which JSON cannot represent", ErrInvalidField, sc.Name)
		}
	}

	return nil
}

func (cd coordDoc) coord() (Coord, error) {
	axis, err := ParseAxis(cd.Axis)
	if err != nil {
		return Coord{}, err
	}

	return Coord{Name: cd.Name, Units: cd.Units, Axis: axis, Points: cd.Points}, nil
}

func docCoord(c Coord) coordDoc {
	return coordDoc{Name: c.Name, Units: c.Units, Axis: c.Axis.String(), Points: c.Points}
}
