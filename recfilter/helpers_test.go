package recfilter

import (
	"math"
	"testing"

	"github.com/ctessum/sparse"

	"github.com/cwbudde/algo-recfilter/field"
	"github.com/cwbudde/algo-recfilter/grid"
)

func axisCoord(name string, axis field.Axis, n int) field.Coord {
	pts := make([]float64, n)
	for i := range pts {
		pts[i] = float64(i) * 1000
	}

	return field.Coord{Name: name, Units: "m", Axis: axis, Points: pts}
}

func yc(n int) field.Coord { return axisCoord("projection_y_coordinate", field.AxisY, n) }

func xc(n int) field.Coord { return axisCoord("projection_x_coordinate", field.AxisX, n) }

// gridField wraps g in a 2D (y, x) field.
func gridField(t *testing.T, g *grid.Grid) *field.Field {
	t.Helper()

	shell, err := field.New("air_temperature", "K", sparse.ZerosDense(g.Rows(), g.Cols()), yc(g.Rows()), xc(g.Cols()))
	if err != nil {
		t.Fatalf("field.New: %v", err)
	}

	f, err := shell.WithGrid(g)
	if err != nil {
		t.Fatalf("WithGrid: %v", err)
	}

	return f
}

// wavyField builds a field over dims whose cells vary smoothly with their
// row-major offset.
func wavyField(t testing.TB, dims ...field.Coord) *field.Field {
	t.Helper()

	shape := make([]int, len(dims))
	size := 1

	for i, c := range dims {
		shape[i] = len(c.Points)
		size *= shape[i]
	}

	data := sparse.ZerosDense(shape...)
	for k := range size {
		data.Elements[k] = 280 + 5*math.Sin(0.37*float64(k)) + math.Cos(1.3*float64(k))
	}

	f, err := field.New("air_temperature", "K", data, dims...)
	if err != nil {
		t.Fatalf("field.New: %v", err)
	}

	return f
}

func mustConfig(t *testing.T, opts ...Option) Config {
	t.Helper()

	cfg, err := NewConfig(opts...)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	return cfg
}

func fieldGrid(t *testing.T, f *field.Field) *grid.Grid {
	t.Helper()

	g, err := f.Grid()
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}

	return g
}

// Plain-loop renditions of the sweeps, written straight from the
// recurrence.
func refForwardX(g, a *grid.Grid) {
	for i := 1; i < g.Rows(); i++ {
		for j := range g.Cols() {
			g.Set(i, j, (1-a.At(i, j))*g.At(i, j)+a.At(i, j)*g.At(i-1, j))
		}
	}
}

func refBackwardX(g, a *grid.Grid) {
	for i := g.Rows() - 2; i >= 0; i-- {
		for j := range g.Cols() {
			g.Set(i, j, (1-a.At(i, j))*g.At(i, j)+a.At(i, j)*g.At(i+1, j))
		}
	}
}

func refForwardY(g, a *grid.Grid) {
	for j := 1; j < g.Cols(); j++ {
		for i := range g.Rows() {
			g.Set(i, j, (1-a.At(i, j))*g.At(i, j)+a.At(i, j)*g.At(i, j-1))
		}
	}
}

func refBackwardY(g, a *grid.Grid) {
	for j := g.Cols() - 2; j >= 0; j-- {
		for i := range g.Rows() {
			g.Set(i, j, (1-a.At(i, j))*g.At(i, j)+a.At(i, j)*g.At(i, j+1))
		}
	}
}
