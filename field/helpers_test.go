package field

import (
	"testing"

	"github.com/ctessum/sparse"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func points(vals ...float64) []float64 { return vals }

// rampField builds a field whose cells hold their row-major offset.
func rampField(t *testing.T, dims ...Coord) *Field {
	t.Helper()

	shape := make([]int, len(dims))
	for i, c := range dims {
		shape[i] = len(c.Points)
	}

	data := sparse.ZerosDense(shape...)
	k := 0.0

	forEachIndex(shape, func(idx []int) {
		data.Set(k, idx...)
		k++
	})

	f, err := New("air_temperature", "K", data, dims...)
	require.NoError(t, err)

	return f
}

var (
	yCoord = Coord{Name: "projection_y_coordinate", Units: "m", Axis: AxisY, Points: points(0, 2000)}
	xCoord = Coord{Name: "projection_x_coordinate", Units: "m", Axis: AxisX, Points: points(0, 2000, 4000)}
	tCoord = Coord{Name: "time", Units: "hours since 1970-01-01", Axis: AxisT, Points: points(10, 11, 12)}
	rCoord = Coord{Name: "realization", Units: "1", Points: points(0, 1)}
)

var fieldOpts = []cmp.Option{
	cmpopts.IgnoreFields(Field{}, "Data"),
	cmpopts.EquateEmpty(),
}

// requireSameField compares metadata and cell values.
func requireSameField(t *testing.T, want, got *Field) {
	t.Helper()

	if diff := cmp.Diff(want, got, fieldOpts...); diff != "" {
		t.Fatalf("field metadata mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, want.Data.Shape, got.Data.Shape)

	forEachIndex(want.Data.Shape, func(idx []int) {
		require.Equal(t, want.Data.Get(idx...), got.Data.Get(idx...), "cell %v", idx)
	})
}
