package field

import (
	"testing"

	"github.com/ctessum/sparse"
	"github.com/stretchr/testify/require"
)

func TestMergeReconcileRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		dims []Coord
	}{
		{name: "2D", dims: []Coord{yCoord, xCoord}},
		{name: "time first", dims: []Coord{tCoord, yCoord, xCoord}},
		{name: "4D", dims: []Coord{rCoord, tCoord, yCoord, xCoord}},
		{name: "horizontal leading", dims: []Coord{yCoord, xCoord, tCoord}},
		{name: "x before y", dims: []Coord{xCoord, rCoord, yCoord}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := rampField(t, tt.dims...)
			f.Attributes = map[string]string{"institution": "test"}
			f.Scalars = []ScalarCoord{{Name: "height", Units: "m", Value: 2}}

			parts, err := f.HorizontalSlices()
			require.NoError(t, err)

			merged, err := Merge(parts)
			require.NoError(t, err)
			require.NoError(t, merged.Validate())

			got, err := Reconcile(f, merged)
			require.NoError(t, err)
			requireSameField(t, f, got)
		})
	}
}

func TestMergeStacksInScalarOrder(t *testing.T) {
	f := rampField(t, rCoord, tCoord, yCoord, xCoord)

	parts, err := f.HorizontalSlices()
	require.NoError(t, err)

	merged, err := Merge(parts)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 2, 3}, merged.Shape())
	require.Equal(t, "realization", merged.Dims[0].Name)
	require.Equal(t, tCoord.Points, merged.Dims[1].Points)
	require.Empty(t, merged.Scalars)
}

func TestMergePairsAuxCoordinates(t *testing.T) {
	f := rampField(t, rCoord, tCoord, yCoord, xCoord)
	f.Aux = []AuxCoord{{Coord: Coord{Name: "forecast_period", Units: "hours", Points: points(0, 1, 2)}, Dim: 1}}
	require.NoError(t, f.Validate())

	parts, err := f.HorizontalSlices()
	require.NoError(t, err)

	merged, err := Merge(parts)
	require.NoError(t, err)
	require.Len(t, merged.Dims, 4)
	require.Equal(t, []AuxCoord{{Coord: Coord{Name: "forecast_period", Units: "hours", Points: points(0, 1, 2)}, Dim: 1}}, merged.Aux)

	got, err := Reconcile(f, merged)
	require.NoError(t, err)
	requireSameField(t, f, got)
}

func TestMergeKeepsRepeatingAuxCoordinates(t *testing.T) {
	f := rampField(t, tCoord, yCoord, xCoord)
	f.Aux = []AuxCoord{{Coord: Coord{Name: "day", Units: "1", Points: points(1, 1, 2)}, Dim: 0}}
	require.NoError(t, f.Validate())

	parts, err := f.HorizontalSlices()
	require.NoError(t, err)

	merged, err := Merge(parts)
	require.NoError(t, err)
	require.Equal(t, []int{3, 2, 3}, merged.Shape())
	require.Equal(t, []AuxCoord{{Coord: Coord{Name: "day", Units: "1", Points: points(1, 1, 2)}, Dim: 0}}, merged.Aux)

	got, err := Reconcile(f, merged)
	require.NoError(t, err)
	requireSameField(t, f, got)
}

func TestMergeErrors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := Merge(nil)
		require.ErrorIs(t, err, ErrMerge)
	})

	t.Run("repeated points", func(t *testing.T) {
		f := rampField(t, Coord{Name: "time", Axis: AxisT, Points: points(5, 5)}, yCoord, xCoord)

		parts, err := f.HorizontalSlices()
		require.NoError(t, err)

		_, err = Merge(parts)
		require.ErrorIs(t, err, ErrMerge)
	})

	t.Run("incomplete product", func(t *testing.T) {
		f := rampField(t, rCoord, tCoord, yCoord, xCoord)

		parts, err := f.HorizontalSlices()
		require.NoError(t, err)

		_, err = Merge(parts[:5])
		require.ErrorIs(t, err, ErrMerge)
	})

	t.Run("repeated combination", func(t *testing.T) {
		f := rampField(t, tCoord, yCoord, xCoord)

		parts, err := f.HorizontalSlices()
		require.NoError(t, err)

		// two slices at t=10 leave two distinct times for three slices
		parts[2].Scalars[0].Value = 10

		_, err = Merge(parts)
		require.ErrorIs(t, err, ErrMerge)
	})

	t.Run("metadata differs", func(t *testing.T) {
		f := rampField(t, tCoord, yCoord, xCoord)

		parts, err := f.HorizontalSlices()
		require.NoError(t, err)

		parts[1].Units = "degC"

		_, err = Merge(parts)
		require.ErrorIs(t, err, ErrMerge)
	})

	t.Run("horizontal coords differ", func(t *testing.T) {
		f := rampField(t, tCoord, yCoord, xCoord)

		parts, err := f.HorizontalSlices()
		require.NoError(t, err)

		parts[2].Dims[1].Points[0] = 1

		_, err = Merge(parts)
		require.ErrorIs(t, err, ErrMerge)
	})
}

func TestReconcilePromotesLengthOneDims(t *testing.T) {
	f := rampField(t, Coord{Name: "realization", Points: points(3)}, yCoord, xCoord)

	parts, err := f.HorizontalSlices()
	require.NoError(t, err)

	merged, err := Merge(parts)
	require.NoError(t, err)
	require.Equal(t, 2, merged.NDim())
	require.Equal(t, "realization", merged.Scalars[0].Name)

	got, err := Reconcile(f, merged)
	require.NoError(t, err)
	requireSameField(t, f, got)
}

func TestReconcileSqueezesScalarDims(t *testing.T) {
	f := rampField(t, yCoord, xCoord)
	f.Scalars = []ScalarCoord{{Name: "realization", Value: 0}}

	data := sparse.ZerosDense(1, 2, 3)
	forEachIndex([]int{2, 3}, func(idx []int) {
		data.Set(f.Data.Get(idx...), 0, idx[0], idx[1])
	})

	candidate, err := New(f.Name, f.Units, data, Coord{Name: "realization", Points: points(0)}, yCoord, xCoord)
	require.NoError(t, err)

	got, err := Reconcile(f, candidate)
	require.NoError(t, err)
	requireSameField(t, f, got)
}

func TestReconcileErrors(t *testing.T) {
	f := rampField(t, tCoord, yCoord, xCoord)

	t.Run("missing dimension", func(t *testing.T) {
		candidate := rampField(t, yCoord, xCoord)

		_, err := Reconcile(f, candidate)
		require.ErrorIs(t, err, ErrReconcile)
	})

	t.Run("points differ", func(t *testing.T) {
		candidate := rampField(t, Coord{Name: "time", Axis: AxisT, Points: points(1, 2, 3)}, yCoord, xCoord)

		_, err := Reconcile(f, candidate)
		require.ErrorIs(t, err, ErrReconcile)
	})

	t.Run("extra dimension", func(t *testing.T) {
		candidate := rampField(t, rCoord, tCoord, yCoord, xCoord)

		_, err := Reconcile(f, candidate)
		require.ErrorIs(t, err, ErrReconcile)
	})
}
