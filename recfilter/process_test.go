package recfilter

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cwbudde/algo-recfilter/field"
	"github.com/cwbudde/algo-recfilter/grid"
	"github.com/cwbudde/algo-recfilter/halo"
	"github.com/cwbudde/algo-recfilter/internal/testutil"
)

var metadataOpts = []cmp.Option{
	cmpopts.IgnoreFields(field.Field{}, "Data"),
	cmpopts.EquateEmpty(),
}

func TestProcessZeroAlphasIsIdentity(t *testing.T) {
	for _, policy := range []halo.Policy{halo.PolicyMean, halo.PolicyEdge, halo.PolicyZero} {
		f := gridField(t, testutil.NoiseGrid(11, 6, 9, 5))
		cfg := mustConfig(t, WithAlphaX(0), WithAlphaY(0), WithIterations(3), WithEdgeWidth(2), WithHaloPolicy(policy))

		got, err := Process(cfg, f, nil, nil)
		if err != nil {
			t.Fatalf("%v: Process: %v", policy, err)
		}

		if !fieldGrid(t, got).Equal(fieldGrid(t, f)) {
			t.Errorf("%v: zero alphas changed the field", policy)
		}
	}
}

func TestProcessOnesUnchanged(t *testing.T) {
	f := gridField(t, grid.Filled(3, 3, 1))
	cfg := mustConfig(t, WithAlphaX(0.5), WithAlphaY(0), WithIterations(1), WithEdgeWidth(0))

	got, err := Process(cfg, f, nil, nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if want := grid.Filled(3, 3, 1); !fieldGrid(t, got).Equal(want) {
		t.Errorf("got %v, want all ones", fieldGrid(t, got).ToRows())
	}
}

func TestProcessMatchesManualPipeline(t *testing.T) {
	data := testutil.NoiseGrid(12, 7, 5, 4)
	f := gridField(t, data)
	cfg := mustConfig(t, WithAlphaX(0.6), WithAlphaY(0.3), WithIterations(2), WithEdgeWidth(1))

	got, err := Process(cfg, f, nil, nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	padded, err := halo.Pad(data, 1, 1, halo.PolicyMean)
	if err != nil {
		t.Fatal(err)
	}

	if err := Run(padded, grid.Filled(9, 7, 0.6), grid.Filled(9, 7, 0.3), 2); err != nil {
		t.Fatal(err)
	}

	want, err := halo.Unpad(padded, 1, 1)
	if err != nil {
		t.Fatal(err)
	}

	if !fieldGrid(t, got).Equal(want) {
		t.Errorf("Process = %v, want %v", fieldGrid(t, got).ToRows(), want.ToRows())
	}
}

func TestProcessImpulseDecaysSymmetrically(t *testing.T) {
	const (
		rows   = 201
		centre = rows / 2
	)

	f := gridField(t, testutil.ImpulseGrid(rows, 5, centre, 2))
	cfg := mustConfig(t, WithAlphaX(0.9), WithAlphaY(0), WithIterations(3))

	got, err := Process(cfg, f, nil, nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	g := fieldGrid(t, got)
	profile := g.Col(2, nil)

	for d := 0; d <= 20; d++ {
		if diff := profile[centre-d] - profile[centre+d]; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("profile[%+d] and profile[%+d] differ by %g", -d, d, diff)
		}
	}

	for d := range 80 {
		if profile[centre+d+1] >= profile[centre+d] {
			t.Fatalf("profile not decaying at +%d: %g >= %g", d+1, profile[centre+d+1], profile[centre+d])
		}
	}

	for d := 30; d < 80; d++ {
		ratio := profile[centre+d+1] / profile[centre+d]
		if ratio < 0.9 || ratio > 0.96 {
			t.Errorf("decay ratio at +%d = %g, want geometric close to alpha", d, ratio)
		}
	}

	// alpha_y = 0 keeps the other columns at zero
	for _, c := range []int{0, 1, 3, 4} {
		for r, v := range g.Col(c, nil) {
			if v != 0 {
				t.Fatalf("cell (%d, %d) = %g, want 0", r, c, v)
			}
		}
	}
}

func TestProcessPreservesShapeAndCoordinates(t *testing.T) {
	f := wavyField(t,
		field.Coord{Name: "realization", Units: "1", Points: []float64{0, 1}},
		field.Coord{Name: "time", Units: "hours since 1970-01-01", Axis: field.AxisT, Points: []float64{5, 6, 7}},
		xc(6),
		yc(4),
	)
	f.Aux = []field.AuxCoord{{Coord: field.Coord{Name: "forecast_period", Units: "hours", Points: []float64{1, 2, 3}}, Dim: 1}}
	f.Scalars = []field.ScalarCoord{{Name: "height", Units: "m", Value: 1.5}}
	f.Attributes = map[string]string{"source": "test"}

	before := f.Copy()
	cfg := mustConfig(t, WithAlphaX(0.5), WithAlphaY(0.5), WithIterations(2))

	got, err := Process(cfg, f, nil, nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if diff := cmp.Diff(f, got, metadataOpts...); diff != "" {
		t.Errorf("metadata changed (-want +got):\n%s", diff)
	}

	if !cmp.Equal(f.Shape(), got.Shape()) {
		t.Errorf("shape = %v, want %v", got.Shape(), f.Shape())
	}

	if !cmp.Equal(before.Data.Elements, f.Data.Elements) {
		t.Error("Process modified its input")
	}

	// each output slice is the filtered input slice
	in, err := f.HorizontalSlices()
	if err != nil {
		t.Fatal(err)
	}

	out, err := got.HorizontalSlices()
	if err != nil {
		t.Fatal(err)
	}

	single := mustConfig(t, WithAlphaX(0.5), WithAlphaY(0.5), WithIterations(2))
	for i := range in {
		want, err := Process(single, in[i], nil, nil)
		if err != nil {
			t.Fatal(err)
		}

		testutil.RequireGridNearlyEqual(t, fieldGrid(t, out[i]), fieldGrid(t, want), 0)
	}
}

func TestProcessRepeatingAuxCoordinate(t *testing.T) {
	f := wavyField(t,
		field.Coord{Name: "time", Units: "hours since 1970-01-01", Axis: field.AxisT, Points: []float64{0, 1, 2}},
		yc(4),
		xc(4),
	)
	f.Aux = []field.AuxCoord{{Coord: field.Coord{Name: "day", Units: "1", Points: []float64{1, 1, 2}}, Dim: 0}}

	for _, workers := range []int{1, 2} {
		cfg := mustConfig(t, WithAlphaX(0.5), WithAlphaY(0.5), WithIterations(1), WithWorkers(workers))

		got, err := Process(cfg, f, nil, nil)
		if err != nil {
			t.Fatalf("workers %d: Process: %v", workers, err)
		}

		if diff := cmp.Diff(f, got, metadataOpts...); diff != "" {
			t.Errorf("workers %d: metadata changed (-want +got):\n%s", workers, diff)
		}
	}
}

func TestProcessParallelMatchesSequential(t *testing.T) {
	f := wavyField(t,
		field.Coord{Name: "time", Axis: field.AxisT, Points: []float64{0, 1, 2, 3, 4, 5, 6}},
		yc(9),
		xc(8),
	)

	seq, err := Process(mustConfig(t, WithAlphaX(0.7), WithAlphaY(0.4), WithIterations(3)), f, nil, nil)
	if err != nil {
		t.Fatalf("sequential: %v", err)
	}

	par, err := Process(mustConfig(t, WithAlphaX(0.7), WithAlphaY(0.4), WithIterations(3), WithWorkers(3)), f, nil, nil)
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}

	if !cmp.Equal(seq.Data.Elements, par.Data.Elements) {
		t.Error("parallel result differs from sequential")
	}
}

func TestProcessSuppliedAlphaFields(t *testing.T) {
	f := wavyField(t, field.Coord{Name: "time", Axis: field.AxisT, Points: []float64{0, 1}}, yc(4), xc(5))
	alphas := gridField(t, grid.Filled(4, 5, 0.35))

	fromFields, err := Process(mustConfig(t, WithIterations(2)), f, alphas, alphas)
	if err != nil {
		t.Fatalf("Process with alpha fields: %v", err)
	}

	fromScalars, err := Process(mustConfig(t, WithAlphaX(0.35), WithAlphaY(0.35), WithIterations(2)), f, nil, nil)
	if err != nil {
		t.Fatalf("Process with scalars: %v", err)
	}

	if !cmp.Equal(fromFields.Data.Elements, fromScalars.Data.Elements) {
		t.Error("uniform alpha fields differ from the equivalent scalars")
	}
}

func TestProcessErrors(t *testing.T) {
	square := gridField(t, grid.New(3, 3))

	t.Run("missing alpha", func(t *testing.T) {
		_, err := Process(mustConfig(t, WithAlphaX(0.5), WithIterations(1)), square, nil, nil)
		if !errors.Is(err, ErrMissingAlpha) {
			t.Fatalf("err = %v, want ErrMissingAlpha", err)
		}
	})

	t.Run("shape mismatch", func(t *testing.T) {
		_, err := Process(mustConfig(t, WithAlphaY(0.5), WithIterations(1)), square, gridField(t, grid.Filled(4, 4, 0.5)), nil)

		var mismatch *ShapeMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("err = %v, want *ShapeMismatchError", err)
		}

		if mismatch.Expected != (grid.Shape{Rows: 3, Cols: 3}) || mismatch.Actual != (grid.Shape{Rows: 4, Cols: 4}) {
			t.Errorf("mismatch = %+v", mismatch)
		}

		if !strings.Contains(err.Error(), "(4, 4)") || !strings.Contains(err.Error(), "(3, 3)") {
			t.Errorf("message %q should report both shapes", err)
		}
	})

	t.Run("iterations unset", func(t *testing.T) {
		_, err := Process(mustConfig(t, WithAlphaX(0.5), WithAlphaY(0.5)), square, nil, nil)
		if !errors.Is(err, ErrConfiguration) {
			t.Fatalf("err = %v, want ErrConfiguration", err)
		}
	})

	t.Run("no horizontal axes", func(t *testing.T) {
		f := wavyField(t, field.Coord{Name: "time", Axis: field.AxisT, Points: []float64{0, 1}}, xc(3))

		_, err := Process(mustConfig(t, WithAlphaX(0.5), WithAlphaY(0.5), WithIterations(1)), f, nil, nil)
		if !errors.Is(err, field.ErrAxisNotFound) {
			t.Fatalf("err = %v, want field.ErrAxisNotFound", err)
		}
	})

	t.Run("merge", func(t *testing.T) {
		// two slices at the same time cannot be told apart
		f := wavyField(t, field.Coord{Name: "time", Axis: field.AxisT, Points: []float64{5, 5}}, yc(3), xc(3))

		for _, workers := range []int{1, 2} {
			cfg := mustConfig(t, WithAlphaX(0.5), WithAlphaY(0.5), WithIterations(1), WithWorkers(workers))

			got, err := Process(cfg, f, nil, nil)
			if !errors.Is(err, ErrMerge) {
				t.Fatalf("workers %d: err = %v, want ErrMerge", workers, err)
			}

			if got != nil {
				t.Errorf("workers %d: partial result returned", workers)
			}
		}
	})

	t.Run("nil field", func(t *testing.T) {
		_, err := Process(mustConfig(t, WithIterations(1)), nil, nil, nil)
		if !errors.Is(err, field.ErrInvalidField) {
			t.Fatalf("err = %v, want field.ErrInvalidField", err)
		}
	})
}
