// Package recfilter smooths gridded fields with a separable recursive
// (IIR) filter.
//
// Each 2D (y, x) slice of a [field.Field] is padded with a halo and swept
// four times per iteration: forward and backward along the rows, then
// forward and backward along the columns. Every sweep applies the
// first-order recurrence
//
//	g[i] = (1 - a[i]) * g[i] + a[i] * g[i-1]
//
// where a is a per-cell smoothing weight ("alpha") in [0, 1). An alpha of
// zero leaves a cell untouched; values close to one spread it far.
//
// Configuration follows the functional options pattern:
//
//	cfg, err := recfilter.NewConfig(
//		recfilter.WithAlphaX(0.5),
//		recfilter.WithAlphaY(0.5),
//		recfilter.WithIterations(4),
//	)
//	if err != nil {
//		return err
//	}
//
//	smoothed, err := recfilter.Process(cfg, temperature, nil, nil)
//
// The filtered slices are merged and reconciled with the input, so the
// result has the input's shape, dimension order and coordinates.
//
// [Kernel] and [MagnitudeResponse] describe the effective 1D smoothing
// for a constant alpha.
package recfilter
