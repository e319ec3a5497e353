package recfilter

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-recfilter/field"
	"github.com/cwbudde/algo-recfilter/grid"
	"github.com/cwbudde/algo-recfilter/halo"
)

// Process filters every (y, x) slice of f and returns a new field with
// f's shape, dimension order and coordinates. f is not modified.
//
// alphasX and alphasY are optional per-cell alpha fields; a nil field
// falls back to the scalar alpha of cfg. The padded alpha grids are built
// once from the first slice and shared by all slices and iterations.
//
// Slices run one at a time unless cfg has more than one worker. Any
// failure aborts the whole call; no partial result is returned.
func Process(cfg Config, f *field.Field, alphasX, alphasY *field.Field) (*field.Field, error) {
	if f == nil || f.Data == nil {
		return nil, fmt.Errorf("%w: nil field", field.ErrInvalidField)
	}

	if cfg.iterations < 1 {
		return nil, fmt.Errorf("%w: iterations not set", ErrConfiguration)
	}

	slices, err := f.HorizontalSlices()
	if err != nil {
		return nil, err
	}

	if len(slices) == 0 {
		return nil, fmt.Errorf("%w: %q has no cells", field.ErrInvalidField, f.Name)
	}

	ax, err := cfg.BuildAlphas(slices[0], field.AxisX, alphasX)
	if err != nil {
		return nil, err
	}

	ay, err := cfg.BuildAlphas(slices[0], field.AxisY, alphasY)
	if err != nil {
		return nil, err
	}

	log := Logger()
	log.Debug("recfilter: processing",
		slog.String("field", f.Name),
		slog.Int("slices", len(slices)),
		slog.String("alpha_shape", ax.Shape().String()),
		slog.String("config", cfg.String()))

	s := &slicer{
		cfg:  cfg,
		wx:   newWeights(ax),
		wy:   newWeights(ay),
		pool: grid.NewPool(),
		log:  log,
	}
	out := make([]*field.Field, len(slices))

	if cfg.workers > 1 && len(slices) > 1 {
		var eg errgroup.Group

		eg.SetLimit(cfg.workers)

		for i, slice := range slices {
			eg.Go(func() error {
				var err error

				out[i], err = s.filter(i, slice)

				return err
			})
		}

		if err := eg.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, slice := range slices {
			if out[i], err = s.filter(i, slice); err != nil {
				return nil, err
			}
		}
	}

	merged, err := field.Merge(out)
	if err != nil {
		return nil, err
	}

	return field.Reconcile(f, merged)
}

// slicer filters single slices with shared, read-only weights.
type slicer struct {
	cfg    Config
	wx, wy weights
	pool   *grid.Pool
	log    *slog.Logger
}

func (s *slicer) filter(i int, slice *field.Field) (*field.Field, error) {
	start := time.Now()

	g, err := slice.Grid()
	if err != nil {
		return nil, err
	}

	w := s.cfg.edgeWidth
	padded := s.pool.Get(0, 0)

	defer s.pool.Put(padded)

	if err := halo.PadInto(padded, g, w, w, s.cfg.policy); err != nil {
		return nil, err
	}

	if err := checkShape(fmt.Sprintf("slice %d", i), s.wx.alpha.Shape(), padded.Shape()); err != nil {
		return nil, err
	}

	run(padded, s.wx, s.wy, s.cfg.iterations, make([]float64, padded.Cols()))

	trimmed, err := halo.Unpad(padded, w, w)
	if err != nil {
		return nil, err
	}

	s.log.Debug("recfilter: slice done", slog.Int("slice", i), slog.Duration("elapsed", time.Since(start)))

	return slice.WithGrid(trimmed)
}
