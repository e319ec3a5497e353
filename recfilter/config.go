package recfilter

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-recfilter/halo"
)

const (
	defaultEdgeWidth = 1
	defaultPolicy    = halo.PolicyMean
	defaultWorkers   = 1
)

// Config holds the filter parameters. It is immutable once built by
// [NewConfig] and safe for concurrent use.
type Config struct {
	alphaX     float64
	alphaY     float64
	hasAlphaX  bool
	hasAlphaY  bool
	iterations int
	edgeWidth  int
	policy     halo.Policy
	workers    int
}

func defaultConfig() Config {
	return Config{
		edgeWidth: defaultEdgeWidth,
		policy:    defaultPolicy,
		workers:   defaultWorkers,
	}
}

// Option configures a [Config].
type Option func(*Config) error

// NewConfig builds a Config from opts. Alphas and iterations have no
// default: an alpha can instead come from an alpha field at [Process]
// time, and Process fails without iterations.
func NewConfig(opts ...Option) (Config, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

// WithAlphaX sets the scalar smoothing weight of the x sweeps, in [0, 1).
func WithAlphaX(alpha float64) Option {
	return func(cfg *Config) error {
		if err := validateAlpha("alpha_x", alpha); err != nil {
			return err
		}

		cfg.alphaX, cfg.hasAlphaX = alpha, true

		return nil
	}
}

// WithAlphaY sets the scalar smoothing weight of the y sweeps, in [0, 1).
func WithAlphaY(alpha float64) Option {
	return func(cfg *Config) error {
		if err := validateAlpha("alpha_y", alpha); err != nil {
			return err
		}

		cfg.alphaY, cfg.hasAlphaY = alpha, true

		return nil
	}
}

// WithIterations sets how many times the four sweeps run (>= 1).
func WithIterations(n int) Option {
	return func(cfg *Config) error {
		if n < 1 {
			return fmt.Errorf("%w: iterations must be >= 1: %d", ErrConfiguration, n)
		}

		cfg.iterations = n

		return nil
	}
}

// WithEdgeWidth sets the halo width added on every edge of a slice
// (default 1, must be >= 0).
func WithEdgeWidth(width int) Option {
	return func(cfg *Config) error {
		if width < 0 {
			return fmt.Errorf("%w: edge width must be >= 0: %d", ErrConfiguration, width)
		}

		cfg.edgeWidth = width

		return nil
	}
}

// WithHaloPolicy sets how halo cells are filled (default [halo.PolicyMean]).
func WithHaloPolicy(p halo.Policy) Option {
	return func(cfg *Config) error {
		if !p.Valid() {
			return fmt.Errorf("%w: invalid halo policy: %d", ErrConfiguration, int(p))
		}

		cfg.policy = p

		return nil
	}
}

// WithWorkers sets how many slices are filtered concurrently (default 1).
func WithWorkers(n int) Option {
	return func(cfg *Config) error {
		if n < 1 {
			return fmt.Errorf("%w: workers must be >= 1: %d", ErrConfiguration, n)
		}

		cfg.workers = n

		return nil
	}
}

// AlphaX returns the scalar x alpha and whether it was set.
func (c Config) AlphaX() (float64, bool) { return c.alphaX, c.hasAlphaX }

// AlphaY returns the scalar y alpha and whether it was set.
func (c Config) AlphaY() (float64, bool) { return c.alphaY, c.hasAlphaY }

// Iterations returns the iteration count, 0 when unset.
func (c Config) Iterations() int { return c.iterations }

func (c Config) EdgeWidth() int { return c.edgeWidth }

func (c Config) HaloPolicy() halo.Policy { return c.policy }

func (c Config) Workers() int { return c.workers }

func (c Config) String() string {
	var b strings.Builder

	b.WriteString("recfilter{")

	if c.hasAlphaX {
		fmt.Fprintf(&b, "alpha_x=%g ", c.alphaX)
	}

	if c.hasAlphaY {
		fmt.Fprintf(&b, "alpha_y=%g ", c.alphaY)
	}

	if c.iterations > 0 {
		fmt.Fprintf(&b, "iterations=%d ", c.iterations)
	}

	fmt.Fprintf(&b, "edge_width=%d halo=%v workers=%d}", c.edgeWidth, c.policy, c.workers)

	return b.String()
}

func validateAlpha(name string, alpha float64) error {
	if math.IsNaN(alpha) || alpha < 0 || alpha >= 1 {
		return fmt.Errorf("%w: %s must be in [0, 1): %g", ErrConfiguration, name, alpha)
	}

	return nil
}
