package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/cwbudde/algo-recfilter/field"
	"github.com/cwbudde/algo-recfilter/halo"
	"github.com/cwbudde/algo-recfilter/recfilter"
)

// settings is the merged configuration: the YAML file first, then every
// flag given on the command line. Pointer fields distinguish "unset" from
// zero.
type settings struct {
	AlphaX     *float64 `yaml:"alpha_x,omitempty"`
	AlphaY     *float64 `yaml:"alpha_y,omitempty"`
	Iterations *int     `yaml:"iterations,omitempty"`
	EdgeWidth  *int     `yaml:"edge_width,omitempty"`
	Halo       string   `yaml:"halo,omitempty"`
	Workers    *int     `yaml:"workers,omitempty"`
	AlphasX    string   `yaml:"alphas_x,omitempty"`
	AlphasY    string   `yaml:"alphas_y,omitempty"`
	Output     string   `yaml:"output,omitempty"`
	Format     string   `yaml:"format,omitempty"`
}

func loadSettings(path string) (settings, error) {
	var s settings
	if path == "" {
		return s, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return s, err
	}
	defer f.Close()

	err = yaml.NewDecoder(f, yaml.DisallowUnknownField()).Decode(&s)
	if err != nil && !errors.Is(err, io.EOF) {
		return s, fmt.Errorf("config %s: %w", path, err)
	}

	return s, nil
}

// flagValues holds the raw flag targets; only flags that were set on the
// command line are applied over the file settings.
type flagValues struct {
	config     string
	alphaX     float64
	alphaY     float64
	iterations int
	edgeWidth  int
	halo       string
	workers    int
	alphasX    string
	alphasY    string
	output     string
	format     string
	plot       string
	response   bool
	fftSize    int
	verbose    bool
}

func (v *flagValues) register(fs *flag.FlagSet) {
	fs.StringVar(&v.config, "config", "", "YAML config file; flags override its values")
	fs.Float64Var(&v.alphaX, "alpha-x", 0, "smoothing weight of the x sweeps, in [0, 1)")
	fs.Float64Var(&v.alphaY, "alpha-y", 0, "smoothing weight of the y sweeps, in [0, 1)")
	fs.IntVar(&v.iterations, "iterations", 0, "number of sweep iterations (>= 1)")
	fs.IntVar(&v.edgeWidth, "edge-width", 1, "halo width added to every slice edge")
	fs.StringVar(&v.halo, "halo", "mean", "halo fill policy: mean, edge or zero")
	fs.IntVar(&v.workers, "workers", 1, "slices filtered concurrently")
	fs.StringVar(&v.alphasX, "alphas-x", "", "field file with per-cell x alphas")
	fs.StringVar(&v.alphasY, "alphas-y", "", "field file with per-cell y alphas")
	fs.StringVar(&v.output, "o", "", "output file (default stdout)")
	fs.StringVar(&v.format, "format", "yaml", "output format: yaml or json")
	fs.StringVar(&v.plot, "plot", "", "write a PNG profile of the central column before and after filtering")
	fs.BoolVar(&v.response, "response", false, "print the magnitude response for alpha-x and exit")
	fs.IntVar(&v.fftSize, "fft-size", 64, "FFT size for -response (power of two)")
	fs.BoolVar(&v.verbose, "v", false, "debug logging")
}

// apply copies every flag set on the command line into s.
func (v *flagValues) apply(fs *flag.FlagSet, s *settings) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "alpha-x":
			s.AlphaX = &v.alphaX
		case "alpha-y":
			s.AlphaY = &v.alphaY
		case "iterations":
			s.Iterations = &v.iterations
		case "edge-width":
			s.EdgeWidth = &v.edgeWidth
		case "halo":
			s.Halo = v.halo
		case "workers":
			s.Workers = &v.workers
		case "alphas-x":
			s.AlphasX = v.alphasX
		case "alphas-y":
			s.AlphasY = v.alphasY
		case "o":
			s.Output = v.output
		case "format":
			s.Format = v.format
		}
	})
}

func (s settings) options() ([]recfilter.Option, error) {
	var opts []recfilter.Option

	if s.AlphaX != nil {
		opts = append(opts, recfilter.WithAlphaX(*s.AlphaX))
	}

	if s.AlphaY != nil {
		opts = append(opts, recfilter.WithAlphaY(*s.AlphaY))
	}

	if s.Iterations != nil {
		opts = append(opts, recfilter.WithIterations(*s.Iterations))
	}

	if s.EdgeWidth != nil {
		opts = append(opts, recfilter.WithEdgeWidth(*s.EdgeWidth))
	}

	if s.Halo != "" {
		p, err := halo.ParsePolicy(s.Halo)
		if err != nil {
			return nil, err
		}

		opts = append(opts, recfilter.WithHaloPolicy(p))
	}

	if s.Workers != nil {
		opts = append(opts, recfilter.WithWorkers(*s.Workers))
	}

	return opts, nil
}

func (s settings) outputFormat() (field.Format, error) {
	switch s.Format {
	case "", "yaml":
		return field.FormatYAML, nil
	case "json":
		return field.FormatJSON, nil
	default:
		return 0, fmt.Errorf("unknown format %q", s.Format)
	}
}
