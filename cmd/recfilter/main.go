// Command recfilter smooths a gridded field with the recursive filter.
//
// Usage:
//
//	recfilter [flags] input-file
//
// The input is a YAML or JSON field document; "-" reads stdin. The
// filtered field is written in the same document format.
//
// Examples:
//
//	recfilter -alpha-x 0.5 -alpha-y 0.5 -iterations 4 precip.yaml
//	recfilter -config filter.yaml -workers 4 -o smoothed.json -format json precip.yaml
//	recfilter -alpha-x 0.8 -iterations 2 -plot profile.png precip.yaml
//	recfilter -alpha-x 0.8 -iterations 2 -response
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/cwbudde/algo-recfilter/field"
	"github.com/cwbudde/algo-recfilter/recfilter"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// errUsage marks command-line mistakes, which exit with status 2.
var errUsage = errors.New("invalid usage")

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("recfilter", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var v flagValues

	v.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: recfilter [flags] input-file\n\n")
		fmt.Fprintf(stderr, "Smooths every horizontal slice of a field with a recursive filter.\n")
		fmt.Fprintf(stderr, "The input file is a YAML or JSON field document, or - for stdin.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  recfilter -alpha-x 0.5 -alpha-y 0.5 -iterations 4 precip.yaml\n")
		fmt.Fprintf(stderr, "  recfilter -config filter.yaml -o smoothed.json -format json precip.yaml\n")
		fmt.Fprintf(stderr, "  recfilter -alpha-x 0.8 -iterations 2 -response\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	level := slog.LevelInfo
	if v.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	recfilter.SetLogger(logger)

	defer recfilter.SetLogger(nil)

	err := execute(fs, &v, stdin, stdout, logger)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		color.New(color.FgRed).Fprintf(stderr, "error: %v\n", err)
		fs.Usage()

		return 2
	default:
		color.New(color.FgRed).Fprintf(stderr, "error: %v\n", err)

		return 1
	}
}

func execute(fs *flag.FlagSet, v *flagValues, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	s, err := loadSettings(v.config)
	if err != nil {
		return err
	}

	v.apply(fs, &s)

	opts, err := s.options()
	if err != nil {
		return err
	}

	cfg, err := recfilter.NewConfig(opts...)
	if err != nil {
		return err
	}

	if v.response {
		return printResponse(stdout, cfg, v.fftSize)
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("%w: expected one input file, got %d", errUsage, fs.NArg())
	}

	format, err := s.outputFormat()
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	in, err := readField(fs.Arg(0), stdin)
	if err != nil {
		return err
	}

	alphasX, err := readOptionalField(s.AlphasX)
	if err != nil {
		return err
	}

	alphasY, err := readOptionalField(s.AlphasY)
	if err != nil {
		return err
	}

	logger.Debug("filtering", slog.String("input", fs.Arg(0)), slog.Any("shape", in.Shape()), slog.String("config", cfg.String()))

	out, err := recfilter.Process(cfg, in, alphasX, alphasY)
	if err != nil {
		return err
	}

	if v.plot != "" {
		if err := writeProfilePlot(v.plot, in, out); err != nil {
			return err
		}

		logger.Debug("wrote profile plot", slog.String("file", v.plot))
	}

	return writeField(s.Output, stdout, out, format)
}

func readField(path string, stdin io.Reader) (*field.Field, error) {
	if path == "-" {
		return field.Decode(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fld, err := field.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return fld, nil
}

// readOptionalField reads an alpha field file. Stdin is reserved for the
// input field.
func readOptionalField(path string) (*field.Field, error) {
	switch path {
	case "":
		return nil, nil
	case "-":
		return nil, fmt.Errorf("%w: alpha field files cannot be read from stdin", errUsage)
	}

	return readField(path, nil)
}

func writeField(path string, stdout io.Writer, f *field.Field, format field.Format) error {
	if path == "" {
		return field.Encode(stdout, f, format)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := field.Encode(out, f, format); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

// printResponse prints the magnitude response of the configured x alpha,
// or the y alpha when x is unset.
func printResponse(w io.Writer, cfg recfilter.Config, fftSize int) error {
	alpha, ok := cfg.AlphaX()
	if !ok {
		if alpha, ok = cfg.AlphaY(); !ok {
			return fmt.Errorf("%w: -response needs -alpha-x or -alpha-y", errUsage)
		}
	}

	iterations := max(cfg.Iterations(), 1)

	mag, err := recfilter.MagnitudeResponse(alpha, iterations, fftSize)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "alpha=%g  iterations=%d  fft-size=%d\n\n", alpha, iterations, fftSize)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "bin\tcycles/cell\t|H|\tdB\t\n")

	for k, m := range mag {
		fmt.Fprintf(tw, "%d\t%.4f\t%.6f\t%.2f\t\n", k, float64(k)/float64(fftSize), m, 20*math.Log10(m))
	}

	return tw.Flush()
}
