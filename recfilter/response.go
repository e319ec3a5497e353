package recfilter

import (
	"fmt"
	"math/bits"

	algofft "github.com/cwbudde/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-recfilter/grid"
)

// Kernel returns the response of iterations forward and backward passes
// with a constant alpha to a unit impulse in the middle of length cells.
// It is the 1D smoothing kernel applied along each axis away from the
// boundaries. length must be odd and at least 3.
func Kernel(alpha float64, iterations, length int) ([]float64, error) {
	if err := validateAlpha("alpha", alpha); err != nil {
		return nil, err
	}

	if iterations < 1 {
		return nil, fmt.Errorf("%w: iterations must be >= 1: %d", ErrConfiguration, iterations)
	}

	if length < 3 || length%2 == 0 {
		return nil, fmt.Errorf("%w: kernel length must be odd and >= 3: %d", ErrConfiguration, length)
	}

	g := grid.New(length, 1)
	g.Set(length/2, 0, 1)

	w := newWeights(grid.Filled(length, 1, alpha))
	tmp := make([]float64, 1)

	for range iterations {
		w.forwardX(g, tmp)
		w.backwardX(g, tmp)
	}

	return g.Data(), nil
}

// MagnitudeResponse returns |H(k)| for k = 0 .. fftSize/2 of the kernel of
// [Kernel] with length fftSize-1. fftSize must be a power of two >= 4.
func MagnitudeResponse(alpha float64, iterations, fftSize int) ([]float64, error) {
	if fftSize < 4 || bits.OnesCount(uint(fftSize)) != 1 {
		return nil, fmt.Errorf("%w: FFT size must be a power of two >= 4: %d", ErrConfiguration, fftSize)
	}

	kernel, err := Kernel(alpha, iterations, fftSize-1)
	if err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("recfilter: FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range kernel {
		in[i] = complex(v, 0)
	}

	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, in); err != nil {
		return nil, fmt.Errorf("recfilter: FFT: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k], im[k] = real(spectrum[k]), imag(spectrum[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}
