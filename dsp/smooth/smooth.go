// Package smooth implements reflect-padded windowed smoothing of a sampled
// series, the way PSDs are smoothed before peak and height searches.
//
// The series is extended on both ends by mirror copies of its first and last
// windowLen-1 samples (the edge samples themselves are not repeated), the
// padded series is convolved with the unit-sum window, and the result is
// cropped back to the input length. Edge transients are therefore bounded by
// the data itself rather than by zero padding.
package smooth

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-background/dsp/window"
)

// Errors returned by [Apply].
var (
	ErrEmptyInput    = errors.New("smooth: empty input")
	ErrWindowTooLong = errors.New("smooth: input shorter than window")
)

// Apply smooths x with a window of windowLen samples.
//
// Windows shorter than 3 samples leave the series unchanged; a copy is
// returned in that case. The output always has len(x) samples.
func Apply(x []float64, windowLen int, t window.Type) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if len(x) < windowLen {
		return nil, fmt.Errorf("%w: %d samples, window %d", ErrWindowTooLong, len(x), windowLen)
	}
	if windowLen < 3 {
		return append([]float64(nil), x...), nil
	}

	kernel, err := window.Normalized(t, windowLen)
	if err != nil {
		return nil, err
	}

	padded := reflect(x, windowLen)
	valid := convolveValid(padded, kernel)

	start := windowLen / 2
	out := make([]float64, len(x))
	copy(out, valid[start:start+len(x)])

	return out, nil
}

// MovingAverage is Apply with a flat window.
func MovingAverage(x []float64, windowLen int) ([]float64, error) {
	return Apply(x, windowLen, window.TypeFlat)
}

// reflect returns x[w-1..1] ++ x ++ x[n-2..n-w]. Requires len(x) >= w.
func reflect(x []float64, w int) []float64 {
	n := len(x)
	out := make([]float64, 0, n+2*(w-1))

	for i := w - 1; i >= 1; i-- {
		out = append(out, x[i])
	}

	out = append(out, x...)

	for i := n - 2; i >= n-w; i-- {
		out = append(out, x[i])
	}

	return out
}

// convolveValid returns the part of the linear convolution of a and kernel
// where the two fully overlap, len(a)-len(kernel)+1 samples.
func convolveValid(a, kernel []float64) []float64 {
	n := len(a)
	m := len(kernel)

	full := make([]float64, n+m-1)
	temp := make([]float64, m)

	for i := 0; i < n; i++ {
		vecmath.ScaleBlock(temp, kernel, a[i])
		vecmath.AddBlockInPlace(full[i:i+m], temp)
	}

	return full[m-1 : n]
}
