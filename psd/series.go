package psd

import (
	"fmt"
	"math"
)

// SpacingTolerance is the relative deviation from the first bin width that a
// frequency step may show before the grid is considered non-uniform. PSD
// files store frequencies with a handful of decimals, so exact equality is
// not achievable.
const SpacingTolerance = 1e-3

// Series is a validated power spectral density.
type Series struct {
	freq  []float64
	power []float64
}

// New validates and wraps the two columns. The slices are retained, not
// copied; callers must not modify them afterwards.
func New(freq, power []float64) (Series, error) {
	if len(freq) != len(power) {
		return Series{}, fmt.Errorf("%w: %d frequencies, %d powers", ErrLengthMismatch, len(freq), len(power))
	}
	if len(freq) < 2 {
		return Series{}, ErrEmpty
	}

	for i := range freq {
		f, p := freq[i], power[i]
		if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
			return Series{}, fmt.Errorf("%w: frequency[%d]=%v", ErrInvalidValue, i, f)
		}
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return Series{}, fmt.Errorf("%w: power[%d]=%v", ErrInvalidValue, i, p)
		}
	}

	bin := freq[1] - freq[0]
	for i := 1; i < len(freq); i++ {
		step := freq[i] - freq[i-1]
		if step <= 0 {
			return Series{}, fmt.Errorf("%w: frequency[%d]=%v after %v", ErrNotAscending, i, freq[i], freq[i-1])
		}
		if math.Abs(step-bin) > SpacingTolerance*bin {
			return Series{}, fmt.Errorf("%w: step %v at index %d, first bin %v", ErrNonUniform, step, i, bin)
		}
	}

	return Series{freq: freq, power: power}, nil
}

// Len returns the number of samples.
func (s Series) Len() int { return len(s.freq) }

// Freq returns the frequency column. Do not modify.
func (s Series) Freq() []float64 { return s.freq }

// Power returns the power column. Do not modify.
func (s Series) Power() []float64 { return s.power }

// BinWidth returns the spacing of the first two frequency bins.
func (s Series) BinWidth() float64 {
	if len(s.freq) < 2 {
		return 0
	}
	return s.freq[1] - s.freq[0]
}

// MinFreq returns the lowest frequency.
func (s Series) MinFreq() float64 {
	if len(s.freq) == 0 {
		return 0
	}
	return s.freq[0]
}

// Nyquist returns the highest frequency of the series, which for a one-sided
// PSD is the Nyquist frequency of the underlying time series.
func (s Series) Nyquist() float64 {
	if len(s.freq) == 0 {
		return 0
	}
	return s.freq[len(s.freq)-1]
}
