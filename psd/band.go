package psd

import (
	"sort"

	"github.com/cwbudde/algo-background/dsp/smooth"
	"github.com/cwbudde/algo-background/dsp/window"
)

// Span is a half-open index range [Start, End) into a Series. Because
// frequencies ascend, every frequency band maps to one contiguous Span.
type Span struct {
	Start, End int
}

// Len returns the number of samples in the span.
func (sp Span) Len() int {
	if sp.End <= sp.Start {
		return 0
	}
	return sp.End - sp.Start
}

// Empty reports whether the span selects no samples.
func (sp Span) Empty() bool { return sp.Len() == 0 }

// Above selects f > lo.
func (s Series) Above(lo float64) Span {
	return Span{Start: s.firstAbove(lo), End: len(s.freq)}
}

// Open selects lo < f < hi.
func (s Series) Open(lo, hi float64) Span {
	return Span{Start: s.firstAbove(lo), End: s.firstAtLeast(hi)}
}

// Closed selects lo <= f <= hi.
func (s Series) Closed(lo, hi float64) Span {
	return Span{Start: s.firstAtLeast(lo), End: s.firstAbove(hi)}
}

// Nearest returns the index of the sample closest to f. Ties go to the lower
// frequency.
func (s Series) Nearest(f float64) int {
	i := s.firstAtLeast(f)
	switch {
	case i == 0:
		return 0
	case i == len(s.freq):
		return len(s.freq) - 1
	case s.freq[i]-f < f-s.freq[i-1]:
		return i
	default:
		return i - 1
	}
}

// Smoothed returns the power column smoothed with a window of windowLen bins.
func (s Series) Smoothed(windowLen int, t window.Type) ([]float64, error) {
	return smooth.Apply(s.power, windowLen, t)
}

func (s Series) firstAbove(f float64) int {
	return sort.Search(len(s.freq), func(i int) bool { return s.freq[i] > f })
}

func (s Series) firstAtLeast(f float64) int {
	return sort.Search(len(s.freq), func(i int) bool { return s.freq[i] >= f })
}

// Max returns the largest value of x within sp. ok is false for an empty span.
func Max(x []float64, sp Span) (peak float64, ok bool) {
	if sp.Empty() {
		return 0, false
	}

	peak = x[sp.Start]
	for _, v := range x[sp.Start+1 : sp.End] {
		if v > peak {
			peak = v
		}
	}

	return peak, true
}

// Mean returns the arithmetic mean of x within sp. ok is false for an empty
// span. The mean is accumulated incrementally, so a constant region yields
// that constant exactly.
func Mean(x []float64, sp Span) (mean float64, ok bool) {
	if sp.Empty() {
		return 0, false
	}

	for k, v := range x[sp.Start:sp.End] {
		mean += (v - mean) / float64(k+1)
	}

	return mean, true
}
