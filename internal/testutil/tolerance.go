package testutil

import (
	"math"
	"testing"
)

// WorstDeviation returns the index and size of the largest absolute
// deviation between got and want, which must have equal length. It returns
// (-1, 0) for empty input.
func WorstDeviation(got, want []float64) (int, float64) {
	at, worst := -1, 0.0
	for i, g := range got {
		if dev := math.Abs(g - want[i]); at < 0 || dev > worst || math.IsNaN(dev) {
			at, worst = i, dev
			if math.IsNaN(dev) {
				break
			}
		}
	}
	return at, worst
}

// RequireSliceNearlyEqual fails tb unless got and want have the same length
// and agree element-wise within the absolute tolerance eps. The failure
// reports the worst offending bin.
func RequireSliceNearlyEqual(tb testing.TB, got, want []float64, eps float64) {
	tb.Helper()
	if len(got) != len(want) {
		tb.Fatalf("got %d bins, want %d", len(got), len(want))
	}
	at, worst := WorstDeviation(got, want)
	if at >= 0 && !(worst <= eps) {
		tb.Fatalf("bin %d: got %g, want %g (|Δ|=%g, tolerance %g)", at, got[at], want[at], worst, eps)
	}
}

// RequireRelNearlyEqual fails tb if got deviates from want by more than rel
// times |want|.
func RequireRelNearlyEqual(tb testing.TB, got, want, rel float64) {
	tb.Helper()
	if dev := math.Abs(got - want); !(dev <= rel*math.Abs(want)) {
		tb.Fatalf("got %g, want %g (relative deviation %g, tolerance %g)", got, want, dev/math.Abs(want), rel)
	}
}

// RequireFinite fails tb at the first NaN or infinite element.
func RequireFinite(tb testing.TB, data []float64) {
	tb.Helper()
	for i := range data {
		if math.IsNaN(data[i]) || math.IsInf(data[i], 0) {
			tb.Fatalf("bin %d holds %g", i, data[i])
		}
	}
}

// RequireNonNegative fails tb at the first negative or NaN element. Power
// densities must never go below zero.
func RequireNonNegative(tb testing.TB, data []float64) {
	tb.Helper()
	for i := range data {
		if !(data[i] >= 0) {
			tb.Fatalf("bin %d holds %g, want ≥ 0", i, data[i])
		}
	}
}
