package window

import (
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a smoothing window.
type Type int

const (
	// TypeFlat is a rectangular window; smoothing with it is a moving average.
	TypeFlat Type = iota
	TypeHanning
	TypeHamming
	TypeBartlett
	TypeBlackman
)

var (
	hanningCoeffs  = []float64{0.5, -0.5}
	hammingCoeffs  = []float64{0.54, -0.46}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
)

var names = map[Type]string{
	TypeFlat:     "flat",
	TypeHanning:  "hanning",
	TypeHamming:  "hamming",
	TypeBartlett: "bartlett",
	TypeBlackman: "blackman",
}

// String returns the lower-case window name accepted by [Parse].
func (t Type) String() string {
	if n, ok := names[t]; ok {
		return n
	}

	return "unknown"
}

// Parse resolves a window name (case-insensitive).
func Parse(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range names {
		if n == name {
			return t, nil
		}
	}

	return 0, unknownWindowError(name)
}

// Types returns all supported window types in declaration order.
func Types() []Type {
	return []Type{TypeFlat, TypeHanning, TypeHamming, TypeBartlett, TypeBlackman}
}

// Generate returns symmetric window coefficients of the given length.
// The end points of the tapered windows follow the n/(N-1) sampling, so a
// Hanning window of any length starts and ends at zero.
func Generate(t Type, length int) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = evalWindow(t, samplePosition(i, length))
	}

	return out
}

// Normalized returns window coefficients scaled to unit sum, ready to be used
// as a smoothing kernel.
func Normalized(t Type, length int) ([]float64, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}

	coeffs := Generate(t, length)

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	if sum == 0 {
		return nil, errZeroSum
	}

	vecmath.ScaleBlockInPlace(coeffs, 1/sum)

	return coeffs, nil
}

func evalWindow(t Type, x float64) float64 {
	if x < 0 {
		x = 0
	}

	if x > 1 {
		x = 1
	}

	switch t {
	case TypeFlat:
		return 1
	case TypeHanning:
		return cosineFromCoeffs(x, hanningCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBartlett:
		return 1 - math.Abs(2*x-1)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int) float64 {
	if size <= 1 {
		return 0
	}

	return float64(n) / float64(size-1)
}
