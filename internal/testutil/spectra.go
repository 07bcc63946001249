package testutil

import (
	"math"
	"math/rand"
)

// Kepler long-cadence sampling, in µHz.
const (
	KeplerNyquist = 283.2116656017908
	KeplerBin     = 0.00791
)

// FrequencyGrid returns n ascending frequencies start, start+step, ...
func FrequencyGrid(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// DC generates a constant-valued series.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// DeterministicNoise generates uniform noise in [-amplitude, amplitude] with a
// fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// StepPSD returns power equal to below for f <= split and above otherwise.
func StepPSD(freq []float64, split, below, above float64) []float64 {
	out := make([]float64, len(freq))
	for i, f := range freq {
		if f <= split {
			out[i] = below
		} else {
			out[i] = above
		}
	}
	return out
}

// RedGiant describes a noise-free red-giant-like PSD: white noise, up to
// three Harvey profiles and a Gaussian oscillation excess.
type RedGiant struct {
	White   float64
	Harveys [][2]float64 // (amplitude ppm, characteristic frequency µHz)
	Height  float64
	Numax   float64
	Sigma   float64
}

// PSD evaluates the profile on freq. Harvey terms use the 2√2/π
// normalisation without any instrumental response.
func (r RedGiant) PSD(freq []float64) []float64 {
	zeta := 2 * math.Sqrt2 / math.Pi
	out := make([]float64, len(freq))
	for i, f := range freq {
		p := r.White
		for _, h := range r.Harveys {
			x := f / h[1]
			p += zeta * h[0] * h[0] / h[1] / (1 + x*x*x*x)
		}
		if r.Sigma > 0 {
			d := f - r.Numax
			p += r.Height * math.Exp(-d*d/(2*r.Sigma*r.Sigma))
		}
		out[i] = p
	}
	return out
}

// KIC012008916 returns a profile shaped like the low-luminosity red giant
// KIC 012008916 (numax about 162 µHz).
func KIC012008916() RedGiant {
	return RedGiant{
		White:   15,
		Harveys: [][2]float64{{180, 20}, {160, 55}, {140, 160}},
		Height:  300,
		Numax:   162,
		Sigma:   11,
	}
}
