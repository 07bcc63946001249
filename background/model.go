package background

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// InstrumentNyquist is the Nyquist frequency of Kepler long-cadence data in
// µHz, used for the apodisation response unless overridden.
const InstrumentNyquist = 283.2116656017908

// Zeta is the Harvey-profile normalisation 2√2/π for an exponent of 4.
const Zeta = 2 * math.Sqrt2 / math.Pi

// Components holds the model evaluated on a frequency grid. Every slice is
// aligned with the input frequencies.
type Components struct {
	BackgroundNoExcess   []float64 // sum of all terms except the excess
	BackgroundWithExcess []float64 // sum of all terms
	LongTrend            []float64
	Granulation1         []float64
	Granulation2         []float64
	Excess               []float64
	White                []float64
	Color                []float64
}

// Option configures evaluation.
type Option func(*config)

type config struct {
	nyquist float64
}

func defaultConfig() config {
	return config{nyquist: InstrumentNyquist}
}

// WithNyquist sets the Nyquist frequency (µHz) of the apodisation response.
// Non-positive values are ignored.
func WithNyquist(nyq float64) Option {
	return func(c *config) {
		if nyq > 0 {
			c.nyquist = nyq
		}
	}
}

// Evaluate unpacks params according to v and evaluates the model on freq.
func Evaluate(params, freq []float64, v Variant, opts ...Option) (Components, error) {
	p, err := Unpack(v, params)
	if err != nil {
		return Components{}, err
	}
	return EvaluateParams(p, freq, opts...)
}

// EvaluateParams evaluates the model described by p on freq. Only the
// components active in p.Variant contribute; the others are returned as
// zero-filled slices.
func EvaluateParams(p Params, freq []float64, opts ...Option) (Components, error) {
	if err := p.Variant.check(); err != nil {
		return Components{}, err
	}
	if err := validateFreq(freq); err != nil {
		return Components{}, err
	}
	if err := validateScales(p); err != nil {
		return Components{}, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := len(freq)
	r := Response(freq, cfg.nyquist)

	c := Components{
		LongTrend:    make([]float64, n),
		Granulation1: make([]float64, n),
		Granulation2: make([]float64, n),
		Excess:       make([]float64, n),
		White:        make([]float64, n),
		Color:        make([]float64, n),
	}

	v := p.Variant
	if v.Has(ComponentLongTrend) {
		harveyTo(c.LongTrend, freq, r, p.LongTrend)
	}
	if v.Has(ComponentGranulation1) {
		harveyTo(c.Granulation1, freq, r, p.Granulation1)
	}
	if v.Has(ComponentGranulation2) {
		harveyTo(c.Granulation2, freq, r, p.Granulation2)
	}
	if v.Has(ComponentColor) {
		colorTo(c.Color, freq, p.Color)
	}
	if v.Has(ComponentExcess) {
		excessTo(c.Excess, freq, r, p.Excess)
	}
	for i := range c.White {
		c.White[i] = p.White
	}

	c.BackgroundNoExcess = sum(n, c.LongTrend, c.Granulation1, c.Granulation2, c.White, c.Color)
	c.BackgroundWithExcess = sum(n, c.LongTrend, c.Granulation1, c.Granulation2, c.Excess, c.White, c.Color)

	return c, nil
}

// Response returns the apodisation sinc²(π f / (2 nyq)) for every f.
func Response(freq []float64, nyq float64) []float64 {
	out := make([]float64, len(freq))
	for i, f := range freq {
		x := math.Pi / 2 * f / nyq
		if x == 0 {
			out[i] = 1
			continue
		}
		s := math.Sin(x) / x
		out[i] = s * s
	}
	return out
}

func harveyTo(dst, freq, r []float64, h Harvey) {
	scale := Zeta * h.Amplitude * h.Amplitude / h.Frequency
	for i, f := range freq {
		x := f / h.Frequency
		x *= x
		dst[i] = scale / (1 + x*x)
	}
	vecmath.MulBlockInPlace(dst, r)
}

func colorTo(dst, freq []float64, h Harvey) {
	scale := 2 * math.Pi * h.Amplitude * h.Amplitude / h.Frequency
	for i, f := range freq {
		x := f / h.Frequency
		dst[i] = scale / (1 + x*x)
	}
}

func excessTo(dst, freq, r []float64, e Excess) {
	den := 2 * e.Sigma * e.Sigma
	for i, f := range freq {
		d := e.Numax - f
		dst[i] = e.Height * math.Exp(-d*d/den)
	}
	vecmath.MulBlockInPlace(dst, r)
}

// sum adds the terms in the given order.
func sum(n int, terms ...[]float64) []float64 {
	out := make([]float64, n)
	copy(out, terms[0])
	for _, t := range terms[1:] {
		vecmath.AddBlockInPlace(out, t)
	}
	return out
}

func validateFreq(freq []float64) error {
	if len(freq) == 0 {
		return fmt.Errorf("%w: empty grid", ErrInvalidFrequency)
	}
	for i, f := range freq {
		if !(f > 0) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: freq[%d]=%v", ErrInvalidFrequency, i, f)
		}
	}
	return nil
}

func validateScales(p Params) error {
	check := func(c Component, name string, v float64) error {
		if p.Variant.Has(c) && (!(v > 0) || math.IsInf(v, 0)) {
			return fmt.Errorf("%w: %s=%v", ErrNonPositiveScale, name, v)
		}
		return nil
	}

	for _, chk := range []struct {
		c    Component
		name string
		v    float64
	}{
		{ComponentColor, "ν_color", p.Color.Frequency},
		{ComponentLongTrend, "ν_long", p.LongTrend.Frequency},
		{ComponentGranulation1, "ν_gran,1", p.Granulation1.Frequency},
		{ComponentGranulation2, "ν_gran,2", p.Granulation2.Frequency},
		{ComponentExcess, "σ_env", p.Excess.Sigma},
	} {
		if err := check(chk.c, chk.name, chk.v); err != nil {
			return err
		}
	}
	return nil
}
