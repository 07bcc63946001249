package background

import "fmt"

// Harvey is an amplitude/characteristic-frequency pair of a Harvey-like or
// coloured noise profile.
type Harvey struct {
	Amplitude float64 // ppm
	Frequency float64 // µHz
}

// Excess is the Gaussian envelope of the oscillation power excess.
type Excess struct {
	Height float64 // ppm²/µHz
	Numax  float64 // µHz
	Sigma  float64 // µHz
}

// Params is the named form of a parameter vector. Components that are not
// active in Variant hold amplitude 0 and frequency 1, so evaluating them
// yields zero power without dividing by zero.
type Params struct {
	Variant      Variant
	White        float64
	Color        Harvey
	LongTrend    Harvey
	Granulation1 Harvey
	Granulation2 Harvey
	Excess       Excess
}

var (
	absentHarvey = Harvey{Amplitude: 0, Frequency: 1}
	absentExcess = Excess{Height: 0, Numax: 1, Sigma: 1}
)

// Unpack maps a flat parameter vector onto a Params record following the
// slot layout of v. The vector length must equal v.NumParams().
func Unpack(v Variant, vec []float64) (Params, error) {
	if err := v.check(); err != nil {
		return Params{}, err
	}

	slots := v.Slots()
	if len(vec) != len(slots) {
		return Params{}, fmt.Errorf("%w: %s takes %d, got %d", ErrParamCount, v, len(slots), len(vec))
	}

	p := Params{
		Variant:      v,
		Color:        absentHarvey,
		LongTrend:    absentHarvey,
		Granulation1: absentHarvey,
		Granulation2: absentHarvey,
		Excess:       absentExcess,
	}
	for i, s := range slots {
		*p.field(s) = vec[i]
	}

	return p, nil
}

// Vector packs p back into the flat layout of p.Variant.
func (p Params) Vector() ([]float64, error) {
	if err := p.Variant.check(); err != nil {
		return nil, err
	}

	slots := p.Variant.Slots()
	out := make([]float64, len(slots))
	for i, s := range slots {
		out[i] = *p.field(s)
	}

	return out, nil
}

// Get returns the value stored for slot s, whether or not it is active.
func (p Params) Get(s Slot) float64 {
	if f := p.field(s); f != nil {
		return *f
	}
	return 0
}

func (p *Params) field(s Slot) *float64 {
	switch s {
	case SlotWhite:
		return &p.White
	case SlotColorAmplitude:
		return &p.Color.Amplitude
	case SlotColorFrequency:
		return &p.Color.Frequency
	case SlotLongAmplitude:
		return &p.LongTrend.Amplitude
	case SlotLongFrequency:
		return &p.LongTrend.Frequency
	case SlotGranulation1Amplitude:
		return &p.Granulation1.Amplitude
	case SlotGranulation1Frequency:
		return &p.Granulation1.Frequency
	case SlotGranulation2Amplitude:
		return &p.Granulation2.Amplitude
	case SlotGranulation2Frequency:
		return &p.Granulation2.Frequency
	case SlotHeight:
		return &p.Excess.Height
	case SlotNumax:
		return &p.Excess.Numax
	case SlotSigma:
		return &p.Excess.Sigma
	default:
		return nil
	}
}
