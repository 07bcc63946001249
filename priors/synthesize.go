package priors

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-background/background"
	"github.com/cwbudde/algo-background/dsp/window"
	"github.com/cwbudde/algo-background/psd"
)

// Estimates are the central values the prior ranges are built around.
type Estimates struct {
	DeltaNu      float64
	Numax        float64
	Sigma        float64
	Height       float64
	White        float64
	Granulation1 background.Harvey
	Granulation2 background.Harvey
	LongTrend    background.Harvey
	Color        background.Harvey
}

// Result is the outcome of [Synthesize].
type Result struct {
	Variant    background.Variant
	Nyquist    float64 // highest frequency of the PSD, µHz
	Estimates  Estimates
	Ranges     Ranges // every derived range, after de-overlap
	Boundaries Boundaries
}

// Synthesize derives the prior boundaries of variant v for a star with PSD s
// and an approximate νmax (µHz).
func Synthesize(s psd.Series, numax float64, v background.Variant, opts ...Option) (*Result, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %v", background.ErrUnknownVariant, v)
	}
	if !(numax > 0) || math.IsInf(numax, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidNumax, numax)
	}
	if s.Len() < 2 {
		return nil, psd.ErrEmpty
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	sy := synthesizer{
		cfg:   cfg,
		s:     s,
		numax: numax,
		log:   cfg.log.WithFields(logrus.Fields{"numax": numax, "variant": v.String()}),
	}

	return sy.run(v)
}

type synthesizer struct {
	cfg   config
	s     psd.Series
	numax float64
	log   logrus.FieldLogger

	est    Estimates
	ranges Ranges
}

func (sy *synthesizer) run(v background.Variant) (*Result, error) {
	sc := sy.cfg.scaling
	sy.est.Numax = sy.numax
	sy.est.DeltaNu = sc.DeltaNu(sy.numax)
	sy.ranges = make(Ranges, 12)

	sy.excessEnvelope()

	if err := sy.excessHeight(); err != nil {
		return nil, err
	}
	if err := sy.whiteNoise(); err != nil {
		return nil, err
	}
	if err := sy.granulation(); err != nil {
		return nil, err
	}
	if err := sy.longTrendAndColor(); err != nil {
		return nil, err
	}

	sy.deOverlap(v)

	b, err := Assemble(v, sy.ranges)
	if err != nil {
		return nil, err
	}

	return &Result{
		Variant:    v,
		Nyquist:    sy.s.Nyquist(),
		Estimates:  sy.est,
		Ranges:     sy.ranges,
		Boundaries: b,
	}, nil
}

// excessEnvelope sets the νmax and envelope-width ranges. The width range is
// wider below the estimate than above it.
func (sy *synthesizer) excessEnvelope() {
	numax := sy.numax
	sy.ranges[background.SlotNumax] = Range{
		Lower: numax - numax*numaxFraction,
		Upper: numax + numax*numaxFraction,
	}

	sigma := sigmaPerDeltaNu * sy.est.DeltaNu
	spread := sigma * sigmaFraction
	sy.est.Sigma = sigma
	sy.ranges[background.SlotSigma] = Range{
		Lower: sigma - spread*sigmaLowerStretch,
		Upper: sigma + spread,
	}
}

// excessHeight measures the height of the oscillation excess on the PSD
// smoothed over one Δν.
func (sy *synthesizer) excessHeight() error {
	dnu := sy.est.DeltaNu
	bins := int(dnu / sy.s.BinWidth())

	smoothed, err := sy.s.Smoothed(bins, window.TypeFlat)
	if err != nil {
		return fmt.Errorf("priors: smoothing PSD over Δν=%.3f µHz: %w", dnu, err)
	}

	zone := sy.s.Open(sy.numax-heightWindowDnu*dnu, sy.numax+heightWindowDnu*dnu)
	height, ok := psd.Max(smoothed, zone)
	if !ok {
		i := sy.s.Nearest(sy.numax)
		height = smoothed[i]
		sy.log.WithField("freq", sy.s.Freq()[i]).Debug("no PSD samples within ±3Δν of numax, using nearest bin for height")
	}

	sy.est.Height = height
	sy.ranges[background.SlotHeight] = Range{
		Lower: heightLowerFactor * height,
		Upper: heightUpperFactor * height,
	}
	sy.log.WithFields(logrus.Fields{"delta_nu": dnu, "smoothing_bins": bins, "height": height}).Debug("oscillation excess")

	return nil
}

// whiteNoise averages the PSD above the oscillation excess.
func (sy *synthesizer) whiteNoise() error {
	cutoff := sy.numax + whiteOffsetDnu*sy.est.DeltaNu
	if sy.s.Nyquist() < shortNyquist && sy.numax > shortNumax {
		cutoff = shortCutoff
	}

	level, ok := psd.Mean(sy.s.Power(), sy.s.Above(cutoff))
	if !ok {
		sy.log.WithField("cutoff", cutoff).Debug("no PSD samples above white-noise cutoff, falling back to numax")
		cutoff = sy.numax
		level, ok = psd.Mean(sy.s.Power(), sy.s.Above(cutoff))
	}
	if !ok {
		return fmt.Errorf("%w: white noise above %.3f µHz (Nyquist %.3f µHz)", ErrEmptyRegion, cutoff, sy.s.Nyquist())
	}

	sy.est.White = level
	sy.ranges[background.SlotWhite] = Range{
		Lower: whiteLowerFactor * level,
		Upper: whiteUpperFactor * level,
	}
	sy.log.WithFields(logrus.Fields{"cutoff": cutoff, "white": level}).Debug("white noise")

	return nil
}

// granulation sets the ranges of both granulation profiles. The granulation-1
// amplitude is raised to the PSD-derived value when the data show more power
// than the scaling relation predicts. The granulation-2 amplitude range is
// anchored on the granulation-1 amplitude.
func (sy *synthesizer) granulation() error {
	sc := sy.cfg.scaling

	nu1 := sc.Granulation1Frequency(sy.numax)
	amp1 := sc.GranulationAmplitude(sy.numax)

	dataAmp, err := sy.amplitudeAt(nu1)
	if err != nil {
		return err
	}
	if dataAmp > amp1 {
		sy.log.WithFields(logrus.Fields{"scaling": amp1, "data": dataAmp}).Debug("granulation-1 amplitude raised to PSD level")
		amp1 = dataAmp
	}

	nu2 := sc.Granulation2Frequency(sy.numax)
	amp2 := sc.GranulationAmplitude(sy.numax)

	sy.est.Granulation1 = background.Harvey{Amplitude: amp1, Frequency: nu1}
	sy.est.Granulation2 = background.Harvey{Amplitude: amp2, Frequency: nu2}

	sy.ranges[background.SlotGranulation1Frequency] = Range{Lower: harveyFreqLower * nu1, Upper: harveyFreqUpper * nu1}
	sy.ranges[background.SlotGranulation1Amplitude] = Range{Lower: gran1AmpLower * amp1, Upper: gran1AmpUpper * amp1}
	sy.ranges[background.SlotGranulation2Frequency] = Range{Lower: harveyFreqLower * nu2, Upper: harveyFreqUpper * nu2}
	sy.ranges[background.SlotGranulation2Amplitude] = Range{Lower: gran2AmpLower * amp1, Upper: gran2AmpUpper * amp1}

	return nil
}

// longTrendAndColor sets the ranges of the long-trend (rotation) profile,
// placed at half the granulation-1 frequency, and of the coloured noise
// term, placed above it. Both extend down to the lowest PSD frequency.
func (sy *synthesizer) longTrendAndColor() error {
	nu1 := sy.est.Granulation1.Frequency
	nuRot := rotationPerGran1 * nu1

	ampRot, err := sy.amplitudeAt(nuRot)
	if err != nil {
		return err
	}

	nuColor := colorPerRotation * nuRot
	minFreq := sy.s.MinFreq()

	sy.est.LongTrend = background.Harvey{Amplitude: ampRot, Frequency: nuRot}
	sy.est.Color = background.Harvey{Amplitude: 0, Frequency: nuColor}

	sy.ranges[background.SlotLongFrequency] = Range{Lower: minFreq, Upper: rotationFreqUpper * nu1}
	sy.ranges[background.SlotLongAmplitude] = Range{Lower: 0, Upper: rotationAmpUpper * ampRot}
	sy.ranges[background.SlotColorFrequency] = Range{Lower: minFreq, Upper: colorFreqUpper * nuColor}
	sy.ranges[background.SlotColorAmplitude] = Range{Lower: 0, Upper: colorAmpUpper * ampRot}

	return nil
}

// deOverlap reconciles adjacent Harvey frequency ranges for the components
// present in v.
func (sy *synthesizer) deOverlap(v background.Variant) {
	g1 := sy.ranges[background.SlotGranulation1Frequency]

	if v.Has(background.ComponentGranulation1) && v.Has(background.ComponentGranulation2) {
		g2 := sy.ranges[background.SlotGranulation2Frequency]
		g1, g2 = ResolveOverlap(g1, g2, sy.cfg.granulationRatio)
		sy.ranges[background.SlotGranulation2Frequency] = g2
		sy.log.WithFields(logrus.Fields{"gran1": g1, "gran2": g2}).Debug("granulation ranges resolved")
	}

	if v.Has(background.ComponentLongTrend) && v.Has(background.ComponentGranulation1) {
		rot := sy.ranges[background.SlotLongFrequency]
		rot, g1 = ResolveOverlap(rot, g1, sy.cfg.rotationRatio)
		sy.ranges[background.SlotLongFrequency] = rot
		sy.log.WithFields(logrus.Fields{"long": rot, "gran1": g1}).Debug("long-trend ranges resolved")
	}

	// Without a long-trend profile, granulation 1 absorbs the lowest
	// frequencies.
	if !v.Has(background.ComponentLongTrend) {
		g1.Lower = sy.s.MinFreq()
	}

	sy.ranges[background.SlotGranulation1Frequency] = g1
}

// amplitudeAt converts the peak PSD power within ±10% of nu into a Harvey
// amplitude. The nearest bin is used when the window holds no sample.
func (sy *synthesizer) amplitudeAt(nu float64) (float64, error) {
	if !(nu > 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidScale, nu)
	}

	half := peakWindowFraction * nu
	peak, ok := psd.Max(sy.s.Power(), sy.s.Closed(nu-half, nu+half))
	if !ok {
		i := sy.s.Nearest(nu)
		peak = sy.s.Power()[i]
		sy.log.WithFields(logrus.Fields{"nu": nu, "freq": sy.s.Freq()[i]}).Debug("no PSD samples near frequency, using nearest bin")
	}

	return HarveyAmplitude(peak, nu), nil
}

// HarveyAmplitude returns the amplitude (ppm) of a Harvey profile of
// characteristic frequency nu (µHz) whose zero-frequency power density is
// p (ppm²/µHz).
func HarveyAmplitude(p, nu float64) float64 {
	return math.Sqrt(p*nu) / (2 * math.Sqrt2) * math.Pi
}
