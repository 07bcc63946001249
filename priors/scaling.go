package priors

import "math"

// ScalingRelations holds the power-law calibrations c·νmax^e used to predict
// the global seismic and granulation scales of red giants.
type ScalingRelations struct {
	DeltaNuCoeff        float64
	DeltaNuExponent     float64
	Granulation1Coeff   float64
	Granulation1Exp     float64
	Granulation2Coeff   float64
	Granulation2Exp     float64
	GranulationAmpCoeff float64
	GranulationAmpExp   float64
}

// DefaultScaling returns the calibrations used for Kepler red giants.
func DefaultScaling() ScalingRelations {
	return ScalingRelations{
		DeltaNuCoeff:        0.267,
		DeltaNuExponent:     0.760,
		Granulation1Coeff:   0.317,
		Granulation1Exp:     0.970,
		Granulation2Coeff:   0.948,
		Granulation2Exp:     0.992,
		GranulationAmpCoeff: 3383,
		GranulationAmpExp:   -0.609,
	}
}

// DeltaNu returns the large frequency separation in µHz.
func (s ScalingRelations) DeltaNu(numax float64) float64 {
	return s.DeltaNuCoeff * math.Pow(numax, s.DeltaNuExponent)
}

// Granulation1Frequency returns the meso-granulation frequency in µHz.
func (s ScalingRelations) Granulation1Frequency(numax float64) float64 {
	return s.Granulation1Coeff * math.Pow(numax, s.Granulation1Exp)
}

// Granulation2Frequency returns the granulation frequency in µHz.
func (s ScalingRelations) Granulation2Frequency(numax float64) float64 {
	return s.Granulation2Coeff * math.Pow(numax, s.Granulation2Exp)
}

// GranulationAmplitude returns the granulation amplitude in ppm, shared by
// both granulation profiles.
func (s ScalingRelations) GranulationAmplitude(numax float64) float64 {
	return s.GranulationAmpCoeff * math.Pow(numax, s.GranulationAmpExp)
}

// LargeSeparation is DeltaNu with the default calibration.
func LargeSeparation(numax float64) float64 {
	return DefaultScaling().DeltaNu(numax)
}

// Prior widths as multiples of the central estimates.
const (
	numaxFraction = 0.1

	sigmaPerDeltaNu    = 2.0
	sigmaFraction      = 0.4
	sigmaLowerStretch  = 1.5
	heightWindowDnu    = 3.0
	heightLowerFactor  = 0.1
	heightUpperFactor  = 1.4
	whiteLowerFactor   = 0.5
	whiteUpperFactor   = 1.5
	whiteOffsetDnu     = 2.0
	harveyFreqLower    = 0.6
	harveyFreqUpper    = 1.4
	peakWindowFraction = 0.1
	gran1AmpLower      = 0.3
	gran1AmpUpper      = 1.5
	gran2AmpLower      = 0.2
	gran2AmpUpper      = 1.5
	rotationPerGran1   = 0.5
	rotationFreqUpper  = 0.9
	rotationAmpUpper   = 1.5
	colorPerRotation   = 1.5
	colorFreqUpper     = 1.5
	colorAmpUpper      = 2.0
)

// Short time series (Nyquist below shortNyquist µHz) with νmax above
// shortNumax µHz have no room above νmax+2Δν; white noise is then measured
// above shortCutoff µHz instead.
const (
	shortNyquist = 300.0
	shortNumax   = 200.0
	shortCutoff  = 200.0
)

// Default de-overlap thresholds.
const (
	GranulationOverlapRatio = 1.2
	RotationOverlapRatio    = 1.3
)
