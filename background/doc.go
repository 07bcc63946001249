// Package background evaluates the closed-form background model fitted to
// the power spectral density of solar-like oscillators.
//
// The model is a sum of independent components:
//
//   - white (photon) noise, a constant level W
//   - a coloured/instrumental noise term, 2π a² / (ν (1 + (f/ν)²))
//   - up to three Harvey-like profiles (long trend or rotation, meso-
//     granulation, granulation), ζ r(f) a² / ν / (1 + (f/ν)⁴) with ζ = 2√2/π
//   - a Gaussian oscillation excess, r(f) H exp(-(νmax - f)² / (2σ²))
//
// where r(f) = sinc²(π f / (2 ν_Nyq)) is the apodisation of the signal by
// the instrument's finite integration time.
//
// A [Variant] selects which components are free. Its [Variant.Slots] fix the
// layout of the flat parameter vector exchanged with the nested sampler, and
// [Unpack] turns such a vector into a named [Params] record.
//
// # Instrument Nyquist frequency
//
// The response r(f) uses a fixed instrument Nyquist frequency,
// [InstrumentNyquist] (Kepler long cadence), not the Nyquist frequency of the
// PSD being modelled. Use [WithNyquist] to evaluate for a different cadence.
package background
