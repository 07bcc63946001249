// Package window provides the symmetric tapering windows used as smoothing
// kernels for power spectral densities.
//
// The set mirrors the classic numpy smoothing cookbook: flat (moving
// average), hanning, hamming, bartlett and blackman. Coefficients are sampled
// at n/(N-1), matching the numpy definitions bin for bin.
package window
