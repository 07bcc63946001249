package priors

// Range is a closed uniform-prior interval.
type Range struct {
	Lower, Upper float64
}

// Valid reports whether Lower < Upper.
func (r Range) Valid() bool { return r.Lower < r.Upper }

// ResolveOverlap reconciles the frequency ranges of two adjacent profiles,
// low being the one at lower frequency.
//
// If low.Upper exceeds ratio·high.Lower the overlap is split evenly: both
// bounds move to the midpoint of the overlap. If the ranges leave a gap, both
// bounds snap to the middle of the gap so the union stays contiguous.
// Otherwise the ranges are returned unchanged. A resolved pair is a fixed
// point of ResolveOverlap for any ratio >= 1.
func ResolveOverlap(low, high Range, ratio float64) (Range, Range) {
	switch {
	case low.Upper > high.Lower*ratio:
		mid := low.Upper - 0.5*(low.Upper-high.Lower)
		low.Upper, high.Lower = mid, mid
	case low.Upper < high.Lower:
		mid := (low.Upper + high.Lower) / 2
		low.Upper, high.Lower = mid, mid
	}
	return low, high
}
