package priors

import (
	"fmt"

	"github.com/cwbudde/algo-background/background"
)

// Boundary is the prior range of one free parameter.
type Boundary struct {
	Slot  background.Slot
	Lower float64
	Upper float64
}

// Boundaries is an ordered prior boundary set, one entry per free parameter
// of a variant.
type Boundaries []Boundary

// Pairs returns the (lower, upper) pairs in order.
func (b Boundaries) Pairs() [][2]float64 {
	out := make([][2]float64, len(b))
	for i, x := range b {
		out[i] = [2]float64{x.Lower, x.Upper}
	}
	return out
}

// Ranges maps every parameter slot to its derived prior range.
type Ranges map[background.Slot]Range

// Assemble selects the ranges of v's free parameters in parameter-vector
// order and checks that every selected range is non-empty.
func Assemble(v background.Variant, ranges Ranges) (Boundaries, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %v", background.ErrUnknownVariant, v)
	}

	slots := v.Slots()
	out := make(Boundaries, 0, len(slots))
	for _, s := range slots {
		r, ok := ranges[s]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingRange, s)
		}
		if !r.Valid() {
			return nil, fmt.Errorf("%w: %s [%g, %g]", ErrDegenerateBoundary, s, r.Lower, r.Upper)
		}
		out = append(out, Boundary{Slot: s, Lower: r.Lower, Upper: r.Upper})
	}

	return out, nil
}
