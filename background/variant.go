package background

import (
	"fmt"
	"strings"
)

// Component identifies one additive term of the background model.
type Component uint8

const (
	ComponentWhite Component = 1 << iota
	ComponentColor
	ComponentLongTrend
	ComponentGranulation1
	ComponentGranulation2
	ComponentExcess
)

// Variant selects the set of active components.
type Variant int

// The zero Variant is invalid.
const (
	FlatNoGaussian Variant = iota + 1
	Flat
	OneHarveyNoGaussian
	OneHarvey
	OneHarveyColor
	TwoHarveyNoGaussian
	TwoHarvey
	TwoHarveyColor
	ThreeHarveyNoGaussian
	ThreeHarvey
	ThreeHarveyColor
	ThreeHarveyColorNoGaussian
)

type variantEntry struct {
	name       string
	components Component
}

var variants = map[Variant]variantEntry{
	FlatNoGaussian:             {"FlatNoGaussian", ComponentWhite},
	Flat:                       {"Flat", ComponentWhite | ComponentExcess},
	OneHarveyNoGaussian:        {"OneHarveyNoGaussian", ComponentWhite | ComponentGranulation1},
	OneHarvey:                  {"OneHarvey", ComponentWhite | ComponentGranulation1 | ComponentExcess},
	OneHarveyColor:             {"OneHarveyColor", ComponentWhite | ComponentColor | ComponentGranulation1 | ComponentExcess},
	TwoHarveyNoGaussian:        {"TwoHarveyNoGaussian", ComponentWhite | ComponentGranulation1 | ComponentGranulation2},
	TwoHarvey:                  {"TwoHarvey", ComponentWhite | ComponentGranulation1 | ComponentGranulation2 | ComponentExcess},
	TwoHarveyColor:             {"TwoHarveyColor", ComponentWhite | ComponentColor | ComponentGranulation1 | ComponentGranulation2 | ComponentExcess},
	ThreeHarveyNoGaussian:      {"ThreeHarveyNoGaussian", ComponentWhite | ComponentLongTrend | ComponentGranulation1 | ComponentGranulation2},
	ThreeHarvey:                {"ThreeHarvey", ComponentWhite | ComponentLongTrend | ComponentGranulation1 | ComponentGranulation2 | ComponentExcess},
	ThreeHarveyColor:           {"ThreeHarveyColor", ComponentWhite | ComponentColor | ComponentLongTrend | ComponentGranulation1 | ComponentGranulation2 | ComponentExcess},
	ThreeHarveyColorNoGaussian: {"ThreeHarveyColorNoGaussian", ComponentWhite | ComponentColor | ComponentLongTrend | ComponentGranulation1 | ComponentGranulation2},
}

// Variants returns every known variant in declaration order.
func Variants() []Variant {
	out := make([]Variant, 0, len(variants))
	for v := FlatNoGaussian; v <= ThreeHarveyColorNoGaussian; v++ {
		out = append(out, v)
	}
	return out
}

// ParseVariant resolves a variant by its exact name, e.g. "ThreeHarvey".
func ParseVariant(name string) (Variant, error) {
	name = strings.TrimSpace(name)
	for v, e := range variants {
		if e.name == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownVariant, name)
}

// String returns the variant name as used in DIAMONDS configuration files.
func (v Variant) String() string {
	if e, ok := variants[v]; ok {
		return e.name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	_, ok := variants[v]
	return ok
}

// Has reports whether component c is active in v.
func (v Variant) Has(c Component) bool {
	return variants[v].components&c != 0
}

// Slots returns the free parameters of v in parameter-vector order.
// It returns nil for an unknown variant.
func (v Variant) Slots() []Slot {
	e, ok := variants[v]
	if !ok {
		return nil
	}

	out := make([]Slot, 0, numSlots)
	for s := SlotWhite; s <= SlotSigma; s++ {
		if e.components&s.Component() != 0 {
			out = append(out, s)
		}
	}
	return out
}

// NumParams returns the length of v's parameter vector, 0 if v is unknown.
func (v Variant) NumParams() int {
	return len(v.Slots())
}

func (v Variant) check() error {
	if !v.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownVariant, v)
	}
	return nil
}
