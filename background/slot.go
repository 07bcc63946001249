package background

// Slot identifies one scalar model parameter. Slots are declared in the
// canonical order every parameter vector follows.
type Slot int

const (
	SlotWhite Slot = iota
	SlotColorAmplitude
	SlotColorFrequency
	SlotLongAmplitude
	SlotLongFrequency
	SlotGranulation1Amplitude
	SlotGranulation1Frequency
	SlotGranulation2Amplitude
	SlotGranulation2Frequency
	SlotHeight
	SlotNumax
	SlotSigma

	numSlots = int(SlotSigma) + 1
)

type slotInfo struct {
	name      string
	label     string
	unit      string
	component Component
}

var slotTable = [numSlots]slotInfo{
	SlotWhite:                 {"white_noise", "W", "ppm²/µHz", ComponentWhite},
	SlotColorAmplitude:        {"color_amplitude", "σ_color", "ppm", ComponentColor},
	SlotColorFrequency:        {"color_frequency", "ν_color", "µHz", ComponentColor},
	SlotLongAmplitude:         {"long_amplitude", "σ_long", "ppm", ComponentLongTrend},
	SlotLongFrequency:         {"long_frequency", "ν_long", "µHz", ComponentLongTrend},
	SlotGranulation1Amplitude: {"gran1_amplitude", "σ_gran,1", "ppm", ComponentGranulation1},
	SlotGranulation1Frequency: {"gran1_frequency", "ν_gran,1", "µHz", ComponentGranulation1},
	SlotGranulation2Amplitude: {"gran2_amplitude", "σ_gran,2", "ppm", ComponentGranulation2},
	SlotGranulation2Frequency: {"gran2_frequency", "ν_gran,2", "µHz", ComponentGranulation2},
	SlotHeight:                {"height", "H_osc", "ppm²/µHz", ComponentExcess},
	SlotNumax:                 {"numax", "ν_max", "µHz", ComponentExcess},
	SlotSigma:                 {"sigma_env", "σ_env", "µHz", ComponentExcess},
}

func (s Slot) info() slotInfo {
	if s < 0 || int(s) >= numSlots {
		return slotInfo{name: "unknown", label: "?"}
	}
	return slotTable[s]
}

// String returns a snake_case identifier for s.
func (s Slot) String() string { return s.info().name }

// Label returns the physical symbol of s, e.g. "ν_gran,1".
func (s Slot) Label() string { return s.info().label }

// Unit returns the physical unit of s.
func (s Slot) Unit() string { return s.info().unit }

// Component returns the model component s belongs to.
func (s Slot) Component() Component { return s.info().component }
