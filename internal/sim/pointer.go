package sim

// Mode selects whether the pointer pulls particles in or pushes them away.
type Mode uint8

const (
	Attract Mode = iota
	Repel
)

func (m Mode) String() string {
	if m == Repel {
		return "Repulsion"
	}
	return "Attraction"
}

// Label is the text shown to the user for the current mode.
func (m Mode) Label() string {
	return "Mode: " + m.String()
}

// Pointer holds the last known pointer position and the interaction mode.
type Pointer struct {
	X, Y float64
	Mode Mode
}

// Toggle flips between Attract and Repel.
func (p *Pointer) Toggle() {
	if p.Mode == Attract {
		p.Mode = Repel
	} else {
		p.Mode = Attract
	}
}
