// Package edge turns a per-tick boolean level into discrete transitions.
package edge

// Kind is the transition observed by a single Update
type Kind int

const (
	None Kind = iota
	Rising
	Falling
)

// String returns the string representation of the edge kind
func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case Rising:
		return "Rising"
	case Falling:
		return "Falling"
	default:
		return "Unknown"
	}
}

// Detector compares each sample with the previous one.
// The zero value starts low, so a first sample of true is a rising edge.
type Detector struct {
	prev bool
}

// Update records v and returns the transition from the previous sample
func (d *Detector) Update(v bool) Kind {
	prev := d.prev
	d.prev = v
	switch {
	case v && !prev:
		return Rising
	case !v && prev:
		return Falling
	default:
		return None
	}
}

// Level returns the last sample
func (d *Detector) Level() bool {
	return d.prev
}

// Reset returns the detector to the low state
func (d *Detector) Reset() {
	d.prev = false
}
