// Package tick provides the simulation clock controllers read from.
package tick

// Clock supplies the delta of the current tick and a monotonic time, both in seconds
type Clock interface {
	Delta() float64
	Now() float64
}

// Fixed is a fixed-step clock advanced explicitly by the game loop
type Fixed struct {
	dt    float64
	now   float64
	ticks int
}

// NewFixed creates a clock with the given step. Non-positive steps fall back to 1/60.
func NewFixed(dt float64) *Fixed {
	if !(dt > 0) {
		dt = 1.0 / 60.0
	}
	return &Fixed{dt: dt}
}

// Advance moves time forward by one step
func (c *Fixed) Advance() {
	c.ticks++
	c.now = float64(c.ticks) * c.dt
}

// Delta returns the step length
func (c *Fixed) Delta() float64 {
	return c.dt
}

// Now returns the time of the current tick
func (c *Fixed) Now() float64 {
	return c.now
}

// Ticks returns how many steps have elapsed
func (c *Fixed) Ticks() int {
	return c.ticks
}

// Reset rewinds to time zero
func (c *Fixed) Reset() {
	c.ticks = 0
	c.now = 0
}
