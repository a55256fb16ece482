// Package dash implements the dash as an explicit two-phase state machine
// advanced once per tick. A dash always runs its full duration; the cooldown
// gates the next trigger.
package dash

import (
	"math"

	"github.com/younwookim/glide/internal/domain/entity"
)

// minDirectionMagnitude is the smallest intent or velocity that picks a direction
const minDirectionMagnitude = 0.01

// Phase is the dash state
type Phase int

const (
	Idle Phase = iota
	Dashing
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Dashing:
		return "Dashing"
	default:
		return "Unknown"
	}
}

// Settings configures the dash. Durations are in seconds.
type Settings struct {
	Speed    float64
	Duration float64
	Cooldown float64
}

// Body is the velocity owner the dash writes to
type Body interface {
	Velocity() entity.Vec2
	SetVelocity(v entity.Vec2)
}

// Machine is one character's dash state
type Machine struct {
	settings Settings

	phase        Phase
	direction    float64
	startedAt    float64
	nextEligible float64
}

// New creates an idle machine that may trigger at any time >= 0
func New(settings Settings) *Machine {
	return &Machine{settings: settings, direction: 1}
}

// Trigger handles a dash press at time now.
// It is ignored while dashing or before the cooldown has elapsed.
func (m *Machine) Trigger(now, intentX, velocityX float64) bool {
	if m.phase == Dashing || math.IsNaN(now) || now < m.nextEligible {
		return false
	}

	m.direction = Direction(intentX, velocityX)
	m.nextEligible = now + math.Max(m.settings.Cooldown, 0)
	m.startedAt = now
	m.phase = Dashing
	return true
}

// Advance ends the dash once its duration has elapsed at time now.
// Returns true on the tick the dash ends.
func (m *Machine) Advance(now float64) bool {
	if m.phase != Dashing {
		return false
	}
	if now-m.startedAt >= m.settings.Duration {
		m.phase = Idle
		return true
	}
	return false
}

// Apply overwrites horizontal velocity while dashing and leaves vertical
// velocity alone. Returns true if it wrote velocity.
func (m *Machine) Apply(body Body) bool {
	if m.phase != Dashing {
		return false
	}
	v := body.Velocity()
	v.X = m.direction * m.settings.Speed
	body.SetVelocity(v)
	return true
}

// Tick is Advance followed by Apply
func (m *Machine) Tick(now float64, body Body) bool {
	m.Advance(now)
	return m.Apply(body)
}

// Direction picks the dash direction: move intent first, then current
// velocity, then +1.
func Direction(intentX, velocityX float64) float64 {
	if math.Abs(intentX) >= minDirectionMagnitude {
		return sign(intentX)
	}
	if math.Abs(velocityX) >= minDirectionMagnitude {
		return sign(velocityX)
	}
	return 1
}

// Phase returns the current phase
func (m *Machine) Phase() Phase {
	return m.phase
}

// Active reports whether a dash is running
func (m *Machine) Active() bool {
	return m.phase == Dashing
}

// Direction returns -1 or +1 for the current or last dash
func (m *Machine) Direction() float64 {
	return m.direction
}

// NextEligible returns the earliest time the next trigger is honored
func (m *Machine) NextEligible() float64 {
	return m.nextEligible
}

// Remaining returns the seconds left in the running dash, or 0
func (m *Machine) Remaining(now float64) float64 {
	if m.phase != Dashing {
		return 0
	}
	return math.Max(m.settings.Duration-(now-m.startedAt), 0)
}

// Settings returns the active settings
func (m *Machine) Settings() Settings {
	return m.settings
}

// SetSettings swaps the settings. A running dash keeps its direction and start time.
func (m *Machine) SetSettings(settings Settings) {
	m.settings = settings
}

// Reset returns the machine to the spawn state
func (m *Machine) Reset() {
	*m = Machine{settings: m.settings, direction: 1}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
