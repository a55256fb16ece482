// Package motion turns per-tick move intent and ground contact into a
// horizontal velocity command and at most one jump per buffered request.
//
// Two grace timers relax jump timing:
//   - coyote time keeps a jump available briefly after leaving the ground
//   - the jump buffer remembers an early press until the character can jump
package motion

import (
	"math"

	"github.com/younwookim/glide/internal/domain/edge"
	"github.com/younwookim/glide/internal/domain/entity"
)

const (
	// CrouchThreshold is the vertical intent below which the character crouches
	CrouchThreshold = -0.5
	// JumpThreshold is the vertical intent above which a jump is wanted
	JumpThreshold = 0.5
)

// Intent is the move intent for one tick. Both axes live in [-1, 1];
// +Y means "up" on the stick, not screen space.
type Intent struct {
	X, Y float64
}

// Clamp returns the intent with both axes clamped into [-1, 1]. NaN becomes 0.
func (in Intent) Clamp() Intent {
	return Intent{X: clampUnit(in.X), Y: clampUnit(in.Y)}
}

// Crouch reports whether the intent asks for a crouch
func (in Intent) Crouch() bool {
	return in.Y < CrouchThreshold
}

// WantsJump reports whether the intent asks for a jump
func (in Intent) WantsJump() bool {
	return in.Y > JumpThreshold
}

// Body is the physics body the controller drives
type Body interface {
	Velocity() entity.Vec2
	SetVelocity(v entity.Vec2)
	ApplyImpulse(impulse entity.Vec2)
}

// Settings configures the controller. Timers are in seconds.
type Settings struct {
	Speed             float64
	CrouchMultiplier  float64
	JumpImpulse       float64
	CoyoteTime        float64
	JumpBuffer        float64
	ReleaseMultiplier float64 // applied to upward velocity when jump is released; outside (0,1) disables
}

// State is the per-character controller state
type State struct {
	MoveX     float64
	Crouching bool
	Coyote    float64
	Buffer    float64

	latch edge.Detector
}

// JumpHeld reports whether the jump intent was held on the last tick
func (s *State) JumpHeld() bool {
	return s.latch.Level()
}

// Reset restores the spawn state: timers expired, latch low
func (s *State) Reset() {
	*s = State{}
}

// Result reports what a Step did
type Result struct {
	Jumped   bool
	Released bool
}

// Controller applies Settings to a State each tick
type Controller struct {
	settings Settings
}

// NewController creates a controller
func NewController(settings Settings) *Controller {
	return &Controller{settings: settings}
}

// Settings returns the active settings
func (c *Controller) Settings() Settings {
	return c.settings
}

// SetSettings swaps the settings, e.g. after a config reload.
// Timers already running are clamped to the new maxima.
func (c *Controller) SetSettings(settings Settings, state *State) {
	c.settings = settings
	if state != nil {
		state.Coyote = math.Min(state.Coyote, math.Max(settings.CoyoteTime, 0))
		state.Buffer = math.Min(state.Buffer, math.Max(settings.JumpBuffer, 0))
	}
}

// Step advances the controller by one tick.
// While dashing the horizontal write and the jump are suppressed; timers still run.
func (c *Controller) Step(state *State, intent Intent, grounded, dashing bool, dt float64, body Body) Result {
	var res Result
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}

	intent = intent.Clamp()
	state.MoveX = intent.X
	state.Crouching = intent.Crouch()

	speed := c.settings.Speed
	if state.Crouching {
		speed *= c.settings.CrouchMultiplier
	}

	c.updateTimers(state, intent, grounded, dt, &res)

	if dashing {
		return res
	}

	v := body.Velocity()
	v.X = intent.X * speed
	body.SetVelocity(v)

	if !state.Crouching && state.Buffer > 0 && state.Coyote > 0 {
		v.Y = 0
		body.SetVelocity(v)
		body.ApplyImpulse(entity.Vec2{Y: -c.settings.JumpImpulse})
		state.Buffer = 0
		state.Coyote = 0
		res.Jumped = true
		return res
	}

	if res.Released {
		c.cutJump(body)
	}
	return res
}

// updateTimers refreshes coyote time and the jump buffer
func (c *Controller) updateTimers(state *State, intent Intent, grounded bool, dt float64, res *Result) {
	if grounded {
		state.Coyote = math.Max(c.settings.CoyoteTime, 0)
	} else {
		state.Coyote = math.Max(state.Coyote-dt, 0)
	}

	switch state.latch.Update(intent.WantsJump()) {
	case edge.Rising:
		state.Buffer = math.Max(c.settings.JumpBuffer, 0)
	case edge.Falling:
		state.Buffer = math.Max(state.Buffer-dt, 0)
		res.Released = true
	default:
		state.Buffer = math.Max(state.Buffer-dt, 0)
	}
}

// cutJump shortens a rising jump when the jump intent is released
func (c *Controller) cutJump(body Body) {
	m := c.settings.ReleaseMultiplier
	if m <= 0 || m >= 1 {
		return
	}
	v := body.Velocity()
	if v.Y < 0 {
		v.Y *= m
		body.SetVelocity(v)
	}
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}
