package system

import (
	"github.com/younwookim/glide/internal/domain/character"
	"github.com/younwookim/glide/internal/domain/dash"
	"github.com/younwookim/glide/internal/domain/ground"
	"github.com/younwookim/glide/internal/domain/motion"
	"github.com/younwookim/glide/internal/domain/tick"
	"github.com/younwookim/glide/internal/infrastructure/config"
)

// CharacterSystem runs the character controller once per tick.
//
// Order within a tick:
//  1. sample the intent
//  2. trigger a pending dash press
//  3. expire a finished dash
//  4. probe for ground
//  5. step the motion controller, suppressed while dashing
//  6. let the dash override horizontal velocity
//  7. update facing
//
// The physics commit happens afterwards in PhysicsSystem.
type CharacterSystem struct {
	config *config.ControllerConfig
	player *character.Player
	motion *motion.Controller
	probe  ground.Probe
	caster ground.Caster
	clock  tick.Clock
	source IntentSource

	unsubscribe func()
	dashPending bool
}

// NewCharacterSystem wires the controller to its collaborators and subscribes
// to dash presses. Call Close to unsubscribe.
func NewCharacterSystem(cfg *config.ControllerConfig, player *character.Player, caster ground.Caster,
	clock tick.Clock, source IntentSource, events DashEvents) *CharacterSystem {
	s := &CharacterSystem{
		config: cfg,
		player: player,
		motion: motion.NewController(MotionSettings(cfg)),
		probe:  GroundProbe(cfg),
		caster: caster,
		clock:  clock,
		source: source,
	}
	player.Dash.SetSettings(DashSettings(cfg))
	if events != nil {
		s.unsubscribe = events.SubscribeDash(s.RequestDash)
	}
	return s
}

// RequestDash queues a dash press for the next tick
func (s *CharacterSystem) RequestDash() {
	s.dashPending = true
}

// Close drops the dash subscription. Safe to call more than once.
func (s *CharacterSystem) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.dashPending = false
}

// SetConfig applies a reloaded config. Running timers and an active dash
// keep going under the new values.
func (s *CharacterSystem) SetConfig(cfg *config.ControllerConfig) {
	s.config = cfg
	s.motion.SetSettings(MotionSettings(cfg), &s.player.Motion)
	s.player.Dash.SetSettings(DashSettings(cfg))
	s.probe = GroundProbe(cfg)
}

// Probe returns the active ground probe
func (s *CharacterSystem) Probe() ground.Probe {
	return s.probe
}

// Player returns the controlled player
func (s *CharacterSystem) Player() *character.Player {
	return s.player
}

// Tick advances the character by one tick and reports what happened
func (s *CharacterSystem) Tick() []Intent {
	var intents []Intent
	p := s.player
	now := s.clock.Now()

	intent, ok := s.sampleIntent()
	if !ok {
		intent = motion.Intent{}
	}

	if s.dashPending {
		s.dashPending = false
		if p.Dash.Trigger(now, intent.X, p.VX) {
			intents = append(intents, DashIntent{Direction: int(p.Dash.Direction())})
		}
	}
	if p.Dash.Advance(now) {
		intents = append(intents, DashEndIntent{})
	}

	wasGrounded := p.Grounded
	p.Grounded = s.probe.Grounded(p.Bounds(), s.caster)
	switch {
	case p.Grounded && !wasGrounded:
		intents = append(intents, LandIntent{})
	case !p.Grounded && wasGrounded:
		intents = append(intents, LeaveGroundIntent{})
	}

	res := s.motion.Step(&p.Motion, intent, p.Grounded, p.Dash.Active(), s.clock.Delta(), &p.Body)
	if res.Jumped {
		intents = append(intents, JumpIntent{Impulse: s.motion.Settings().JumpImpulse})
	}
	if res.Released {
		intents = append(intents, JumpReleaseIntent{})
	}

	p.Dash.Apply(&p.Body)
	s.updateFacing()

	return intents
}

func (s *CharacterSystem) sampleIntent() (motion.Intent, bool) {
	if s.source == nil {
		return motion.Intent{}, false
	}
	return s.source.Intent()
}

func (s *CharacterSystem) updateFacing() {
	p := s.player
	switch {
	case p.Dash.Active():
		p.FacingRight = p.Dash.Direction() > 0
	case p.VX > 0:
		p.FacingRight = true
	case p.VX < 0:
		p.FacingRight = false
	}
}

// MotionSettings converts config values for the motion controller
func MotionSettings(cfg *config.ControllerConfig) motion.Settings {
	return motion.Settings{
		Speed:             cfg.Movement.Speed,
		CrouchMultiplier:  cfg.Movement.CrouchMultiplier,
		JumpImpulse:       cfg.Jump.Impulse,
		CoyoteTime:        cfg.Jump.CoyoteTime,
		JumpBuffer:        cfg.Jump.JumpBuffer,
		ReleaseMultiplier: cfg.Jump.ReleaseMultiplier,
	}
}

// DashSettings converts config values for the dash machine
func DashSettings(cfg *config.ControllerConfig) dash.Settings {
	return dash.Settings{
		Speed:    cfg.Dash.Speed,
		Duration: cfg.Dash.Duration,
		Cooldown: cfg.Dash.Cooldown,
	}
}

// GroundProbe converts config values for the ground probe
func GroundProbe(cfg *config.ControllerConfig) ground.Probe {
	return ground.Probe{
		WidthFactor: cfg.Ground.WidthFactor,
		Thickness:   cfg.Ground.Thickness,
		Distance:    cfg.Ground.Distance,
		Mask:        cfg.GroundMask(),
	}
}
