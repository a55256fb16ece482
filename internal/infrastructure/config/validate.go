package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/younwookim/glide/internal/domain/entity"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that every value is usable by the controller.
// All problems are reported together.
func (c *ControllerConfig) Validate() error {
	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}
	nonNeg := func(name string, v float64) {
		check(v >= 0 && !math.IsInf(v, 0), "%s must be >= 0 (got %v)", name, v)
	}

	check(c.Display.ScreenWidth > 0 && c.Display.ScreenHeight > 0, "display size must be positive")
	check(c.Display.Framerate > 0, "display.framerate must be > 0 (got %d)", c.Display.Framerate)

	nonNeg("physics.gravity", c.Physics.Gravity)
	nonNeg("physics.maxFallSpeed", c.Physics.MaxFallSpeed)

	nonNeg("movement.speed", c.Movement.Speed)
	nonNeg("movement.crouchMultiplier", c.Movement.CrouchMultiplier)

	nonNeg("jump.impulse", c.Jump.Impulse)
	nonNeg("jump.coyoteTime", c.Jump.CoyoteTime)
	nonNeg("jump.jumpBuffer", c.Jump.JumpBuffer)
	nonNeg("jump.releaseMultiplier", c.Jump.ReleaseMultiplier)

	nonNeg("dash.speed", c.Dash.Speed)
	nonNeg("dash.duration", c.Dash.Duration)
	nonNeg("dash.cooldown", c.Dash.Cooldown)

	check(c.Ground.WidthFactor > 0 && c.Ground.WidthFactor <= 1,
		"ground.widthFactor must be in (0, 1] (got %v)", c.Ground.WidthFactor)
	check(c.Ground.Thickness > 0, "ground.thickness must be > 0 (got %v)", c.Ground.Thickness)
	nonNeg("ground.distance", c.Ground.Distance)
	check(len(c.Ground.Layers) > 0, "ground.layers must name at least one layer")
	if _, unknown := entity.MaskOf(c.Ground.Layers...); len(unknown) > 0 {
		problems = append(problems, fmt.Sprintf("ground.layers: unknown layers %s", strings.Join(unknown, ", ")))
	}

	check(c.Player.Mass > 0, "player.mass must be > 0 (got %v)", c.Player.Mass)
	check(c.Player.Hitbox.Width > 0 && c.Player.Hitbox.Height > 0, "player.hitbox size must be positive")

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}

// GroundMask returns the layer mask the ground probe casts against.
// Unknown names are ignored; Validate reports them.
func (c *ControllerConfig) GroundMask() entity.LayerMask {
	mask, _ := entity.MaskOf(c.Ground.Layers...)
	return mask
}

// DT returns the fixed tick length implied by the framerate
func (c *ControllerConfig) DT() float64 {
	if c.Display.Framerate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.Display.Framerate)
}
