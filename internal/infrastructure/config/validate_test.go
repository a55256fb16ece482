package config

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_AreValid(t *testing.T) {
	require.NoError(t, Defaults().Validate())
}

func TestControllerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ControllerConfig)
		wantMsg string
	}{
		{"negative coyote", func(c *ControllerConfig) { c.Jump.CoyoteTime = -0.1 }, "jump.coyoteTime"},
		{"nan buffer", func(c *ControllerConfig) { c.Jump.JumpBuffer = math.NaN() }, "jump.jumpBuffer"},
		{"negative dash duration", func(c *ControllerConfig) { c.Dash.Duration = -1 }, "dash.duration"},
		{"infinite speed", func(c *ControllerConfig) { c.Movement.Speed = math.Inf(1) }, "movement.speed"},
		{"width factor too large", func(c *ControllerConfig) { c.Ground.WidthFactor = 1.5 }, "ground.widthFactor"},
		{"zero probe thickness", func(c *ControllerConfig) { c.Ground.Thickness = 0 }, "ground.thickness"},
		{"no ground layers", func(c *ControllerConfig) { c.Ground.Layers = nil }, "ground.layers"},
		{"unknown ground layer", func(c *ControllerConfig) { c.Ground.Layers = []string{"ground", "lava"} }, "lava"},
		{"zero mass", func(c *ControllerConfig) { c.Player.Mass = 0 }, "player.mass"},
		{"zero framerate", func(c *ControllerConfig) { c.Display.Framerate = 0 }, "display.framerate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestControllerConfig_ValidateReportsAllProblems(t *testing.T) {
	cfg := Defaults()
	cfg.Jump.CoyoteTime = -1
	cfg.Dash.Cooldown = -1

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "jump.coyoteTime")
	assert.Contains(t, err.Error(), "dash.cooldown")
}

func TestControllerConfig_DT(t *testing.T) {
	cfg := Defaults()
	assert.InDelta(t, 1.0/60.0, cfg.DT(), 1e-12)

	cfg.Display.Framerate = 120
	assert.InDelta(t, 1.0/120.0, cfg.DT(), 1e-12)

	cfg.Display.Framerate = 0
	assert.InDelta(t, 1.0/60.0, cfg.DT(), 1e-12)
}
