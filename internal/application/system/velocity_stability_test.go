package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/glide/internal/domain/character"
	"github.com/younwookim/glide/internal/domain/entity"
	"github.com/younwookim/glide/internal/domain/tick"
	"github.com/younwookim/glide/internal/infrastructure/config"
	"github.com/younwookim/glide/internal/infrastructure/spatial"
)

type loop struct {
	player  *character.Player
	input   *InputSystem
	chars   *CharacterSystem
	physics *PhysicsSystem
	clock   *tick.Fixed
}

func newLoop(t *testing.T, stage *entity.Stage, x, y float64) *loop {
	t.Helper()
	cfg := config.Defaults()
	player := character.NewPlayer(x, y, entity.HitboxRect{OffsetX: 2, OffsetY: 4, Width: 12, Height: 20}, 16, 1, DashSettings(cfg))
	l := &loop{
		player:  player,
		input:   NewInputSystemWith(&fakeKeys{}, DefaultBindings()),
		physics: NewPhysicsSystem(cfg, stage),
		clock:   tick.NewFixed(cfg.DT()),
	}
	l.chars = NewCharacterSystem(cfg, player, spatial.NewSpaceFromStage(stage), l.clock, l.input, l.input)
	t.Cleanup(l.chars.Close)
	return l
}

func (l *loop) frame(state InputState) []Intent {
	l.input.Feed(state)
	intents := l.chars.Tick()
	l.physics.Update(&l.player.Body, l.clock.Delta())
	l.clock.Advance()
	return intents
}

func groundStage() *entity.Stage {
	// 10x10 with ground along row 9 (pixel 144)
	stage := &entity.Stage{Width: 10, Height: 10, TileSize: 16, Tiles: make([][]entity.Tile, 10)}
	for y := 0; y < 10; y++ {
		stage.Tiles[y] = make([]entity.Tile, 10)
		for x := 0; x < 10; x++ {
			if y == 9 {
				stage.Tiles[y][x] = entity.Tile{Type: entity.TileWall, Solid: true, Layer: entity.LayerGround}
			}
		}
	}
	return stage
}

// TestVelocityStabilityWhenIdle tests that the character stays put and
// grounded when standing still
func TestVelocityStabilityWhenIdle(t *testing.T) {
	// feet exactly on the ground at y=144
	l := newLoop(t, groundStage(), 80, 120)

	for i := 0; i < 120; i++ {
		l.frame(InputState{})

		require.True(t, l.player.Grounded, "frame %d: should stay grounded", i)
		require.Equal(t, 0.0, l.player.VX, "frame %d", i)
		require.Equal(t, 0.0, l.player.VY, "frame %d", i)
	}
	assert.InDelta(t, 120.0, l.player.Y, 1e-9)
	assert.Equal(t, 80.0, l.player.X)
}

func TestJumpArcReturnsToGround(t *testing.T) {
	l := newLoop(t, groundStage(), 80, 120)
	l.frame(InputState{})

	intents := l.frame(InputState{Up: true})
	require.Contains(t, intents, JumpIntent{Impulse: 280})

	minY := l.player.Y
	landed := false
	for i := 0; i < 240 && !landed; i++ {
		for _, in := range l.frame(InputState{Up: true}) {
			if _, ok := in.(LandIntent); ok {
				landed = true
			}
		}
		if l.player.Y < minY {
			minY = l.player.Y
		}
	}

	require.True(t, landed)
	// integrated per tick the apex is about 47px up
	assert.InDelta(t, 120-47, minY, 2)
	assert.InDelta(t, 120.0, l.player.Y, 1e-9)
}

func TestCoyoteJumpAfterWalkingOffLedge(t *testing.T) {
	stage := groundStage()
	// remove the ground right of x=48
	for x := 3; x < 10; x++ {
		stage.Tiles[9][x] = entity.Tile{}
	}
	l := newLoop(t, stage, 20, 120)
	l.frame(InputState{})

	// walk right until the probe misses
	left := false
	for i := 0; i < 60 && !left; i++ {
		for _, in := range l.frame(InputState{Right: true}) {
			if _, ok := in.(LeaveGroundIntent); ok {
				left = true
			}
		}
	}
	require.True(t, left)

	intents := l.frame(InputState{Right: true, Up: true})
	assert.Contains(t, intents, JumpIntent{Impulse: 280}, "jump inside coyote time")
}

func TestDashKeepsFalling(t *testing.T) {
	l := newLoop(t, groundStage(), 80, 0)

	l.frame(InputState{})
	vyBefore := l.player.VY
	intents := l.frame(InputState{Dash: true})

	require.Contains(t, intents, DashIntent{Direction: 1})
	assert.Equal(t, 300.0, l.player.VX)
	assert.Greater(t, l.player.VY, vyBefore, "gravity still acts during a dash")
}
