// Package character holds the controllable character: its physics body and
// the controller state blocks that drive it.
package character

import (
	"github.com/younwookim/glide/internal/domain/dash"
	"github.com/younwookim/glide/internal/domain/entity"
	"github.com/younwookim/glide/internal/domain/motion"
)

// Player is the controlled character. All state is created at spawn and
// lives until the player is dropped; nothing is persisted.
type Player struct {
	entity.Body

	Motion   motion.State
	Dash     *dash.Machine
	Grounded bool // result of the last ground probe
}

// NewPlayer creates a player at pixel position (x, y) with timers expired
// and not grounded.
func NewPlayer(x, y float64, hitbox entity.HitboxRect, spriteWidth, mass float64, dashSettings dash.Settings) *Player {
	return &Player{
		Body: entity.Body{
			X:           x,
			Y:           y,
			Mass:        mass,
			SpriteWidth: spriteWidth,
			Hitbox:      hitbox,
			FacingRight: true,
		},
		Dash: dash.New(dashSettings),
	}
}

// Respawn moves the player to (x, y) and restores spawn state
func (p *Player) Respawn(x, y float64) {
	p.SetPos(x, y)
	p.SetVelocity(entity.Vec2{})
	p.OnGround = false
	p.OnCeiling = false
	p.OnWallLeft = false
	p.OnWallRight = false
	p.FacingRight = true
	p.Grounded = false
	p.Motion.Reset()
	p.Dash.Reset()
}

// IsDashing reports whether a dash is running
func (p *Player) IsDashing() bool {
	return p.Dash.Active()
}
