package system

import (
	"math"

	"github.com/younwookim/glide/internal/domain/entity"
	"github.com/younwookim/glide/internal/infrastructure/config"
)

// overlapEpsilon is the tile-space slack that keeps exactly touching edges
// from counting as overlap
const overlapEpsilon = 1e-6

// maxPushOut is how far, in pixels, an overlap is pushed out per axis before giving up
const maxPushOut = 8

// PhysicsSystem integrates velocity into position against the stage tiles.
// It is the single commit point for velocities written by the controller.
type PhysicsSystem struct {
	config *config.ControllerConfig
	stage  *entity.Stage
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.ControllerConfig, stage *entity.Stage) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		stage:  stage,
	}
}

// SetConfig applies a reloaded config
func (s *PhysicsSystem) SetConfig(cfg *config.ControllerConfig) {
	s.config = cfg
}

// Update applies gravity and moves the body by its velocity
func (s *PhysicsSystem) Update(body *entity.Body, dt float64) {
	if dt <= 0 || math.IsNaN(dt) {
		return
	}
	s.applyGravity(body, dt)
	s.applyMovement(body, body.VX*dt, body.VY*dt)
}

// applyGravity accelerates the body downward, clamped to max fall speed
func (s *PhysicsSystem) applyGravity(body *entity.Body, dt float64) {
	body.VY += s.config.Physics.Gravity * dt
	if body.VY > s.config.Physics.MaxFallSpeed {
		body.VY = s.config.Physics.MaxFallSpeed
	}
}

// applyMovement moves the body with substep collision detection
func (s *PhysicsSystem) applyMovement(body *entity.Body, dx, dy float64) {
	// Reset collision flags
	body.OnGround = false
	body.OnCeiling = false
	body.OnWallLeft = false
	body.OnWallRight = false

	// First, resolve any existing overlaps (push-out)
	s.resolveOverlap(body)

	s.moveX(body, dx)
	s.moveY(body, dy)

	// Final overlap resolution after movement
	s.resolveOverlap(body)
}

// moveX moves the body horizontally in substeps of at most one pixel
func (s *PhysicsSystem) moveX(body *entity.Body, dx float64) {
	if dx == 0 || math.IsNaN(dx) {
		return
	}

	steps := int(math.Ceil(math.Abs(dx)))
	step := dx / float64(steps)
	for i := 0; i < steps; i++ {
		if s.collidesAt(body, body.X+step, body.Y) {
			// Hit wall: close the remaining gap
			b := body.Bounds()
			if step > 0 {
				body.X += s.gapTo(b.Max().X, step)
				body.OnWallRight = true
			} else {
				body.X += s.gapTo(b.Min.X, step)
				body.OnWallLeft = true
			}
			body.VX = 0
			return
		}
		body.X += step
	}
}

// moveY moves the body vertically in substeps of at most one pixel
func (s *PhysicsSystem) moveY(body *entity.Body, dy float64) {
	if dy == 0 || math.IsNaN(dy) {
		return
	}

	steps := int(math.Ceil(math.Abs(dy)))
	step := dy / float64(steps)
	for i := 0; i < steps; i++ {
		if s.collidesAt(body, body.X, body.Y+step) {
			b := body.Bounds()
			if step > 0 {
				// Hit ground
				body.Y += s.gapTo(b.Max().Y, step)
				body.OnGround = true
			} else {
				// Hit ceiling
				body.Y += s.gapTo(b.Min.Y, step)
				body.OnCeiling = true
			}
			body.VY = 0
			return
		}
		body.Y += step
	}
}

// gapTo returns the distance from the leading edge to the tile boundary it
// would cross moving by step. The result is never against step.
func (s *PhysicsSystem) gapTo(edge, step float64) float64 {
	ts := s.tileSize()
	var boundary float64
	if step > 0 {
		boundary = math.Floor((edge+step)/ts) * ts
	} else {
		boundary = math.Ceil((edge+step)/ts) * ts
	}
	gap := boundary - edge
	if gap*step < 0 || math.Abs(gap) > math.Abs(step) {
		return 0
	}
	return gap
}

// collidesAt reports whether the body's hitbox at (x, y) overlaps a solid tile
func (s *PhysicsSystem) collidesAt(body *entity.Body, x, y float64) bool {
	return s.overlaps(body.BoundsAt(x, y), func(t entity.Tile) bool { return t.Solid })
}

// TouchesHazard reports whether the body overlaps any hazard tile
func (s *PhysicsSystem) TouchesHazard(body *entity.Body) bool {
	return s.overlaps(body.Bounds(), func(t entity.Tile) bool { return t.Layer.Has(entity.LayerHazard) })
}

// overlaps reports whether any tile under b with positive overlap area matches.
// Iterates all tiles the rectangle overlaps to handle any hitbox size.
func (s *PhysicsSystem) overlaps(b entity.Bounds, match func(entity.Tile) bool) bool {
	ts := s.tileSize()
	hi := b.Max()

	startTX := int(math.Floor(b.Min.X/ts + overlapEpsilon))
	endTX := int(math.Ceil(hi.X/ts-overlapEpsilon)) - 1
	startTY := int(math.Floor(b.Min.Y/ts + overlapEpsilon))
	endTY := int(math.Ceil(hi.Y/ts-overlapEpsilon)) - 1

	for ty := startTY; ty <= endTY; ty++ {
		for tx := startTX; tx <= endTX; tx++ {
			if match(s.stage.GetTile(tx, ty)) {
				return true
			}
		}
	}
	return false
}

// resolveOverlap pushes the body out of any solid tiles it overlaps.
// Returns false if it was stuck and got sent back to spawn.
func (s *PhysicsSystem) resolveOverlap(body *entity.Body) bool {
	if !s.collidesAt(body, body.X, body.Y) {
		return true
	}

	type pushOption struct {
		dx, dy float64
	}
	var best *pushOption
	bestDist := math.Inf(1)

	directions := []pushOption{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for _, d := range directions {
		for i := 1; i <= maxPushOut; i++ {
			dist := float64(i)
			if dist >= bestDist {
				break
			}
			if !s.collidesAt(body, body.X+d.dx*dist, body.Y+d.dy*dist) {
				best = &pushOption{d.dx * dist, d.dy * dist}
				bestDist = dist
				break
			}
		}
	}

	if best == nil {
		// Can't resolve - reset to spawn position
		body.SetPos(s.stage.SpawnX, s.stage.SpawnY)
		body.SetVelocity(entity.Vec2{})
		return false
	}

	body.X += best.dx
	body.Y += best.dy

	// Set collision flags based on push direction
	switch {
	case best.dx > 0:
		body.OnWallLeft = true
		body.VX = 0
	case best.dx < 0:
		body.OnWallRight = true
		body.VX = 0
	case best.dy > 0:
		body.OnCeiling = true
		body.VY = 0
	case best.dy < 0:
		body.OnGround = true
		body.VY = 0
	}
	return true
}

func (s *PhysicsSystem) tileSize() float64 {
	if s.stage.TileSize <= 0 {
		return 16 // fallback
	}
	return float64(s.stage.TileSize)
}
