package entity

import "math"

// Vec2 is a 2D vector in pixels (positions) or pixels per second (velocities).
// +X points right and +Y points down, matching screen space.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Bounds is an axis-aligned box described by its min corner and size
type Bounds struct {
	Min  Vec2
	Size Vec2
}

// Max returns the corner opposite Min
func (b Bounds) Max() Vec2 {
	return b.Min.Add(b.Size)
}

// Center returns the center point of the box
func (b Bounds) Center() Vec2 {
	return Vec2{X: b.Min.X + b.Size.X/2, Y: b.Min.Y + b.Size.Y/2}
}

// BottomCenter returns the middle of the bottom edge (largest Y)
func (b Bounds) BottomCenter() Vec2 {
	return Vec2{X: b.Min.X + b.Size.X/2, Y: b.Min.Y + b.Size.Y}
}

// Overlaps reports whether two boxes share any area. Touching edges count.
func (b Bounds) Overlaps(o Bounds) bool {
	bm, om := b.Max(), o.Max()
	return b.Min.X <= om.X && o.Min.X <= bm.X && b.Min.Y <= om.Y && o.Min.Y <= bm.Y
}

// HitboxRect is the collider rectangle relative to the body's sprite origin
type HitboxRect struct {
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
}

// WorldRect returns the hitbox in world coordinates.
// The X offset is mirrored inside spriteWidth when facing left.
func (hr HitboxRect) WorldRect(bodyX, bodyY float64, facingRight bool, spriteWidth float64) Bounds {
	offsetX := hr.OffsetX
	if !facingRight {
		offsetX = spriteWidth - hr.OffsetX - hr.Width
	}
	return Bounds{
		Min:  Vec2{X: bodyX + offsetX, Y: bodyY + hr.OffsetY},
		Size: Vec2{X: hr.Width, Y: hr.Height},
	}
}

// Body is the physical body of a character.
// It is the single owner of velocity; controllers read and write it once per tick.
type Body struct {
	X, Y   float64 // sprite origin in pixels
	VX, VY float64 // pixels per second

	Mass        float64
	SpriteWidth float64
	Hitbox      HitboxRect

	OnGround    bool
	OnCeiling   bool
	OnWallLeft  bool
	OnWallRight bool
	FacingRight bool
}

// Velocity returns the current velocity
func (b *Body) Velocity() Vec2 {
	return Vec2{X: b.VX, Y: b.VY}
}

// SetVelocity overwrites the current velocity
func (b *Body) SetVelocity(v Vec2) {
	b.VX = v.X
	b.VY = v.Y
}

// ApplyImpulse changes velocity by impulse / mass. A non-positive mass acts as 1.
func (b *Body) ApplyImpulse(impulse Vec2) {
	m := b.Mass
	if m <= 0 || math.IsNaN(m) {
		m = 1
	}
	b.VX += impulse.X / m
	b.VY += impulse.Y / m
}

// Bounds returns the collider box in world coordinates
func (b *Body) Bounds() Bounds {
	return b.Hitbox.WorldRect(b.X, b.Y, b.FacingRight, b.SpriteWidth)
}

// BoundsAt returns the collider box as if the body were at (x, y)
func (b *Body) BoundsAt(x, y float64) Bounds {
	return b.Hitbox.WorldRect(x, y, b.FacingRight, b.SpriteWidth)
}

// SetPos places the sprite origin
func (b *Body) SetPos(x, y float64) {
	b.X = x
	b.Y = y
}

// PixelX returns the X position rounded down to a whole pixel
func (b *Body) PixelX() int {
	return int(math.Floor(b.X))
}

// PixelY returns the Y position rounded down to a whole pixel
func (b *Body) PixelY() int {
	return int(math.Floor(b.Y))
}
