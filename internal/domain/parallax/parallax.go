// Package parallax computes scrolling offsets for background layers that
// move slower (or faster) than the camera.
package parallax

import (
	"math"

	"github.com/younwookim/glide/internal/domain/entity"
)

// Layer is one background strip.
// Factor 0 is a fixed backdrop and 1 moves with the world.
type Layer struct {
	Name     string
	Factor   float64
	Width    float64 // texture width in pixels; <= 0 disables horizontal wrapping
	Height   float64 // texture height in pixels; <= 0 disables vertical wrapping
	Vertical bool    // scroll on Y as well
}

// Offset returns how far the layer's texture is shifted for a camera position.
// Wrapped offsets stay in [0, Width) and [0, Height) so tiled draws are seamless.
func (l Layer) Offset(camera entity.Vec2) entity.Vec2 {
	off := entity.Vec2{X: camera.X * l.Factor}
	if l.Vertical {
		off.Y = camera.Y * l.Factor
	}
	off.X = wrap(off.X, l.Width)
	off.Y = wrap(off.Y, l.Height)
	return off
}

// Background is an ordered stack of layers, back to front
type Background struct {
	Layers []Layer
}

// New creates a background from layers ordered back to front
func New(layers ...Layer) *Background {
	return &Background{Layers: layers}
}

// Offsets returns the offset of every layer, in layer order
func (b *Background) Offsets(camera entity.Vec2) []entity.Vec2 {
	out := make([]entity.Vec2, len(b.Layers))
	for i, l := range b.Layers {
		out[i] = l.Offset(camera)
	}
	return out
}

func wrap(v, size float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if !(size > 0) {
		return v
	}
	r := math.Mod(v, size)
	if r < 0 {
		r += size
	}
	return r
}
