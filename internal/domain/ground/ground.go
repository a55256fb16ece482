// Package ground answers "is the character standing on something" with a
// thin box cast from the bottom of its collider.
package ground

import (
	"math"

	"github.com/younwookim/glide/internal/domain/entity"
)

// Down is the cast direction in screen space
var Down = entity.Vec2{X: 0, Y: 1}

// Caster is a spatial query service. BoxCast sweeps a box centered on origin
// along dir for distance and reports whether it touches geometry in mask.
type Caster interface {
	BoxCast(origin, size, dir entity.Vec2, distance float64, mask entity.LayerMask) bool
}

// Probe is the ground probe shape
type Probe struct {
	WidthFactor float64 // fraction of collider width, narrower avoids wall hits
	Thickness   float64
	Distance    float64
	Mask        entity.LayerMask
}

// Box returns the probe box for a collider: centered on its bottom edge
func (p Probe) Box(bounds entity.Bounds) (origin, size entity.Vec2) {
	w := bounds.Size.X * p.WidthFactor
	if w < 0 || math.IsNaN(w) {
		w = 0
	}
	h := p.Thickness
	if h < 0 || math.IsNaN(h) {
		h = 0
	}
	return bounds.BottomCenter(), entity.Vec2{X: w, Y: h}
}

// Grounded casts the probe downward from bounds. An unbound caster or an
// empty mask reads as not grounded.
func (p Probe) Grounded(bounds entity.Bounds, caster Caster) bool {
	if caster == nil || p.Mask == entity.LayerNone {
		return false
	}
	origin, size := p.Box(bounds)
	dist := p.Distance
	if dist < 0 || math.IsNaN(dist) {
		dist = 0
	}
	return caster.BoxCast(origin, size, Down, dist, p.Mask)
}

// Swept returns the box covered by a box at origin/size moving along dir for
// distance. Casters that only support overlap tests can query this box.
// It is exact for axis-aligned directions and conservative otherwise.
func Swept(origin, size, dir entity.Vec2, distance float64) entity.Bounds {
	start := entity.Bounds{
		Min:  entity.Vec2{X: origin.X - size.X/2, Y: origin.Y - size.Y/2},
		Size: size,
	}
	end := start.Min.Add(dir.Scale(distance))

	minX := math.Min(start.Min.X, end.X)
	minY := math.Min(start.Min.Y, end.Y)
	maxX := math.Max(start.Min.X, end.X) + size.X
	maxY := math.Max(start.Min.Y, end.Y) + size.Y

	return entity.Bounds{
		Min:  entity.Vec2{X: minX, Y: minY},
		Size: entity.Vec2{X: maxX - minX, Y: maxY - minY},
	}
}
