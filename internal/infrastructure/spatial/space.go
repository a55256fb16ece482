// Package spatial provides the spatial query services the ground probe casts
// against: a chipmunk2d space and a direct tile scan.
package spatial

import (
	"github.com/jakecoffman/cp"

	"github.com/younwookim/glide/internal/domain/entity"
	"github.com/younwookim/glide/internal/domain/ground"
)

// Space is a static collision space built from a stage.
// Each shape's filter category is its tile layer, so casts can select
// geometry by LayerMask.
type Space struct {
	space  *cp.Space
	shapes int
}

// NewSpace creates an empty space
func NewSpace() *Space {
	return &Space{space: cp.NewSpace()}
}

// NewSpaceFromStage builds static shapes for every classified tile.
// Contiguous tiles with the same layer and solidity are merged into larger
// rectangles, and a one-tile ground border surrounds the stage.
func NewSpaceFromStage(stage *entity.Stage) *Space {
	s := NewSpace()
	if stage == nil || stage.TileSize <= 0 {
		return s
	}

	processed := make([]bool, stage.Width*stage.Height)
	for y := 0; y < stage.Height; y++ {
		for x := 0; x < stage.Width; x++ {
			idx := y*stage.Width + x
			if processed[idx] {
				continue
			}
			tile := stage.Tiles[y][x]
			if tile.Layer == entity.LayerNone {
				processed[idx] = true
				continue
			}

			same := func(tx, ty int) bool {
				t := stage.Tiles[ty][tx]
				return !processed[ty*stage.Width+tx] && t.Layer == tile.Layer && t.Solid == tile.Solid
			}

			// Expand width first, then height
			w := 1
			for x+w < stage.Width && same(x+w, y) {
				w++
			}
			h := 1
		heightLoop:
			for y+h < stage.Height {
				for xi := x; xi < x+w; xi++ {
					if !same(xi, y+h) {
						break heightLoop
					}
				}
				h++
			}

			ts := float64(stage.TileSize)
			s.AddBox(entity.Bounds{
				Min:  entity.Vec2{X: float64(x) * ts, Y: float64(y) * ts},
				Size: entity.Vec2{X: float64(w) * ts, Y: float64(h) * ts},
			}, tile.Layer, !tile.Solid)

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*stage.Width+xx] = true
				}
			}
		}
	}

	s.addBorder(stage)
	return s
}

// AddBox adds a static axis-aligned box classified by layer.
// Sensor boxes are found by casts but never collide.
func (s *Space) AddBox(b entity.Bounds, layer entity.LayerMask, sensor bool) {
	hi := b.Max()
	bb := cp.BB{L: b.Min.X, B: b.Min.Y, R: hi.X, T: hi.Y}
	shape := cp.NewBox2(s.space.StaticBody, bb, 0)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(layer), cp.ALL_CATEGORIES))
	shape.SetSensor(sensor)
	s.space.AddShape(shape)
	s.shapes++
}

// Shapes returns how many static shapes the space holds
func (s *Space) Shapes() int {
	return s.shapes
}

// BoxCast sweeps a box along dir and reports whether it touches any shape in mask
func (s *Space) BoxCast(origin, size, dir entity.Vec2, distance float64, mask entity.LayerMask) bool {
	if mask == entity.LayerNone {
		return false
	}
	swept := ground.Swept(origin, size, dir, distance)
	hi := swept.Max()
	bb := cp.BB{L: swept.Min.X, B: swept.Min.Y, R: hi.X, T: hi.Y}

	hit := false
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(mask))
	s.space.BBQuery(bb, filter, func(shape *cp.Shape, data interface{}) {
		hit = true
	}, nil)
	return hit
}

// addBorder closes the stage with ground boxes, matching Stage.GetTile
// which reads everything outside the stage as ground.
func (s *Space) addBorder(stage *entity.Stage) {
	ts := float64(stage.TileSize)
	size := stage.PixelSize()
	borders := []entity.Bounds{
		{Min: entity.Vec2{X: -ts, Y: -ts}, Size: entity.Vec2{X: size.X + 2*ts, Y: ts}},    // top
		{Min: entity.Vec2{X: -ts, Y: size.Y}, Size: entity.Vec2{X: size.X + 2*ts, Y: ts}}, // bottom
		{Min: entity.Vec2{X: -ts, Y: 0}, Size: entity.Vec2{X: ts, Y: size.Y}},             // left
		{Min: entity.Vec2{X: size.X, Y: 0}, Size: entity.Vec2{X: ts, Y: size.Y}},          // right
	}
	for _, b := range borders {
		s.AddBox(b, entity.LayerGround, false)
	}
}
