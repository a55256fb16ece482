package spatial

import (
	"math"

	"github.com/younwookim/glide/internal/domain/entity"
	"github.com/younwookim/glide/internal/domain/ground"
)

// TileCaster answers casts by scanning the stage tiles the swept box covers
type TileCaster struct {
	stage *entity.Stage
}

// NewTileCaster creates a caster over stage
func NewTileCaster(stage *entity.Stage) *TileCaster {
	return &TileCaster{stage: stage}
}

// BoxCast reports whether any tile in mask lies under the swept box.
// Edges that only touch count as hits.
func (c *TileCaster) BoxCast(origin, size, dir entity.Vec2, distance float64, mask entity.LayerMask) bool {
	if c.stage == nil || c.stage.TileSize <= 0 || mask == entity.LayerNone {
		return false
	}
	swept := ground.Swept(origin, size, dir, distance)
	hi := swept.Max()
	ts := float64(c.stage.TileSize)

	// A tile ending exactly at the box's min edge still touches it
	startTX := int(math.Ceil(swept.Min.X/ts)) - 1
	endTX := int(math.Floor(hi.X / ts))
	startTY := int(math.Ceil(swept.Min.Y/ts)) - 1
	endTY := int(math.Floor(hi.Y / ts))

	for ty := startTY; ty <= endTY; ty++ {
		for tx := startTX; tx <= endTX; tx++ {
			if c.stage.GetTile(tx, ty).Layer.Has(mask) {
				return true
			}
		}
	}
	return false
}
