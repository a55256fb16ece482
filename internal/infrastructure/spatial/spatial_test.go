package spatial

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/glide/internal/domain/entity"
	"github.com/younwookim/glide/internal/domain/ground"
)

func createTestStage() *entity.Stage {
	rows := []string{
		"..........",
		"..........",
		"....==....",
		"..........",
		"......^^..",
		"##########",
	}
	tiles := make([][]entity.Tile, len(rows))
	for y, row := range rows {
		tiles[y] = make([]entity.Tile, len(row))
		for x, ch := range row {
			switch ch {
			case '#':
				tiles[y][x] = entity.Tile{Type: entity.TileWall, Solid: true, Layer: entity.LayerGround}
			case '=':
				tiles[y][x] = entity.Tile{Type: entity.TilePlatform, Solid: true, Layer: entity.LayerPlatform}
			case '^':
				tiles[y][x] = entity.Tile{Type: entity.TileSpike, Layer: entity.LayerHazard}
			}
		}
	}
	return &entity.Stage{Width: 10, Height: len(rows), TileSize: 16, Tiles: tiles}
}

func TestNewSpaceFromStage_MergesTiles(t *testing.T) {
	s := NewSpaceFromStage(createTestStage())

	// floor row, platform pair, spike pair, plus four border boxes
	assert.Equal(t, 3+4, s.Shapes())
}

func TestNewSpaceFromStage_NilStage(t *testing.T) {
	s := NewSpaceFromStage(nil)

	assert.Equal(t, 0, s.Shapes())
	assert.False(t, s.BoxCast(entity.Vec2{}, entity.Vec2{X: 1, Y: 1}, ground.Down, 1, entity.LayerAll))
}

func TestCasters_BoxCast(t *testing.T) {
	stage := createTestStage()
	casters := map[string]ground.Caster{
		"space": NewSpaceFromStage(stage),
		"tiles": NewTileCaster(stage),
	}

	tests := []struct {
		name     string
		origin   entity.Vec2
		distance float64
		mask     entity.LayerMask
		want     bool
	}{
		{"standing on floor", entity.Vec2{X: 40, Y: 79.8}, 0.5, entity.LayerGround, true},
		{"hovering above floor", entity.Vec2{X: 40, Y: 70}, 0.5, entity.LayerGround, false},
		{"long cast reaches floor", entity.Vec2{X: 40, Y: 70}, 12, entity.LayerGround, true},
		{"platform hit with platform mask", entity.Vec2{X: 72, Y: 31.9}, 0.5, entity.LayerPlatform, true},
		{"platform ignored by ground mask", entity.Vec2{X: 72, Y: 31.9}, 0.5, entity.LayerGround, false},
		{"spikes classified as hazard", entity.Vec2{X: 104, Y: 63.9}, 0.5, entity.LayerHazard, true},
		{"spikes are not ground", entity.Vec2{X: 104, Y: 63.9}, 0.5, entity.LayerGround | entity.LayerPlatform, false},
		{"empty mask never hits", entity.Vec2{X: 40, Y: 79.8}, 0.5, entity.LayerNone, false},
		{"outside the stage is ground", entity.Vec2{X: 40, Y: -2}, 0.5, entity.LayerGround, true},
	}

	for name, caster := range casters {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				got := caster.BoxCast(tt.origin, entity.Vec2{X: 10, Y: 0.1}, ground.Down, tt.distance, tt.mask)
				assert.Equal(t, tt.want, got)
			})
		}
	}
}

func TestCasters_TouchingCountsAsHit(t *testing.T) {
	stage := createTestStage()

	// box spans 79.0..79.5 and sweeps 0.5 down, ending exactly on the floor at y=80
	origin := entity.Vec2{X: 40, Y: 79.25}
	size := entity.Vec2{X: 10, Y: 0.5}

	assert.True(t, NewTileCaster(stage).BoxCast(origin, size, ground.Down, 0.5, entity.LayerGround))
	assert.True(t, NewSpaceFromStage(stage).BoxCast(origin, size, ground.Down, 0.5, entity.LayerGround))
	assert.False(t, NewTileCaster(stage).BoxCast(origin, size, ground.Down, 0.25, entity.LayerGround))
}

func TestCasters_Agree(t *testing.T) {
	stage := createTestStage()
	space := NewSpaceFromStage(stage)
	tiles := NewTileCaster(stage)
	rng := rand.New(rand.NewSource(3))
	masks := []entity.LayerMask{entity.LayerGround, entity.LayerPlatform, entity.LayerHazard, entity.LayerGround | entity.LayerPlatform}

	for i := 0; i < 2000; i++ {
		origin := entity.Vec2{X: rng.Float64() * 160, Y: rng.Float64() * 96}
		size := entity.Vec2{X: rng.Float64() * 14, Y: rng.Float64() * 2}
		dist := rng.Float64() * 8
		mask := masks[rng.Intn(len(masks))]

		require.Equal(t,
			tiles.BoxCast(origin, size, ground.Down, dist, mask),
			space.BoxCast(origin, size, ground.Down, dist, mask),
			"origin=%v size=%v dist=%v mask=%b", origin, size, dist, mask)
	}
}

func TestProbe_GroundedOnSpace(t *testing.T) {
	stage := createTestStage()
	probe := ground.Probe{WidthFactor: 0.9, Thickness: 0.1, Distance: 0.5, Mask: entity.LayerGround | entity.LayerPlatform}
	space := NewSpaceFromStage(stage)

	onFloor := entity.Bounds{Min: entity.Vec2{X: 34, Y: 60}, Size: entity.Vec2{X: 12, Y: 19.8}}
	inAir := entity.Bounds{Min: entity.Vec2{X: 34, Y: 40}, Size: entity.Vec2{X: 12, Y: 19.8}}

	assert.True(t, probe.Grounded(onFloor, space))
	assert.False(t, probe.Grounded(inAir, space))
}
