package entity

import "strings"

// LayerMask classifies geometry. Queries pass a mask and only hit geometry
// whose layer bits intersect it.
type LayerMask uint32

const (
	LayerDefault LayerMask = 1 << iota
	LayerGround
	LayerPlatform
	LayerHazard

	LayerNone LayerMask = 0
	LayerAll  LayerMask = ^LayerMask(0)
)

var layerNames = map[string]LayerMask{
	"default":  LayerDefault,
	"ground":   LayerGround,
	"platform": LayerPlatform,
	"hazard":   LayerHazard,
}

// Has reports whether m shares any bit with o
func (m LayerMask) Has(o LayerMask) bool {
	return m&o != 0
}

// LayerByName looks up a named layer (case-insensitive)
func LayerByName(name string) (LayerMask, bool) {
	l, ok := layerNames[strings.ToLower(strings.TrimSpace(name))]
	return l, ok
}

// MaskOf combines named layers into a mask. Unknown names are skipped and returned.
func MaskOf(names ...string) (LayerMask, []string) {
	var mask LayerMask
	var unknown []string
	for _, n := range names {
		l, ok := LayerByName(n)
		if !ok {
			unknown = append(unknown, n)
			continue
		}
		mask |= l
	}
	return mask, unknown
}

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
	TilePlatform
	TileSpike
)

// String returns the config name of the tile type
func (t TileType) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TilePlatform:
		return "platform"
	case TileSpike:
		return "spike"
	default:
		return "unknown"
	}
}

// Tile represents a single tile in the stage
type Tile struct {
	Type  TileType
	Solid bool
	Layer LayerMask
}

// Stage represents the current stage's tile data
type Stage struct {
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile
	SpawnX   float64
	SpawnY   float64
}

// GetTile returns the tile at the given tile coordinates.
// Out-of-range coordinates read as solid ground so nothing escapes the stage.
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileWall, Solid: true, Layer: LayerGround}
	}
	return s.Tiles[ty][tx]
}

// GetTileAtPixel returns the tile at the given pixel coordinates
func (s *Stage) GetTileAtPixel(px, py int) Tile {
	return s.GetTile(floorDiv(px, s.TileSize), floorDiv(py, s.TileSize))
}

// IsSolidAt checks if the tile at pixel coordinates is solid
func (s *Stage) IsSolidAt(px, py int) bool {
	return s.GetTileAtPixel(px, py).Solid
}

// PixelSize returns the stage size in pixels
func (s *Stage) PixelSize() Vec2 {
	return Vec2{X: float64(s.Width * s.TileSize), Y: float64(s.Height * s.TileSize)}
}

// TileBounds returns the pixel box covered by tile (tx, ty)
func (s *Stage) TileBounds(tx, ty int) Bounds {
	ts := float64(s.TileSize)
	return Bounds{
		Min:  Vec2{X: float64(tx) * ts, Y: float64(ty) * ts},
		Size: Vec2{X: ts, Y: ts},
	}
}

func floorDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	q := a / b
	if (a%b != 0) && (a < 0) {
		q--
	}
	return q
}
