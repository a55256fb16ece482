package system

import (
	"github.com/younwookim/glide/internal/domain/entity"
	"github.com/younwookim/glide/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Stage entity.
// A tile without an explicit layer is classified by its type.
func LoadStage(cfg *config.StageConfig) *entity.Stage {
	tileWidth := 0
	if cfg.Size.TileSize > 0 {
		tileWidth = cfg.Size.Width / cfg.Size.TileSize
	}
	tileHeight := len(cfg.Layers.Collision)

	tiles := make([][]entity.Tile, tileHeight)
	for y, row := range cfg.Layers.Collision {
		tiles[y] = make([]entity.Tile, tileWidth)
		for x, char := range []rune(row) {
			if x >= tileWidth {
				break
			}
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				continue
			}
			tiles[y][x] = tileFromMapping(mapping)
		}
	}

	return &entity.Stage{
		Width:    tileWidth,
		Height:   tileHeight,
		TileSize: cfg.Size.TileSize,
		Tiles:    tiles,
		SpawnX:   float64(cfg.PlayerSpawn.X),
		SpawnY:   float64(cfg.PlayerSpawn.Y),
	}
}

func tileFromMapping(mapping config.TileMappingConfig) entity.Tile {
	var tileType entity.TileType
	switch mapping.Type {
	case "wall":
		tileType = entity.TileWall
	case "platform":
		tileType = entity.TilePlatform
	case "spike":
		tileType = entity.TileSpike
	default:
		tileType = entity.TileEmpty
	}

	layer, ok := entity.LayerByName(mapping.Layer)
	if !ok {
		layer = defaultLayer(tileType)
	}

	return entity.Tile{
		Type:  tileType,
		Solid: mapping.Solid,
		Layer: layer,
	}
}

func defaultLayer(t entity.TileType) entity.LayerMask {
	switch t {
	case entity.TileWall:
		return entity.LayerGround
	case entity.TilePlatform:
		return entity.LayerPlatform
	case entity.TileSpike:
		return entity.LayerHazard
	default:
		return entity.LayerNone
	}
}
