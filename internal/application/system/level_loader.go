package system

import (
	"github.com/younwookim/polyhop/internal/domain/entity"
	"github.com/younwookim/polyhop/internal/infrastructure/config"
)

// LoadLevel converts a hand-authored layout into a Level.
// Ground tiles use the tile size of lc. Unknown enemy types are skipped.
func LoadLevel(layout *config.LevelLayoutConfig, lc *config.LevelConfig, index int) *entity.Level {
	level := &entity.Level{
		Index:       index,
		Width:       layout.Width,
		GroundLevel: layout.GroundLevel,
		Spawn:       entity.Vector2{X: layout.PlayerSpawn.X, Y: layout.PlayerSpawn.Y},
		Platforms:   groundTiles(layout.Width, layout.GroundLevel, lc.TileWidth, lc.TileHeight),
		Enemies:     make([]*entity.Enemy, 0, len(layout.Enemies)),
		Coins:       make([]*entity.Coin, 0, len(layout.Coins)),
	}

	for _, p := range layout.Platforms {
		level.Platforms = append(level.Platforms, entity.Platform{
			AABB: entity.AABB{X: p.X, Y: p.Y, Width: p.Width, Height: lc.TileHeight},
			Kind: entity.PlatformFloating,
		})
	}

	for _, spawn := range layout.Enemies {
		switch spawn.Type {
		case "slime", "":
			id := entity.EntityID(len(level.Enemies) + 1)
			level.Enemies = append(level.Enemies, entity.NewEnemy(id, spawn.X, layout.GroundLevel-entity.SlimeSize, spawn.Speed))
		}
	}

	for i, c := range layout.Coins {
		level.Coins = append(level.Coins, entity.NewCoin(entity.EntityID(i+1), c.X, c.Y))
	}

	return level
}

// LayoutSource serves hand-authored levels in order, wrapping around after the last one
type LayoutSource struct {
	layouts []*config.LevelLayoutConfig
	config  *config.LevelConfig
}

// NewLayoutSource creates a level source over one or more layouts
func NewLayoutSource(cfg *config.LevelConfig, layouts ...*config.LevelLayoutConfig) *LayoutSource {
	return &LayoutSource{
		layouts: layouts,
		config:  cfg,
	}
}

// Generate returns the level for a 1-based index
func (s *LayoutSource) Generate(index int) *entity.Level {
	if len(s.layouts) == 0 {
		return &entity.Level{Index: index}
	}
	i := (index - 1) % len(s.layouts)
	if i < 0 {
		i += len(s.layouts)
	}
	return LoadLevel(s.layouts[i], s.config, index)
}
