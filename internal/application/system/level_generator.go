package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/polyhop/internal/domain/entity"
	"github.com/younwookim/polyhop/internal/infrastructure/config"
)

// LevelGenerator builds random levels from a seeded source.
// The same seed and call sequence always yields the same levels.
type LevelGenerator struct {
	config *config.GameConfig
	rng    *rand.Rand
}

// NewLevelGenerator creates a new level generator
func NewLevelGenerator(cfg *config.GameConfig, rng *rand.Rand) *LevelGenerator {
	return &LevelGenerator{
		config: cfg,
		rng:    rng,
	}
}

// Generate builds the level for the given index
func (g *LevelGenerator) Generate(index int) *entity.Level {
	lc := &g.config.Level
	ground := g.config.Physics.GroundLevel
	width := lc.Width

	level := &entity.Level{
		Index:       index,
		Width:       width,
		GroundLevel: ground,
		Spawn:       entity.Vector2{X: g.config.Character.SpawnX, Y: g.config.Character.SpawnY},
		Platforms:   groundTiles(width, ground, lc.TileWidth, lc.TileHeight),
		Enemies:     make([]*entity.Enemy, 0, lc.Enemies),
		Coins:       make([]*entity.Coin, 0, lc.Coins),
	}

	for i := 0; i < lc.FloatingPlatforms; i++ {
		level.Platforms = append(level.Platforms, entity.Platform{
			AABB: entity.AABB{
				X:      g.between(lc.PlatformX.Min, width-lc.PlatformX.Max),
				Y:      g.between(lc.PlatformY.Min, lc.PlatformY.Max),
				Width:  g.between(lc.PlatformWidth.Min, lc.PlatformWidth.Max),
				Height: lc.TileHeight,
			},
			Kind: entity.PlatformFloating,
		})
	}

	for i := 0; i < lc.Enemies; i++ {
		x := g.between(lc.EnemyX.Min, width-lc.EnemyX.Max)
		vx := g.between(lc.EnemySpeed.Min, lc.EnemySpeed.Max)
		level.Enemies = append(level.Enemies, entity.NewEnemy(entity.EntityID(i+1), x, ground-entity.SlimeSize, vx))
	}

	for i := 0; i < lc.Coins; i++ {
		x := g.between(lc.CoinX.Min, width-lc.CoinX.Max)
		y := g.between(lc.CoinY.Min, lc.CoinY.Max)
		level.Coins = append(level.Coins, entity.NewCoin(entity.EntityID(i+1), x, y))
	}

	return level
}

// between returns a uniform value in [lo, hi), or lo for an empty range
func (g *LevelGenerator) between(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Float64()*(hi-lo)
}

// groundTiles tiles [0, width) with contiguous ground platforms
func groundTiles(width, ground, tileW, tileH float64) []entity.Platform {
	if tileW <= 0 || width <= 0 {
		return nil
	}
	n := int(math.Ceil(width / tileW))
	tiles := make([]entity.Platform, 0, n)
	for x := 0.0; x < width; x += tileW {
		tiles = append(tiles, entity.Platform{
			AABB: entity.AABB{X: x, Y: ground, Width: math.Min(tileW, width-x), Height: tileH},
			Kind: entity.PlatformGround,
		})
	}
	return tiles
}
