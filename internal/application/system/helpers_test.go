package system

import (
	"math/rand"

	"github.com/younwookim/polyhop/internal/application/state"
	"github.com/younwookim/polyhop/internal/domain/entity"
	"github.com/younwookim/polyhop/internal/infrastructure/config"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func createTestGameConfig() *config.GameConfig {
	return config.Default()
}

// createTestLevel returns an empty 2000px level with the ground at y=400
func createTestLevel() *entity.Level {
	return &entity.Level{
		Index:       1,
		Width:       2000,
		GroundLevel: 400,
	}
}

func createTestCharacter(x, y float64) *entity.Character {
	return entity.NewCharacter(x, y, entity.DefaultCharacterHealth)
}

func createTestCounters() *state.Counters {
	c := state.NewCounters(3)
	return &c
}
