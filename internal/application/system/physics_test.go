package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/polyhop/internal/domain/entity"
)

func createTestPhysicsSystem() *PhysicsSystem {
	return NewPhysicsSystem(&createTestGameConfig().Physics)
}

func TestPhysicsSystem_SettlesOnGround(t *testing.T) {
	s := createTestPhysicsSystem()
	level := createTestLevel()
	c := createTestCharacter(100, 300)

	s.UpdateCharacter(c, level)
	assert.InDelta(t, 0.8, c.Vel.Y, 1e-9)
	assert.InDelta(t, 300.8, c.Pos.Y, 1e-9)
	assert.False(t, c.OnGround)

	for i := 0; i < 60 && !c.OnGround; i++ {
		s.UpdateCharacter(c, level)
	}

	require.True(t, c.OnGround)
	assert.Equal(t, 400.0-entity.CharacterHeight, c.Pos.Y)
	assert.Equal(t, 0.0, c.Vel.Y)

	// resting stays resting
	s.UpdateCharacter(c, level)
	assert.True(t, c.OnGround)
	assert.Equal(t, 400.0-entity.CharacterHeight, c.Pos.Y)
}

func TestPhysicsSystem_LandingClearsJump(t *testing.T) {
	s := createTestPhysicsSystem()
	c := createTestCharacter(100, 352)
	c.IsJumping = true

	s.UpdateCharacter(c, createTestLevel())

	assert.True(t, c.OnGround)
	assert.False(t, c.IsJumping)
}

func TestPhysicsSystem_ClampsCharacterToLevel(t *testing.T) {
	s := createTestPhysicsSystem()
	level := createTestLevel()

	left := createTestCharacter(2, 352)
	left.Vel.X = -5
	s.UpdateCharacter(left, level)
	assert.Equal(t, 0.0, left.Pos.X)

	right := createTestCharacter(level.Width-entity.CharacterWidth-1, 352)
	right.Vel.X = 5
	s.UpdateCharacter(right, level)
	assert.Equal(t, level.Width-entity.CharacterWidth, right.Pos.X)
}

func TestPhysicsSystem_InvulnerabilityCountsDown(t *testing.T) {
	s := createTestPhysicsSystem()
	c := createTestCharacter(100, 352)
	c.InvulnerableTicks = 2

	s.UpdateCharacter(c, createTestLevel())
	assert.True(t, c.IsInvulnerable())
	s.UpdateCharacter(c, createTestLevel())
	assert.False(t, c.IsInvulnerable())
	s.UpdateCharacter(c, createTestLevel())
	assert.Equal(t, 0, c.InvulnerableTicks)
}

func TestPhysicsSystem_EnemyWalksAndTurns(t *testing.T) {
	s := createTestPhysicsSystem()
	level := createTestLevel()

	tests := []struct {
		name     string
		x, vx    float64
		expectX  float64
		expectVX float64
	}{
		{"walks right", 500, 1, 501, 1},
		{"walks left", 500, -0.5, 499.5, -0.5},
		{"turns at left edge", 0.5, -1, 0, 1},
		{"turns at right edge", 2000 - entity.SlimeSize - 0.5, 1, 2000 - entity.SlimeSize, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := entity.NewEnemy(1, tt.x, 400-entity.SlimeSize, tt.vx)
			s.UpdateEnemy(e, level)
			assert.InDelta(t, tt.expectX, e.Pos.X, 1e-9)
			assert.Equal(t, tt.expectVX, e.Vel.X)
			assert.True(t, e.OnGround)
			assert.Equal(t, 400.0-entity.SlimeSize, e.Pos.Y)
		})
	}
}

func TestPhysicsSystem_EnemyStaysInsideForever(t *testing.T) {
	s := createTestPhysicsSystem()
	level := createTestLevel()
	e := entity.NewEnemy(1, 1000, 100, 0.9)

	for i := 0; i < 10000; i++ {
		s.UpdateEnemy(e, level)
		require.GreaterOrEqual(t, e.Pos.X, 0.0)
		require.LessOrEqual(t, e.Pos.X+e.Width, level.Width)
		require.LessOrEqual(t, e.Bottom(), level.GroundLevel)
	}
}

func TestPhysicsSystem_DefeatedEnemyDoesNotMove(t *testing.T) {
	s := createTestPhysicsSystem()
	e := entity.NewEnemy(1, 500, 370, 1)
	e.TakeDamage(entity.SlimeHealth)

	s.UpdateEnemy(e, createTestLevel())

	assert.Equal(t, 500.0, e.Pos.X)
}
