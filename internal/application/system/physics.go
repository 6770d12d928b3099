package system

import (
	"github.com/younwookim/polyhop/internal/domain/entity"
	"github.com/younwookim/polyhop/internal/infrastructure/config"
)

// PhysicsSystem integrates bodies one fixed tick at a time.
// Velocities are in pixels per tick so no dt is involved.
type PhysicsSystem struct {
	config *config.PhysicsConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// UpdateCharacter applies gravity, moves the character and keeps it inside the level
func (s *PhysicsSystem) UpdateCharacter(c *entity.Character, level *entity.Level) {
	s.integrate(&c.Body, level.GroundLevel)
	if c.OnGround {
		c.IsJumping = false
	}

	maxX := level.Width - c.Width
	if c.Pos.X < 0 {
		c.Pos.X = 0
	} else if c.Pos.X > maxX {
		c.Pos.X = maxX
	}

	if c.InvulnerableTicks > 0 {
		c.InvulnerableTicks--
	}
}

// UpdateEnemy walks the enemy and turns it around at the level edges
func (s *PhysicsSystem) UpdateEnemy(e *entity.Enemy, level *entity.Level) {
	if !e.IsAlive() {
		return
	}
	s.integrate(&e.Body, level.GroundLevel)

	maxX := level.Width - e.Width
	if e.Pos.X <= 0 {
		e.Pos.X = 0
		e.Vel.X = abs(e.Vel.X)
	} else if e.Pos.X >= maxX {
		e.Pos.X = maxX
		e.Vel.X = -abs(e.Vel.X)
	}
}

// integrate applies gravity then velocity, and clamps the body onto the ground line
func (s *PhysicsSystem) integrate(b *entity.Body, groundLevel float64) {
	b.Vel.Y += s.config.Gravity
	b.Pos = b.Pos.Add(b.Vel)

	if b.Bottom() >= groundLevel {
		b.Pos.Y = groundLevel - b.Height
		b.Vel.Y = 0
		b.OnGround = true
	} else {
		b.OnGround = false
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
