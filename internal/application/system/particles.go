package system

import (
	"math/rand"

	"github.com/younwookim/polyhop/internal/domain/entity"
	"github.com/younwookim/polyhop/internal/infrastructure/config"
)

// ParticleSystem spawns and ages cosmetic particle bursts
type ParticleSystem struct {
	config    *config.ParticleConfig
	rng       *rand.Rand
	particles []*entity.Particle
}

// NewParticleSystem creates a new particle system drawing spread from rng
func NewParticleSystem(cfg *config.ParticleConfig, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		config:    cfg,
		rng:       rng,
		particles: make([]*entity.Particle, 0, 64),
	}
}

// Burst spawns one burst centred on pos
func (s *ParticleSystem) Burst(pos entity.Vector2, kind entity.ParticleKind) {
	for i := 0; i < s.config.Burst; i++ {
		vel := entity.Vector2{
			X: (s.rng.Float64()*2 - 1) * s.config.Spread,
			Y: (s.rng.Float64()*2 - 1) * s.config.Spread,
		}
		s.particles = append(s.particles, entity.NewParticle(pos, vel, kind, s.config.Life, s.config.Gravity))
	}
}

// Update ages every particle and purges the expired ones
func (s *ParticleSystem) Update() {
	alive := s.particles[:0]
	for _, p := range s.particles {
		if p.Update() {
			alive = append(alive, p)
		}
	}
	for i := len(alive); i < len(s.particles); i++ {
		s.particles[i] = nil
	}
	s.particles = alive
}

// Particles returns the live particles
func (s *ParticleSystem) Particles() []*entity.Particle {
	return s.particles
}

// Clear removes all particles
func (s *ParticleSystem) Clear() {
	s.particles = s.particles[:0]
}
