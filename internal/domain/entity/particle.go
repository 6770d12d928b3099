package entity

// ParticleKind selects the colour family of a particle burst
type ParticleKind int

const (
	ParticleCoin ParticleKind = iota
	ParticleEnemy
	ParticleHit
)

// String returns the string representation of the particle kind
func (k ParticleKind) String() string {
	switch k {
	case ParticleCoin:
		return "coin"
	case ParticleEnemy:
		return "enemy"
	case ParticleHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Particle is a short-lived visual effect entity.
// It has no gameplay influence and is purged once Life reaches zero.
type Particle struct {
	Pos  Vector2
	Vel  Vector2
	Kind ParticleKind
	Life int

	// Gravity is added to Vel.Y every tick
	Gravity float64
}

// NewParticle creates a particle with the given lifetime in ticks
func NewParticle(pos, vel Vector2, kind ParticleKind, life int, gravity float64) *Particle {
	return &Particle{
		Pos:     pos,
		Vel:     vel,
		Kind:    kind,
		Life:    life,
		Gravity: gravity,
	}
}

// Update advances the particle by one tick and returns true while it is alive
func (p *Particle) Update() bool {
	if p.Life <= 0 {
		return false
	}
	p.Pos.X += p.Vel.X
	p.Pos.Y += p.Vel.Y
	p.Vel.Y += p.Gravity
	p.Life--
	return p.Life > 0
}

// IsAlive returns true while the particle has remaining life
func (p *Particle) IsAlive() bool {
	return p.Life > 0
}
