package system

import (
	"github.com/younwookim/polyhop/internal/application/state"
	"github.com/younwookim/polyhop/internal/domain/entity"
	"github.com/younwookim/polyhop/internal/infrastructure/config"
)

// CollisionSystem resolves character contacts after integration.
// Order is platforms, then enemies, then coins. Every entity of a kind is checked.
type CollisionSystem struct {
	config    *config.CombatConfig
	particles *ParticleSystem
}

// NewCollisionSystem creates a new collision system.
// particles may be nil when no visual feedback is needed.
func NewCollisionSystem(cfg *config.CombatConfig, particles *ParticleSystem) *CollisionSystem {
	return &CollisionSystem{
		config:    cfg,
		particles: particles,
	}
}

// Resolve runs all contact checks for one tick and returns the events they produced
func (s *CollisionSystem) Resolve(c *entity.Character, level *entity.Level, counters *state.Counters) []GameEvent {
	var events []GameEvent

	s.resolvePlatforms(c, level)
	events = s.resolveEnemies(c, level, counters, events)
	events = s.resolveCoins(c, level, counters, events)

	return events
}

// resolvePlatforms lands a falling character on a platform it entered from above.
// Side and underside contacts pass through.
func (s *CollisionSystem) resolvePlatforms(c *entity.Character, level *entity.Level) {
	for i := range level.Platforms {
		p := &level.Platforms[i]
		if c.Vel.Y <= 0 || c.Pos.Y >= p.Y || !c.Bounds().Overlaps(p.AABB) {
			continue
		}
		c.Pos.Y = p.Y - c.Height
		c.Vel.Y = 0
		c.OnGround = true
		c.IsJumping = false
	}
}

// resolveEnemies decides stomp or hit for each overlapping enemy.
// The approach is judged once from the state before any enemy response,
// so one bounce does not turn the next overlapping enemy into a hit.
func (s *CollisionSystem) resolveEnemies(c *entity.Character, level *entity.Level, counters *state.Counters, events []GameEvent) []GameEvent {
	falling := c.Vel.Y > 0
	top := c.Pos.Y
	bounds := c.Bounds()

	for _, e := range level.Enemies {
		if !e.IsAlive() || !bounds.Overlaps(e.Bounds()) {
			continue
		}

		if falling && top < e.Pos.Y {
			c.Vel.Y = -s.config.StompBounce
			if e.TakeDamage(s.config.StompDamage) {
				counters.AddScore(s.config.EnemyScore)
				s.burst(center(e.Bounds()), entity.ParticleEnemy)
				events = append(events, EnemyDefeated{EnemyID: e.ID, ScoreDelta: s.config.EnemyScore})
			}
			continue
		}

		if c.IsInvulnerable() || counters.Lives <= 0 {
			continue
		}
		c.TakeDamage(s.config.ContactDamage)
		c.InvulnerableTicks = s.config.InvulnerableTicks
		lives := counters.LoseLife()
		s.burst(center(c.Bounds()), entity.ParticleHit)
		events = append(events, PlayerHit{Damage: s.config.ContactDamage, LivesRemaining: lives})
	}

	level.Enemies = removeDefeated(level.Enemies)
	return events
}

func (s *CollisionSystem) resolveCoins(c *entity.Character, level *entity.Level, counters *state.Counters, events []GameEvent) []GameEvent {
	bounds := c.Bounds()
	for _, coin := range level.Coins {
		if coin.Collected || !bounds.Overlaps(coin.AABB) {
			continue
		}
		if !coin.Collect() {
			continue
		}
		counters.AddScore(s.config.CoinScore)
		s.burst(center(coin.AABB), entity.ParticleCoin)
		events = append(events, CoinCollected{CoinID: coin.ID, ScoreDelta: s.config.CoinScore})
	}
	return events
}

func (s *CollisionSystem) burst(pos entity.Vector2, kind entity.ParticleKind) {
	if s.particles != nil {
		s.particles.Burst(pos, kind)
	}
}

func removeDefeated(enemies []*entity.Enemy) []*entity.Enemy {
	live := enemies[:0]
	for _, e := range enemies {
		if e.IsAlive() {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(enemies); i++ {
		enemies[i] = nil
	}
	return live
}

func center(b entity.AABB) entity.Vector2 {
	return entity.Vector2{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}
