// Package simulation owns one game session and advances it one fixed tick at a time.
//
// A Simulation is not safe for concurrent use. The host calls Step once per
// tick from its game loop and reads the returned Snapshot and events.
package simulation

import (
	"math/rand"

	"github.com/younwookim/polyhop/internal/application/state"
	"github.com/younwookim/polyhop/internal/application/system"
	"github.com/younwookim/polyhop/internal/domain/appearance"
	"github.com/younwookim/polyhop/internal/domain/entity"
	"github.com/younwookim/polyhop/internal/infrastructure/config"
)

// coinSpinPerTick advances the coin animation phase
const coinSpinPerTick = 0.1

// LevelSource builds the level for a 1-based level index
type LevelSource interface {
	Generate(index int) *entity.Level
}

// LevelSourceFunc adapts a function to LevelSource
type LevelSourceFunc func(index int) *entity.Level

// Generate calls f(index)
func (f LevelSourceFunc) Generate(index int) *entity.Level {
	return f(index)
}

// Option configures a Simulation
type Option func(*Simulation)

// WithLevelSource replaces the procedural generator
func WithLevelSource(src LevelSource) Option {
	return func(s *Simulation) {
		s.levels = src
	}
}

// WithAppearance sets the character look reported by GameData
func WithAppearance(a appearance.Appearance) Option {
	return func(s *Simulation) {
		s.appearance = a
	}
}

// Simulation is the explicit context for one game session
type Simulation struct {
	config  *config.GameConfig
	levels  LevelSource
	machine *state.Machine

	character  *entity.Character
	level      *entity.Level
	appearance appearance.Appearance
	cameraX    float64
	tick       uint64

	control   *system.ControlSystem
	physics   *system.PhysicsSystem
	collision *system.CollisionSystem
	particles *system.ParticleSystem
}

// New creates a session on level 1. rng seeds level generation and particle spread.
func New(cfg *config.GameConfig, rng *rand.Rand, opts ...Option) *Simulation {
	particles := system.NewParticleSystem(&cfg.Particles, rand.New(rand.NewSource(rng.Int63())))

	s := &Simulation{
		config:     cfg,
		levels:     system.NewLevelGenerator(cfg, rng),
		machine:    state.NewMachine(cfg.Character.Lives),
		appearance: AppearanceFromConfig(&cfg.Character),
		control:    system.NewControlSystem(&cfg.Character),
		physics:    system.NewPhysicsSystem(&cfg.Physics),
		collision:  system.NewCollisionSystem(&cfg.Combat, particles),
		particles:  particles,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.loadLevel(1)
	return s
}

// AppearanceFromConfig resolves the configured look, falling back to defaults
// for unknown option names. A malformed custom sprite is sanitized, not rejected.
func AppearanceFromConfig(cfg *config.CharacterConfig) appearance.Appearance {
	a := appearance.Default()
	if v, ok := appearance.ParseSkinTone(cfg.SkinTone); ok {
		a.Skin = v
	}
	if v, ok := appearance.ParseOutfit(cfg.Outfit); ok {
		a.Outfit = v
	}
	if v, ok := appearance.ParseHair(cfg.Hair); ok {
		a.Hair = v
	}
	if cfg.CustomSprite != "" {
		_ = a.SetCustomHex(appearance.Sanitize(cfg.CustomSprite))
	}
	return a
}

// Step advances the world by one tick. Outside StatePlaying it changes nothing.
func (s *Simulation) Step(intent system.Intent) (Snapshot, []system.GameEvent) {
	if !s.machine.IsPlaying() {
		return s.Snapshot(), nil
	}
	s.tick++

	s.control.Apply(s.character, intent)
	s.physics.UpdateCharacter(s.character, s.level)
	for _, e := range s.level.Enemies {
		s.physics.UpdateEnemy(e, s.level)
	}

	counters := s.machine.Counters()
	events := s.collision.Resolve(s.character, s.level, counters)

	s.particles.Update()
	for _, c := range s.level.Coins {
		if !c.Collected {
			c.Spin += coinSpinPerTick
		}
	}
	s.updateCamera()

	switch {
	case counters.Lives <= 0:
		if s.machine.Lose() {
			events = append(events, system.GameOver{FinalScore: counters.Score, Level: counters.Level})
		}
	case s.level.RemainingCoins() == 0:
		if s.machine.Complete() {
			events = append(events, system.LevelCompleted{Level: counters.Level, Score: counters.Score})
		}
	}

	return s.Snapshot(), events
}

// Restart begins a new run on level 1. Only legal after GameOver.
func (s *Simulation) Restart() bool {
	if !s.machine.Restart() {
		return false
	}
	s.loadLevel(1)
	return true
}

// AdvanceLevel moves to the next level keeping score and lives. Only legal after LevelComplete.
func (s *Simulation) AdvanceLevel() bool {
	if !s.machine.Advance() {
		return false
	}
	s.loadLevel(s.machine.Counters().Level)
	return true
}

// Score returns the current score
func (s *Simulation) Score() uint32 {
	return s.machine.Counters().Score
}

// State returns the current game state
func (s *Simulation) State() state.GameState {
	return s.machine.State()
}

// Tick returns the number of ticks advanced in StatePlaying
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Appearance returns the character look
func (s *Simulation) Appearance() appearance.Appearance {
	return s.appearance
}

// SetAppearance changes the character look
func (s *Simulation) SetAppearance(a appearance.Appearance) {
	s.appearance = a
}

func (s *Simulation) loadLevel(index int) {
	s.level = s.levels.Generate(index)
	s.character = entity.NewCharacter(s.level.Spawn.X, s.level.Spawn.Y, s.config.Character.MaxHealth)
	s.particles.Clear()
	s.updateCamera()
}

// updateCamera centres the view on the character within the level extent
func (s *Simulation) updateCamera() {
	viewW := float64(s.config.Display.ScreenWidth)
	x := s.character.Pos.X - viewW/2
	if maxX := s.level.Width - viewW; x > maxX {
		x = maxX
	}
	if x < 0 {
		x = 0
	}
	s.cameraX = x
}
