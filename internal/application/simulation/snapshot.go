package simulation

import (
	"github.com/younwookim/polyhop/internal/application/state"
	"github.com/younwookim/polyhop/internal/domain/appearance"
	"github.com/younwookim/polyhop/internal/domain/entity"
)

// Snapshot is a read-only copy of the session after a tick.
// It shares no memory with the Simulation.
type Snapshot struct {
	Tick  uint64
	State state.GameState
	Score uint32
	Lives int
	Level int

	Character   entity.Character
	Enemies     []entity.Enemy
	Platforms   []entity.Platform
	Coins       []entity.Coin
	Particles   []entity.Particle
	Camera      entity.Vector2
	LevelWidth  float64
	GroundLevel float64
}

// Snapshot copies the current session state
func (s *Simulation) Snapshot() Snapshot {
	counters := s.machine.Counters()
	snap := Snapshot{
		Tick:        s.tick,
		State:       s.machine.State(),
		Score:       counters.Score,
		Lives:       counters.Lives,
		Level:       counters.Level,
		Character:   *s.character,
		Platforms:   append([]entity.Platform(nil), s.level.Platforms...),
		Enemies:     make([]entity.Enemy, 0, len(s.level.Enemies)),
		Coins:       make([]entity.Coin, 0, len(s.level.Coins)),
		Particles:   make([]entity.Particle, 0, len(s.particles.Particles())),
		Camera:      entity.Vector2{X: s.cameraX},
		LevelWidth:  s.level.Width,
		GroundLevel: s.level.GroundLevel,
	}
	for _, e := range s.level.Enemies {
		snap.Enemies = append(snap.Enemies, *e)
	}
	for _, c := range s.level.Coins {
		snap.Coins = append(snap.Coins, *c)
	}
	for _, p := range s.particles.Particles() {
		snap.Particles = append(snap.Particles, *p)
	}
	return snap
}

// RemainingCoins returns how many coins are still uncollected
func (s Snapshot) RemainingCoins() int {
	n := 0
	for _, c := range s.Coins {
		if !c.Collected {
			n++
		}
	}
	return n
}

// GameData is the end-of-run summary handed to external collaborators
type GameData struct {
	Score      uint32              `json:"score"`
	Lives      int                 `json:"lives"`
	Level      int                 `json:"level"`
	State      string              `json:"state"`
	Appearance appearance.Snapshot `json:"character"`
}

// GameData returns the summary of the session so far
func (s *Simulation) GameData() GameData {
	counters := s.machine.Counters()
	return GameData{
		Score:      counters.Score,
		Lives:      counters.Lives,
		Level:      counters.Level,
		State:      s.machine.State().String(),
		Appearance: s.appearance.Snapshot(),
	}
}
