package state

// GameState represents the current state of the game
type GameState int

const (
	StatePlaying GameState = iota
	StateGameOver
	StateLevelComplete
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	case StateLevelComplete:
		return "LevelComplete"
	default:
		return "Unknown"
	}
}

// Counters are the per-run tallies shown on the HUD
type Counters struct {
	Score uint32
	Lives int
	Level int
}

// NewCounters returns the counters of a fresh run
func NewCounters(lives int) Counters {
	return Counters{Lives: lives, Level: 1}
}

// AddScore adds points to the score
func (c *Counters) AddScore(points uint32) {
	c.Score += points
}

// LoseLife removes one life, never going below zero, and returns the lives left
func (c *Counters) LoseLife() int {
	if c.Lives > 0 {
		c.Lives--
	}
	return c.Lives
}
