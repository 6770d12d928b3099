package state

// Machine owns the current GameState and the run counters.
// Transition methods return false and change nothing when the
// transition is not legal from the current state.
type Machine struct {
	state         GameState
	counters      Counters
	startingLives int
}

// NewMachine starts a run in StatePlaying on level 1
func NewMachine(lives int) *Machine {
	return &Machine{
		state:         StatePlaying,
		counters:      NewCounters(lives),
		startingLives: lives,
	}
}

// State returns the current state
func (m *Machine) State() GameState {
	return m.state
}

// Counters returns the live counters for mutation during a tick
func (m *Machine) Counters() *Counters {
	return &m.counters
}

// IsPlaying reports whether ticks should advance the world
func (m *Machine) IsPlaying() bool {
	return m.state == StatePlaying
}

// Lose moves Playing to GameOver
func (m *Machine) Lose() bool {
	if m.state != StatePlaying {
		return false
	}
	m.state = StateGameOver
	return true
}

// Complete moves Playing to LevelComplete
func (m *Machine) Complete() bool {
	if m.state != StatePlaying {
		return false
	}
	m.state = StateLevelComplete
	return true
}

// Restart moves GameOver to Playing with fresh counters
func (m *Machine) Restart() bool {
	if m.state != StateGameOver {
		return false
	}
	m.counters = NewCounters(m.startingLives)
	m.state = StatePlaying
	return true
}

// Advance moves LevelComplete to Playing on the next level, keeping score and lives
func (m *Machine) Advance() bool {
	if m.state != StateLevelComplete {
		return false
	}
	m.counters.Level++
	m.state = StatePlaying
	return true
}
