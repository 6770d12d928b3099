package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMachine_InitialState(t *testing.T) {
	m := NewMachine(3)

	assert.Equal(t, StatePlaying, m.State())
	assert.True(t, m.IsPlaying())
	assert.Equal(t, Counters{Lives: 3, Level: 1}, *m.Counters())
}

func TestMachine_Transitions(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*Machine)
		apply    func(*Machine) bool
		ok       bool
		expected GameState
	}{
		{"playing to game over", func(*Machine) {}, (*Machine).Lose, true, StateGameOver},
		{"playing to level complete", func(*Machine) {}, (*Machine).Complete, true, StateLevelComplete},
		{"restart while playing", func(*Machine) {}, (*Machine).Restart, false, StatePlaying},
		{"advance while playing", func(*Machine) {}, (*Machine).Advance, false, StatePlaying},
		{"game over to playing", func(m *Machine) { m.Lose() }, (*Machine).Restart, true, StatePlaying},
		{"advance after game over", func(m *Machine) { m.Lose() }, (*Machine).Advance, false, StateGameOver},
		{"complete after game over", func(m *Machine) { m.Lose() }, (*Machine).Complete, false, StateGameOver},
		{"level complete to playing", func(m *Machine) { m.Complete() }, (*Machine).Advance, true, StatePlaying},
		{"lose after level complete", func(m *Machine) { m.Complete() }, (*Machine).Lose, false, StateLevelComplete},
		{"restart after level complete", func(m *Machine) { m.Complete() }, (*Machine).Restart, false, StateLevelComplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(3)
			tt.setup(m)

			assert.Equal(t, tt.ok, tt.apply(m))
			assert.Equal(t, tt.expected, m.State())
		})
	}
}

func TestMachine_RestartResetsCounters(t *testing.T) {
	m := NewMachine(3)
	m.Counters().AddScore(400)
	m.Counters().Level = 4
	m.Counters().LoseLife()
	m.Lose()

	assert.True(t, m.Restart())
	assert.Equal(t, Counters{Lives: 3, Level: 1}, *m.Counters())
}

func TestMachine_AdvanceKeepsScore(t *testing.T) {
	m := NewMachine(3)
	m.Counters().AddScore(250)
	m.Counters().LoseLife()
	m.Complete()

	assert.True(t, m.Advance())
	assert.Equal(t, Counters{Score: 250, Lives: 2, Level: 2}, *m.Counters())
}
