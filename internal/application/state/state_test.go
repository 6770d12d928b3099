package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StatePlaying, "Playing"},
		{StateGameOver, "GameOver"},
		{StateLevelComplete, "LevelComplete"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestCounters_LoseLifeClampsAtZero(t *testing.T) {
	c := NewCounters(2)

	assert.Equal(t, 1, c.LoseLife())
	assert.Equal(t, 0, c.LoseLife())
	assert.Equal(t, 0, c.LoseLife())
	assert.Equal(t, 0, c.Lives)
}

func TestCounters_AddScore(t *testing.T) {
	c := NewCounters(3)
	c.AddScore(50)
	c.AddScore(100)

	assert.Equal(t, uint32(150), c.Score)
	assert.Equal(t, 1, c.Level)
}
