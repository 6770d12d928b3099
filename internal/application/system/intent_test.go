package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntent_Label(t *testing.T) {
	tests := []struct {
		intent   Intent
		expected IntentLabel
	}{
		{Intent{}, LabelIdle},
		{Intent{MoveLeft: true}, LabelLeft},
		{Intent{MoveRight: true}, LabelRight},
		{Intent{MoveLeft: true, MoveRight: true}, LabelIdle},
		{Intent{Duck: true, MoveLeft: true}, LabelDuck},
		{Intent{Jump: true, Duck: true}, LabelJump},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.intent.Label())
		})
	}
}

func TestIntent_IsIdle(t *testing.T) {
	assert.True(t, Intent{Confidence: 0.9}.IsIdle())
	assert.False(t, Intent{Jump: true}.IsIdle())
}

func TestIntentLabel_String(t *testing.T) {
	assert.Equal(t, "idle", LabelIdle.String())
	assert.Equal(t, "jump", LabelJump.String())
	assert.Equal(t, "unknown", IntentLabel(42).String())
}

func TestCombine(t *testing.T) {
	fromPose := Intent{MoveLeft: true, Confidence: 0.4}

	assert.Equal(t, fromPose, Combine(fromPose, Intent{}))
	assert.Equal(t, Intent{Jump: true, Confidence: 1}, Combine(fromPose, Intent{Jump: true}))
}
