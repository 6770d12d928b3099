package replay

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/polyhop/internal/application/system"
	"github.com/younwookim/polyhop/internal/domain/pose"
)

func TestFrameSample_OmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(FrameSample{F: 3, J: true})
	require.NoError(t, err)

	assert.JSONEq(t, `{"f":3,"j":true}`, string(data))
}

func TestRecorder_RecordFrame(t *testing.T) {
	r := NewRecorder(42, "demo")

	r.RecordFrame(Input{Sample: pose.Standing()})
	r.RecordFrame(Input{Keys: system.Intent{MoveLeft: true}, Action: true})
	r.Stop()
	r.RecordFrame(Input{})

	data := r.Data()
	assert.Equal(t, FormatVersion, data.Version)
	assert.Equal(t, int64(42), data.Seed)
	assert.Equal(t, "demo", data.Level)
	require.Len(t, data.Frames, 2)
	assert.Len(t, data.Frames[0].P, int(pose.LandmarkCount))
	assert.Nil(t, data.Frames[1].P)
	assert.True(t, data.Frames[1].L)
	assert.True(t, data.Frames[1].A)
	assert.Equal(t, 1, data.Frames[1].F)
	assert.False(t, r.IsRecording())
}

func TestRecorder_SaveRequiresFrames(t *testing.T) {
	r := NewRecorder(1, "")
	assert.Error(t, r.Save(filepath.Join(t.TempDir(), "empty.json")))
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	r := NewRecorder(7, "")
	sample := pose.Standing().Shift(0.2, 0)
	r.RecordFrame(Input{Sample: sample})
	r.RecordFrame(Input{Keys: system.Intent{Jump: true}})

	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, r.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	replayer := NewReplayer(*data)

	assert.Equal(t, int64(7), replayer.Seed())
	assert.Equal(t, 2, replayer.TotalFrames())

	first, ok := replayer.GetInput()
	require.True(t, ok)
	require.NotNil(t, first.Sample)
	assert.InDelta(t, sample.Get(pose.LeftShoulder).X, first.Sample.Get(pose.LeftShoulder).X, 1e-12)
	assert.True(t, first.Keys.IsIdle())

	second, ok := replayer.GetInput()
	require.True(t, ok)
	assert.Nil(t, second.Sample)
	assert.True(t, second.Keys.Jump)

	_, ok = replayer.GetInput()
	assert.False(t, ok)
	assert.Equal(t, 2, replayer.CurrentFrame())
}

func TestLoadReplay_Errors(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(3))
	for i := 0; i < 3; i++ {
		replayer.GetInput()
	}
	_, ok := replayer.GetInput()
	assert.False(t, ok)

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
	input, ok := replayer.GetInput()
	assert.True(t, ok)
	assert.NotNil(t, input.Sample)
}
