package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/polyhop/internal/application/system"
	"github.com/younwookim/polyhop/internal/domain/pose"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (Input, bool) {
	if r.frame >= len(r.data.Frames) {
		return Input{}, false
	}

	fs := r.data.Frames[r.frame]
	r.frame++

	input := Input{
		Keys: system.Intent{
			MoveLeft:  fs.L,
			MoveRight: fs.R,
			Jump:      fs.J,
			Duck:      fs.D,
		},
		Action: fs.A,
	}
	if fs.P != nil {
		input.Sample = pose.FromMap(fs.P)
	}
	return input, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Level returns the layout name, empty for generated levels
func (r *Replayer) Level() string {
	return r.data.Level
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
