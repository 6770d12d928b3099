package replay

import "github.com/younwookim/polyhop/internal/domain/pose"

// CreateTestReplayData creates replay data of a standing pose for testing
func CreateTestReplayData(frames int) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Seed:      12345,
		StartTime: "2026-01-01T00:00:00Z",
		Frames:    make([]FrameSample, frames),
	}

	standing := pose.Standing().ToMap()
	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameSample{F: i, P: standing}
	}
	return data
}
