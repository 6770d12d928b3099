package replay

import "github.com/younwookim/polyhop/internal/domain/pose"

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameSample records the raw input of a single tick
type FrameSample struct {
	F int                      `json:"f"`           // Frame number
	P map[string]pose.Landmark `json:"p,omitempty"` // Pose sample, absent when none arrived
	L bool                     `json:"l,omitempty"` // Left key
	R bool                     `json:"r,omitempty"` // Right key
	J bool                     `json:"j,omitempty"` // Jump key
	D bool                     `json:"d,omitempty"` // Duck key
	A bool                     `json:"a,omitempty"` // Action key (restart or next level)
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string        `json:"version"`
	Seed      int64         `json:"seed"`
	Level     string        `json:"level,omitempty"` // layout name, empty for generated levels
	StartTime string        `json:"startTime"`
	Frames    []FrameSample `json:"frames"`
}
