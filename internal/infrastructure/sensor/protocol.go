package sensor

import (
	"encoding/json"
	"fmt"

	"github.com/younwookim/polyhop/internal/domain/pose"
)

// Message types carried in Envelope.T
const (
	MsgHello   = "hello"
	MsgPose    = "pose"
	MsgWelcome = "welcome"
	MsgState   = "state"
)

// Envelope is the framing for every websocket message
type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"`
}

// Hello is sent by a detector when it connects
type Hello struct {
	Name string `json:"name"`
}

// PoseFrame carries one detector frame. Either Landmarks (named) or
// MediaPipe (the raw 33-point list) is set; named landmarks win.
type PoseFrame struct {
	Landmarks map[string]pose.Landmark `json:"landmarks,omitempty"`
	MediaPipe []pose.Landmark          `json:"mediapipe,omitempty"`
}

// Sample converts the frame into a clamped pose sample
func (f PoseFrame) Sample() (*pose.Sample, error) {
	var s *pose.Sample
	switch {
	case len(f.Landmarks) > 0:
		s = pose.FromMap(f.Landmarks)
	case len(f.MediaPipe) > 0:
		s = pose.FromMediaPipe(f.MediaPipe)
	default:
		return nil, fmt.Errorf("pose frame has no landmarks")
	}
	for i, l := range s.Landmarks {
		s.Landmarks[i] = l.Clamped()
	}
	return s, nil
}

// Welcome answers a Hello
type Welcome struct {
	ClientID uint64 `json:"clientId"`
	TickHz   int    `json:"tickHz"`
}

// State is pushed back to detectors so they can show game feedback
type State struct {
	Tick   uint64 `json:"tick"`
	State  string `json:"state"`
	Score  uint32 `json:"score"`
	Lives  int    `json:"lives"`
	Level  int    `json:"level"`
	Intent string `json:"intent"`
	Frames uint64 `json:"frames"` // pose frames accepted so far
}

// Encode wraps payload in an envelope of type t
func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, fmt.Errorf("encode envelope: empty type")
	}
	if payload == nil {
		return nil, fmt.Errorf("encode envelope %q: nil payload", t)
	}
	pb, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %q payload: %w", t, err)
	}
	return json.Marshal(Envelope{T: t, P: pb})
}

// DecodeEnvelope parses the outer frame
func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, fmt.Errorf("decode envelope: empty message")
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	if e.T == "" {
		return Envelope{}, fmt.Errorf("decode envelope: missing type")
	}
	return e, nil
}

// DecodePayload unmarshals the envelope payload into T
func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, fmt.Errorf("empty payload for type %q", env.T)
	}
	if err := json.Unmarshal(env.P, &out); err != nil {
		return out, fmt.Errorf("decode %q payload: %w", env.T, err)
	}
	return out, nil
}
