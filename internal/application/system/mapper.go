package system

import (
	"math"

	"github.com/younwookim/polyhop/internal/domain/pose"
	"github.com/younwookim/polyhop/internal/infrastructure/config"
)

// IntentMapper converts pose samples into intents.
// Map is fail-soft: missing or malformed landmarks degrade to idle, never to an error.
type IntentMapper struct {
	config *config.MapperConfig
}

// NewIntentMapper creates a new intent mapper
func NewIntentMapper(cfg *config.MapperConfig) *IntentMapper {
	return &IntentMapper{config: cfg}
}

// Map converts one sample into an intent. A nil sample is idle with confidence 0.
func (m *IntentMapper) Map(sample *pose.Sample) Intent {
	if sample == nil {
		return Intent{}
	}

	nose, noseOK := landmark(sample, pose.Nose)
	ls, lsOK := landmark(sample, pose.LeftShoulder)
	rs, rsOK := landmark(sample, pose.RightShoulder)
	lh, lhOK := landmark(sample, pose.LeftHip)
	rh, rhOK := landmark(sample, pose.RightHip)

	if !noseOK && !lsOK && !rsOK && !lhOK && !rhOK {
		return Intent{}
	}

	confidence := 0.0
	if noseOK {
		confidence = nose.Visibility
	}
	intent := Intent{Confidence: confidence}

	body, ok := midpoint(ls, lsOK, rs, rsOK)
	if !ok {
		return intent
	}
	hip, hipOK := midpoint(lh, lhOK, rh, rhOK)

	if m.armsRaised(sample, ls, lsOK, rs, rsOK) || body.Y < m.config.JumpBodyY {
		intent.Jump = true
		return intent
	}

	crouched := hipOK && math.Abs(body.Y-hip.Y) < m.config.DuckCompress
	if crouched || body.Y > m.config.DuckBodyY {
		intent.Duck = true
		return intent
	}

	lean := body.X - 0.5
	leftward := lean < -m.config.LeanThreshold
	rightward := lean > m.config.LeanThreshold
	if m.config.Mirror {
		leftward, rightward = rightward, leftward
	}
	intent.MoveLeft = leftward
	intent.MoveRight = rightward

	return intent
}

func (m *IntentMapper) armsRaised(sample *pose.Sample, ls pose.Landmark, lsOK bool, rs pose.Landmark, rsOK bool) bool {
	lw, lwOK := landmark(sample, pose.LeftWrist)
	rw, rwOK := landmark(sample, pose.RightWrist)
	if !lsOK || !rsOK || !lwOK || !rwOK {
		return false
	}
	return lw.Y < ls.Y && rw.Y < rs.Y
}

func landmark(sample *pose.Sample, name pose.LandmarkName) (pose.Landmark, bool) {
	l := sample.Get(name)
	if !l.Present() {
		return pose.Landmark{}, false
	}
	return l.Clamped(), true
}

// midpoint averages the present landmarks of a pair
func midpoint(a pose.Landmark, aOK bool, b pose.Landmark, bOK bool) (pose.Landmark, bool) {
	switch {
	case aOK && bOK:
		return pose.Landmark{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}, true
	case aOK:
		return a, true
	case bOK:
		return b, true
	default:
		return pose.Landmark{}, false
	}
}
