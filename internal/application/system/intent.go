package system

// Intent is the per-tick command the simulation consumes.
// The mapper never sets both MoveLeft and MoveRight.
type Intent struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
	Duck      bool

	// Confidence is carried for display only and never gates the command
	Confidence float64
}

// IntentLabel names the dominant command of an intent
type IntentLabel int

const (
	LabelIdle IntentLabel = iota
	LabelLeft
	LabelRight
	LabelJump
	LabelDuck
)

// String returns the string representation of the label
func (l IntentLabel) String() string {
	switch l {
	case LabelIdle:
		return "idle"
	case LabelLeft:
		return "left"
	case LabelRight:
		return "right"
	case LabelJump:
		return "jump"
	case LabelDuck:
		return "duck"
	default:
		return "unknown"
	}
}

// Label returns the dominant command, jump first then duck then horizontal
func (i Intent) Label() IntentLabel {
	switch {
	case i.Jump:
		return LabelJump
	case i.Duck:
		return LabelDuck
	case i.MoveLeft && !i.MoveRight:
		return LabelLeft
	case i.MoveRight && !i.MoveLeft:
		return LabelRight
	default:
		return LabelIdle
	}
}

// IsIdle returns true when no command is set
func (i Intent) IsIdle() bool {
	return !i.MoveLeft && !i.MoveRight && !i.Jump && !i.Duck
}

// Combine lets a held key override the pose for the tick.
// Keyboard commands report full confidence.
func Combine(fromPose, fromKeys Intent) Intent {
	if fromKeys.IsIdle() {
		return fromPose
	}
	fromKeys.Confidence = 1
	return fromKeys
}
