package system

import (
	"github.com/younwookim/polyhop/internal/domain/entity"
	"github.com/younwookim/polyhop/internal/infrastructure/config"
)

// ControlSystem applies intents to the character
type ControlSystem struct {
	config *config.CharacterConfig
}

// NewControlSystem creates a new control system
func NewControlSystem(cfg *config.CharacterConfig) *ControlSystem {
	return &ControlSystem{config: cfg}
}

// Apply updates the character's velocity and posture from one intent
func (s *ControlSystem) Apply(c *entity.Character, intent Intent) {
	s.handleMovement(c, intent)
	s.handlePosture(c, intent)
	s.handleJump(c, intent)
}

func (s *ControlSystem) handleMovement(c *entity.Character, intent Intent) {
	switch intent.Label() {
	case LabelLeft:
		c.Vel.X = -s.config.Speed
		c.Facing = entity.FacingLeft
		c.IsMoving = true
	case LabelRight:
		c.Vel.X = s.config.Speed
		c.Facing = entity.FacingRight
		c.IsMoving = true
	default:
		c.Vel.X = 0
		c.IsMoving = false
	}
}

func (s *ControlSystem) handlePosture(c *entity.Character, intent Intent) {
	switch {
	case intent.Duck && !c.IsDucking:
		c.IsDucking = true
		c.SetHeight(entity.CharacterDuckHeight)
	case !intent.Duck && c.IsDucking:
		c.IsDucking = false
		c.SetHeight(entity.CharacterHeight)
	}
}

// handleJump only launches from the ground and never from a crouch
func (s *ControlSystem) handleJump(c *entity.Character, intent Intent) {
	if !intent.Jump || !c.OnGround || c.IsDucking {
		return
	}
	c.Vel.Y = -s.config.JumpPower
	c.OnGround = false
	c.IsJumping = true
}
