package entity

// Facing is the horizontal direction a character looks at
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns the string representation of the facing
func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Body represents the physical body of an entity.
// Position is the top-left corner in world pixels, velocity is pixels per tick.
type Body struct {
	Pos    Vector2
	Vel    Vector2
	Width  float64
	Height float64

	OnGround bool
}

// Bounds returns the body's bounding box
func (b *Body) Bounds() AABB {
	return AABB{X: b.Pos.X, Y: b.Pos.Y, Width: b.Width, Height: b.Height}
}

// Bottom returns the y coordinate of the body's bottom edge
func (b *Body) Bottom() float64 {
	return b.Pos.Y + b.Height
}

// SetHeight changes the body height while keeping the bottom edge in place
func (b *Body) SetHeight(h float64) {
	bottom := b.Bottom()
	b.Height = h
	b.Pos.Y = bottom - h
}

// Character size in pixels
const (
	CharacterWidth         = 32
	CharacterHeight        = 48
	CharacterDuckHeight    = 32
	DefaultCharacterHealth = 100
)

// Character represents the player-controlled entity
type Character struct {
	Body

	Health    int
	MaxHealth int
	Facing    Facing

	// State
	IsJumping bool
	IsDucking bool
	IsMoving  bool

	// InvulnerableTicks counts down after a hit; enemy contact is ignored while positive
	InvulnerableTicks int
}

// NewCharacter creates a new character with default values at the given pixel position
func NewCharacter(x, y float64, maxHealth int) *Character {
	return &Character{
		Body: Body{
			Pos:    Vector2{X: x, Y: y},
			Width:  CharacterWidth,
			Height: CharacterHeight,
		},
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Facing:    FacingRight,
	}
}

// TakeDamage applies damage, clamping health at zero.
// Returns true if the character has no health left.
func (c *Character) TakeDamage(amount int) bool {
	c.Health -= amount
	if c.Health < 0 {
		c.Health = 0
	}
	return c.Health <= 0
}

// IsInvulnerable returns true while recovering from a hit
func (c *Character) IsInvulnerable() bool {
	return c.InvulnerableTicks > 0
}
