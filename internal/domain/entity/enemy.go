package entity

// EnemyKind defines the variety of an enemy
type EnemyKind int

const (
	EnemyKindSlime EnemyKind = iota
)

// String returns the string representation of the enemy kind
func (k EnemyKind) String() string {
	switch k {
	case EnemyKindSlime:
		return "slime"
	default:
		return "unknown"
	}
}

// Enemy size and stats
const (
	SlimeSize   = 30
	SlimeHealth = 30
)

// Enemy represents an enemy entity
type Enemy struct {
	Body
	ID     EntityID
	Kind   EnemyKind
	Health int
	Active bool
}

// NewEnemy creates a new slime at the given pixel position moving at vx per tick
func NewEnemy(id EntityID, x, y, vx float64) *Enemy {
	return &Enemy{
		Body: Body{
			Pos:    Vector2{X: x, Y: y},
			Vel:    Vector2{X: vx},
			Width:  SlimeSize,
			Height: SlimeSize,
		},
		ID:     id,
		Kind:   EnemyKindSlime,
		Health: SlimeHealth,
		Active: true,
	}
}

// TakeDamage applies damage to the enemy, clamping health at zero.
// Returns true if the enemy is defeated.
func (e *Enemy) TakeDamage(damage int) bool {
	e.Health -= damage
	if e.Health < 0 {
		e.Health = 0
	}
	if e.Health <= 0 {
		e.Active = false
	}
	return e.Health <= 0
}

// IsAlive returns true if enemy is still alive
func (e *Enemy) IsAlive() bool {
	return e.Health > 0 && e.Active
}

// CoinSize is the width and height of a coin in pixels
const CoinSize = 20

// Coin represents a collectible coin
type Coin struct {
	AABB
	ID        EntityID
	Collected bool
	Spin      float64
}

// NewCoin creates an uncollected coin at the given pixel position
func NewCoin(id EntityID, x, y float64) *Coin {
	return &Coin{
		AABB: AABB{X: x, Y: y, Width: CoinSize, Height: CoinSize},
		ID:   id,
	}
}

// Collect marks the coin collected. Returns false if it already was.
func (c *Coin) Collect() bool {
	if c.Collected {
		return false
	}
	c.Collected = true
	return true
}
