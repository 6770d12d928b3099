package entity

// EntityID is a unique identifier for an entity within one level
type EntityID uint32

// Vector2 is a 2D position or velocity in world pixels
type Vector2 struct {
	X, Y float64
}

// Add returns v+o
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// AABB is an axis-aligned bounding box.
// Origin is the top-left corner and y grows downward.
type AABB struct {
	X, Y          float64
	Width, Height float64
}

// Overlaps reports whether two boxes intersect (touching edges do not count)
func (a AABB) Overlaps(b AABB) bool {
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}

// Right returns the x coordinate of the right edge
func (a AABB) Right() float64 {
	return a.X + a.Width
}

// Bottom returns the y coordinate of the bottom edge
func (a AABB) Bottom() float64 {
	return a.Y + a.Height
}

// PlatformKind represents the type of a platform
type PlatformKind int

const (
	PlatformGround PlatformKind = iota
	PlatformFloating
)

// String returns the string representation of the platform kind
func (k PlatformKind) String() string {
	switch k {
	case PlatformGround:
		return "ground"
	case PlatformFloating:
		return "floating"
	default:
		return "unknown"
	}
}

// Platform is a static, solid-from-above surface. Immutable after level generation.
type Platform struct {
	AABB
	Kind PlatformKind
}

// Level holds everything generated for one level index
type Level struct {
	Index       int
	Width       float64
	GroundLevel float64
	Spawn       Vector2
	Platforms   []Platform
	Enemies     []*Enemy
	Coins       []*Coin
}

// RemainingCoins returns the number of coins not yet collected
func (l *Level) RemainingCoins() int {
	n := 0
	for _, c := range l.Coins {
		if !c.Collected {
			n++
		}
	}
	return n
}

// LiveEnemies returns the number of enemies still in play
func (l *Level) LiveEnemies() int {
	n := 0
	for _, e := range l.Enemies {
		if e.IsAlive() {
			n++
		}
	}
	return n
}
