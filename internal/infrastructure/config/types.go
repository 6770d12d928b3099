package config

// GameConfig is the root config for game.json
type GameConfig struct {
	Display   DisplayConfig   `json:"display"`
	Physics   PhysicsConfig   `json:"physics"`
	Character CharacterConfig `json:"character"`
	Combat    CombatConfig    `json:"combat"`
	Level     LevelConfig     `json:"level"`
	Mapper    MapperConfig    `json:"mapper"`
	Particles ParticleConfig  `json:"particles"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Framerate    int `json:"framerate"`
}

// PhysicsConfig values are per tick, not per second
type PhysicsConfig struct {
	Gravity     float64 `json:"gravity"`
	GroundLevel float64 `json:"groundLevel"`
}

type CharacterConfig struct {
	SpawnX    float64 `json:"spawnX"`
	SpawnY    float64 `json:"spawnY"`
	Speed     float64 `json:"speed"`
	JumpPower float64 `json:"jumpPower"`
	MaxHealth int     `json:"maxHealth"`
	Lives     int     `json:"lives"`
	SkinTone  string  `json:"skinTone"`
	Outfit    string  `json:"outfit"`
	Hair      string  `json:"hair"`

	// CustomSprite is an optional 384 digit sprite hex string
	CustomSprite string `json:"customSprite,omitempty"`
}

type CombatConfig struct {
	StompBounce       float64 `json:"stompBounce"` // upward velocity after a stomp
	StompDamage       int     `json:"stompDamage"`
	ContactDamage     int     `json:"contactDamage"`
	InvulnerableTicks int     `json:"invulnerableTicks"` // grace period after a hit, 0 disables
	EnemyScore        uint32  `json:"enemyScore"`
	CoinScore         uint32  `json:"coinScore"`
}

// LevelConfig drives the procedural level generator
type LevelConfig struct {
	Width             float64     `json:"width"`
	TileWidth         float64     `json:"tileWidth"`
	TileHeight        float64     `json:"tileHeight"`
	FloatingPlatforms int         `json:"floatingPlatforms"`
	Enemies           int         `json:"enemies"`
	Coins             int         `json:"coins"`
	PlatformX         RangeConfig `json:"platformX"` // inset from both level edges
	PlatformY         RangeConfig `json:"platformY"`
	PlatformWidth     RangeConfig `json:"platformWidth"`
	EnemyX            RangeConfig `json:"enemyX"` // inset from both level edges
	EnemySpeed        RangeConfig `json:"enemySpeed"`
	CoinX             RangeConfig `json:"coinX"` // inset from both level edges
	CoinY             RangeConfig `json:"coinY"`
}

// RangeConfig is a half-open interval [Min, Max)
type RangeConfig struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// MapperConfig holds the pose thresholds in normalized frame units
type MapperConfig struct {
	JumpBodyY     float64 `json:"jumpBodyY"`    // body center above this line means jump
	DuckBodyY     float64 `json:"duckBodyY"`    // body center below this line means duck
	DuckCompress  float64 `json:"duckCompress"` // shoulder to hip distance that counts as crouched
	LeanThreshold float64 `json:"leanThreshold"`
	Mirror        bool    `json:"mirror"`
}

type ParticleConfig struct {
	Burst   int     `json:"burst"`
	Life    int     `json:"life"`
	Spread  float64 `json:"spread"`
	Gravity float64 `json:"gravity"`
}
