package config

// LevelLayoutConfig is the root config for levels/<name>.json.
// Positions are in world pixels with the origin at the top left.
type LevelLayoutConfig struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Width       float64               `json:"width"`
	GroundLevel float64               `json:"groundLevel"`
	PlayerSpawn PositionConfig        `json:"playerSpawn"`
	Platforms   []PlatformSpawnConfig `json:"platforms"`
	Enemies     []EnemySpawnConfig    `json:"enemies"`
	Coins       []PositionConfig      `json:"coins"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type PlatformSpawnConfig struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Width float64 `json:"width"`
}

type EnemySpawnConfig struct {
	Type  string  `json:"type"`
	X     float64 `json:"x"`
	Speed float64 `json:"speed"` // signed, negative walks left
}
