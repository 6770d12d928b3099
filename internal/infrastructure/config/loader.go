package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.json on top of Default, so a partial file only
// overrides the keys it names
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game.json: %w", err)
	}

	return cfg, nil
}

// LoadLevel loads a hand-authored level layout
func (l *Loader) LoadLevel(name string) (*LevelLayoutConfig, error) {
	path := "levels/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}

	var cfg LevelLayoutConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
	}

	if cfg.Width <= 0 || cfg.GroundLevel <= 0 {
		return nil, fmt.Errorf("level %s: width and groundLevel must be positive", name)
	}

	return &cfg, nil
}

// Validate rejects configurations the simulation cannot run with
func (c *GameConfig) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("display size must be positive")
	case c.Physics.Gravity < 0:
		return fmt.Errorf("gravity must not be negative")
	case c.Level.Width < float64(c.Display.ScreenWidth):
		return fmt.Errorf("level width %.0f is narrower than the screen", c.Level.Width)
	case c.Level.TileWidth <= 0:
		return fmt.Errorf("tile width must be positive")
	case c.Character.Lives <= 0 || c.Character.MaxHealth <= 0:
		return fmt.Errorf("lives and max health must be positive")
	}
	return nil
}
