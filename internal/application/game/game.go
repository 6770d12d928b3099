// Package game provides the ebiten loop that drives the current Scene.
package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/polyhop/internal/application/scene"
	"github.com/younwookim/polyhop/internal/infrastructure/config"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	display *config.DisplayConfig
	dt      float64
	frames  uint64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, display *config.DisplayConfig) *Game {
	fps := display.Framerate
	if fps <= 0 {
		fps = 60
	}
	g := &Game{
		current: initialScene,
		display: display,
		dt:      1.0 / float64(fps),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	g.frames++

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the logical screen size from the display config.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.display.ScreenWidth, g.display.ScreenHeight
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Frames returns how many updates completed
func (g *Game) Frames() uint64 {
	return g.frames
}

// Run opens the window and blocks until it closes. The current scene's
// OnExit runs on the way out.
func (g *Game) Run(title string) error {
	ebiten.SetWindowSize(g.display.ScreenWidth, g.display.ScreenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(int(1/g.dt + 0.5))

	defer g.current.OnExit()
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
