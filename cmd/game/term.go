package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/polyhop/internal/application/session"
	"github.com/younwookim/polyhop/internal/application/simulation"
	"github.com/younwookim/polyhop/internal/application/system"
	"github.com/younwookim/polyhop/internal/infrastructure/config"
	"github.com/younwookim/polyhop/internal/infrastructure/sensor"
	"github.com/younwookim/polyhop/internal/infrastructure/terminal"
)

// runTerminal plays in the terminal until the player quits or ctx is done.
// Audio cues are not played in the terminal.
func runTerminal(ctx context.Context, cfg *config.GameConfig, sim *simulation.Simulation, mailbox *sensor.Mailbox, onGameOver func(simulation.GameData), tps int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	sess := session.New(sim, system.NewIntentMapper(&cfg.Mapper), session.WithGameOver(onGameOver))

	var src terminal.SampleSource
	if mailbox != nil {
		src = mailbox
	}
	return terminal.NewHost(screen, &cfg.Display, sess, src, tps).Run(ctx)
}
