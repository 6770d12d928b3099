package main

import (
	"fmt"

	"github.com/younwookim/polyhop/internal/application/replay"
	"github.com/younwookim/polyhop/internal/application/session"
	"github.com/younwookim/polyhop/internal/application/system"
	"github.com/younwookim/polyhop/internal/infrastructure/config"
)

// runReplay plays a recording back without a window and returns the outcome
func runReplay(cfg *config.GameConfig, loader *config.Loader, filename string) (session.Result, error) {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return session.Result{}, err
	}

	levels, err := levelSource(cfg, loader, data.Level)
	if err != nil {
		return session.Result{}, fmt.Errorf("failed to load replay level: %w", err)
	}

	sim := newSimulation(cfg, data.Seed, levels)
	sess := session.New(sim, system.NewIntentMapper(&cfg.Mapper))
	return sess.Replay(replay.NewReplayer(*data)), nil
}
