package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/younwookim/polyhop/internal/application/simulation"
	"github.com/younwookim/polyhop/internal/application/system"
	"github.com/younwookim/polyhop/internal/infrastructure/config"
	"github.com/younwookim/polyhop/internal/infrastructure/storage/sqlite"
)

// pickSeed prefers the flag, then the environment, then the clock
func pickSeed(flagSeed, envSeed int64) int64 {
	switch {
	case flagSeed != 0:
		return flagSeed
	case envSeed != 0:
		return envSeed
	default:
		return time.Now().UnixNano()
	}
}

// levelSource returns nil for generated levels, or a source over the named layout
func levelSource(cfg *config.GameConfig, loader *config.Loader, name string) (simulation.LevelSource, error) {
	if name == "" {
		return nil, nil
	}
	layout, err := loader.LoadLevel(name)
	if err != nil {
		return nil, err
	}
	return system.NewLayoutSource(&cfg.Level, layout), nil
}

func newSimulation(cfg *config.GameConfig, seed int64, levels simulation.LevelSource) *simulation.Simulation {
	rng := rand.New(rand.NewSource(seed))
	if levels == nil {
		return simulation.New(cfg, rng)
	}
	return simulation.New(cfg, rng, simulation.WithLevelSource(levels))
}

// ledger records finished runs. A nil ledger ignores everything.
type ledger struct {
	store *sqlite.Store
}

// openLedger opens the run database, logging and returning nil on failure
func openLedger(ctx context.Context, path string) *ledger {
	if path == "" {
		return nil
	}
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		log.Printf("Run ledger disabled: %v", err)
		return nil
	}
	return &ledger{store: store}
}

func (l *ledger) Close() {
	if l == nil {
		return
	}
	if err := l.store.Close(); err != nil {
		log.Printf("Failed to close run ledger: %v", err)
	}
}

// hook returns the game over callback storing each run of sim
func (l *ledger) hook(ctx context.Context, sim *simulation.Simulation, seed int64) func(simulation.GameData) {
	if l == nil {
		return nil
	}
	return func(data simulation.GameData) {
		id, err := l.store.RecordRun(ctx, runFrom(data, seed, sim.Tick()))
		if err != nil {
			log.Printf("Failed to record run: %v", err)
			return
		}
		log.Printf("Run %d recorded: score %d", id, data.Score)
	}
}

func runFrom(data simulation.GameData, seed int64, ticks uint64) sqlite.Run {
	return sqlite.Run{
		Score:     data.Score,
		Level:     data.Level,
		Seed:      seed,
		Ticks:     ticks,
		SkinTone:  data.Appearance.SkinTone,
		Outfit:    data.Appearance.Outfit,
		Hair:      data.Appearance.Hair,
		SpriteHex: data.Appearance.SpriteHex,
	}
}

const scoreboardSize = 10

// printScores writes the best runs as a table
func printScores(ctx context.Context, path string, w io.Writer) error {
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.TopRuns(ctx, scoreboardSize)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded yet")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSCORE\tLEVEL\tSEED\tOUTFIT\tDATE")
	for i, r := range runs {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%s\t%s\n",
			i+1, r.Score, r.Level, r.Seed, r.Outfit, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}
