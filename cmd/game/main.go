package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/younwookim/polyhop/internal/application/game"
	"github.com/younwookim/polyhop/internal/application/scene/playing"
	"github.com/younwookim/polyhop/internal/application/session"
	"github.com/younwookim/polyhop/internal/application/simulation"
	"github.com/younwookim/polyhop/internal/application/system"
	"github.com/younwookim/polyhop/internal/infrastructure/audio"
	"github.com/younwookim/polyhop/internal/infrastructure/config"
	"github.com/younwookim/polyhop/internal/infrastructure/sensor"
)

//go:embed configs
var configFS embed.FS

type options struct {
	record   string
	replay   string
	terminal bool
	sensor   bool
	seed     int64
	level    string
	scores   bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fset := flag.NewFlagSet("polyhop", flag.ContinueOnError)
	fset.StringVar(&o.record, "record", "", "Record input to file (e.g., -record replay.json)")
	fset.StringVar(&o.replay, "replay", "", "Play back a recording headlessly and print the result")
	fset.BoolVar(&o.terminal, "term", false, "Render in the terminal instead of a window")
	fset.BoolVar(&o.sensor, "sensor", false, "Accept pose samples over websocket")
	fset.Int64Var(&o.seed, "seed", 0, "Seed for level generation (0 picks one)")
	fset.StringVar(&o.level, "level", "", "Play a hand-authored level from configs/levels")
	fset.BoolVar(&o.scores, "scores", false, "Print the best recorded runs and exit")
	if err := fset.Parse(args); err != nil {
		return options{}, err
	}
	return o, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}

	loader, err := newLoader(env)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := loader.LoadGame()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.scores {
		if err := printScores(ctx, env.DBPath, os.Stdout); err != nil {
			log.Fatalf("Failed to read scores: %v", err)
		}
		return
	}

	if opts.replay != "" {
		res, err := runReplay(cfg, loader, opts.replay)
		if err != nil {
			log.Fatalf("Failed to replay: %v", err)
		}
		fmt.Printf("%d frames, %d events, final %s score %d on level %d\n",
			res.Frames, len(res.Events), res.Final.State, res.Final.Score, res.Final.Level)
		return
	}

	seed := pickSeed(opts.seed, env.Seed)
	levels, err := levelSource(cfg, loader, opts.level)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	sim := newSimulation(cfg, seed, levels)

	ledger := openLedger(ctx, env.DBPath)
	defer ledger.Close()

	var mailbox *sensor.Mailbox
	var server *sensor.Server
	if opts.sensor {
		mailbox = sensor.NewMailbox()
		defer mailbox.Close()
		server = sensor.NewServer(env.SensorAddr, env.TPS, mailbox)
		go func() {
			if err := server.ListenAndServe(ctx); err != nil {
				log.Printf("Sensor server stopped: %v", err)
			}
		}()
	}

	if opts.terminal {
		if err := runTerminal(ctx, cfg, sim, mailbox, ledger.hook(ctx, sim, seed), env.TPS); err != nil {
			log.Fatalf("Terminal host failed: %v", err)
		}
		return
	}

	cues := openCues(env.Audio)
	defer cues.Close()

	sceneOpts := playing.Options{
		Seed:       seed,
		LevelName:  opts.level,
		RecordPath: opts.record,
		Cues:       cues,
		OnGameOver: ledger.hook(ctx, sim, seed),
	}
	if mailbox != nil {
		sceneOpts.Sensor = mailbox
		sceneOpts.OnTick = func(snap simulation.Snapshot, intent system.Intent) {
			server.BroadcastState(stateMessage(snap, intent))
		}
	}

	g := game.New(playing.New(cfg, sim, sceneOpts), &cfg.Display)
	if err := g.Run("Poly-Hop"); err != nil {
		log.Fatal(err)
	}
}

// newLoader reads from POLYHOP_CONFIG_DIR when set, otherwise from the embedded configs
func newLoader(env *config.Env) (*config.Loader, error) {
	if env.ConfigDir != "" {
		return config.NewLoader(env.ConfigDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// stateMessage is the per-tick feedback pushed to detectors
func stateMessage(snap simulation.Snapshot, intent system.Intent) sensor.State {
	return sensor.State{
		Tick:   snap.Tick,
		State:  snap.State.String(),
		Score:  snap.Score,
		Lives:  snap.Lives,
		Level:  snap.Level,
		Intent: intent.Label().String(),
	}
}

const cueVolume = 0.5

type cuePlayer interface {
	session.CuePlayer
	Close()
}

type silent struct{ audio.Nop }

func (silent) Close() {}

// openCues opens the speaker, falling back to silence when no device is available
func openCues(enabled bool) cuePlayer {
	if !enabled {
		return silent{}
	}
	p, err := audio.OpenSpeaker(cueVolume)
	if err != nil {
		log.Printf("Audio disabled: %v", err)
		return silent{}
	}
	return p
}
