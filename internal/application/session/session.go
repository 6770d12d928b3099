// Package session drives a Simulation from host input. The ebiten scene, the
// terminal host and headless replay all advance the game through Session so
// they share one tick path.
package session

import (
	"github.com/younwookim/polyhop/internal/application/replay"
	"github.com/younwookim/polyhop/internal/application/simulation"
	"github.com/younwookim/polyhop/internal/application/state"
	"github.com/younwookim/polyhop/internal/application/system"
	"github.com/younwookim/polyhop/internal/domain/pose"
)

// DefaultSampleHold is how many ticks a sensor sample keeps driving the
// character when no newer one arrives
const DefaultSampleHold = 15

// CuePlayer receives the events of every tick
type CuePlayer interface {
	Play(events []system.GameEvent)
}

// Option configures a Session
type Option func(*Session)

// WithRecorder records every resolved input
func WithRecorder(r *replay.Recorder) Option {
	return func(s *Session) {
		s.recorder = r
	}
}

// WithCues plays a cue for each event
func WithCues(c CuePlayer) Option {
	return func(s *Session) {
		s.cues = c
	}
}

// WithGameOver is called once per finished run with its summary
func WithGameOver(fn func(simulation.GameData)) Option {
	return func(s *Session) {
		s.onGameOver = fn
	}
}

// WithSampleHold overrides DefaultSampleHold. 0 disables holding.
func WithSampleHold(ticks int) Option {
	return func(s *Session) {
		s.hold = ticks
	}
}

// Session couples a Simulation with the pose mapper and host-side bookkeeping
type Session struct {
	sim    *simulation.Simulation
	mapper *system.IntentMapper
	log    *system.MovementLog

	recorder   *replay.Recorder
	cues       CuePlayer
	onGameOver func(simulation.GameData)

	hold       int
	held       *pose.Sample
	heldFor    int
	lastIntent system.Intent
	tracking   float64
	snapshot   simulation.Snapshot
}

// New creates a session around sim
func New(sim *simulation.Simulation, mapper *system.IntentMapper, opts ...Option) *Session {
	s := &Session{
		sim:    sim,
		mapper: mapper,
		log:    system.NewMovementLog(system.DefaultMovementLogSize),
		hold:   DefaultSampleHold,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.snapshot = sim.Snapshot()
	return s
}

// Tick advances one frame of live input. A nil sample reuses the last one
// for up to the hold window.
func (s *Session) Tick(in replay.Input) (simulation.Snapshot, []system.GameEvent) {
	return s.step(s.resolve(in))
}

// resolve substitutes the held sample for a missing one
func (s *Session) resolve(in replay.Input) replay.Input {
	if in.Sample != nil {
		s.held = in.Sample
		s.heldFor = 0
		return in
	}
	if s.held != nil && s.heldFor < s.hold {
		s.heldFor++
		in.Sample = s.held
		return in
	}
	s.held = nil
	return in
}

func (s *Session) step(in replay.Input) (simulation.Snapshot, []system.GameEvent) {
	if s.recorder != nil {
		s.recorder.RecordFrame(in)
	}

	if in.Action {
		switch s.sim.State() {
		case state.StateGameOver:
			if s.sim.Restart() {
				s.log.Reset()
			}
		case state.StateLevelComplete:
			s.sim.AdvanceLevel()
		}
	}

	s.tracking = in.Sample.AverageVisibility()
	intent := system.Combine(s.mapper.Map(in.Sample), in.Keys)
	playing := s.sim.State() == state.StatePlaying

	snap, events := s.sim.Step(intent)
	s.snapshot = snap
	if playing {
		s.lastIntent = intent
		s.log.Record(snap.Tick, intent)
	}

	if len(events) > 0 && s.cues != nil {
		s.cues.Play(events)
	}
	for _, ev := range events {
		if _, ok := ev.(system.GameOver); ok && s.onGameOver != nil {
			s.onGameOver(s.sim.GameData())
		}
	}
	return snap, events
}

// Snapshot returns the state after the latest tick
func (s *Session) Snapshot() simulation.Snapshot {
	return s.snapshot
}

// Simulation returns the driven simulation
func (s *Session) Simulation() *simulation.Simulation {
	return s.sim
}

// Intent returns the intent applied on the latest playing tick
func (s *Session) Intent() system.Intent {
	return s.lastIntent
}

// Tracking is the mean landmark visibility of the sample behind the latest
// tick, 0 when no sample drove it
func (s *Session) Tracking() float64 {
	return s.tracking
}

// MovementLog returns the recent command changes, newest first
func (s *Session) MovementLog() []system.MovementEntry {
	return s.log.Entries()
}

// Recorder returns the attached recorder, if any
func (s *Session) Recorder() *replay.Recorder {
	return s.recorder
}
