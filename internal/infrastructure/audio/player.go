package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/polyhop/internal/application/system"
)

// SampleRate is the output rate for every cue
const SampleRate = beep.SampleRate(44100)

// CuePlayer plays the cues for a tick's events without blocking the game loop
type CuePlayer interface {
	Play(events []system.GameEvent)
}

// Nop discards every event
type Nop struct{}

// Play does nothing
func (Nop) Play([]system.GameEvent) {}

// Player mixes cues into a beep.Mixer
type Player struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	volume  float64
	mixer   *beep.Mixer
	speaker bool
	played  int
}

// NewPlayer creates a player writing into mixer. The caller streams the mixer.
func NewPlayer(mixer *beep.Mixer, rate beep.SampleRate, volume float64) *Player {
	return &Player{
		rate:   rate,
		volume: volume,
		mixer:  mixer,
	}
}

// OpenSpeaker initializes the system speaker and returns a player feeding it
func OpenSpeaker(volume float64) (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	p := NewPlayer(&beep.Mixer{}, SampleRate, volume)
	p.speaker = true
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues one cue per recognised event
func (p *Player) Play(events []system.GameEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, ev := range events {
		cue, ok := CueFor(ev)
		if !ok {
			continue
		}
		s := NewCue(cue, p.rate, p.volume)
		if s == nil {
			continue
		}
		p.add(s)
		p.played++
	}
}

// Played returns how many cues were queued
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// Close silences everything still playing
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.speaker {
		speaker.Lock()
		defer speaker.Unlock()
	}
	p.mixer.Clear()
}

func (p *Player) add(s beep.Streamer) {
	if p.speaker {
		speaker.Lock()
		defer speaker.Unlock()
	}
	p.mixer.Add(s)
}
