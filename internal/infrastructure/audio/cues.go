package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/younwookim/polyhop/internal/application/system"
)

// Cue identifies a sound effect
type Cue int

const (
	CueCoin Cue = iota
	CueStomp
	CueHit
	CueLevelComplete
	CueGameOver
)

var cueNames = map[Cue]string{
	CueCoin:          "coin",
	CueStomp:         "stomp",
	CueHit:           "hit",
	CueLevelComplete: "level-complete",
	CueGameOver:      "game-over",
}

func (c Cue) String() string {
	if name, ok := cueNames[c]; ok {
		return name
	}
	return "unknown"
}

// CueFor returns the cue for a game event
func CueFor(ev system.GameEvent) (Cue, bool) {
	switch ev.(type) {
	case system.CoinCollected:
		return CueCoin, true
	case system.EnemyDefeated:
		return CueStomp, true
	case system.PlayerHit:
		return CueHit, true
	case system.LevelCompleted:
		return CueLevelComplete, true
	case system.GameOver:
		return CueGameOver, true
	}
	return 0, false
}

// NewCue builds a fresh streamer for c. Each call returns an independent stream.
func NewCue(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueCoin:
		// B5 then E6
		s = beep.Seq(
			NewTone(987.77, 60*time.Millisecond, WaveSquare, rate),
			NewTone(1318.51, 120*time.Millisecond, WaveSquare, rate),
		)
	case CueStomp:
		s = beep.Seq(
			NewTone(220, 50*time.Millisecond, WaveTriangle, rate),
			NewTone(440, 80*time.Millisecond, WaveTriangle, rate),
		)
	case CueHit:
		s = beep.Mix(
			withVolume(NewTone(110, 200*time.Millisecond, WaveSquare, rate), 0.7),
			withVolume(NewTone(116, 200*time.Millisecond, WaveSquare, rate), 0.3),
		)
	case CueLevelComplete:
		s = beep.Seq(
			NewTone(523.25, 100*time.Millisecond, WaveSine, rate),
			NewTone(659.25, 100*time.Millisecond, WaveSine, rate),
			NewTone(783.99, 100*time.Millisecond, WaveSine, rate),
			NewTone(1046.5, 250*time.Millisecond, WaveSine, rate),
		)
	case CueGameOver:
		s = beep.Seq(
			NewTone(392, 200*time.Millisecond, WaveTriangle, rate),
			NewTone(311.13, 200*time.Millisecond, WaveTriangle, rate),
			NewTone(261.63, 400*time.Millisecond, WaveTriangle, rate),
		)
	default:
		return nil
	}
	return withVolume(s, volume)
}
