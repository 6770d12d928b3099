package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/polyhop/internal/application/replay"
	"github.com/younwookim/polyhop/internal/application/session"
	"github.com/younwookim/polyhop/internal/domain/pose"
	"github.com/younwookim/polyhop/internal/infrastructure/config"
)

// SampleSource yields the newest pose sample, or nil when none arrived
type SampleSource interface {
	Take() *pose.Sample
}

// Host runs a session at a fixed tick rate in a terminal
type Host struct {
	screen   tcell.Screen
	renderer *Renderer
	keyboard *Keyboard
	session  *session.Session
	sensor   SampleSource
	tps      int
}

// NewHost wires a session to screen. sensor may be nil for keyboard-only play.
func NewHost(screen tcell.Screen, display *config.DisplayConfig, sess *session.Session, sensor SampleSource, tps int) *Host {
	if tps <= 0 {
		tps = display.Framerate
	}
	r := NewRenderer(screen, display)
	r.SetAppearance(sess.Simulation().Appearance())
	return &Host{
		screen:   screen,
		renderer: r,
		keyboard: NewKeyboard(DefaultKeyHold),
		session:  sess,
		sensor:   sensor,
		tps:      tps,
	}
}

// Run ticks until ctx is done or the player quits.
// The caller owns the screen and must Fini it afterwards.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(h.tps))
	defer ticker.Stop()

	h.tick()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				h.screen.Sync()
			}
			h.keyboard.Handle(ev)
			if h.keyboard.Quit() {
				return nil
			}
		case <-ticker.C:
			h.tick()
		}
	}
}

// tick advances the session once and redraws
func (h *Host) tick() {
	keys, action := h.keyboard.Next()
	in := replay.Input{Keys: keys, Action: action}
	if h.sensor != nil {
		in.Sample = h.sensor.Take()
	}
	snap, _ := h.session.Tick(in)
	if h.sensor != nil {
		h.renderer.ShowTracking(h.session.Tracking())
	}
	h.renderer.Draw(snap, h.session.MovementLog())
}
