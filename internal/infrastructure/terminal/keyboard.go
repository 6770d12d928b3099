package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/polyhop/internal/application/system"
)

// DefaultKeyHold is how many ticks a key press counts as held.
// Terminals report key repeats but never key releases.
const DefaultKeyHold = 8

type control int

const (
	controlLeft control = iota
	controlRight
	controlJump
	controlDuck
	controlCount
)

// Keyboard turns terminal key events into per-tick intents
type Keyboard struct {
	hold    uint64
	tick    uint64
	pressed [controlCount]bool
	last    [controlCount]uint64
	action  bool
	quit    bool
}

// NewKeyboard creates a keyboard where a press lasts hold ticks
func NewKeyboard(hold int) *Keyboard {
	if hold <= 0 {
		hold = DefaultKeyHold
	}
	return &Keyboard{hold: uint64(hold)}
}

// Handle records one terminal event
func (k *Keyboard) Handle(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit = true
	case tcell.KeyLeft:
		k.press(controlLeft)
	case tcell.KeyRight:
		k.press(controlRight)
	case tcell.KeyUp:
		k.press(controlJump)
	case tcell.KeyDown:
		k.press(controlDuck)
	case tcell.KeyEnter:
		k.action = true
	case tcell.KeyRune:
		switch key.Rune() {
		case 'a', 'A':
			k.press(controlLeft)
		case 'd', 'D':
			k.press(controlRight)
		case 'w', 'W':
			k.press(controlJump)
		case 's', 'S':
			k.press(controlDuck)
		case ' ':
			k.action = true
		case 'q', 'Q':
			k.quit = true
		}
	}
}

func (k *Keyboard) press(c control) {
	k.pressed[c] = true
	k.last[c] = k.tick
}

func (k *Keyboard) held(c control) bool {
	return k.pressed[c] && k.tick-k.last[c] < k.hold
}

// Next returns this tick's keys and action press, then advances the tick
func (k *Keyboard) Next() (system.Intent, bool) {
	intent := system.Intent{
		MoveLeft:  k.held(controlLeft),
		MoveRight: k.held(controlRight),
		Jump:      k.held(controlJump),
		Duck:      k.held(controlDuck),
	}
	if intent.MoveLeft && intent.MoveRight {
		// the most recent direction wins
		if k.last[controlLeft] > k.last[controlRight] {
			intent.MoveRight = false
		} else {
			intent.MoveLeft = false
		}
	}
	if !intent.IsIdle() {
		intent.Confidence = 1
	}

	action := k.action
	k.action = false
	k.tick++
	return intent, action
}

// Quit reports whether the player asked to leave
func (k *Keyboard) Quit() bool {
	return k.quit
}
