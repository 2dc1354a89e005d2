package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"oldskool/shooter"
)

// holdWindow is how long a key counts as held after its last press or repeat.
// Terminals only report presses, so holding a key is seen as a stream of repeats.
const holdWindow = 180 * time.Millisecond

// heldKeys turns terminal key presses into a shooter.Input
type heldKeys struct {
	until    map[shooter.Key]time.Time
	now      time.Time
	autoFire bool
}

func newHeldKeys() *heldKeys {
	return &heldKeys{until: make(map[shooter.Key]time.Time)}
}

// press marks k as held from t
func (h *heldKeys) press(k shooter.Key, t time.Time) {
	h.until[k] = t.Add(holdWindow)
}

// release forgets every held key
func (h *heldKeys) release() {
	clear(h.until)
}

// sample fixes the time the next Pressed calls are evaluated at
func (h *heldKeys) sample(t time.Time) {
	h.now = t
}

// Pressed implements shooter.Input
func (h *heldKeys) Pressed(k shooter.Key) bool {
	if k == shooter.KeySpace && h.autoFire {
		return true
	}
	until, ok := h.until[k]
	return ok && h.now.Before(until)
}

// simKey maps a terminal key event to a simulation key
func simKey(ev *tcell.EventKey) (shooter.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return shooter.KeyArrowLeft, true
	case tcell.KeyRight:
		return shooter.KeyArrowRight, true
	case tcell.KeyUp:
		return shooter.KeyArrowUp, true
	case tcell.KeyDown:
		return shooter.KeyArrowDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return shooter.KeyA, true
		case 'd', 'D':
			return shooter.KeyD, true
		case 'w', 'W':
			return shooter.KeyW, true
		case 's', 'S':
			return shooter.KeyS, true
		case ' ':
			return shooter.KeySpace, true
		}
	}
	return "", false
}
