package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"oldskool/shooter"
)

// keyBindings maps physical keys to the simulation keys they press
var keyBindings = map[ebiten.Key]shooter.Key{
	ebiten.KeyArrowLeft:  shooter.KeyArrowLeft,
	ebiten.KeyArrowRight: shooter.KeyArrowRight,
	ebiten.KeyArrowUp:    shooter.KeyArrowUp,
	ebiten.KeyArrowDown:  shooter.KeyArrowDown,
	ebiten.KeyA:          shooter.KeyA,
	ebiten.KeyD:          shooter.KeyD,
	ebiten.KeyW:          shooter.KeyW,
	ebiten.KeyS:          shooter.KeyS,
	ebiten.KeySpace:      shooter.KeySpace,
}

// KeyboardInput provides the simulation input from the keyboard.
// The state is sampled once per tick by Update.
type KeyboardInput struct {
	keys  []ebiten.Key
	state shooter.KeyState
}

// NewKeyboardInput creates a new keyboard input provider
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{
		keys:  make([]ebiten.Key, 0, 10),
		state: make(shooter.KeyState, len(keyBindings)),
	}
}

// Update samples the currently pressed keys
func (k *KeyboardInput) Update() {
	k.keys = inpututil.AppendPressedKeys(k.keys[:0])
	k.set(k.keys)
}

// set replaces the key state with the given pressed keys
func (k *KeyboardInput) set(pressed []ebiten.Key) {
	clear(k.state)
	for _, key := range pressed {
		if sk, ok := keyBindings[key]; ok {
			k.state[sk] = true
		}
	}
}

// Pressed implements shooter.Input
func (k *KeyboardInput) Pressed(key shooter.Key) bool {
	return k.state[key]
}

// Control actions outside the simulation input
type control int

const (
	controlNone control = iota
	controlStart
	controlPause
	controlReset
	controlQuit
)

// readControl returns the control action triggered this tick
func readControl() control {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		return controlStart
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return controlPause
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return controlReset
	case inpututil.IsKeyJustPressed(ebiten.KeyQ) && ebiten.IsKeyPressed(ebiten.KeyControl):
		return controlQuit
	}
	return controlNone
}
