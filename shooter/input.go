package shooter

// Key names an abstract key the simulation understands.
// The names follow physical key codes so that frontends can map devices directly.
type Key string

const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyA          Key = "KeyA"
	KeyD          Key = "KeyD"
	KeyW          Key = "KeyW"
	KeyS          Key = "KeyS"
	KeySpace      Key = "Space"
)

// Input is the key-state mapping read once per tick
type Input interface {
	// Pressed reports whether the key is currently held
	Pressed(k Key) bool
}

// KeyState is a map based Input
type KeyState map[Key]bool

// Pressed implements Input
func (ks KeyState) Pressed(k Key) bool {
	return ks[k]
}

// noInput is used when the caller passes a nil Input
type noInput struct{}

func (noInput) Pressed(Key) bool { return false }

func anyPressed(in Input, keys ...Key) bool {
	for _, k := range keys {
		if in.Pressed(k) {
			return true
		}
	}
	return false
}
