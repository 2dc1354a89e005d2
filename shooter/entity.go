// Package shooter is the real-time simulation core of the arcade shooter:
// the player, enemies, boss scripts, projectiles, powerups, the wave spawner
// and the Game that owns and advances all of them one tick at a time.
package shooter

// Body is the positional state shared by every entity in the simulation
type Body struct {
	// Position of the top-left corner in arena units
	X, Y float64

	// Size of the collision box
	Width, Height float64
}

// Bounds returns the entity's collision box
func (b *Body) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// CollidesWith checks whether two entities' boxes overlap
func (b *Body) CollidesWith(other *Body) bool {
	return b.Bounds().Overlaps(other.Bounds())
}
