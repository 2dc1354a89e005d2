package shooter

// Rect is an axis-aligned rectangle with its origin at the top-left corner
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Overlaps reports whether two rectangles intersect.
// Touching edges do not count as an overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width &&
		r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height &&
		r.Y+r.Height > o.Y
}

// CenterX returns the horizontal center of the rectangle
func (r Rect) CenterX() float64 {
	return r.X + r.Width/2
}

// Arena is the size of the play area
type Arena struct {
	Width, Height float64
}

// offscreenMargin is how far past an arena edge an entity may travel before cleanup
const offscreenMargin = 50.0

// outside reports whether a point lies beyond the arena plus the cleanup margin
func (a Arena) outside(x, y float64) bool {
	return x <= -offscreenMargin || x >= a.Width+offscreenMargin ||
		y <= -offscreenMargin || y >= a.Height+offscreenMargin
}

// clampX keeps a box of the given width within the arena horizontally
func (a Arena) clampX(x, width float64) float64 {
	if x < 0 {
		return 0
	}
	if x+width > a.Width {
		return a.Width - width
	}
	return x
}

// clampY keeps a box of the given height within the arena vertically
func (a Arena) clampY(y, height float64) float64 {
	if y < 0 {
		return 0
	}
	if y+height > a.Height {
		return a.Height - height
	}
	return y
}
