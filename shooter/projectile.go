package shooter

// Direction drives straight projectiles
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Projectile is a single shot of any kind. It never references whoever fired it.
type Projectile struct {
	Body

	Kind      ProjectileKind
	Direction Direction // Straight shots only
	VX, VY    float64   // Explicit velocity for every other kind
	Damage    float64
	Color     string

	// Strength is the horizontal share of a diagonal shot
	Strength float64

	Bounces    int
	MaxBounces int

	// Life counts down once per tick for beams
	Life    int
	MaxLife int
}

func newProjectile(kind ProjectileKind, x, y float64) *Projectile {
	wc := GetWeaponConfig(kind)
	return &Projectile{
		Body:   Body{X: x, Y: y, Width: wc.Width, Height: wc.Height},
		Kind:   kind,
		Damage: wc.Damage,
		Color:  wc.Color,
	}
}

// NewStraightProjectile creates a direction driven shot
func NewStraightProjectile(x, y float64, dir Direction) *Projectile {
	p := newProjectile(KindStraight, x, y)
	p.Direction = dir
	return p
}

// NewDiagonalProjectile creates a diagonal shot. The direction components
// are multiplied by the diagonal speed.
func NewDiagonalProjectile(x, y, dx, dy float64) *Projectile {
	p := newProjectile(KindDiagonal, x, y)
	speed := GetWeaponConfig(KindDiagonal).Speed
	p.VX = dx * speed
	p.VY = dy * speed
	if dx < 0 {
		p.Strength = -dx
	} else {
		p.Strength = dx
	}
	return p
}

// NewBounceProjectile creates a wall-reflecting shot with an explicit velocity
func NewBounceProjectile(x, y, vx, vy float64) *Projectile {
	p := newProjectile(KindBounce, x, y)
	p.VX = vx
	p.VY = vy
	p.MaxBounces = GetWeaponConfig(KindBounce).MaxBounces
	return p
}

// NewBossShot creates a boss point projectile
func NewBossShot(x, y, vx, vy float64) *Projectile {
	p := newProjectile(KindBossShot, x, y)
	p.VX = vx
	p.VY = vy
	return p
}

// NewBeam creates a stationary beam segment of the given height
func NewBeam(x, y, height float64) *Projectile {
	p := newProjectile(KindBeam, x, y)
	p.Height = height
	p.Life = GetWeaponConfig(KindBeam).Lifetime
	p.MaxLife = p.Life
	return p
}

// Hostile reports whether the projectile can damage the player
func (p *Projectile) Hostile() bool {
	switch p.Kind {
	case KindBossShot, KindBeam:
		return true
	case KindStraight:
		return p.Direction == DirDown
	default:
		return false
	}
}

// LifeFraction returns the remaining share of a beam's lifetime, 1 for everything else
func (p *Projectile) LifeFraction() float64 {
	if p.Kind != KindBeam || p.MaxLife == 0 {
		return 1
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Update advances the projectile by one tick.
// It returns false once a beam's lifetime has run out.
func (p *Projectile) Update(arena Arena) bool {
	switch p.Kind {
	case KindStraight:
		speed := GetWeaponConfig(KindStraight).Speed
		switch p.Direction {
		case DirUp:
			p.Y -= speed
		case DirDown:
			p.Y += speed
		case DirLeft:
			p.X -= speed
		case DirRight:
			p.X += speed
		}
	case KindBeam:
		p.Life--
		return p.Life > 0
	case KindBounce:
		p.X += p.VX
		p.Y += p.VY
		p.reflect(arena)
	default:
		p.X += p.VX
		p.Y += p.VY
	}
	return true
}

// reflect bounces the shot off the side and top walls until the bounce cap is reached.
// The bottom edge never reflects so shots can leave the arena.
func (p *Projectile) reflect(arena Arena) {
	if p.X <= 0 || p.X+p.Width >= arena.Width {
		if p.Bounces < p.MaxBounces {
			p.VX = -p.VX
			p.Bounces++
			if p.X <= 0 {
				p.X = 1
			}
			if p.X+p.Width >= arena.Width {
				p.X = arena.Width - p.Width - 1
			}
		}
	}

	if p.Y <= 0 {
		if p.Bounces < p.MaxBounces {
			p.VY = -p.VY
			p.Bounces++
			p.Y = 1
		}
	}
}

// Offscreen reports whether the projectile has left the arena for good
func (p *Projectile) Offscreen(arena Arena) bool {
	if p.Kind != KindBounce {
		return arena.outside(p.X, p.Y)
	}

	capped := p.Bounces >= p.MaxBounces
	if p.Y > arena.Height+offscreenMargin && (capped || p.VY >= 0) {
		return true
	}
	return capped && arena.outside(p.X, p.Y)
}
