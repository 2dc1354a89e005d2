package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"oldskool/shooter"
)

// Particle represents a single explosion fragment
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Age      int // ticks lived
	Lifetime int // total lifetime in ticks
	Color    color.RGBA
	Size     float64
}

// Alive returns true if the particle is still alive
func (p *Particle) Alive() bool {
	return p.Age < p.Lifetime
}

// Particles is a bounded pool of short lived explosion particles.
// They are cosmetic only and use their own random source so that the
// simulation stays reproducible from its seed.
type Particles struct {
	items []Particle
	max   int
	rng   *shooter.Rand
}

// Explosion tuning
const (
	particleLifetimeMin = 20
	particleLifetimeMax = 45
	particleDrag        = 0.95
	particleSizeMin     = 1.5
	particleSizeMax     = 4.0
)

// NewParticles creates a particle pool holding at most limit particles
func NewParticles(limit int) *Particles {
	return &Particles{
		items: make([]Particle, 0, limit),
		max:   limit,
		rng:   shooter.NewRand(0),
	}
}

// Explode emits count particles from (x, y) in every direction
func (ps *Particles) Explode(x, y float64, clr color.RGBA, count int, power float64) {
	for i := 0; i < count && len(ps.items) < ps.max; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := power * (0.3 + 0.7*ps.rng.Float64())
		lifetime := particleLifetimeMin + ps.rng.Intn(particleLifetimeMax-particleLifetimeMin+1)
		ps.items = append(ps.items, Particle{
			X:        x,
			Y:        y,
			VX:       math.Cos(angle) * speed,
			VY:       math.Sin(angle) * speed,
			Lifetime: lifetime,
			Color:    clr,
			Size:     particleSizeMin + ps.rng.Float64()*(particleSizeMax-particleSizeMin),
		})
	}
}

// Update advances and expires particles
func (ps *Particles) Update() {
	alive := ps.items[:0]
	for _, p := range ps.items {
		p.Age++
		p.X += p.VX
		p.Y += p.VY
		p.VX *= particleDrag
		p.VY *= particleDrag
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	ps.items = alive
}

// Len returns the number of live particles
func (ps *Particles) Len() int {
	return len(ps.items)
}

// Clear removes all particles
func (ps *Particles) Clear() {
	ps.items = ps.items[:0]
}

// Draw renders the particles, fading them out with age
func (ps *Particles) Draw(screen *ebiten.Image) {
	for i := range ps.items {
		p := &ps.items[i]
		fade := 1 - float64(p.Age)/float64(p.Lifetime)
		half := p.Size / 2
		vector.DrawFilledRect(screen, float32(p.X-half), float32(p.Y-half), float32(p.Size), float32(p.Size), Fade(p.Color, fade), false)
	}
}
