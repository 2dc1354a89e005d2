package game

import (
	"image/color"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"oldskool/shooter"
)

// Starfield noise parameters
const (
	starNoiseAlpha   = 2.0
	starNoiseBeta    = 2.0
	starNoiseOctaves = 3

	starLayers     = 3
	starDriftScale = 0.4
	starTwinkle    = 0.03
)

type star struct {
	x, y  float64
	speed float64 // pixels per tick, grows with the layer
	size  float64
	phase float64 // noise offset so stars twinkle independently
}

// Starfield is the scrolling parallax background.
// Perlin noise drives a slow sideways drift and the twinkle of each star.
type Starfield struct {
	stars  []star
	noise  *perlin.Perlin
	width  float64
	height float64
	tick   float64
}

// NewStarfield creates count stars spread over the arena
func NewStarfield(width, height float64, count int, seed int64) *Starfield {
	rng := shooter.NewRand(seed)
	s := &Starfield{
		stars:  make([]star, count),
		noise:  perlin.NewPerlin(starNoiseAlpha, starNoiseBeta, starNoiseOctaves, seed),
		width:  width,
		height: height,
	}
	for i := range s.stars {
		layer := float64(rng.Intn(starLayers) + 1)
		s.stars[i] = star{
			x:     rng.Float64() * width,
			y:     rng.Float64() * height,
			speed: 0.3 * layer,
			size:  layer,
			phase: rng.Float64() * 100,
		}
	}
	return s
}

// Update scrolls the stars down and wraps them around the arena
func (s *Starfield) Update() {
	s.tick++
	drift := s.noise.Noise1D(s.tick*0.002) * starDriftScale
	for i := range s.stars {
		st := &s.stars[i]
		st.y += st.speed
		st.x += drift * st.speed
		if st.y >= s.height {
			st.y -= s.height
		}
		if st.x < 0 {
			st.x += s.width
		} else if st.x >= s.width {
			st.x -= s.width
		}
	}
}

// brightness returns the twinkle factor of a star in [0.3, 1]
func (s *Starfield) brightness(st *star) float64 {
	n := (s.noise.Noise2D(st.phase, s.tick*starTwinkle) + 1) / 2
	return 0.3 + 0.7*max(0, min(1, n))
}

// Draw renders the stars
func (s *Starfield) Draw(screen *ebiten.Image) {
	for i := range s.stars {
		st := &s.stars[i]
		v := uint8(255 * s.brightness(st))
		clr := color.RGBA{v, v, v, 255}
		vector.DrawFilledRect(screen, float32(st.x), float32(st.y), float32(st.size), float32(st.size), clr, false)
	}
}
