package game

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Fixed frontend colours
var (
	colorPlayer     = colornames.Lime
	colorShield     = colornames.Mediumpurple
	colorHitFlash   = colornames.White
	colorHealthBack = color.RGBA{100, 0, 0, 255}
	colorHealthFore = colornames.Limegreen
	colorBossBar    = colornames.Orangered
	colorHUD        = colornames.White
	colorHUDDim     = colornames.Gray
	colorWarning    = colornames.Gold
	colorHitbox     = colornames.Cyan
	colorBomb       = color.RGBA{255, 68, 0, 255}
	colorFallback   = colornames.Magenta
)

// Palette converts the simulation's hex colour strings to image colours
// and caches the result
type Palette struct {
	cache map[string]color.RGBA
}

// NewPalette creates an empty palette
func NewPalette() *Palette {
	return &Palette{cache: make(map[string]color.RGBA)}
}

// Color returns the colour for a hex string like "#ff8800".
// Strings that do not parse map to the fallback colour.
func (p *Palette) Color(hex string) color.RGBA {
	if c, ok := p.cache[hex]; ok {
		return c
	}
	c := colorFallback
	if parsed, err := colorful.Hex(hex); err == nil {
		r, g, b := parsed.RGB255()
		c = color.RGBA{r, g, b, 255}
	}
	p.cache[hex] = c
	return c
}

// Fade returns c with its alpha scaled by f in [0, 1]
func Fade(c color.RGBA, f float64) color.RGBA {
	f = max(0, min(1, f))
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}

// Blend mixes a towards b in RGB space
func Blend(a, b color.RGBA, t float64) color.RGBA {
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	return color.RGBA{r, g, bl, 255}
}
