package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"oldskool/shooter"
)

// sprites are the pixel patterns of the ships, scaled to the body size when drawn
var sprites = map[shooter.EnemyType][]string{
	shooter.EnemyBasic: {
		"...###...",
		"..#####..",
		".##.#.##.",
		"#########",
		"#.#####.#",
		"#.#...#.#",
		"..##.##..",
		"...###...",
	},
	shooter.EnemyFast: {
		"....#....",
		"...###...",
		"..#####..",
		".##.#.##.",
		"#########",
		"..#...#..",
		".#.....#.",
	},
	shooter.EnemyTank: {
		"#########",
		"#.......#",
		"#.#####.#",
		"#.#...#.#",
		"#.#####.#",
		"#.......#",
		"#########",
	},
	shooter.EnemyShooter: {
		"..#####..",
		".#######.",
		"##.###.##",
		"#########",
		"...#.#...",
		"...#.#...",
	},
	shooter.EnemyBossHeavy: {
		"##.#####.##",
		"###########",
		"#.#######.#",
		"###.###.###",
		"###########",
		".#.#.#.#.#.",
		"#.#.#.#.#.#",
	},
	shooter.EnemyBossFast: {
		"#....#....#",
		"##..###..##",
		".#########.",
		"..##.#.##..",
		"..#######..",
		"...#...#...",
	},
	shooter.EnemyBossMega: {
		"..#######..",
		".#########.",
		"###.###.###",
		"###########",
		"#.#.#.#.#.#",
		"###########",
		".#.#...#.#.",
		"#.#.....#.#",
	},
}

var playerSprite = []string{
	"....#....",
	"...###...",
	"...###...",
	"..#####..",
	".#######.",
	"###.#.###",
	"##.....##",
}

// Renderer draws the simulation state with flat rectangles
type Renderer struct {
	palette      *Palette
	ShowHitboxes bool
}

// NewRenderer creates a new renderer
func NewRenderer(palette *Palette) *Renderer {
	return &Renderer{palette: palette}
}

// Render draws every entity of the session
func (r *Renderer) Render(screen *ebiten.Image, sim *shooter.Game) {
	for _, pu := range sim.PowerUps() {
		r.renderPowerUp(screen, pu)
	}
	for _, e := range sim.Enemies() {
		r.renderEnemy(screen, e)
	}

	r.renderProjectiles(screen, sim.Projectiles())
	r.renderProjectiles(screen, sim.DiagonalProjectiles())
	r.renderProjectiles(screen, sim.BounceProjectiles())
	r.renderProjectiles(screen, sim.BossProjectiles())

	r.renderPlayer(screen, sim.Player())
}

func (r *Renderer) renderPlayer(screen *ebiten.Image, p *shooter.Player) {
	drawSprite(screen, playerSprite, p.Body, colorPlayer)

	if p.Upgrades.Shield > 0 {
		pad := float32(4)
		alpha := min(1, 0.3+0.15*float64(p.Upgrades.Shield))
		vector.StrokeRect(screen, float32(p.X)-pad, float32(p.Y)-pad,
			float32(p.Width)+2*pad, float32(p.Height)+2*pad, 2, Fade(colorShield, alpha), false)
	}
	if r.ShowHitboxes {
		strokeBody(screen, p.Body, colorHitbox)
	}
}

// renderEnemy draws an enemy with its health bar
func (r *Renderer) renderEnemy(screen *ebiten.Image, e *shooter.Enemy) {
	clr := r.palette.Color(e.Color)
	if e.FlashTicks > 0 {
		clr = Blend(clr, colorHitFlash, 0.7)
	}

	if pattern, ok := sprites[e.Type]; ok {
		drawSprite(screen, pattern, e.Body, clr)
	} else {
		fillBody(screen, e.Body, clr)
	}

	if e.Health > 20 || e.IsBoss {
		r.renderHealthBar(screen, e)
	}
	if r.ShowHitboxes {
		strokeBody(screen, e.Body, colorHitbox)
	}
}

func (r *Renderer) renderHealthBar(screen *ebiten.Image, e *shooter.Enemy) {
	barHeight, offset := 3.0, 8.0
	if e.IsBoss {
		barHeight, offset = 8.0, 15.0
	}
	x, y, w := float32(e.X), float32(e.Y-offset), float32(e.Width)

	frac := e.HealthFraction()
	fore := colorHealthFore
	switch {
	case e.IsBoss:
		fore = Blend(colorWarning, colorBossBar, frac)
	case frac <= 0.5:
		fore = colorBossBar
	}

	vector.DrawFilledRect(screen, x, y, w, float32(barHeight), colorHealthBack, false)
	vector.DrawFilledRect(screen, x, y, w*float32(frac), float32(barHeight), fore, false)
}

func (r *Renderer) renderProjectiles(screen *ebiten.Image, projectiles []*shooter.Projectile) {
	for _, p := range projectiles {
		clr := r.palette.Color(p.Color)
		if p.Kind == shooter.KindBeam {
			clr = Fade(clr, 0.4+0.6*p.LifeFraction())
		}
		fillBody(screen, p.Body, clr)
		if r.ShowHitboxes {
			strokeBody(screen, p.Body, colorHitbox)
		}
	}
}

func (r *Renderer) renderPowerUp(screen *ebiten.Image, pu *shooter.PowerUp) {
	body := pu.Body
	body.Y += pu.FloatOffset
	clr := r.palette.Color(pu.Info().Color)

	fillBody(screen, body, Fade(clr, 0.35))
	strokeBody(screen, body, clr)
	if r.ShowHitboxes {
		strokeBody(screen, pu.Body, colorHitbox)
	}
}

// drawSprite scales a pixel pattern into the body rectangle
func drawSprite(screen *ebiten.Image, pattern []string, b shooter.Body, clr color.Color) {
	rows := len(pattern)
	if rows == 0 {
		return
	}
	cols := len(pattern[0])
	pw := float32(b.Width) / float32(cols)
	ph := float32(b.Height) / float32(rows)

	for row, line := range pattern {
		for col := 0; col < len(line); col++ {
			if line[col] != '#' {
				continue
			}
			x := float32(b.X) + float32(col)*pw
			y := float32(b.Y) + float32(row)*ph
			vector.DrawFilledRect(screen, x, y, pw, ph, clr, false)
		}
	}
}

func fillBody(screen *ebiten.Image, b shooter.Body, clr color.Color) {
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), clr, false)
}

func strokeBody(screen *ebiten.Image, b shooter.Body, clr color.Color) {
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 1, clr, false)
}
