package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"oldskool/config"
	"oldskool/shooter"
)

// hudRows are the terminal rows above the arena
const hudRows = 1

var enemyGlyphs = map[shooter.EnemyType]rune{
	shooter.EnemyBasic:     'W',
	shooter.EnemyFast:      'V',
	shooter.EnemyTank:      '#',
	shooter.EnemyShooter:   'Y',
	shooter.EnemyBossHeavy: 'M',
	shooter.EnemyBossFast:  'M',
	shooter.EnemyBossMega:  'M',
}

var (
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleWarning = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// view draws a session onto a terminal screen, one cell covering
// CellWidth x CellHeight arena units
type view struct {
	screen tcell.Screen
	cell   config.TerminalConfig
	cols   int
	rows   int
	styles map[string]tcell.Style
}

func newView(screen tcell.Screen, arena config.ArenaConfig, cell config.TerminalConfig) *view {
	return &view{
		screen: screen,
		cell:   cell,
		cols:   int(math.Ceil(arena.Width / cell.CellWidth)),
		rows:   int(math.Ceil(arena.Height / cell.CellHeight)),
		styles: make(map[string]tcell.Style),
	}
}

// style returns the foreground style for a hex colour
func (v *view) style(hex string) tcell.Style {
	if s, ok := v.styles[hex]; ok {
		return s
	}
	s := tcell.StyleDefault.Foreground(tcell.GetColor(hex))
	v.styles[hex] = s
	return s
}

func (v *view) draw(sim *shooter.Game) {
	v.screen.Clear()

	v.drawBorder()
	for _, pu := range sim.PowerUps() {
		info := pu.Info()
		v.fill(pu.Body, []rune(info.Symbol)[0], v.style(info.Color))
	}
	for _, e := range sim.Enemies() {
		st := v.style(e.Color)
		if e.FlashTicks > 0 {
			st = st.Reverse(true)
		}
		glyph, ok := enemyGlyphs[e.Type]
		if !ok {
			glyph = '?'
		}
		v.fill(e.Body, glyph, st)
	}
	v.drawProjectiles(sim.Projectiles())
	v.drawProjectiles(sim.DiagonalProjectiles())
	v.drawProjectiles(sim.BounceProjectiles())
	v.drawProjectiles(sim.BossProjectiles())

	pl := sim.Player()
	v.fill(pl.Body, 'A', stylePlayer)

	v.drawHUD(sim)
	switch {
	case sim.Over():
		v.drawCentered("GAME OVER", fmt.Sprintf("score %d - enter to play again, q to quit", sim.Score()))
	case sim.Paused():
		v.drawCentered("PAUSED", "p or esc to resume")
	case !sim.Running():
		v.drawCentered("OLDSKOOL", "enter to start, f toggles auto fire, q to quit")
	}

	v.screen.Show()
}

func (v *view) drawProjectiles(projectiles []*shooter.Projectile) {
	for _, p := range projectiles {
		v.fill(p.Body, projectileGlyph(p), v.style(p.Color))
	}
}

func projectileGlyph(p *shooter.Projectile) rune {
	switch p.Kind {
	case shooter.KindDiagonal:
		if p.VX < 0 {
			return '\\'
		}
		return '/'
	case shooter.KindBounce:
		return 'o'
	case shooter.KindBossShot:
		return '*'
	case shooter.KindBeam:
		return '║'
	default:
		return '|'
	}
}

// fill paints every arena cell the body overlaps
func (v *view) fill(b shooter.Body, r rune, st tcell.Style) {
	c0, r0, c1, r1, ok := v.span(b)
	if !ok {
		return
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			v.screen.SetContent(col, row+hudRows, r, nil, st)
		}
	}
}

// span returns the clipped cell range covered by a body.
// ok is false when the body is entirely off the arena.
func (v *view) span(b shooter.Body) (c0, r0, c1, r1 int, ok bool) {
	if b.X+b.Width <= 0 || b.Y+b.Height <= 0 ||
		b.X >= float64(v.cols)*v.cell.CellWidth || b.Y >= float64(v.rows)*v.cell.CellHeight {
		return 0, 0, 0, 0, false
	}
	c0 = max(0, int(math.Floor(b.X/v.cell.CellWidth)))
	r0 = max(0, int(math.Floor(b.Y/v.cell.CellHeight)))
	c1 = min(v.cols-1, int(math.Ceil((b.X+b.Width)/v.cell.CellWidth))-1)
	r1 = min(v.rows-1, int(math.Ceil((b.Y+b.Height)/v.cell.CellHeight))-1)
	c1 = max(c1, c0)
	r1 = max(r1, r0)
	return c0, r0, c1, r1, true
}

func (v *view) drawBorder() {
	for row := 0; row < v.rows; row++ {
		v.screen.SetContent(v.cols, row+hudRows, '│', nil, styleBorder)
	}
}

func (v *view) drawHUD(sim *shooter.Game) {
	pl := sim.Player()
	ws := sim.WaveStatus()
	line := fmt.Sprintf("SCORE %d  LEVEL %d  WAVE %d (%d/%d)  HP %.0f/%.0f",
		sim.Score(), sim.Level(), ws.Wave, ws.Spawned, ws.Cap, max(0, pl.Health), pl.MaxHealth)
	v.text(0, 0, line, styleHUD)
	if ws.IsBossWave {
		v.text(len(line)+2, 0, "BOSS WAVE", styleWarning)
	}
}

func (v *view) drawCentered(title, hint string) {
	mid := hudRows + v.rows/2
	v.text((v.cols-len(title))/2, mid-1, title, styleWarning)
	v.text((v.cols-len(hint))/2, mid+1, hint, styleHUD)
}

func (v *view) text(x, y int, s string, st tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, st)
		x++
	}
}
