package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"oldskool/shooter"
)

const (
	hudMargin     = 10.0
	hudLineHeight = 16.0
	hudBarWidth   = 150.0
	hudBarHeight  = 10.0
)

// HUD draws score, health, wave state and the overlay screens
type HUD struct {
	face    *text.GoXFace
	palette *Palette
}

// NewHUD creates a HUD using the 7x13 bitmap font
func NewHUD(palette *Palette) *HUD {
	return &HUD{
		face:    text.NewGoXFace(basicfont.Face7x13),
		palette: palette,
	}
}

// Draw renders the status lines and, when the session is not running, the overlay
func (h *HUD) Draw(screen *ebiten.Image, sim *shooter.Game, debug *DebugState, tps float64) {
	w := float64(screen.Bounds().Dx())
	pl := sim.Player()
	ws := sim.WaveStatus()

	h.drawText(screen, fmt.Sprintf("SCORE %d", sim.Score()), hudMargin, hudMargin, colorHUD)
	h.drawText(screen, fmt.Sprintf("LEVEL %d", sim.Level()), hudMargin, hudMargin+hudLineHeight, colorHUD)
	h.drawText(screen, fmt.Sprintf("WAVE %d  %d/%d", ws.Wave, ws.Spawned, ws.Cap), hudMargin, hudMargin+2*hudLineHeight, colorHUD)
	if ws.IsBossWave {
		h.drawText(screen, "BOSS WAVE", hudMargin, hudMargin+3*hudLineHeight, colorWarning)
	}

	h.drawHealth(screen, pl, w-hudBarWidth-hudMargin, hudMargin)
	h.drawUpgrades(screen, pl.Upgrades, w-hudBarWidth-hudMargin, hudMargin+hudBarHeight+8)

	if debug.ShowStats {
		h.drawStats(screen, sim, tps)
	}

	switch {
	case sim.Over():
		h.drawOverlay(screen, "GAME OVER", fmt.Sprintf("score %d  -  press ENTER", sim.Score()))
	case sim.Paused():
		h.drawOverlay(screen, "PAUSED", "press P to resume")
	case !sim.Running():
		h.drawOverlay(screen, "OLDSKOOL", "press ENTER to start")
	}
}

func (h *HUD) drawHealth(screen *ebiten.Image, pl *shooter.Player, x, y float64) {
	frac := 0.0
	if pl.MaxHealth > 0 {
		frac = max(0, pl.Health/pl.MaxHealth)
	}
	fore := colorHealthFore
	if frac <= 0.3 {
		fore = colorBossBar
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), hudBarWidth, hudBarHeight, colorHealthBack, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(hudBarWidth*frac), hudBarHeight, fore, false)
	h.drawText(screen, fmt.Sprintf("%.0f/%.0f", max(0, pl.Health), pl.MaxHealth), x-80, y-2, colorHUD)
}

// drawUpgrades lists the collected upgrade levels with their powerup symbols
func (h *HUD) drawUpgrades(screen *ebiten.Image, up shooter.Upgrades, x, y float64) {
	levels := []struct {
		t     shooter.PowerUpType
		level int
	}{
		{shooter.PowerUpSpeed, up.Speed},
		{shooter.PowerUpRapidFire, up.RapidFire},
		{shooter.PowerUpShield, up.Shield},
		{shooter.PowerUpMultiShot, up.MultiShot},
		{shooter.PowerUpDiagonal, up.Diagonal},
		{shooter.PowerUpBounce, up.Bounce},
	}
	for _, l := range levels {
		if l.level == 0 {
			continue
		}
		info := l.t.Info()
		h.drawText(screen, fmt.Sprintf("%s %d", info.Symbol, l.level), x, y, h.palette.Color(info.Color))
		y += hudLineHeight
	}
}

func (h *HUD) drawStats(screen *ebiten.Image, sim *shooter.Game, tps float64) {
	s := sim.Stats()
	ws := sim.WaveStatus()
	lines := []string{
		fmt.Sprintf("TPS %.1f  tick %d", tps, s.Ticks),
		fmt.Sprintf("enemies %d  shots %d  powerups %d", s.Enemies, s.Projectiles, s.PowerUps),
		fmt.Sprintf("killed %d  bosses %d  bombs %d", s.EnemiesKilled, s.BossesKilled, s.BombsDetonated),
		fmt.Sprintf("next boss wave %d  bounce dropped %t", ws.NextBossWave, ws.BounceDropped),
		fmt.Sprintf("difficulty %s  session %s", sim.Config().Difficulty, sim.SessionID().String()[:8]),
	}
	y := float64(screen.Bounds().Dy()) - hudMargin - float64(len(lines))*hudLineHeight
	for _, line := range lines {
		h.drawText(screen, line, hudMargin, y, colorHUDDim)
		y += hudLineHeight
	}
}

func (h *HUD) drawOverlay(screen *ebiten.Image, title, hint string) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{0, 0, 0, 160}, false)

	cy := float64(b.Dy()) / 2
	h.drawCentered(screen, title, cy-hudLineHeight, colorWarning)
	h.drawCentered(screen, hint, cy+hudLineHeight, colorHUD)
}

func (h *HUD) drawCentered(screen *ebiten.Image, s string, y float64, clr color.Color) {
	width := text.Advance(s, h.face)
	x := (float64(screen.Bounds().Dx()) - width) / 2
	h.drawText(screen, s, x, y, clr)
}

// drawText draws s with its top-left corner at (x, y)
func (h *HUD) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, h.face, op)
}
