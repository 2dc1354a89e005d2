package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"oldskool/config"
	"oldskool/shooter"
)

// DebugState holds debug flags that persist across session resets
type DebugState struct {
	ShowHitboxes bool // Outline every collision box
	ShowStats    bool // Session counters at the bottom of the screen

	bossIndex       int
	powerUpIndex    int
	difficultyIndex int
}

var debugBosses = []shooter.EnemyType{shooter.EnemyBossHeavy, shooter.EnemyBossFast, shooter.EnemyBossMega}

// handleDebugKeys runs the debug hook bound to a function key.
//
//	F1 hitboxes, F2 stats, F3 next wave, F4 wave boss, F5 powerup,
//	F6 spawn shooter, F7 reset bounce drop, F8 cycle difficulty
func (g *Game) handleDebugKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		g.debug.ShowHitboxes = !g.debug.ShowHitboxes
		g.renderer.ShowHitboxes = g.debug.ShowHitboxes
	case inpututil.IsKeyJustPressed(ebiten.KeyF2):
		g.debug.ShowStats = !g.debug.ShowStats
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		g.sim.ForceNextWave()
	case inpututil.IsKeyJustPressed(ebiten.KeyF4):
		t := debugBosses[g.debug.bossIndex%len(debugBosses)]
		g.debug.bossIndex++
		if _, err := g.sim.SpawnWaveBoss(t); err != nil {
			g.log.Warn("debug spawn boss failed", "err", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		types := shooter.PowerUpTypes()
		t := types[g.debug.powerUpIndex%len(types)]
		g.debug.powerUpIndex++
		pl := g.sim.Player()
		if _, err := g.sim.SpawnPowerUp(t, pl.X+pl.Width/2-10, pl.Y-120); err != nil {
			g.log.Warn("debug spawn powerup failed", "err", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF6):
		if _, err := g.sim.SpawnEnemy(shooter.EnemyShooter); err != nil {
			g.log.Warn("debug spawn enemy failed", "err", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF7):
		g.sim.ResetBounceDrop()
	case inpututil.IsKeyJustPressed(ebiten.KeyF8):
		levels := config.Difficulties()
		g.debug.difficultyIndex++
		d := levels[g.debug.difficultyIndex%len(levels)]
		if err := g.sim.SetDifficulty(d); err != nil {
			g.log.Warn("debug set difficulty failed", "err", err)
		}
	}
}
