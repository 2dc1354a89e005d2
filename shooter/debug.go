package shooter

import (
	"fmt"

	"oldskool/config"
)

// Debug hooks for test tooling and the frontends' debug keys.
// They are not part of normal play.

// SpawnEnemy adds an enemy of the given type at a random position above the arena,
// scaled to the current level.
func (g *Game) SpawnEnemy(t EnemyType) (*Enemy, error) {
	if _, ok := lookupEnemyType(t); !ok {
		return nil, fmt.Errorf("spawn enemy: %w: %q", ErrUnknownEnemyType, t)
	}
	x := g.rng.Float64() * (g.arena.Width - spawnMargin)
	e := NewEnemy(x, spawnY, t, g.level, g.rng)
	e.DropChance = g.cfg.DropChance
	g.addEnemy(e)

	g.log.Debug("debug spawn enemy", "type", t, "x", x)
	return e, nil
}

// SpawnPowerUp drops a powerup at the given position
func (g *Game) SpawnPowerUp(t PowerUpType, x, y float64) (*PowerUp, error) {
	if _, ok := powerUpInfo[t]; !ok {
		return nil, fmt.Errorf("spawn powerup: %w: %q", ErrUnknownPowerUpType, t)
	}
	pu := NewPowerUp(x, y, t)
	g.powerUps = append(g.powerUps, pu)

	g.log.Debug("debug spawn powerup", "type", t, "x", x, "y", y)
	return pu, nil
}

// SpawnWaveBoss adds a centred boss with the enhanced movement of the current wave
func (g *Game) SpawnWaveBoss(t EnemyType) (*Enemy, error) {
	if _, ok := lookupEnemyType(t); !ok {
		return nil, fmt.Errorf("spawn wave boss: %w: %q", ErrUnknownEnemyType, t)
	}
	boss := g.spawner.WaveBoss(t, g.level)
	g.addEnemy(boss)

	g.log.Debug("debug spawn wave boss", "type", t, "pattern", boss.Pattern)
	return boss, nil
}

// ForceNextWave advances the wave and clears the field
func (g *Game) ForceNextWave() {
	g.spawner.NextWave()
	g.enemies = nil

	g.log.Debug("debug force next wave", "wave", g.spawner.Wave())
	g.emit(Event{Type: EventWaveAdvanced})
}

// JumpToWave sets the wave number and clears the field
func (g *Game) JumpToWave(wave int) {
	g.spawner.JumpToWave(wave)
	g.enemies = nil

	g.log.Debug("debug jump to wave", "wave", g.spawner.Wave())
}

// ResetBounceDrop allows the bounce upgrade to drop again
func (g *Game) ResetBounceDrop() {
	g.drops.Reset()
	g.log.Debug("debug reset bounce drop")
}

// SetDifficulty applies a difficulty preset to the spawner without resetting the wave
func (g *Game) SetDifficulty(d config.Difficulty) error {
	preset, err := d.Preset()
	if err != nil {
		return fmt.Errorf("set difficulty: %w", err)
	}
	g.cfg.Difficulty = d
	g.spawner.SetPreset(preset)

	g.log.Info("difficulty changed", "difficulty", d, "spawn_rate", preset.SpawnRate, "wave_size", preset.WaveSize)
	return nil
}
