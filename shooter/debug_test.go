package shooter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oldskool/config"
)

func TestDebug_SpawnEnemy(t *testing.T) {
	g, _, _ := newTestGame(t, testConfig())
	g.level = 3

	e, err := g.SpawnEnemy(EnemyTank)
	require.NoError(t, err)
	assert.Equal(t, 3, e.Level, "scaled to the current level")
	assert.Equal(t, spawnY, e.Y)
	assert.GreaterOrEqual(t, e.X, 0.0)
	assert.Less(t, e.X, g.arena.Width-spawnMargin)
	assert.Equal(t, []*Enemy{e}, g.Enemies())

	_, err = g.SpawnEnemy("dragon")
	assert.ErrorIs(t, err, ErrUnknownEnemyType)
	assert.Len(t, g.Enemies(), 1)
}

func TestDebug_SpawnPowerUp(t *testing.T) {
	g, _, _ := newTestGame(t, testConfig())

	pu, err := g.SpawnPowerUp(PowerUpShield, 120, 80)
	require.NoError(t, err)
	assert.Equal(t, 120.0, pu.X)
	assert.Equal(t, 80.0, pu.Y)
	assert.Len(t, g.PowerUps(), 1)

	_, err = g.SpawnPowerUp("laser", 0, 0)
	assert.ErrorIs(t, err, ErrUnknownPowerUpType)
}

func TestDebug_SpawnWaveBoss(t *testing.T) {
	g, _, rec := newTestGame(t, testConfig())
	g.JumpToWave(20)

	boss, err := g.SpawnWaveBoss(EnemyBossMega)
	require.NoError(t, err)
	assert.True(t, boss.IsBoss)
	assert.True(t, boss.Enhanced)
	assert.Equal(t, PatternSpiral, boss.Pattern, "wave 20 selects the third enhanced pattern")
	assert.Equal(t, g.arena.Width/2-bossSpawnOffset, boss.X)
	assert.Len(t, rec.ofType(EventBossSpawned), 1)

	_, err = g.SpawnWaveBoss("")
	assert.ErrorIs(t, err, ErrUnknownEnemyType)
}

func TestDebug_ForceNextWave(t *testing.T) {
	g, _, rec := newTestGame(t, testConfig())
	place(g, EnemyBasic, 100, 100)

	g.ForceNextWave()
	ws := g.WaveStatus()
	assert.Equal(t, 2, ws.Wave)
	assert.Equal(t, 0, ws.Spawned)
	assert.Equal(t, 8, ws.Cap)
	assert.Empty(t, g.Enemies())
	assert.Len(t, rec.ofType(EventWaveAdvanced), 1)
}

func TestDebug_JumpToWaveKeepsCap(t *testing.T) {
	g, _, _ := newTestGame(t, testConfig())
	place(g, EnemyBasic, 100, 100)

	g.JumpToWave(17)
	ws := g.WaveStatus()
	assert.Equal(t, 17, ws.Wave)
	assert.Equal(t, 6, ws.Cap)
	assert.Equal(t, 20, ws.NextBossWave)
	assert.False(t, ws.IsBossWave)
	assert.Empty(t, g.Enemies())

	g.JumpToWave(-4)
	assert.Equal(t, 1, g.WaveStatus().Wave)
}

func TestDebug_ResetBounceDrop(t *testing.T) {
	g, _, _ := newTestGame(t, testConfig())

	assert.Equal(t, PowerUpBounce, g.drops.Roll(EnemyBossFast))
	assert.True(t, g.WaveStatus().BounceDropped)

	g.ResetBounceDrop()
	assert.False(t, g.WaveStatus().BounceDropped)
	assert.Equal(t, PowerUpBounce, g.drops.Roll(EnemyBossFast))
}

func TestDebug_SetDifficulty(t *testing.T) {
	g, _, _ := newTestGame(t, testConfig())
	g.JumpToWave(4)

	require.NoError(t, g.SetDifficulty(config.DifficultyInsane))
	ws := g.WaveStatus()
	assert.Equal(t, 4, ws.Wave, "wave is kept")
	assert.Equal(t, 15, ws.Cap)
	assert.InDelta(t, 0.025+levelSpawnBonus, g.spawner.SpawnRate(1), 1e-12)
	assert.Equal(t, config.DifficultyInsane, g.Config().Difficulty)

	err := g.SetDifficulty("nightmare")
	assert.ErrorIs(t, err, config.ErrUnknownDifficulty)
	assert.Equal(t, 15, g.WaveStatus().Cap)
}
