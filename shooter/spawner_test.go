package shooter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"oldskool/config"
)

func newTestSpawner(rate float64, waveSize int, seed int64) *Spawner {
	return NewSpawner(testArena, config.DifficultyPreset{SpawnRate: rate, WaveSize: waveSize}, NewRand(seed))
}

func TestSpawner_Defaults(t *testing.T) {
	s := newTestSpawner(0.008, 6, 1)
	status := s.Status()
	assert.Equal(t, 1, status.Wave)
	assert.Equal(t, 0, status.Spawned)
	assert.Equal(t, 6, status.Cap)
	assert.Equal(t, 10, status.NextBossWave)
	assert.False(t, status.IsBossWave)
	assert.InDelta(t, 0.018, s.SpawnRate(5), 1e-12)
}

func TestSpawner_NextBossWave(t *testing.T) {
	s := newTestSpawner(0, 6, 1)
	for wave, want := range map[int]int{1: 10, 9: 10, 10: 10, 11: 20, 20: 20, 21: 30} {
		s.JumpToWave(wave)
		assert.Equal(t, want, s.Status().NextBossWave, "wave %d", wave)
	}
}

func TestSpawner_BossOnlyOnBossWaves(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		wave := rapid.IntRange(1, 200).Draw(t, "wave")
		level := rapid.IntRange(1, 20).Draw(t, "level")

		s := newTestSpawner(0, 6, 7)
		s.JumpToWave(wave)
		blocker := []*Enemy{NewEnemy(0, 0, EnemyBasic, 1, nil)}

		spawned, _ := s.Update(level, blocker)
		isBossWave := wave%10 == 0
		if isBossWave != (len(spawned) == 1) {
			t.Fatalf("wave %d spawned %d enemies", wave, len(spawned))
		}
		if isBossWave && !spawned[0].IsBoss {
			t.Fatalf("wave %d spawned %s, want a boss", wave, spawned[0].Type)
		}

		// exactly one boss per boss wave
		again, _ := s.Update(level, blocker)
		if len(again) != 0 {
			t.Fatalf("wave %d spawned a second time", wave)
		}
	})
}

func TestSpawner_WaveBossPlacement(t *testing.T) {
	s := newTestSpawner(0, 6, 1)
	s.JumpToWave(10)

	spawned, advanced := s.Update(1, nil)
	require.Len(t, spawned, 1)
	assert.False(t, advanced)

	boss := spawned[0]
	assert.Equal(t, EnemyBossHeavy, boss.Type)
	assert.Equal(t, 340.0, boss.X)
	assert.Equal(t, -50.0, boss.Y)
	assert.True(t, boss.Enhanced)
	assert.Equal(t, PatternZigzag, boss.Pattern)
	assert.Equal(t, s.Status().Cap, s.Status().Spawned)
}

func TestSpawner_EnhancedPatternCycle(t *testing.T) {
	tests := map[int]MovePattern{
		10: PatternZigzag,
		20: PatternSpiral,
		30: PatternWeaving,
		40: PatternCircular,
		50: PatternZigzag,
	}
	for wave, want := range tests {
		s := newTestSpawner(0, 6, 1)
		s.JumpToWave(wave)
		spawned, _ := s.Update(1, nil)
		require.Len(t, spawned, 1)
		assert.Equal(t, want, spawned[0].Pattern, "wave %d", wave)
	}

	s := newTestSpawner(0, 6, 1)
	s.JumpToWave(30)
	spawned, _ := s.Update(1, nil)
	assert.Equal(t, 100.0, spawned[0].WeavingAmplitude)
	assert.Equal(t, 0.1, spawned[0].WeavingSpeed)
}

func TestSpawner_BossTypeDistribution(t *testing.T) {
	const trials = 20000

	tests := []struct {
		level int
		want  map[EnemyType]float64
	}{
		{1, map[EnemyType]float64{EnemyBossHeavy: 1}},
		{5, map[EnemyType]float64{EnemyBossHeavy: 1}},
		{6, map[EnemyType]float64{EnemyBossHeavy: 0.6, EnemyBossFast: 0.4}},
		{8, map[EnemyType]float64{EnemyBossHeavy: 0.4, EnemyBossFast: 0.4, EnemyBossMega: 0.2}},
		{12, map[EnemyType]float64{EnemyBossHeavy: 0.4, EnemyBossFast: 0.4, EnemyBossMega: 0.2}},
	}

	for _, tt := range tests {
		s := newTestSpawner(0, 6, 12345)
		counts := make(map[EnemyType]int)
		for i, n := 0, trials; i < n; i++ {
			counts[s.rollBossType(tt.level)]++
		}

		for bossType, share := range tt.want {
			assert.InDelta(t, share, float64(counts[bossType])/trials, 0.02, "level %d %s", tt.level, bossType)
		}
		for bossType := range counts {
			assert.Contains(t, tt.want, bossType, "level %d", tt.level)
		}
	}
}

func TestSpawner_RegularTypesByLevel(t *testing.T) {
	allowed := map[int][]EnemyType{
		1: {EnemyBasic},
		2: {EnemyBasic, EnemyFast, EnemyShooter},
		3: {EnemyBasic, EnemyFast, EnemyShooter, EnemyTank},
		6: {EnemyBasic, EnemyFast, EnemyShooter, EnemyTank},
	}

	for level, types := range allowed {
		s := newTestSpawner(1, 1000, 99)
		seen := make(map[EnemyType]bool)
		for i, n := 0, 2000; i < n; i++ {
			spawned, _ := s.Update(level, []*Enemy{nil})
			require.Len(t, spawned, 1)
			e := spawned[0]
			seen[e.Type] = true
			assert.Equal(t, -50.0, e.Y)
			assert.GreaterOrEqual(t, e.X, 0.0)
			assert.Less(t, e.X, testArena.Width-50)
			assert.Equal(t, level, e.Level)
		}
		assert.ElementsMatch(t, types, keys(seen), "level %d", level)
	}
}

func TestSpawner_LevelFourOverrideIsFrequent(t *testing.T) {
	s := newTestSpawner(0, 6, 5)
	basic := 0
	const trials = 10000
	for i, n := 0, trials; i < n; i++ {
		if s.rollRegularType(4) == EnemyBasic {
			basic++
		}
	}
	// override takes r < 0.5, the level 2 and 3 layers claim r < 0.37 before it
	assert.InDelta(t, 0.5, float64(basic)/trials, 0.02)
}

func TestSpawner_WaveAdvance(t *testing.T) {
	s := newTestSpawner(0, 6, 1)

	_, advanced := s.Update(1, nil)
	assert.False(t, advanced, "cap not reached")

	s.spawned = 6
	_, advanced = s.Update(1, []*Enemy{NewEnemy(0, 0, EnemyBasic, 1, nil)})
	assert.False(t, advanced, "enemies still alive")

	_, advanced = s.Update(1, nil)
	assert.True(t, advanced)
	status := s.Status()
	assert.Equal(t, 2, status.Wave)
	assert.Equal(t, 0, status.Spawned)
	assert.Equal(t, 8, status.Cap)
}

func TestSpawner_BossWaveAdvancesAfterBossDies(t *testing.T) {
	s := newTestSpawner(0, 6, 1)
	s.JumpToWave(10)

	spawned, _ := s.Update(1, nil)
	require.Len(t, spawned, 1)

	_, advanced := s.Update(1, spawned)
	assert.False(t, advanced)

	_, advanced = s.Update(1, nil)
	assert.True(t, advanced)
	assert.Equal(t, 11, s.Wave())
}

func keys[K comparable, V any](m map[K]V) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
