package shooter

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var (
	epoch     = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	testArena = Arena{Width: 800, Height: 600}
)

func TestScaleStats(t *testing.T) {
	tests := []struct {
		name         string
		enemy        EnemyType
		level        int
		wantHealth   float64
		wantDamage   float64
		wantSpeed    float64
		wantCooldown time.Duration
	}{
		{"basic level 1", EnemyBasic, 1, 20, 10, 2, 2000 * time.Millisecond},
		{"basic level 5", EnemyBasic, 5, 44, 18, 2.4, 2000 * time.Millisecond},
		{"shooter level 2 keeps cooldown", EnemyShooter, 2, 19, 14, 1.5, 2000 * time.Millisecond},
		{"shooter level 4", EnemyShooter, 4, 28, 19, 1.65, 1600 * time.Millisecond},
		{"shooter cooldown floor", EnemyShooter, 20, 100, 57, 4.05, 500 * time.Millisecond},
		{"tank level 1", EnemyTank, 1, 50, 15, 1, 2000 * time.Millisecond},
		{"boss heavy level 1", EnemyBossHeavy, 1, 200, 25, 0.5, 1000 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScaleStats(GetEnemyTypeConfig(tt.enemy), tt.level)
			assert.Equal(t, tt.wantHealth, got.Health)
			assert.Equal(t, tt.wantDamage, got.Damage)
			assert.InDelta(t, tt.wantSpeed, got.Speed, 1e-9)
			assert.InDelta(t, tt.wantCooldown.Milliseconds(), got.ShootCooldown.Milliseconds(), 1)
		})
	}
}

func TestScaleStats_NonShooterCooldownUntouched(t *testing.T) {
	got := ScaleStats(GetEnemyTypeConfig(EnemyFast), 10)
	assert.Equal(t, defaultShootCooldown, got.ShootCooldown)
}

func TestEnemy_FullHealthAtSpawn(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		enemyType := rapid.SampledFrom(EnemyTypes()).Draw(t, "type")
		level := rapid.IntRange(1, 60).Draw(t, "level")

		e := NewEnemy(0, 0, enemyType, level, NewRand(1))
		again := ScaleStats(GetEnemyTypeConfig(enemyType), level)

		if e.Health != again.Health || e.Damage != again.Damage {
			t.Fatalf("scaling is not deterministic: %v/%v vs %v/%v", e.Health, e.Damage, again.Health, again.Damage)
		}
		if e.HealthFraction() != 1 {
			t.Fatalf("health fraction at spawn = %v, want 1", e.HealthFraction())
		}
	})
}

func TestEnemy_TwoHitsKillLevelOneBasic(t *testing.T) {
	e := NewEnemy(0, 0, EnemyBasic, 1, NewRand(12345))
	require.Equal(t, 20.0, e.Health)

	assert.False(t, e.TakeDamage(10))
	assert.Equal(t, 10.0, e.Health)
	assert.True(t, e.Alive())

	assert.True(t, e.TakeDamage(10))
	assert.Equal(t, 0.0, e.Health)
	assert.False(t, e.Alive())
}

func TestEnemy_DropRolledAtLethalHit(t *testing.T) {
	e := NewEnemy(0, 0, EnemyBasic, 1, NewRand(12345))
	e.DropChance = 1

	e.TakeDamage(5)
	assert.False(t, e.DropPowerUp)

	e.TakeDamage(15)
	assert.True(t, e.DropPowerUp)

	never := NewEnemy(0, 0, EnemyBasic, 1, NewRand(12345))
	never.DropChance = 0
	never.TakeDamage(100)
	assert.False(t, never.DropPowerUp)
}

func TestEnemy_StandardMovement(t *testing.T) {
	e := NewEnemy(100, 0, EnemyBasic, 1, NewRand(1))
	e.Update(epoch, testArena)
	assert.Equal(t, 100.0, e.X)
	assert.Equal(t, 2.0, e.Y)
	assert.Equal(t, 1, e.Frame)

	// zigzag uses the frame counter before it is incremented
	z := NewEnemy(100, 0, EnemyFast, 1, NewRand(1))
	z.Frame = 10
	z.Update(epoch, testArena)
	assert.InDelta(t, 100+1.682941969615793, z.X, 1e-9)
	assert.Equal(t, 4.0, z.Y)
	assert.Equal(t, 11, z.Frame)

	// circular: the heavy boss uses it outside boss waves
	c := NewEnemy(300, 0, EnemyBossHeavy, 1, NewRand(1))
	c.Frame = 7
	c.move(testArena)
	assert.InDelta(t, 300+math.Cos(7*0.05)*3, c.X, 1e-9)
	assert.InDelta(t, 300+2.818118, c.X, 1e-6)
	assert.InDelta(t, 0.25, c.Y, 1e-12)
}

func TestEnemy_EnhancedMovement(t *testing.T) {
	tests := []struct {
		pattern MovePattern
		dx, dy  float64
	}{
		{PatternCircular, 3.843479, 0.2},
		{PatternZigzag, 5.166426, 0.585724},
		{PatternWeaving, 1.734427, 0.35},
	}

	for _, tt := range tests {
		t.Run(string(tt.pattern), func(t *testing.T) {
			e := NewEnemy(300, 100, EnemyBossHeavy, 1, NewRand(1))
			e.enhance(tt.pattern)
			e.Frame = 7

			e.move(testArena)
			assert.InDelta(t, tt.dx, e.X-300, 1e-6)
			assert.InDelta(t, tt.dy, e.Y-100, 1e-6)
		})
	}
}

func TestEnemy_EnhancedMovementFormulas(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		frame := rapid.IntRange(0, 5000).Draw(t, "frame")
		f := float64(frame)
		speed := 0.5

		c := NewEnemy(300, 0, EnemyBossHeavy, 1, NewRand(1))
		c.enhance(PatternCircular)
		c.Frame = frame
		c.move(Arena{Width: 1e6, Height: 600})
		assert.InDelta(t, math.Cos(f*0.06)*(80+math.Sin(f*0.02)*30)*0.05, c.X-300, 1e-9)
		assert.InDelta(t, speed*0.4, c.Y, 1e-12)

		z := NewEnemy(300, 0, EnemyBossHeavy, 1, NewRand(1))
		z.enhance(PatternZigzag)
		z.Frame = frame
		z.move(Arena{Width: 1e6, Height: 600})
		assert.InDelta(t, math.Sin(f*0.15)*(4+math.Cos(f*0.03)*2), z.X-300, 1e-9)
		assert.InDelta(t, speed*(1+math.Sin(f*0.05)*0.5), z.Y, 1e-12)

		w := NewEnemy(300, 0, EnemyBossHeavy, 1, NewRand(1))
		w.enhance(PatternWeaving)
		w.Frame = frame
		w.move(Arena{Width: 1e6, Height: 600})
		waves := math.Sin(f*0.1)*100 + math.Cos(f*0.1*1.7)*100*0.6
		assert.InDelta(t, waves*0.02, w.X-300, 1e-9)
		assert.InDelta(t, speed*0.7, w.Y, 1e-12)
	})
}

func TestEnemy_ClampedHorizontallyOnly(t *testing.T) {
	e := NewEnemy(-20, 700, EnemyBasic, 1, NewRand(1))
	e.Update(epoch, testArena)
	assert.Equal(t, 0.0, e.X)
	assert.Equal(t, 702.0, e.Y)

	e.X = testArena.Width
	e.Update(epoch, testArena)
	assert.Equal(t, testArena.Width-e.Width, e.X)
}

func TestEnemy_SpiralRecentres(t *testing.T) {
	e := NewEnemy(0, 0, EnemyBossHeavy, 1, NewRand(1))
	e.enhance(PatternSpiral)

	e.move(testArena)
	assert.Equal(t, 5.0, e.SpiralRadius)
	assert.InDelta(t, 0.1, e.SpiralAngle, 1e-12)
	assert.InDelta(t, 400+5*0.9950041652780258-40, e.X, 1e-9)
	assert.InDelta(t, 0.3, e.Y, 1e-12)

	e.move(testArena)
	assert.InDelta(t, 5.3, e.SpiralRadius, 1e-12)
}

func TestEnemy_ShooterFiresDownOnCooldown(t *testing.T) {
	e := NewEnemy(100, 100, EnemyShooter, 1, NewRand(1))

	shots := e.Update(epoch, testArena)
	require.Len(t, shots, 1)
	assert.Equal(t, KindStraight, shots[0].Kind)
	assert.Equal(t, DirDown, shots[0].Direction)
	assert.True(t, shots[0].Hostile())
	assert.Equal(t, e.X+e.Width/2, shots[0].X)
	assert.Equal(t, e.Y+e.Height, shots[0].Y)

	assert.Empty(t, e.Update(epoch.Add(time.Second), testArena))
	assert.Len(t, e.Update(epoch.Add(2001*time.Millisecond), testArena), 1)
}

func TestParseEnemyType(t *testing.T) {
	got, err := ParseEnemyType("boss_mega")
	require.NoError(t, err)
	assert.Equal(t, EnemyBossMega, got)
	assert.True(t, got.IsBoss())

	_, err = ParseEnemyType("dragon")
	assert.ErrorIs(t, err, ErrUnknownEnemyType)
	assert.False(t, EnemyType("dragon").IsBoss())
}
