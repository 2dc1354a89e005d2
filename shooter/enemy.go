package shooter

import (
	"math"
	"time"
)

// DefaultDropChance is the probability that a destroyed enemy drops a powerup
const DefaultDropChance = 0.15

// hitFlashTicks is how long an enemy renders in the flash colour after a hit
const hitFlashTicks = 6

// Enemy is a hostile ship, regular or boss
type Enemy struct {
	Body

	Type    EnemyType
	Level   int // Game level at spawn, used once for scaling
	Health  float64
	Damage  float64
	Speed   float64
	Color   string
	Pattern MovePattern
	IsBoss  bool

	// Shooting
	CanShoot      bool
	ShootCooldown time.Duration
	lastShot      time.Time

	// Frame is the animation tick counter that drives movement and boss schedules
	Frame int

	// DropPowerUp is decided when the enemy takes lethal damage
	DropPowerUp bool
	DropChance  float64

	// FlashTicks counts down after each hit
	FlashTicks int

	// Wave boss movement, set once by the spawner
	Enhanced         bool
	SpiralRadius     float64
	SpiralAngle      float64
	WeavingAmplitude float64
	WeavingSpeed     float64

	// originalSpeed is captured on the first speed burst and reused afterwards
	originalSpeed float64

	actions actionQueue
	rng     *Rand

	// removed marks an enemy taken out without a kill (ram or bomb)
	removed bool
}

// NewEnemy creates an enemy of the given type with level scaling applied
func NewEnemy(x, y float64, enemyType EnemyType, level int, rng *Rand) *Enemy {
	cfg := GetEnemyTypeConfig(enemyType)
	stats := ScaleStats(cfg, level)
	if rng == nil {
		rng = NewRand(0)
	}

	return &Enemy{
		Body:          Body{X: x, Y: y, Width: cfg.Size, Height: cfg.Size},
		Type:          cfg.Type,
		Level:         level,
		Health:        stats.Health,
		Damage:        stats.Damage,
		Speed:         stats.Speed,
		Color:         cfg.Color,
		Pattern:       cfg.Pattern,
		IsBoss:        cfg.IsBoss,
		CanShoot:      cfg.CanShoot,
		ShootCooldown: stats.ShootCooldown,
		DropChance:    DefaultDropChance,
		rng:           rng,
	}
}

// MaxHealth recomputes the scaled maximum health from the type table
func (e *Enemy) MaxHealth() float64 {
	return ScaleStats(GetEnemyTypeConfig(e.Type), e.Level).Health
}

// HealthFraction returns current health as a share of MaxHealth
func (e *Enemy) HealthFraction() float64 {
	maxHealth := e.MaxHealth()
	if maxHealth <= 0 {
		return 0
	}
	return math.Max(0, e.Health/maxHealth)
}

// Alive reports whether the enemy still has health left
func (e *Enemy) Alive() bool {
	return e.Health > 0
}

// PendingActions returns the number of queued timed actions
func (e *Enemy) PendingActions() int {
	return len(e.actions)
}

// TakeDamage applies damage and reports whether it was lethal.
// The powerup drop is rolled once, at the lethal hit.
func (e *Enemy) TakeDamage(damage float64) bool {
	e.Health -= damage
	e.FlashTicks = hitFlashTicks

	if e.Health <= 0 {
		e.DropPowerUp = e.rng.Chance(e.DropChance)
		return true
	}
	return false
}

// Update advances the enemy one tick and returns the projectiles it fired
func (e *Enemy) Update(now time.Time, arena Arena) []*Projectile {
	e.move(arena)
	e.Frame++
	if e.FlashTicks > 0 {
		e.FlashTicks--
	}

	var shots []*Projectile
	if e.IsBoss {
		shots = append(shots, e.runBossScript(now, arena)...)
	}

	if e.CanShoot && now.Sub(e.lastShot) > e.ShootCooldown {
		shots = append(shots, e.shoot())
		e.lastShot = now
	}

	return append(shots, e.actions.runDue(now, e)...)
}

// shoot fires the regular cooldown shot straight down from the enemy's nose
func (e *Enemy) shoot() *Projectile {
	x := e.X + e.Width/2
	y := e.Y + e.Height
	if e.IsBoss {
		return NewBossShot(x, y, 0, GetWeaponConfig(KindBossShot).Speed)
	}
	return NewStraightProjectile(x, y, DirDown)
}

func (e *Enemy) move(arena Arena) {
	if e.Enhanced {
		e.moveEnhanced(arena)
	} else {
		e.moveStandard()
	}
	e.X = arena.clampX(e.X, e.Width)
}

func (e *Enemy) moveStandard() {
	f := float64(e.Frame)
	switch e.Pattern {
	case PatternStraight:
		e.Y += e.Speed
	case PatternZigzag:
		e.Y += e.Speed
		e.X += math.Sin(f*0.1) * 2
	case PatternCircular:
		e.Y += e.Speed * 0.5
		e.X += math.Cos(f*0.05) * 3
	}
}

func (e *Enemy) moveEnhanced(arena Arena) {
	f := float64(e.Frame)
	switch e.Pattern {
	case PatternCircular:
		e.Y += e.Speed * 0.4
		radius := 80 + math.Sin(f*0.02)*30
		e.X += math.Cos(f*0.06) * radius * 0.05
	case PatternZigzag:
		e.Y += e.Speed * (1 + math.Sin(f*0.05)*0.5)
		amplitude := 4 + math.Cos(f*0.03)*2
		e.X += math.Sin(f*0.15) * amplitude
	case PatternSpiral:
		e.SpiralRadius = math.Max(5, e.SpiralRadius+0.3)
		e.SpiralAngle += 0.1
		centerX := arena.Width / 2
		e.X = centerX + math.Cos(e.SpiralAngle)*e.SpiralRadius - e.Width/2
		e.Y += e.Speed * 0.6
	case PatternWeaving:
		e.Y += e.Speed * 0.7
		waveA := math.Sin(f*e.WeavingSpeed) * e.WeavingAmplitude
		waveB := math.Cos(f*e.WeavingSpeed*1.7) * e.WeavingAmplitude * 0.6
		e.X += (waveA + waveB) * 0.02
	default:
		e.moveStandard()
	}
}

// enhance switches a wave boss to the enhanced movement set
func (e *Enemy) enhance(pattern MovePattern) {
	e.Pattern = pattern
	e.Enhanced = true

	switch pattern {
	case PatternSpiral:
		e.SpiralRadius = 0
		e.SpiralAngle = 0
	case PatternWeaving:
		e.WeavingAmplitude = 100
		e.WeavingSpeed = 0.1
	}
}
