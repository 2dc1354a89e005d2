package shooter

import (
	"math"
	"time"
)

// Player ship tuning
const (
	PlayerSize      = 40.0
	PlayerHealth    = 100.0
	playerBaseSpeed = 5.0
	playerBaseShot  = 250 * time.Millisecond
	playerMinShot   = 50 * time.Millisecond

	maxMainShots     = 5
	maxDiagonalPairs = 5
	maxBounceShots   = 3
	multiShotSpacing = 12.0

	healthUpgradeMax  = 20.0
	healthUpgradeHeal = 50.0
)

// bounceAngles are the firing angles of the bounce shots in degrees, in emission order
var bounceAngles = [maxBounceShots]float64{-90, -60, -120}

// Upgrades are the permanent upgrade levels collected in a session.
// Levels are never capped here; each effect saturates where it is used.
type Upgrades struct {
	Speed     int
	RapidFire int
	Shield    int
	MultiShot int
	Diagonal  int
	Bounce    int
}

// Player is the ship controlled by the user
type Player struct {
	Body

	Health    float64
	MaxHealth float64

	// Derived from upgrades every tick
	Speed         float64
	ShootCooldown time.Duration

	Upgrades Upgrades
	Frame    int

	canShoot bool
	lastShot time.Time
}

// NewPlayer creates a player at the given position with full health
func NewPlayer(x, y float64) *Player {
	p := &Player{
		Body:      Body{X: x, Y: y, Width: PlayerSize, Height: PlayerSize},
		Health:    PlayerHealth,
		MaxHealth: PlayerHealth,
		canShoot:  true,
	}
	p.applyUpgrades()
	return p
}

// CanShoot reports whether the fire gate is open
func (p *Player) CanShoot() bool {
	return p.canShoot
}

// Shielded reports whether at least one shield level is active
func (p *Player) Shielded() bool {
	return p.Upgrades.Shield > 0
}

// Update applies input for one tick and returns the projectiles fired
func (p *Player) Update(in Input, now time.Time, arena Arena) []*Projectile {
	p.applyUpgrades()

	if anyPressed(in, KeyArrowLeft, KeyA) {
		p.X = arena.clampX(p.X-p.Speed, p.Width)
	}
	if anyPressed(in, KeyArrowRight, KeyD) {
		p.X = arena.clampX(p.X+p.Speed, p.Width)
	}
	if anyPressed(in, KeyArrowUp, KeyW) {
		p.Y = arena.clampY(p.Y-p.Speed, p.Height)
	}
	if anyPressed(in, KeyArrowDown, KeyS) {
		p.Y = arena.clampY(p.Y+p.Speed, p.Height)
	}

	var shots []*Projectile
	if in.Pressed(KeySpace) && p.canShoot {
		shots = p.volley()
		p.canShoot = false
		p.lastShot = now
	}

	p.Frame++

	if !p.canShoot && now.Sub(p.lastShot) > p.ShootCooldown {
		p.canShoot = true
	}
	return shots
}

func (p *Player) applyUpgrades() {
	p.Speed = playerBaseSpeed + float64(p.Upgrades.Speed)*0.8
	p.ShootCooldown = max(playerMinShot, playerBaseShot-time.Duration(p.Upgrades.RapidFire)*50*time.Millisecond)
}

// volley builds the compound shot: main shots, diagonal pairs and bounce shots
func (p *Player) volley() []*Projectile {
	var shots []*Projectile

	center := p.X + p.Width/2
	count := min(1+p.Upgrades.MultiShot, maxMainShots)
	if count > 1 {
		startX := center - float64(count-1)*multiShotSpacing/2
		for i, n := 0, count; i < n; i++ {
			shots = append(shots, NewStraightProjectile(startX+float64(i)*multiShotSpacing, p.Y, DirUp))
		}
	} else {
		shots = append(shots, NewStraightProjectile(center, p.Y, DirUp))
	}

	for i := 1; i <= min(p.Upgrades.Diagonal, maxDiagonalPairs); i++ {
		strength := float64(i) * 0.25
		shots = append(shots,
			NewDiagonalProjectile(p.X+p.Width/4, p.Y, -strength, -1),
			NewDiagonalProjectile(p.X+p.Width*3/4, p.Y, strength, -1),
		)
	}

	for i, n := 0, min(p.Upgrades.Bounce, maxBounceShots); i < n; i++ {
		rad := bounceAngles[i] * math.Pi / 180
		shots = append(shots, NewBounceProjectile(center, p.Y, math.Cos(rad)*3, math.Sin(rad)*8))
	}

	return shots
}

// TakeDamage applies incoming damage after shield reduction and returns the amount applied.
// A shield never reduces a hit below 1.
func (p *Player) TakeDamage(damage float64) float64 {
	if p.Upgrades.Shield > 0 {
		damage = math.Max(1, damage-float64(p.Upgrades.Shield)*2)
	}
	p.Health = math.Max(0, p.Health-damage)
	return damage
}

// Heal restores health up to the maximum
func (p *Player) Heal(amount float64) {
	p.Health = math.Min(p.MaxHealth, p.Health+amount)
}

// UpgradeHealth raises maximum health and heals
func (p *Player) UpgradeHealth() {
	p.MaxHealth += healthUpgradeMax
	p.Heal(healthUpgradeHeal)
}

// Dead reports whether the player has run out of health
func (p *Player) Dead() bool {
	return p.Health <= 0
}
