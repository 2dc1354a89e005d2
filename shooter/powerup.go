package shooter

import (
	"fmt"
	"math"
)

// PowerUpType identifies the effect of a powerup
type PowerUpType string

const (
	PowerUpSpeed     PowerUpType = "speed"
	PowerUpRapidFire PowerUpType = "rapidfire"
	PowerUpHealth    PowerUpType = "health"
	PowerUpShield    PowerUpType = "shield"
	PowerUpMultiShot PowerUpType = "multishot"
	PowerUpDiagonal  PowerUpType = "diagonal"
	PowerUpBounce    PowerUpType = "bounce"
	PowerUpBomb      PowerUpType = "bomb"
)

const (
	powerUpSize  = 20.0
	powerUpSpeed = 2.0
)

// Drop pools
var (
	generalPool  = []PowerUpType{PowerUpSpeed, PowerUpRapidFire, PowerUpHealth, PowerUpShield, PowerUpMultiShot, PowerUpDiagonal}
	bossTierPool = []PowerUpType{PowerUpShield, PowerUpMultiShot, PowerUpDiagonal, PowerUpBomb}
)

// PowerUpInfo is the fixed presentation of a powerup type
type PowerUpInfo struct {
	Color       string
	Symbol      string
	Description string
}

var powerUpInfo = map[PowerUpType]PowerUpInfo{
	PowerUpSpeed:     {Color: "#00ffff", Symbol: ">", Description: "Permanently increases movement speed"},
	PowerUpRapidFire: {Color: "#ff8800", Symbol: "*", Description: "Permanently faster shooting"},
	PowerUpHealth:    {Color: "#ff0080", Symbol: "+", Description: "Restores health & increases max health"},
	PowerUpShield:    {Color: "#8800ff", Symbol: "O", Description: "Permanently stronger armor"},
	PowerUpMultiShot: {Color: "#ffff00", Symbol: "#", Description: "Permanently shoots multiple projectiles"},
	PowerUpDiagonal:  {Color: "#ff00ff", Symbol: "/", Description: "Permanently shoots diagonal projectiles"},
	PowerUpBounce:    {Color: "#00ffff", Symbol: "~", Description: "Projectiles bounce off walls"},
	PowerUpBomb:      {Color: "#ff4400", Symbol: "X", Description: "Destroys all enemies on screen"},
}

// PowerUpTypes lists every powerup type
func PowerUpTypes() []PowerUpType {
	return []PowerUpType{
		PowerUpSpeed, PowerUpRapidFire, PowerUpHealth, PowerUpShield,
		PowerUpMultiShot, PowerUpDiagonal, PowerUpBounce, PowerUpBomb,
	}
}

// ParsePowerUpType validates a powerup type name
func ParsePowerUpType(s string) (PowerUpType, error) {
	t := PowerUpType(s)
	if _, ok := powerUpInfo[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPowerUpType, s)
	}
	return t, nil
}

// Info returns the colour, symbol and description of the type
func (t PowerUpType) Info() PowerUpInfo {
	return powerUpInfo[t]
}

// PowerUp is a collectible that falls from a destroyed enemy
type PowerUp struct {
	Body

	Type        PowerUpType
	Frame       int
	FloatOffset float64
	Rotation    float64
}

// NewPowerUp creates a powerup at the given position
func NewPowerUp(x, y float64, t PowerUpType) *PowerUp {
	return &PowerUp{
		Body: Body{X: x, Y: y, Width: powerUpSize, Height: powerUpSize},
		Type: t,
	}
}

// Info returns the presentation of the powerup's type
func (p *PowerUp) Info() PowerUpInfo {
	return p.Type.Info()
}

// Update moves the powerup down and advances its animation
func (p *PowerUp) Update() {
	p.Y += powerUpSpeed
	p.Frame++
	p.FloatOffset = math.Sin(float64(p.Frame)*0.1) * 2
	p.Rotation = float64(p.Frame) * 0.05
}

// Apply gives the effect to the player. It reports true for a bomb,
// whose effect is carried out by the game.
func (p *PowerUp) Apply(pl *Player) bool {
	switch p.Type {
	case PowerUpSpeed:
		pl.Upgrades.Speed++
	case PowerUpRapidFire:
		pl.Upgrades.RapidFire++
	case PowerUpHealth:
		pl.UpgradeHealth()
	case PowerUpShield:
		pl.Upgrades.Shield++
	case PowerUpMultiShot:
		pl.Upgrades.MultiShot++
	case PowerUpDiagonal:
		pl.Upgrades.Diagonal++
	case PowerUpBounce:
		pl.Upgrades.Bounce++
	case PowerUpBomb:
		return true
	}
	return false
}

// DropTable picks powerup types for destroyed enemies.
// It carries the session-scoped flag for the one-time bounce award.
type DropTable struct {
	rng           *Rand
	bounceDropped bool
}

// NewDropTable creates a drop table using the given random source
func NewDropTable(rng *Rand) *DropTable {
	return &DropTable{rng: rng}
}

// Roll picks the powerup type for an enemy of the given type
func (d *DropTable) Roll(t EnemyType) PowerUpType {
	switch {
	case t == EnemyBossFast && !d.bounceDropped:
		d.bounceDropped = true
		return PowerUpBounce
	case t.IsBoss(), t == EnemyTank:
		return pick(d.rng, bossTierPool)
	default:
		return pick(d.rng, generalPool)
	}
}

// BounceDropped reports whether the bounce upgrade was already awarded this session
func (d *DropTable) BounceDropped() bool {
	return d.bounceDropped
}

// Reset clears the one-time bounce flag
func (d *DropTable) Reset() {
	d.bounceDropped = false
}
