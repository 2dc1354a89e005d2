package shooter

import (
	"fmt"
	"math"
	"time"
)

// EnemyType identifies an enemy's stat table and behaviour
type EnemyType string

const (
	EnemyBasic     EnemyType = "basic"
	EnemyFast      EnemyType = "fast"
	EnemyTank      EnemyType = "tank"
	EnemyShooter   EnemyType = "shooter"
	EnemyBossHeavy EnemyType = "boss_heavy"
	EnemyBossFast  EnemyType = "boss_fast"
	EnemyBossMega  EnemyType = "boss_mega"
)

// MovePattern selects how an enemy moves each tick
type MovePattern string

const (
	PatternStraight MovePattern = "straight"
	PatternZigzag   MovePattern = "zigzag"
	PatternCircular MovePattern = "circular"
	PatternSpiral   MovePattern = "spiral"
	PatternWeaving  MovePattern = "weaving"
)

// EnemyTypeConfig holds the base stats for each enemy type
type EnemyTypeConfig struct {
	Type          EnemyType
	Speed         float64
	Health        float64
	Damage        float64
	Size          float64
	Color         string
	Pattern       MovePattern
	CanShoot      bool
	ShootCooldown time.Duration
	IsBoss        bool
}

const (
	defaultEnemySize     = 35.0
	defaultEnemyColor    = "#ff0000"
	defaultShootCooldown = 2000 * time.Millisecond
	minShootCooldown     = 500 * time.Millisecond
)

// EnemyTypes lists every known enemy type, regular types first
func EnemyTypes() []EnemyType {
	return []EnemyType{
		EnemyBasic, EnemyFast, EnemyTank, EnemyShooter,
		EnemyBossHeavy, EnemyBossFast, EnemyBossMega,
	}
}

// ParseEnemyType validates an enemy type name
func ParseEnemyType(s string) (EnemyType, error) {
	t := EnemyType(s)
	if _, ok := lookupEnemyType(t); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEnemyType, s)
	}
	return t, nil
}

// IsBoss reports whether the type is one of the boss types
func (t EnemyType) IsBoss() bool {
	cfg, ok := lookupEnemyType(t)
	return ok && cfg.IsBoss
}

// GetEnemyTypeConfig returns configuration for an enemy type.
// Unknown types fall back to the basic enemy.
func GetEnemyTypeConfig(enemyType EnemyType) EnemyTypeConfig {
	cfg, ok := lookupEnemyType(enemyType)
	if !ok {
		cfg, _ = lookupEnemyType(EnemyBasic)
	}
	return cfg
}

func lookupEnemyType(enemyType EnemyType) (EnemyTypeConfig, bool) {
	cfg := EnemyTypeConfig{
		Type:          enemyType,
		Speed:         2,
		Health:        20,
		Damage:        10,
		Size:          defaultEnemySize,
		Color:         defaultEnemyColor,
		Pattern:       PatternStraight,
		ShootCooldown: defaultShootCooldown,
	}

	switch enemyType {
	case EnemyBasic:
	case EnemyFast:
		cfg.Speed = 4
		cfg.Health = 10
		cfg.Damage = 8
		cfg.Color = "#ff8800"
		cfg.Pattern = PatternZigzag
	case EnemyTank:
		cfg.Speed = 1
		cfg.Health = 50
		cfg.Damage = 15
		cfg.Size = 45
		cfg.Color = "#8800ff"
	case EnemyShooter:
		cfg.Speed = 1.5
		cfg.Health = 15
		cfg.Damage = 12
		cfg.Color = "#ff0088"
		cfg.CanShoot = true
	case EnemyBossHeavy:
		cfg.Speed = 0.5
		cfg.Health = 200
		cfg.Damage = 25
		cfg.Size = 80
		cfg.Pattern = PatternCircular
		cfg.CanShoot = true
		cfg.ShootCooldown = 1000 * time.Millisecond
		cfg.IsBoss = true
	case EnemyBossFast:
		cfg.Speed = 2
		cfg.Health = 120
		cfg.Damage = 20
		cfg.Size = 60
		cfg.Color = "#ff4400"
		cfg.Pattern = PatternZigzag
		cfg.CanShoot = true
		cfg.ShootCooldown = 800 * time.Millisecond
		cfg.IsBoss = true
	case EnemyBossMega:
		cfg.Speed = 0.3
		cfg.Health = 500
		cfg.Damage = 35
		cfg.Size = 120
		cfg.Color = "#880000"
		cfg.Pattern = PatternCircular
		cfg.CanShoot = true
		cfg.ShootCooldown = 600 * time.Millisecond
		cfg.IsBoss = true
	default:
		return EnemyTypeConfig{}, false
	}
	return cfg, true
}

// ScaledStats is the result of applying level scaling to a base stat table
type ScaledStats struct {
	Health        float64
	Damage        float64
	Speed         float64
	ShootCooldown time.Duration
}

// ScaleStats applies level scaling to base stats.
// It is a pure function of its inputs and is applied exactly once per enemy.
func ScaleStats(base EnemyTypeConfig, level int) ScaledStats {
	l := float64(level)
	s := ScaledStats{
		Health:        math.Floor(base.Health * (1 + (l-1)*0.3)),
		Damage:        math.Floor(base.Damage * (1 + (l-1)*0.2)),
		Speed:         base.Speed,
		ShootCooldown: base.ShootCooldown,
	}
	if level > 3 {
		s.Speed = base.Speed * (1 + (l-3)*0.1)
	}
	if base.CanShoot && level > 2 {
		scaled := time.Duration(float64(base.ShootCooldown) * (1 - (l-2)*0.1))
		s.ShootCooldown = max(minShootCooldown, scaled)
	}
	return s
}
