package shooter

import (
	"errors"
)

var (
	ErrUnknownEnemyType   = errors.New("unknown enemy type")
	ErrUnknownPowerUpType = errors.New("unknown powerup type")
)

// EventType identifies what happened in the simulation
type EventType int

const (
	EventSessionStarted EventType = iota
	EventEnemyKilled
	EventPowerUpDropped
	EventPowerUpCollected
	EventBombDetonated
	EventPlayerHit
	EventBossSpawned
	EventWaveAdvanced
	EventLevelUp
	EventGameOver
)

var eventNames = map[EventType]string{
	EventSessionStarted:   "session_started",
	EventEnemyKilled:      "enemy_killed",
	EventPowerUpDropped:   "powerup_dropped",
	EventPowerUpCollected: "powerup_collected",
	EventBombDetonated:    "bomb_detonated",
	EventPlayerHit:        "player_hit",
	EventBossSpawned:      "boss_spawned",
	EventWaveAdvanced:     "wave_advanced",
	EventLevelUp:          "level_up",
	EventGameOver:         "game_over",
}

// String returns the snake_case event name
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// Event is emitted by the game during a tick.
// Only the fields relevant to the event type are set.
type Event struct {
	Type EventType
	Tick uint64

	Enemy   EnemyType
	PowerUp PowerUpType
	Weapon  ProjectileKind

	Damage float64
	Points int
	Count  int

	Score int
	Level int
	Wave  int

	X, Y float64
}

// Listener receives game events synchronously from inside the tick
type Listener interface {
	OnEvent(ev Event)
}

// ListenerFunc adapts a function to a Listener
type ListenerFunc func(ev Event)

// OnEvent implements Listener
func (f ListenerFunc) OnEvent(ev Event) {
	f(ev)
}
