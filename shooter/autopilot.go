package shooter

import (
	"math"
)

// Autopilot tuning
const (
	autopilotDodgeRange   = 160.0 // how far above the ship hostile shots are considered
	autopilotDodgeMargin  = 12.0
	autopilotPowerUpRange = 260.0
)

// Autopilot is an Input that plays the session it is attached to.
// It keeps firing, dodges hostile shots and enemies about to ram, collects
// nearby powerups and otherwise lines up under the lowest enemy.
// The decision is taken once per tick on the first Pressed call.
type Autopilot struct {
	g     *Game
	keys  KeyState
	tick  uint64
	valid bool
}

// NewAutopilot creates an autopilot for g
func NewAutopilot(g *Game) *Autopilot {
	return &Autopilot{g: g, keys: make(KeyState)}
}

// Pressed implements Input
func (a *Autopilot) Pressed(k Key) bool {
	if !a.valid || a.tick != a.g.tick {
		a.decide()
		a.tick = a.g.tick
		a.valid = true
	}
	return a.keys[k]
}

func (a *Autopilot) decide() {
	clear(a.keys)
	a.keys[KeySpace] = true

	pl := a.g.player
	cx := pl.X + pl.Width/2

	if threat, ok := a.nearestThreat(); ok {
		// move away from the threat, or through it when cornered
		right := threat <= cx
		if right && pl.X+pl.Width+pl.Speed > a.g.arena.Width {
			right = false
		} else if !right && pl.X-pl.Speed < 0 {
			right = true
		}
		if right {
			a.keys[KeyArrowRight] = true
		} else {
			a.keys[KeyArrowLeft] = true
		}
		return
	}

	target, ok := a.powerUpTarget()
	if !ok {
		target, ok = a.enemyTarget()
	}
	if !ok {
		return
	}
	a.steer(cx, target, pl.Speed)
}

func (a *Autopilot) steer(cx, target, speed float64) {
	dx := target - cx
	if math.Abs(dx) <= speed {
		return
	}
	if dx < 0 {
		a.keys[KeyArrowLeft] = true
	} else {
		a.keys[KeyArrowRight] = true
	}
}

// nearestThreat returns the centre X of the closest hostile object above the ship
func (a *Autopilot) nearestThreat() (float64, bool) {
	pl := a.g.player
	danger := Rect{
		X:      pl.X - autopilotDodgeMargin,
		Y:      pl.Y - autopilotDodgeRange,
		Width:  pl.Width + 2*autopilotDodgeMargin,
		Height: pl.Height + autopilotDodgeRange,
	}

	best, bestY, found := 0.0, math.Inf(-1), false
	consider := func(b Body) {
		r := b.Bounds()
		if !r.Overlaps(danger) {
			return
		}
		if bottom := r.Y + r.Height; bottom > bestY {
			best, bestY, found = r.CenterX(), bottom, true
		}
	}

	for _, p := range a.g.projectiles {
		if p.Hostile() {
			consider(p.Body)
		}
	}
	for _, p := range a.g.boss {
		consider(p.Body)
	}
	for _, e := range a.g.enemies {
		consider(e.Body)
	}
	return best, found
}

// powerUpTarget returns the centre X of the closest powerup falling towards the ship
func (a *Autopilot) powerUpTarget() (float64, bool) {
	pl := a.g.player
	best, bestDist, found := 0.0, math.Inf(1), false
	for _, pu := range a.g.powerUps {
		dist := pl.Y - pu.Y
		if dist < 0 || dist > autopilotPowerUpRange {
			continue
		}
		if dist < bestDist {
			best, bestDist, found = pu.Bounds().CenterX(), dist, true
		}
	}
	return best, found
}

// enemyTarget returns the centre X of the lowest enemy
func (a *Autopilot) enemyTarget() (float64, bool) {
	var target *Enemy
	for _, e := range a.g.enemies {
		if !e.Alive() {
			continue
		}
		if target == nil || e.Y > target.Y {
			target = e
		}
	}
	if target == nil {
		return 0, false
	}
	return target.Bounds().CenterX(), true
}
