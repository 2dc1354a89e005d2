package shooter

import (
	"time"
)

// Boss schedules, in animation ticks
const (
	fastBurstEvery  = 120
	fastVolleyEvery = 60
	megaSweepEvery  = 150
	megaStormEvery  = 90

	fastBurstDuration = 1000 * time.Millisecond
	fastVolleyStagger = 100 * time.Millisecond
	megaStormStagger  = 50 * time.Millisecond

	beamSpacing = 30.0
	stormShots  = 8
)

// heavyBurst holds the direction vectors of the heavy boss burst
var heavyBurst = [][2]float64{
	{0, 1},
	{-0.5, 1},
	{0.5, 1},
	{-1, 0.5},
	{1, 0.5},
}

// timedAction is a deferred effect bound to one enemy
type timedAction struct {
	due time.Time
	run func(e *Enemy) []*Projectile
}

// actionQueue holds an enemy's pending timed actions in scheduling order
type actionQueue []timedAction

func (q *actionQueue) schedule(due time.Time, run func(e *Enemy) []*Projectile) {
	*q = append(*q, timedAction{due: due, run: run})
}

// runDue runs every action whose time has come. Actions only apply while the enemy is alive.
func (q *actionQueue) runDue(now time.Time, e *Enemy) []*Projectile {
	if len(*q) == 0 {
		return nil
	}
	if !e.Alive() {
		*q = nil
		return nil
	}

	var shots []*Projectile
	pending := (*q)[:0]
	for _, a := range *q {
		if now.Before(a.due) {
			pending = append(pending, a)
			continue
		}
		shots = append(shots, a.run(e)...)
	}
	*q = pending
	return shots
}

// runBossScript evaluates the boss attack routine for the current frame
func (e *Enemy) runBossScript(now time.Time, arena Arena) []*Projectile {
	switch e.Type {
	case EnemyBossHeavy:
		if e.CanShoot && now.Sub(e.lastShot) > e.ShootCooldown {
			e.lastShot = now
			return e.heavyAttack()
		}
	case EnemyBossFast:
		if e.Frame%fastBurstEvery == 0 {
			e.speedBurst(now)
		}
		if e.CanShoot && e.Frame%fastVolleyEvery == 0 {
			e.rapidFire(now)
		}
	case EnemyBossMega:
		var shots []*Projectile
		if e.Frame%megaSweepEvery == 0 {
			shots = append(shots, e.laserSweep(arena)...)
		}
		if e.Frame%megaStormEvery == 0 {
			e.projectileStorm(now, arena)
		}
		return shots
	}
	return nil
}

func (e *Enemy) heavyAttack() []*Projectile {
	shots := make([]*Projectile, 0, len(heavyBurst))
	for _, dir := range heavyBurst {
		p := NewBossShot(e.X+e.Width/2, e.Y+e.Height, dir[0]*4, dir[1]*4)
		p.Width = 6
		p.Height = 12
		shots = append(shots, p)
	}
	return shots
}

func (e *Enemy) speedBurst(now time.Time) {
	if e.originalSpeed == 0 {
		e.originalSpeed = e.Speed
	}
	e.Speed = e.originalSpeed * 3

	e.actions.schedule(now.Add(fastBurstDuration), func(e *Enemy) []*Projectile {
		e.Speed = e.originalSpeed
		return nil
	})
}

func (e *Enemy) rapidFire(now time.Time) {
	for i, n := 0, 3; i < n; i++ {
		e.actions.schedule(now.Add(time.Duration(i)*fastVolleyStagger), func(e *Enemy) []*Projectile {
			x := e.X + e.Width/2 + (e.rng.Float64()-0.5)*20
			return []*Projectile{NewBossShot(x, e.Y+e.Height, 0, GetWeaponConfig(KindBossShot).Speed)}
		})
	}
}

func (e *Enemy) laserSweep(arena Arena) []*Projectile {
	var beams []*Projectile
	for x := 0.0; x < arena.Width; x += beamSpacing {
		beams = append(beams, NewBeam(x, e.Y+e.Height, arena.Height))
	}
	return beams
}

func (e *Enemy) projectileStorm(now time.Time, arena Arena) {
	for i, n := 0, stormShots; i < n; i++ {
		e.actions.schedule(now.Add(time.Duration(i)*megaStormStagger), func(e *Enemy) []*Projectile {
			x := e.rng.Float64() * arena.Width
			return []*Projectile{NewBossShot(x, e.Y+e.Height, 0, GetWeaponConfig(KindBossShot).Speed)}
		})
	}
}
