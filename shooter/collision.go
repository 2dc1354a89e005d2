package shooter

// checkCollisions resolves every collision category in a fixed order.
// Each pass marks hits while iterating and filters the collections once at the end,
// so nothing is skipped or visited twice.
func (g *Game) checkCollisions() {
	g.collidePlayerEnemies()
	g.projectiles = g.collideShots(g.projectiles, pointsKill)
	g.projectiles = g.collideHostileShots(g.projectiles)
	g.diagonal = g.collideShots(g.diagonal, pointsKill)
	g.bounce = g.collideShots(g.bounce, pointsBounceKill)
	g.collectPowerUps()
	g.boss = g.collideHostileShots(g.boss)
}

// usable reports whether an enemy can still be hit this tick
func usable(e *Enemy) bool {
	return !e.removed && e.Alive()
}

// pruneEnemies drops enemies that were killed or removed during a pass
func (g *Game) pruneEnemies() {
	g.enemies = filter(g.enemies, usable)
}

// collidePlayerEnemies handles enemies ramming the player.
// A rammed enemy is removed without score or drop.
func (g *Game) collidePlayerEnemies() {
	for _, e := range g.enemies {
		if !usable(e) || !g.player.CollidesWith(&e.Body) {
			continue
		}
		g.hitPlayer(e.Damage, KindNone, e.Type)
		e.removed = true
	}
	g.pruneEnemies()
}

// collideShots resolves friendly shots against enemies. Each shot is consumed by the
// first live enemy it overlaps, in collection order.
func (g *Game) collideShots(shots []*Projectile, points int) []*Projectile {
	if len(shots) == 0 || len(g.enemies) == 0 {
		return shots
	}

	g.grid.rebuild(g.enemies)
	consumed := make(map[*Projectile]bool)

	for _, p := range shots {
		if p.Hostile() {
			continue
		}
		for _, idx := range g.grid.query(p.Bounds()) {
			e := g.enemies[idx]
			if !usable(e) || !p.CollidesWith(&e.Body) {
				continue
			}
			consumed[p] = true
			if e.TakeDamage(p.Damage) {
				g.killEnemy(e, points, p.Kind)
			}
			break
		}
	}

	g.pruneEnemies()
	return filter(shots, func(p *Projectile) bool { return !consumed[p] })
}

// collideHostileShots resolves hostile projectiles against the player.
// Beams persist through contact; every other projectile is consumed.
func (g *Game) collideHostileShots(shots []*Projectile) []*Projectile {
	if len(shots) == 0 {
		return shots
	}

	consumed := make(map[*Projectile]bool)
	for _, p := range shots {
		if !p.Hostile() || !p.CollidesWith(&g.player.Body) {
			continue
		}
		g.hitPlayer(p.Damage, p.Kind, "")
		if p.Kind != KindBeam {
			consumed[p] = true
		}
	}
	return filter(shots, func(p *Projectile) bool { return !consumed[p] })
}

// collectPowerUps applies every powerup the player touches exactly once
func (g *Game) collectPowerUps() {
	collected := make(map[*PowerUp]bool)
	for _, pu := range g.powerUps {
		if !g.player.CollidesWith(&pu.Body) {
			continue
		}
		collected[pu] = true
		bomb := pu.Apply(g.player)
		g.score += pointsPowerUp
		g.stats.PowerUpsCollected++
		g.emit(Event{Type: EventPowerUpCollected, PowerUp: pu.Type, Points: pointsPowerUp, X: pu.X, Y: pu.Y})

		if bomb {
			g.detonateBomb()
		}
	}
	g.powerUps = filter(g.powerUps, func(pu *PowerUp) bool { return !collected[pu] })
}

// detonateBomb destroys every live enemy without drops
func (g *Game) detonateBomb() {
	count := 0
	for _, e := range g.enemies {
		if !usable(e) {
			continue
		}
		e.removed = true
		count++
		if e.IsBoss {
			g.stats.BossesKilled++
		}
	}
	g.pruneEnemies()

	points := count * pointsBombPerKill
	g.score += points
	g.stats.EnemiesKilled += count
	g.stats.BombsDetonated++

	g.log.Debug("bomb detonated", "destroyed", count)
	g.emit(Event{Type: EventBombDetonated, Count: count, Points: points})
}

// killEnemy scores a kill and rolls the drop decided at the lethal hit
func (g *Game) killEnemy(e *Enemy, points int, weapon ProjectileKind) {
	g.score += points
	g.stats.EnemiesKilled++
	if e.IsBoss {
		g.stats.BossesKilled++
		g.log.Info("boss destroyed", "type", e.Type, "level", e.Level)
	}
	g.emit(Event{Type: EventEnemyKilled, Enemy: e.Type, Weapon: weapon, Points: points, X: e.X, Y: e.Y})

	if !e.DropPowerUp {
		return
	}
	t := g.drops.Roll(e.Type)
	g.powerUps = append(g.powerUps, NewPowerUp(e.X, e.Y, t))
	g.stats.PowerUpsDropped++
	if t == PowerUpBounce {
		g.log.Debug("bounce upgrade dropped", "enemy", e.Type)
	}
	g.emit(Event{Type: EventPowerUpDropped, Enemy: e.Type, PowerUp: t, X: e.X, Y: e.Y})
}

// hitPlayer applies damage to the player and reports it
func (g *Game) hitPlayer(damage float64, weapon ProjectileKind, source EnemyType) {
	applied := g.player.TakeDamage(damage)
	g.stats.DamageTaken += applied
	g.emit(Event{Type: EventPlayerHit, Enemy: source, Weapon: weapon, Damage: applied, X: g.player.X, Y: g.player.Y})
}
