package shooter

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"oldskool/clock"
	"oldskool/config"
)

// Scoring
const (
	pointsKill        = 10
	pointsBounceKill  = 15
	pointsPowerUp     = 5
	pointsBombPerKill = 20
	pointsPerLevel    = 100
)

// Stats are session counters for debugging and balancing
type Stats struct {
	Ticks             uint64
	ShotsFired        int
	EnemiesKilled     int
	BossesKilled      int
	PowerUpsDropped   int
	PowerUpsCollected int
	BombsDetonated    int
	DamageTaken       float64

	// Live collection sizes at the time of the call
	Enemies     int
	Projectiles int
	PowerUps    int
}

// Game owns every entity of a session and advances them one tick per Update
type Game struct {
	cfg   config.Config
	arena Arena
	clock *clock.Pausable
	rng   *Rand
	log   *slog.Logger

	baseLog   *slog.Logger
	sessionID uuid.UUID

	player      *Player
	enemies     []*Enemy
	projectiles []*Projectile
	diagonal    []*Projectile
	bounce      []*Projectile
	boss        []*Projectile
	powerUps    []*PowerUp

	spawner *Spawner
	drops   *DropTable
	grid    *grid

	score int
	level int

	running bool
	paused  bool
	over    bool

	tick  uint64
	stats Stats

	listeners []Listener
}

// NewGame creates a new game session.
// A nil clock uses the system clock and a nil logger uses slog.Default.
// A zero seed is replaced by one drawn from the current time; Config reports the seed in use.
func NewGame(cfg config.Config, clk clock.Clock, logger *slog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	arena := Arena{Width: cfg.Arena.Width, Height: cfg.Arena.Height}
	rng := NewRand(cfg.Seed)

	g := &Game{
		cfg:     cfg,
		arena:   arena,
		clock:   clock.NewPausable(clk),
		rng:     rng,
		baseLog: logger,
		spawner: NewSpawner(arena, cfg.Spawner(), rng),
		drops:   NewDropTable(rng),
		grid:    newGrid(arena, gridCellSize),
	}
	g.spawner.SetDropChance(cfg.DropChance)
	g.newSession()
	return g, nil
}

// AddListener registers a listener for game events
func (g *Game) AddListener(l Listener) {
	g.listeners = append(g.listeners, l)
}

// newSession puts the game into its initial state with a fresh session id
func (g *Game) newSession() {
	g.sessionID = uuid.New()
	g.log = g.baseLog.With("session", g.sessionID.String())

	g.player = NewPlayer(g.arena.Width/2, g.arena.Height-50)
	g.enemies = nil
	g.projectiles = nil
	g.diagonal = nil
	g.bounce = nil
	g.boss = nil
	g.powerUps = nil

	g.score = 0
	g.level = 1
	g.tick = 0
	g.stats = Stats{}
	g.running = false
	g.paused = false
	g.over = false

	g.spawner.Reset(g.cfg.Spawner())
	g.drops.Reset()
	g.clock.Resume()
}

// Start begins the session. It does nothing while running or after game over.
func (g *Game) Start() {
	if g.running || g.over {
		return
	}
	g.running = true
	g.paused = false
	g.clock.Resume()

	g.log.Info("session started", "difficulty", g.cfg.Difficulty, "seed", g.cfg.Seed)
	g.emit(Event{Type: EventSessionStarted})
}

// Pause halts ticks and freezes game time
func (g *Game) Pause() {
	if !g.running || g.paused {
		return
	}
	g.paused = true
	g.clock.Pause()
}

// Resume continues a paused session
func (g *Game) Resume() {
	if !g.running || !g.paused {
		return
	}
	g.paused = false
	g.clock.Resume()
}

// TogglePause switches between paused and running
func (g *Game) TogglePause() {
	if g.paused {
		g.Resume()
	} else {
		g.Pause()
	}
}

// Reset discards the session and starts over from wave 1 in a stopped state.
// Pending boss actions go away together with their enemies.
func (g *Game) Reset() {
	prev := g.sessionID
	g.newSession()
	g.log.Info("session reset", "previous", prev.String())
}

// Update advances the simulation by one tick. It does nothing unless the game is running.
func (g *Game) Update(in Input) {
	if !g.running || g.paused {
		return
	}
	if in == nil {
		in = noInput{}
	}

	now := g.clock.Now()
	g.tick++
	g.stats.Ticks = g.tick

	shots := g.player.Update(in, now, g.arena)
	g.stats.ShotsFired += len(shots)
	g.route(shots)

	for _, e := range g.enemies {
		g.route(e.Update(now, g.arena))
	}

	g.updateProjectiles()

	g.checkCollisions()

	g.runSpawner()

	g.cleanup()

	g.checkGameState()
}

// route places projectile intents into the collection for their kind
func (g *Game) route(shots []*Projectile) {
	for _, p := range shots {
		switch p.Kind {
		case KindStraight:
			g.projectiles = append(g.projectiles, p)
		case KindDiagonal:
			g.diagonal = append(g.diagonal, p)
		case KindBounce:
			g.bounce = append(g.bounce, p)
		case KindBossShot, KindBeam:
			g.boss = append(g.boss, p)
		}
	}
}

func (g *Game) updateProjectiles() {
	for _, p := range g.projectiles {
		p.Update(g.arena)
	}
	for _, p := range g.diagonal {
		p.Update(g.arena)
	}
	for _, p := range g.bounce {
		p.Update(g.arena)
	}

	alive := g.boss[:0]
	for _, p := range g.boss {
		if p.Update(g.arena) {
			alive = append(alive, p)
		}
	}
	clear(g.boss[len(alive):])
	g.boss = alive

	for _, pu := range g.powerUps {
		pu.Update()
	}
}

func (g *Game) runSpawner() {
	spawned, advanced := g.spawner.Update(g.level, g.enemies)
	for _, e := range spawned {
		g.addEnemy(e)
	}
	if advanced {
		g.log.Info("wave advanced", "wave", g.spawner.Wave(), "boss_wave", g.spawner.IsBossWave())
		g.emit(Event{Type: EventWaveAdvanced})
	}
}

func (g *Game) addEnemy(e *Enemy) {
	g.enemies = append(g.enemies, e)
	if e.IsBoss {
		g.log.Info("boss spawned", "type", e.Type, "pattern", e.Pattern, "enhanced", e.Enhanced, "level", e.Level)
		g.emit(Event{Type: EventBossSpawned, Enemy: e.Type, X: e.X, Y: e.Y})
	}
}

// cleanup removes everything that has left the arena for good
func (g *Game) cleanup() {
	g.enemies = filter(g.enemies, func(e *Enemy) bool {
		return e.Y < g.arena.Height+offscreenMargin
	})

	onscreen := func(p *Projectile) bool { return !p.Offscreen(g.arena) }
	g.projectiles = filter(g.projectiles, onscreen)
	g.diagonal = filter(g.diagonal, onscreen)
	g.bounce = filter(g.bounce, onscreen)
	g.boss = filter(g.boss, onscreen)

	g.powerUps = filter(g.powerUps, func(p *PowerUp) bool {
		return p.Y < g.arena.Height+offscreenMargin
	})
}

// checkGameState evaluates player death and the level threshold
func (g *Game) checkGameState() {
	if g.player.Dead() {
		g.over = true
		g.running = false
		g.log.Info("game over", "score", g.score, "level", g.level, "wave", g.spawner.Wave(), "ticks", g.tick)
		g.emit(Event{Type: EventGameOver})
	}

	if g.score > g.level*pointsPerLevel {
		g.level++
		g.log.Info("level up", "level", g.level, "score", g.score)
		g.emit(Event{Type: EventLevelUp})
	}
}

func (g *Game) emit(ev Event) {
	ev.Tick = g.tick
	ev.Score = g.score
	ev.Level = g.level
	ev.Wave = g.spawner.Wave()
	for _, l := range g.listeners {
		l.OnEvent(ev)
	}
}

// filter keeps the elements for which keep returns true, reusing the backing array
func filter[T any](items []T, keep func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	clear(items[len(out):])
	return out
}

// Player returns the player ship
func (g *Game) Player() *Player { return g.player }

// Enemies returns the live enemies. The slice must not be modified.
func (g *Game) Enemies() []*Enemy { return g.enemies }

// Projectiles returns the straight shots of the player and shooter enemies
func (g *Game) Projectiles() []*Projectile { return g.projectiles }

// DiagonalProjectiles returns the player's diagonal shots
func (g *Game) DiagonalProjectiles() []*Projectile { return g.diagonal }

// BounceProjectiles returns the player's bounce shots
func (g *Game) BounceProjectiles() []*Projectile { return g.bounce }

// BossProjectiles returns boss point shots and beams
func (g *Game) BossProjectiles() []*Projectile { return g.boss }

// PowerUps returns the falling powerups
func (g *Game) PowerUps() []*PowerUp { return g.powerUps }

// Score returns the current score
func (g *Game) Score() int { return g.score }

// Level returns the current difficulty level
func (g *Game) Level() int { return g.level }

// Running reports whether the session is in progress (paused or not)
func (g *Game) Running() bool { return g.running }

// Paused reports whether the session is paused
func (g *Game) Paused() bool { return g.paused }

// Over reports whether the player has died
func (g *Game) Over() bool { return g.over }

// Bounds returns the play area
func (g *Game) Bounds() Arena { return g.arena }

// SessionID identifies the current session in logs and metrics
func (g *Game) SessionID() uuid.UUID { return g.sessionID }

// Tick returns the number of ticks simulated this session
func (g *Game) Tick() uint64 { return g.tick }

// Config returns the configuration the game was created with, including the seed in use
func (g *Game) Config() config.Config { return g.cfg }

// WaveStatus returns a snapshot of the wave state
func (g *Game) WaveStatus() WaveStatus {
	ws := g.spawner.Status()
	ws.BounceDropped = g.drops.BounceDropped()
	return ws
}

// Stats returns the session counters
func (g *Game) Stats() Stats {
	s := g.stats
	s.Enemies = len(g.enemies)
	s.Projectiles = len(g.projectiles) + len(g.diagonal) + len(g.bounce) + len(g.boss)
	s.PowerUps = len(g.powerUps)
	return s
}
