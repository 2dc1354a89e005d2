// Package game is the ebiten frontend of the shooter simulation
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"oldskool/config"
	"oldskool/shooter"
)

// ErrQuit is returned from Update when the player quits
var ErrQuit = errors.New("quit")

const (
	starCount    = 120
	maxParticles = 2000
)

// Options are the frontend settings that do not belong to the simulation
type Options struct {
	Logger    *slog.Logger
	Listeners []shooter.Listener

	// ProfileDir enables slow tick profiling when not empty
	ProfileDir string
}

// Game adapts a shooter session to ebiten's Update/Draw/Layout loop
type Game struct {
	cfg config.Config
	sim *shooter.Game
	log *slog.Logger

	input     *KeyboardInput
	palette   *Palette
	renderer  *Renderer
	hud       *HUD
	stars     *Starfield
	particles *Particles
	profiler  *Profiler
	debug     DebugState

	// bombFlash counts down the screen flash after a bomb
	bombFlash int
}

// NewGame creates a new game instance
func NewGame(cfg config.Config, opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sim, err := shooter.NewGame(cfg, nil, logger)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	palette := NewPalette()
	g := &Game{
		cfg:       cfg,
		sim:       sim,
		log:       logger,
		input:     NewKeyboardInput(),
		palette:   palette,
		renderer:  NewRenderer(palette),
		hud:       NewHUD(palette),
		stars:     NewStarfield(cfg.Arena.Width, cfg.Arena.Height, starCount, cfg.Seed),
		particles: NewParticles(maxParticles),
	}
	g.debug.difficultyIndex = max(0, slices.Index(config.Difficulties(), cfg.Difficulty))
	if opts.ProfileDir != "" {
		g.profiler = NewProfiler(opts.ProfileDir, logger)
	}

	sim.AddListener(g)
	for _, l := range opts.Listeners {
		sim.AddListener(l)
	}
	return g, nil
}

// Session returns the simulation driven by the frontend
func (g *Game) Session() *shooter.Game {
	return g.sim
}

// OnEvent turns simulation events into visual effects
func (g *Game) OnEvent(ev shooter.Event) {
	switch ev.Type {
	case shooter.EventEnemyKilled:
		cfg := shooter.GetEnemyTypeConfig(ev.Enemy)
		half := cfg.Size / 2
		count, power := 16, 3.0
		if cfg.IsBoss {
			count, power = 80, 6.0
		}
		g.particles.Explode(ev.X+half, ev.Y+half, g.palette.Color(cfg.Color), count, power)
	case shooter.EventPlayerHit:
		pl := g.sim.Player()
		g.particles.Explode(pl.X+pl.Width/2, pl.Y+pl.Height/2, colorBossBar, 6, 2)
	case shooter.EventPowerUpCollected:
		info := ev.PowerUp.Info()
		g.particles.Explode(ev.X+10, ev.Y+10, g.palette.Color(info.Color), 10, 2)
	case shooter.EventBombDetonated:
		g.bombFlash = 12
	case shooter.EventSessionStarted:
		g.particles.Clear()
	}
}

// Update updates the game state
func (g *Game) Update() error {
	switch readControl() {
	case controlStart:
		if g.sim.Over() {
			g.sim.Reset()
		}
		g.sim.Start()
	case controlPause:
		g.sim.TogglePause()
	case controlReset:
		g.sim.Reset()
		g.particles.Clear()
	case controlQuit:
		return ErrQuit
	}

	g.handleDebugKeys()

	g.input.Update()
	g.sim.Update(g.input)

	if !g.sim.Paused() {
		g.stars.Update()
		g.particles.Update()
		if g.bombFlash > 0 {
			g.bombFlash--
		}
	}

	if g.profiler != nil && g.sim.Running() {
		s := g.sim.Stats()
		g.profiler.Watch(ebiten.ActualTPS(), ebiten.TPS(), s.Enemies, s.Projectiles)
	}
	return nil
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	g.stars.Draw(screen)
	g.renderer.Render(screen, g.sim)
	g.particles.Draw(screen)

	if g.bombFlash > 0 {
		b := screen.Bounds()
		fillBody(screen, shooter.Body{Width: float64(b.Dx()), Height: float64(b.Dy())},
			Fade(colorBomb, float64(g.bombFlash)/24))
	}

	g.hud.Draw(screen, g.sim, &g.debug, ebiten.ActualTPS())
}

// Layout returns the logical screen size, which is the arena
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.Arena.Width), int(g.cfg.Arena.Height)
}
