// Command oldskool-term plays the shooter in a terminal
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"oldskool/config"
	"oldskool/metrics"
	"oldskool/shooter"
)

// terminal is the tcell frontend: it owns the screen, the session and the input state
type terminal struct {
	screen tcell.Screen
	sim    *shooter.Game
	view   *view
	keys   *heldKeys
	tps    int
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (default $"+config.EnvConfigPath+")")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	difficulty := flag.String("difficulty", "", "easy, normal, hard or insane")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :2112")
	logFile := flag.String("log-file", "", "write logs to this file, the screen is taken by the game")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *difficulty != "" {
		d, err := config.ParseDifficulty(*difficulty)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Difficulty = d
	}
	if *metricsAddr != "" {
		cfg.MetricsAddr = *metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	level, _ := config.ParseLogLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))

	sim, err := shooter.NewGame(cfg, nil, logger)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.MetricsAddr != "" {
		rec := metrics.NewRecorder(true)
		shutdown := rec.Serve(cfg.MetricsAddr, logger)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = shutdown(ctx)
		}()
		sim.AddListener(rec)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	t := &terminal{
		screen: screen,
		sim:    sim,
		view:   newView(screen, cfg.Arena, cfg.Terminal),
		keys:   newHeldKeys(),
		tps:    cfg.Window.TPS,
	}
	t.run()
	screen.Fini()

	fmt.Printf("score %d, level %d, wave %d\n", sim.Score(), sim.Level(), sim.WaveStatus().Wave)
}

func (t *terminal) run() {
	tps := t.tps
	if tps <= 0 {
		tps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	t.view.draw(t.sim)
	for {
		select {
		case ev := <-eventChan:
			if !t.handleEvent(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			t.keys.sample(now)
			t.sim.Update(t.keys)
			t.view.draw(t.sim)
		}
	}
}

// handleEvent applies a terminal event and returns false when the player quits
func (t *terminal) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if k, ok := simKey(ev); ok {
			t.keys.press(k, now)
			return true
		}
		switch ev.Key() {
		case tcell.KeyEnter:
			if t.sim.Over() {
				t.sim.Reset()
			}
			t.sim.Start()
			return true
		case tcell.KeyEscape:
			t.sim.TogglePause()
			t.keys.release()
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'p', 'P':
			t.sim.TogglePause()
			t.keys.release()
		case 'r', 'R':
			t.sim.Reset()
			t.keys.release()
		case 'f', 'F':
			t.keys.autoFire = !t.keys.autoFire
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}
