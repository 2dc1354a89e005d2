package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"oldskool/config"
	"oldskool/game"
	"oldskool/metrics"
	"oldskool/shooter"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (default $"+config.EnvConfigPath+")")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	difficulty := flag.String("difficulty", "", "easy, normal, hard or insane")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :2112")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	profileDir := flag.String("profile-dir", "", "capture CPU profiles into this directory when the tick rate drops")
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
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	level, _ := config.ParseLogLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	var listeners []shooter.Listener
	if cfg.MetricsAddr != "" {
		rec := metrics.NewRecorder(true)
		shutdown := rec.Serve(cfg.MetricsAddr, logger)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = shutdown(ctx)
		}()
		listeners = append(listeners, rec)
	}

	g, err := game.NewGame(cfg, game.Options{
		Logger:     logger,
		Listeners:  listeners,
		ProfileDir: *profileDir,
	})
	if err != nil {
		log.Fatal(err)
	}

	width, height := cfg.ScreenSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizable(cfg.Window.Resizable)
	if cfg.Window.TPS > 0 {
		ebiten.SetTPS(cfg.Window.TPS)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, game.ErrQuit) {
		log.Fatal(err)
	}
}
