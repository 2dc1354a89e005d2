// Command oldskool-sim plays sessions headless with the autopilot and reports
// how far it got. It is used for balancing difficulty presets.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"gopkg.in/yaml.v3"

	"oldskool/clock"
	"oldskool/config"
	"oldskool/metrics"
	"oldskool/shooter"
)

// tickDuration is the game time that passes per simulated tick
const tickDuration = time.Second / 60

// Report summarizes one simulated session
type Report struct {
	Session    string  `yaml:"session"`
	Seed       int64   `yaml:"seed"`
	Difficulty string  `yaml:"difficulty"`
	Ticks      uint64  `yaml:"ticks"`
	Seconds    float64 `yaml:"seconds"`
	GameOver   bool    `yaml:"game_over"`
	Score      int     `yaml:"score"`
	Level      int     `yaml:"level"`
	Wave       int     `yaml:"wave"`

	ShotsFired        int     `yaml:"shots_fired"`
	EnemiesKilled     int     `yaml:"enemies_killed"`
	BossesKilled      int     `yaml:"bosses_killed"`
	PowerUpsCollected int     `yaml:"powerups_collected"`
	DamageTaken       float64 `yaml:"damage_taken"`
}

// Summary aggregates the reports of a run
type Summary struct {
	Sessions  int      `yaml:"sessions"`
	GameOvers int      `yaml:"game_overs"`
	MeanScore float64  `yaml:"mean_score"`
	MeanWave  float64  `yaml:"mean_wave"`
	BestScore int      `yaml:"best_score"`
	Reports   []Report `yaml:"reports"`
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (default $"+config.EnvConfigPath+")")
	seed := flag.Int64("seed", 1, "seed of the first session, following sessions use seed+1, seed+2, ... (0 draws one from the clock)")
	difficulty := flag.String("difficulty", "", "easy, normal, hard or insane")
	sessions := flag.Int("sessions", 10, "number of sessions to play")
	maxTicks := flag.Uint64("ticks", 60*60*5, "tick limit per session")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :2112")
	hold := flag.Bool("hold", false, "keep serving metrics after the run until interrupted")
	logLevel := flag.String("log-level", "warn", "debug, info, warn or error")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
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
	cfg.LogLevel = *logLevel
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if *sessions <= 0 {
		log.Fatalf("sessions must be positive, got %d", *sessions)
	}

	level, _ := config.ParseLogLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var listeners []shooter.Listener
	shutdown := func(context.Context) error { return nil }
	if cfg.MetricsAddr != "" {
		rec := metrics.NewRecorder(true)
		shutdown = rec.Serve(cfg.MetricsAddr, logger)
		listeners = append(listeners, rec)
	}

	summary := Summary{Sessions: *sessions}
	for i, n := 0, *sessions; i < n; i++ {
		sc := cfg
		sc.Seed = *seed + int64(i)

		report, err := runSession(sc, *maxTicks, logger, listeners...)
		if err != nil {
			log.Fatal(err)
		}
		logger.Info("session finished", "seed", report.Seed, "score", report.Score, "wave", report.Wave, "ticks", report.Ticks)
		summary.add(report)
	}

	if err := writeSummary(os.Stdout, summary); err != nil {
		log.Fatal(err)
	}

	if *hold && cfg.MetricsAddr != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		logger.Info("holding metrics endpoint, interrupt to exit", "addr", cfg.MetricsAddr)
		<-ctx.Done()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = shutdown(ctx)
}

// runSession plays one session with the autopilot until game over or maxTicks
func runSession(cfg config.Config, maxTicks uint64, logger *slog.Logger, listeners ...shooter.Listener) (Report, error) {
	mock := clock.NewMock(time.Unix(0, 0))
	g, err := shooter.NewGame(cfg, mock, logger)
	if err != nil {
		return Report{}, fmt.Errorf("run session: %w", err)
	}
	for _, l := range listeners {
		g.AddListener(l)
	}

	pilot := shooter.NewAutopilot(g)
	g.Start()
	for g.Running() && g.Tick() < maxTicks {
		mock.Advance(tickDuration)
		g.Update(pilot)
	}

	s := g.Stats()
	return Report{
		Session:           g.SessionID().String(),
		Seed:              g.Config().Seed,
		Difficulty:        string(cfg.Difficulty),
		Ticks:             s.Ticks,
		Seconds:           (time.Duration(s.Ticks) * tickDuration).Seconds(),
		GameOver:          g.Over(),
		Score:             g.Score(),
		Level:             g.Level(),
		Wave:              g.WaveStatus().Wave,
		ShotsFired:        s.ShotsFired,
		EnemiesKilled:     s.EnemiesKilled,
		BossesKilled:      s.BossesKilled,
		PowerUpsCollected: s.PowerUpsCollected,
		DamageTaken:       s.DamageTaken,
	}, nil
}

func (s *Summary) add(r Report) {
	s.Reports = append(s.Reports, r)
	if r.GameOver {
		s.GameOvers++
	}
	if r.Score > s.BestScore {
		s.BestScore = r.Score
	}

	n := float64(len(s.Reports))
	s.MeanScore += (float64(r.Score) - s.MeanScore) / n
	s.MeanWave += (float64(r.Wave) - s.MeanWave) / n
}

func writeSummary(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return enc.Close()
}
