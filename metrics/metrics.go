// Package metrics exports game events as Prometheus metrics
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"oldskool/shooter"
)

const namespace = "oldskool"

// Recorder turns game events into counters and gauges.
// It implements shooter.Listener and owns its own registry so several
// recorders can live in one process (tests, parallel simulations).
type Recorder struct {
	registry *prometheus.Registry

	sessions   prometheus.Counter
	kills      *prometheus.CounterVec
	drops      *prometheus.CounterVec
	collected  *prometheus.CounterVec
	bombs      prometheus.Counter
	bombKills  prometheus.Counter
	hits       *prometheus.CounterVec
	damage     prometheus.Counter
	bosses     *prometheus.CounterVec
	gameOvers  prometheus.Counter
	score      prometheus.Gauge
	level      prometheus.Gauge
	wave       prometheus.Gauge
	finalScore prometheus.Histogram
}

// NewRecorder creates a recorder with all metrics registered.
// Go runtime and process collectors are added when withRuntime is set.
func NewRecorder(withRuntime bool) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_started_total",
			Help:      "Sessions started.",
		}),
		kills: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enemies_killed_total",
			Help:      "Enemies destroyed by player projectiles. Bomb kills are counted in bomb_kills_total.",
		}, []string{"enemy", "weapon"}),
		drops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "powerups_dropped_total",
			Help:      "Powerups dropped by destroyed enemies.",
		}, []string{"powerup"}),
		collected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "powerups_collected_total",
			Help:      "Powerups picked up by the player.",
		}, []string{"powerup"}),
		bombs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bombs_detonated_total",
			Help:      "Bombs detonated.",
		}),
		bombKills: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bomb_kills_total",
			Help:      "Enemies destroyed by bombs.",
		}),
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "player_hits_total",
			Help:      "Hits taken by the player, by source.",
		}, []string{"source"}),
		damage: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "player_damage_total",
			Help:      "Damage applied to the player after shields.",
		}),
		bosses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bosses_spawned_total",
			Help:      "Bosses spawned.",
		}, []string{"enemy"}),
		gameOvers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "game_overs_total",
			Help:      "Sessions ended by player death.",
		}),
		score: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "score",
			Help:      "Score of the current session.",
		}),
		level: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "level",
			Help:      "Difficulty level of the current session.",
		}),
		wave: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "wave",
			Help:      "Wave of the current session.",
		}),
		finalScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "final_score",
			Help:      "Score at game over.",
			Buckets:   prometheus.ExponentialBuckets(50, 2, 10),
		}),
	}

	r.registry.MustRegister(
		r.sessions, r.kills, r.drops, r.collected, r.bombs, r.bombKills,
		r.hits, r.damage, r.bosses, r.gameOvers, r.score, r.level, r.wave, r.finalScore,
	)
	if withRuntime {
		r.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return r
}

// Registry exposes the underlying registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// OnEvent implements shooter.Listener
func (r *Recorder) OnEvent(ev shooter.Event) {
	r.score.Set(float64(ev.Score))
	r.level.Set(float64(ev.Level))
	r.wave.Set(float64(ev.Wave))

	switch ev.Type {
	case shooter.EventSessionStarted:
		r.sessions.Inc()
	case shooter.EventEnemyKilled:
		r.kills.WithLabelValues(string(ev.Enemy), ev.Weapon.String()).Inc()
	case shooter.EventPowerUpDropped:
		r.drops.WithLabelValues(string(ev.PowerUp)).Inc()
	case shooter.EventPowerUpCollected:
		r.collected.WithLabelValues(string(ev.PowerUp)).Inc()
	case shooter.EventBombDetonated:
		r.bombs.Inc()
		r.bombKills.Add(float64(ev.Count))
	case shooter.EventPlayerHit:
		r.hits.WithLabelValues(hitSource(ev)).Inc()
		r.damage.Add(ev.Damage)
	case shooter.EventBossSpawned:
		r.bosses.WithLabelValues(string(ev.Enemy)).Inc()
	case shooter.EventGameOver:
		r.gameOvers.Inc()
		r.finalScore.Observe(float64(ev.Score))
	}
}

// hitSource labels a player hit: "ram" for collisions, otherwise the projectile kind
func hitSource(ev shooter.Event) string {
	if ev.Weapon == shooter.KindNone {
		return "ram"
	}
	return ev.Weapon.String()
}

// Handler serves the registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve starts the /metrics endpoint on addr in a background goroutine.
// The returned shutdown function stops the server.
func (r *Recorder) Serve(addr string, log *slog.Logger) (shutdown func(context.Context) error) {
	if log == nil {
		log = slog.Default()
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("metrics endpoint listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed", "err", err)
		}
	}()
	return srv.Shutdown
}
