package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"oldskool/config"
	"oldskool/shooter"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunSession_Deterministic(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Seed = 7

	a, err := runSession(cfg, 900, quietLogger())
	require.NoError(t, err)
	b, err := runSession(cfg, 900, quietLogger())
	require.NoError(t, err)

	assert.NotEqual(t, a.Session, b.Session, "every session gets its own id")
	a.Session, b.Session = "", ""
	assert.Equal(t, a, b)
	assert.LessOrEqual(t, a.Ticks, uint64(900))
	assert.Positive(t, a.ShotsFired)
}

func TestRunSession_ReportsSeedInUse(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Seed = 0

	first, err := runSession(cfg, 600, quietLogger())
	require.NoError(t, err)
	require.NotZero(t, first.Seed)

	cfg.Seed = first.Seed
	replay, err := runSession(cfg, 600, quietLogger())
	require.NoError(t, err)

	first.Session, replay.Session = "", ""
	assert.Equal(t, first, replay)
}

func TestRunSession_InvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DropChance = 2

	_, err := runSession(cfg, 10, quietLogger())
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRunSession_Listeners(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Seed = 3

	var started int
	l := shooter.ListenerFunc(func(ev shooter.Event) {
		if ev.Type == shooter.EventSessionStarted {
			started++
		}
	})
	_, err := runSession(cfg, 10, quietLogger(), l)
	require.NoError(t, err)
	assert.Equal(t, 1, started)
}

func TestSummary_Add(t *testing.T) {
	var s Summary
	s.add(Report{Score: 100, Wave: 2, GameOver: true})
	s.add(Report{Score: 300, Wave: 4})

	assert.Equal(t, 1, s.GameOvers)
	assert.Equal(t, 300, s.BestScore)
	assert.InDelta(t, 200.0, s.MeanScore, 1e-9)
	assert.InDelta(t, 3.0, s.MeanWave, 1e-9)
	assert.Len(t, s.Reports, 2)
}

func TestWriteSummary_YAML(t *testing.T) {
	s := Summary{Sessions: 1, BestScore: 50, Reports: []Report{{Seed: 9, Score: 50, Difficulty: "hard"}}}

	var buf bytes.Buffer
	require.NoError(t, writeSummary(&buf, s))

	var decoded Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, s, decoded)
	assert.Contains(t, buf.String(), "best_score: 50")
}
