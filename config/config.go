// Package config holds the game configuration and its YAML loader.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath is consulted by Load when no path is given
const EnvConfigPath = "OLDSKOOL_CONFIG"

var (
	// ErrInvalidConfig is returned by Validate
	ErrInvalidConfig = errors.New("invalid config")

	// ErrUnknownDifficulty is returned for difficulty names without a preset
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// Config holds game configuration
type Config struct {
	// Arena is the play area the simulation clamps against
	Arena ArenaConfig `yaml:"arena"`

	// Seed drives every random decision; 0 picks a time based seed
	Seed int64 `yaml:"seed"`

	// Difficulty selects the spawner preset
	Difficulty Difficulty `yaml:"difficulty"`

	// SpawnRate overrides the preset base spawn probability when > 0
	SpawnRate float64 `yaml:"spawn_rate"`

	// WaveSize overrides the preset first wave cap when > 0
	WaveSize int `yaml:"wave_size"`

	// DropChance is the probability that a killed enemy drops a powerup
	DropChance float64 `yaml:"drop_chance"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// MetricsAddr serves Prometheus metrics when not empty (for example ":2112")
	MetricsAddr string `yaml:"metrics_addr"`

	// Window configures the graphical frontend
	Window WindowConfig `yaml:"window"`

	// Terminal configures the terminal frontend
	Terminal TerminalConfig `yaml:"terminal"`
}

// ArenaConfig is the size of the play area in simulation units
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// WindowConfig holds the ebiten window settings
type WindowConfig struct {
	Title     string  `yaml:"title"`
	Scale     float64 `yaml:"scale"`
	Resizable bool    `yaml:"resizable"`
	TPS       int     `yaml:"tps"`
}

// TerminalConfig holds the tcell frontend settings
type TerminalConfig struct {
	// CellWidth and CellHeight are the arena units covered by one terminal cell
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Seed:       0,
		Difficulty: DifficultyNormal,
		DropChance: 0.15,
		LogLevel:   "info",
		Window: WindowConfig{
			Title:     "Oldskool",
			Scale:     1.0,
			Resizable: true,
			TPS:       60,
		},
		Terminal: TerminalConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
	}
}

// Load reads a YAML configuration file on top of DefaultConfig.
// If path is empty the OLDSKOOL_CONFIG environment variable is tried; with
// neither set the defaults are returned.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the simulation cannot use
func (c Config) Validate() error {
	var problems []string

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		problems = append(problems, fmt.Sprintf("arena must be positive, got %gx%g", c.Arena.Width, c.Arena.Height))
	}
	if _, err := c.Difficulty.Preset(); err != nil {
		problems = append(problems, err.Error())
	}
	if c.SpawnRate < 0 || c.SpawnRate > 1 {
		problems = append(problems, fmt.Sprintf("spawn_rate must be within [0,1], got %g", c.SpawnRate))
	}
	if c.WaveSize < 0 {
		problems = append(problems, fmt.Sprintf("wave_size must not be negative, got %d", c.WaveSize))
	}
	if c.DropChance < 0 || c.DropChance > 1 {
		problems = append(problems, fmt.Sprintf("drop_chance must be within [0,1], got %g", c.DropChance))
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}
	if c.Window.Scale <= 0 {
		problems = append(problems, fmt.Sprintf("window.scale must be positive, got %g", c.Window.Scale))
	}
	if c.Window.TPS < 0 {
		problems = append(problems, fmt.Sprintf("window.tps must not be negative, got %d", c.Window.TPS))
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		problems = append(problems, "terminal cell size must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Spawner returns the effective spawn rate and first wave cap:
// the difficulty preset with any explicit overrides applied.
func (c Config) Spawner() DifficultyPreset {
	preset, err := c.Difficulty.Preset()
	if err != nil {
		preset, _ = DifficultyNormal.Preset()
	}
	if c.SpawnRate > 0 {
		preset.SpawnRate = c.SpawnRate
	}
	if c.WaveSize > 0 {
		preset.WaveSize = c.WaveSize
	}
	return preset
}

// ParseLogLevel maps a level name to a slog level
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// ScreenSize returns the window size in pixels
func (c Config) ScreenSize() (int, int) {
	return int(c.Arena.Width * c.Window.Scale), int(c.Arena.Height * c.Window.Scale)
}
