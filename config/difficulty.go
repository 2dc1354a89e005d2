package config

import (
	"fmt"
	"strings"
)

// Difficulty names a spawner preset
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
	DifficultyInsane Difficulty = "insane"
)

// DifficultyPreset holds the spawner settings a difficulty selects
type DifficultyPreset struct {
	SpawnRate float64 // Base spawn probability per tick
	WaveSize  int     // Enemy cap of the first wave
}

// Preset returns the spawner settings for a difficulty
func (d Difficulty) Preset() (DifficultyPreset, error) {
	switch d {
	case DifficultyEasy:
		return DifficultyPreset{SpawnRate: 0.005, WaveSize: 4}, nil
	case DifficultyNormal:
		return DifficultyPreset{SpawnRate: 0.008, WaveSize: 6}, nil
	case DifficultyHard:
		return DifficultyPreset{SpawnRate: 0.015, WaveSize: 10}, nil
	case DifficultyInsane:
		return DifficultyPreset{SpawnRate: 0.025, WaveSize: 15}, nil
	default:
		return DifficultyPreset{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, string(d))
	}
}

// ParseDifficulty accepts a difficulty name in any case
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if _, err := d.Preset(); err != nil {
		return "", err
	}
	return d, nil
}

// Difficulties lists the presets from easiest to hardest
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyInsane}
}
