package shooter

import (
	"oldskool/config"
)

const (
	bossWaveInterval = 10
	waveCapGrowth    = 2
	levelSpawnBonus  = 0.002
	spawnY           = -50.0
	spawnMargin      = 50.0
	bossSpawnOffset  = 60.0
)

// enhancedPatterns cycle with every tenth wave
var enhancedPatterns = []MovePattern{PatternCircular, PatternZigzag, PatternSpiral, PatternWeaving}

// advancedTypes are drawn uniformly by the level 4 override
var advancedTypes = []EnemyType{EnemyFast, EnemyShooter, EnemyTank}

// WaveStatus is a snapshot of the wave state machine
type WaveStatus struct {
	Wave          int
	Spawned       int
	Cap           int
	NextBossWave  int
	IsBossWave    bool
	BounceDropped bool
}

// Spawner decides what spawns and when, and advances waves
type Spawner struct {
	arena Arena
	rng   *Rand

	baseRate   float64
	dropChance float64

	wave    int
	spawned int
	cap     int
}

// NewSpawner creates a spawner on wave 1 with the given difficulty preset
func NewSpawner(arena Arena, preset config.DifficultyPreset, rng *Rand) *Spawner {
	s := &Spawner{
		arena:      arena,
		rng:        rng,
		dropChance: DefaultDropChance,
	}
	s.Reset(preset)
	return s
}

// Reset returns the spawner to wave 1 with a new preset
func (s *Spawner) Reset(preset config.DifficultyPreset) {
	s.baseRate = preset.SpawnRate
	s.cap = preset.WaveSize
	s.wave = 1
	s.spawned = 0
}

// SetPreset changes spawn rate and wave cap without touching the wave number
func (s *Spawner) SetPreset(preset config.DifficultyPreset) {
	s.baseRate = preset.SpawnRate
	s.cap = preset.WaveSize
}

// SetDropChance sets the drop chance given to spawned enemies
func (s *Spawner) SetDropChance(chance float64) {
	s.dropChance = chance
}

// Wave returns the current wave number
func (s *Spawner) Wave() int {
	return s.wave
}

// IsBossWave reports whether the current wave is a boss wave
func (s *Spawner) IsBossWave() bool {
	return s.wave%bossWaveInterval == 0
}

// SpawnRate returns the per-tick spawn probability at the given level
func (s *Spawner) SpawnRate(level int) float64 {
	return s.baseRate + float64(level)*levelSpawnBonus
}

// Status returns a snapshot of the wave state
func (s *Spawner) Status() WaveStatus {
	next := (s.wave + bossWaveInterval - 1) / bossWaveInterval * bossWaveInterval
	return WaveStatus{
		Wave:         s.wave,
		Spawned:      s.spawned,
		Cap:          s.cap,
		NextBossWave: next,
		IsBossWave:   s.IsBossWave(),
	}
}

// Update runs one spawner tick against the live enemies and returns any new enemies.
// It reports whether the wave advanced.
func (s *Spawner) Update(level int, enemies []*Enemy) ([]*Enemy, bool) {
	var spawned []*Enemy

	if s.IsBossWave() {
		if s.spawned == 0 {
			spawned = append(spawned, s.spawnWaveBoss(s.rollBossType(level), level))
			s.spawned = s.cap
		}
	} else if s.rng.Chance(s.SpawnRate(level)) {
		spawned = append(spawned, s.spawnRegular(level))
		s.spawned++
	}

	if len(enemies)+len(spawned) == 0 && s.spawned >= s.cap {
		s.NextWave()
		return spawned, true
	}
	return spawned, false
}

// NextWave advances to the next wave and grows the cap
func (s *Spawner) NextWave() {
	s.wave++
	s.spawned = 0
	s.cap += waveCapGrowth
}

// JumpToWave sets the wave number and clears the spawned counter
func (s *Spawner) JumpToWave(wave int) {
	s.wave = max(1, wave)
	s.spawned = 0
}

// WaveBoss creates a centred boss with the enhanced movement of the current wave
func (s *Spawner) WaveBoss(t EnemyType, level int) *Enemy {
	return s.spawnWaveBoss(t, level)
}

func (s *Spawner) rollBossType(level int) EnemyType {
	switch {
	case level >= 8:
		r := s.rng.Float64()
		switch {
		case r < 0.4:
			return EnemyBossHeavy
		case r < 0.8:
			return EnemyBossFast
		default:
			return EnemyBossMega
		}
	case level >= 6:
		if s.rng.Float64() < 0.6 {
			return EnemyBossHeavy
		}
		return EnemyBossFast
	default:
		return EnemyBossHeavy
	}
}

func (s *Spawner) spawnWaveBoss(t EnemyType, level int) *Enemy {
	boss := s.newEnemy(s.arena.Width/2-bossSpawnOffset, t, level)
	boss.enhance(enhancedPatterns[(s.wave/bossWaveInterval)%len(enhancedPatterns)])
	return boss
}

func (s *Spawner) spawnRegular(level int) *Enemy {
	x := s.rng.Float64() * (s.arena.Width - spawnMargin)
	return s.newEnemy(x, s.rollRegularType(level), level)
}

// rollRegularType layers threshold checks against one draw; later layers win
func (s *Spawner) rollRegularType(level int) EnemyType {
	t := EnemyBasic
	r := s.rng.Float64()
	l := float64(level)

	if level >= 2 {
		if r < 0.15+l*0.03 {
			t = EnemyFast
		} else if r < 0.25+l*0.03 {
			t = EnemyShooter
		}
	}
	if level >= 3 && r < 0.03+l*0.01 {
		t = EnemyTank
	}
	if level >= 4 && r < 0.5 {
		t = pick(s.rng, advancedTypes)
	}
	return t
}

func (s *Spawner) newEnemy(x float64, t EnemyType, level int) *Enemy {
	e := NewEnemy(x, spawnY, t, level, s.rng)
	e.DropChance = s.dropChance
	return e
}
