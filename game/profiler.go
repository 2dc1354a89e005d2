package game

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

var (
	errCaptureCooldown = errors.New("capture on cooldown")
	errAlreadyRunning  = errors.New("already profiling")
)

// Profiler captures a CPU profile and an execution trace when the tick rate drops
type Profiler struct {
	mu              sync.Mutex
	log             *slog.Logger
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string

	// Watch settings
	startedAt time.Time
	warmup    time.Duration
	threshold float64 // fraction of the target TPS below which a capture starts
}

// NewProfiler creates a profiler writing into dir.
// The directory is created on the first capture.
func NewProfiler(dir string, log *slog.Logger) *Profiler {
	return &Profiler{
		log:             log,
		captureCooldown: 10 * time.Second,
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
		startedAt:       time.Now(),
		warmup:          3 * time.Second,
		threshold:       0.9,
	}
}

// Watch starts a capture when the measured TPS falls below the threshold.
// Drops during the warmup after launch are ignored.
func (p *Profiler) Watch(actualTPS float64, targetTPS int, enemies, projectiles int) {
	if time.Since(p.startedAt) < p.warmup || targetTPS <= 0 {
		return
	}
	if actualTPS >= p.threshold*float64(targetTPS) {
		return
	}

	reason := fmt.Sprintf("tps%.0f-enemies%d-projectiles%d", actualTPS, enemies, projectiles)
	err := p.CaptureProfile(reason)
	switch {
	case err == nil:
		p.log.Warn("tick rate drop, capturing profile", "tps", actualTPS, "target", targetTPS)
	case errors.Is(err, errCaptureCooldown), errors.Is(err, errAlreadyRunning):
	default:
		p.log.Error("failed to capture profile", "err", err)
	}
}

// CaptureProfile captures CPU profile and trace in the background
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Since(p.lastCaptureTime) < p.captureCooldown {
		return errCaptureCooldown
	}
	if p.isProfiling {
		return errAlreadyRunning
	}
	if err := os.MkdirAll(p.profilesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create profiles dir: %w", err)
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()

	timestamp := time.Now().Format("20060102-150405")
	baseName := fmt.Sprintf("slow-%s-%s", timestamp, reason)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.captureCPUProfile(baseName); err != nil {
				p.log.Error("cpu profile failed", "err", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				p.log.Error("trace failed", "err", err)
			}
		}()
		wg.Wait()

		p.analyzeProfile(baseName)
	}()

	return nil
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	file, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	p.log.Info("cpu profile saved", "path", profilePath)
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	tracePath := filepath.Join(p.profilesDir, baseName+".trace")

	file, err := os.Create(tracePath)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()

	p.log.Info("trace saved", "path", tracePath)
	return nil
}

// analyzeProfile logs the capture size and the memory stats at the end of the capture
func (p *Profiler) analyzeProfile(baseName string) {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	info, err := os.Stat(profilePath)
	if err != nil {
		p.log.Warn("could not analyze profile", "err", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.log.Info("profile captured",
		"path", profilePath,
		"size_kb", info.Size()/1024,
		"view", "go tool pprof -http=:8080 "+profilePath,
		"alloc_kb", m.Alloc/1024,
		"sys_kb", m.Sys/1024,
		"num_gc", m.NumGC,
		"heap_objects", m.HeapObjects,
	)
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}
