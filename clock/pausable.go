package clock

import (
	"sync"
	"time"
)

// Pausable provides game time that stands still while paused.
// Game time is the base clock reading minus the total time spent paused.
type Pausable struct {
	mu sync.RWMutex

	base Clock

	paused      bool
	pauseStart  time.Time     // base reading when the current pause began
	totalPaused time.Duration // cumulative pause duration
}

// NewPausable creates a running game clock on top of base.
// A nil base uses the system clock.
func NewPausable(base Clock) *Pausable {
	if base == nil {
		base = System{}
	}
	return &Pausable{base: base}
}

// Now returns the current game time
func (pc *Pausable) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.pauseStart.Add(-pc.totalPaused)
	}
	return pc.base.Now().Add(-pc.totalPaused)
}

// Pause freezes game time. Pausing an already paused clock does nothing.
func (pc *Pausable) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.base.Now()
}

// Resume lets game time advance again
func (pc *Pausable) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.totalPaused += pc.base.Now().Sub(pc.pauseStart)
	pc.paused = false
	pc.pauseStart = time.Time{}
}

// IsPaused reports whether game time is frozen
func (pc *Pausable) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPaused returns the cumulative paused duration, including a pause in progress
func (pc *Pausable) TotalPaused() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.totalPaused + pc.base.Now().Sub(pc.pauseStart)
	}
	return pc.totalPaused
}
