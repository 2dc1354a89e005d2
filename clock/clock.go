// Package clock provides the time sources used by the simulation: the real
// system clock, a pausable game clock layered on top of any source, and a
// manually driven clock for tests.
package clock

import "time"

// Clock is a source of the current time.
type Clock interface {
	Now() time.Time
}

// System reads the real wall clock with its monotonic reading.
type System struct{}

// NewSystem creates a system clock
func NewSystem() System {
	return System{}
}

// Now returns time.Now()
func (System) Now() time.Time {
	return time.Now()
}
