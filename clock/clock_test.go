package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestMock_Advance(t *testing.T) {
	m := NewMock(epoch)
	m.Advance(250 * time.Millisecond)
	assert.Equal(t, epoch.Add(250*time.Millisecond), m.Now())

	m.Set(epoch)
	assert.Equal(t, epoch, m.Now())
}

func TestPausable_FollowsBaseWhileRunning(t *testing.T) {
	base := NewMock(epoch)
	pc := NewPausable(base)

	start := pc.Now()
	base.Advance(time.Second)
	assert.Equal(t, time.Second, pc.Now().Sub(start))
	assert.False(t, pc.IsPaused())
}

func TestPausable_FreezesWhilePaused(t *testing.T) {
	base := NewMock(epoch)
	pc := NewPausable(base)

	base.Advance(time.Second)
	pc.Pause()
	frozen := pc.Now()

	base.Advance(5 * time.Second)
	assert.Equal(t, frozen, pc.Now(), "game time must not move while paused")
	assert.Equal(t, 5*time.Second, pc.TotalPaused())

	pc.Resume()
	assert.Equal(t, frozen, pc.Now(), "resume continues from the frozen point")

	base.Advance(100 * time.Millisecond)
	assert.Equal(t, 100*time.Millisecond, pc.Now().Sub(frozen))
}

func TestPausable_DoublePauseAndResume(t *testing.T) {
	base := NewMock(epoch)
	pc := NewPausable(base)

	pc.Pause()
	base.Advance(time.Second)
	pc.Pause() // no-op, must not restart the pause window
	base.Advance(time.Second)
	pc.Resume()
	pc.Resume()

	assert.Equal(t, 2*time.Second, pc.TotalPaused())
	assert.Equal(t, epoch, pc.Now())
}

func TestNewPausable_NilBaseUsesSystem(t *testing.T) {
	pc := NewPausable(nil)
	before := time.Now()
	got := pc.Now()
	assert.False(t, got.Before(before.Add(-time.Second)))
}
