package main

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oldskool/config"
	"oldskool/shooter"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestTerminal(t *testing.T) (*terminal, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(100, 40)

	cfg := config.DefaultConfig()
	cfg.Seed = 12345
	sim, err := shooter.NewGame(cfg, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return &terminal{
		screen: screen,
		sim:    sim,
		view:   newView(screen, cfg.Arena, cfg.Terminal),
		keys:   newHeldKeys(),
	}, screen
}

func TestHeldKeys_Window(t *testing.T) {
	h := newHeldKeys()
	h.press(shooter.KeyArrowLeft, epoch)

	h.sample(epoch.Add(holdWindow / 2))
	assert.True(t, h.Pressed(shooter.KeyArrowLeft))
	assert.False(t, h.Pressed(shooter.KeyArrowRight))

	h.sample(epoch.Add(holdWindow))
	assert.False(t, h.Pressed(shooter.KeyArrowLeft), "released after the window")

	h.press(shooter.KeyArrowLeft, epoch.Add(holdWindow))
	h.sample(epoch.Add(holdWindow + time.Millisecond))
	assert.True(t, h.Pressed(shooter.KeyArrowLeft), "repeats extend the hold")

	h.release()
	assert.False(t, h.Pressed(shooter.KeyArrowLeft))
}

func TestHeldKeys_AutoFire(t *testing.T) {
	h := newHeldKeys()
	h.sample(epoch)
	assert.False(t, h.Pressed(shooter.KeySpace))

	h.autoFire = true
	assert.True(t, h.Pressed(shooter.KeySpace))
}

func TestSimKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want shooter.Key
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), shooter.KeyArrowLeft, true},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), shooter.KeyArrowDown, true},
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), shooter.KeyW, true},
		{tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), shooter.KeyD, true},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), shooter.KeySpace, true},
		{tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), "", false},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "", false},
	}
	for _, tt := range tests {
		got, ok := simKey(tt.ev)
		assert.Equal(t, tt.ok, ok)
		assert.Equal(t, tt.want, got)
	}
}

func TestHandleEvent_Controls(t *testing.T) {
	term, _ := newTestTerminal(t)

	assert.True(t, term.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), epoch))
	assert.True(t, term.sim.Running())

	term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), epoch)
	assert.True(t, term.sim.Paused())
	term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), epoch)
	assert.False(t, term.sim.Paused())

	assert.True(t, term.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), epoch), "escape pauses instead of quitting")
	assert.True(t, term.sim.Paused())
	term.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), epoch)
	assert.False(t, term.sim.Paused())

	term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone), epoch)
	assert.True(t, term.keys.autoFire)

	term.handleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), epoch)
	term.keys.sample(epoch)
	assert.True(t, term.keys.Pressed(shooter.KeyArrowLeft))

	term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), epoch)
	assert.False(t, term.sim.Running())
	assert.False(t, term.keys.Pressed(shooter.KeyArrowLeft))

	assert.False(t, term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), epoch))
	assert.False(t, term.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), epoch))
}

func TestView_DrawsPlayerAndHUD(t *testing.T) {
	term, screen := newTestTerminal(t)
	term.view.draw(term.sim)

	// player at (400, 550) with size 40 covers columns 40-43 and rows 27-29
	r, _, _, _ := screen.GetContent(41, 28+hudRows)
	assert.Equal(t, 'A', r)

	var hud []rune
	for x := 0; x < 5; x++ {
		c, _, _, _ := screen.GetContent(x, 0)
		hud = append(hud, c)
	}
	assert.Equal(t, "SCORE", string(hud))
}

func TestView_Span(t *testing.T) {
	term, _ := newTestTerminal(t)
	v := term.view

	c0, r0, c1, r1, ok := v.span(shooter.Body{X: 15, Y: 30, Width: 20, Height: 20})
	require.True(t, ok)
	assert.Equal(t, []int{1, 1, 3, 2}, []int{c0, r0, c1, r1})

	_, _, _, _, ok = v.span(shooter.Body{X: 100, Y: -50, Width: 35, Height: 35})
	assert.False(t, ok, "bodies above the arena are not drawn")

	c0, _, c1, _, ok = v.span(shooter.Body{X: 790, Y: 0, Width: 40, Height: 10})
	require.True(t, ok)
	assert.Equal(t, 79, c0)
	assert.Equal(t, 79, c1, "clipped to the arena")
}
