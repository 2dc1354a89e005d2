package shooter

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestGrid_QueryFindsEveryOverlap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := newGrid(testArena, gridCellSize)

		n := rapid.IntRange(0, 30).Draw(t, "enemies")
		enemies := make([]*Enemy, n)
		for i := range enemies {
			e := NewEnemy(0, 0, rapid.SampledFrom(EnemyTypes()).Draw(t, "type"), 1, nil)
			e.X = rapid.Float64Range(-100, 900).Draw(t, "x")
			e.Y = rapid.Float64Range(-100, 700).Draw(t, "y")
			enemies[i] = e
		}
		g.rebuild(enemies)

		box := Rect{
			X:      rapid.Float64Range(-100, 900).Draw(t, "qx"),
			Y:      rapid.Float64Range(-100, 700).Draw(t, "qy"),
			Width:  rapid.Float64Range(1, 20).Draw(t, "qw"),
			Height: rapid.Float64Range(1, 20).Draw(t, "qh"),
		}
		got := g.query(box)

		if !slices.IsSorted(got) {
			t.Fatalf("candidates not sorted: %v", got)
		}
		if len(slices.Compact(slices.Clone(got))) != len(got) {
			t.Fatalf("duplicate candidates: %v", got)
		}
		for i, e := range enemies {
			if e.Bounds().Overlaps(box) && !slices.Contains(got, i) {
				t.Fatalf("enemy %d overlaps %+v but was not returned", i, box)
			}
		}
	})
}

func TestGrid_RebuildClearsCells(t *testing.T) {
	g := newGrid(testArena, gridCellSize)
	e := NewEnemy(100, 100, EnemyBasic, 1, nil)

	g.rebuild([]*Enemy{e})
	assert.Equal(t, []int{0}, g.query(Rect{X: 110, Y: 110, Width: 4, Height: 10}))

	g.rebuild(nil)
	assert.Empty(t, g.query(Rect{X: 110, Y: 110, Width: 4, Height: 10}))
}

func TestRect_TouchingEdgesDoNotOverlap(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	assert.True(t, a.Overlaps(Rect{X: 9, Y: 9, Width: 10, Height: 10}))
	assert.False(t, a.Overlaps(Rect{X: 10, Y: 0, Width: 10, Height: 10}))
	assert.False(t, a.Overlaps(Rect{X: 0, Y: 10, Width: 10, Height: 10}))
}
