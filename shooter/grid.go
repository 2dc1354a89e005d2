package shooter

import (
	"slices"
)

// gridCellSize is the edge length of a broad-phase cell in arena units
const gridCellSize = 100.0

// cell holds the indices of the enemies overlapping it
type cell struct {
	entries []int
}

func (c *cell) add(idx int) {
	c.entries = append(c.entries, idx)
}

func (c *cell) clear() {
	c.entries = c.entries[:0]
}

// grid is a uniform broad-phase partition of the arena used to find
// the enemies a box may touch. Coordinates outside the arena map to the border cells.
type grid struct {
	cellSize   float64
	cols, rows int
	cells      []cell

	seen []bool
}

func newGrid(arena Arena, cellSize float64) *grid {
	cols := max(1, int(arena.Width/cellSize)+1)
	rows := max(1, int(arena.Height/cellSize)+1)
	return &grid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    make([]cell, cols*rows),
	}
}

// toCell converts arena coordinates to clamped cell coordinates
func (g *grid) toCell(x, y float64) (int, int) {
	cx := int(x / g.cellSize)
	cy := int(y / g.cellSize)
	if x < 0 {
		cx = 0
	}
	if y < 0 {
		cy = 0
	}
	return min(cx, g.cols-1), min(cy, g.rows-1)
}

// span returns the cell range a box covers
func (g *grid) span(r Rect) (x0, y0, x1, y1 int) {
	x0, y0 = g.toCell(r.X, r.Y)
	x1, y1 = g.toCell(r.X+r.Width, r.Y+r.Height)
	return
}

// rebuild registers every enemy in all cells its box overlaps
func (g *grid) rebuild(enemies []*Enemy) {
	for i := range g.cells {
		g.cells[i].clear()
	}
	for idx, e := range enemies {
		x0, y0, x1, y1 := g.span(e.Bounds())
		for cy := y0; cy <= y1; cy++ {
			for cx := x0; cx <= x1; cx++ {
				g.cells[cy*g.cols+cx].add(idx)
			}
		}
	}
	if cap(g.seen) < len(enemies) {
		g.seen = make([]bool, len(enemies))
	}
	g.seen = g.seen[:len(enemies)]
}

// query returns the indices of enemies that may overlap r, in ascending order
func (g *grid) query(r Rect) []int {
	var out []int
	x0, y0, x1, y1 := g.span(r)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			for _, idx := range g.cells[cy*g.cols+cx].entries {
				if !g.seen[idx] {
					g.seen[idx] = true
					out = append(out, idx)
				}
			}
		}
	}
	for _, idx := range out {
		g.seen[idx] = false
	}
	slices.Sort(out)
	return out
}
