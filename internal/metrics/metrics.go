// Package metrics provides headless measurements over a grid, used by the
// bench command and by settlement checks.
package metrics

import "sandfall/internal/core"

// Occupied counts the particles in the grid.
func Occupied(g *core.Grid) int {
	return g.Count()
}

// PileHeights returns, per column, the height of the column measured from the
// floor to its topmost particle. An empty column has height zero.
func PileHeights(g *core.Grid) []int {
	size := g.Size()
	heights := make([]int, size.W)
	g.Occupied(func(p core.Position, m core.Material) {
		h := size.H - p.Y
		if h > heights[p.X] {
			heights[p.X] = h
		}
	})
	return heights
}

// MaxPileHeight returns the tallest column height in the grid.
func MaxPileHeight(g *core.Grid) int {
	max := 0
	for _, h := range PileHeights(g) {
		if h > max {
			max = h
		}
	}
	return max
}

// Settled reports whether the grid is a fixed point of the tick: stepping a
// copy changes nothing. The grid itself is not advanced.
func Settled(g *core.Grid) bool {
	c := g.Clone()
	c.Step()
	cur, next := g.Cells(), c.Cells()
	for i := range cur {
		if cur[i] != next[i] {
			return false
		}
	}
	return true
}
