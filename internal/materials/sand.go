package materials

import (
	"image/color"

	"sandfall/internal/core"
)

// Sand is gravity-driven granular flow: straight down when possible, then
// down-left, then down-right, otherwise it rests. Any candidate outside the
// grid counts as blocked, so piles form on the floor and against the walls.
type Sand struct{}

// Name returns the registry identifier.
func (Sand) Name() string { return "sand" }

// Color returns the render color.
func (Sand) Color() color.RGBA { return color.RGBA{R: 198, G: 178, B: 128, A: 255} }

// NextPosition applies the movement rule against the pre-tick grid.
func (Sand) NextPosition(g *core.Grid, p core.Position) core.Position {
	if g.IsEmpty(p.X, p.Y+1) {
		return core.Position{X: p.X, Y: p.Y + 1}
	}
	if g.IsEmpty(p.X-1, p.Y+1) {
		return core.Position{X: p.X - 1, Y: p.Y + 1}
	}
	if g.IsEmpty(p.X+1, p.Y+1) {
		return core.Position{X: p.X + 1, Y: p.Y + 1}
	}
	return p
}

func init() {
	core.Register(IDSand, Sand{})
}
