package materials

import (
	"image/color"

	"sandfall/internal/core"
)

// Water falls like sand but also flows sideways along a surface. The lateral
// preference is a fixed left bias; the tick stays fully deterministic.
type Water struct{}

// Name returns the registry identifier.
func (Water) Name() string { return "water" }

// Color returns the render color.
func (Water) Color() color.RGBA { return color.RGBA{R: 64, G: 120, B: 220, A: 255} }

// NextPosition applies the movement rule against the pre-tick grid.
func (Water) NextPosition(g *core.Grid, p core.Position) core.Position {
	if g.IsEmpty(p.X, p.Y+1) {
		return core.Position{X: p.X, Y: p.Y + 1}
	}
	if g.IsEmpty(p.X-1, p.Y+1) {
		return core.Position{X: p.X - 1, Y: p.Y + 1}
	}
	if g.IsEmpty(p.X+1, p.Y+1) {
		return core.Position{X: p.X + 1, Y: p.Y + 1}
	}
	if g.IsEmpty(p.X-1, p.Y) {
		return core.Position{X: p.X - 1, Y: p.Y}
	}
	if g.IsEmpty(p.X+1, p.Y) {
		return core.Position{X: p.X + 1, Y: p.Y}
	}
	return p
}

func init() {
	core.Register(IDWater, Water{})
}
