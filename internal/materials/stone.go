package materials

import (
	"image/color"

	"sandfall/internal/core"
)

// Stone never moves. It exists to paint floors and obstacles.
type Stone struct{}

// Name returns the registry identifier.
func (Stone) Name() string { return "stone" }

// Color returns the render color.
func (Stone) Color() color.RGBA { return color.RGBA{R: 128, G: 128, B: 128, A: 255} }

// NextPosition always keeps the particle where it is.
func (Stone) NextPosition(g *core.Grid, p core.Position) core.Position { return p }

func init() {
	core.Register(IDStone, Stone{})
}
