//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"time"

	"sandfall/internal/config"
	"sandfall/internal/core"
	"sandfall/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the sand grid to the ebiten.Game interface. Input placement,
// one tick, then blit — the whole frame contract lives in Update/Draw.
type Game struct {
	grid    *core.Grid
	painter *render.GridPainter

	names []string
	sel   int

	scale    int
	brush    int
	seed     int64
	fill     float64
	fillRows int

	paused   bool
	tickOnce bool
}

// NewGame constructs a Game for the provided configuration. Materials must
// already be registered.
func NewGame(cfg *config.Config) *Game {
	g := &Game{
		grid:     core.NewGrid(cfg.Width, cfg.Height),
		names:    core.Names(),
		scale:    cfg.Scale,
		brush:    cfg.Brush,
		seed:     cfg.Seed,
		fill:     cfg.FillDensity,
		fillRows: cfg.FillRows,
	}
	g.painter = render.NewGridPainter(cfg.Width, cfg.Height, core.Palette())
	for i, name := range g.names {
		if name == cfg.Material {
			g.sel = i
		}
	}
	g.reseed(cfg.Seed)
	return g
}

func (g *Game) reseed(seed int64) {
	g.seed = seed
	g.grid.Clear()
	if g.fill > 0 {
		id, _ := core.ByName(g.selected())
		core.Scatter(core.NewRNG(seed).Source(), g.grid, id, g.fill, g.fillRows)
	}
}

func (g *Game) selected() string {
	if len(g.names) == 0 {
		return ""
	}
	return g.names[g.sel]
}

// paint stamps a circular brush of the selected material (or empty for the
// eraser) at the cursor. Pixel coordinates shrink to cell coordinates here,
// at the boundary, so the core never sees an out-of-range write targeted on
// purpose.
func (g *Game) paint(erase bool) {
	px, py := ebiten.CursorPosition()
	cx, cy := px/g.scale, py/g.scale

	id := core.Empty
	if !erase {
		id, _ = core.ByName(g.selected())
		if id == core.Empty {
			return
		}
	}
	r := g.brush
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			if g.grid.InBounds(cx+dx, cy+dy) {
				g.grid.SetID(cx+dx, cy+dy, id)
			}
		}
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.grid.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reseed(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.reseed(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && len(g.names) > 0 {
		g.sel = (g.sel + 1) % len(g.names)
	}
	for i := 0; i < len(g.names) && i < 9; i++ {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			g.sel = i
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.brush++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) && g.brush > 0 {
		g.brush--
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.paint(false)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.paint(true)
	}

	if !g.paused || g.tickOnce {
		g.grid.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current grid state and a one-line status.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.grid.Cells(), g.scale)

	status := fmt.Sprintf("%s  brush %d  particles %d", g.selected(), g.brush, g.grid.Count())
	if g.paused {
		status += "  [paused]"
	}
	ebitenutil.DebugPrint(screen, status)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.grid.Size()
	return s.W * g.scale, s.H * g.scale
}

// Run opens the window and drives the frame loop until quit.
func Run(cfg *config.Config) error {
	game := NewGame(cfg)

	ebiten.SetWindowTitle("sandfall")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
