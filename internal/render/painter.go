//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter maintains a single RGBA image the size of the grid and scales
// it onto the screen, one texture upload per frame.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
}

// NewGridPainter allocates a painter for a w*h grid rendered with the given
// palette.
func NewGridPainter(w, h int, palette []color.RGBA) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: palette}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the cell values into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, gp.palette)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
