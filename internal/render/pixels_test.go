package render

import (
	"image/color"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{A: 255},
		{R: 198, G: 178, B: 128, A: 255},
	}
	cells := []uint8{0, 1, 9} // 9 is out of palette range
	buf := make([]byte, 4*len(cells))

	fillPaletteRGBA(buf, cells, palette)

	if buf[0] != 0 || buf[3] != 255 {
		t.Fatalf("background pixel wrong: %v", buf[0:4])
	}
	if buf[4] != 198 || buf[5] != 178 || buf[6] != 128 || buf[7] != 255 {
		t.Fatalf("material pixel wrong: %v", buf[4:8])
	}
	if buf[8] != 0 || buf[11] != 255 {
		t.Fatalf("unknown ID did not render as background: %v", buf[8:12])
	}
}
