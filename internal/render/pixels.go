package render

import "image/color"

// fillPaletteRGBA expands cell IDs into RGBA pixels through the palette. IDs
// past the end of the palette render as the background entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range buf {
			buf[i] = 0
		}
		return
	}
	for i, c := range cells {
		idx := int(c)
		if idx >= len(palette) {
			idx = 0
		}
		col := palette[idx]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
