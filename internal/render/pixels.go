package render

import "image/color"

// Palette returns the cell-tag color table: background at index 0 followed by
// the seven tetromino colors (I, J, L, O, S, T, Z).
func Palette() []color.RGBA {
	return []color.RGBA{
		{R: 16, G: 16, B: 16, A: 255},    // empty
		{R: 0, G: 255, B: 255, A: 255},   // I cyan
		{R: 64, G: 96, B: 255, A: 255},   // J blue
		{R: 240, G: 240, B: 240, A: 255}, // L white
		{R: 255, G: 220, B: 0, A: 255},   // O yellow
		{R: 0, G: 224, B: 64, A: 255},    // S green
		{R: 224, G: 64, B: 224, A: 255},  // T magenta
		{R: 255, G: 48, B: 48, A: 255},   // Z red
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
