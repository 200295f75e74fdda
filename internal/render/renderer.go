//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from row-major cell data.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a rows*cols grid.
func NewGridPainter(rows, cols int) *GridPainter {
	gp := &GridPainter{rows: rows, cols: cols, buf: make([]byte, 4*rows*cols)}
	gp.img = ebiten.NewImage(cols, rows)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it scaled
// at the given pixel offset.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale, ox, oy int) {
	if len(cells) != gp.rows*gp.cols {
		return
	}
	fillPaletteRGBA(gp.buf, cells, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(ox), float64(oy))
	dst.DrawImage(gp.img, op)
}

// Size returns the grid dimensions of the underlying image.
func (gp *GridPainter) Size() (rows, cols int) { return gp.rows, gp.cols }
