//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"blockfall/internal/render"
	"blockfall/internal/tetris"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const panelPadding = 8

// Overlay draws the score, the preview piece, and the game-over banner in a
// panel to the right of the well.
type Overlay struct {
	board   *tetris.Board
	scale   int
	palette []color.RGBA
	pixel   *ebiten.Image
}

// NewOverlay constructs an overlay for the given board.
func NewOverlay(board *tetris.Board, scale int) *Overlay {
	o := &Overlay{board: board, scale: scale, palette: render.Palette()}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// PanelWidth returns the pixel width the overlay needs beside the well.
func (o *Overlay) PanelWidth() int { return 6*o.scale + 2*panelPadding }

// Draw renders the panel onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.board.Size()
	face := basicfont.Face7x13
	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}

	x := size.Cols*o.scale + panelPadding
	y := panelPadding + face.Height

	text.Draw(screen, "SCORE", face, x, y, fg)
	y += face.Height + 2
	text.Draw(screen, strconv.Itoa(o.board.Score()), face, x, y, fg)

	y += 2 * face.Height
	text.Draw(screen, "NEXT", face, x, y, fg)
	y += 4
	o.drawPreview(screen, x, y)

	if o.board.GameOver() {
		y += 4*o.scale + 2*face.Height
		text.Draw(screen, "GAME OVER", face, x, y, color.RGBA{R: 255, G: 64, B: 64, A: 255})
		y += face.Height + 2
		text.Draw(screen, "R restarts", face, x, y, fg)
	}
}

// drawPreview renders the preview piece straight from the shape table; the
// preview is never stamped into the grid.
func (o *Overlay) drawPreview(screen *ebiten.Image, px, py int) {
	next := o.board.Next()
	col := o.palette[next.Type]
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			if !tetris.Occupied(next.Type, x, y, next.Rotation) {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(float64(o.scale), float64(o.scale))
			op.GeoM.Translate(float64(px+y*o.scale), float64(py+x*o.scale))
			op.ColorScale.ScaleWithColor(col)
			screen.DrawImage(o.pixel, op)
		}
	}
}
