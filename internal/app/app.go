//go:build ebiten

package app

import (
	"image/color"
	"time"

	"blockfall/internal/render"
	"blockfall/internal/tetris"
	"blockfall/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a tetris board to the ebiten.Game interface. Each Update is one
// discrete tick; ebiten's TPS setting is the external rate limit.
type Game struct {
	board   *tetris.Board
	painter *render.GridPainter
	overlay *ui.Overlay
	palette []color.RGBA

	scale  int
	paused bool
	seed   int64
}

// New constructs a Game for the provided board.
func New(board *tetris.Board, scale int, seed int64) *Game {
	size := board.Size()
	return &Game{
		board:   board,
		painter: render.NewGridPainter(size.Rows, size.Cols),
		overlay: ui.NewOverlay(board, scale),
		palette: render.Palette(),
		scale:   scale,
		seed:    seed,
	}
}

// Reset restarts the game with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.board.Reset(seed)
	g.paused = false
}

// Update maps input to a single tick command and advances the board.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	cmd := tetris.CmdNone
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		cmd = tetris.CmdLeft
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		cmd = tetris.CmdRight
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		cmd = tetris.CmdRotateCW
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		cmd = tetris.CmdRotateCCW
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		cmd = tetris.CmdDrop
	}

	if !g.paused {
		g.board.Advance(cmd)
	}
	return nil
}

// Draw renders the well and the side panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.board.Cells(), g.palette, g.scale, 0, 0)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.board.Size()
	return size.Cols*g.scale + g.overlay.PanelWidth(), size.Rows * g.scale
}
