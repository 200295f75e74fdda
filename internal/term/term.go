// Package term is the terminal frontend: it paints the well, the preview
// piece, and the score with tcell, and runs the driving loop that feeds the
// board one command per tick.
package term

import (
	"strconv"
	"time"

	"blockfall/internal/core"
	"blockfall/internal/tetris"

	"github.com/gdamore/tcell/v2"
)

// cellColors maps cell tags to terminal colors; index 0 is the empty cell.
var cellColors = [8]tcell.Color{
	tcell.ColorDefault,
	tcell.ColorAqua,    // I
	tcell.ColorBlue,    // J
	tcell.ColorWhite,   // L
	tcell.ColorYellow,  // O
	tcell.ColorGreen,   // S
	tcell.ColorFuchsia, // T
	tcell.ColorRed,     // Z
}

// UI owns the tcell screen and the board it displays.
type UI struct {
	screen tcell.Screen
	board  *tetris.Board
	tps    int
	seed   int64

	// playing mirrors the engine's continue result: once Advance reports the
	// terminal state the loop stops ticking the board and only accepts a
	// restart or quit.
	playing bool
}

// New initializes the terminal screen for the given board.
func New(board *tetris.Board, tps int, seed int64) (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	return &UI{screen: screen, board: board, tps: tps, seed: seed, playing: true}, nil
}

// Run drives the game until the player quits. Input events are pumped on a
// separate goroutine; between ticks only the last unconsumed command is kept,
// earlier ones are overwritten.
func (u *UI) Run() error {
	defer u.screen.Fini()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	step := core.NewFixedStep(u.tps)
	cmd := tetris.CmdNone
	for {
	drain:
		for {
			select {
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					quit := false
					cmd, quit = u.handleKey(ev, cmd)
					if quit {
						return nil
					}
				case *tcell.EventResize:
					u.screen.Sync()
				}
			default:
				break drain
			}
		}

		if step.ShouldStep() {
			u.tick(cmd)
			cmd = tetris.CmdNone
		}
		time.Sleep(time.Millisecond)
	}
}

// tick advances the board once while the game is still running and repaints.
// After Advance reports the terminal state the board is left untouched until
// a restart.
func (u *UI) tick(cmd tetris.Command) {
	if u.playing {
		u.playing = u.board.Advance(cmd)
	}
	u.draw()
	u.screen.Show()
}

// handleKey translates a key event into the pending tick command. It returns
// the new pending command and whether the player asked to quit.
func (u *UI) handleKey(ev *tcell.EventKey, cmd tetris.Command) (tetris.Command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmd, true
	case tcell.KeyLeft:
		return tetris.CmdLeft, false
	case tcell.KeyRight:
		return tetris.CmdRight, false
	case tcell.KeyUp:
		return tetris.CmdRotateCW, false
	case tcell.KeyDown:
		return tetris.CmdDrop, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return cmd, true
		case 'z', 'x':
			return tetris.CmdRotateCCW, false
		case ' ':
			return tetris.CmdDrop, false
		case 'r':
			u.board.Reset(u.seed)
			u.playing = true
			return tetris.CmdNone, false
		}
	}
	return cmd, false
}

func (u *UI) draw() {
	u.screen.Clear()
	u.drawField()
	u.drawNext()
	u.drawScore()
	if u.board.GameOver() {
		u.drawGameOver()
	}
}

// drawField paints the boxed well, two terminal columns per cell in reverse
// video so blocks show as solid rectangles.
func (u *UI) drawField() {
	size := u.board.Size()
	u.drawBox(0, 0, 2*size.Cols+2, size.Rows+2)
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			cell := u.board.CellAt(row, col)
			if cell == tetris.CellEmpty {
				continue
			}
			style := tcell.StyleDefault.Background(cellColors[cell])
			u.screen.SetContent(1+2*col, 1+row, ' ', nil, style)
			u.screen.SetContent(2+2*col, 1+row, ' ', nil, style)
		}
	}
}

// drawNext renders the preview box from the shape table; the preview piece
// is never stamped into the grid.
func (u *UI) drawNext() {
	size := u.board.Size()
	ox := 2*(size.Cols+1) + 1
	u.drawBox(ox, 0, 10, 6)
	next := u.board.Next()
	style := tcell.StyleDefault.Background(cellColors[next.Type])
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			if !tetris.Occupied(next.Type, x, y, next.Rotation) {
				continue
			}
			u.screen.SetContent(ox+1+2*y, 1+x, ' ', nil, style)
			u.screen.SetContent(ox+2+2*y, 1+x, ' ', nil, style)
		}
	}
}

func (u *UI) drawScore() {
	size := u.board.Size()
	ox := 2*(size.Cols+1) + 1
	u.drawBox(ox, 7, 10, 4)
	u.drawText(ox+1, 8, "Score")
	u.drawText(ox+1, 9, strconv.Itoa(u.board.Score()))
}

func (u *UI) drawGameOver() {
	size := u.board.Size()
	row := size.Rows / 2
	u.drawText(1, row, " GAME OVER ")
	u.drawText(1, row+1, " r:restart q:quit ")
}

func (u *UI) drawBox(x, y, w, h int) {
	st := tcell.StyleDefault
	for i := x + 1; i < x+w-1; i++ {
		u.screen.SetContent(i, y, tcell.RuneHLine, nil, st)
		u.screen.SetContent(i, y+h-1, tcell.RuneHLine, nil, st)
	}
	for j := y + 1; j < y+h-1; j++ {
		u.screen.SetContent(x, j, tcell.RuneVLine, nil, st)
		u.screen.SetContent(x+w-1, j, tcell.RuneVLine, nil, st)
	}
	u.screen.SetContent(x, y, tcell.RuneULCorner, nil, st)
	u.screen.SetContent(x+w-1, y, tcell.RuneURCorner, nil, st)
	u.screen.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, st)
	u.screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, st)
}

func (u *UI) drawText(x, y int, s string) {
	st := tcell.StyleDefault
	for i, r := range s {
		u.screen.SetContent(x+i, y, r, nil, st)
	}
}
