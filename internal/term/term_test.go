package term

import (
	"testing"

	"blockfall/internal/tetris"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUI(t *testing.T) *UI {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)

	board := tetris.New(tetris.Config{Rows: 22, Cols: 10, TicksPerDrop: 10000, Seed: 1})
	return &UI{screen: screen, board: board, tps: 60, seed: 1, playing: true}
}

func TestHandleKeyMapsCommands(t *testing.T) {
	u := newTestUI(t)

	cases := []struct {
		ev   *tcell.EventKey
		want tetris.Command
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), tetris.CmdLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), tetris.CmdRight},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), tetris.CmdRotateCW},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), tetris.CmdDrop},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), tetris.CmdRotateCCW},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), tetris.CmdRotateCCW},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), tetris.CmdDrop},
	}
	for _, c := range cases {
		cmd, quit := u.handleKey(c.ev, tetris.CmdNone)
		assert.False(t, quit)
		assert.Equal(t, c.want, cmd)
	}

	_, quit := u.handleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), tetris.CmdNone)
	assert.True(t, quit)
	_, quit = u.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), tetris.CmdNone)
	assert.True(t, quit)
}

func TestTickStopsDrivingBoardAfterGameOver(t *testing.T) {
	u := newTestUI(t)
	// Settle a cell inside the spawn buffer so the next tick is terminal.
	u.board.Cells()[1*10+9] = uint8(tetris.CellZ)

	u.tick(tetris.CmdNone)
	require.False(t, u.playing, "continue result must switch the loop out of play mode")
	require.True(t, u.board.GameOver())

	snapshot := append([]uint8(nil), u.board.Cells()...)
	u.tick(tetris.CmdDrop)
	u.tick(tetris.CmdLeft)
	assert.False(t, u.playing)
	assert.Equal(t, snapshot, u.board.Cells(), "frozen board stays untouched while game over")
}

func TestRestartResumesPlay(t *testing.T) {
	u := newTestUI(t)
	u.board.Cells()[0] = uint8(tetris.CellZ)
	u.tick(tetris.CmdNone)
	require.False(t, u.playing)

	cmd, quit := u.handleKey(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), tetris.CmdDrop)
	assert.False(t, quit)
	assert.Equal(t, tetris.CmdNone, cmd, "restart discards the pending command")
	assert.True(t, u.playing)
	assert.False(t, u.board.GameOver())
	assert.Zero(t, u.board.Score())
}
