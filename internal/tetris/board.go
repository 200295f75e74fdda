package tetris

import "blockfall/internal/core"

// Command enumerates the per-tick inputs accepted by Advance. At most one
// command applies per tick; the driver is expected to keep only the last
// unconsumed input.
type Command uint8

const (
	CmdNone Command = iota
	CmdLeft
	CmdRight
	CmdRotateCW
	CmdRotateCCW
	CmdDrop
)

// Piece records a tetromino's anchor position and rotation on the grid. The
// cells it occupies are the set bits of its shape mask offset by the anchor.
type Piece struct {
	Type     Cell
	Row      int
	Col      int
	Rotation int
}

// lineRewards indexes the score awarded by rows cleared in a single tick. A
// single piece is at most four cells tall, so five entries suffice.
var lineRewards = [5]int{0, 40, 100, 300, 1200}

// spawnRows is the height of the buffer at the top of the well; any settled
// cell inside it ends the game.
const spawnRows = 2

// Board owns the grid, the active/preview piece pair, the score, and the drop
// timer. It is single-threaded: exactly one Advance call per external tick.
type Board struct {
	cfg  Config
	grid *core.ByteGrid
	rng  *core.RNG

	curr  Piece
	next  Piece
	score int

	ticksTillDrop int

	// blocked means the active piece could not be stamped at spawn because
	// settled cells already occupy its starting position. The piece is not on
	// the grid, so stamp and remove are no-ops until the next Reset.
	blocked bool
	over    bool
}

// New constructs a board from cfg, filling non-positive dimensions and timer
// values from DefaultConfig, and spawns the first active/preview pair.
func New(cfg Config) *Board {
	def := DefaultConfig()
	if cfg.Rows <= 0 {
		cfg.Rows = def.Rows
	}
	if cfg.Cols <= 0 {
		cfg.Cols = def.Cols
	}
	if cfg.TicksPerDrop <= 0 {
		cfg.TicksPerDrop = def.TicksPerDrop
	}
	b := &Board{cfg: cfg, grid: core.NewByteGrid(cfg.Rows, cfg.Cols)}
	b.Reset(cfg.Seed)
	return b
}

// Reset clears the grid and score and restarts the piece queue from seed.
// The first spawn populates the preview, the second promotes it to active.
func (b *Board) Reset(seed int64) {
	b.grid.Clear()
	b.rng = core.NewRNG(seed)
	b.score = 0
	b.blocked = false
	b.over = false
	b.curr = Piece{}
	b.next = Piece{}
	b.spawn()
	b.spawn()
}

// Size returns the grid dimensions.
func (b *Board) Size() core.Size { return core.Size{Rows: b.grid.Rows, Cols: b.grid.Cols} }

// CellAt returns the grid contents at (row, col). Coordinates must be inside
// [0, rows) x [0, cols); the board itself never calls it out of range.
func (b *Board) CellAt(row, col int) Cell { return Cell(b.grid.At(row, col)) }

// Cells exposes the row-major cell buffer for painters. Read-only by
// convention; the grid is owned and mutated exclusively by the board.
func (b *Board) Cells() []uint8 { return b.grid.Cells() }

// Score returns the current score. It never decreases.
func (b *Board) Score() int { return b.score }

// Active returns the falling piece.
func (b *Board) Active() Piece { return b.curr }

// Next returns the preview piece. It is never stamped into the grid, so
// displays must render it from the shape table directly.
func (b *Board) Next() Piece { return b.next }

// GameOver reports whether a previous Advance detected the terminal state.
func (b *Board) GameOver() bool { return b.over }

// Advance runs one tick: gravity if the drop timer elapsed, then cmd, then
// line clearing and scoring, then the game-over check. It returns true while
// the game continues. Once it has returned false the board is frozen.
func (b *Board) Advance(cmd Command) bool {
	if b.over {
		return false
	}
	b.ticksTillDrop--
	if b.ticksTillDrop <= 0 {
		b.gravity()
	}
	switch cmd {
	case CmdLeft:
		b.move(-1)
	case CmdRight:
		b.move(1)
	case CmdRotateCW:
		b.rotate(1)
	case CmdRotateCCW:
		b.rotate(-1)
	case CmdDrop:
		b.drop()
	}
	b.score += lineRewards[b.clearLines()]
	if b.blocked || b.topRowsOccupied() {
		b.over = true
	}
	return !b.over
}

// gravity advances the active piece one row, or locks it and spawns the next
// piece when the row below does not fit.
func (b *Board) gravity() {
	if b.blocked {
		return
	}
	b.remove()
	b.curr.Row++
	if b.fits() {
		b.ticksTillDrop = b.cfg.TicksPerDrop
		b.put()
		return
	}
	b.curr.Row--
	b.put()
	b.spawn()
}

// move shifts the active piece one column in dir (-1 left, +1 right),
// undoing the shift when the destination does not fit.
func (b *Board) move(dir int) {
	if b.blocked {
		return
	}
	b.remove()
	b.curr.Col += dir
	if !b.fits() {
		b.curr.Col -= dir
	}
	b.put()
}

// kickOffsets is the column nudge sequence tried after a rotation: in place,
// one left, one right of center, back to center. The first fit wins; if none
// fits the rotation is still committed at the original column.
var kickOffsets = [4]int{0, -1, 2, -1}

// rotate turns the active piece a quarter-turn in dir (+1 clockwise, -1
// counter-clockwise) and runs the wall-kick search.
func (b *Board) rotate(dir int) {
	if b.blocked {
		return
	}
	b.remove()
	b.curr.Rotation = (((b.curr.Rotation + dir) % 4) + 4) % 4
	for _, d := range kickOffsets {
		b.curr.Col += d
		if b.fits() {
			break
		}
	}
	b.put()
}

// drop is a hard drop: the piece falls until it no longer fits, backs off one
// row, locks, and the next piece spawns immediately.
func (b *Board) drop() {
	if b.blocked {
		return
	}
	b.remove()
	for b.fits() {
		b.curr.Row++
	}
	b.curr.Row--
	b.put()
	b.spawn()
}

// spawn promotes the preview piece to active, draws a fresh random preview,
// and reloads the drop timer. When the promoted piece cannot be stamped
// without overlapping settled cells, the board is marked blocked and the
// piece is left off the grid so settled state is never overwritten.
func (b *Board) spawn() {
	b.curr = b.next
	b.next = Piece{
		Type: Cell(1 + b.rng.IntN(7)),
		Row:  0,
		Col:  b.grid.Cols/2 - 2,
	}
	b.ticksTillDrop = b.cfg.TicksPerDrop
	if !b.fits() {
		b.blocked = true
		return
	}
	b.put()
}

// fits reports whether every occupied cell of the active piece lands in
// bounds on an empty grid cell. It must be queried with the piece's own
// cells already cleared from the grid.
func (b *Board) fits() bool {
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			if !Occupied(b.curr.Type, x, y, b.curr.Rotation) {
				continue
			}
			row, col := b.curr.Row+x, b.curr.Col+y
			if !b.grid.InBounds(row, col) || Cell(b.grid.At(row, col)) != CellEmpty {
				return false
			}
		}
	}
	return true
}

// stamp writes v into every grid cell occupied by the active piece. put and
// remove must always be called in matched pairs around a positional change.
func (b *Board) stamp(v Cell) {
	if b.blocked {
		return
	}
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			if !Occupied(b.curr.Type, x, y, b.curr.Rotation) {
				continue
			}
			row, col := b.curr.Row+x, b.curr.Col+y
			if b.grid.InBounds(row, col) {
				b.grid.Set(row, col, uint8(v))
			}
		}
	}
}

func (b *Board) put()    { b.stamp(b.curr.Type) }
func (b *Board) remove() { b.stamp(CellEmpty) }

// clearLines removes every filled row, compacting the rows above, and returns
// how many were cleared. The active piece is lifted first so a piece mid-fall
// never counts toward row fullness.
func (b *Board) clearLines() int {
	lines := 0
	b.remove()
	for row := b.grid.Rows - 1; row >= 0; row-- {
		if b.rowFilled(row) {
			b.shiftDown(row)
			lines++
			// A new row has shifted into this index; examine it again.
			row++
		}
	}
	b.put()
	return lines
}

func (b *Board) rowFilled(row int) bool {
	for col := 0; col < b.grid.Cols; col++ {
		if Cell(b.grid.At(row, col)) == CellEmpty {
			return false
		}
	}
	return true
}

// shiftDown moves every row above row down by one and clears the vacated top.
func (b *Board) shiftDown(row int) {
	for i := row - 1; i >= 0; i-- {
		for j := 0; j < b.grid.Cols; j++ {
			b.grid.Set(i+1, j, b.grid.At(i, j))
			b.grid.Set(i, j, uint8(CellEmpty))
		}
	}
}

// topRowsOccupied probes the spawn buffer with the active piece lifted; any
// settled cell there means the stack has reached the top.
func (b *Board) topRowsOccupied() bool {
	b.remove()
	defer b.put()
	for row := 0; row < spawnRows; row++ {
		for col := 0; col < b.grid.Cols; col++ {
			if Cell(b.grid.At(row, col)) != CellEmpty {
				return true
			}
		}
	}
	return false
}
