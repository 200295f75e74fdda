package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	Rows, Cols int
	data       []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(rows, cols int) *ByteGrid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &ByteGrid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for the cell at (row, col).
func (g *ByteGrid) Index(row, col int) int { return row*g.Cols + col }

// InBounds reports whether (row, col) lies inside the grid.
func (g *ByteGrid) InBounds(row, col int) bool {
	return 0 <= row && row < g.Rows && 0 <= col && col < g.Cols
}

// At returns the value stored at (row, col). Coordinates must be in bounds.
func (g *ByteGrid) At(row, col int) uint8 { return g.data[g.Index(row, col)] }

// Set writes v at (row, col). Coordinates must be in bounds.
func (g *ByteGrid) Set(row, col int, v uint8) { g.data[g.Index(row, col)] = v }

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
