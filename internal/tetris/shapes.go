package tetris

// Cell identifies the contents of one grid cell: empty, or the tetromino
// color left behind by the piece that occupied it.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellI
	CellJ
	CellL
	CellO
	CellS
	CellT
	CellZ
)

// Shapes is the tetromino catalog. Each entry is a 16-bit occupancy mask over
// a 4x4 window, read column-major at rotation 0; the other three rotations
// reuse the same mask through the index permutations in CellIndex. Index 0 is
// the all-clear sentinel for an absent piece.
var Shapes = [8]uint16{
	CellEmpty: 0b0000000000000000,
	CellI:     0b0010001000100010,
	CellJ:     0b0010011001000000,
	CellL:     0b0100011000100000,
	CellO:     0b0000011001100000,
	CellS:     0b0010011000100000,
	CellT:     0b0000011000100010,
	CellZ:     0b0000011001000100,
}

// CellIndex maps a local (x, y) coordinate in 0..3 to the bit position inside
// a shape mask under rotation r. The four mappings are the algebraic
// quarter-turn permutations of the 4x4 index space, so no per-rotation masks
// are stored. r is reduced modulo 4 and may be negative.
func CellIndex(x, y, r int) int {
	switch ((r % 4) + 4) % 4 {
	case 0:
		return y*4 + x
	case 1:
		return 12 + y - x*4
	case 2:
		return 15 - y*4 - x
	case 3:
		return 3 - y + x*4
	}
	return 0
}

// Occupied reports whether shape t fills the local cell (x, y) at rotation r.
func Occupied(t Cell, x, y, r int) bool {
	return Shapes[t]&(1<<CellIndex(x, y, r)) != 0
}
