package core

// Size describes the dimensions of a game grid in cells.
type Size struct {
	Rows int
	Cols int
}
