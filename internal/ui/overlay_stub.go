//go:build !ebiten

package ui

import "blockfall/internal/tetris"

// Overlay is a placeholder that satisfies the API expected by the GUI build.
type Overlay struct{}

// NewOverlay panics to indicate that the ebiten build tag is required.
func NewOverlay(*tetris.Board, int) *Overlay {
	panic("ui.NewOverlay requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (o *Overlay) Draw(any) {}
