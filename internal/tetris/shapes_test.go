package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeCellCounts(t *testing.T) {
	assert.Zero(t, Shapes[CellEmpty], "empty sentinel must have no occupied cells")
	for tet := CellI; tet <= CellZ; tet++ {
		count := 0
		for x := 0; x < 4; x++ {
			for y := 0; y < 4; y++ {
				if Occupied(tet, x, y, 0) {
					count++
				}
			}
		}
		assert.Equalf(t, 4, count, "shape %d must occupy exactly four cells", tet)
	}
}

func TestCellIndexIsPermutation(t *testing.T) {
	for r := 0; r < 4; r++ {
		seen := make(map[int]bool, 16)
		for x := 0; x < 4; x++ {
			for y := 0; y < 4; y++ {
				idx := CellIndex(x, y, r)
				require.GreaterOrEqual(t, idx, 0)
				require.Less(t, idx, 16)
				require.Falsef(t, seen[idx], "rotation %d maps two cells to bit %d", r, idx)
				seen[idx] = true
			}
		}
	}
}

func TestCellIndexQuarterTurnAlgebra(t *testing.T) {
	// Reading the mask at rotation r+1 must equal reading it at rotation r
	// with coordinates turned a quarter clockwise inside the 4x4 window.
	for tet := CellI; tet <= CellZ; tet++ {
		for x := 0; x < 4; x++ {
			for y := 0; y < 4; y++ {
				assert.Equal(t, Occupied(tet, y, 3-x, 0), Occupied(tet, x, y, 1))
				assert.Equal(t, Occupied(tet, 3-x, 3-y, 0), Occupied(tet, x, y, 2))
				assert.Equal(t, Occupied(tet, 3-y, x, 0), Occupied(tet, x, y, 3))
			}
		}
	}
}

func TestCellIndexModulo(t *testing.T) {
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			for r := 0; r < 4; r++ {
				assert.Equal(t, CellIndex(x, y, r), CellIndex(x, y, r+4))
				assert.Equal(t, CellIndex(x, y, r), CellIndex(x, y, r-4))
			}
		}
	}
}
