package tetris

import "github.com/MrBanana2045/Teteis/internal/core"

// Playfield dimensions.
const (
	Rows = 20
	Cols = 10
)

// Grid is the occupancy matrix: 0 empty, 1 filled.
type Grid [Rows][Cols]uint8

// ColorGrid holds the color of each filled cell; core.ColorNone marks an empty cell.
type ColorGrid [Rows][Cols]core.Color

// Board is the playfield. Grid and Colors are always mutated together so
// that a cell is filled exactly when it holds a color.
type Board struct {
	Grid   Grid
	Colors ColorGrid
}

// Reset empties the board.
func (b *Board) Reset() {
	*b = Board{}
}

// Collide reports whether p, shifted by (dx, dy), leaves the playfield
// horizontally, drops below the last row, or overlaps a filled cell.
// Cells above row 0 are only checked against the side walls.
func Collide(g *Grid, p Piece, dx, dy int) bool {
	hit := false
	p.cells(dx, dy, func(col, row int) bool {
		if col < 0 || col >= Cols || row >= Rows {
			hit = true
			return false
		}
		if row >= 0 && g[row][col] == 1 {
			hit = true
			return false
		}
		return true
	})
	return hit
}

// Collide is shorthand for Collide(&b.Grid, p, dx, dy).
func (b *Board) Collide(p Piece, dx, dy int) bool {
	return Collide(&b.Grid, p, dx, dy)
}

// Lock writes the piece's cells into the board.
// The caller must have checked that the piece's position does not collide;
// no bounds checking is done here.
func (b *Board) Lock(p Piece) {
	p.cells(0, 0, func(col, row int) bool {
		b.Grid[row][col] = 1
		b.Colors[row][col] = p.Color
		return true
	})
}

// ClearLines removes every full row and compacts the remaining rows toward
// the bottom, preserving their order. Returns the number of rows removed.
func (b *Board) ClearLines() int {
	var next Board
	dst := Rows - 1
	cleared := 0

	for y := Rows - 1; y >= 0; y-- {
		if rowFull(&b.Grid[y]) {
			cleared++
			continue
		}
		next.Grid[dst] = b.Grid[y]
		next.Colors[dst] = b.Colors[y]
		dst--
	}

	*b = next
	return cleared
}

func rowFull(row *[Cols]uint8) bool {
	for _, c := range row {
		if c != 1 {
			return false
		}
	}
	return true
}

// Filled counts the occupied cells.
func (b *Board) Filled() int {
	n := 0
	for y := range b.Grid {
		for x := range b.Grid[y] {
			n += int(b.Grid[y][x])
		}
	}
	return n
}
