package window

import (
	"github.com/MrBanana2045/Teteis/internal/core"
	"github.com/MrBanana2045/Teteis/internal/games/tetris"
)

// Block is one filled playfield cell in pixel space.
type Block struct {
	X, Y, Size float32
	Color      core.Color
}

// Blocks returns the locked cells followed by the active piece cells,
// positioned on a grid of blockSize pixels. Piece cells above the top edge
// are skipped.
func Blocks(board tetris.Board, piece tetris.Piece, blockSize float32) []Block {
	blocks := make([]Block, 0, tetris.Rows*tetris.Cols)
	for y := 0; y < tetris.Rows; y++ {
		for x := 0; x < tetris.Cols; x++ {
			if board.Grid[y][x] == 1 && board.Colors[y][x] != core.ColorNone {
				blocks = append(blocks, Block{
					X:     float32(x) * blockSize,
					Y:     float32(y) * blockSize,
					Size:  blockSize,
					Color: board.Colors[y][x],
				})
			}
		}
	}

	for y := 0; y < piece.Shape.H; y++ {
		for x := 0; x < piece.Shape.W; x++ {
			if !piece.Shape.Filled(x, y) || piece.Y+y < 0 {
				continue
			}
			blocks = append(blocks, Block{
				X:     float32(piece.X+x) * blockSize,
				Y:     float32(piece.Y+y) * blockSize,
				Size:  blockSize,
				Color: piece.Color,
			})
		}
	}
	return blocks
}
