package tetris

import (
	"fmt"

	"github.com/MrBanana2045/Teteis/internal/core"
)

const (
	cellWidth = 2 // Terminal columns per block
	hudHeight = 2
	boardW    = Cols*cellWidth + 2 // Including border
	boardH    = Rows + 2
	minW      = boardW
	minH      = boardH + hudHeight
)

// Render draws the playfield, the active piece and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minW || dst.Height() < minH {
		g.renderTooSmall(dst)
		return
	}

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX)
	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH), core.ColorGray)

	originX, originY := boardX+1, boardY+1
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if g.board.Grid[y][x] == 1 {
				drawBlock(dst, originX+x*cellWidth, originY+y, g.board.Colors[y][x])
			} else {
				dst.SetWithColor(originX+x*cellWidth+1, originY+y, '·', core.ColorDarkGray)
			}
		}
	}

	if g.phase == PhasePlaying {
		g.piece.cells(0, 0, func(col, row int) bool {
			if row >= 0 {
				drawBlock(dst, originX+col*cellWidth, originY+row, g.piece.Color)
			}
			return true
		})
	}

	centerX := boardX + boardW/2
	centerY := boardY + boardH/2
	switch {
	case g.phase != PhasePlaying:
		drawOverlay(dst, centerX, centerY, core.ColorRed, "Game OVER!")
	case g.paused:
		drawOverlay(dst, centerX, centerY, core.ColorWhite, "PAUSED", "Press P to resume")
	}
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	dst.SetWithColor(x, y, '█', c)
	dst.SetWithColor(x+1, y, '█', c)
}

func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	dst.DrawTextColor(boardX, 0, fmt.Sprintf("SCORE : %d", g.score), core.ColorWhite)
	lines := fmt.Sprintf("LINES : %d", g.lines)
	dst.DrawTextColor(boardX+boardW-len(lines), 0, lines, core.ColorGray)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorNone)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH), core.ColorNone)
}

// drawOverlay draws a boxed, centered message.
func drawOverlay(dst *core.Screen, centerX, centerY int, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), c)

	for i, line := range lines {
		dst.DrawTextColor(centerX-len(line)/2, boxY+1+i, line, c)
	}
}
