package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth  = 2  // Screen columns per board cell
	panelGap   = 2  // Space between the board and the side panel
	panelWidth = 12 // Width of the side panel
	previewH   = 4  // Rows reserved for a piece preview
)

const (
	blockRune  = '█'
	emptyRune  = '·'
	lockedTint = core.ColorGray
)

// Render draws the playfield, previews, score panel and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.session.Snapshot()

	boardW := snap.Board.Cols()*cellWidth + 2
	boardH := snap.Board.Rows() + 2
	totalW := boardW + panelGap + panelWidth

	if dst.Width() < totalW || dst.Height() < boardH {
		renderTooSmall(dst)
		return
	}

	boardX := (dst.Width() - totalW) / 2
	boardY := (dst.Height() - boardH) / 2
	frame := core.NewRect(boardX, boardY, boardW, boardH)

	dst.DrawBox(frame)
	renderBoard(dst, snap, boardX+1, boardY+1)
	renderPanel(dst, snap, frame.Right()+panelGap, boardY)
	renderOverlays(dst, snap, frame)
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderBoard draws locked cells and the active piece with (x0, y0) as the
// top-left board cell.
func renderBoard(dst *core.Screen, snap Snapshot, x0, y0 int) {
	for y := 0; y < snap.Board.Rows(); y++ {
		for x := 0; x < snap.Board.Cols(); x++ {
			if snap.Board.Filled(x, y) {
				drawCell(dst, x0, y0, x, y, blockRune, lockedTint)
			} else {
				drawCell(dst, x0, y0, x, y, emptyRune, core.ColorDefault)
			}
		}
	}

	if snap.State == StateGameOver {
		return
	}

	color := snap.Active.Type.Color()
	well := core.NewRect(0, 0, snap.Board.Cols(), snap.Board.Rows())
	for c := range snap.Active.Cells() {
		if !well.Contains(c.X, c.Y) {
			continue
		}
		drawCell(dst, x0, y0, c.X, c.Y, blockRune, color)
	}
}

func drawCell(dst *core.Screen, x0, y0, x, y int, r rune, c core.Color) {
	sx := x0 + x*cellWidth
	sy := y0 + y
	if r == emptyRune {
		dst.SetColor(sx, sy, ' ', c)
		dst.SetColor(sx+1, sy, r, c)
		return
	}
	dst.SetColor(sx, sy, r, c)
	dst.SetColor(sx+1, sy, r, c)
}

// renderPanel draws the next and hold previews and the counters.
func renderPanel(dst *core.Screen, snap Snapshot, x, y int) {
	dst.DrawText(x, y, "NEXT")
	renderPreview(dst, BaseShape(snap.Next), snap.Next.Color(), x, y+1)
	y += previewH + 2

	holdLabel := "HOLD"
	holdColor := core.ColorDefault
	if !snap.CanHold {
		holdColor = core.ColorGray
	}
	dst.DrawTextColor(x, y, holdLabel, holdColor)
	if snap.Held != nil {
		tint := snap.Held.Type.Color()
		if !snap.CanHold {
			tint = core.ColorGray
		}
		renderPreview(dst, snap.Held.Shape, tint, x, y+1)
	}
	y += previewH + 2

	dst.DrawText(x, y, "SCORE")
	dst.DrawTextColor(x, y+1, fmt.Sprintf("%d", snap.Score), core.ColorYellow)
	dst.DrawText(x, y+3, "LINES")
	dst.DrawText(x, y+4, fmt.Sprintf("%d", snap.Lines))
	dst.DrawText(x, y+6, "LEVEL")
	dst.DrawText(x, y+7, fmt.Sprintf("%d", snap.Level))
}

// renderPreview draws shape with its top-left cell at (x, y), skipping
// rows that are entirely empty.
func renderPreview(dst *core.Screen, shape Shape, c core.Color, x, y int) {
	row := 0
	for _, cells := range shape {
		empty := true
		for col, filled := range cells {
			if !filled {
				continue
			}
			empty = false
			dst.SetColor(x+col*cellWidth, y+row, blockRune, c)
			dst.SetColor(x+col*cellWidth+1, y+row, blockRune, c)
		}
		if !empty {
			row++
		}
		if row >= previewH {
			return
		}
	}
}

// renderOverlays draws the pause and game over banners inside the frame.
func renderOverlays(dst *core.Screen, snap Snapshot, frame core.Rect) {
	var lines []string
	switch snap.State {
	case StatePaused:
		lines = []string{"PAUSED", "P to resume"}
	case StateGameOver:
		lines = []string{"GAME OVER", fmt.Sprintf("Score: %d", snap.Score), "R to restart"}
	default:
		return
	}

	midY := frame.Y + frame.H/2 - len(lines)/2
	for i, line := range lines {
		w := len([]rune(line))
		x := frame.X + (frame.W-w)/2
		dst.DrawRect(core.NewRect(x-1, midY+i, w+2, 1), ' ')
		dst.DrawTextColor(x, midY+i, line, core.ColorWhite)
	}
}
