package blockfall

import (
	"github.com/vovakirdan/blockfall/internal/core"
)

const (
	cellWidth = 2 // Each board cell is drawn as two characters
	hudHeight = 1 // Title row above the well
)

func (g *Game) wellSize() (w, h int) {
	if g.board == nil {
		return core.DefaultCols*cellWidth + 2, core.DefaultRows + 2
	}
	return g.board.Cols()*cellWidth + 2, g.board.Rows() + 2
}

func (g *Game) minWidth() int {
	w, _ := g.wellSize()
	return w
}

func (g *Game) minHeight() int {
	_, h := g.wellSize()
	return h + hudHeight
}

// Render draws the board and active piece. The whole frame is cleared first.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.board == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	wellW, wellH := g.wellSize()
	well := core.Rect{
		X: (g.screenW - wellW) / 2,
		Y: hudHeight,
		W: wellW,
		H: wellH,
	}

	title := "B L O C K F A L L"
	dst.DrawText(well.X+(well.W-len(title))/2, 0, title)

	dst.DrawBox(well, core.ColorGray)
	g.renderBoard(dst, well.X+1, well.Y+1)
	if g.phase != PhaseIdle {
		g.renderPiece(dst, well.X+1, well.Y+1)
	}
	g.renderOverlays(dst, well)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// drawBlock draws one board cell at grid-aligned screen coordinates.
func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	dst.SetCell(x, y, core.Cell{Rune: '[', Color: c})
	dst.SetCell(x+1, y, core.Cell{Rune: ']', Color: c})
}

func (g *Game) renderBoard(dst *core.Screen, originX, originY int) {
	for r := 0; r < g.board.Rows(); r++ {
		for c := 0; c < g.board.Cols(); c++ {
			x := originX + c*cellWidth
			y := originY + r
			k, ok := KindOfCell(g.board.At(r, c))
			if !ok {
				dst.SetCell(x+1, y, core.Cell{Rune: '.', Color: core.ColorGray})
				continue
			}
			drawBlock(dst, x, y, g.palette[k])
		}
	}
}

func (g *Game) renderPiece(dst *core.Screen, originX, originY int) {
	color := g.palette[g.piece.Kind]
	for r, line := range g.piece.Shape {
		for c, on := range line {
			row, col := g.piece.Row+r, g.piece.Col+c
			if !on || row < 0 {
				continue
			}
			drawBlock(dst, originX+col*cellWidth, originY+row, color)
		}
	}
}

func (g *Game) renderOverlays(dst *core.Screen, well core.Rect) {
	centerX := well.X + well.W/2
	centerY := well.Y + well.H/2

	switch {
	case g.phase == PhaseGameOver:
		drawOverlay(dst, centerX, centerY, "GAME OVER", "R: restart", "Q: quit")
	case g.paused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "P: resume")
	}
}

// drawOverlay draws a boxed message centered on (centerX, centerY).
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.Rect{W: maxLen + 4, H: len(lines) + 2}
	box.X = centerX - box.W/2
	box.Y = centerY - box.H/2

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	for i, line := range lines {
		dst.DrawTextColor(centerX-len(line)/2, box.Y+1+i, line, core.ColorWhite)
	}
}
