package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	tcore "github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// Layout constants, in terminal cells.
const (
	cellWidth = 2 // each board cell is drawn two columns wide
	panelW    = 18
	panelGap  = 1
)

// Layout is the on-screen placement of the board and the side panel.
type Layout struct {
	Board    core.Rect // board frame including the border
	Panel    core.Rect
	TooSmall bool
}

// Cells returns the inner playfield area, excluding the border.
func (l Layout) Cells() core.Rect {
	return core.NewRect(l.Board.X+1, l.Board.Y+1, l.Board.W-2, l.Board.H-2)
}

// CellAt converts a screen position to a board cell.
// ok is false when the position lies outside the playfield.
func (l Layout) CellAt(x, y int) (col, row int, ok bool) {
	inner := l.Cells()
	if l.TooSmall || !inner.Contains(x, y) {
		return 0, 0, false
	}
	return (x - inner.X) / cellWidth, y - inner.Y, true
}

// ComputeLayout centers the board and panel on a w x h screen.
func ComputeLayout(boardW, boardH, w, h int) Layout {
	frameW := boardW*cellWidth + 2
	frameH := boardH + 2
	totalW := frameW + panelGap + panelW

	x := max(0, (w-totalW)/2)
	y := max(0, (h-frameH)/2)

	return Layout{
		Board:    core.NewRect(x, y, frameW, frameH),
		Panel:    core.NewRect(x+frameW+panelGap, y, panelW, min(frameH, 12)),
		TooSmall: w < totalW || h < frameH,
	}
}

// Layout returns the placement for a screen of the given size.
func (g *Game) Layout(w, h int) Layout {
	return ComputeLayout(g.cfg.Board.Width, g.cfg.Board.Height, w, h)
}

// BoardRect returns the playfield area on a w x h screen.
func (g *Game) BoardRect(w, h int) core.Rect {
	return g.Layout(w, h).Cells()
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	layout := g.Layout(dst.Width(), dst.Height())
	if layout.TooSmall {
		g.renderTooSmall(dst, layout)
		return
	}

	snap := g.engine.Snapshot()
	g.renderBoard(dst, layout, snap)
	g.renderPanel(dst, layout, snap)
	g.renderOverlay(dst, layout, snap)
}

func (g *Game) renderTooSmall(dst *core.Screen, layout Layout) {
	need := fmt.Sprintf("need %dx%d", layout.Board.W+panelGap+panelW, layout.Board.H)
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Terminal too small")
	dst.DrawTextCentered(y, need)
}

func (g *Game) renderBoard(dst *core.Screen, layout Layout, snap tcore.Snapshot) {
	dst.DrawBoxColored(layout.Board, core.ColorWhite)

	inner := layout.Cells()
	for row, cells := range snap.Composite() {
		for col, v := range cells {
			x := inner.X + col*cellWidth
			y := inner.Y + row
			if v == 0 {
				dst.SetColored(x, y, ' ', core.PaletteColor(0))
				dst.SetColored(x+1, y, '·', core.PaletteColor(0))
				continue
			}
			color := core.PaletteColor(v)
			dst.SetColored(x, y, '█', color)
			dst.SetColored(x+1, y, '█', color)
		}
	}
}

func (g *Game) renderPanel(dst *core.Screen, layout Layout, snap tcore.Snapshot) {
	p := layout.Panel
	dst.DrawBoxColored(p, core.ColorWhite)
	dst.DrawTextColored(p.X+2, p.Y, " TETRIS ", core.ColorBrightCyan)

	lines := []struct {
		label string
		value string
	}{
		{"Score", fmt.Sprintf("%d", snap.Score)},
		{"Level", fmt.Sprintf("%d", snap.Level)},
		{"Lines", fmt.Sprintf("%d", snap.Lines)},
		{"Pieces", fmt.Sprintf("%d", snap.Spawned)},
		{"Speed", fmt.Sprintf("%dms", snap.DropInterval.Milliseconds())},
	}
	for i, l := range lines {
		y := p.Y + 2 + i
		if y >= p.Bottom()-1 {
			break
		}
		dst.DrawTextColored(p.X+2, y, l.label, core.ColorGray)
		dst.DrawTextColored(p.Right()-2-len(l.value), y, l.value, core.ColorBrightWhite)
	}

	status, color := statusLabel(snap)
	if y := p.Bottom() - 2; y > p.Y+2+len(lines) {
		dst.DrawTextColored(p.X+2, y, status, color)
	}
}

func statusLabel(snap tcore.Snapshot) (string, core.Color) {
	switch {
	case snap.Status == tcore.StatusGameOver:
		return "GAME OVER", core.ColorBrightRed
	case snap.Paused:
		return "PAUSED", core.ColorYellow
	case snap.Status == tcore.StatusIdle:
		return "READY", core.ColorGreen
	default:
		return "PLAYING", core.ColorBrightGreen
	}
}

func (g *Game) renderOverlay(dst *core.Screen, layout Layout, snap tcore.Snapshot) {
	var lines []string
	var color core.Color
	switch {
	case snap.Status == tcore.StatusIdle:
		lines = []string{"TETRIS", "", "ENTER to start"}
		color = core.ColorBrightCyan
	case snap.Status == tcore.StatusGameOver:
		lines = []string{"GAME OVER", fmt.Sprintf("Score %d", snap.Score), "", "R to restart"}
		color = core.ColorBrightRed
	case snap.Paused:
		lines = []string{"PAUSED", "", "P to resume"}
		color = core.ColorYellow
	default:
		return
	}

	inner := layout.Cells()
	cx, cy := inner.Center()
	top := cy - len(lines)/2
	for i, text := range lines {
		if text == "" {
			continue
		}
		w := len([]rune(text))
		box := core.NewRect(cx-w/2-1, top+i, w+2, 1)
		dst.DrawRect(box, ' ', core.ColorDefault)
		dst.DrawTextColored(box.X+1, box.Y, text, color)
	}
}

// Controls returns the in-game control hints shown by the pieces command.
func Controls() []string {
	return []string{
		"←/→ A/D H/L  move",
		"↑ W X K      rotate",
		"↓ S J        soft drop",
		"Enter Space  start",
		"P Esc        pause",
		"R            restart",
		"Q Ctrl+C     quit",
		"mouse: tap rotate, drag move, swipe down drop",
	}
}
