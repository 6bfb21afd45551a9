package cruncher

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/term-cruncher/internal/core"
)

const (
	cellWidth  = 8 // including left border
	cellHeight = 3 // including top border
	hudHeight  = 3
	footerH    = 1
)

// minScreenSize returns the smallest terminal that fits a rows×cols board.
func minScreenSize(rows, cols int) (w, h int) {
	return cols*cellWidth + 1, hudHeight + rows*cellHeight + 1 + footerH
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	rows, cols := g.session.rules.Rows, g.session.rules.Cols
	boardW := cols*cellWidth + 1
	boardH := rows*cellHeight + 1
	boardX := max((g.screenW-boardW)/2, 0)
	boardY := hudHeight

	if g.display.hud {
		g.renderHUD(dst, boardX, boardW)
	}
	if g.display.board {
		g.renderBoard(dst, boardX, boardY)
		g.renderFooter(dst, boardX, boardY+boardH)
	}
	if len(g.display.banner) > 0 {
		renderBanner(dst, g.display.banner)
	}
	if g.paused {
		dst.DrawTextCentered(boardY+boardH/2, " PAUSED ", core.ColorBrightYellow)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := minScreenSize(g.cfg.Board.Rows, g.cfg.Board.Cols)
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", w, h), core.ColorGray)
}

// renderHUD draws the prompt, score and crunch meter.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	s := g.session
	dst.DrawTextCentered(0, g.display.prompt, core.ColorBrightCyan)

	dst.DrawTextColor(boardX, 1, fmt.Sprintf("Score: %d", s.score), core.ColorYellow)

	meter := fmt.Sprintf("Crunch Meter: %d/%d", s.streak, s.rules.RequiredCrunches)
	dst.DrawTextColor(boardX+boardW-len(meter), 1, meter, core.ColorYellow)
}

// renderBoard draws the grid, the tile labels and both actors.
// Board row 0 is the top screen row.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	s := g.session
	rows, cols := s.rules.Rows, s.rules.Cols

	for y := range rows + 1 {
		for x := range cols + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight
			dst.SetColor(px, py, gridCorner(x, y, cols, rows), core.ColorGray)

			if x < cols {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', core.ColorGray)
				}
			}
			if y < rows {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for col := range cols {
		for row := range rows {
			label := s.board.LabelAt(col, row)
			if label == "" {
				continue
			}
			cx := boardX + col*cellWidth + 1
			cy := boardY + row*cellHeight + 1
			dst.DrawTextColor(cx+(cellWidth-1-len(label))/2, cy, label, core.ColorWhite)
		}
	}

	drawActor := func(a Actor, glyph string, c core.Color, offset int) {
		col, row := a.BoardCoord(rows)
		cx := boardX + col*cellWidth + 1
		cy := boardY + row*cellHeight + 2
		dst.DrawTextColor(cx+offset, cy, glyph, c)
	}

	drawActor(s.player, "@"+string(facingArrow(s.player.Facing)), core.ColorBrightGreen, 1)
	if s.adversary != nil {
		drawActor(*s.adversary, "&"+string(facingArrow(s.adversary.Facing)), core.ColorBrightRed, 4)
	}
}

// renderFooter shows the outcome of the last crunch.
func (g *Game) renderFooter(dst *core.Screen, boardX, y int) {
	switch g.session.lastCrunch {
	case CrunchValid:
		dst.DrawTextColor(boardX, y, "Crunch!", core.ColorBrightGreen)
	case CrunchInvalid:
		dst.DrawTextColor(boardX, y, "Not in the category, streak reset", core.ColorRed)
	case CrunchEmpty:
		dst.DrawTextColor(boardX, y, "Nothing left here", core.ColorGray)
	}
}

// renderBanner draws the end-of-game text in a centered box.
func renderBanner(dst *core.Screen, lines []string) {
	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	w += 4
	h := len(lines)*2 + 1

	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightYellow)
	for i, l := range lines {
		x := box.X + (w-len(l))/2
		dst.DrawTextColor(x, box.Y+1+i*2, l, core.ColorBrightYellow)
	}
}

func gridCorner(x, y, cols, rows int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == cols:
		return '┐'
	case y == rows && x == 0:
		return '└'
	case y == rows && x == cols:
		return '┘'
	case y == 0:
		return '┬'
	case y == rows:
		return '┴'
	case x == 0:
		return '├'
	case x == cols:
		return '┤'
	default:
		return '┼'
	}
}

func facingArrow(f Facing) rune {
	switch f {
	case FacingUp:
		return '^'
	case FacingDown:
		return 'v'
	case FacingRight:
		return '>'
	default:
		return '<'
	}
}

// String renders the board labels as text, one board row per line.
// Used by the CLI's non-interactive output and in tests.
func (s Snapshot) String() string {
	var sb strings.Builder
	if len(s.Labels) == 0 {
		return ""
	}
	rows := len(s.Labels[0])
	for row := range rows {
		for col := range s.Labels {
			label := s.Labels[col][row]
			if label == "" {
				label = "."
			}
			fmt.Fprintf(&sb, "%-7s", label)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "phase=%s score=%d streak=%d/%d remaining=%d",
		s.Phase, s.Score, s.Streak, s.Required, s.Remaining)
	return sb.String()
}
