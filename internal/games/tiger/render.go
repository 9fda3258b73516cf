package tiger

import (
	"fmt"
	"math"

	"github.com/vovakirdan/gremm-arcade/internal/core"
)

const (
	boardW    = 48 // columns spanned by x in [0,1]
	rowScale  = 20 // screen rows per unit of y
	hudHeight = 3
)

var introText = []string{
	"TIGER",
	"",
	"Three tigers hunt fifteen lambs.",
	"Lambs place one piece per turn, then move.",
	"Tigers move one step or jump a lamb to eat it.",
	"A tiger that cannot move is removed.",
	"Lambs win when no tigers remain.",
	"Tigers win when fewer than two lambs remain.",
	"",
	"Press any key",
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	ox, oy, ok := g.origin()
	if !ok {
		dst.DrawTextCentered(g.screenH/2, "Window too small")
		return
	}

	g.renderHUD(dst)
	g.renderLinks(dst, ox, oy)
	g.renderNodes(dst, ox, oy)

	cx := g.screenW / 2
	cy := oy + g.boardHeight()/2
	switch g.phase {
	case PhaseIntro:
		dst.DrawOverlay(cx, cy, introText...)
	case PhaseOver:
		dst.DrawOverlay(cx, cy, g.Result(), fmt.Sprintf("Lambs eaten: %d", g.eaten), "R to play again")
	}
}

func (g *Game) boardHeight() int {
	rows := g.board.Y
	return int(math.Round((rows[len(rows)-1]-rows[0])*rowScale)) + 1
}

// origin returns the screen position of board coordinate (0, Y[0]).
func (g *Game) origin() (int, int, bool) {
	h := g.boardHeight()
	if g.screenW < boardW+3 || g.screenH < h+hudHeight+1 {
		return 0, 0, false
	}
	ox := (g.screenW - boardW) / 2
	oy := hudHeight + (g.screenH-hudHeight-h)/2
	return ox, oy, true
}

// cell returns the screen position of node n.
func (g *Game) cell(n Node, ox, oy int) (int, int) {
	x := ox + int(math.Round(g.board.X[n.Row][n.Col]*boardW))
	y := oy + int(math.Round((g.board.Y[n.Row]-g.board.Y[0])*rowScale))
	return x, y
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, "TIGER", core.ColorBrightYellow)

	turnColor := core.ColorBrightWhite
	if g.turn == Tigers {
		turnColor = core.ColorOrange
	}
	dst.DrawTextColored(8, 0, fmt.Sprintf("%s to move", g.turn), turnColor)

	stats := fmt.Sprintf("Unplaced lambs: %d  On board: %d  Eaten: %d  Tigers: %d",
		g.unplaced, g.pos.Lambs.Size(), g.eaten, g.pos.Tigers.Size())
	dst.DrawText(1, 1, stats)

	if g.message != "" {
		dst.DrawTextColored(1, 2, g.message, core.ColorBrightRed)
	}
}

// renderLinks draws the board lines between connected nodes.
func (g *Game) renderLinks(dst *core.Screen, ox, oy int) {
	for _, l := range g.board.Links() {
		x0, y0 := g.cell(l[0], ox, oy)
		x1, y1 := g.cell(l[1], ox, oy)
		steps := max(core.Abs(x1-x0), core.Abs(y1-y0))
		r := '·'
		if y0 == y1 {
			r = '─'
		}
		for i := 1; i < steps; i++ {
			x := x0 + int(math.Round(float64(i*(x1-x0))/float64(steps)))
			y := y0 + int(math.Round(float64(i*(y1-y0))/float64(steps)))
			dst.SetColored(x, y, r, core.ColorGray)
		}
	}
}

// renderNodes draws pieces, empty nodes and the cursor.
func (g *Game) renderNodes(dst *core.Screen, ox, oy int) {
	for _, n := range g.board.Nodes() {
		x, y := g.cell(n, ox, oy)
		switch {
		case g.pos.Tigers.Has(n):
			dst.SetColored(x, y, 'T', core.ColorOrange)
		case g.pos.Lambs.Has(n):
			dst.SetColored(x, y, 'L', core.ColorBrightWhite)
		default:
			dst.SetColored(x, y, 'o', core.ColorRed)
		}
	}

	if g.selected != nil {
		x, y := g.cell(*g.selected, ox, oy)
		dst.SetColored(x-1, y, '<', core.ColorBrightGreen)
		dst.SetColored(x+1, y, '>', core.ColorBrightGreen)
	}
	if g.phase == PhasePlaying {
		x, y := g.cell(g.cursor, ox, oy)
		dst.SetColored(x-1, y, '[', core.ColorBrightYellow)
		dst.SetColored(x+1, y, ']', core.ColorBrightYellow)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move cursor | Enter/Space: Select | Esc: Cancel | Q: Quit"
}
