package footsteps

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/gremm-arcade/internal/core"
)

var welcome = []string{
	"Two players compete to move the token",
	"from the middle to their own side.",
	"Each player starts with %d energy.",
	"Every round both secretly spend some of it;",
	"the bigger spender pulls the token one step.",
	"Run out of energy and you're done.",
	"",
	"Press any key to begin",
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.phase == PhaseIntro {
		g.renderIntro(dst)
		return
	}

	board := g.board()
	x := max(0, (g.screenW-boardWidth(g.cfg.BoardSize))/2)
	dst.DrawTextCentered(0, "FOOTSTEPS")
	dst.DrawLines(x, 2, board, core.ColorDefault)

	// Submitted indicators
	if g.left.Done {
		dst.SetColored(x+2, 7, '*', core.ColorBrightGreen)
	}
	if g.right.Done {
		dst.SetColored(x+8*g.cfg.BoardSize+8, 7, '*', core.ColorBrightGreen)
	}

	if g.rounds > 0 {
		dst.DrawTextCentered(12, fmt.Sprintf("Round %d: left spent %d, right spent %d",
			g.rounds, g.last.Left, g.last.Right))
	}

	if g.phase == PhaseOver {
		dst.DrawOverlay(g.screenW/2, 6, g.Result(), "R to play again, Q to quit")
	}

	g.renderControls(dst)
}

// boardWidth is the rendered width of a board of size cells.
func boardWidth(size int) int {
	return 8*size + 13
}

// board renders the token row with both energy counters.
func (g *Game) board() string {
	size := g.cfg.BoardSize
	index := g.loc + size/2

	line := func(def, token, pre, post string) string {
		return pre + strings.Repeat(def, index) + token + strings.Repeat(def, size-index-1) + post
	}
	const pad, padR = "      ", "       "

	outer := line("        ", "   |    ", pad, padR)
	edge := pad + strings.Repeat("+-----+ ", size)
	top := line("|     | ", `| /-\ | `, " Left ", "Right ")
	center := line("|     | ", "| |X| | ", fmt.Sprintf("  %02d  ", g.left.Energy), fmt.Sprintf(" %02d  ", g.right.Energy))
	bottom := line("|     | ", `| \-/ | `, pad, padR)

	return strings.Join([]string{outer, outer, edge, top, center, bottom, edge, outer, outer}, "\n")
}

func (g *Game) renderIntro(dst *core.Screen) {
	lines := make([]string, len(welcome))
	for i, l := range welcome {
		if strings.Contains(l, "%d") {
			l = fmt.Sprintf(l, g.cfg.StartingEnergy)
		}
		lines[i] = l
	}
	dst.DrawTextCentered(1, "FOOTSTEPS")
	dst.DrawOverlay(g.screenW/2, g.screenH/2, lines...)
}

func (g *Game) renderControls(dst *core.Screen) {
	y := g.screenH - 2
	dst.DrawText(1, y, "Left:  w raise  s lower  d submit")
	dst.DrawText(1, y+1, "Right: o raise  l lower  k submit")
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Left: W/S bid, D submit | Right: O/L bid, K submit | Q: Quit"
}
