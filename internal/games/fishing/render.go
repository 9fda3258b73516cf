package fishing

import (
	"fmt"

	"github.com/vovakirdan/gremm-arcade/internal/core"
)

const (
	cellW     = 4
	cellH     = 2
	hudHeight = 2
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	size := g.cfg.Board.Size
	boardW, boardH := size*cellW+1, size*cellH+1
	if g.screenW < boardW+2 || g.screenH < boardH+hudHeight+1 {
		dst.DrawTextCentered(g.screenH/2, "Window too small")
		return
	}

	g.renderHUD(dst)

	box := core.NewRect(0, hudHeight, g.screenW, g.screenH-hudHeight).Centered(boardW, boardH)
	dst.DrawBoxColored(box, core.ColorBlue)
	g.renderPond(dst, box.X+1, box.Y+1)

	cx, cy := box.X+boardW/2, box.Y+boardH/2
	switch g.phase {
	case PhaseIntro:
		dst.DrawOverlay(cx, cy, "FISHING", "Arrows move the hook", "Any key to cast")
	case PhaseCatch:
		g.renderCatch(dst, cx, cy)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, "FISHING", core.ColorBrightCyan)
	dst.DrawText(10, 0, fmt.Sprintf("Catches: %d  Missed: %d", g.catches, g.misses))
	if g.difficulty.IsEnabled() {
		level := g.difficulty.Level(g.catches, g.tick)
		dst.DrawText(1, 1, fmt.Sprintf("Level: %.0f%%", level*100))
	}
}

// renderPond draws the water, the hook and the last ripple.
func (g *Game) renderPond(dst *core.Screen, ox, oy int) {
	size := g.cfg.Board.Size
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			px, py := ox+x*cellW, oy+y*cellH
			text, color := " ~~", core.ColorBlue
			switch {
			case x == g.cursor.X && y == g.cursor.Y:
				text, color = "[J]", core.ColorBrightYellow
			case g.rippleTicks > 0 && g.ripple.Contains(x, y):
				text, color = "(o)", core.ColorBrightCyan
			}
			dst.DrawTextColored(px, py, text, color)
		}
	}
}

// renderCatch shows the fish art in a box over the pond.
func (g *Game) renderCatch(dst *core.Screen, cx, cy int) {
	if g.caught == nil {
		return
	}
	lines := make([]string, 0, len(g.caught.Art)+3)
	lines = append(lines, fmt.Sprintf("You caught a %s!", g.caught.Name), "")
	lines = append(lines, padArt(g.caught.Art)...)
	lines = append(lines, "", "Any key to continue")
	dst.DrawOverlay(cx, cy, lines...)
}

// padArt right-pads every line to the widest one so the overlay keeps
// the picture's columns aligned.
func padArt(art []string) []string {
	width := 0
	for _, line := range art {
		width = max(width, len([]rune(line)))
	}
	out := make([]string, len(art))
	for i, line := range art {
		out[i] = fmt.Sprintf("%-*s", width, line)
	}
	return out
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move hook | Any key: Continue | Q: Quit"
}
