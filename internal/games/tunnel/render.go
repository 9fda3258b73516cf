package tunnel

import (
	"fmt"

	"github.com/vovakirdan/gremm-arcade/internal/core"
	tcore "github.com/vovakirdan/gremm-arcade/internal/games/tunnel/core"
)

const hudHeight = 3

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.phase {
	case PhaseError:
		g.renderError(dst)
		return
	case PhaseTooSmall:
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)

	grid := g.ctrl.Grid()
	boardW, boardH := grid.Width()+2, grid.Height()+2
	box := core.NewRect(0, hudHeight, g.screenW, g.screenH-hudHeight).Centered(boardW, boardH)
	accent := accentColor(g.ctrl.Room())

	dst.DrawBoxColored(box, accent)
	g.renderGrid(dst, grid, box.X+1, box.Y+1, accent)

	centerX := box.X + boardW/2
	centerY := box.Y + boardH/2
	switch g.phase {
	case PhaseIntro:
		dst.DrawOverlay(centerX, centerY, g.ctrl.Layout().Name, g.cfg.Intro)
	case PhaseWon:
		moves := fmt.Sprintf("%d moves, %d rooms", g.ctrl.TotalMoves(), g.ctrl.RoomsVisited())
		dst.DrawOverlay(centerX, centerY, WinMessage, moves, "Space to play again")
	}
}

// renderHUD draws the room and counters.
func (g *Game) renderHUD(dst *core.Screen) {
	room := g.ctrl.Room()
	dst.DrawTextColored(1, 0, "GREMM TUNNEL", core.ColorBrightCyan)
	dst.DrawTextColored(15, 0, fmt.Sprintf("Room: %s", room.Name), accentColor(room))

	stats := fmt.Sprintf("Moves: %d  Room moves: %d  Travelers: %d",
		g.ctrl.TotalMoves(), g.ctrl.LevelMoves(), len(g.ctrl.Travelers()))
	dst.DrawText(1, 1, stats)

	if g.phase == PhasePlaying && len(g.ctrl.Travelers()) == 0 {
		dst.DrawTextColored(1, 2, "No travelers left. Space restarts.", core.ColorOrange)
	}
}

// renderGrid draws cells and the travelers on top of them.
func (g *Game) renderGrid(dst *core.Screen, grid *tcore.Grid, ox, oy int, accent core.Color) {
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.RowLen(y); x++ {
			k := grid.At(tcore.Pos{X: x, Y: y})
			dst.SetColored(ox+x, oy+y, kindRune(k), kindColor(k, accent))
		}
	}

	for _, e := range g.ctrl.Travelers() {
		dst.SetColored(ox+e.Pos.X, oy+e.Pos.Y, e.Heading.Arrow(), core.ColorBrightGreen)
	}
}

// accentColor maps the room's RGB accent onto the terminal palette.
func accentColor(r *tcore.Room) core.Color {
	return core.RGB(r.Color).Nearest()
}

func kindRune(k tcore.Kind) rune {
	switch k {
	case tcore.KindOccupied:
		return '█'
	case tcore.KindDoor:
		return '▒'
	case tcore.KindNone:
		return ' '
	default:
		return k.Rune()
	}
}

func kindColor(k tcore.Kind, accent core.Color) core.Color {
	switch k {
	case tcore.KindOccupied:
		return accent
	case tcore.KindForwardMirror, tcore.KindBackMirror:
		return core.ColorBrightCyan
	case tcore.KindItem:
		return core.ColorBrightYellow
	case tcore.KindDoor:
		return core.ColorBrightWhite
	default:
		return core.ColorDefault
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, resize terminal", minW, minH))
}

// renderError shows why the layout could not be loaded.
func (g *Game) renderError(dst *core.Screen) {
	y := g.screenH/2 - 1
	dst.DrawTextColored(1, y, "Could not load layout "+g.layout, core.ColorBrightRed)
	if g.loadErr != nil {
		dst.DrawText(1, y+1, g.loadErr.Error())
	}
	dst.DrawText(1, y+3, "Q to quit")
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Up: Move | Left/Right: Rotate | Space: (Re)start | Q: Quit"
}
