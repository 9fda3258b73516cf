package levels

import (
	"fmt"

	"github.com/vovakirdan/gremm-arcade/internal/games/tunnel/core"
)

// Warning is a layout problem that does not stop the layout from loading
// but strands travelers during play.
type Warning struct {
	Room    string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Room, w.Message)
}

// Lint reports exits that lead into a room with no door to enter through,
// where travelers arrive with nowhere to stand, and doors that sit away from
// every grid edge, which send travelers back to the start room.
func Lint(l *core.Layout) []Warning {
	var warnings []Warning

	start := l.Start()
	if _, ok := start.Grid.EntryDoor(core.Up); !ok {
		warnings = append(warnings, Warning{
			Room:    start.Name,
			Message: "start room has no door on its bottom row to enter through",
		})
	}

	for _, room := range l.Rooms() {
		for _, p := range strayDoors(room.Grid) {
			warnings = append(warnings, Warning{
				Room:    room.Name,
				Message: fmt.Sprintf("door at %d,%d is not on an edge and returns travelers to the start room", p.X, p.Y),
			})
		}
		for _, h := range core.Headings {
			t, ok := room.Exits[h]
			if !ok || t.End {
				continue
			}
			tr := l.Next(room.Name, h)
			if _, ok := tr.Room.Grid.EntryDoor(tr.Entry); !ok {
				warnings = append(warnings, Warning{
					Room:    room.Name,
					Message: fmt.Sprintf("exit %s leads to %s, which has no door to enter heading %s", h.Compass(), t.Room, tr.Entry),
				})
			}
		}
	}
	return warnings
}

func strayDoors(g *core.Grid) []core.Pos {
	var out []core.Pos
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.RowLen(y); x++ {
			p := core.Pos{X: x, Y: y}
			if g.At(p) != core.KindDoor {
				continue
			}
			if _, ok := g.DoorExit(p); !ok {
				out = append(out, p)
			}
		}
	}
	return out
}
