package core

import "strings"

// Pos is a cell coordinate. X grows right, Y grows down.
type Pos struct {
	X, Y int
}

// Add returns p moved one step toward h.
func (p Pos) Add(h Heading) Pos {
	dx, dy := h.Delta()
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Grid is a possibly jagged 2D array of cell kinds.
// Bounds are the longest row (width) by the row count (height).
type Grid struct {
	rows  [][]Kind
	width int
}

// NewGrid creates a grid that takes ownership of rows.
func NewGrid(rows [][]Kind) *Grid {
	g := &Grid{rows: rows}
	for _, row := range rows {
		if len(row) > g.width {
			g.width = len(row)
		}
	}
	return g
}

// ParseGrid builds a grid from map text, one row per line.
func ParseGrid(text string) *Grid {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	rows := make([][]Kind, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		row := make([]Kind, 0, len(line))
		for _, r := range line {
			row = append(row, ParseKind(r))
		}
		rows = append(rows, row)
	}
	return NewGrid(rows)
}

// Width returns max_x, the length of the longest row.
func (g *Grid) Width() int {
	return g.width
}

// Height returns max_y, the number of rows.
func (g *Grid) Height() int {
	return len(g.rows)
}

// RowLen returns the length of row y, or 0 when y is out of range.
func (g *Grid) RowLen(y int) int {
	if y < 0 || y >= len(g.rows) {
		return 0
	}
	return len(g.rows[y])
}

// InBounds reports whether p lies inside [0,width) x [0,height).
func (g *Grid) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < len(g.rows)
}

// At returns the kind at p. Cells past the end of a short row are KindNone.
func (g *Grid) At(p Pos) Kind {
	if p.Y < 0 || p.Y >= len(g.rows) || p.X < 0 || p.X >= len(g.rows[p.Y]) {
		return KindNone
	}
	return g.rows[p.Y][p.X]
}

// Set replaces the kind at p. Writes past a short row extend it with KindNone.
func (g *Grid) Set(p Pos, k Kind) {
	if !g.InBounds(p) {
		return
	}
	row := g.rows[p.Y]
	for len(row) <= p.X {
		row = append(row, KindNone)
	}
	row[p.X] = k
	g.rows[p.Y] = row
}

// Clone returns a deep copy that can be mutated independently.
func (g *Grid) Clone() *Grid {
	rows := make([][]Kind, len(g.rows))
	for y, row := range g.rows {
		rows[y] = append([]Kind(nil), row...)
	}
	return &Grid{rows: rows, width: g.width}
}

// Count returns how many cells hold kind k.
func (g *Grid) Count(k Kind) int {
	n := 0
	for _, row := range g.rows {
		for _, c := range row {
			if c == k {
				n++
			}
		}
	}
	return n
}

// DoorExit returns the heading a traveler leaves through when it reaches the
// door at p: left column, then right column, then top row, then bottom row.
// ok is false if p is not on any edge.
func (g *Grid) DoorExit(p Pos) (h Heading, ok bool) {
	switch {
	case p.X == 0:
		return Left, true
	case p.X == g.width-1:
		return Right, true
	case p.Y == 0:
		return Up, true
	case p.Y == len(g.rows)-1:
		return Down, true
	default:
		return Up, false
	}
}

// EntryDoor finds the door a traveler entering with heading h spawns on.
// Entering Up scans the bottom row, Down the top row, Left the rightmost
// column and Right the leftmost column, in index order.
func (g *Grid) EntryDoor(h Heading) (Pos, bool) {
	if len(g.rows) == 0 {
		return Pos{}, false
	}

	switch h {
	case Up, Down:
		y := 0
		if h == Up {
			y = len(g.rows) - 1
		}
		for x := range g.rows[y] {
			if g.rows[y][x] == KindDoor {
				return Pos{X: x, Y: y}, true
			}
		}
	case Left, Right:
		x := 0
		if h == Left {
			x = g.width - 1
		}
		for y := range g.rows {
			if g.At(Pos{X: x, Y: y}) == KindDoor {
				return Pos{X: x, Y: y}, true
			}
		}
	}
	return Pos{}, false
}

// String renders the grid back to map text.
func (g *Grid) String() string {
	var sb strings.Builder
	for y, row := range g.rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, k := range row {
			sb.WriteRune(k.Rune())
		}
	}
	return sb.String()
}
