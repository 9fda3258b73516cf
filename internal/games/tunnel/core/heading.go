// Package core holds the rules of Gremm Tunnel: the tile grid, room layout,
// reflection propagation and the turn controller. It is UI-agnostic and
// deterministic.
package core

// Heading is the direction a traveler faces. The order is clockwise.
type Heading uint8

const (
	Up Heading = iota
	Right
	Down
	Left
)

// Headings lists every heading in index order.
var Headings = [4]Heading{Up, Right, Down, Left}

// String returns the string representation of a heading.
func (h Heading) String() string {
	switch h {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset of one step. Up decreases Y.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

// Clock rotates h by k quarter turns: the result index is (h - k) mod 4.
func Clock(h Heading, k int) Heading {
	i := (int(h) - k) % 4
	if i < 0 {
		i += 4
	}
	return Heading(i)
}

// Rotate turns by one step: sign >= 0 applies Clock(+1), negative Clock(-1).
func (h Heading) Rotate(sign int) Heading {
	if sign >= 0 {
		return Clock(h, 1)
	}
	return Clock(h, -1)
}

// Reverse returns the heading rotated by 180 degrees.
func (h Heading) Reverse() Heading {
	return Clock(h, 2)
}

// Arrow returns the glyph used to draw a traveler facing h.
func (h Heading) Arrow() rune {
	switch h {
	case Up:
		return '^'
	case Right:
		return '>'
	case Down:
		return 'v'
	case Left:
		return '<'
	default:
		return '?'
	}
}

// ParseCompass converts a layout compass letter (N, E, S, W) to a heading.
func ParseCompass(letter string) (Heading, bool) {
	switch letter {
	case "N":
		return Up, true
	case "E":
		return Right, true
	case "S":
		return Down, true
	case "W":
		return Left, true
	default:
		return Up, false
	}
}

// Compass returns the layout letter for h.
func (h Heading) Compass() string {
	switch h {
	case Up:
		return "N"
	case Right:
		return "E"
	case Down:
		return "S"
	case Left:
		return "W"
	default:
		return "?"
	}
}
