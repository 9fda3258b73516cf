package tiger

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/gremm-arcade/internal/core"
)

// Side is one of the two armies.
type Side int

const (
	Lambs Side = iota
	Tigers
)

func (s Side) String() string {
	if s == Tigers {
		return "Tigers"
	}
	return "Lambs"
}

// Position is the occupancy of the board.
type Position struct {
	Board  *Board
	Lambs  mapset.Set[Node]
	Tigers mapset.Set[Node]
}

// NewPosition returns a position with tigers on the given nodes and no lambs.
func NewPosition(b *Board, tigers ...Node) *Position {
	p := &Position{
		Board:  b,
		Lambs:  mapset.New[Node](),
		Tigers: mapset.New[Node](),
	}
	for _, t := range tigers {
		p.Tigers.Put(t)
	}
	return p
}

// Occupied reports whether any piece stands on n.
func (p *Position) Occupied(n Node) bool {
	return p.Lambs.Has(n) || p.Tigers.Has(n)
}

func (p *Position) pieces(s Side) mapset.Set[Node] {
	if s == Tigers {
		return p.Tigers
	}
	return p.Lambs
}

// ValidPlace reports whether a lamb may be dropped on n.
func (p *Position) ValidPlace(n Node) bool {
	return p.Board.Contains(n) && !p.Occupied(n)
}

// ValidMove reports whether side may move a piece from one node to another.
// When a tiger jumps a lamb, the captured lamb's node is returned with
// captured set.
func (p *Position) ValidMove(side Side, from, to Node) (ok bool, victim Node, captured bool) {
	shape := p.Board.Shape
	if !p.Board.Contains(from) || !p.Board.Contains(to) {
		return false, Node{}, false
	}
	if !p.pieces(side).Has(from) || p.Occupied(to) {
		return false, Node{}, false
	}

	// Column of "to" expressed in from's row, so aligned nodes compare equal.
	alignedTo := to.Col + (shape[from.Row]-shape[to.Row])/2

	switch {
	case from.Row == 0 && 1 <= to.Col && to.Col < shape[to.Row]-1,
		to.Row == 0 && 1 <= from.Col && from.Col < shape[from.Row]-1:
		// spokes of the apex
		alignedTo = to.Col
	case from.Row == to.Row && from.Row == len(shape)-1:
		return false, Node{}, false
	case from.Row != to.Row && from.Col != alignedTo:
		return false, Node{}, false
	}

	var dist int
	if from.Row == to.Row {
		dist = core.Abs(from.Col - alignedTo)
	} else {
		dist = core.Abs(from.Row - to.Row)
	}

	if side == Lambs || dist < 2 {
		return dist <= 1, Node{}, false
	}
	if dist > 2 {
		return false, Node{}, false
	}

	mid := p.jumped(from, to)
	if p.Lambs.Has(mid) {
		return true, mid, true
	}
	return false, Node{}, false
}

// jumped returns the node between the two ends of a two-step move.
func (p *Position) jumped(from, to Node) Node {
	shape := p.Board.Shape
	if from.Row == to.Row {
		return Node{Row: from.Row, Col: (from.Col + to.Col) / 2}
	}
	row := (from.Row + to.Row) / 2
	if from.Row == 0 {
		return Node{Row: row, Col: to.Col - (shape[to.Row]-shape[row])/2}
	}
	return Node{Row: row, Col: from.Col - (shape[from.Row]-shape[row])/2}
}

// Mobile reports whether the tiger on n has any legal move.
func (p *Position) Mobile(n Node) bool {
	for _, to := range p.Board.Nodes() {
		if ok, _, _ := p.ValidMove(Tigers, n, to); ok {
			return true
		}
	}
	return false
}

// CanMoveLamb reports whether any lamb on the board can move.
func (p *Position) CanMoveLamb() bool {
	for _, from := range sorted(p.Lambs) {
		for _, to := range p.Board.Nodes() {
			if ok, _, _ := p.ValidMove(Lambs, from, to); ok {
				return true
			}
		}
	}
	return false
}

// DeadTigers returns the tigers that cannot move, in board order.
func (p *Position) DeadTigers() []Node {
	var dead []Node
	for _, t := range sorted(p.Tigers) {
		if !p.Mobile(t) {
			dead = append(dead, t)
		}
	}
	return dead
}

// sorted lists a set's nodes in board order.
func sorted(s mapset.Set[Node]) []Node {
	out := make([]Node, 0, s.Size())
	s.Each(func(n Node) {
		out = append(out, n)
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
