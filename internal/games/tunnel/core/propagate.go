package core

import (
	"fmt"

	"github.com/zyedidia/generic/stack"
)

// MaxDepth bounds bounce and mirror chains within a single move.
const MaxDepth = 20

// Result is the outcome of propagating one traveler for one move.
// When Door is set the traveler reached a door and Entities is empty;
// Exit is the heading it leaves the room with. Stray marks a door that is
// not on any edge of the grid, which has no exit heading.
type Result struct {
	Entities []Entity
	Door     bool
	Exit     Heading
	Stray    bool
}

// step is one pending work-list item.
type step struct {
	entity Entity
	depth  int
}

// Propagate advances e by one settled step on g using the default depth cap.
func Propagate(e Entity, g *Grid, depth int) Result {
	return PropagateLimit(e, g, depth, MaxDepth)
}

// PropagateLimit advances e by one settled step on g.
//
// Walls and the grid edge bounce the traveler: it continues from the blocked
// coordinate with a reversed heading, so the next step lands back where it came
// from. Mirrors split it into two rays that both continue from the mirror cell.
// A ray deeper than maxDepth is dropped silently. The first door reached ends
// the whole propagation.
func PropagateLimit(e Entity, g *Grid, depth, maxDepth int) Result {
	var res Result

	work := stack.New[step]()
	work.Push(step{entity: e, depth: depth})

	for work.Size() > 0 {
		cur := work.Pop()
		if cur.depth > maxDepth {
			continue
		}

		next := cur.entity.Pos.Add(cur.entity.Heading)
		moved := cur.entity
		moved.Pos = next

		if !g.InBounds(next) {
			moved.Heading = cur.entity.Heading.Reverse()
			work.Push(step{entity: moved, depth: cur.depth + 1})
			continue
		}

		switch kind := g.At(next); kind {
		case KindOccupied:
			moved.Heading = cur.entity.Heading.Reverse()
			work.Push(step{entity: moved, depth: cur.depth + 1})

		case KindForwardMirror, KindBackMirror:
			first, second := splitHeadings(kind, cur.entity.Heading)
			// Pushed in reverse so the first branch is fully resolved first.
			work.Push(step{entity: withHeading(moved, second), depth: cur.depth + 1})
			work.Push(step{entity: withHeading(moved, first), depth: cur.depth + 1})

		case KindDoor:
			exit, ok := g.DoorExit(next)
			return Result{Door: true, Exit: exit, Stray: !ok}

		case KindEmpty, KindItem, KindNone:
			res.Entities = append(res.Entities, moved)

		default:
			panic(fmt.Sprintf("tunnel: no propagation rule for %v", kind))
		}
	}

	return res
}

// splitHeadings returns the two headings a mirror sends a traveler along.
// '/' pairs Up with Right and Down with Left; '\' pairs Down with Right and
// Up with Left.
func splitHeadings(mirror Kind, h Heading) (Heading, Heading) {
	if mirror == KindForwardMirror {
		switch h {
		case Up, Right:
			return Up, Right
		default:
			return Down, Left
		}
	}

	switch h {
	case Down, Right:
		return Down, Right
	default:
		return Up, Left
	}
}

func withHeading(e Entity, h Heading) Entity {
	e.Heading = h
	return e
}
