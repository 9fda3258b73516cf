package core

import (
	"fmt"
)

// EndTarget is the exit target that finishes the game.
const EndTarget = "END"

// LayoutError reports a malformed room layout.
type LayoutError struct {
	Code    string
	Message string
}

func (e LayoutError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Target is where an exit leads: another room, or the end of the game.
type Target struct {
	Room string
	End  bool
}

// ParseTarget interprets a layout target word.
func ParseTarget(word string) Target {
	if word == EndTarget {
		return Target{End: true}
	}
	return Target{Room: word}
}

// String returns the layout spelling of t.
func (t Target) String() string {
	if t.End {
		return EndTarget
	}
	return t.Room
}

// Room is one map of the tunnel with its exits.
type Room struct {
	Name  string
	Map   string // map reference the grid was read from
	Grid  *Grid  // template; never mutated during play
	Color RGB
	Exits map[Heading]Target
}

// RGB is the cosmetic accent color of a room.
type RGB struct {
	R, G, B uint8
}

// Transition is the answer to "where does leaving this room lead".
type Transition struct {
	Room  *Room
	Entry Heading
	Won   bool
}

// Layout is the ordered set of rooms. The first room is the start room.
type Layout struct {
	Name  string
	rooms map[string]*Room
	order []string
}

// NewLayout validates rooms and builds a layout.
func NewLayout(name string, rooms []*Room) (*Layout, error) {
	if len(rooms) == 0 {
		return nil, LayoutError{Code: "NO_ROOMS", Message: "layout declares no rooms"}
	}

	l := &Layout{
		Name:  name,
		rooms: make(map[string]*Room, len(rooms)),
		order: make([]string, 0, len(rooms)),
	}

	for _, r := range rooms {
		if r.Name == EndTarget {
			return nil, LayoutError{
				Code:    "RESERVED_NAME",
				Message: fmt.Sprintf("%s is not a valid room name", EndTarget),
			}
		}
		if _, dup := l.rooms[r.Name]; dup {
			return nil, LayoutError{
				Code:    "DUPLICATE_ROOM",
				Message: fmt.Sprintf("room %q declared twice", r.Name),
			}
		}
		if r.Grid == nil || r.Grid.Height() == 0 || r.Grid.Width() == 0 {
			return nil, LayoutError{
				Code:    "EMPTY_MAP",
				Message: fmt.Sprintf("room %q has an empty map", r.Name),
			}
		}
		if r.Grid.Count(KindDoor) == 0 {
			return nil, LayoutError{
				Code:    "NO_DOOR",
				Message: fmt.Sprintf("room %q has no door", r.Name),
			}
		}
		if r.Exits == nil {
			r.Exits = make(map[Heading]Target)
		}
		l.rooms[r.Name] = r
		l.order = append(l.order, r.Name)
	}

	for _, name := range l.order {
		for _, h := range Headings {
			t, ok := l.rooms[name].Exits[h]
			if !ok || t.End {
				continue
			}
			if _, known := l.rooms[t.Room]; !known {
				return nil, LayoutError{
					Code:    "UNKNOWN_ROOM",
					Message: fmt.Sprintf("room %q exit %s leads to unknown room %q", name, h.Compass(), t.Room),
				}
			}
		}
	}

	return l, nil
}

// Start returns the start room.
func (l *Layout) Start() *Room {
	return l.rooms[l.order[0]]
}

// Room looks up a room by name.
func (l *Layout) Room(name string) (*Room, bool) {
	r, ok := l.rooms[name]
	return r, ok
}

// Rooms returns the rooms in declaration order.
func (l *Layout) Rooms() []*Room {
	out := make([]*Room, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, l.rooms[name])
	}
	return out
}

// Next resolves leaving room current through its exit edge.
// Without a mapping the traveler wraps to the start room entering Up.
func (l *Layout) Next(current string, exit Heading) Transition {
	room, ok := l.rooms[current]
	if !ok {
		return Transition{Room: l.Start(), Entry: Up}
	}

	t, mapped := room.Exits[exit]
	switch {
	case !mapped:
		return Transition{Room: l.Start(), Entry: Up}
	case t.End:
		return Transition{Won: true}
	default:
		return Transition{Room: l.rooms[t.Room], Entry: exit}
	}
}
