package core

import (
	"github.com/charmbracelet/log"
	"github.com/zyedidia/generic/mapset"
)

// Outcome tells the caller what a Move did.
type Outcome int

const (
	OutcomeIgnored    Outcome = iota // game already won
	OutcomeMoved                     // travelers advanced, counters incremented
	OutcomeTransition                // a door was reached and a new room loaded
	OutcomeWon                       // a door led to the end
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "Ignored"
	case OutcomeMoved:
		return "Moved"
	case OutcomeTransition:
		return "Transition"
	case OutcomeWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// Controller runs the turns of one play-through of a layout.
// It exclusively owns the live grid and traveler list.
type Controller struct {
	layout   *Layout
	maxDepth int
	logger   *log.Logger

	room      *Room
	grid      *Grid
	travelers []Entity

	totalMoves int
	levelMoves int
	rooms      int
	won        bool
}

// NewController creates a controller for layout. A nil logger discards output.
func NewController(layout *Layout, maxDepth int, logger *log.Logger) *Controller {
	if maxDepth <= 0 {
		maxDepth = MaxDepth
	}
	return &Controller{
		layout:   layout,
		maxDepth: maxDepth,
		logger:   logger,
	}
}

// Start (re)enters the start room heading Up and zeroes all counters.
func (c *Controller) Start() {
	c.totalMoves = 0
	c.levelMoves = 0
	c.rooms = 0
	c.won = false
	c.enter(c.layout.Start(), Up)
}

// enter loads a fresh copy of room and spawns its first traveler.
func (c *Controller) enter(room *Room, entry Heading) {
	c.room = room
	c.grid = room.Grid.Clone()
	c.levelMoves = 0
	c.rooms++
	c.travelers = c.firstTraveler(entry)
	if c.logger != nil {
		c.logger.Debug("entered room", "room", room.Name, "entry", entry, "travelers", len(c.travelers))
	}
}

// firstTraveler spawns one traveler at the door matching the entry heading.
func (c *Controller) firstTraveler(entry Heading) []Entity {
	p, ok := c.grid.EntryDoor(entry)
	if !ok {
		if c.logger != nil {
			c.logger.Warn("no first door detected", "room", c.room.Name, "entry", entry)
		}
		return nil
	}
	return []Entity{NewEntity(p, entry)}
}

// Move advances every traveler one settled step.
// A door reached by any traveler cancels the whole batch and changes room.
func (c *Controller) Move() Outcome {
	if c.won {
		return OutcomeIgnored
	}

	moved := make([]Entity, 0, len(c.travelers))
	for _, e := range c.travelers {
		res := PropagateLimit(e, c.grid, 0, c.maxDepth)
		if res.Door && res.Stray {
			return c.restartLayout()
		}
		if res.Door {
			return c.transition(res.Exit)
		}
		moved = append(moved, res.Entities...)
	}

	c.travelers = moved
	c.totalMoves++
	c.levelMoves++
	return OutcomeMoved
}

// transition leaves the current room through exit.
func (c *Controller) transition(exit Heading) Outcome {
	next := c.layout.Next(c.room.Name, exit)
	if next.Won {
		c.won = true
		c.travelers = nil
		if c.logger != nil {
			c.logger.Info("layout finished", "layout", c.layout.Name, "moves", c.totalMoves)
		}
		return OutcomeWon
	}
	if c.logger != nil {
		c.logger.Debug("door", "from", c.room.Name, "exit", exit, "to", next.Room.Name)
	}
	c.enter(next.Room, next.Entry)
	return OutcomeTransition
}

// Rotate turns every traveler one step. Ignored once the game is won.
func (c *Controller) Rotate(sign int) {
	if c.won {
		return
	}
	for i := range c.travelers {
		c.travelers[i] = c.travelers[i].Rotated(sign)
	}
}

// restartLayout sends the travelers back to the start room, as an unmapped
// exit would. Doors away from the grid edges lead nowhere else.
func (c *Controller) restartLayout() Outcome {
	if c.logger != nil {
		c.logger.Warn("door off the room edge", "room", c.room.Name)
	}
	c.enter(c.layout.Start(), Up)
	return OutcomeTransition
}

// Collide turns every cell holding two or more travelers into a wall and
// removes those travelers. It returns the converted positions in row-major order.
func (c *Controller) Collide() []Pos {
	blocked := Collisions(c.travelers)
	if blocked.Size() == 0 {
		return nil
	}

	var out []Pos
	for y := 0; y < c.grid.Height(); y++ {
		for x := 0; x < c.grid.Width(); x++ {
			p := Pos{X: x, Y: y}
			if blocked.Has(p) {
				c.grid.Set(p, KindOccupied)
				out = append(out, p)
			}
		}
	}

	survivors := c.travelers[:0]
	for _, e := range c.travelers {
		if !blocked.Has(e.Pos) {
			survivors = append(survivors, e)
		}
	}
	c.travelers = survivors
	return out
}

// Collisions returns the positions shared by two or more travelers.
func Collisions(travelers []Entity) mapset.Set[Pos] {
	seen := mapset.New[Pos]()
	shared := mapset.New[Pos]()
	for _, e := range travelers {
		if seen.Has(e.Pos) {
			shared.Put(e.Pos)
			continue
		}
		seen.Put(e.Pos)
	}
	return shared
}

// Travelers returns a copy of the live traveler list.
func (c *Controller) Travelers() []Entity {
	return append([]Entity(nil), c.travelers...)
}

// SetTravelers replaces the live traveler list.
func (c *Controller) SetTravelers(es []Entity) {
	c.travelers = append([]Entity(nil), es...)
}

// Grid returns the live grid of the current room.
func (c *Controller) Grid() *Grid { return c.grid }

// Room returns the current room.
func (c *Controller) Room() *Room { return c.room }

// Layout returns the layout being played.
func (c *Controller) Layout() *Layout { return c.layout }

// TotalMoves returns the number of committed moves since Start.
func (c *Controller) TotalMoves() int { return c.totalMoves }

// LevelMoves returns the number of committed moves in the current room.
func (c *Controller) LevelMoves() int { return c.levelMoves }

// RoomsVisited counts room entries since Start, including the first.
func (c *Controller) RoomsVisited() int { return c.rooms }

// Won reports whether an END exit was reached.
func (c *Controller) Won() bool { return c.won }
