package dungeon

import "fmt"

// Direction is a cardinal navigation command.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// Directions lists the cardinal directions.
var Directions = []Direction{North, South, East, West}

// Delta returns the (dx, dy) step for d. North is toward y = 0.
//
// Precondition: d is one of Directions.
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		panic(fmt.Sprintf("dungeon: unknown direction %q", string(d)))
	}
}

// ParseDirection resolves a direction name or its one-letter abbreviation.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "north", "n":
		return North, true
	case "south", "s":
		return South, true
	case "east", "e":
		return East, true
	case "west", "w":
		return West, true
	default:
		return "", false
	}
}

// Outcome is the result of a movement attempt.
type Outcome int

const (
	// Moved means the position was updated; the destination may equal the origin.
	Moved Outcome = iota
	// Wall means the step left the grid.
	Wall
	// Blocked means the destination room is impassable.
	Blocked
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Wall:
		return "wall"
	case Blocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Move applies (dx, dy) to pos. It consumes no randomness.
//
// Precondition: g is non-nil and pos is in bounds.
// Postcondition: the returned position is in bounds and its room is open
// whenever pos's room was; on Wall or Blocked it equals pos.
func Move(g *Grid, pos Position, dx, dy int) (Position, Outcome) {
	if g == nil {
		panic("dungeon: Move called with nil grid")
	}
	if !g.InBounds(pos.X, pos.Y) {
		panic(fmt.Sprintf("dungeon: Move called from out-of-bounds position %s", pos))
	}
	nx, ny := pos.X+dx, pos.Y+dy
	if !g.InBounds(nx, ny) {
		return pos, Wall
	}
	if g.rooms[nx][ny].Blocked {
		return pos, Blocked
	}
	return Position{X: nx, Y: ny}, Moved
}
