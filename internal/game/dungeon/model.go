// Package dungeon provides the room grid, its generator, and the movement
// rules over it.
package dungeon

import (
	"fmt"

	"github.com/cory-johannsen/dungeondigits/internal/game/monster"
)

// DefaultSize is the width and height of a standard dungeon.
const DefaultSize = 10

// Room is one cell of the grid.
type Room struct {
	X, Y int
	// Blocked rooms are impassable. Fixed after generation.
	Blocked bool
	// Monster is the room's occupant; nil when empty.
	Monster *monster.Monster
}

// HasMonster reports whether the room is occupied.
func (r *Room) HasMonster() bool {
	return r.Monster != nil
}

// ClearMonster empties the room.
func (r *Room) ClearMonster() {
	r.Monster = nil
}

// Position is a grid coordinate.
type Position struct {
	X, Y int
}

// String returns "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Grid is a square matrix of rooms indexed [x][y].
type Grid struct {
	size  int
	rooms [][]Room
}

func newGrid(size int) *Grid {
	if size < 1 {
		panic(fmt.Sprintf("dungeon: grid size must be >= 1, got %d", size))
	}
	rooms := make([][]Room, size)
	for x := range rooms {
		rooms[x] = make([]Room, size)
		for y := range rooms[x] {
			rooms[x][y] = Room{X: x, Y: y}
		}
	}
	return &Grid{size: size, rooms: rooms}
}

// FromLayout builds a grid from rows of text, one row per y, where '#' marks a
// blocked room and any other byte an open one. Used by tests and fixtures.
//
// Precondition: rows form a non-empty square.
func FromLayout(rows ...string) *Grid {
	g := newGrid(len(rows))
	for y, row := range rows {
		if len(row) != len(rows) {
			panic(fmt.Sprintf("dungeon: layout row %d has width %d, want %d", y, len(row), len(rows)))
		}
		for x := 0; x < len(row); x++ {
			g.rooms[x][y].Blocked = row[x] == '#'
		}
	}
	return g
}

// Size returns the grid's width and height.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.size && y < g.size
}

// Room returns the room at (x, y).
//
// Precondition: InBounds(x, y). Violations indicate an engine bug and panic.
func (g *Grid) Room(x, y int) *Room {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("dungeon: room (%d, %d) out of bounds for size %d", x, y, g.size))
	}
	return &g.rooms[x][y]
}

// RoomAt returns the room at p.
//
// Precondition: p is in bounds.
func (g *Grid) RoomAt(p Position) *Room {
	return g.Room(p.X, p.Y)
}
