package dungeon

import "github.com/cory-johannsen/dungeondigits/internal/game/dice"

// BlockedOdds is the n in the one-in-n chance that a room is blocked.
const BlockedOdds = 8

// Generate builds a size x size grid. Rooms are visited x-major (x outer, y
// inner) and each draws Chance(BlockedOdds) once; the start room (0, 0) is then
// forced open.
//
// Precondition: size >= 1; r must be non-nil.
// Postcondition: exactly size*size draws were consumed and Room(0, 0) is open.
func Generate(size int, r *dice.Roller) *Grid {
	g := newGrid(size)
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			g.rooms[x][y].Blocked = r.Chance(BlockedOdds)
		}
	}
	g.rooms[0][0].Blocked = false
	return g
}
