package dungeon

// Cell is the render-relevant state of one room.
type Cell struct {
	Blocked bool
	Monster bool
}

// View is a read-only snapshot of the grid and the player's position.
type View struct {
	Size   int
	Player Position
	cells  []Cell
}

// Snapshot captures the grid's current state with the player at player.
func (g *Grid) Snapshot(player Position) View {
	cells := make([]Cell, 0, g.size*g.size)
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			r := &g.rooms[x][y]
			cells = append(cells, Cell{Blocked: r.Blocked, Monster: r.HasMonster()})
		}
	}
	return View{Size: g.size, Player: player, cells: cells}
}

// At returns the cell at (x, y).
//
// Precondition: 0 <= x, y < v.Size.
func (v View) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= v.Size || y >= v.Size {
		panic("dungeon: View.At out of bounds")
	}
	return v.cells[y*v.Size+x]
}
