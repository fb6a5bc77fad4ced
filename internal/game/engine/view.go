package engine

import (
	"github.com/cory-johannsen/dungeondigits/internal/game/character"
	"github.com/cory-johannsen/dungeondigits/internal/game/dungeon"
)

// DungeonView returns a snapshot of the grid with the player's position.
func (e *Engine) DungeonView() dungeon.View {
	return e.grid.Snapshot(e.pos)
}

// PlayerStats returns a snapshot of the player.
func (e *Engine) PlayerStats() character.Stats {
	return e.player.Stats()
}

// RoomInfo describes the player's current room.
type RoomInfo struct {
	Position dungeon.Position
	// Monster is empty when the room is unoccupied.
	Monster string
	Health  string
}

// Here describes the player's current room.
func (e *Engine) Here() RoomInfo {
	info := RoomInfo{Position: e.pos}
	if m := e.here().Monster; m != nil {
		info.Monster = m.Name
		info.Health = m.HealthDescription()
	}
	return info
}
