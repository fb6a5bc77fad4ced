// Package encounter decides when monsters appear in rooms.
package encounter

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeondigits/internal/game/dice"
	"github.com/cory-johannsen/dungeondigits/internal/game/dungeon"
	"github.com/cory-johannsen/dungeondigits/internal/game/event"
	"github.com/cory-johannsen/dungeondigits/internal/game/monster"
)

// EntryOdds is the n in the one-in-n chance that entering an empty room spawns
// a monster.
const EntryOdds = 2

// Manager spawns monsters from a roster using the session's roller.
type Manager struct {
	roller *dice.Roller
	roster *monster.Roster
	logger *zap.Logger
}

// NewManager creates an encounter Manager.
//
// Precondition: roller, roster and logger must be non-nil; roster must be valid.
func NewManager(roller *dice.Roller, roster *monster.Roster, logger *zap.Logger) *Manager {
	if roller == nil || roster == nil || logger == nil {
		panic("encounter: NewManager called with nil dependency")
	}
	if err := roster.Validate(); err != nil {
		panic("encounter: " + err.Error())
	}
	return &Manager{roller: roller, roster: roster, logger: logger}
}

// SpawnMonster builds a new monster: one name draw, then one d6.
func (m *Manager) SpawnMonster() *monster.Monster {
	mon := monster.Spawn(m.roller, m.roster)
	m.logger.Debug("monster spawned",
		zap.String("name", mon.Name),
		zap.Int("hp", mon.HitPoints),
		zap.Int("ac", mon.ArmorClass),
	)
	return mon
}

// OnRoomEnter runs the entry check for room. An occupied room is left alone
// without drawing; an empty room draws Chance(EntryOdds) and on success gains
// a monster.
//
// Postcondition: room holds at most one monster.
func (m *Manager) OnRoomEnter(room *dungeon.Room) []event.Event {
	if room.HasMonster() {
		return nil
	}
	if !m.roller.Chance(EntryOdds) {
		return nil
	}
	room.Monster = m.SpawnMonster()
	return []event.Event{{Kind: event.KindMonsterAppears, Monster: room.Monster.Name}}
}

// Occupy returns room's monster, spawning one first if the room is empty. It
// never replaces an existing occupant.
//
// Postcondition: room.HasMonster().
func (m *Manager) Occupy(room *dungeon.Room) *monster.Monster {
	if !room.HasMonster() {
		room.Monster = m.SpawnMonster()
	}
	return room.Monster
}

// Travel moves from pos by (dx, dy) on g. A Wall or Blocked outcome leaves the
// position unchanged and emits the matching event; a Moved outcome emits
// KindMoved and then runs OnRoomEnter for the destination, even when the
// destination is the room the player already stands in.
func (m *Manager) Travel(g *dungeon.Grid, pos dungeon.Position, dx, dy int) (dungeon.Position, []event.Event) {
	to, out := dungeon.Move(g, pos, dx, dy)
	switch out {
	case dungeon.Wall:
		return pos, []event.Event{{Kind: event.KindWall}}
	case dungeon.Blocked:
		return pos, []event.Event{{Kind: event.KindBlocked}}
	}
	evs := []event.Event{{Kind: event.KindMoved, X: to.X, Y: to.Y}}
	return to, append(evs, m.OnRoomEnter(g.RoomAt(to))...)
}
