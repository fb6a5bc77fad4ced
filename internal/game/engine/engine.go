// Package engine holds one session's game state and exposes the commands and
// read-only views a frontend drives it through.
package engine

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeondigits/internal/game/character"
	"github.com/cory-johannsen/dungeondigits/internal/game/combat"
	"github.com/cory-johannsen/dungeondigits/internal/game/dice"
	"github.com/cory-johannsen/dungeondigits/internal/game/dungeon"
	"github.com/cory-johannsen/dungeondigits/internal/game/encounter"
	"github.com/cory-johannsen/dungeondigits/internal/game/event"
	"github.com/cory-johannsen/dungeondigits/internal/game/monster"
)

// Options configures a new Engine. Zero values select the defaults.
type Options struct {
	// Size is the dungeon width and height; 0 means dungeon.DefaultSize.
	Size int
	// Roster supplies monster names; nil means monster.DefaultRoster().
	Roster *monster.Roster
}

// Engine is a single session's authoritative state. It is not safe for
// concurrent use: one goroutine issues one command at a time.
type Engine struct {
	roller     *dice.Roller
	encounters *encounter.Manager
	resolver   *combat.Resolver
	logger     *zap.Logger

	grid    *dungeon.Grid
	player  *character.Player
	pos     dungeon.Position
	opening []event.Event
	over    bool
}

// New starts a session. Draws happen in a fixed order: the player's three
// attribute rolls, then dungeon generation, then the room-entry check for the
// start room, whose events are returned by Opening.
//
// Precondition: roller and logger must be non-nil.
// Postcondition: the player stands at (0, 0) with StartingHitPoints.
func New(roller *dice.Roller, opts Options, logger *zap.Logger) *Engine {
	if roller == nil || logger == nil {
		panic("engine: New called with nil dependency")
	}
	size := opts.Size
	if size == 0 {
		size = dungeon.DefaultSize
	}
	roster := opts.Roster
	if roster == nil {
		roster = monster.DefaultRoster()
	}

	encounters := encounter.NewManager(roller, roster, logger)
	e := &Engine{
		roller:     roller,
		encounters: encounters,
		resolver:   combat.NewResolver(roller, encounters, logger),
		logger:     logger,
	}
	e.player = character.NewPlayer(roller)
	e.grid = dungeon.Generate(size, roller)
	e.opening = encounters.OnRoomEnter(e.grid.RoomAt(e.pos))

	logger.Info("session started",
		zap.Int("size", size),
		zap.Int("str", e.player.Strength),
		zap.Int("dex", e.player.Dexterity),
		zap.Int("int", e.player.Intelligence),
	)
	return e
}

// Opening returns the events of the start room's entry check.
func (e *Engine) Opening() []event.Event {
	return append([]event.Event(nil), e.opening...)
}

// Over reports whether the player has died. A finished engine answers every
// command with a single KindDead event and draws nothing.
func (e *Engine) Over() bool {
	return e.over
}

// Position returns the player's location.
func (e *Engine) Position() dungeon.Position {
	return e.pos
}

// Move steps the player one room in dir.
func (e *Engine) Move(dir dungeon.Direction) []event.Event {
	return e.act("move", func() []event.Event {
		dx, dy := dir.Delta()
		var evs []event.Event
		e.pos, evs = e.encounters.Travel(e.grid, e.pos, dx, dy)
		return evs
	})
}

// Fight resolves one combat round in the current room.
func (e *Engine) Fight() []event.Event {
	return e.act("fight", func() []event.Event {
		return e.resolver.Fight(e.player, e.here())
	})
}

// Flee takes one random step away.
func (e *Engine) Flee() []event.Event {
	return e.act("flee", func() []event.Event {
		var evs []event.Event
		e.pos, evs = e.resolver.Flee(e.grid, e.pos)
		return evs
	})
}

// Search looks for gold in the current room.
func (e *Engine) Search() []event.Event {
	return e.act("search", func() []event.Event {
		return e.resolver.Search(e.player, e.here())
	})
}

// Sleep rests in the current room.
func (e *Engine) Sleep() []event.Event {
	return e.act("sleep", func() []event.Event {
		return e.resolver.Rest(e.player, e.here())
	})
}

func (e *Engine) act(name string, fn func() []event.Event) []event.Event {
	if e.over {
		return []event.Event{{Kind: event.KindDead}}
	}
	evs := fn()
	e.logger.Debug("command resolved",
		zap.String("command", name),
		zap.Stringer("pos", e.pos),
		zap.Int("events", len(evs)),
	)
	if e.player.IsDead() {
		e.over = true
		e.logger.Info("player died",
			zap.Stringer("pos", e.pos),
			zap.Int("gold", e.player.Gold),
		)
	}
	return evs
}

func (e *Engine) here() *dungeon.Room {
	return e.grid.RoomAt(e.pos)
}
