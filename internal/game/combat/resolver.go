package combat

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeondigits/internal/game/character"
	"github.com/cory-johannsen/dungeondigits/internal/game/dice"
	"github.com/cory-johannsen/dungeondigits/internal/game/dungeon"
	"github.com/cory-johannsen/dungeondigits/internal/game/encounter"
	"github.com/cory-johannsen/dungeondigits/internal/game/event"
)

// Resolver applies player actions to the session state. It holds no state of
// its own beyond its collaborators.
type Resolver struct {
	roller     *dice.Roller
	encounters *encounter.Manager
	logger     *zap.Logger
}

// NewResolver creates a Resolver.
//
// Precondition: all arguments must be non-nil and share the session's roller.
func NewResolver(roller *dice.Roller, encounters *encounter.Manager, logger *zap.Logger) *Resolver {
	if roller == nil || encounters == nil || logger == nil {
		panic("combat: NewResolver called with nil dependency")
	}
	return &Resolver{roller: roller, encounters: encounters, logger: logger}
}

// Fight resolves one round against the monster in room. The player attacks
// first; a slain monster is removed and does not retaliate. A surviving monster
// attacks exactly once.
//
// Postcondition: draws 0 d20 when the room is empty, 1 when the monster dies,
// 2 otherwise.
func (r *Resolver) Fight(p *character.Player, room *dungeon.Room) []event.Event {
	if !room.HasMonster() {
		return []event.Event{{Kind: event.KindNothingToFight}}
	}
	m := room.Monster
	var evs []event.Event

	atk := ResolveAttack(r.roller, p.Strength, m.ArmorClass)
	if atk.Hit {
		m.ApplyDamage(atk.Damage)
		evs = append(evs, event.Event{Kind: event.KindPlayerHit, Monster: m.Name, Amount: atk.Damage})
	} else {
		evs = append(evs, event.Event{Kind: event.KindPlayerMiss, Monster: m.Name})
	}

	if m.IsDead() {
		room.ClearMonster()
		r.logger.Debug("monster slain", zap.String("name", m.Name), zap.Int("x", room.X), zap.Int("y", room.Y))
		return append(evs, event.Event{Kind: event.KindMonsterSlain, Monster: m.Name})
	}

	ret := ResolveAttack(r.roller, m.Strength, p.ArmorClass)
	if ret.Hit {
		p.ApplyDamage(ret.Damage)
		evs = append(evs, event.Event{Kind: event.KindMonsterHit, Monster: m.Name, Amount: ret.Damage})
	} else {
		evs = append(evs, event.Event{Kind: event.KindMonsterMiss, Monster: m.Name})
	}

	if p.IsDead() {
		r.logger.Debug("player slain", zap.String("by", m.Name), zap.Int("hp", p.HitPoints))
		evs = append(evs, event.Event{Kind: event.KindPlayerDied, Monster: m.Name})
	}
	return evs
}

// Flee moves the player one random step: dx then dy are each drawn uniformly
// from {-1, 0, 1}. The step obeys the normal movement rules, including the
// room-entry check on arrival.
func (r *Resolver) Flee(g *dungeon.Grid, pos dungeon.Position) (dungeon.Position, []event.Event) {
	evs := []event.Event{{Kind: event.KindFled}}
	dx := r.roller.RollRange(3) - 1
	dy := r.roller.RollRange(3) - 1
	to, more := r.encounters.Travel(g, pos, dx, dy)
	return to, append(evs, more...)
}

// Search looks for gold in an empty room. It succeeds when a d20 is strictly
// less than the player's intelligence.
func (r *Resolver) Search(p *character.Player, room *dungeon.Room) []event.Event {
	if room.HasMonster() {
		return []event.Event{{Kind: event.KindKillItFirst, Monster: room.Monster.Name}}
	}
	if r.roller.D20() >= p.Intelligence {
		return []event.Event{{Kind: event.KindNoTreasure}}
	}
	gold := r.roller.RollRange(GoldSpread) + GoldMin
	p.AddGold(gold)
	return []event.Event{{Kind: event.KindFoundGold, Amount: gold}}
}

// Rest restores the player to full hit points, then risks a one-in-AmbushOdds
// ambush. An ambush in an empty room spawns a monster; in an occupied room the
// occupant stays and is the ambusher.
func (r *Resolver) Rest(p *character.Player, room *dungeon.Room) []event.Event {
	p.Rest()
	evs := []event.Event{{Kind: event.KindRestored}}
	if !r.roller.Chance(AmbushOdds) {
		return evs
	}
	m := r.encounters.Occupy(room)
	return append(evs, event.Event{Kind: event.KindAmbushed, Monster: m.Name})
}
