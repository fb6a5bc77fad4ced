// Package monster provides the monster roster and monster construction.
package monster

import (
	"github.com/cory-johannsen/dungeondigits/internal/game/character"
	"github.com/cory-johannsen/dungeondigits/internal/game/dice"
)

// Monster is a live monster occupying a room.
type Monster struct {
	Name string
	character.Attributes
}

// Spawn builds a monster from roster: the name is drawn first, then a d6 base.
// HitPoints, Strength, Dexterity and Intelligence all equal base*2.
//
// Precondition: r and roster must be non-nil.
// Postcondition: ArmorClass == character.ArmorClassFor(Dexterity).
func Spawn(r *dice.Roller, roster *Roster) *Monster {
	name := roster.Names[r.RollRange(len(roster.Names))]
	stat := r.D6() * 2
	return &Monster{
		Name: name,
		Attributes: character.Attributes{
			HitPoints:    stat,
			Strength:     stat,
			Dexterity:    stat,
			Intelligence: stat,
			ArmorClass:   character.ArmorClassFor(stat),
		},
	}
}

// HealthDescription returns a short visible health state. Strength equals the
// spawn hit points, so it stands in for the maximum.
func (m *Monster) HealthDescription() string {
	switch {
	case m.HitPoints <= 0:
		return "dead"
	case m.HitPoints >= m.Strength:
		return "unharmed"
	case m.HitPoints*2 >= m.Strength:
		return "wounded"
	default:
		return "badly wounded"
	}
}
