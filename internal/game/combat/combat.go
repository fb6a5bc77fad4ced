// Package combat resolves the player's fight, flee, search and rest actions.
package combat

import (
	"github.com/cory-johannsen/dungeondigits/internal/game/character"
	"github.com/cory-johannsen/dungeondigits/internal/game/dice"
)

const (
	// GoldMin and GoldSpread define search treasure: RollRange(GoldSpread) + GoldMin.
	GoldMin    = 5
	GoldSpread = 30
	// AmbushOdds is the n in the one-in-n chance that resting draws a monster.
	AmbushOdds = 6
)

// AttackResult holds the outcome of a single attack roll.
type AttackResult struct {
	// Roll is the d20 result.
	Roll int
	// Target is the armor class the roll was compared against.
	Target int
	// Hit is true when Roll >= Target.
	Hit bool
	// Damage is the damage dealt; zero on a miss.
	Damage int
}

// Hits reports whether an attack roll meets or beats armor class.
func Hits(roll, armorClass int) bool {
	return roll >= armorClass
}

// ResolveAttack draws one d20 for an attacker with strength against armorClass.
//
// Postcondition: Damage >= 1 when Hit, 0 otherwise.
func ResolveAttack(r *dice.Roller, strength, armorClass int) AttackResult {
	roll := r.D20()
	res := AttackResult{Roll: roll, Target: armorClass, Hit: Hits(roll, armorClass)}
	if res.Hit {
		res.Damage = character.DamageFor(strength)
	}
	return res
}
