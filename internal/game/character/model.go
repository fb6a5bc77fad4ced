// Package character defines the attribute model shared by the player and
// monsters, and the rules for rolling a new player.
package character

import "github.com/cory-johannsen/dungeondigits/internal/game/dice"

// StartingHitPoints is the hit point total of a new player and the value a
// rest restores.
const StartingHitPoints = 20

// Attributes holds the combat attributes common to players and monsters.
type Attributes struct {
	HitPoints    int
	Strength     int
	Dexterity    int
	Intelligence int
	ArmorClass   int
}

// ArmorClassFor derives armor class from dexterity: 10 + dexterity/3.
func ArmorClassFor(dexterity int) int {
	return 10 + dexterity/3
}

// DamageFor returns the damage dealt by a successful hit from an attacker with
// the given strength: strength/3, never less than 1.
//
// Postcondition: Returns >= 1.
func DamageFor(strength int) int {
	return max(1, strength/3)
}

// IsDead reports whether hit points have reached zero or below.
func (a Attributes) IsDead() bool {
	return a.HitPoints <= 0
}

// ApplyDamage subtracts amount from HitPoints. Hit points may go negative.
//
// Precondition: amount >= 0.
func (a *Attributes) ApplyDamage(amount int) {
	if amount < 0 {
		panic("character: ApplyDamage called with negative amount")
	}
	a.HitPoints -= amount
}

// Player is the session's single player character.
type Player struct {
	Attributes
	// Gold only ever increases.
	Gold int
}

// NewPlayer rolls a new player: strength, dexterity and intelligence are each
// 3d6, drawn in that order.
//
// Precondition: r must be non-nil.
// Postcondition: HitPoints == StartingHitPoints; ArmorClass == ArmorClassFor(Dexterity).
func NewPlayer(r *dice.Roller) *Player {
	str := r.Roll3d6()
	dex := r.Roll3d6()
	intel := r.Roll3d6()
	return &Player{
		Attributes: Attributes{
			HitPoints:    StartingHitPoints,
			Strength:     str,
			Dexterity:    dex,
			Intelligence: intel,
			ArmorClass:   ArmorClassFor(dex),
		},
	}
}

// Rest sets hit points to exactly StartingHitPoints.
func (p *Player) Rest() {
	p.HitPoints = StartingHitPoints
}

// AddGold adds amount to the player's purse.
//
// Precondition: amount >= 0.
func (p *Player) AddGold(amount int) {
	if amount < 0 {
		panic("character: AddGold called with negative amount")
	}
	p.Gold += amount
}

// Stats is a read-only snapshot of the player's attributes.
type Stats struct {
	HitPoints    int
	Strength     int
	Dexterity    int
	Intelligence int
	ArmorClass   int
	Gold         int
}

// Stats returns a snapshot of p.
func (p *Player) Stats() Stats {
	return Stats{
		HitPoints:    p.HitPoints,
		Strength:     p.Strength,
		Dexterity:    p.Dexterity,
		Intelligence: p.Intelligence,
		ArmorClass:   p.ArmorClass,
		Gold:         p.Gold,
	}
}
