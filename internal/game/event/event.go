// Package event defines the narrative records the engine returns for every
// command.
package event

import "fmt"

// Kind identifies what happened.
type Kind int

const (
	KindWall Kind = iota
	KindBlocked
	KindMoved
	KindMonsterAppears
	KindNothingToFight
	KindPlayerHit
	KindPlayerMiss
	KindMonsterSlain
	KindMonsterHit
	KindMonsterMiss
	KindPlayerDied
	KindFled
	KindKillItFirst
	KindFoundGold
	KindNoTreasure
	KindRestored
	KindAmbushed
	KindDead
)

var kindNames = [...]string{
	KindWall:           "wall",
	KindBlocked:        "blocked",
	KindMoved:          "moved",
	KindMonsterAppears: "monster_appears",
	KindNothingToFight: "nothing_to_fight",
	KindPlayerHit:      "player_hit",
	KindPlayerMiss:     "player_miss",
	KindMonsterSlain:   "monster_slain",
	KindMonsterHit:     "monster_hit",
	KindMonsterMiss:    "monster_miss",
	KindPlayerDied:     "player_died",
	KindFled:           "fled",
	KindKillItFirst:    "kill_it_first",
	KindFoundGold:      "found_gold",
	KindNoTreasure:     "no_treasure",
	KindRestored:       "restored",
	KindAmbushed:       "ambushed",
	KindDead:           "dead",
}

// String returns the snake_case name of k.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Event is one entry in a command's narrative.
type Event struct {
	Kind Kind
	// Monster names the monster involved, if any.
	Monster string
	// Amount is the damage dealt or gold found; zero otherwise.
	Amount int
	// X and Y are the destination of a KindMoved event.
	X, Y int
}

// Message returns the log line for e.
func (e Event) Message() string {
	switch e.Kind {
	case KindWall:
		return "You hit the dungeon wall."
	case KindBlocked:
		return "Path blocked!"
	case KindMoved:
		return fmt.Sprintf("You enter room (%d, %d).", e.X, e.Y)
	case KindMonsterAppears:
		return fmt.Sprintf("A wild %s appears!", e.Monster)
	case KindNothingToFight:
		return "Nothing to fight."
	case KindPlayerHit:
		return fmt.Sprintf("You hit the %s for %d!", e.Monster, e.Amount)
	case KindPlayerMiss:
		return "You miss."
	case KindMonsterSlain:
		return fmt.Sprintf("%s slain!", e.Monster)
	case KindMonsterHit:
		return fmt.Sprintf("%s hits for %d!", e.Monster, e.Amount)
	case KindMonsterMiss:
		return fmt.Sprintf("%s misses.", e.Monster)
	case KindPlayerDied:
		return "YOU DIED"
	case KindFled:
		return "You flee!"
	case KindKillItFirst:
		return "Kill it first!"
	case KindFoundGold:
		return fmt.Sprintf("Found %d gold!", e.Amount)
	case KindNoTreasure:
		return "No treasure."
	case KindRestored:
		return "HP restored."
	case KindAmbushed:
		return fmt.Sprintf("Ambushed in your sleep by a %s!", e.Monster)
	case KindDead:
		return "You are dead. Type 'new' to start again."
	default:
		return "Something happened."
	}
}

// String implements fmt.Stringer.
func (e Event) String() string { return e.Message() }

// Kinds returns the kinds of events, in order.
func Kinds(events []Event) []Kind {
	out := make([]Kind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

// Count returns how many events in events have kind k.
func Count(events []Event, k Kind) int {
	n := 0
	for _, e := range events {
		if e.Kind == k {
			n++
		}
	}
	return n
}
