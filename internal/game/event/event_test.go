package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cory-johannsen/dungeondigits/internal/game/event"
)

func TestMessage(t *testing.T) {
	cases := []struct {
		ev   event.Event
		want string
	}{
		{event.Event{Kind: event.KindWall}, "You hit the dungeon wall."},
		{event.Event{Kind: event.KindBlocked}, "Path blocked!"},
		{event.Event{Kind: event.KindMoved, X: 2, Y: 3}, "You enter room (2, 3)."},
		{event.Event{Kind: event.KindMonsterAppears, Monster: "Orc"}, "A wild Orc appears!"},
		{event.Event{Kind: event.KindPlayerHit, Monster: "Rat", Amount: 3}, "You hit the Rat for 3!"},
		{event.Event{Kind: event.KindMonsterSlain, Monster: "Rat"}, "Rat slain!"},
		{event.Event{Kind: event.KindMonsterHit, Monster: "Orc", Amount: 2}, "Orc hits for 2!"},
		{event.Event{Kind: event.KindFoundGold, Amount: 17}, "Found 17 gold!"},
		{event.Event{Kind: event.KindAmbushed, Monster: "Kobold"}, "Ambushed in your sleep by a Kobold!"},
		{event.Event{Kind: event.Kind(99)}, "Something happened."},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.ev.Message())
		assert.Equal(t, tc.want, tc.ev.String())
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "wall", event.KindWall.String())
	assert.Equal(t, "dead", event.KindDead.String())
	assert.Equal(t, "unknown", event.Kind(-1).String())
	assert.Equal(t, "unknown", event.Kind(1000).String())
}

func TestKindsAndCount(t *testing.T) {
	evs := []event.Event{{Kind: event.KindPlayerMiss}, {Kind: event.KindMonsterHit}, {Kind: event.KindMonsterHit}}
	assert.Equal(t, []event.Kind{event.KindPlayerMiss, event.KindMonsterHit, event.KindMonsterHit}, event.Kinds(evs))
	assert.Equal(t, 2, event.Count(evs, event.KindMonsterHit))
	assert.Zero(t, event.Count(evs, event.KindWall))
}
