package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dungeondigits/internal/game/combat"
	"github.com/cory-johannsen/dungeondigits/internal/game/dice"
	"github.com/cory-johannsen/dungeondigits/internal/testutil"
)

func TestHits(t *testing.T) {
	assert.True(t, combat.Hits(10, 10))
	assert.True(t, combat.Hits(20, 10))
	assert.False(t, combat.Hits(9, 10))
}

func TestResolveAttack_Hit(t *testing.T) {
	r := dice.NewLoggedRoller(testutil.NewScriptedSource(14), zap.NewNop())
	res := combat.ResolveAttack(r, 9, 10)
	assert.Equal(t, combat.AttackResult{Roll: 15, Target: 10, Hit: true, Damage: 3}, res)
}

func TestResolveAttack_Miss(t *testing.T) {
	r := dice.NewLoggedRoller(testutil.NewScriptedSource(3), zap.NewNop())
	res := combat.ResolveAttack(r, 18, 10)
	assert.False(t, res.Hit)
	assert.Zero(t, res.Damage)
	assert.Equal(t, 4, res.Roll)
}

func TestResolveAttack_DamageFloor(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		raw := rapid.IntRange(0, 19).Draw(rt, "raw")
		str := rapid.IntRange(0, 2).Draw(rt, "strength")
		ac := rapid.IntRange(10, 20).Draw(rt, "ac")
		r := dice.NewLoggedRoller(testutil.NewScriptedSource(raw), zap.NewNop())
		res := combat.ResolveAttack(r, str, ac)
		if res.Hit {
			assert.Equal(rt, 1, res.Damage)
		} else {
			assert.Zero(rt, res.Damage)
		}
		assert.Equal(rt, raw+1 >= ac, res.Hit)
	})
}
