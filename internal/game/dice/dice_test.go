package dice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dungeondigits/internal/game/dice"
	"github.com/cory-johannsen/dungeondigits/internal/testutil"
)

func TestRollResult_Total(t *testing.T) {
	r := dice.RollResult{Expression: "3d6", Dice: []int{4, 5, 2}, Modifier: 1}
	assert.Equal(t, 12, r.Total())
}

func TestRollResult_String(t *testing.T) {
	r := dice.RollResult{Expression: "2d6+3", Dice: []int{4, 5}, Modifier: 3}
	assert.Equal(t, "2d6+3 → [4 5] +3 = 12", r.String())
}

func TestRollResult_String_PanicsOnEmptyExpression(t *testing.T) {
	r := dice.RollResult{Dice: []int{4}}
	assert.Panics(t, func() { _ = r.String() })
}

func TestParse(t *testing.T) {
	cases := []struct {
		in    string
		count int
		sides int
		mod   int
	}{
		{"d20", 1, 20, 0},
		{"3d6", 3, 6, 0},
		{"2d6+3", 2, 6, 3},
		{"1D8-1", 1, 8, -1},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			e, err := dice.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.count, e.Count)
			assert.Equal(t, tc.sides, e.Sides)
			assert.Equal(t, tc.mod, e.Modifier)
			assert.Equal(t, tc.in, e.Raw)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "20", "0d6", "xd6", "d1", "d", "2d6+x", "-1d6"} {
		_, err := dice.Parse(in)
		assert.Error(t, err, "expected error for %q", in)
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { dice.MustParse("nope") })
}

func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { dice.NewCryptoSource().Intn(0) })
}

func TestSeededSource_Deterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint64().Draw(rt, "seed")
		a := dice.NewSeededSource(seed)
		b := dice.NewSeededSource(seed)
		for i := 0; i < 50; i++ {
			n := rapid.IntRange(1, 100).Draw(rt, "n")
			va, vb := a.Intn(n), b.Intn(n)
			assert.Equal(rt, va, vb)
			assert.GreaterOrEqual(rt, va, 0)
			assert.Less(rt, va, n)
		}
	})
}

func TestSeededSource_Intn_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { dice.NewSeededSource(1).Intn(0) })
}

func TestRoller_NamedDraws(t *testing.T) {
	src := testutil.NewScriptedSource(0, 5, 0, 19, 3, 7, 0, 1)
	r := dice.NewLoggedRoller(src, zap.NewNop())

	assert.Equal(t, 1, r.D6())
	assert.Equal(t, 6, r.D6())
	assert.Equal(t, 1, r.D20())
	assert.Equal(t, 20, r.D20())
	assert.Equal(t, 3, r.RollRange(30))
	assert.False(t, r.Chance(8))
	assert.True(t, r.Chance(2))
	assert.False(t, r.Chance(6))
	assert.Equal(t, []int{6, 6, 20, 20, 30, 8, 2, 6}, src.Calls())
	assert.Zero(t, src.Remaining())
}

func TestRoller_Roll3d6_DrawsThreeDice(t *testing.T) {
	src := testutil.NewScriptedSource(2, 3, 4)
	r := dice.NewLoggedRoller(src, zap.NewNop())
	assert.Equal(t, 12, r.Roll3d6())
	assert.Equal(t, []int{6, 6, 6}, src.Calls())
}

func TestRoller_Roll3d6_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := dice.NewLoggedRoller(dice.NewSeededSource(rapid.Uint64().Draw(rt, "seed")), zap.NewNop())
		v := r.Roll3d6()
		assert.GreaterOrEqual(rt, v, 3)
		assert.LessOrEqual(rt, v, 18)
	})
}

func TestRoller_RollExpr(t *testing.T) {
	r := dice.NewLoggedRoller(testutil.NewScriptedSource(3, 4), zap.NewNop())
	res, err := r.RollExpr("2d6+3")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, res.Dice)
	assert.Equal(t, 12, res.Total())
	assert.True(t, strings.HasPrefix(res.String(), "2d6+3"))

	_, err = r.RollExpr("bogus")
	assert.Error(t, err)
}

func TestNewLoggedRoller_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { dice.NewLoggedRoller(nil, zap.NewNop()) })
	assert.Panics(t, func() { dice.NewLoggedRoller(dice.NewCryptoSource(), nil) })
}
