package monster_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dungeondigits/internal/game/dice"
	"github.com/cory-johannsen/dungeondigits/internal/game/monster"
	"github.com/cory-johannsen/dungeondigits/internal/testutil"
)

func TestSpawn_DrawOrder(t *testing.T) {
	// name index 2 (Skeleton), d6 raw 3 -> base 4 -> stat 8
	src := testutil.NewScriptedSource(2, 3)
	m := monster.Spawn(dice.NewLoggedRoller(src, zap.NewNop()), monster.DefaultRoster())

	assert.Equal(t, "Skeleton", m.Name)
	assert.Equal(t, 8, m.HitPoints)
	assert.Equal(t, 8, m.Strength)
	assert.Equal(t, 8, m.Dexterity)
	assert.Equal(t, 8, m.Intelligence)
	assert.Equal(t, 12, m.ArmorClass)
	assert.Equal(t, []int{6, 6}, src.Calls())
}

func TestSpawn_Invariant(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := dice.NewLoggedRoller(dice.NewSeededSource(rapid.Uint64().Draw(rt, "seed")), zap.NewNop())
		m := monster.Spawn(r, monster.DefaultRoster())

		base := m.HitPoints / 2
		assert.GreaterOrEqual(rt, base, 1)
		assert.LessOrEqual(rt, base, 6)
		assert.Equal(rt, 2*base, m.HitPoints)
		assert.Equal(rt, m.HitPoints, m.Strength)
		assert.Equal(rt, m.HitPoints, m.Dexterity)
		assert.Equal(rt, m.HitPoints, m.Intelligence)
		assert.Equal(rt, 10+(2*base)/3, m.ArmorClass)
		assert.Contains(rt, monster.DefaultRoster().Names, m.Name)
	})
}

func TestDefaultRoster(t *testing.T) {
	r := monster.DefaultRoster()
	assert.Equal(t, []string{"Goblin", "Orc", "Skeleton", "Kobold", "Rat", "Cultist"}, r.Names)
	require.NoError(t, r.Validate())

	// callers get a copy
	r.Names[0] = "Dragon"
	assert.Equal(t, "Goblin", monster.DefaultRoster().Names[0])
}

func TestLoadRosterFromBytes(t *testing.T) {
	r, err := monster.LoadRosterFromBytes([]byte(`
monsters:
  - name: Bat
  - name: Slime
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Bat", "Slime"}, r.Names)
}

func TestLoadRosterFromBytes_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":     "monsters: []\n",
		"blank":     "monsters:\n  - name: \"\"\n",
		"duplicate": "monsters:\n  - name: Rat\n  - name: Rat\n",
		"malformed": "monsters: [\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := monster.LoadRosterFromBytes([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoadRoster(t *testing.T) {
	r, err := monster.LoadRoster("")
	require.NoError(t, err)
	assert.Len(t, r.Names, 6)

	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("monsters:\n  - name: Imp\n"), 0o600))
	r, err = monster.LoadRoster(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Imp"}, r.Names)

	_, err = monster.LoadRoster(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestHealthDescription(t *testing.T) {
	m := &monster.Monster{Name: "Orc"}
	m.HitPoints, m.Strength = 8, 8
	assert.Equal(t, "unharmed", m.HealthDescription())
	m.HitPoints = 4
	assert.Equal(t, "wounded", m.HealthDescription())
	m.HitPoints = 1
	assert.Equal(t, "badly wounded", m.HealthDescription())
	m.HitPoints = 0
	assert.Equal(t, "dead", m.HealthDescription())
}
