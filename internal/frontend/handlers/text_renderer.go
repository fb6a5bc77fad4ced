package handlers

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/dungeondigits/internal/frontend/telnet"
	"github.com/cory-johannsen/dungeondigits/internal/game/character"
	"github.com/cory-johannsen/dungeondigits/internal/game/command"
	"github.com/cory-johannsen/dungeondigits/internal/game/dungeon"
	"github.com/cory-johannsen/dungeondigits/internal/game/engine"
	"github.com/cory-johannsen/dungeondigits/internal/game/event"
)

// Map glyphs.
const (
	GlyphPlayer  = '@'
	GlyphBlocked = '#'
	GlyphMonster = 'M'
	GlyphOpen    = '.'
)

// TextRenderer formats engine views and events as lines of text. With Color
// off every line is plain ASCII.
type TextRenderer struct {
	Color bool
}

func (r TextRenderer) paint(color, text string) string {
	if !r.Color {
		return text
	}
	return telnet.Colorize(color, text)
}

// Banner returns the greeting shown when a session starts.
func (r TextRenderer) Banner() []string {
	return []string{
		"",
		r.paint(telnet.Bold+telnet.BrightYellow, "  D U N G E O N   D I G I T S"),
		r.paint(telnet.Dim, "  Dig through the grid, fight what you find, keep the gold."),
		"  Type " + r.paint(telnet.Green, "help") + " for commands.",
		"",
	}
}

// Map renders one line per row, y = 0 first. The player's room is drawn as
// the player even when a monster shares it.
func (r TextRenderer) Map(v dungeon.View) []string {
	lines := make([]string, 0, v.Size)
	for y := 0; y < v.Size; y++ {
		var b strings.Builder
		for x := 0; x < v.Size; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(r.cell(v, x, y))
		}
		lines = append(lines, b.String())
	}
	return lines
}

func (r TextRenderer) cell(v dungeon.View, x, y int) string {
	c := v.At(x, y)
	switch {
	case v.Player.X == x && v.Player.Y == y:
		return r.paint(telnet.Bold+telnet.BrightGreen, string(GlyphPlayer))
	case c.Blocked:
		return r.paint(telnet.BrightBlack, string(GlyphBlocked))
	case c.Monster:
		return r.paint(telnet.BrightRed, string(GlyphMonster))
	default:
		return r.paint(telnet.Dim, string(GlyphOpen))
	}
}

// Stats renders the status line.
func (r TextRenderer) Stats(s character.Stats) string {
	line := fmt.Sprintf("HP: %d  STR:%d  DEX:%d  INT:%d  Gold:%d",
		s.HitPoints, s.Strength, s.Dexterity, s.Intelligence, s.Gold)
	if s.HitPoints <= 5 {
		return r.paint(telnet.Red, line)
	}
	return r.paint(telnet.Cyan, line)
}

// Room describes the player's current room.
func (r TextRenderer) Room(info engine.RoomInfo) string {
	line := "Room " + info.Position.String()
	if info.Monster == "" {
		return r.paint(telnet.White, line+". It is quiet.")
	}
	return r.paint(telnet.White, line+". ") +
		r.paint(telnet.Yellow, fmt.Sprintf("A %s (%s) is here.", info.Monster, info.Health))
}

// Event renders one event.
func (r TextRenderer) Event(e event.Event) string {
	return r.paint(eventColor(e.Kind), e.Message())
}

// Events renders events in order.
func (r TextRenderer) Events(evs []event.Event) []string {
	lines := make([]string, len(evs))
	for i, e := range evs {
		lines[i] = r.Event(e)
	}
	return lines
}

func eventColor(k event.Kind) string {
	switch k {
	case event.KindPlayerHit, event.KindMonsterSlain, event.KindRestored, event.KindFled:
		return telnet.Green
	case event.KindMonsterHit, event.KindAmbushed:
		return telnet.Red
	case event.KindPlayerDied, event.KindDead:
		return telnet.Bold + telnet.BrightRed
	case event.KindMonsterAppears, event.KindKillItFirst:
		return telnet.BrightYellow
	case event.KindFoundGold:
		return telnet.Yellow
	case event.KindMoved:
		return telnet.White
	default:
		return telnet.BrightBlack
	}
}

// Help lists commands grouped by category.
func (r TextRenderer) Help(reg *command.Registry) []string {
	byCat := reg.CommandsByCategory()
	var lines []string
	for _, cat := range []string{command.CategoryMovement, command.CategoryAction, command.CategorySystem} {
		cmds := byCat[cat]
		if len(cmds) == 0 {
			continue
		}
		lines = append(lines, r.paint(telnet.BrightYellow, strings.ToUpper(cat[:1])+cat[1:]+":"))
		for _, c := range cmds {
			name := c.Name
			if len(c.Aliases) > 0 {
				name += " (" + strings.Join(c.Aliases, ", ") + ")"
			}
			lines = append(lines, fmt.Sprintf("  %s %s", r.paint(telnet.Green, fmt.Sprintf("%-24s", name)), c.Help))
		}
	}
	return lines
}

// Prompt returns the input prompt for a player with hp hit points.
func (r TextRenderer) Prompt(hp int) string {
	return r.paint(telnet.BrightWhite, fmt.Sprintf("[HP %d]> ", hp))
}
