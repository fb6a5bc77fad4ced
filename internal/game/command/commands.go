// Package command provides the command table, the input parser, and the
// alias-aware registry the frontend dispatches through.
package command

// Categories for organizing help output.
const (
	CategoryMovement = "movement"
	CategoryAction   = "action"
	CategorySystem   = "system"
)

// Handler identifiers the frontend dispatches on.
const (
	HandlerMove   = "move"
	HandlerFight  = "fight"
	HandlerFlee   = "flee"
	HandlerSearch = "search"
	HandlerSleep  = "sleep"
	HandlerLook   = "look"
	HandlerStats  = "stats"
	HandlerNew    = "new"
	HandlerHelp   = "help"
	HandlerQuit   = "quit"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the command in help output.
	Category string
	// Handler selects the frontend action.
	Handler string
}

// BuiltinCommands returns every command the game understands.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "north", Aliases: []string{"n"}, Help: "Move north", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "south", Aliases: []string{"s"}, Help: "Move south", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "east", Aliases: []string{"e"}, Help: "Move east", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "west", Aliases: []string{"w"}, Help: "Move west", Category: CategoryMovement, Handler: HandlerMove},

		{Name: "fight", Aliases: []string{"f", "attack", "kill"}, Help: "Attack the monster in this room", Category: CategoryAction, Handler: HandlerFight},
		{Name: "flee", Aliases: []string{"run"}, Help: "Run in a random direction", Category: CategoryAction, Handler: HandlerFlee},
		{Name: "search", Aliases: []string{"se"}, Help: "Search the room for gold", Category: CategoryAction, Handler: HandlerSearch},
		{Name: "sleep", Aliases: []string{"rest", "z"}, Help: "Sleep to restore your hit points", Category: CategoryAction, Handler: HandlerSleep},

		{Name: "look", Aliases: []string{"l", "map"}, Help: "Show the dungeon map", Category: CategorySystem, Handler: HandlerLook},
		{Name: "stats", Aliases: []string{"status", "score"}, Help: "Show your attributes", Category: CategorySystem, Handler: HandlerStats},
		{Name: "new", Aliases: []string{"restart"}, Help: "Start a new game", Category: CategorySystem, Handler: HandlerNew},
		{Name: "help", Aliases: []string{"?"}, Help: "Show available commands", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"exit", "q"}, Help: "Leave the dungeon", Category: CategorySystem, Handler: HandlerQuit},
	}
}

// IsMovementCommand reports whether the command name is a movement direction.
func IsMovementCommand(name string) bool {
	switch name {
	case "north", "south", "east", "west":
		return true
	default:
		return false
	}
}
