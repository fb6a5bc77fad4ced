// Package handlers runs the dungeon command loop for Telnet and console
// sessions.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeondigits/internal/frontend/telnet"
	"github.com/cory-johannsen/dungeondigits/internal/game/command"
	"github.com/cory-johannsen/dungeondigits/internal/game/dungeon"
	"github.com/cory-johannsen/dungeondigits/internal/game/engine"
	"github.com/cory-johannsen/dungeondigits/internal/game/event"
	"github.com/cory-johannsen/dungeondigits/internal/game/session"
)

// LineIO is the line-oriented transport a game runs over.
type LineIO interface {
	ReadLine() (string, error)
	WriteLine(text string) error
	WritePrompt(prompt string) error
}

// GameHandler implements telnet.SessionHandler and plays one game per
// session.
type GameHandler struct {
	sessions  *session.Manager
	registry  *command.Registry
	newEngine EngineFactory
	render    TextRenderer
	logger    *zap.Logger
}

// NewGameHandler creates a GameHandler.
//
// Precondition: every argument except render must be non-nil.
func NewGameHandler(
	sessions *session.Manager,
	registry *command.Registry,
	newEngine EngineFactory,
	render TextRenderer,
	logger *zap.Logger,
) *GameHandler {
	if sessions == nil || registry == nil || newEngine == nil || logger == nil {
		panic("handlers: NewGameHandler called with nil dependency")
	}
	return &GameHandler{
		sessions:  sessions,
		registry:  registry,
		newEngine: newEngine,
		render:    render,
		logger:    logger,
	}
}

// HandleSession implements telnet.SessionHandler.
func (h *GameHandler) HandleSession(ctx context.Context, conn *telnet.Conn) error {
	return h.Play(ctx, conn, conn.RemoteAddr().String())
}

// Play registers a session for remoteAddr and runs its command loop until the
// player quits, input ends or ctx is cancelled.
//
// Postcondition: The session is removed from the registry on return. Returns
// nil on quit or end of input.
func (h *GameHandler) Play(ctx context.Context, lio LineIO, remoteAddr string) error {
	sess, err := h.sessions.Add(remoteAddr)
	if err != nil {
		return fmt.Errorf("registering session: %w", err)
	}
	defer func() { _ = h.sessions.Remove(sess.ID) }()

	log := h.logger.With(zap.String("session", sess.ID), zap.String("remote_addr", remoteAddr))
	log.Info("game session opened", zap.Int("live_sessions", h.sessions.Count()))

	p := &play{h: h, lio: lio, log: log}
	p.writeLines(h.render.Banner())
	p.start()

	for {
		select {
		case <-ctx.Done():
			_ = lio.WriteLine(h.render.paint(telnet.Yellow, "Server shutting down. Goodbye!"))
			return ctx.Err()
		default:
		}

		if err := lio.WritePrompt(h.render.Prompt(p.eng.PlayerStats().HitPoints)); err != nil {
			return fmt.Errorf("writing prompt: %w", err)
		}
		line, err := lio.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Info("game session closed by peer", zap.Duration("duration", time.Since(sess.StartedAt)))
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		cmd, parsed, ok := h.registry.Lookup(line)
		if !ok {
			if parsed.Command != "" {
				p.say(telnet.Red, fmt.Sprintf("Unknown command: %s. Type 'help' for available commands.", parsed.Command))
			}
			continue
		}

		act, ok := actions[cmd.Handler]
		if !ok {
			log.Error("command has no action", zap.String("command", cmd.Name), zap.String("handler", cmd.Handler))
			p.say(telnet.Red, "That command is not available.")
			continue
		}
		if quit := act(p, cmd); quit {
			log.Info("game session quit", zap.Duration("duration", time.Since(sess.StartedAt)))
			return nil
		}
		if err := p.err; err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
}

// play is the per-session loop state.
type play struct {
	h   *GameHandler
	lio LineIO
	log *zap.Logger
	eng *engine.Engine
	err error
}

func (p *play) writeLines(lines []string) {
	for _, l := range lines {
		if p.err != nil {
			return
		}
		p.err = p.lio.WriteLine(l)
	}
}

func (p *play) say(color, text string) {
	p.writeLines([]string{p.h.render.paint(color, text)})
}

// start begins a new game and shows its opening.
func (p *play) start() {
	p.eng = p.h.newEngine(p.log)
	p.writeLines(p.h.render.Map(p.eng.DungeonView()))
	p.writeLines([]string{p.h.render.Room(p.eng.Here())})
	p.writeLines(p.h.render.Events(p.eng.Opening()))
	p.writeLines([]string{p.h.render.Stats(p.eng.PlayerStats())})
}

// report shows the events of one engine command, the map after a change of
// room, and the status line.
func (p *play) report(evs []event.Event) {
	p.writeLines(p.h.render.Events(evs))
	if event.Count(evs, event.KindMoved) > 0 {
		p.writeLines(p.h.render.Map(p.eng.DungeonView()))
	}
	if event.Count(evs, event.KindDead) == 0 {
		p.writeLines([]string{p.h.render.Stats(p.eng.PlayerStats())})
	}
	if event.Count(evs, event.KindPlayerDied) > 0 {
		p.say(telnet.Yellow, "Type 'new' to start again or 'quit' to leave.")
	}
}

// actionFunc runs one command; it returns true to end the session.
type actionFunc func(p *play, cmd *command.Command) bool

// actions maps every command.Handler constant to its implementation.
var actions = map[string]actionFunc{
	command.HandlerMove:   actMove,
	command.HandlerFight:  func(p *play, _ *command.Command) bool { p.report(p.eng.Fight()); return false },
	command.HandlerFlee:   func(p *play, _ *command.Command) bool { p.report(p.eng.Flee()); return false },
	command.HandlerSearch: func(p *play, _ *command.Command) bool { p.report(p.eng.Search()); return false },
	command.HandlerSleep:  func(p *play, _ *command.Command) bool { p.report(p.eng.Sleep()); return false },
	command.HandlerLook:   actLook,
	command.HandlerStats:  actStats,
	command.HandlerNew:    actNew,
	command.HandlerHelp:   actHelp,
	command.HandlerQuit:   actQuit,
}

func actMove(p *play, cmd *command.Command) bool {
	dir, ok := dungeon.ParseDirection(cmd.Name)
	if !ok {
		p.say(telnet.Red, "You can't go that way.")
		return false
	}
	p.report(p.eng.Move(dir))
	return false
}

func actLook(p *play, _ *command.Command) bool {
	p.writeLines(p.h.render.Map(p.eng.DungeonView()))
	p.writeLines([]string{p.h.render.Room(p.eng.Here())})
	return false
}

func actStats(p *play, _ *command.Command) bool {
	s := p.eng.PlayerStats()
	p.writeLines([]string{
		p.h.render.Stats(s),
		p.h.render.paint(telnet.Dim, fmt.Sprintf("AC:%d", s.ArmorClass)),
	})
	return false
}

func actNew(p *play, _ *command.Command) bool {
	p.log.Info("new game requested", zap.Bool("was_over", p.eng.Over()))
	p.say(telnet.BrightYellow, "A new dungeon opens beneath you.")
	p.start()
	return false
}

func actHelp(p *play, _ *command.Command) bool {
	p.writeLines(p.h.render.Help(p.h.registry))
	return false
}

func actQuit(p *play, _ *command.Command) bool {
	s := p.eng.PlayerStats()
	p.say(telnet.Cyan, fmt.Sprintf("You leave the dungeon with %d gold. Goodbye!", s.Gold))
	return true
}
