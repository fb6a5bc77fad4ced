// Package main runs the dungeon server: a Telnet listener that gives every
// connection its own game, or a single game on the local terminal.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeondigits/internal/config"
	"github.com/cory-johannsen/dungeondigits/internal/frontend/handlers"
	"github.com/cory-johannsen/dungeondigits/internal/frontend/telnet"
	"github.com/cory-johannsen/dungeondigits/internal/game/command"
	"github.com/cory-johannsen/dungeondigits/internal/game/monster"
	"github.com/cory-johannsen/dungeondigits/internal/game/session"
	"github.com/cory-johannsen/dungeondigits/internal/observability"
	"github.com/cory-johannsen/dungeondigits/internal/server"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file (defaults and DUNGEON_* env when empty)")
	console := flag.Bool("console", false, "play one game on this terminal instead of serving Telnet")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *console {
		cfg.Server.Mode = config.ModeConsole
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	roster, err := monster.LoadRoster(cfg.Game.Roster)
	if err != nil {
		logger.Fatal("loading monster roster", zap.Error(err), zap.String("path", cfg.Game.Roster))
	}

	sessions := session.NewManager()
	handler := handlers.NewGameHandler(
		sessions,
		command.DefaultRegistry(),
		handlers.NewEngineFactory(cfg.Game, roster),
		handlers.TextRenderer{Color: true},
		logger,
	)

	lifecycle := server.NewLifecycle(logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	switch cfg.Server.Mode {
	case config.ModeConsole:
		lifecycle.Add("console", &server.FuncService{
			StartFn: func() error {
				return handler.Play(ctx, handlers.NewConsole(os.Stdin, os.Stdout), "console")
			},
			StopFn: cancel,
		})
	default:
		acceptor := telnet.NewAcceptor(cfg.Telnet, handler, logger)
		lifecycle.Add("telnet", &server.FuncService{
			StartFn: acceptor.ListenAndServe,
			StopFn:  acceptor.Stop,
		})
	}

	logger.Info("dungeon initialized",
		zap.String("mode", cfg.Server.Mode),
		zap.Int("size", cfg.Game.Size),
		zap.Bool("seeded", cfg.Game.Seeded()),
		zap.Int("monsters", len(roster.Names)),
		zap.String("telnet_addr", cfg.Telnet.Addr()),
		zap.Duration("startup", time.Since(start)),
	)

	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
