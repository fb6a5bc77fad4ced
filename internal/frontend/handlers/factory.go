package handlers

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeondigits/internal/config"
	"github.com/cory-johannsen/dungeondigits/internal/game/dice"
	"github.com/cory-johannsen/dungeondigits/internal/game/engine"
	"github.com/cory-johannsen/dungeondigits/internal/game/monster"
)

// EngineFactory starts a fresh game for a session, logging to logger.
type EngineFactory func(logger *zap.Logger) *engine.Engine

// NewEngineFactory returns a factory that gives every game its own dice
// source: a PCG stream seeded with cfg.Seed when set, crypto/rand otherwise.
// A fixed seed makes every game on the server identical.
//
// Precondition: roster must be non-nil and valid; cfg.Size >= 1.
func NewEngineFactory(cfg config.GameConfig, roster *monster.Roster) EngineFactory {
	if roster == nil {
		panic("handlers: NewEngineFactory called with nil roster")
	}
	return func(logger *zap.Logger) *engine.Engine {
		var src dice.Source
		if cfg.Seeded() {
			src = dice.NewSeededSource(cfg.Seed)
		} else {
			src = dice.NewCryptoSource()
		}
		roller := dice.NewLoggedRoller(src, logger.Named("dice"))
		return engine.New(roller, engine.Options{Size: cfg.Size, Roster: roster}, logger)
	}
}
