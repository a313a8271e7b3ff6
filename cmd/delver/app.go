package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/delver-sim/internal/config"
	"github.com/KirkDiggler/delver-sim/internal/display"
	"github.com/KirkDiggler/delver-sim/internal/engine"
	"github.com/KirkDiggler/delver-sim/internal/entities"
	"github.com/KirkDiggler/delver-sim/internal/errors"
	"github.com/KirkDiggler/delver-sim/internal/modifiers"
	"github.com/KirkDiggler/delver-sim/internal/orchestrators/game"
	"github.com/KirkDiggler/delver-sim/internal/pkg/clock"
	"github.com/KirkDiggler/delver-sim/internal/pkg/idgen"
	"github.com/KirkDiggler/delver-sim/internal/redis"
	"github.com/KirkDiggler/delver-sim/internal/repositories/versioned"
)

// app holds the stores and engine shared by every command
type app struct {
	characters *versioned.Repository[entities.Character, entities.Character]
	teams      *versioned.Repository[entities.Team, entities.Team]
	games      *versioned.Repository[entities.GameKind, game.Snapshot]
	engine     engine.Engine
	renderer   *display.Renderer
	close      func() error
}

// openApp connects the configured backend and builds the typed stores on it
func openApp(ctx context.Context, c *config.Config) (*app, error) {
	backend, closeFn, err := openBackend(ctx, c)
	if err != nil {
		return nil, err
	}

	a := &app{close: closeFn}
	storeCfg := &versioned.Config{Backend: backend}
	if a.characters, err = versioned.New[entities.Character, entities.Character](storeCfg); err != nil {
		return nil, a.fail(err)
	}
	if a.teams, err = versioned.New[entities.Team, entities.Team](storeCfg); err != nil {
		return nil, a.fail(err)
	}
	if a.games, err = versioned.New[entities.GameKind, game.Snapshot](storeCfg); err != nil {
		return nil, a.fail(err)
	}

	a.engine, err = engine.New(&engine.Config{
		Dispatcher: modifiers.Catalogue{},
		MaxDepth:   c.MaxEventDepth,
	})
	if err != nil {
		return nil, a.fail(err)
	}
	a.renderer = display.New(&display.Config{Colour: c.Colour})

	return a, nil
}

func openBackend(ctx context.Context, c *config.Config) (versioned.Backend, func() error, error) {
	switch c.Store {
	case config.StoreRedis:
		client, err := redis.NewClient(c.RedisAddr, nil)
		if err != nil {
			return nil, nil, err
		}
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach redis")
		}
		backend, err := versioned.NewRedis(&versioned.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		slog.DebugContext(ctx, "Using redis store", "addr", c.RedisAddr)
		return backend, client.Close, nil
	case config.StoreSQLite:
		backend, err := versioned.OpenSQLite(&versioned.SQLiteConfig{
			Path:  c.SQLitePath,
			Clock: clock.New(),
		})
		if err != nil {
			return nil, nil, err
		}
		slog.DebugContext(ctx, "Using sqlite store", "path", c.SQLitePath)
		return backend, backend.Close, nil
	default:
		return nil, nil, errors.InvalidArgumentf("unknown store %q", c.Store)
	}
}

// gameConfig builds the orchestrator config for a new or restored game
func (a *app) gameConfig(seed uint64) *game.Config {
	return &game.Config{
		Characters:  a.characters,
		Teams:       a.teams,
		Games:       a.games,
		Engine:      a.engine,
		IDGenerator: idgen.NewUUID("game"),
		Seed:        seed,
		Renderer:    a.renderer,
	}
}

func (a *app) fail(err error) error {
	if closeErr := a.close(); closeErr != nil {
		slog.Warn("Failed to close store", "error", closeErr)
	}
	return err
}

func (a *app) Close() {
	if err := a.close(); err != nil {
		slog.Warn("Failed to close store", "error", err)
	}
}
