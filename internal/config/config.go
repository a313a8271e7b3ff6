// Package config loads runtime settings from the environment and optional
// .env files.
package config

import (
	stderrors "errors"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/delver-sim/internal/errors"
)

// Store selects the persistence backend
type Store string

// Supported stores
const (
	StoreRedis  Store = "redis"
	StoreSQLite Store = "sqlite"
)

// DefaultEnvFile is loaded when present and no other file is named
const DefaultEnvFile = ".env"

// Config holds every setting the CLI needs
type Config struct {
	Store         Store  `env:"DELVER_STORE" envDefault:"sqlite"`
	RedisAddr     string `env:"DELVER_REDIS_ADDR" envDefault:"localhost:6379"`
	SQLitePath    string `env:"DELVER_SQLITE_PATH" envDefault:"delver.db"`
	Seed          uint64 `env:"DELVER_SEED"`
	MaxEventDepth int    `env:"DELVER_MAX_EVENT_DEPTH" envDefault:"32"`
	LogLevel      string `env:"DELVER_LOG_LEVEL" envDefault:"info"`
	Colour        bool   `env:"DELVER_COLOR" envDefault:"true"`
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Load reads envFiles (or .env when none are given and it exists) into the
// process environment without overriding variables already set, then
// parses the environment
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		if err := godotenv.Load(DefaultEnvFile); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read "+DefaultEnvFile)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read env files")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	return &cfg, nil
}

// Validate checks the settings are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	switch c.Store {
	case StoreRedis:
		errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
	case StoreSQLite:
		errors.ValidateRequired("sqlite_path", strings.TrimSpace(c.SQLitePath), vb)
	case "":
		vb.RequiredField("store")
	default:
		errors.ValidateEnum("store", string(c.Store), []string{string(StoreRedis), string(StoreSQLite)}, vb)
	}

	errors.ValidateRange("max_event_depth", c.MaxEventDepth, 1, 1024, vb)

	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		vb.InvalidField("log_level", "must be one of debug, info, warn, error")
	}

	return vb.Build()
}

// SlogLevel converts LogLevel, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	if lvl, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		return lvl
	}
	return slog.LevelInfo
}
