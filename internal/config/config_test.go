package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/delver-sim/internal/config"
	"github.com/KirkDiggler/delver-sim/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

var envKeys = []string{
	"DELVER_STORE", "DELVER_REDIS_ADDR", "DELVER_SQLITE_PATH", "DELVER_SEED",
	"DELVER_MAX_EVENT_DEPTH", "DELVER_LOG_LEVEL", "DELVER_COLOR",
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	for _, k := range envKeys {
		// register restoration, then clear for the test
		s.T().Setenv(k, "")
		s.Require().NoError(os.Unsetenv(k))
	}
}

func (s *ConfigTestSuite) writeEnv(body string) string {
	path := filepath.Join(s.dir, "test.env")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load(s.writeEnv(""))
	s.Require().NoError(err)

	s.Equal(config.StoreSQLite, cfg.Store)
	s.Equal("delver.db", cfg.SQLitePath)
	s.Equal("localhost:6379", cfg.RedisAddr)
	s.Equal(uint64(0), cfg.Seed)
	s.Equal(32, cfg.MaxEventDepth)
	s.True(cfg.Colour)
	s.Equal(slog.LevelInfo, cfg.SlogLevel())
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestEnvFileAndEnvironment() {
	path := s.writeEnv("DELVER_STORE=redis\nDELVER_SEED=42\nDELVER_LOG_LEVEL=debug\n")
	s.T().Setenv("DELVER_SEED", "7")

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Equal(config.StoreRedis, cfg.Store)
	s.Equal(uint64(7), cfg.Seed, "process environment wins over the file")
	s.Equal(slog.LevelDebug, cfg.SlogLevel())
}

func (s *ConfigTestSuite) TestLoadErrors() {
	_, err := config.Load(filepath.Join(s.dir, "missing.env"))
	s.True(errors.IsInvalidArgument(err))

	s.T().Setenv("DELVER_SEED", "not-a-number")
	_, err = config.Load(s.writeEnv(""))
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			name:    "missing store",
			mutate:  func(c *config.Config) { c.Store = "" },
			wantErr: "store: is required",
		},
		{
			name:    "unknown store",
			mutate:  func(c *config.Config) { c.Store = "postgres" },
			wantErr: "store: must be one of: redis, sqlite",
		},
		{
			name:    "redis without address",
			mutate:  func(c *config.Config) { c.Store = config.StoreRedis; c.RedisAddr = "" },
			wantErr: "redis_addr: is required",
		},
		{
			name:    "depth out of range",
			mutate:  func(c *config.Config) { c.MaxEventDepth = 0 },
			wantErr: "max_event_depth: must be between 1 and 1024",
		},
		{
			name:    "bad log level",
			mutate:  func(c *config.Config) { c.LogLevel = "loud" },
			wantErr: "log_level: is invalid",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := &config.Config{
				Store:         config.StoreSQLite,
				SQLitePath:    "x.db",
				MaxEventDepth: 32,
				LogLevel:      "info",
			}
			tc.mutate(cfg)
			err := cfg.Validate()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.wantErr)
		})
	}
}
