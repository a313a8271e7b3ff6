// Package main is the entry point for the delver command line
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/delver-sim/internal/config"
	"github.com/KirkDiggler/delver-sim/internal/errors"
)

var (
	envFile    string
	storeName  string
	redisAddr  string
	sqlitePath string
	logLevel   string
	noColour   bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "delver",
	Short: "Turn based team combat simulator",
	Long: `delver seats teams of characters on six seat rosters and lets them take
turns attacking each other. Character abilities react to every event and
each turn is stored as a replayable snapshot.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&envFile, "env-file", "", "env file to load before reading the environment")
	flags.StringVar(&storeName, "store", "", "storage backend: sqlite or redis")
	flags.StringVar(&redisAddr, "redis-addr", "", "redis address or url")
	flags.StringVar(&sqlitePath, "sqlite-path", "", "sqlite database file")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.BoolVar(&noColour, "no-color", false, "disable coloured output")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(showCmd)
}

// loadConfig reads the environment, applies flag overrides and installs the
// default logger
func loadConfig(cmd *cobra.Command, _ []string) error {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}

	loaded, err := config.Load(files...)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("store") {
		loaded.Store = config.Store(storeName)
	}
	if flags.Changed("redis-addr") {
		loaded.RedisAddr = redisAddr
	}
	if flags.Changed("sqlite-path") {
		loaded.SQLitePath = sqlitePath
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if noColour {
		loaded.Colour = false
	}

	if err := loaded.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: loaded.SlogLevel(),
	})))

	cfg = loaded
	return nil
}
