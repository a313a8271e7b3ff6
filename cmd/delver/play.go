package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/delver-sim/internal/entities"
	"github.com/KirkDiggler/delver-sim/internal/errors"
	"github.com/KirkDiggler/delver-sim/internal/orchestrators/game"
	"github.com/KirkDiggler/delver-sim/internal/pkg/clock"
)

// saveRetries is how many times a failed snapshot save is retried
const saveRetries = 3

var (
	playTeams []string
	playTurns int
	playSeed  uint64
	playGame  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run turns of a game",
	Long: `Play starts a game with the given teams, or continues a stored game, and
runs the requested number of turns. Every turn's event tree is printed.`,
	Example: `  delver play --team reds --team blues --turns 5 --seed 42
  delver play --game game_3f2c... --turns 2`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringArrayVar(&playTeams, "team", nil, "team to add, in joining order (repeatable)")
	playCmd.Flags().IntVar(&playTurns, "turns", 10, "number of turns to run")
	playCmd.Flags().Uint64Var(&playSeed, "seed", 0, "random seed for a new game (defaults to DELVER_SEED, then the clock)")
	playCmd.Flags().StringVar(&playGame, "game", "", "stored game to continue instead of starting a new one")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if playTurns < 0 {
		return errors.InvalidArgument("turns must not be negative")
	}
	if playGame != "" && len(playTeams) > 0 {
		return errors.InvalidArgument("--team cannot be combined with --game")
	}
	if playGame == "" && len(playTeams) < 2 {
		return errors.InvalidArgument("a new game needs at least two --team flags")
	}

	a, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	var svc game.Service
	if playGame != "" {
		svc, err = game.Load(ctx, a.gameConfig(0), entities.NewGameID(playGame))
		if err != nil {
			return err
		}
	} else {
		seed := playSeed
		if seed == 0 {
			seed = cfg.Seed
		}
		if seed == 0 {
			seed = uint64(clock.New().Now().UnixNano())
		}
		svc, err = game.New(a.gameConfig(seed))
		if err != nil {
			return err
		}
		for _, raw := range playTeams {
			if _, err := svc.AddTeam(ctx, &game.AddTeamInput{TeamID: entities.NewID[entities.Team](raw)}); err != nil {
				return err
			}
		}
	}

	snap, err := svc.Snapshot(ctx, &game.SnapshotInput{})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "game %s (seed %d)\n", snap.Snapshot.GameID, snap.Snapshot.Seed)

	if err := runTurns(ctx, svc, playTurns, out, newSaveBackOff); err != nil {
		return err
	}
	return printStandings(ctx, svc, out)
}

// runTurns plays turns and prints each turn's events. A failed snapshot save
// is retried before the next turn starts; play never continues past a game
// state that could not be stored.
func runTurns(ctx context.Context, svc game.Service, turns int, out io.Writer, newBackOff func() backoff.BackOff) error {
	for i := 1; i <= turns; i++ {
		if _, err := svc.Turn(ctx, &game.TurnInput{}); err != nil {
			if !game.IsSaveError(err) {
				return err
			}
			if err := saveWithRetry(ctx, svc, newBackOff()); err != nil {
				return err
			}
		}

		latest, err := svc.LatestEvents(ctx, &game.LatestEventsInput{})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nTurn %d\n%s\n", i, latest.Text)
	}
	return nil
}

func newSaveBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxElapsedTime = 10 * time.Second
	return backoff.WithMaxRetries(b, saveRetries)
}

func saveWithRetry(ctx context.Context, svc game.Service, b backoff.BackOff) error {
	op := func() error {
		_, err := svc.Save(ctx, &game.SaveInput{})
		if err != nil && !game.IsSaveError(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		slog.WarnContext(ctx, "Retrying game save", "error", err, "wait", wait)
	}
	if err := backoff.RetryNotify(op, backoff.WithContext(b, ctx), notify); err != nil {
		return errors.Wrap(err, "game could not be saved, stopping play")
	}
	return nil
}

// printStandings shows the teams in pairs: first and second, third and fourth
func printStandings(ctx context.Context, svc game.Service, out io.Writer) error {
	snap, err := svc.Snapshot(ctx, &game.SnapshotInput{})
	if err != nil {
		return err
	}
	teams := snap.Snapshot.Teams
	for i := 0; i+1 < len(teams); i += 2 {
		shown, err := svc.Display(ctx, &game.DisplayInput{TeamA: teams[i].ID, TeamB: teams[i+1].ID})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s\n", shown.Text)
	}
	if len(teams)%2 == 1 && len(teams) > 1 {
		last := len(teams) - 1
		shown, err := svc.Display(ctx, &game.DisplayInput{TeamA: teams[last-1].ID, TeamB: teams[last].ID})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s\n", shown.Text)
	}
	if snap.Snapshot.Aborted {
		fmt.Fprintf(out, "\ngame aborted: %s\n", snap.Snapshot.AbortReason)
	}
	return nil
}
