package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/delver-sim/internal/entities"
	"github.com/KirkDiggler/delver-sim/internal/errors"
	"github.com/KirkDiggler/delver-sim/internal/orchestrators/game"
)

var showGame string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the latest stored state of a game",
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&showGame, "game", "", "game id to show")
}

func runShow(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if showGame == "" {
		return errors.InvalidArgument("--game is required")
	}

	a, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	svc, err := game.Load(ctx, a.gameConfig(0), entities.NewGameID(showGame))
	if err != nil {
		return err
	}

	snap, err := svc.Snapshot(ctx, &game.SnapshotInput{})
	if err != nil {
		return err
	}
	latest, err := svc.LatestEvents(ctx, &game.LatestEventsInput{})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "game %s after turn %d\n", snap.Snapshot.GameID, snap.Snapshot.Turn)
	if latest.Text != "" {
		fmt.Fprintf(out, "\n%s\n", latest.Text)
	}
	return printStandings(ctx, svc, out)
}
