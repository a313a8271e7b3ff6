package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/delver-sim/internal/errors"
	"github.com/KirkDiggler/delver-sim/internal/fixtures"
	"github.com/KirkDiggler/delver-sim/internal/pkg/rng"
)

// seedConcurrency bounds parallel store writes while seeding
const seedConcurrency = 4

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Store the characters and teams of a league file",
	Long: `Seed reads a YAML league file and saves every character and team in it.
Stats missing from a character are rolled; set DELVER_SEED to make the rolls
repeatable.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "league.yaml", "league file to load")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	loaderCfg := &fixtures.Config{}
	if cfg.Seed != 0 {
		loaderCfg.Roller = rng.NewRoller(rng.New(cfg.Seed))
	}
	league, err := fixtures.NewLoader(loaderCfg).LoadFile(seedFile)
	if err != nil {
		return err
	}

	a, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(seedConcurrency)
	for _, char := range league.Characters {
		g.Go(func() error {
			if _, err := a.characters.Save(gctx, char); err != nil {
				return errors.Wrapf(err, "failed to save character %s", char.ID)
			}
			return nil
		})
	}
	for _, team := range league.Teams {
		g.Go(func() error {
			if _, err := a.teams.Save(gctx, team); err != nil {
				return errors.Wrapf(err, "failed to save team %s", team.ID)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	slog.InfoContext(ctx, "League seeded",
		"file", seedFile,
		"characters", len(league.Characters),
		"teams", len(league.Teams),
	)
	cmd.Printf("seeded %d characters and %d teams\n", len(league.Characters), len(league.Teams))
	return nil
}
