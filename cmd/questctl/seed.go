package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/questline-backend/internal/data/seed"
)

var (
	seedFile   string
	seedDryRun bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert the quest catalogs from a YAML file",
	Long: `Loads distance and image quest definitions from a YAML file and upserts
them by quest_id. Existing user progress is left untouched.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Path to the catalog YAML file")
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "Validate the file without writing")
	_ = seedCmd.MarkFlagRequired("file")
}

func runSeed(cmd *cobra.Command, args []string) error {
	catalog, err := seed.LoadFile(seedFile)
	if err != nil {
		return err
	}
	if seedDryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "catalog ok: %d distance quests, %d image quests\n",
			len(catalog.DistanceQuests), len(catalog.ImageQuests))
		return nil
	}

	store, log, err := openStore()
	if err != nil {
		return err
	}
	defer log.Sync()
	defer store.Close()

	res, err := seed.Apply(cmd.Context(), store.DB(), log, catalog)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "upserted %d distance quests, %d image quests\n", res.Distance, res.Image)
	return nil
}
