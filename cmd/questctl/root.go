package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yungbote/questline-backend/internal/app"
	"github.com/yungbote/questline-backend/internal/data/db"
	"github.com/yungbote/questline-backend/internal/platform/logger"
)

var rootCmd = &cobra.Command{
	Use:   "questctl",
	Short: "Operator tooling for the questline backend",
	Long: `questctl manages the questline database out of band: schema migration,
quest catalog seeding and development tokens. Connection settings are read
from the same environment variables as the server.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(tokenCmd)
}

// openStore loads config from the environment and connects to the database.
func openStore() (*db.Service, *logger.Logger, error) {
	cfg, err := app.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	store, err := db.Open(cfg.DB, log)
	if err != nil {
		log.Sync()
		return nil, nil, err
	}
	return store, log, nil
}
