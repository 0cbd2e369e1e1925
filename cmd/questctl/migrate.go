package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/questline-backend/internal/data/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update tables and seed user levels",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	store, log, err := openStore()
	if err != nil {
		return err
	}
	defer log.Sync()
	defer store.Close()

	if err := db.Migrate(store.DB().WithContext(cmd.Context())); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Info("migration complete")
	return nil
}
