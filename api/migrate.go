package main

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/inventario-api/internal/db"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all up migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigration(cmd, "up", db.MigrateUp)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back all migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigration(cmd, "down", db.MigrateDown)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}

func runMigration(cmd *cobra.Command, direction string, run func(*sql.DB) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required to run migrations")
	}

	database, err := db.Connect(cmd.Context(), cfg.DatabaseURL, cfg.DBName)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := run(database); err != nil {
		return fmt.Errorf("migrate %s: %w", direction, err)
	}
	log.Info().Str("direction", direction).Msg("migrations finished")
	return nil
}
