// Command migrate applies or rolls back the contacts database schema.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"contacts/config"
	"contacts/internal/errors"
	logs "contacts/internal/infra/log"
	"contacts/internal/infra/persistence/migrations"
	"contacts/internal/util"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/spf13/cobra"
)

var downSteps int

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "Manage the contacts database schema",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending migration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withMigrator(cmd.Context(), func(m *migrations.Migrator, logger *slog.Logger) error {
			if err := m.Up(); err != nil {
				return err
			}
			logger.Info("Migrations applied")

			return nil
		})
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back applied migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withMigrator(cmd.Context(), func(m *migrations.Migrator, logger *slog.Logger) error {
			if err := m.Down(downSteps); err != nil {
				return err
			}
			logger.Info("Migrations rolled back", slog.Int("steps", downSteps))

			return nil
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the applied schema version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withMigrator(cmd.Context(), func(m *migrations.Migrator, _ *slog.Logger) error {
			version, dirty, ok, err := m.Version()
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")

				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)

			return nil
		})
	},
}

func init() {
	downCmd.Flags().IntVarP(&downSteps, "steps", "n", 1, "number of migrations to roll back")
	rootCmd.AddCommand(upCmd, downCmd, versionCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func withMigrator(ctx context.Context, fn func(*migrations.Migrator, *slog.Logger) error) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to connect to PostgreSQL")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	migrator, err := migrations.New(ctx, sqlDB, logger)
	if err != nil {
		return err
	}
	defer migrator.Close()

	start := time.Now()
	err = fn(migrator, logger)
	logger.Debug("Migration command finished", slog.String("elapsed", util.FormatDuration(time.Since(start))))

	return err
}
