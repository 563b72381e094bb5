package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"meditrack/cmd/bootstrap"
	"meditrack/config"
	"meditrack/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		logrus.Fatalf("Failed to run meditrack: %v", err)
	}
}

func rootCmd() *cobra.Command {
	var opts bootstrap.Options

	cmd := &cobra.Command{
		Use:           "meditrack",
		Short:         "Interactive clinic management console",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return app.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&opts.LoadData, "loadData", false, "load patients, doctors and appointments from storage before starting")
	cmd.Flags().StringVar(&opts.DataDir, "data-dir", "", "directory holding the CSV files (default from DATA_DIR)")
	cmd.Flags().StringVar(&opts.Storage, "storage", "", "storage driver: csv or postgres (default from STORAGE_DRIVER)")

	cmd.AddCommand(migrateCmd())
	return cmd
}

// migrateCmd creates the archive tables without starting the console
func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the postgres archive tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			db, err := database.NewPostgresConnection(cfg.DB)
			if err != nil {
				return err
			}
			defer func() {
				if sqlDB, err := db.DB(); err == nil {
					sqlDB.Close()
				}
			}()

			if err := database.Migrate(db); err != nil {
				return err
			}
			logrus.Info("Migration complete")
			return nil
		},
	}
}
