package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/joestump/scribo/internal/db"
)

func newMigrateCmd() *cobra.Command {
	var status bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if status {
				return db.Status(database, cfg.DB.Driver)
			}
			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			log.Info().Msg("migrations complete")
			return nil
		},
	}
	cmd.Flags().BoolVar(&status, "status", false, "show migration status instead of migrating")
	return cmd
}
