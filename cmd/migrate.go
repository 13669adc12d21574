package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, conn, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()
		defer conn.Close()

		logger.Info("schema is up to date", zap.String("driver", cfg.DB.Driver))
		return nil
	},
}
