package main

import (
	"fmt"
	"os"

	"github.com/DanRulev/conceptbot/internal/config"
	"github.com/DanRulev/conceptbot/internal/storage/db"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:          "conceptbot",
	Short:        "Telegram bot for learning web and Python concepts",
	Long:         "ConceptBot serves flashcards, search and multiple-choice quizzes over a catalog of technical concepts.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if name, _ := cmd.Flags().GetString("config"); name != "" {
			return os.Setenv("CONFIG_NAME", name)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config name under configs/ (overrides CONFIG_NAME env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

// bootstrap loads config, builds the logger and opens a migrated database.
func bootstrap(cmd *cobra.Command) (*config.Config, *zap.Logger, *sqlx.DB, error) {
	cfg, err := config.Init()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed load config: %w", err)
	}

	logger := setupLogger(cfg.Env)

	conn, err := db.InitDB(cfg.DB)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed init db: %w", err)
	}

	if err := db.Migrate(cmd.Context(), conn); err != nil {
		conn.Close()
		return nil, nil, nil, fmt.Errorf("failed migrate db: %w", err)
	}

	return cfg, logger, conn, nil
}
