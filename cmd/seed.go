package main

import (
	"fmt"
	"os"

	"github.com/DanRulev/conceptbot/internal/models"
	"github.com/DanRulev/conceptbot/internal/repository"
	"github.com/DanRulev/conceptbot/internal/seed"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load concepts into the catalog, skipping terms that already exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")

		concepts, err := readCatalog(path)
		if err != nil {
			return err
		}

		_, logger, conn, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()
		defer conn.Close()

		added, err := seed.Load(cmd.Context(), repository.NewRepository(conn), concepts, logger)
		if err != nil {
			return fmt.Errorf("failed seed catalog: %w", err)
		}

		cmd.Printf("added %d of %d concepts\n", added, len(concepts))
		return nil
	},
}

func init() {
	seedCmd.Flags().StringP("file", "f", "", "YAML catalog to load instead of the built-in one")
}

func readCatalog(path string) ([]models.Concept, error) {
	if path == "" {
		return seed.Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed open catalog: %w", err)
	}
	defer f.Close()

	return seed.Parse(f)
}
