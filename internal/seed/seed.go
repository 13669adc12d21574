// Package seed loads the starter catalog of concepts.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"

	"github.com/DanRulev/conceptbot/internal/models"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed concepts.yaml
var defaultCatalog []byte

type Store interface {
	AddConcept(ctx context.Context, concept models.Concept) (bool, error)
	CountConcepts(ctx context.Context, category string) (int, error)
}

type entry struct {
	Term       string `yaml:"term"`
	Definition string `yaml:"definition"`
	Category   string `yaml:"category"`
	Example    string `yaml:"example"`
}

type file struct {
	Concepts []entry `yaml:"concepts"`
}

// Default returns the embedded starter catalog.
func Default() ([]models.Concept, error) {
	return Parse(bytes.NewReader(defaultCatalog))
}

func Parse(r io.Reader) ([]models.Concept, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	concepts := make([]models.Concept, 0, len(f.Concepts))
	for i, e := range f.Concepts {
		if e.Term == "" || e.Definition == "" {
			return nil, fmt.Errorf("catalog entry %d: term and definition are required", i+1)
		}
		concepts = append(concepts, models.Concept{
			Term:       e.Term,
			Definition: e.Definition,
			Category:   e.Category,
			Example:    e.Example,
		})
	}
	return concepts, nil
}

// Load adds every concept to the store, skipping terms that already exist.
func Load(ctx context.Context, store Store, concepts []models.Concept, log *zap.Logger) (int, error) {
	added := 0
	for _, c := range concepts {
		ok, err := store.AddConcept(ctx, c)
		if err != nil {
			return added, err
		}
		if !ok {
			log.Debug("concept already exists", zap.String("term", c.Term))
			continue
		}
		added++
	}

	log.Info("catalog seeded", zap.Int("added", added), zap.Int("total", len(concepts)))
	return added, nil
}

// IfEmpty loads the embedded catalog only when the store has no concepts.
func IfEmpty(ctx context.Context, store Store, log *zap.Logger) (int, error) {
	count, err := store.CountConcepts(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("failed to count concepts: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	concepts, err := Default()
	if err != nil {
		return 0, err
	}
	return Load(ctx, store, concepts, log)
}
