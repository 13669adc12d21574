package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/DanRulev/conceptbot/internal/models"
	"github.com/DanRulev/conceptbot/pkg/validator"
	"go.uber.org/zap"
)

const (
	MinSearchLength = 2
	SearchLimit     = 5
	ListLimit       = 20
)

var (
	ErrQueryTooShort  = errors.New("search query is too short")
	ErrInvalidConcept = errors.New("invalid concept")
)

type SearchResult struct {
	Query    string
	Concepts []models.Concept
	Total    int
}

type ConceptList struct {
	Concepts []models.Concept
	Total    int
}

type ConceptS struct {
	repo     ConceptRI
	progress *ProgressS
	log      *zap.Logger
}

func NewConceptService(repo ConceptRI, progress *ProgressS, log *zap.Logger) *ConceptS {
	return &ConceptS{
		repo:     repo,
		progress: progress,
		log:      log,
	}
}

// RandomConcept shows a random concept of a group ("all", "web" or "python")
// and counts it as a correct exposure for the user.
func (c *ConceptS) RandomConcept(ctx context.Context, userID int64, group string) (models.Concept, error) {
	var categories []string
	if group != "" && group != GroupAll {
		var ok bool
		categories, ok = GroupCategories(group)
		if !ok {
			return models.Concept{}, fmt.Errorf("%w: %q", ErrUnknownGroup, group)
		}
	}

	return c.browse(ctx, userID, categories)
}

func (c *ConceptS) RandomFromCategory(ctx context.Context, userID int64, category string) (models.Concept, error) {
	return c.browse(ctx, userID, []string{category})
}

func (c *ConceptS) browse(ctx context.Context, userID int64, categories []string) (models.Concept, error) {
	concept, err := c.repo.RandomConcept(ctx, categories, nil)
	if err != nil {
		return models.Concept{}, err
	}

	if _, err := c.progress.RecordExposure(ctx, userID, concept.ID, true); err != nil {
		return models.Concept{}, err
	}

	return concept, nil
}

func (c *ConceptS) Search(ctx context.Context, query string) (SearchResult, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinSearchLength {
		return SearchResult{Query: query}, ErrQueryTooShort
	}

	found, err := c.repo.SearchConcepts(ctx, query)
	if err != nil {
		c.log.Warn("search failed", zap.String("query", query), zap.Error(err))
		return SearchResult{Query: query}, err
	}

	return SearchResult{
		Query:    query,
		Concepts: found[:min(SearchLimit, len(found))],
		Total:    len(found),
	}, nil
}

func (c *ConceptS) Categories(ctx context.Context) ([]models.CategoryCount, error) {
	return c.repo.Categories(ctx)
}

// Overview counts the catalog as a whole and per category group.
func (c *ConceptS) Overview(ctx context.Context) (models.CatalogOverview, error) {
	categories, err := c.repo.Categories(ctx)
	if err != nil {
		return models.CatalogOverview{}, err
	}

	web := toSet(categoryGroups[GroupWeb])
	python := toSet(categoryGroups[GroupPython])

	var overview models.CatalogOverview
	for _, cat := range categories {
		overview.Total += cat.Count
		if web[cat.Name] {
			overview.Web += cat.Count
		}
		if python[cat.Name] {
			overview.Python += cat.Count
		}
	}

	return overview, nil
}

func (c *ConceptS) CountConcepts(ctx context.Context) (int, error) {
	return c.repo.CountConcepts(ctx, "")
}

func (c *ConceptS) ConceptByID(ctx context.Context, id int64) (models.Concept, error) {
	return c.repo.ConceptByID(ctx, id)
}

// AddConcept reports false when the term is already in the catalog.
func (c *ConceptS) AddConcept(ctx context.Context, concept models.Concept) (bool, error) {
	if err := validateConcept(&concept); err != nil {
		return false, err
	}

	ok, err := c.repo.AddConcept(ctx, concept)
	if err != nil {
		c.log.Error("failed to add concept", zap.String("term", concept.Term), zap.Error(err))
		return false, err
	}
	if ok {
		c.log.Info("concept added", zap.String("term", concept.Term), zap.String("category", concept.Category))
	}
	return ok, nil
}

// UpdateConcept reports false when the id is unknown or the term is taken.
func (c *ConceptS) UpdateConcept(ctx context.Context, concept models.Concept) (bool, error) {
	if err := validateConcept(&concept); err != nil {
		return false, err
	}

	ok, err := c.repo.UpdateConcept(ctx, concept)
	if err != nil {
		c.log.Error("failed to update concept", zap.Int64("id", concept.ID), zap.Error(err))
		return false, err
	}
	return ok, nil
}

func (c *ConceptS) DeleteConcept(ctx context.Context, id int64) (bool, error) {
	ok, err := c.repo.DeleteConcept(ctx, id)
	if err != nil {
		c.log.Error("failed to delete concept", zap.Int64("id", id), zap.Error(err))
		return false, err
	}
	if ok {
		c.log.Info("concept deleted", zap.Int64("id", id))
	}
	return ok, nil
}

// ListConcepts returns the first ListLimit concepts by term and the catalog size.
func (c *ConceptS) ListConcepts(ctx context.Context) (ConceptList, error) {
	all, err := c.repo.AllConcepts(ctx)
	if err != nil {
		return ConceptList{}, err
	}

	return ConceptList{
		Concepts: all[:min(ListLimit, len(all))],
		Total:    len(all),
	}, nil
}

func validateConcept(concept *models.Concept) error {
	concept.Term = strings.TrimSpace(concept.Term)
	concept.Definition = strings.TrimSpace(concept.Definition)
	concept.Category = strings.TrimSpace(concept.Category)
	concept.Example = strings.TrimSpace(concept.Example)

	if err := validator.ValidateStruct(concept); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConcept, err)
	}
	return nil
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
