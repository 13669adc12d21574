package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DanRulev/conceptbot/internal/models"
	"github.com/jmoiron/sqlx"
)

const conceptColumns = `id, term, definition, category, example, created_at, updated_at`

type ConceptsR struct {
	db  QueryI
	now func() time.Time
}

func NewConceptsRepository(db QueryI) *ConceptsR {
	return &ConceptsR{db: db, now: time.Now}
}

// AddConcept reports false without an error when the term already exists.
func (c *ConceptsR) AddConcept(ctx context.Context, concept models.Concept) (bool, error) {
	query := c.db.Rebind(`INSERT INTO concepts (term, definition, category, example, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`)

	now := c.now().UTC()
	_, err := c.db.ExecContext(ctx, query,
		normalizeTerm(concept.Term), concept.Definition, categoryOrDefault(concept.Category), concept.Example, now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to add concept %q: %w", concept.Term, err)
	}

	return true, nil
}

// UpdateConcept reports false when no concept has the id or the new term is taken.
func (c *ConceptsR) UpdateConcept(ctx context.Context, concept models.Concept) (bool, error) {
	query := c.db.Rebind(`UPDATE concepts
		SET term = ?, definition = ?, category = ?, example = ?, updated_at = ?
		WHERE id = ?`)

	res, err := c.db.ExecContext(ctx, query,
		normalizeTerm(concept.Term), concept.Definition, categoryOrDefault(concept.Category), concept.Example,
		c.now().UTC(), concept.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to update concept %d: %w", concept.ID, err)
	}

	return affected(res)
}

func (c *ConceptsR) DeleteConcept(ctx context.Context, id int64) (bool, error) {
	res, err := c.db.ExecContext(ctx, c.db.Rebind(`DELETE FROM concepts WHERE id = ?`), id)
	if err != nil {
		return false, fmt.Errorf("failed to delete concept %d: %w", id, err)
	}

	return affected(res)
}

func (c *ConceptsR) ConceptByID(ctx context.Context, id int64) (models.Concept, error) {
	query := c.db.Rebind(`SELECT ` + conceptColumns + ` FROM concepts WHERE id = ?`)

	var concept models.Concept
	err := c.db.GetContext(ctx, &concept, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Concept{}, ErrNotFound
		}
		return models.Concept{}, fmt.Errorf("database error: %w", err)
	}

	return concept, nil
}

func (c *ConceptsR) AllConcepts(ctx context.Context) ([]models.Concept, error) {
	concepts := make([]models.Concept, 0)
	err := c.db.SelectContext(ctx, &concepts, `SELECT `+conceptColumns+` FROM concepts ORDER BY term`)
	if err != nil {
		return nil, fmt.Errorf("failed to list concepts: %w", err)
	}

	return concepts, nil
}

func (c *ConceptsR) ConceptsByCategory(ctx context.Context, category string) ([]models.Concept, error) {
	return c.ConceptsByCategories(ctx, []string{category})
}

func (c *ConceptsR) ConceptsByCategories(ctx context.Context, categories []string) ([]models.Concept, error) {
	concepts := make([]models.Concept, 0)
	if len(categories) == 0 {
		return concepts, nil
	}

	query, args, err := sqlx.In(`SELECT `+conceptColumns+` FROM concepts WHERE category IN (?) ORDER BY term`, categories)
	if err != nil {
		return nil, fmt.Errorf("failed to build category query: %w", err)
	}

	err = c.db.SelectContext(ctx, &concepts, c.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list concepts by categories: %w", err)
	}

	return concepts, nil
}

func (c *ConceptsR) Categories(ctx context.Context) ([]models.CategoryCount, error) {
	query := `SELECT category, COUNT(*) AS count
		FROM concepts
		GROUP BY category
		ORDER BY category`

	categories := make([]models.CategoryCount, 0)
	if err := c.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// CountConcepts counts every concept when category is empty.
func (c *ConceptsR) CountConcepts(ctx context.Context, category string) (int, error) {
	var (
		total int
		err   error
	)

	if category == "" {
		err = c.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM concepts`)
	} else {
		err = c.db.GetContext(ctx, &total, c.db.Rebind(`SELECT COUNT(*) FROM concepts WHERE category = ?`), category)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count concepts: %w", err)
	}

	return total, nil
}

// SearchConcepts matches the substring against term or definition, ignoring case.
func (c *ConceptsR) SearchConcepts(ctx context.Context, text string) ([]models.Concept, error) {
	query := c.db.Rebind(`SELECT ` + conceptColumns + ` FROM concepts
		WHERE LOWER(term) LIKE ? ESCAPE '\' OR LOWER(definition) LIKE ? ESCAPE '\'
		ORDER BY term`)

	pattern := "%" + escapeLike(strings.ToLower(text)) + "%"

	concepts := make([]models.Concept, 0)
	if err := c.db.SelectContext(ctx, &concepts, query, pattern, pattern); err != nil {
		return nil, fmt.Errorf("failed to search concepts: %w", err)
	}

	return concepts, nil
}

// RandomConcept picks one concept, optionally restricted to categories and skipping excludeIDs.
func (c *ConceptsR) RandomConcept(ctx context.Context, categories []string, excludeIDs []int64) (models.Concept, error) {
	var (
		conditions []string
		args       []interface{}
	)

	if len(categories) > 0 {
		conditions = append(conditions, "category IN (?)")
		args = append(args, categories)
	}
	if len(excludeIDs) > 0 {
		conditions = append(conditions, "id NOT IN (?)")
		args = append(args, excludeIDs)
	}

	query := `SELECT ` + conceptColumns + ` FROM concepts`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY RANDOM() LIMIT 1"

	if len(args) > 0 {
		var err error
		query, args, err = sqlx.In(query, args...)
		if err != nil {
			return models.Concept{}, fmt.Errorf("failed to build random query: %w", err)
		}
	}

	var concept models.Concept
	err := c.db.GetContext(ctx, &concept, c.db.Rebind(query), args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Concept{}, ErrNotFound
		}
		return models.Concept{}, fmt.Errorf("database error: %w", err)
	}

	return concept, nil
}

func normalizeTerm(term string) string {
	return strings.ToUpper(strings.TrimSpace(term))
}

func categoryOrDefault(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return models.DefaultCategory
	}
	return category
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
