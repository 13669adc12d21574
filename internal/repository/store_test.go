package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DanRulev/conceptbot/internal/models"
	"github.com/DanRulev/conceptbot/internal/storage/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestRepository(t *testing.T) Repository {
	t.Helper()

	sqlDB, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(context.Background(), sqlDB))

	return NewRepository(sqlDB)
}

func seedConcepts(t *testing.T, repo Repository, concepts ...models.Concept) {
	t.Helper()

	for _, c := range concepts {
		ok, err := repo.AddConcept(context.Background(), c)
		require.NoError(t, err)
		require.True(t, ok, "add %s", c.Term)
	}
}

func TestConceptsR_SQLite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openTestRepository(t)

	seedConcepts(t, repo,
		models.Concept{Term: "html", Definition: "Markup language for pages", Category: "Frontend"},
		models.Concept{Term: "SQL", Definition: "Query language for 100% of databases", Category: "Backend"},
		models.Concept{Term: "Git", Definition: "Version control", Category: "Tools", Example: "git commit"},
		models.Concept{Term: "NumPy", Definition: "Arrays for Python", Category: "Python Libraries"},
		models.Concept{Term: "URL", Definition: "Resource locator"},
	)

	t.Run("duplicate term is reported as false", func(t *testing.T) {
		ok, err := repo.AddConcept(ctx, models.Concept{Term: "HTML", Definition: "again"})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("all concepts ordered by upper-cased term", func(t *testing.T) {
		all, err := repo.AllConcepts(ctx)
		require.NoError(t, err)
		require.Len(t, all, 5)

		terms := make([]string, 0, len(all))
		for _, c := range all {
			terms = append(terms, c.Term)
		}
		assert.Equal(t, []string{"GIT", "HTML", "NUMPY", "SQL", "URL"}, terms)
		assert.False(t, all[0].CreatedAt.IsZero())
	})

	t.Run("default category", func(t *testing.T) {
		n, err := repo.CountConcepts(ctx, models.DefaultCategory)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		total, err := repo.CountConcepts(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, 5, total)
	})

	t.Run("by categories", func(t *testing.T) {
		got, err := repo.ConceptsByCategories(ctx, []string{"Frontend", "Backend", "General", "Tools"})
		require.NoError(t, err)
		assert.Len(t, got, 4)

		none, err := repo.ConceptsByCategories(ctx, []string{"Nope"})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("categories with counts", func(t *testing.T) {
		cats, err := repo.Categories(ctx)
		require.NoError(t, err)
		require.Len(t, cats, 5)
		assert.Equal(t, models.CategoryCount{Name: "Backend", Count: 1}, cats[0])
	})

	t.Run("search ignores case and escapes wildcards", func(t *testing.T) {
		got, err := repo.SearchConcepts(ctx, "markup")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "HTML", got[0].Term)

		got, err = repo.SearchConcepts(ctx, "Git")
		require.NoError(t, err)
		require.Len(t, got, 1)

		got, err = repo.SearchConcepts(ctx, "100%")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "SQL", got[0].Term)

		got, err = repo.SearchConcepts(ctx, "_")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("random respects filters", func(t *testing.T) {
		all, err := repo.AllConcepts(ctx)
		require.NoError(t, err)

		var exclude []int64
		for _, c := range all {
			if c.Term != "NUMPY" {
				exclude = append(exclude, c.ID)
			}
		}

		got, err := repo.RandomConcept(ctx, nil, exclude)
		require.NoError(t, err)
		assert.Equal(t, "NUMPY", got.Term)

		_, err = repo.RandomConcept(ctx, []string{"Frontend"}, exclude)
		require.ErrorIs(t, err, ErrNotFound)

		got, err = repo.RandomConcept(ctx, []string{"Tools"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "GIT", got.Term)
	})
}

func TestConceptsR_UpdateDelete_SQLite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openTestRepository(t)

	seedConcepts(t, repo,
		models.Concept{Term: "CSS", Definition: "Styles", Category: "Frontend"},
		models.Concept{Term: "DOM", Definition: "Tree", Category: "Frontend"},
	)

	all, err := repo.AllConcepts(ctx)
	require.NoError(t, err)
	css := all[0]

	ok, err := repo.UpdateConcept(ctx, models.Concept{ID: css.ID, Term: "css3", Definition: "Cascading styles", Category: "", Example: "color: red;"})
	require.NoError(t, err)
	assert.True(t, ok)

	updated, err := repo.ConceptByID(ctx, css.ID)
	require.NoError(t, err)
	assert.Equal(t, "CSS3", updated.Term)
	assert.Equal(t, models.DefaultCategory, updated.Category)
	assert.Equal(t, "color: red;", updated.Example)

	ok, err = repo.UpdateConcept(ctx, models.Concept{ID: css.ID, Term: "dom", Definition: "clash"})
	require.NoError(t, err)
	assert.False(t, ok, "renaming onto an existing term must fail softly")

	ok, err = repo.UpdateConcept(ctx, models.Concept{ID: 999, Term: "X", Definition: "missing"})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.DeleteConcept(ctx, css.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.ConceptByID(ctx, css.ID)
	require.ErrorIs(t, err, ErrNotFound)

	ok, err = repo.DeleteConcept(ctx, css.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProgressAndQuiz_SQLite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openTestRepository(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	_, err := repo.Progress(ctx, 1, 10)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.SaveProgress(ctx, models.Progress{UserID: 1, ConceptID: 10, TimesShown: 1, TimesCorrect: 1, IsLearned: true, LastReviewed: now}))
	require.NoError(t, repo.SaveProgress(ctx, models.Progress{UserID: 1, ConceptID: 10, TimesShown: 2, TimesCorrect: 1, IsLearned: false, LastReviewed: now.Add(time.Hour)}))
	require.NoError(t, repo.SaveProgress(ctx, models.Progress{UserID: 1, ConceptID: 11, TimesShown: 4, TimesCorrect: 3, IsLearned: true, LastReviewed: now}))
	require.NoError(t, repo.SaveProgress(ctx, models.Progress{UserID: 2, ConceptID: 10, TimesShown: 1, LastReviewed: now}))

	got, err := repo.Progress(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TimesShown)
	assert.False(t, got.IsLearned)
	assert.True(t, got.LastReviewed.Equal(now.Add(time.Hour)))

	stats, err := repo.UserStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.UserStats{TotalShown: 2, TotalCorrect: 4, LearnedCount: 1}, stats)

	empty, err := repo.UserStats(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, models.UserStats{}, empty)

	require.NoError(t, repo.AddQuizResult(ctx, 1, 2, 5, now))
	require.NoError(t, repo.AddQuizResult(ctx, 1, 5, 5, now.Add(time.Minute)))
	require.NoError(t, repo.AddQuizResult(ctx, 2, 1, 4, now.Add(2*time.Minute)))

	history, err := repo.QuizHistory(ctx, 1, 5)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 5, history[0].Score)
	assert.Equal(t, 2, history[1].Score)
	assert.Equal(t, 40, history[1].Percentage())
}
