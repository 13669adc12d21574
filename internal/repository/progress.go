package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DanRulev/conceptbot/internal/models"
)

type ProgressR struct {
	db QueryI
}

func NewProgressRepository(db QueryI) *ProgressR {
	return &ProgressR{db: db}
}

func (p *ProgressR) Progress(ctx context.Context, userID, conceptID int64) (models.Progress, error) {
	query := p.db.Rebind(`SELECT user_id, concept_id, is_learned, times_shown, times_correct, last_reviewed
		FROM user_progress
		WHERE user_id = ? AND concept_id = ?`)

	var progress models.Progress
	err := p.db.GetContext(ctx, &progress, query, userID, conceptID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Progress{}, ErrNotFound
		}
		return models.Progress{}, fmt.Errorf("database error: %w", err)
	}

	return progress, nil
}

func (p *ProgressR) SaveProgress(ctx context.Context, progress models.Progress) error {
	query := p.db.Rebind(`INSERT INTO user_progress (user_id, concept_id, is_learned, times_shown, times_correct, last_reviewed)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, concept_id)
		DO UPDATE SET
			is_learned = EXCLUDED.is_learned,
			times_shown = EXCLUDED.times_shown,
			times_correct = EXCLUDED.times_correct,
			last_reviewed = EXCLUDED.last_reviewed`)

	_, err := p.db.ExecContext(ctx, query,
		progress.UserID, progress.ConceptID, progress.IsLearned, progress.TimesShown, progress.TimesCorrect,
		progress.LastReviewed.UTC())
	if err != nil {
		return fmt.Errorf("failed to save progress for user %d: %w", progress.UserID, err)
	}

	return nil
}

func (p *ProgressR) UserStats(ctx context.Context, userID int64) (models.UserStats, error) {
	query := p.db.Rebind(`
		SELECT
			COUNT(*) AS total_shown,
			COALESCE(SUM(times_correct), 0) AS total_correct,
			COALESCE(SUM(CASE WHEN is_learned THEN 1 ELSE 0 END), 0) AS learned_count
		FROM user_progress
		WHERE user_id = ?
	`)

	var stats models.UserStats
	err := p.db.GetContext(ctx, &stats, query, userID)
	if err != nil {
		return models.UserStats{}, fmt.Errorf("failed to get stats for user %d: %w", userID, err)
	}

	return stats, nil
}
