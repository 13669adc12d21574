package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/DanRulev/conceptbot/internal/models"
)

type QuizR struct {
	db QueryI
}

func NewQuizRepository(db QueryI) *QuizR {
	return &QuizR{
		db: db,
	}
}

func (q *QuizR) AddQuizResult(ctx context.Context, userID int64, score, total int, completedAt time.Time) error {
	query := q.db.Rebind(`
        INSERT INTO quiz_results (user_id, score, total_questions, completed_at)
        VALUES (?, ?, ?, ?)
    `)

	_, err := q.db.ExecContext(ctx, query, userID, score, total, completedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to save quiz result for user %d: %w", userID, err)
	}

	return nil
}

func (q *QuizR) QuizHistory(ctx context.Context, userID int64, limit int) ([]models.QuizResult, error) {
	query := q.db.Rebind(`SELECT id, user_id, score, total_questions, completed_at
		FROM quiz_results
		WHERE user_id = ?
		ORDER BY completed_at DESC, id DESC
		LIMIT ?`)

	results := make([]models.QuizResult, 0)
	if limit <= 0 {
		return results, nil
	}

	err := q.db.SelectContext(ctx, &results, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz history for user %d: %w", userID, err)
	}

	return results, nil
}
