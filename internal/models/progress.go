package models

import "time"

type Progress struct {
	UserID       int64     `db:"user_id"`
	ConceptID    int64     `db:"concept_id"`
	IsLearned    bool      `db:"is_learned"`
	TimesShown   int       `db:"times_shown"`
	TimesCorrect int       `db:"times_correct"`
	LastReviewed time.Time `db:"last_reviewed"`
}

type UserStats struct {
	TotalShown   int `db:"total_shown"`
	TotalCorrect int `db:"total_correct"`
	LearnedCount int `db:"learned_count"`
}
