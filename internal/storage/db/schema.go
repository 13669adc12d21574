package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Progress rows reference concepts without a foreign key: deleting a concept
// leaves its progress behind and readers must tolerate that.
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS concepts (
		id BIGSERIAL PRIMARY KEY,
		term TEXT NOT NULL UNIQUE,
		definition TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT 'General',
		example TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS concepts_category_idx ON concepts (category)`,
	`CREATE TABLE IF NOT EXISTS user_progress (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL,
		concept_id BIGINT NOT NULL,
		is_learned BOOLEAN NOT NULL DEFAULT FALSE,
		times_shown INTEGER NOT NULL DEFAULT 0,
		times_correct INTEGER NOT NULL DEFAULT 0,
		last_reviewed TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, concept_id)
	)`,
	`CREATE TABLE IF NOT EXISTS quiz_results (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL,
		score INTEGER NOT NULL,
		total_questions INTEGER NOT NULL,
		completed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS quiz_results_user_idx ON quiz_results (user_id, completed_at DESC)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS concepts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		term TEXT NOT NULL UNIQUE,
		definition TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT 'General',
		example TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS concepts_category_idx ON concepts (category)`,
	`CREATE TABLE IF NOT EXISTS user_progress (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		concept_id INTEGER NOT NULL,
		is_learned BOOLEAN NOT NULL DEFAULT FALSE,
		times_shown INTEGER NOT NULL DEFAULT 0,
		times_correct INTEGER NOT NULL DEFAULT 0,
		last_reviewed DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (user_id, concept_id)
	)`,
	`CREATE TABLE IF NOT EXISTS quiz_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		score INTEGER NOT NULL,
		total_questions INTEGER NOT NULL,
		completed_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS quiz_results_user_idx ON quiz_results (user_id, completed_at DESC)`,
}

// Migrate creates the tables for the driver db was opened with.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	var stmts []string
	switch db.DriverName() {
	case DriverPostgres:
		stmts = postgresSchema
	case DriverSQLite:
		stmts = sqliteSchema
	default:
		return fmt.Errorf("no schema for driver %q", db.DriverName())
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed apply schema: %w", err)
		}
	}

	return nil
}
