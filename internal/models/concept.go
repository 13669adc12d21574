package models

import "time"

const DefaultCategory = "General"

type Concept struct {
	ID         int64     `db:"id" json:"id"`
	Term       string    `db:"term" json:"term" validate:"required,notblank,max=100"`
	Definition string    `db:"definition" json:"definition" validate:"required,notblank,max=2000"`
	Category   string    `db:"category" json:"category" validate:"max=64"`
	Example    string    `db:"example" json:"example" validate:"max=500"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

type CategoryCount struct {
	Name  string `db:"category"`
	Count int    `db:"count"`
}

// CatalogOverview is the per-group breakdown shown on the "about" page.
type CatalogOverview struct {
	Total  int
	Web    int
	Python int
}
