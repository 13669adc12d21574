package service

import (
	"context"
	"time"

	"github.com/DanRulev/conceptbot/internal/models"
	"github.com/DanRulev/conceptbot/internal/storage/cache"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mock/mock_service.go

type ConceptRI interface {
	AddConcept(ctx context.Context, concept models.Concept) (bool, error)
	UpdateConcept(ctx context.Context, concept models.Concept) (bool, error)
	DeleteConcept(ctx context.Context, id int64) (bool, error)
	ConceptByID(ctx context.Context, id int64) (models.Concept, error)
	AllConcepts(ctx context.Context) ([]models.Concept, error)
	ConceptsByCategory(ctx context.Context, category string) ([]models.Concept, error)
	ConceptsByCategories(ctx context.Context, categories []string) ([]models.Concept, error)
	Categories(ctx context.Context) ([]models.CategoryCount, error)
	CountConcepts(ctx context.Context, category string) (int, error)
	SearchConcepts(ctx context.Context, text string) ([]models.Concept, error)
	RandomConcept(ctx context.Context, categories []string, excludeIDs []int64) (models.Concept, error)
}

type ProgressRI interface {
	Progress(ctx context.Context, userID, conceptID int64) (models.Progress, error)
	SaveProgress(ctx context.Context, progress models.Progress) error
	UserStats(ctx context.Context, userID int64) (models.UserStats, error)
}

type QuizRI interface {
	AddQuizResult(ctx context.Context, userID int64, score, total int, completedAt time.Time) error
	QuizHistory(ctx context.Context, userID int64, limit int) ([]models.QuizResult, error)
}

type RepositoryI interface {
	ConceptRI
	ProgressRI
	QuizRI
}

// SessionStore holds at most one quiz session per user.
type SessionStore interface {
	SetSession(ctx context.Context, session models.QuizSession) error
	GetSession(ctx context.Context, userID int64) (models.QuizSession, bool, error)
	DeleteSession(ctx context.Context, userID int64) error
}

// Reaper is implemented by session stores that need explicit idle cleanup.
type Reaper interface {
	ReapSessions(ctx context.Context, ttl time.Duration) (int, error)
}

type Service struct {
	*QuizS
	*ConceptS
	*StatsS
	*ProgressS
}

func InitServices(repo RepositoryI, sessions SessionStore, log *zap.Logger, opts ...QuizOption) *Service {
	locks := cache.NewUserLocks()
	progress := NewProgressService(repo, locks, log)

	return &Service{
		QuizS:     NewQuizService(repo, repo, sessions, progress, locks, log, opts...),
		ConceptS:  NewConceptService(repo, progress, log),
		StatsS:    NewStatsService(repo, repo, repo, log),
		ProgressS: progress,
	}
}
