package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DanRulev/conceptbot/internal/models"
	"github.com/DanRulev/conceptbot/internal/repository"
	"github.com/DanRulev/conceptbot/internal/storage/cache"
	"go.uber.org/zap"
)

// MasteryThreshold is the number of correct answers that marks a concept learned.
const MasteryThreshold = 3

type ProgressS struct {
	repo  ProgressRI
	locks *cache.UserLocks
	log   *zap.Logger
	now   func() time.Time
}

func NewProgressService(repo ProgressRI, locks *cache.UserLocks, log *zap.Logger) *ProgressS {
	return &ProgressS{
		repo:  repo,
		locks: locks,
		log:   log,
		now:   time.Now,
	}
}

// RecordExposure counts one showing of a concept to a user and updates mastery.
func (p *ProgressS) RecordExposure(ctx context.Context, userID, conceptID int64, correct bool) (models.Progress, error) {
	unlock := p.locks.Lock(userID)
	defer unlock()

	return p.recordExposure(ctx, userID, conceptID, correct)
}

// recordExposure expects the caller to hold the user's lock.
func (p *ProgressS) recordExposure(ctx context.Context, userID, conceptID int64, correct bool) (models.Progress, error) {
	prev, err := p.repo.Progress(ctx, userID, conceptID)
	first := errors.Is(err, repository.ErrNotFound)
	if err != nil && !first {
		p.log.Warn("failed to load progress", zap.Int64("user_id", userID), zap.Int64("concept_id", conceptID), zap.Error(err))
		return models.Progress{}, fmt.Errorf("load progress: %w", err)
	}

	next := nextProgress(prev, first, correct)
	next.UserID = userID
	next.ConceptID = conceptID
	next.LastReviewed = p.now().UTC()

	if err := p.repo.SaveProgress(ctx, next); err != nil {
		p.log.Warn("failed to save progress", zap.Int64("user_id", userID), zap.Int64("concept_id", conceptID), zap.Error(err))
		return models.Progress{}, fmt.Errorf("save progress: %w", err)
	}

	return next, nil
}

// nextProgress applies one exposure. A first correct answer marks the concept
// learned at once; afterwards it takes MasteryThreshold correct answers, and a
// wrong answer does not revoke a flag that was earned by reaching the threshold.
func nextProgress(prev models.Progress, first, correct bool) models.Progress {
	inc := 0
	if correct {
		inc = 1
	}

	if first {
		return models.Progress{
			TimesShown:   1,
			TimesCorrect: inc,
			IsLearned:    correct,
		}
	}

	reached := correct && prev.TimesCorrect+1 >= MasteryThreshold
	kept := prev.IsLearned && prev.TimesCorrect >= MasteryThreshold

	return models.Progress{
		TimesShown:   prev.TimesShown + 1,
		TimesCorrect: prev.TimesCorrect + inc,
		IsLearned:    reached || kept,
	}
}
