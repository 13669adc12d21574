package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/DanRulev/conceptbot/internal/models"
	"github.com/DanRulev/conceptbot/internal/storage/cache"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultQuestionsPerQuiz = 5
	// MinPoolSize is one correct answer plus three distractors.
	MinPoolSize    = 4
	maxDistractors = 3

	GroupAll    = "all"
	GroupWeb    = "web"
	GroupPython = "python"
)

var (
	ErrInsufficientPool = errors.New("not enough concepts for a quiz")
	ErrNoSession        = errors.New("no active quiz session")
	ErrStaleAnswer      = errors.New("answer does not match the current question")
	ErrUnknownGroup     = errors.New("unknown category group")
)

var categoryGroups = map[string][]string{
	GroupWeb:    {"Frontend", "Backend", "General", "Tools"},
	GroupPython: {"Python Basics", "Python Libraries"},
}

// GroupCategories returns the categories of a named group.
func GroupCategories(group string) ([]string, bool) {
	categories, ok := categoryGroups[group]
	if !ok {
		return nil, false
	}
	return append([]string(nil), categories...), true
}

// ParseQuizFilter reads "all", a group name or "cat:<category>".
func ParseQuizFilter(s string) (models.QuizFilter, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || s == GroupAll:
		return models.QuizFilter{}, nil
	case strings.HasPrefix(s, "cat:"):
		category := strings.TrimSpace(strings.TrimPrefix(s, "cat:"))
		if category == "" {
			return models.QuizFilter{}, fmt.Errorf("%w: empty category", ErrUnknownGroup)
		}
		return models.QuizFilter{Category: category}, nil
	}
	if _, ok := categoryGroups[s]; !ok {
		return models.QuizFilter{}, fmt.Errorf("%w: %q", ErrUnknownGroup, s)
	}
	return models.QuizFilter{Group: s}, nil
}

// FormatQuizFilter is the inverse of ParseQuizFilter.
func FormatQuizFilter(f models.QuizFilter) string {
	switch {
	case f.Category != "":
		return "cat:" + f.Category
	case f.Group != "":
		return f.Group
	default:
		return GroupAll
	}
}

type QuizOption func(*QuizS)

// WithRand replaces the random source used for sampling and shuffling.
func WithRand(rng *rand.Rand) QuizOption {
	return func(q *QuizS) { q.rng = rng }
}

func WithClock(now func() time.Time) QuizOption {
	return func(q *QuizS) { q.now = now }
}

func WithQuestionsPerQuiz(n int) QuizOption {
	return func(q *QuizS) {
		if n > 0 {
			q.questionsPerQuiz = n
		}
	}
}

func WithIdleTTL(ttl time.Duration) QuizOption {
	return func(q *QuizS) { q.idleTTL = ttl }
}

// QuizS runs multiple-choice quiz sessions. All operations for one user are
// serialized through the shared user locks.
type QuizS struct {
	concepts ConceptRI
	results  QuizRI
	sessions SessionStore
	progress *ProgressS
	locks    *cache.UserLocks
	log      *zap.Logger

	rngMu sync.Mutex
	rng   *rand.Rand

	now              func() time.Time
	questionsPerQuiz int
	idleTTL          time.Duration
}

func NewQuizService(concepts ConceptRI, results QuizRI, sessions SessionStore, progress *ProgressS, locks *cache.UserLocks, log *zap.Logger, opts ...QuizOption) *QuizS {
	q := &QuizS{
		concepts:         concepts,
		results:          results,
		sessions:         sessions,
		progress:         progress,
		locks:            locks,
		log:              log,
		rng:              rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:              time.Now,
		questionsPerQuiz: DefaultQuestionsPerQuiz,
		idleTTL:          30 * time.Minute,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// StartQuiz replaces any running session of the user with a new one and
// returns its first question.
func (q *QuizS) StartQuiz(ctx context.Context, userID int64, filter models.QuizFilter) (models.QuestionView, error) {
	unlock := q.locks.Lock(userID)
	defer unlock()

	pool, err := q.pool(ctx, filter)
	if err != nil {
		q.log.Warn("failed to load quiz pool", zap.Int64("user_id", userID), zap.Error(err))
		return models.QuestionView{}, err
	}
	if len(pool) < MinPoolSize {
		q.log.Info("quiz pool too small",
			zap.Int64("user_id", userID),
			zap.String("filter", FormatQuizFilter(filter)),
			zap.Int("pool", len(pool)),
		)
		return models.QuestionView{}, ErrInsufficientPool
	}

	now := q.now()
	session := models.QuizSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		Questions: q.sample(pool, min(q.questionsPerQuiz, len(pool))),
		Filter:    filter,
		StartedAt: now,
		UpdatedAt: now,
	}

	if err := q.sessions.SetSession(ctx, session); err != nil {
		q.log.Error("failed to store quiz session", zap.Int64("user_id", userID), zap.Error(err))
		return models.QuestionView{}, err
	}

	return q.questionView(ctx, session)
}

// CurrentQuestion returns the question at the session cursor, or finalizes the
// session once every question has been answered.
func (q *QuizS) CurrentQuestion(ctx context.Context, userID int64) (models.QuizStep, error) {
	unlock := q.locks.Lock(userID)
	defer unlock()

	session, err := q.session(ctx, userID)
	if err != nil {
		return models.QuizStep{}, err
	}

	if session.Done() {
		summary, err := q.finalize(ctx, session)
		if err != nil {
			return models.QuizStep{}, err
		}
		return models.QuizStep{Summary: &summary}, nil
	}

	view, err := q.questionView(ctx, session)
	if err != nil {
		return models.QuizStep{}, err
	}
	return models.QuizStep{Question: &view}, nil
}

// SubmitAnswer checks the selected option against the session's current
// question, scores it, records the exposure and advances the cursor.
func (q *QuizS) SubmitAnswer(ctx context.Context, userID int64, in models.AnswerInput) (models.AnswerOutcome, error) {
	unlock := q.locks.Lock(userID)
	defer unlock()

	session, err := q.session(ctx, userID)
	if err != nil {
		return models.AnswerOutcome{}, err
	}

	if session.ID != in.SessionID || session.Index != in.QuestionIndex || session.Done() {
		q.log.Debug("stale quiz answer",
			zap.Int64("user_id", userID),
			zap.String("session_id", in.SessionID),
			zap.Int("index", in.QuestionIndex),
		)
		return models.AnswerOutcome{}, ErrStaleAnswer
	}

	target := session.Questions[session.Index]
	correct := in.SelectedID == target.ID

	if _, err := q.progress.recordExposure(ctx, userID, target.ID, correct); err != nil {
		return models.AnswerOutcome{}, err
	}

	if correct {
		session.Score++
	}
	session.Index++

	if err := q.sessions.SetSession(ctx, session); err != nil {
		q.log.Error("failed to update quiz session", zap.Int64("user_id", userID), zap.Error(err))
		return models.AnswerOutcome{}, err
	}

	return models.AnswerOutcome{
		Correct:     correct,
		CorrectID:   target.ID,
		CorrectTerm: target.Term,
	}, nil
}

// Finalize ends the user's session and stores its result. Without a session it
// returns ErrNoSession and records nothing.
func (q *QuizS) Finalize(ctx context.Context, userID int64) (models.QuizSummary, error) {
	unlock := q.locks.Lock(userID)
	defer unlock()

	session, err := q.session(ctx, userID)
	if err != nil {
		return models.QuizSummary{}, err
	}
	return q.finalize(ctx, session)
}

// RunReaper removes idle sessions every interval until ctx is done. Stores
// that expire sessions on their own are left alone.
func (q *QuizS) RunReaper(ctx context.Context, interval time.Duration) error {
	reaper, ok := q.sessions.(Reaper)
	if !ok || interval <= 0 || q.idleTTL <= 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			removed, err := reaper.ReapSessions(ctx, q.idleTTL)
			if err != nil {
				q.log.Warn("failed to reap quiz sessions", zap.Error(err))
				continue
			}
			if removed > 0 {
				q.log.Info("reaped idle quiz sessions", zap.Int("count", removed))
			}
		}
	}
}

func (q *QuizS) session(ctx context.Context, userID int64) (models.QuizSession, error) {
	session, ok, err := q.sessions.GetSession(ctx, userID)
	if err != nil {
		q.log.Error("failed to load quiz session", zap.Int64("user_id", userID), zap.Error(err))
		return models.QuizSession{}, err
	}
	if !ok {
		return models.QuizSession{}, ErrNoSession
	}
	return session, nil
}

// finalize expects the caller to hold the user's lock.
func (q *QuizS) finalize(ctx context.Context, session models.QuizSession) (models.QuizSummary, error) {
	if err := q.sessions.DeleteSession(ctx, session.UserID); err != nil {
		q.log.Error("failed to delete quiz session", zap.Int64("user_id", session.UserID), zap.Error(err))
		return models.QuizSummary{}, err
	}

	total := len(session.Questions)
	summary := models.QuizSummary{
		Score:      session.Score,
		Total:      total,
		Percentage: percentage(session.Score, total),
	}
	summary.Tier = tierFor(summary.Percentage)

	if err := q.results.AddQuizResult(ctx, session.UserID, session.Score, total, q.now().UTC()); err != nil {
		q.log.Error("failed to save quiz result", zap.Int64("user_id", session.UserID), zap.Error(err))
		return models.QuizSummary{}, err
	}

	q.log.Info("quiz finished",
		zap.Int64("user_id", session.UserID),
		zap.Int("score", session.Score),
		zap.Int("total", total),
	)

	return summary, nil
}

func (q *QuizS) pool(ctx context.Context, filter models.QuizFilter) ([]models.Concept, error) {
	switch {
	case filter.Category != "":
		return q.concepts.ConceptsByCategory(ctx, filter.Category)
	case filter.Group != "" && filter.Group != GroupAll:
		categories, ok := GroupCategories(filter.Group)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, filter.Group)
		}
		return q.concepts.ConceptsByCategories(ctx, categories)
	default:
		return q.concepts.AllConcepts(ctx)
	}
}

func (q *QuizS) questionView(ctx context.Context, session models.QuizSession) (models.QuestionView, error) {
	target := session.Questions[session.Index]

	catalog, err := q.concepts.AllConcepts(ctx)
	if err != nil {
		q.log.Warn("failed to load catalog for distractors", zap.Error(err))
		return models.QuestionView{}, err
	}

	others := make([]models.Concept, 0, len(catalog))
	for _, c := range catalog {
		if c.ID != target.ID {
			others = append(others, c)
		}
	}

	chosen := q.sample(others, min(maxDistractors, len(others)))

	options := make([]models.AnswerOption, 0, len(chosen)+1)
	options = append(options, models.AnswerOption{Label: target.Term, ConceptID: target.ID})
	for _, c := range chosen {
		options = append(options, models.AnswerOption{Label: c.Term, ConceptID: c.ID})
	}

	q.rngMu.Lock()
	q.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	q.rngMu.Unlock()

	return models.QuestionView{
		SessionID: session.ID,
		Index:     session.Index,
		Total:     len(session.Questions),
		Prompt:    target.Definition,
		Options:   options,
	}, nil
}

// sample picks n items without replacement in random order.
func (q *QuizS) sample(items []models.Concept, n int) []models.Concept {
	q.rngMu.Lock()
	perm := q.rng.Perm(len(items))
	q.rngMu.Unlock()

	out := make([]models.Concept, 0, n)
	for _, i := range perm[:n] {
		out = append(out, items[i])
	}
	return out
}

func percentage(score, total int) int {
	if total == 0 {
		return 0
	}
	return score * 100 / total
}

func tierFor(pct int) models.Tier {
	switch {
	case pct >= 100:
		return models.TierPerfect
	case pct >= 80:
		return models.TierExcellent
	case pct >= 60:
		return models.TierGood
	case pct >= 40:
		return models.TierFair
	default:
		return models.TierKeepTrying
	}
}
