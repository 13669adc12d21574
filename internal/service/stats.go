package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/DanRulev/conceptbot/internal/models"
	"go.uber.org/zap"
)

const recentQuizzes = 3

type Stats struct {
	TotalConcepts int
	models.UserStats
	SuccessRate int
	Progress    int
	Recent      []models.QuizResult
}

type StatsS struct {
	concepts ConceptRI
	progress ProgressRI
	quiz     QuizRI
	log      *zap.Logger
}

func NewStatsService(concepts ConceptRI, progress ProgressRI, quiz QuizRI, log *zap.Logger) *StatsS {
	return &StatsS{
		concepts: concepts,
		progress: progress,
		quiz:     quiz,
		log:      log,
	}
}

func (s *StatsS) Stats(ctx context.Context, userID int64) (Stats, error) {
	total, err := s.concepts.CountConcepts(ctx, "")
	if err != nil {
		s.log.Warn("failed to count concepts", zap.Error(err))
		return Stats{}, err
	}

	user, err := s.progress.UserStats(ctx, userID)
	if err != nil {
		s.log.Warn("failed to get user stats", zap.Int64("user_id", userID), zap.Error(err))
		return Stats{}, err
	}

	history, err := s.quiz.QuizHistory(ctx, userID, recentQuizzes)
	if err != nil {
		s.log.Warn("failed to get quiz history", zap.Int64("user_id", userID), zap.Error(err))
		return Stats{}, err
	}

	return Stats{
		TotalConcepts: total,
		UserStats:     user,
		SuccessRate:   user.TotalCorrect * 100 / max(user.TotalShown, 1),
		Progress:      user.LearnedCount * 100 / max(total, 1),
		Recent:        history,
	}, nil
}

// UserStats renders the user's learning statistics as a chat message.
func (s *StatsS) UserStats(ctx context.Context, userID int64) (string, error) {
	stats, err := s.Stats(ctx, userID)
	if err != nil {
		return "", err
	}
	return formatStats(stats), nil
}

func formatStats(stats Stats) string {
	var sb strings.Builder

	sb.WriteString("📊 *Твоя статистика обучения*\n\n")

	sb.WriteString("📚 Всего понятий в базе: *")
	sb.WriteString(strconv.Itoa(stats.TotalConcepts))
	sb.WriteString("*\n")

	sb.WriteString("👀 Показано понятий: *")
	sb.WriteString(strconv.Itoa(stats.TotalShown))
	sb.WriteString("*\n")

	sb.WriteString("🎓 Изучено понятий: *")
	sb.WriteString(strconv.Itoa(stats.LearnedCount))
	sb.WriteString("*\n\n")

	sb.WriteString("✅ Правильных ответов: *")
	sb.WriteString(strconv.Itoa(stats.TotalCorrect))
	sb.WriteString("*\n")

	sb.WriteString("🎯 Успешность: *")
	sb.WriteString(strconv.Itoa(stats.SuccessRate))
	sb.WriteString("%*\n")

	sb.WriteString("📈 Прогресс: *")
	sb.WriteString(strconv.Itoa(stats.Progress))
	sb.WriteString("%*")

	if len(stats.Recent) > 0 {
		sb.WriteString("\n\n📈 *Последние викторины:*\n")
		for i, r := range stats.Recent {
			sb.WriteString(fmt.Sprintf("%d. %d/%d (%d%%)\n", i+1, r.Score, r.TotalQuestions, r.Percentage()))
		}
	}

	return strings.TrimSpace(sb.String())
}
