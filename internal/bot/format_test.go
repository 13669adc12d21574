package bot

import (
	"strings"
	"testing"
	"time"

	"github.com/DanRulev/conceptbot/internal/models"
	"github.com/stretchr/testify/assert"
)

func Test_escapeMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "__init__", want: "\\_\\_init\\_\\_"},
		{in: "*args", want: "\\*args"},
		{in: "`code` [link]", want: "\\`code\\` \\[link]"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, escapeMarkdown(tt.in))
		})
	}
}

func Test_truncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "короткий", truncate("короткий", 10))
	assert.Equal(t, "длин...", truncate("длинный", 4))
	assert.Equal(t, 203, len([]rune(truncate(strings.Repeat("я", 300), previewLength))))
}

func Test_formatConcept(t *testing.T) {
	t.Parallel()

	c := models.Concept{
		Term:       "LIST_COMPREHENSION",
		Definition: "Создание списка в одну строку",
		Category:   "Python Basics",
		Example:    "[x*2 for x in `range`(5)]",
		CreatedAt:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	text := formatConcept(c)
	assert.Contains(t, text, "📖 *LIST\\_COMPREHENSION*")
	assert.Contains(t, text, "`[x*2 for x in 'range'(5)]`")
	assert.Contains(t, text, "📅 Добавлено: 01.03.2024")

	c.Example = ""
	c.CreatedAt = time.Time{}
	text = formatConcept(c)
	assert.Contains(t, text, "Нет примера")
	assert.NotContains(t, text, "Добавлено")
}

func Test_formatSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		summary models.QuizSummary
		want    string
	}{
		{name: "perfect", summary: models.QuizSummary{Score: 5, Total: 5, Percentage: 100, Tier: models.TierPerfect}, want: "Идеальный результат"},
		{name: "fair", summary: models.QuizSummary{Score: 2, Total: 5, Percentage: 40, Tier: models.TierFair}, want: "Нужно ещё позаниматься"},
		{name: "keep trying", summary: models.QuizSummary{Score: 0, Total: 5, Tier: models.TierKeepTrying}, want: "Не сдавайся"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, formatSummary(tt.summary), tt.want)
		})
	}
}
