package bot

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/DanRulev/conceptbot/internal/models"
	"github.com/DanRulev/conceptbot/internal/service"
)

const previewLength = 200

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

func escapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}

func formatConcept(c models.Concept) string {
	var sb strings.Builder

	sb.WriteString("📖 *")
	sb.WriteString(escapeMarkdown(c.Term))
	sb.WriteString("*\n\n")

	sb.WriteString("📝 *Определение:*\n")
	sb.WriteString(escapeMarkdown(c.Definition))
	sb.WriteString("\n\n")

	sb.WriteString("🏷️ *Категория:* ")
	sb.WriteString(escapeMarkdown(c.Category))
	sb.WriteString("\n\n")

	sb.WriteString("💡 *Пример:*\n")
	if c.Example != "" {
		sb.WriteString("`")
		sb.WriteString(strings.ReplaceAll(c.Example, "`", "'"))
		sb.WriteString("`")
	} else {
		sb.WriteString("Нет примера")
	}

	if !c.CreatedAt.IsZero() {
		sb.WriteString("\n\n─────────────────\n📅 Добавлено: ")
		sb.WriteString(c.CreatedAt.Format("02.01.2006"))
	}

	return sb.String()
}

func formatSearch(res service.SearchResult) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("🔍 Найдено: %d\n", res.Total))

	for _, c := range res.Concepts {
		sb.WriteString("\n📖 *")
		sb.WriteString(escapeMarkdown(c.Term))
		sb.WriteString("*\n📝 ")
		sb.WriteString(escapeMarkdown(truncate(c.Definition, previewLength)))
		sb.WriteString("\n🏷️ Категория: ")
		sb.WriteString(escapeMarkdown(c.Category))
		sb.WriteString("\n")
	}

	if rest := res.Total - len(res.Concepts); rest > 0 {
		sb.WriteString(fmt.Sprintf("\n... и ещё %d результатов", rest))
	}

	return strings.TrimSpace(sb.String())
}

func formatCategories(categories []models.CategoryCount) string {
	var sb strings.Builder

	sb.WriteString("📂 *Доступные категории:*\n\n")
	for _, c := range categories {
		sb.WriteString(fmt.Sprintf("• %s (%d понятий)\n", escapeMarkdown(c.Name), c.Count))
	}

	return strings.TrimSpace(sb.String())
}

func formatQuestion(q models.QuestionView) string {
	return fmt.Sprintf("🎯 *Викторина* | Вопрос %d/%d\n\n❓ *Определение:*\n%s\n\nВыберите правильный термин: 👇",
		q.Index+1, q.Total, escapeMarkdown(q.Prompt))
}

var tierText = map[models.Tier]string{
	models.TierPerfect:    "🏆 Отлично! Идеальный результат!",
	models.TierExcellent:  "🎉 Превосходно!",
	models.TierGood:       "👍 Хороший результат!",
	models.TierFair:       "📚 Нужно ещё позаниматься!",
	models.TierKeepTrying: "💪 Не сдавайся! Попробуй ещё раз!",
}

func formatSummary(s models.QuizSummary) string {
	return fmt.Sprintf("🏁 *Викторина завершена!*\n\n✅ Правильных ответов: %d/%d\n📊 Результат: %d%%\n\n%s",
		s.Score, s.Total, s.Percentage, tierText[s.Tier])
}

func formatOverview(o models.CatalogOverview) string {
	var sb strings.Builder

	sb.WriteString("🤖 *ConceptBot*\n\n")
	sb.WriteString("Бот помогает изучать основные понятия веб-технологий и Python.\n\n")
	sb.WriteString("📊 *Статистика базы:*\n")
	sb.WriteString(fmt.Sprintf("• Всего понятий: %d\n", o.Total))
	sb.WriteString(fmt.Sprintf("• Веб-технологии: %d\n", o.Web))
	sb.WriteString(fmt.Sprintf("• Python: %d\n\n", o.Python))
	sb.WriteString("🌐 *Веб-технологии:* Frontend, Backend, General, Tools\n")
	sb.WriteString("🐍 *Python:* Python Basics, Python Libraries\n\n")
	sb.WriteString("🎯 Удачи в обучении!")

	return sb.String()
}

func formatConceptList(list service.ConceptList) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("📋 *Все понятия (%d):*\n\n", list.Total))
	for i, c := range list.Concepts {
		sb.WriteString(fmt.Sprintf("%d. *%s* (#%d) - %s\n", i+1, escapeMarkdown(c.Term), c.ID, escapeMarkdown(c.Category)))
	}

	if rest := list.Total - len(list.Concepts); rest > 0 {
		sb.WriteString(fmt.Sprintf("\n... и ещё %d понятий", rest))
	}

	return strings.TrimSpace(sb.String())
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}
