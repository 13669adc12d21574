package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanRulev/conceptbot/internal/models"
	"github.com/DanRulev/conceptbot/internal/repository"
	"github.com/DanRulev/conceptbot/internal/service"
	"github.com/DanRulev/conceptbot/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type ConceptSI interface {
	RandomConcept(ctx context.Context, userID int64, group string) (models.Concept, error)
	RandomFromCategory(ctx context.Context, userID int64, category string) (models.Concept, error)
	Search(ctx context.Context, query string) (service.SearchResult, error)
	Categories(ctx context.Context) ([]models.CategoryCount, error)
	Overview(ctx context.Context) (models.CatalogOverview, error)
	CountConcepts(ctx context.Context) (int, error)
	UserStats(ctx context.Context, userID int64) (string, error)
}

type ConceptT struct {
	bot     BotSender
	cache   *cache.Cache
	service ConceptSI
	log     *zap.Logger
}

func NewConceptTAPI(bot BotSender, cache *cache.Cache, service ConceptSI, log *zap.Logger) *ConceptT {
	return &ConceptT{
		bot:     bot,
		cache:   cache,
		service: service,
		log:     log,
	}
}

var emptyGroupText = map[string]string{
	service.GroupAll:    "❌ В базе пока нет понятий.",
	service.GroupPython: "❌ Python понятия пока не добавлены.",
	service.GroupWeb:    "❌ Веб понятия пока не добавлены.",
}

func (t *ConceptT) sendRandom(ctx context.Context, chatID, userID int64, group string) {
	concept, err := t.service.RandomConcept(ctx, userID, group)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, emptyGroupText[group]))
			return
		}
		t.log.Error("failed to get random concept", zap.Int64("user_id", userID), zap.String("group", group), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "❌ Ошибка при получении понятия. Попробуй позже."))
		return
	}

	t.sendConcept(chatID, concept, continueKeyboard(group, ""))
}

// sendFromCategory answers the callback itself so an empty category can be
// reported as a toast.
func (t *ConceptT) sendFromCategory(ctx context.Context, query *tgbotapi.CallbackQuery, category string) {
	concept, err := t.service.RandomFromCategory(ctx, query.From.ID, category)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			answerCallback(t.bot, t.log, tgbotapi.NewCallback(query.ID, "❌ В этой категории нет понятий"))
			return
		}
		t.log.Error("failed to get concept from category", zap.String("category", category), zap.Error(err))
		answerCallback(t.bot, t.log, tgbotapi.NewCallback(query.ID, "❌ Ошибка. Попробуй позже."))
		return
	}

	answerCallback(t.bot, t.log, tgbotapi.NewCallback(query.ID, ""))
	t.sendConcept(query.Message.Chat.ID, concept, continueKeyboard("", category))
}

func (t *ConceptT) sendConcept(chatID int64, concept models.Concept, keyboard tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, formatConcept(concept))
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, t.log, msg)
}

func continueKeyboard(group, category string) tgbotapi.InlineKeyboardMarkup {
	if category != "" {
		return tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("➡️ Следующее понятие", prefixNext+prefixCat+category),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🎯 Викторина по категории", prefixQuiz+service.FormatQuizFilter(models.QuizFilter{Category: category})),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🔙 В меню", dataMenu),
			),
		)
	}

	if group == "" {
		group = service.GroupAll
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➡️ Следующее понятие", prefixNext+group),
			tgbotapi.NewInlineKeyboardButtonData("🔙 В меню", dataMenu),
		),
	)
}

func (t *ConceptT) showCategories(ctx context.Context, chatID int64) {
	categories, err := t.service.Categories(ctx)
	if err != nil {
		t.log.Error("failed to get categories", zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "❌ Ошибка при получении категорий"))
		return
	}
	if len(categories) == 0 {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "❌ Категории пока не созданы"))
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	row := make([]tgbotapi.InlineKeyboardButton, 0, 2)
	for _, c := range categories {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(c.Name, prefixCat+c.Name))
		if len(row) == 2 {
			rows = append(rows, row)
			row = make([]tgbotapi.InlineKeyboardButton, 0, 2)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🔙 Назад", dataMenu)))

	msg := tgbotapi.NewMessage(chatID, formatCategories(categories))
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)

	sendMessage(t.bot, t.log, msg)
}

func (t *ConceptT) promptSearch(message *tgbotapi.Message) {
	if message.From != nil {
		t.cache.SetInput(message.From.ID, models.PendingInput{Kind: models.InputSearch})
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, "🔍 Введите слово или фразу для поиска:")
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)

	sendMessage(t.bot, t.log, msg)
}

func (t *ConceptT) processSearch(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	res, err := t.service.Search(ctx, message.Text)
	switch {
	case errors.Is(err, service.ErrQueryTooShort):
		t.sendWithMenu(chatID, fmt.Sprintf("❌ Запрос слишком короткий (минимум %d символа)", service.MinSearchLength), "")
		return
	case err != nil:
		t.log.Error("search failed", zap.Error(err))
		t.sendWithMenu(chatID, "❌ Ошибка поиска. Попробуй позже.", "")
		return
	case res.Total == 0:
		t.sendWithMenu(chatID, fmt.Sprintf("❌ По запросу '%s' ничего не найдено", res.Query), "")
		return
	}

	t.sendWithMenu(chatID, formatSearch(res), tgbotapi.ModeMarkdown)
}

func (t *ConceptT) sendWithMenu(chatID int64, text, parseMode string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = parseMode
	msg.ReplyMarkup = generateMenuKeyboard()

	sendMessage(t.bot, t.log, msg)
}

func (t *ConceptT) sendAbout(ctx context.Context, chatID int64) {
	overview, err := t.service.Overview(ctx)
	if err != nil {
		t.log.Error("failed to get catalog overview", zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "❌ Ошибка получения информации"))
		return
	}

	msg := tgbotapi.NewMessage(chatID, formatOverview(overview))
	msg.ParseMode = tgbotapi.ModeMarkdown

	sendMessage(t.bot, t.log, msg)
}

func (t *ConceptT) sendStats(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", chatID))
		return
	}

	stats, err := t.service.UserStats(ctx, message.From.ID)
	if err != nil {
		t.log.Error("failed to get stats", zap.Int64("user_id", message.From.ID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "❌ Ошибка получения статистики"))
		return
	}

	msg := tgbotapi.NewMessage(chatID, stats)
	msg.ParseMode = tgbotapi.ModeMarkdown

	sendMessage(t.bot, t.log, msg)
}
