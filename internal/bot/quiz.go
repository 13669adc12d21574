package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/DanRulev/conceptbot/internal/models"
	"github.com/DanRulev/conceptbot/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type QuizSI interface {
	StartQuiz(ctx context.Context, userID int64, filter models.QuizFilter) (models.QuestionView, error)
	CurrentQuestion(ctx context.Context, userID int64) (models.QuizStep, error)
	SubmitAnswer(ctx context.Context, userID int64, in models.AnswerInput) (models.AnswerOutcome, error)
}

type QuizT struct {
	bot     BotSender
	service QuizSI
	log     *zap.Logger
}

func NewQuizTAPI(bot BotSender, service QuizSI, log *zap.Logger) *QuizT {
	return &QuizT{
		bot:     bot,
		service: service,
		log:     log,
	}
}

func (t *QuizT) sendQuizMenu(chatID int64) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🌐 Веб-технологии", prefixQuiz+service.GroupWeb),
			tgbotapi.NewInlineKeyboardButtonData("🐍 Python", prefixQuiz+service.GroupPython),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎲 Все категории", prefixQuiz+service.GroupAll),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Отмена", dataMenu),
		),
	)

	msg := tgbotapi.NewMessage(chatID, "🎯 *Выберите категорию для викторины:*\n\n"+
		"🌐 Веб-технологии — HTML, CSS, JavaScript, API\n"+
		"🐍 Python — основы и библиотеки\n"+
		"🎲 Все категории — случайные вопросы")
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, t.log, msg)
}

func (t *QuizT) startQuiz(ctx context.Context, query *tgbotapi.CallbackQuery, rawFilter string) {
	userID := query.From.ID

	filter, err := service.ParseQuizFilter(rawFilter)
	if err != nil {
		t.log.Warn("bad quiz filter", zap.String("filter", rawFilter), zap.Error(err))
		answerCallback(t.bot, t.log, tgbotapi.NewCallback(query.ID, "❌ Неизвестная категория"))
		return
	}

	view, err := t.service.StartQuiz(ctx, userID, filter)
	if err != nil {
		if errors.Is(err, service.ErrInsufficientPool) {
			answerCallback(t.bot, t.log, tgbotapi.NewCallback(query.ID,
				fmt.Sprintf("❌ Недостаточно понятий для викторины (нужно минимум %d)", service.MinPoolSize)))
			return
		}
		t.log.Error("failed to start quiz", zap.Int64("user_id", userID), zap.Error(err))
		answerCallback(t.bot, t.log, tgbotapi.NewCallback(query.ID, "❌ Ошибка при запуске викторины"))
		return
	}

	answerCallback(t.bot, t.log, tgbotapi.NewCallback(query.ID, ""))
	t.sendQuestion(query.Message.Chat.ID, view)
}

func (t *QuizT) sendQuestion(chatID int64, view models.QuestionView) {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(view.Options))
	for _, opt := range view.Options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(opt.Label, answerData(view, opt.ConceptID)),
		))
	}

	msg := tgbotapi.NewMessage(chatID, formatQuestion(view))
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)

	sendMessage(t.bot, t.log, msg)
}

func answerData(view models.QuestionView, conceptID int64) string {
	return fmt.Sprintf("%s%s:%d:%d", prefixAnswer, view.SessionID, view.Index, conceptID)
}

func parseAnswerData(data string) (models.AnswerInput, error) {
	parts := strings.Split(strings.TrimPrefix(data, prefixAnswer), ":")
	if len(parts) != 3 || parts[0] == "" {
		return models.AnswerInput{}, fmt.Errorf("malformed answer data %q", data)
	}

	index, err := strconv.Atoi(parts[1])
	if err != nil {
		return models.AnswerInput{}, fmt.Errorf("bad question index in %q: %w", data, err)
	}
	selected, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return models.AnswerInput{}, fmt.Errorf("bad concept id in %q: %w", data, err)
	}

	return models.AnswerInput{SessionID: parts[0], QuestionIndex: index, SelectedID: selected}, nil
}

func (t *QuizT) processAnswer(ctx context.Context, query *tgbotapi.CallbackQuery) {
	userID := query.From.ID

	in, err := parseAnswerData(query.Data)
	if err != nil {
		t.log.Warn("bad answer callback", zap.Int64("user_id", userID), zap.Error(err))
		answerCallback(t.bot, t.log, tgbotapi.NewCallback(query.ID, ""))
		return
	}

	outcome, err := t.service.SubmitAnswer(ctx, userID, in)
	switch {
	case errors.Is(err, service.ErrNoSession):
		answerCallback(t.bot, t.log, tgbotapi.NewCallback(query.ID, ""))
		return
	case errors.Is(err, service.ErrStaleAnswer):
		answerCallback(t.bot, t.log, tgbotapi.NewCallback(query.ID, "⌛ Этот вопрос уже неактуален"))
		return
	case err != nil:
		t.log.Error("failed to submit answer", zap.Int64("user_id", userID), zap.Error(err))
		answerCallback(t.bot, t.log, tgbotapi.NewCallback(query.ID, "❌ Ошибка. Попробуй позже."))
		return
	}

	if outcome.Correct {
		answerCallback(t.bot, t.log, tgbotapi.NewCallback(query.ID, "✅ Правильно!"))
	} else {
		answerCallback(t.bot, t.log, tgbotapi.NewCallbackWithAlert(query.ID, "❌ Неверно! Правильный ответ: "+outcome.CorrectTerm))
	}

	if query.Message == nil {
		return
	}
	chatID := query.Message.Chat.ID

	if _, err := t.bot.Request(tgbotapi.NewEditMessageReplyMarkup(chatID, query.Message.MessageID,
		tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}})); err != nil {
		t.log.Debug("failed to clear answer keyboard", zap.Error(err))
	}

	step, err := t.service.CurrentQuestion(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrNoSession) {
			return
		}
		t.log.Error("failed to get next question", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "❌ Ошибка викторины. Попробуй позже."))
		return
	}

	if step.Done() {
		t.sendSummary(chatID, *step.Summary)
		return
	}
	t.sendQuestion(chatID, *step.Question)
}

func (t *QuizT) sendSummary(chatID int64, summary models.QuizSummary) {
	msg := tgbotapi.NewMessage(chatID, formatSummary(summary))
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔁 Ещё викторина", prefixQuiz+service.GroupAll),
			tgbotapi.NewInlineKeyboardButtonData("🔙 В главное меню", dataMenu),
		),
	)

	sendMessage(t.bot, t.log, msg)
}
