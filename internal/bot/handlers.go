package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/DanRulev/conceptbot/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonLearn      = "📚 Изучить понятие"
	ButtonPython     = "🐍 Python понятия"
	ButtonWeb        = "🌐 Веб понятия"
	ButtonQuiz       = "🎯 Викторина"
	ButtonStats      = "📊 Моя статистика"
	ButtonSearch     = "🔍 Поиск"
	ButtonCategories = "📂 Категории"
	ButtonAbout      = "ℹ️ О боте"

	ButtonAdd      = "➕ Добавить понятие"
	ButtonEdit     = "📝 Редактировать"
	ButtonDelete   = "🗑️ Удалить понятие"
	ButtonList     = "📋 Все понятия"
	ButtonMainMenu = "🔙 Главное меню"
)

const (
	dataMenu     = "menu"
	prefixNext   = "next:"
	prefixCat    = "cat:"
	prefixQuiz   = "qs:"
	prefixAnswer = "qa:"
)

func (t *TelegramAPI) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	if message.From != nil {
		t.cache.DeleteInput(message.From.ID)
	}

	switch message.Command() {
	case "start":
		t.handleStartCommand(ctx, message)
	case "help":
		t.handleHelpCommand(message)
	case "stats":
		t.concept.sendStats(ctx, message)
	case "quiz":
		t.quiz.sendQuizMenu(message.Chat.ID)
	case "search":
		t.concept.promptSearch(message)
	case "admin":
		t.admin.showAdminMenu(message)
	case "cancel":
		t.showMainMenu(message.Chat.ID, "🔙 Действие отменено")
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Неизвестная команда. Используй /start")
		sendMessage(t.sender, t.log, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(ctx context.Context, message *tgbotapi.Message) {
	name := "друг"
	if message.From != nil && message.From.FirstName != "" {
		name = message.From.FirstName
	}

	total, err := t.concept.service.CountConcepts(ctx)
	if err != nil {
		t.log.Warn("failed to count concepts", zap.Error(err))
	}

	welcomeText := fmt.Sprintf("👋 Привет, %s!\n\n", escapeMarkdown(name)) +
		"Я помогаю изучать понятия веб-технологий и Python.\n\n" +
		"📚 *Что я умею:*\n" +
		"• Показывать случайные понятия с определениями\n" +
		"• Проводить викторины для проверки знаний\n" +
		"• Искать понятия по ключевым словам\n" +
		"• Вести статистику твоего прогресса\n" +
		"• Фильтровать по категориям (Веб / Python)\n\n" +
		fmt.Sprintf("📊 *В базе уже %d понятий!*\n\n", total) +
		"Выбери действие в меню ниже! 👇"

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = generateMenuKeyboard()

	sendMessage(t.sender, t.log, msg)
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `📖 Помощь

📚 Изучение понятий — случайные понятия из базы, фильтр Веб/Python и по категориям
🎯 Викторина — вопросы с вариантами ответов
🔍 Поиск — по названию и тексту определения
📊 Статистика — прогресс и результаты викторин

Команды:
/start — главное меню
/help — эта справка
/stats — твоя статистика
/quiz — начать викторину
/search — поиск понятия
/cancel — отменить ввод
/admin — меню администратора`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.sender, t.log, msg)
}

func (t *TelegramAPI) showMainMenu(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = generateMenuKeyboard()

	sendMessage(t.sender, t.log, msg)
}

func generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonLearn),
			tgbotapi.NewKeyboardButton(ButtonPython),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonWeb),
			tgbotapi.NewKeyboardButton(ButtonQuiz),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonStats),
			tgbotapi.NewKeyboardButton(ButtonSearch),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonCategories),
			tgbotapi.NewKeyboardButton(ButtonAbout),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}
	userID := message.From.ID
	text := strings.TrimSpace(message.Text)

	if menuButtons[text] {
		t.cache.DeleteInput(userID)
		t.handleMenuButton(ctx, message, text)
		return
	}

	if input, ok := t.cache.GetInput(userID); ok {
		switch {
		case t.admin.handles(input.Kind):
			t.admin.processInput(ctx, message, input)
		default:
			t.cache.DeleteInput(userID)
			t.concept.processSearch(ctx, message)
		}
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, "Я не понял. Используй кнопки ниже.")
	msg.ReplyMarkup = generateMenuKeyboard()
	sendMessage(t.sender, t.log, msg)
}

var menuButtons = map[string]bool{
	ButtonLearn: true, ButtonPython: true, ButtonWeb: true, ButtonQuiz: true,
	ButtonStats: true, ButtonSearch: true, ButtonCategories: true, ButtonAbout: true,
	ButtonAdd: true, ButtonEdit: true, ButtonDelete: true, ButtonList: true, ButtonMainMenu: true,
}

func (t *TelegramAPI) handleMenuButton(ctx context.Context, message *tgbotapi.Message, text string) {
	userID := message.From.ID

	switch text {
	case ButtonLearn:
		t.concept.sendRandom(ctx, message.Chat.ID, userID, service.GroupAll)
	case ButtonPython:
		t.concept.sendRandom(ctx, message.Chat.ID, userID, service.GroupPython)
	case ButtonWeb:
		t.concept.sendRandom(ctx, message.Chat.ID, userID, service.GroupWeb)
	case ButtonQuiz:
		t.quiz.sendQuizMenu(message.Chat.ID)
	case ButtonStats:
		t.concept.sendStats(ctx, message)
	case ButtonSearch:
		t.concept.promptSearch(message)
	case ButtonCategories:
		t.concept.showCategories(ctx, message.Chat.ID)
	case ButtonAbout:
		t.concept.sendAbout(ctx, message.Chat.ID)
	case ButtonAdd:
		t.admin.startAdd(message)
	case ButtonEdit:
		t.admin.startEdit(message)
	case ButtonDelete:
		t.admin.startDelete(message)
	case ButtonList:
		t.admin.listConcepts(ctx, message)
	case ButtonMainMenu:
		t.showMainMenu(message.Chat.ID, "🔙 Главное меню")
	}
}

func (t *TelegramAPI) handleCallbackQuery(ctx context.Context, query *tgbotapi.CallbackQuery) {
	data := query.Data

	if strings.HasPrefix(data, prefixAnswer) {
		t.quiz.processAnswer(ctx, query)
		return
	}

	if query.Message == nil {
		t.log.Warn("callback without message", zap.String("callback_id", query.ID))
		answerCallback(t.sender, t.log, tgbotapi.NewCallback(query.ID, ""))
		return
	}
	chatID := query.Message.Chat.ID

	switch {
	case data == dataMenu:
		answerCallback(t.sender, t.log, tgbotapi.NewCallback(query.ID, ""))
		t.showMainMenu(chatID, "🔙 Главное меню")

	case strings.HasPrefix(data, prefixNext):
		mode := strings.TrimPrefix(data, prefixNext)
		if category, ok := strings.CutPrefix(mode, prefixCat); ok {
			t.concept.sendFromCategory(ctx, query, category)
			return
		}
		answerCallback(t.sender, t.log, tgbotapi.NewCallback(query.ID, ""))
		t.concept.sendRandom(ctx, chatID, query.From.ID, mode)

	case strings.HasPrefix(data, prefixCat):
		t.concept.sendFromCategory(ctx, query, strings.TrimPrefix(data, prefixCat))

	case strings.HasPrefix(data, prefixQuiz):
		t.quiz.startQuiz(ctx, query, strings.TrimPrefix(data, prefixQuiz))

	default:
		answerCallback(t.sender, t.log, tgbotapi.NewCallback(query.ID, ""))
		t.log.Warn("unknown callback data", zap.String("data", data), zap.Int64("user_id", query.From.ID))
	}
}
