package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/DanRulev/conceptbot/internal/models"
	"github.com/DanRulev/conceptbot/internal/repository"
	"github.com/DanRulev/conceptbot/internal/service"
	"github.com/DanRulev/conceptbot/internal/storage/cache"
	"github.com/DanRulev/conceptbot/pkg/validator"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const skipWord = "пропустить"

type AdminSI interface {
	AddConcept(ctx context.Context, concept models.Concept) (bool, error)
	UpdateConcept(ctx context.Context, concept models.Concept) (bool, error)
	DeleteConcept(ctx context.Context, id int64) (bool, error)
	ConceptByID(ctx context.Context, id int64) (models.Concept, error)
	ListConcepts(ctx context.Context) (service.ConceptList, error)
}

type AdminT struct {
	bot     BotSender
	cache   *cache.Cache
	service AdminSI
	isAdmin func(int64) bool
	log     *zap.Logger
}

func NewAdminTAPI(bot BotSender, cache *cache.Cache, service AdminSI, isAdmin func(int64) bool, log *zap.Logger) *AdminT {
	return &AdminT{
		bot:     bot,
		cache:   cache,
		service: service,
		isAdmin: isAdmin,
		log:     log,
	}
}

func generateAdminKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonAdd),
			tgbotapi.NewKeyboardButton(ButtonEdit),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonDelete),
			tgbotapi.NewKeyboardButton(ButtonList),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonMainMenu),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

// allowed reports whether the sender is an admin and tells them otherwise.
func (t *AdminT) allowed(message *tgbotapi.Message) bool {
	if message.From != nil && t.isAdmin(message.From.ID) {
		return true
	}
	sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "❌ У вас нет прав администратора"))
	return false
}

func (t *AdminT) handles(kind models.InputKind) bool {
	switch kind {
	case models.InputTerm, models.InputDefinition, models.InputCategory, models.InputExample,
		models.InputEditID, models.InputDeleteID:
		return true
	}
	return false
}

func (t *AdminT) showAdminMenu(message *tgbotapi.Message) {
	if !t.allowed(message) {
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, "🛠 Меню администратора")
	msg.ReplyMarkup = generateAdminKeyboard()

	sendMessage(t.bot, t.log, msg)
}

func (t *AdminT) prompt(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)

	sendMessage(t.bot, t.log, msg)
}

func (t *AdminT) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = generateAdminKeyboard()

	sendMessage(t.bot, t.log, msg)
}

func (t *AdminT) startAdd(message *tgbotapi.Message) {
	if !t.allowed(message) {
		return
	}

	t.cache.SetInput(message.From.ID, models.PendingInput{Kind: models.InputTerm})
	t.prompt(message.Chat.ID, "➕ Добавление нового понятия\n\nВведите термин:")
}

func (t *AdminT) startEdit(message *tgbotapi.Message) {
	if !t.allowed(message) {
		return
	}

	t.cache.SetInput(message.From.ID, models.PendingInput{Kind: models.InputEditID})
	t.prompt(message.Chat.ID, "📝 Введите ID понятия для редактирования:")
}

func (t *AdminT) startDelete(message *tgbotapi.Message) {
	if !t.allowed(message) {
		return
	}

	t.cache.SetInput(message.From.ID, models.PendingInput{Kind: models.InputDeleteID})
	t.prompt(message.Chat.ID, "🗑️ Введите ID понятия для удаления:")
}

func (t *AdminT) listConcepts(ctx context.Context, message *tgbotapi.Message) {
	if !t.allowed(message) {
		return
	}

	list, err := t.service.ListConcepts(ctx)
	if err != nil {
		t.log.Error("failed to list concepts", zap.Error(err))
		t.reply(message.Chat.ID, "❌ Ошибка при получении списка")
		return
	}
	if list.Total == 0 {
		t.reply(message.Chat.ID, "❌ В базе нет понятий")
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, formatConceptList(list))
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = generateAdminKeyboard()

	sendMessage(t.bot, t.log, msg)
}

// processInput advances the add/edit wizard or handles a delete id. Editing
// walks the same steps as adding, with "пропустить" keeping the old value.
func (t *AdminT) processInput(ctx context.Context, message *tgbotapi.Message, input models.PendingInput) {
	userID := message.From.ID
	chatID := message.Chat.ID

	if !t.isAdmin(userID) {
		t.cache.DeleteInput(userID)
		return
	}

	text := strings.TrimSpace(message.Text)
	skip := strings.EqualFold(text, skipWord)
	editing := input.Draft.ID != 0
	draft := input.Draft

	switch input.Kind {
	case models.InputEditID:
		t.beginEdit(ctx, message, text)

	case models.InputDeleteID:
		t.cache.DeleteInput(userID)
		t.deleteConcept(ctx, chatID, text)

	case models.InputTerm:
		if !(skip && editing) {
			if text == "" || skip {
				t.prompt(chatID, "❌ Термин не может быть пустым. Введите термин:")
				return
			}
			draft.Term = strings.ToUpper(text)
		}
		t.cache.SetInput(userID, models.PendingInput{Kind: models.InputDefinition, Draft: draft})
		t.prompt(chatID, fmt.Sprintf("Термин: %s\n\nВведите определение:", draft.Term))

	case models.InputDefinition:
		if !(skip && editing) {
			if text == "" || skip {
				t.prompt(chatID, "❌ Определение не может быть пустым. Введите определение:")
				return
			}
			draft.Definition = text
		}
		t.cache.SetInput(userID, models.PendingInput{Kind: models.InputCategory, Draft: draft})
		t.prompt(chatID, "Введите категорию (или 'Пропустить' для "+models.DefaultCategory+"):")

	case models.InputCategory:
		switch {
		case !skip:
			draft.Category = text
		case !editing:
			draft.Category = models.DefaultCategory
		}
		t.cache.SetInput(userID, models.PendingInput{Kind: models.InputExample, Draft: draft})
		t.prompt(chatID, "Введите пример использования (или 'Пропустить'):")

	case models.InputExample:
		switch {
		case !skip:
			draft.Example = text
		case !editing:
			draft.Example = ""
		}
		t.cache.DeleteInput(userID)
		t.saveDraft(ctx, chatID, draft)
	}
}

func (t *AdminT) beginEdit(ctx context.Context, message *tgbotapi.Message, text string) {
	userID := message.From.ID
	chatID := message.Chat.ID

	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil || id <= 0 {
		t.prompt(chatID, "❌ Нужен числовой ID. Введите ID понятия:")
		return
	}

	concept, err := t.service.ConceptByID(ctx, id)
	if err != nil {
		t.cache.DeleteInput(userID)
		if errors.Is(err, repository.ErrNotFound) {
			t.reply(chatID, fmt.Sprintf("❌ Понятие #%d не найдено", id))
			return
		}
		t.log.Error("failed to load concept", zap.Int64("id", id), zap.Error(err))
		t.reply(chatID, "❌ Ошибка при загрузке понятия")
		return
	}

	t.cache.SetInput(userID, models.PendingInput{Kind: models.InputTerm, Draft: concept})
	t.prompt(chatID, fmt.Sprintf("Редактирование #%d %s\n\nВведите новый термин (или 'Пропустить'):", concept.ID, concept.Term))
}

func (t *AdminT) deleteConcept(ctx context.Context, chatID int64, text string) {
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil || id <= 0 {
		t.reply(chatID, "❌ Нужен числовой ID")
		return
	}

	ok, err := t.service.DeleteConcept(ctx, id)
	switch {
	case err != nil:
		t.reply(chatID, "❌ Ошибка при удалении")
	case !ok:
		t.reply(chatID, fmt.Sprintf("❌ Понятие #%d не найдено", id))
	default:
		t.reply(chatID, fmt.Sprintf("✅ Понятие #%d удалено", id))
	}
}

func (t *AdminT) saveDraft(ctx context.Context, chatID int64, draft models.Concept) {
	var (
		ok  bool
		err error
	)
	if draft.ID != 0 {
		ok, err = t.service.UpdateConcept(ctx, draft)
	} else {
		ok, err = t.service.AddConcept(ctx, draft)
	}

	switch {
	case errors.Is(err, service.ErrInvalidConcept):
		t.reply(chatID, "❌ Некорректное значение поля "+validator.FirstInvalidField(err))
	case err != nil:
		t.reply(chatID, "❌ Ошибка при сохранении понятия")
	case !ok && draft.ID != 0:
		t.reply(chatID, fmt.Sprintf("❌ Не удалось обновить '%s': понятие удалено или термин занят", draft.Term))
	case !ok:
		t.reply(chatID, fmt.Sprintf("❌ Понятие '%s' уже существует!", draft.Term))
	case draft.ID != 0:
		t.reply(chatID, fmt.Sprintf("✅ Понятие '%s' обновлено!", draft.Term))
	default:
		t.reply(chatID, fmt.Sprintf("✅ Понятие '%s' успешно добавлено!", draft.Term))
	}
}
