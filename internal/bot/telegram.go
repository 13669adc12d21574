package bot

import (
	"context"
	"sync"
	"time"

	"github.com/DanRulev/conceptbot/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=telegram.go -destination=mock/mock_service.go -package=mock_bot

type ServiceI interface {
	ConceptSI
	QuizSI
	AdminSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Options struct {
	Env     string
	Timeout time.Duration
	IsAdmin func(userID int64) bool
}

type TelegramAPI struct {
	bot     *tgbotapi.BotAPI
	sender  BotSender
	cache   *cache.Cache
	log     *zap.Logger
	timeout time.Duration

	concept *ConceptT
	quiz    *QuizT
	admin   *AdminT
}

func NewTelegramAPI(botToken string, opts Options, service ServiceI, cache *cache.Cache, log *zap.Logger) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	bot.Debug = opts.Env == "development"
	log.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	t := newTelegramAPI(bot, opts, service, cache, log)
	t.bot = bot
	return t, nil
}

func newTelegramAPI(sender BotSender, opts Options, service ServiceI, cache *cache.Cache, log *zap.Logger) *TelegramAPI {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.IsAdmin == nil {
		opts.IsAdmin = func(int64) bool { return false }
	}

	return &TelegramAPI{
		sender:  sender,
		cache:   cache,
		log:     log,
		timeout: opts.Timeout,
		concept: NewConceptTAPI(sender, cache, service, log),
		quiz:    NewQuizTAPI(sender, service, log),
		admin:   NewAdminTAPI(sender, cache, service, opts.IsAdmin, log),
	}
}

// Start polls for updates until ctx is cancelled. Every update is handled on
// its own goroutine; per-user ordering is enforced by the services.
func (t *TelegramAPI) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			t.bot.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				t.handleUpdate(ctx, update)
			}()
		}
	}
}

func (t *TelegramAPI) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), t.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			t.log.Error("panic while handling update", zap.Int("update_id", update.UpdateID), zap.Any("panic", r))
		}
	}()

	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(ctx, update.Message)
		} else {
			t.handleMessage(ctx, update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(ctx, update.CallbackQuery)
	}
}

func sendMessage(bot BotSender, log *zap.Logger, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Warn("failed to send message", zap.Error(err))
		return
	}
	if sentMsg.Chat != nil {
		log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
	}
}

func answerCallback(bot BotSender, log *zap.Logger, callback tgbotapi.CallbackConfig) {
	if _, err := bot.Request(callback); err != nil {
		log.Warn("failed to answer callback", zap.Error(err))
	}
}
