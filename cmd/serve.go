package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/DanRulev/conceptbot/internal/bot"
	"github.com/DanRulev/conceptbot/internal/config"
	"github.com/DanRulev/conceptbot/internal/repository"
	"github.com/DanRulev/conceptbot/internal/seed"
	"github.com/DanRulev/conceptbot/internal/server"
	"github.com/DanRulev/conceptbot/internal/service"
	"github.com/DanRulev/conceptbot/internal/storage/cache"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bot, the health endpoint and the session reaper",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	cmd.SetContext(ctx)

	cfg, logger, conn, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer conn.Close()

	repos := repository.NewRepository(conn)

	if cfg.App.SeedOnStart {
		if _, err := seed.IfEmpty(ctx, repos, logger); err != nil {
			logger.Error("failed to seed catalog", zap.Error(err))
		}
	}

	memory := cache.NewCache()
	sessions, closeSessions, err := sessionStore(ctx, cfg.Session, memory)
	if err != nil {
		return err
	}
	defer closeSessions()

	services := service.InitServices(repos, sessions, logger,
		service.WithQuestionsPerQuiz(cfg.App.QuestionsPerQuiz),
		service.WithIdleTTL(cfg.Session.IdleTTL),
	)

	handler, err := bot.NewTelegramAPI(cfg.BotToken, bot.Options{
		Env:     cfg.Env,
		Timeout: cfg.App.Timeout,
		IsAdmin: cfg.IsAdmin,
	}, services, memory, logger)
	if err != nil {
		return fmt.Errorf("failed init telegram api: %w", err)
	}

	httpServer := server.New(cfg.HTTP.Port, server.NewRouter(cfg.Env), logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return handler.Start(gctx) })
	g.Go(func() error { return httpServer.Run(gctx) })
	g.Go(func() error { return services.RunReaper(gctx, cfg.Session.ReapInterval) })

	logger.Info("conceptbot started", zap.String("env", cfg.Env), zap.String("sessions", cfg.Session.Backend))

	if err := g.Wait(); err != nil {
		logger.Error("conceptbot stopped with error", zap.Error(err))
		return err
	}

	logger.Info("conceptbot stopped")
	return nil
}

// sessionStore picks where quiz sessions live. The memory cache doubles as
// the store for pending text input regardless of the backend.
func sessionStore(ctx context.Context, cfg config.SessionConfig, memory *cache.Cache) (service.SessionStore, func(), error) {
	if cfg.Backend != "redis" {
		return memory, func() {}, nil
	}

	sessions, client, err := cache.NewRedisSessions(ctx, cfg.Redis, cfg.IdleTTL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed init redis sessions: %w", err)
	}
	return sessions, func() { client.Close() }, nil
}
