package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"todo-assistant/config"
	_ "todo-assistant/docs" // Swagger docs
	tgDelivery "todo-assistant/internal/agent/delivery/telegram"
	"todo-assistant/internal/app"
	"todo-assistant/internal/httpserver"
	"todo-assistant/pkg/log"
	"todo-assistant/pkg/telegram"
)

// @title       Todo Assistant API
// @description Conversational todo list manager: rule-based intent classification, call notation and optional LLM fallback.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Todo Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Assistant pipeline
	assistant, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to build assistant: %v", err)
		os.Exit(1)
	}

	limiter, err := app.NewLimiter(cfg.RateLimit)
	if err != nil {
		logger.Errorf(ctx, "Failed to build rate limiter: %v", err)
		os.Exit(1)
	}

	// 4. Telegram delivery, optional
	var telegramHandler tgDelivery.Handler
	var telegramBot *telegram.Bot
	if cfg.Telegram.BotToken != "" {
		telegramBot = telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, assistant.Orchestrator, telegramBot, cfg.Telegram.SecretToken)
		logger.Info(ctx, "Telegram delivery enabled")
	} else {
		logger.Info(ctx, "Telegram delivery skipped: TELEGRAM_BOT_TOKEN is not set")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Assistant:       assistant.Orchestrator,
		Registry:        assistant.Registry,
		Limiter:         limiter,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		os.Exit(1)
	}

	// 6. Run
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpServer.Run(gctx)
	})
	if telegramBot != nil {
		g.Go(func() error {
			registerWebhook(gctx, logger, telegramBot, cfg.Telegram)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Errorf(ctx, "Server stopped with error: %v", err)
		os.Exit(1)
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}

// registerWebhook points Telegram at this server. Without a configured URL it
// tries the ngrok local API. Failures are logged; the HTTP API keeps serving.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPIURL != "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPIURL, ngrokAttempts, ngrokInterval)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}
	if webhookURL == "" {
		logger.Warn(ctx, "Telegram webhook URL unknown, updates will not arrive")
		return
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.SecretToken); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
