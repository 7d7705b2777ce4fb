package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"vision-report/config"
	telegram "vision-report/internal/api"
	"vision-report/internal/container"
	"vision-report/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("info").Fatalf("Failed to load config: %v", err)
	}

	log := logging.New(cfg.LogLevel)

	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_TOKEN is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Каталоги загрузок и отчётов
	for _, dir := range []string{cfg.UploadDir, cfg.OutputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	// Собираем сервисы приложения
	appContainer, closeDB, err := container.FromConfig(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to build services: %v", err)
	}
	defer closeDB()

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer.UserService, appContainer.ReportService,
		cfg.UploadDir, cfg.OutputDir, log)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	log.Info("Bot is running...")
	if err := bot.Run(ctx); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
	log.Info("Bot stopped")
}
