package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"shelfbot/core/catalog"
	"shelfbot/core/config"
	"shelfbot/core/database"
	"shelfbot/core/dialog"
	"shelfbot/core/logger"
	"shelfbot/core/telegram"
)

const defaultConfigPath = "config.yaml"

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = defaultConfigPath
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := logger.Init(logger.Options{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Dir:     cfg.Logging.Dir,
		File:    cfg.Logging.File,
		Profile: cfg.Logging.Profile,
	}); err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() {
		if err := logger.Shutdown(); err != nil {
			log.Printf("logger shutdown: %v", err)
		}
	}()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.Database); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	engine := dialog.NewEngine(
		catalog.NewPostgresWorks(db),
		catalog.NewPostgresChapters(db),
		dialog.NewSessions(),
	)

	sender := telegram.NewSender(telegram.SenderOptions{})
	defer sender.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := telegram.Run(ctx, telegram.Options{
		Token:                  cfg.Telegram.Token,
		LongPollTimeoutSeconds: cfg.Telegram.LongPollTimeoutSeconds,
		Engine:                 engine,
		Sender:                 sender,
	}); err != nil {
		log.Fatalf("telegram: %v", err)
	}
}
