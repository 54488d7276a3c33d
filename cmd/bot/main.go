package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/notification"
	"homework_status_bot/internal/infra/config"
	idb "homework_status_bot/internal/infra/database"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"
)

func main() {
	fmt.Println("Homework Status Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		// Nothing has touched the network yet.
		logger.Log.WithError(err).Fatal("Required configuration is missing, stopping")
	}
	logger.Init(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		logger.Log.WithError(err).Error("Bot stopped with error")
		os.Exit(1)
	}
	logger.Log.Info("Bot shut down gracefully.")
}

func run(ctx context.Context, cfg *config.AppConfig) error {
	mainLogger := logger.Component("main")

	var journal notification.Journal
	if cfg.DatabaseURL != "" {
		db, err := idb.NewPostgresConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("could not connect to database: %w", err)
		}
		defer db.Close()
		if err := idb.EnsureJournalSchema(ctx, db); err != nil {
			return err
		}
		journal = idb.NewPostgresJournal(db)
		mainLogger.Info("Delivery journal enabled.")
	} else {
		mainLogger.Info("DATABASE_URL is not set, delivery journal disabled.")
	}

	bot, err := telegram.NewBot(cfg.TelegramToken, "", cfg.HTTPTimeout)
	if err != nil {
		return err
	}
	notifier := app.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, journal, logger.Component("notifier"))

	pollSchedule, err := scheduler.NewPollSchedule(cfg.PollSchedule, logger.Component("scheduler"))
	if err != nil {
		return err
	}

	client := practicum.NewClient(cfg.PracticumEndpoint, cfg.PracticumToken, cfg.HTTPTimeout, logger.Component("practicum"))
	service := app.NewStatusService(client, notifier, pollSchedule, logger.Component("status_service"))

	mainLogger.WithField("poll_schedule", pollSchedule.String()).Info("Application setup complete. Polling is starting...")
	return service.Run(ctx, app.PollState{Timestamp: time.Now().Unix()})
}
