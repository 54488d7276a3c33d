package config

import (
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"

	"homework_status_bot/internal/domain/apperror"

	"github.com/joho/godotenv"
)

const (
	defaultEndpoint     = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	defaultPollSchedule = "@every 10m" // 600 seconds between polls
	defaultHTTPTimeout  = 30 * time.Second
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken    string
	TelegramToken     string
	TelegramChatID    int64
	PracticumEndpoint string
	PollSchedule      string // robfig/cron spec, e.g. "@every 10m"
	HTTPTimeout       time.Duration
	DatabaseURL       string // Optional, enables the delivery journal
	LogLevel          string
	Environment       string
}

// Load reads configuration from environment variables and .env file (if present).
// A missing secret yields an apperror of kind ConfigMissing.
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	if cfg.PracticumToken, err = required("PRACTICUM_TOKEN"); err != nil {
		return nil, err
	}
	if cfg.TelegramToken, err = required("TELEGRAM_TOKEN"); err != nil {
		return nil, err
	}

	chatIDStr, err := required("TELEGRAM_CHAT_ID")
	if err != nil {
		return nil, err
	}
	cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, &apperror.Error{
			Kind:  apperror.KindConfigMissing,
			Field: "TELEGRAM_CHAT_ID",
			Msg:   "invalid environment variable",
			Err:   err,
		}
	}

	cfg.PracticumEndpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.PracticumEndpoint == "" {
		cfg.PracticumEndpoint = defaultEndpoint
	}

	cfg.PollSchedule = os.Getenv("POLL_SCHEDULE")
	if cfg.PollSchedule == "" {
		cfg.PollSchedule = defaultPollSchedule
	}

	cfg.HTTPTimeout = defaultHTTPTimeout
	if timeoutStr := os.Getenv("HTTP_TIMEOUT"); timeoutStr != "" {
		cfg.HTTPTimeout, err = time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
		}
		if cfg.HTTPTimeout <= 0 {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT: must be positive, got %s", cfg.HTTPTimeout)
		}
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}

func required(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", apperror.New(apperror.KindConfigMissing, name, "environment variable is not set")
	}
	return value, nil
}
