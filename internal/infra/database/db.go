package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const (
	defaultMaxOpenConns    = 2
	defaultMaxIdleConns    = 1
	defaultConnMaxLifetime = 5 * time.Minute
	defaultConnMaxIdleTime = 1 * time.Minute
)

const journalSchema = `CREATE TABLE IF NOT EXISTS notification_journal (
	id         BIGSERIAL PRIMARY KEY,
	chat_id    BIGINT      NOT NULL,
	kind       TEXT        NOT NULL,
	message    TEXT        NOT NULL,
	delivered  BOOLEAN     NOT NULL,
	error      TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// NewPostgresConnection creates and returns a new PostgreSQL database connection.
// It also pings the database to ensure connectivity.
func NewPostgresConnection(ctx context.Context, dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// The bot writes at most a few rows per poll cycle.
	db.SetMaxOpenConns(defaultMaxOpenConns)
	db.SetMaxIdleConns(defaultMaxIdleConns)
	db.SetConnMaxLifetime(defaultConnMaxLifetime)
	db.SetConnMaxIdleTime(defaultConnMaxIdleTime)

	if err = db.PingContext(ctx); err != nil {
		db.Close() // Close the connection if ping fails
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// EnsureJournalSchema creates the journal table when it does not exist yet.
func EnsureJournalSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, journalSchema); err != nil {
		return fmt.Errorf("failed to create notification_journal table: %w", err)
	}
	return nil
}
