// internal/infra/database/postgres_journal.go
package database

import (
	"context"
	"database/sql"
	"fmt"

	"homework_status_bot/internal/domain/notification"
)

type PostgresJournal struct {
	db *sql.DB
}

func NewPostgresJournal(db *sql.DB) *PostgresJournal {
	return &PostgresJournal{db: db}
}

// Record inserts a delivery attempt and fills in its ID and CreatedAt.
func (r *PostgresJournal) Record(ctx context.Context, entry *notification.Entry) error {
	query := `INSERT INTO notification_journal (chat_id, kind, message, delivered, error)
               VALUES ($1, $2, $3, $4, $5)
               RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, entry.ChatID, entry.Kind, entry.Message, entry.Delivered, entry.Error).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("error recording notification: %w", err)
	}
	return nil
}
