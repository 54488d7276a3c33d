// internal/domain/notification/entry.go
package notification

import (
	"database/sql"
	"time"
)

// Entry is one delivery attempt recorded in the journal.
// Corresponds to the 'notification_journal' table.
type Entry struct {
	ID        int64
	ChatID    int64
	Kind      Kind
	Message   string
	Delivered bool
	Error     sql.NullString // Delivery error, if any
	CreatedAt time.Time
}
