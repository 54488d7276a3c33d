// internal/domain/notification/repository.go
package notification

import "context"

// Journal is an append-only log of delivery attempts.
// It is never read back to restore the polling state.
type Journal interface {
	Record(ctx context.Context, entry *Entry) error
}
