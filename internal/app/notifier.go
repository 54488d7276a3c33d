// internal/app/notifier.go
package app

import (
	"context"
	"database/sql"

	"homework_status_bot/internal/domain/apperror"
	"homework_status_bot/internal/domain/notification"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// Notifier delivers messages to the single configured chat.
type Notifier struct {
	telegramClient domainTelegram.Client
	chatID         int64
	journal        notification.Journal // nil disables journaling
	logger         *logrus.Entry
}

func NewNotifier(tc domainTelegram.Client, chatID int64, journal notification.Journal, logger *logrus.Entry) *Notifier {
	return &Notifier{
		telegramClient: tc,
		chatID:         chatID,
		journal:        journal,
		logger:         logger,
	}
}

// Notify sends text to the chat. A failed send is logged and returned as DeliveryFailed.
func (n *Notifier) Notify(ctx context.Context, kind notification.Kind, text string) error {
	logCtx := n.logger.WithFields(logrus.Fields{
		"chat_id": n.chatID,
		"kind":    kind,
	})

	entry := &notification.Entry{ChatID: n.chatID, Kind: kind, Message: text}

	var deliveryErr error
	if err := n.telegramClient.SendMessage(ctx, n.chatID, text); err != nil {
		logCtx.WithError(err).Error("Message not sent")
		deliveryErr = apperror.Wrap(apperror.KindDeliveryFailed, err, "message not sent")
		entry.Error = sql.NullString{String: err.Error(), Valid: true}
	} else {
		logCtx.Debug("Message sent")
		entry.Delivered = true
	}

	if n.journal != nil {
		if err := n.journal.Record(ctx, entry); err != nil {
			logCtx.WithError(err).Warn("Failed to record notification in journal")
		}
	}
	return deliveryErr
}
