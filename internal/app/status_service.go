// internal/app/status_service.go
package app

import (
	"context"
	"encoding/json"
	"fmt"

	"homework_status_bot/internal/domain/apperror"
	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/domain/notification"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// failurePrefix starts every diagnostic message sent to the chat.
const failurePrefix = "Сбой в работе программы: "

// StatusFetcher returns the raw homework statuses changed since fromDate.
type StatusFetcher interface {
	GetStatuses(ctx context.Context, fromDate int64) (json.RawMessage, error)
}

// Waiter blocks until the next poll cycle is due.
type Waiter interface {
	Wait(ctx context.Context) error
}

// PollState is carried from one poll cycle to the next.
type PollState struct {
	Timestamp   int64  // Cursor sent as from_date, never rewound
	LastMessage string // Last message delivered to the chat
}

// StatusService runs the polling loop.
type StatusService struct {
	fetcher  StatusFetcher
	notifier *Notifier
	waiter   Waiter
	logger   *logrus.Entry
}

func NewStatusService(fetcher StatusFetcher, notifier *Notifier, waiter Waiter, logger *logrus.Entry) *StatusService {
	return &StatusService{
		fetcher:  fetcher,
		notifier: notifier,
		waiter:   waiter,
		logger:   logger,
	}
}

// Run repeats Cycle until ctx is done, waiting between cycles whatever their outcome.
func (s *StatusService) Run(ctx context.Context, state PollState) error {
	s.logger.WithField("from_date", state.Timestamp).Info("Status polling started")
	for {
		state = s.Cycle(ctx, state)
		if err := s.waiter.Wait(ctx); err != nil {
			s.logger.WithError(err).Info("Status polling stopped")
			return err
		}
	}
}

// Cycle performs one fetch, validate, format and notify pass and returns the next state.
// The cursor only moves forward after every record in the response formatted successfully.
func (s *StatusService) Cycle(ctx context.Context, state PollState) PollState {
	logCtx := s.logger.WithFields(logrus.Fields{
		"cycle_id":  uuid.NewString(),
		"from_date": state.Timestamp,
	})

	messages, currentDate, err := s.collect(ctx, state.Timestamp)
	if err != nil {
		if ctx.Err() != nil {
			logCtx.WithError(err).Info("Poll cycle interrupted")
			return state
		}
		logCtx.WithError(err).WithField("error_kind", apperror.KindOf(err)).Error("Poll cycle failed")
		return s.deliver(ctx, logCtx, state, notification.KindFailure, failurePrefix+err.Error())
	}

	if len(messages) == 0 {
		logCtx.Debug("No new homework statuses")
	}
	for _, msg := range messages {
		state = s.deliver(ctx, logCtx, state, notification.KindStatus, msg)
	}

	if currentDate < state.Timestamp {
		logCtx.WithField("current_date", currentDate).Warn("current_date is behind the cursor, keeping cursor")
	} else {
		state.Timestamp = currentDate
	}
	return state
}

// collect fetches and validates a response and formats every record in it.
func (s *StatusService) collect(ctx context.Context, fromDate int64) ([]string, int64, error) {
	raw, err := s.fetcher.GetStatuses(ctx, fromDate)
	if err != nil {
		return nil, 0, err
	}

	resp, err := homework.CheckResponse(raw)
	if err != nil {
		return nil, 0, err
	}

	messages := make([]string, 0, len(resp.Homeworks))
	for i, hw := range resp.Homeworks {
		msg, err := homework.ParseStatus(hw)
		if err != nil {
			return nil, 0, fmt.Errorf("homework #%d: %w", i, err)
		}
		messages = append(messages, msg)
	}
	return messages, resp.CurrentDate, nil
}

// deliver sends text unless it repeats the last delivered message.
func (s *StatusService) deliver(ctx context.Context, logCtx *logrus.Entry, state PollState, kind notification.Kind, text string) PollState {
	if text == state.LastMessage {
		logCtx.WithField("kind", kind).Debug("Message repeats the previous one, not sending")
		return state
	}
	if err := s.notifier.Notify(ctx, kind, text); err != nil {
		// Already logged by the notifier; the same text is retried next time it comes up.
		return state
	}
	state.LastMessage = text
	return state
}
