package app

import (
	"context"
	"encoding/json"
	"errors"

	"homework_status_bot/internal/domain/notification"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

type fakeTelegram struct {
	sent    []string
	chatIDs []int64
	fail    error
}

func (f *fakeTelegram) SendMessage(_ context.Context, chatID int64, text string) error {
	if f.fail != nil {
		return f.fail
	}
	f.sent = append(f.sent, text)
	f.chatIDs = append(f.chatIDs, chatID)
	return nil
}

type fakeJournal struct {
	entries []notification.Entry
	fail    error
}

func (f *fakeJournal) Record(_ context.Context, entry *notification.Entry) error {
	f.entries = append(f.entries, *entry)
	return f.fail
}

type fetchResult struct {
	body string
	err  error
}

// fakeFetcher replays results in order and repeats the last one when exhausted.
type fakeFetcher struct {
	results   []fetchResult
	fromDates []int64
}

func (f *fakeFetcher) GetStatuses(_ context.Context, fromDate int64) (json.RawMessage, error) {
	f.fromDates = append(f.fromDates, fromDate)
	i := len(f.fromDates) - 1
	if i >= len(f.results) {
		i = len(f.results) - 1
	}
	r := f.results[i]
	if r.err != nil {
		return nil, r.err
	}
	return json.RawMessage(r.body), nil
}

// fakeWaiter stops the loop on the n-th call.
type fakeWaiter struct {
	calls  int
	stopAt int
}

func (f *fakeWaiter) Wait(_ context.Context) error {
	f.calls++
	if f.calls >= f.stopAt {
		return context.Canceled
	}
	return nil
}

var errChatNotFound = errors.New("telegram: Bad Request: chat not found (400)")

func newTestLogger() (*logrus.Entry, *logtest.Hook) {
	l, hook := logtest.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	return logrus.NewEntry(l), hook
}

func countLevel(hook *logtest.Hook, level logrus.Level) int {
	n := 0
	for _, e := range hook.AllEntries() {
		if e.Level == level {
			n++
		}
	}
	return n
}
