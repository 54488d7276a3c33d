package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// PollSchedule decides when the next poll cycle starts.
// It only computes activation times; the caller's loop stays single-threaded.
type PollSchedule struct {
	spec     string
	schedule cron.Schedule
	logger   *logrus.Entry
	now      func() time.Time
}

// NewPollSchedule parses a standard cron spec or descriptor, e.g. "@every 10m" or "*/10 * * * *".
func NewPollSchedule(spec string, logger *logrus.Entry) (*PollSchedule, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid poll schedule %q: %w", spec, err)
	}
	return &PollSchedule{
		spec:     spec,
		schedule: schedule,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Next returns the first activation strictly after from.
func (s *PollSchedule) Next(from time.Time) time.Time {
	return s.schedule.Next(from)
}

// Wait blocks until the next activation or until ctx is done.
func (s *PollSchedule) Wait(ctx context.Context) error {
	now := s.now()
	next := s.Next(now)
	s.logger.WithField("next_poll", next.Format(time.RFC3339)).Debug("Waiting for next poll")

	timer := time.NewTimer(next.Sub(now))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *PollSchedule) String() string {
	return s.spec
}
