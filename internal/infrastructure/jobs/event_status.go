package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"oysterkode.backend/internal/metrics"
	"oysterkode.backend/pkg/logger"
)

// PastEventMarker is the slice of the event repository the sweep needs.
type PastEventMarker interface {
	MarkPastAsCompleted(ctx context.Context, before time.Time) (int64, error)
}

// EventStatusJob marks upcoming events whose date has passed as completed
type EventStatusJob struct {
	repo     PastEventMarker
	interval time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

func NewEventStatusJob(repo PastEventMarker, interval time.Duration) *EventStatusJob {
	return &EventStatusJob{
		repo:     repo,
		interval: interval,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
}

// Start runs one sweep immediately and then one per interval until ctx is
// cancelled or Stop is called.
func (j *EventStatusJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting event status job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.process(ctx)
	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "event status job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "event status job stopped")
			return
		case <-ticker.C:
			j.process(ctx)
		}
	}
}

func (j *EventStatusJob) Stop() {
	j.stopOnce.Do(func() { close(j.stop) })
}

func (j *EventStatusJob) process(ctx context.Context) {
	n, err := j.repo.MarkPastAsCompleted(ctx, startOfDay(j.now()))
	if err != nil {
		metrics.EventSweepErrors.Inc()
		logger.Error(ctx, "event status sweep failed", zap.Error(err))
		return
	}
	if n == 0 {
		return
	}
	metrics.EventsCompletedTotal.Add(float64(n))
	logger.Info(ctx, "marked past events completed", zap.Int64("count", n))
}

// startOfDay truncates t to midnight UTC, matching how event dates are stored.
func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
