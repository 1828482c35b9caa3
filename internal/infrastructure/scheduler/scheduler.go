// Package scheduler triggers catalog sync runs: once at startup and then at
// every midnight UTC.
package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/conexa/starwars-api/internal/api/metrics"
	"github.com/conexa/starwars-api/internal/core/ports"
)

type Scheduler struct {
	sync ports.SyncService
	log  zerolog.Logger
}

func NewScheduler(sync ports.SyncService, log zerolog.Logger) *Scheduler {
	return &Scheduler{sync: sync, log: log}
}

// Start launches the scheduling goroutine. The ctx stops future triggers
// only: a run already in flight always completes (runs get their own
// context, there is no mid-run cancel).
func (s *Scheduler) Start(ctx context.Context) {
	go s.loop(ctx)
}

func (s *Scheduler) loop(ctx context.Context) {
	s.runOnce()

	for {
		timer := time.NewTimer(untilNextMidnightUTC(time.Now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.runOnce()
		}
	}
}

// runOnce executes a single sync run. A failed run is terminal for that run
// only; the next trigger is the retry.
func (s *Scheduler) runOnce() {
	start := time.Now()
	result, err := s.sync.Run(context.Background())
	metrics.SyncDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.SyncRunsTotal.WithLabelValues("failure").Inc()
		s.log.Error().Err(err).Msg("scheduled catalog sync failed")
		return
	}

	metrics.SyncRunsTotal.WithLabelValues("success").Inc()
	metrics.SyncMoviesInsertedTotal.Add(float64(result.Inserted))
}

// untilNextMidnightUTC returns the wait until the next 00:00 UTC boundary.
func untilNextMidnightUTC(now time.Time) time.Duration {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return next.Sub(now)
}
