// Package scheduler runs the automatic daily rollover. A ticker checks
// the calendar on a fixed interval and fires the rollover once whenever
// a new UTC day has started, so unfinished tasks migrate forward without
// any caller involvement.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/sbksba/weektask/pkg/clock"
	"github.com/sbksba/weektask/pkg/models"
)

// Rolloverer advances today's active tasks to tomorrow. Satisfied by
// repository.TaskRepository.
type Rolloverer interface {
	Rollover(ctx context.Context) (int64, error)
}

type Scheduler struct {
	store    Rolloverer
	clock    clock.Clock
	interval time.Duration

	// lastDate is the most recent day a rollover completed for. Touched
	// only by the Run goroutine.
	lastDate models.Date
}

func New(store Rolloverer, c clock.Clock, interval time.Duration) *Scheduler {
	return &Scheduler{
		store:    store,
		clock:    c,
		interval: interval,
		lastDate: models.NewDate(c.Now()),
	}
}

// Run blocks until ctx is cancelled, rolling tasks forward once per new day.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick fires the rollover when the day has changed since the last
// completed run. On failure lastDate is left alone so the next tick
// retries.
func (s *Scheduler) tick(ctx context.Context) {
	current := models.NewDate(s.clock.Now())
	if !s.lastDate.Before(current) {
		return
	}

	count, err := s.store.Rollover(ctx)
	if err != nil {
		log.Printf("automatic rollover failed: %v", err)
		return
	}

	log.Printf("rolled over %d tasks for %s", count, current)
	s.lastDate = current
}
