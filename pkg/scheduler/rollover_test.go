package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sbksba/weektask/pkg/clock"
)

type stubStore struct {
	calls int
	err   error
}

func (s *stubStore) Rollover(context.Context) (int64, error) {
	s.calls++
	return 2, s.err
}

func TestTickNoopWithinSameDay(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC))
	store := &stubStore{}
	s := New(store, clk, time.Minute)

	s.tick(context.Background())
	clk.Advance(6 * time.Hour) // still March 4th
	s.tick(context.Background())

	assert.Equal(t, 0, store.calls)
}

func TestTickFiresOncePerNewDay(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2026, 3, 4, 23, 0, 0, 0, time.UTC))
	store := &stubStore{}
	s := New(store, clk, time.Minute)

	clk.Advance(2 * time.Hour) // into March 5th
	s.tick(context.Background())
	s.tick(context.Background())

	assert.Equal(t, 1, store.calls, "one rollover per day change")

	clk.Advance(24 * time.Hour) // March 6th
	s.tick(context.Background())
	assert.Equal(t, 2, store.calls)
}

func TestTickRetriesAfterFailure(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2026, 3, 4, 23, 0, 0, 0, time.UTC))
	store := &stubStore{err: errors.New("database is locked")}
	s := New(store, clk, time.Minute)

	clk.Advance(2 * time.Hour)
	s.tick(context.Background())
	assert.Equal(t, 1, store.calls)

	// The failed day is not marked done, so the next tick tries again.
	store.err = nil
	s.tick(context.Background())
	s.tick(context.Background())
	assert.Equal(t, 2, store.calls)
}

func TestRunStopsOnCancel(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC))
	s := New(&stubStore{}, clk, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
