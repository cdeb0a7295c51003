package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

type mockReapableStore struct {
	deleteExpiredFn func(ctx context.Context, olderThan time.Duration) (int64, error)
	calls           atomic.Int64
}

func (m *mockReapableStore) DeleteExpired(ctx context.Context, olderThan time.Duration) (int64, error) {
	m.calls.Add(1)
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx, olderThan)
	}
	return 0, nil
}

func TestCleanupWorker_ReapPassesTTL(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var gotTTL time.Duration
	store := &mockReapableStore{
		deleteExpiredFn: func(ctx context.Context, olderThan time.Duration) (int64, error) {
			gotTTL = olderThan
			return 3, nil
		},
	}

	w := NewCleanupWorker(store, time.Minute, 72*time.Hour, logger)
	w.reapExpired(context.Background())

	if gotTTL != 72*time.Hour {
		t.Errorf("expected ttl 72h, got %s", gotTTL)
	}
}

func TestCleanupWorker_StoreErrorDoesNotStopWorker(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := &mockReapableStore{
		deleteExpiredFn: func(ctx context.Context, olderThan time.Duration) (int64, error) {
			return 0, errors.New("connection reset")
		},
	}

	w := NewCleanupWorker(store, time.Minute, time.Hour, logger)

	// Must not panic; the next tick should still be able to reap.
	w.reapExpired(context.Background())
	w.reapExpired(context.Background())

	if got := store.calls.Load(); got != 2 {
		t.Errorf("expected 2 reap attempts, got %d", got)
	}
}

func TestCleanupWorker_StopsOnContextCancel(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := &mockReapableStore{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	w := NewCleanupWorker(store, 10*time.Millisecond, time.Hour, logger)
	go func() {
		w.Start(ctx)
		close(done)
	}()

	time.Sleep(35 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}

	if store.calls.Load() == 0 {
		t.Error("expected at least one reap tick before cancellation")
	}
}
