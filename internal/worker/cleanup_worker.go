package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/storefront-br/pix-checkout-bridge/internal/core/ports"
)

// CleanupWorker periodically reaps tracking records whose terminal webhook
// never arrived. Without it the store grows without bound, since the
// normal lifecycle only deletes entries on paid/failed events.
type CleanupWorker struct {
	store    ports.ReapableStore
	interval time.Duration
	ttl      time.Duration
	logger   *slog.Logger
}

func NewCleanupWorker(
	store ports.ReapableStore,
	interval time.Duration,
	ttl time.Duration,
	logger *slog.Logger,
) *CleanupWorker {
	return &CleanupWorker{
		store:    store,
		interval: interval,
		ttl:      ttl,
		logger:   logger,
	}
}

func (w *CleanupWorker) Start(ctx context.Context) {
	w.logger.Info("cleanup worker started", "interval", w.interval, "ttl", w.ttl)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("cleanup worker stopping")
			return
		case <-ticker.C:
			w.reapExpired(ctx)
		}
	}
}

func (w *CleanupWorker) reapExpired(ctx context.Context) {
	removed, err := w.store.DeleteExpired(ctx, w.ttl)
	if err != nil {
		w.logger.Error("tracking cleanup failed", "error", err)
		return
	}
	if removed > 0 {
		w.logger.Info("expired tracking records removed", "count", removed)
	}
}
