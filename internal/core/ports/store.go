package ports

import (
	"context"
	"time"

	"github.com/storefront-br/pix-checkout-bridge/internal/core/domain"
)

// TrackingStore associates an order id with the tracking parameters the
// checkout request carried, so the asynchronous webhook path can recover
// them. Entries live until a terminal payment event deletes them or the
// reaper expires them.
type TrackingStore interface {
	Save(ctx context.Context, orderID string, params domain.TrackingParams) error
	// Get returns the stored record and whether it was found. A miss is
	// not an error; webhook processing falls back to charge metadata.
	Get(ctx context.Context, orderID string) (domain.TrackingParams, bool, error)
	// Delete removes the record, a no-op when absent.
	Delete(ctx context.Context, orderID string) error
}

// ReapableStore is implemented by stores that can drop entries older than
// a retention window. The cleanup worker uses it to bound the growth of
// records whose terminal webhook never arrived.
type ReapableStore interface {
	DeleteExpired(ctx context.Context, olderThan time.Duration) (int64, error)
}
