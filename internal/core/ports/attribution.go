package ports

import (
	"context"

	"github.com/storefront-br/pix-checkout-bridge/internal/core/domain"
)

// AttributionPort submits order lifecycle events to the marketing
// attribution service. Failures return to the caller; callers must treat
// attribution as a best-effort side channel and never let it fail the
// primary operation.
type AttributionPort interface {
	SubmitOrderEvent(ctx context.Context, event domain.OrderEvent) error
}
