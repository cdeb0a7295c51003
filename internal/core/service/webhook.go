package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/storefront-br/pix-checkout-bridge/internal/core/domain"
	"github.com/storefront-br/pix-checkout-bridge/internal/core/ports"
)

// WebhookService processes gateway payment events. Every recognized or
// safely ignorable event is acknowledged so the gateway does not retry
// events this service cannot act on differently; attribution failures are
// logged and never surface as webhook failures.
type WebhookService struct {
	store       ports.TrackingStore
	attribution ports.AttributionPort
	logger      *slog.Logger
}

func NewWebhookService(
	store ports.TrackingStore,
	attribution ports.AttributionPort,
	logger *slog.Logger,
) *WebhookService {
	return &WebhookService{
		store:       store,
		attribution: attribution,
		logger:      logger,
	}
}

// Process dispatches one webhook event and returns the acknowledgment
// message for the gateway.
func (s *WebhookService) Process(ctx context.Context, event *domain.WebhookEvent) string {
	kind := event.Kind()
	orderID := event.OrderID()

	switch kind {
	case domain.EventTransactionCreated:
		// The waiting_payment event already went out at checkout time.
		return "transaction creation acknowledged"

	case domain.EventTransactionPaid:
		s.handlePaid(ctx, orderID, event)
		return "payment processed"

	case domain.EventTransactionFailed:
		s.handleFailed(ctx, orderID, event)
		return "failure processed"

	case domain.EventWithdrawal:
		// Payout lifecycle of the gateway operator, irrelevant to order
		// tracking.
		return "withdrawal event acknowledged"

	default:
		s.logger.Info("ignoring unknown webhook event",
			"event", event.Event,
			"transaction_id", event.TransactionID,
		)
		return "event ignored"
	}
}

func (s *WebhookService) handlePaid(ctx context.Context, orderID string, event *domain.WebhookEvent) {
	tracking := s.resolveTracking(ctx, orderID, event)

	approvedAt, ok := domain.ParseGatewayTime(event.PaidAt)
	if !ok {
		approvedAt = time.Now()
	}

	paidEvent := buildPaidEvent(orderID, event, tracking, approvedAt, time.Now())
	if err := s.attribution.SubmitOrderEvent(ctx, paidEvent); err != nil {
		s.logger.Error("failed to submit paid event",
			"order_id", orderID,
			"transaction_id", event.TransactionID,
			"error", err,
		)
		return
	}

	// Terminal cleanup only after the attribution event went out, so a
	// gateway redelivery can still recover the tracking block.
	if err := s.store.Delete(ctx, orderID); err != nil {
		s.logger.Error("failed to delete tracking params",
			"order_id", orderID,
			"error", err,
		)
	}
}

func (s *WebhookService) handleFailed(ctx context.Context, orderID string, event *domain.WebhookEvent) {
	tracking := s.resolveTracking(ctx, orderID, event)

	refusedEvent := buildRefusedEvent(orderID, event, tracking, time.Now())
	if err := s.attribution.SubmitOrderEvent(ctx, refusedEvent); err != nil {
		s.logger.Error("failed to submit refused event",
			"order_id", orderID,
			"transaction_id", event.TransactionID,
			"error", err,
		)
	}

	// Failed charges are terminal either way; drop the record even when
	// the attribution call failed.
	if err := s.store.Delete(ctx, orderID); err != nil {
		s.logger.Error("failed to delete tracking params",
			"order_id", orderID,
			"error", err,
		)
	}
}

// resolveTracking recovers the tracking block for an order: correlation
// store first, charge metadata as the durable fallback for store loss
// (restart, failover to another replica on the memory driver).
func (s *WebhookService) resolveTracking(ctx context.Context, orderID string, event *domain.WebhookEvent) *domain.TrackingParams {
	if orderID != "" {
		params, found, err := s.store.Get(ctx, orderID)
		if err != nil {
			s.logger.Error("tracking store lookup failed",
				"order_id", orderID,
				"error", err,
			)
		} else if found {
			return &params
		}
	}
	return domain.ParseMetadataTracking(event.Metadata)
}
