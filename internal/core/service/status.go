package service

import (
	"context"

	"github.com/storefront-br/pix-checkout-bridge/internal/core/domain"
	"github.com/storefront-br/pix-checkout-bridge/internal/core/ports"
)

// StatusService answers storefront polling queries against the gateway.
type StatusService struct {
	gateway ports.GatewayPort
}

func NewStatusService(gateway ports.GatewayPort) *StatusService {
	return &StatusService{gateway: gateway}
}

func (s *StatusService) GetStatus(ctx context.Context, transactionID string) (*domain.PaymentStatus, error) {
	if transactionID == "" {
		return nil, domain.NewMissingParameterError("transactionId")
	}

	status, err := s.gateway.GetStatus(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	return &domain.PaymentStatus{
		TransactionID: status.ID,
		Status:        domain.MapStatus(status.Status),
		PaidAt:        status.PaidAt,
		EndToEndID:    status.EndToEndID,
	}, nil
}

// SellerProfile passes the gateway's seller block through for the
// storefront's checkout page.
func (s *StatusService) SellerProfile(ctx context.Context) (*domain.SellerProfile, error) {
	return s.gateway.GetSellerProfile(ctx)
}
