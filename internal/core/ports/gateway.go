package ports

import (
	"context"

	"github.com/storefront-br/pix-checkout-bridge/internal/core/domain"
)

// GatewayPort defines the behavior of the external payment processor.
// Implementations never surface raw transport errors: every failure arrives
// as a typed gateway error carrying the processor's message when available.
type GatewayPort interface {
	CreateCharge(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResponse, error)
	GetStatus(ctx context.Context, transactionID string) (*domain.ChargeStatusResponse, error)
	GetSellerProfile(ctx context.Context) (*domain.SellerProfile, error)
}
