package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator"
	"github.com/storefront-br/pix-checkout-bridge/internal/core/domain"
	"github.com/storefront-br/pix-checkout-bridge/internal/core/service"
)

type CheckoutService interface {
	Checkout(ctx context.Context, order *domain.Order, tracking *domain.TrackingParams) (*domain.CheckoutResult, error)
}

type StatusService interface {
	GetStatus(ctx context.Context, transactionID string) (*domain.PaymentStatus, error)
	SellerProfile(ctx context.Context) (*domain.SellerProfile, error)
}

type WebhookService interface {
	Process(ctx context.Context, event *domain.WebhookEvent) string
}

type BridgeHandler struct {
	checkoutService CheckoutService
	statusService   StatusService
	webhookService  WebhookService
	webhookSecret   string
	validate        *validator.Validate
	logger          *slog.Logger
}

func NewBridgeHandler(
	checkoutService CheckoutService,
	statusService StatusService,
	webhookService WebhookService,
	webhookSecret string,
	logger *slog.Logger,
) *BridgeHandler {
	return &BridgeHandler{
		checkoutService: checkoutService,
		statusService:   statusService,
		webhookService:  webhookService,
		webhookSecret:   webhookSecret,
		validate:        validator.New(),
		logger:          logger,
	}
}

func (h *BridgeHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/checkout", h.HandleCheckout)
	mux.HandleFunc("GET /api/payment-status", h.HandleStatus)
	mux.HandleFunc("POST "+service.PostbackPath, h.HandleWebhook)
	mux.HandleFunc("GET /api/seller", h.HandleSeller)
	mux.HandleFunc("GET /healthz", h.HandleHealth)
}

func (h *BridgeHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
