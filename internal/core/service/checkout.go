package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/storefront-br/pix-checkout-bridge/internal/core/domain"
	"github.com/storefront-br/pix-checkout-bridge/internal/core/ports"
)

// PostbackPath is the route the gateway posts payment webhooks to,
// appended to the configured application base URL.
const PostbackPath = "/api/webhooks/payment"

const pixExpiryDays = 1

// CheckoutService turns a storefront order into a PIX charge. It owns the
// whole create-charge sequence: validation, order id generation, tracking
// persistence, unit conversion, the gateway call and the initial
// attribution event.
type CheckoutService struct {
	store       ports.TrackingStore
	gateway     ports.GatewayPort
	attribution ports.AttributionPort
	appBaseURL  string
	logger      *slog.Logger
}

func NewCheckoutService(
	store ports.TrackingStore,
	gateway ports.GatewayPort,
	attribution ports.AttributionPort,
	appBaseURL string,
	logger *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		store:       store,
		gateway:     gateway,
		attribution: attribution,
		appBaseURL:  appBaseURL,
		logger:      logger,
	}
}

func (s *CheckoutService) Checkout(ctx context.Context, order *domain.Order, tracking *domain.TrackingParams) (*domain.CheckoutResult, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	orderID := domain.NewOrderID()

	// The store write happens before the gateway call so a webhook that
	// races the checkout response can already resolve the tracking block.
	// A failed write is logged, not fatal: the charge metadata below is
	// the durable fallback.
	if !tracking.IsEmpty() {
		if err := s.store.Save(ctx, orderID, *tracking); err != nil {
			s.logger.Error("failed to save tracking params",
				"order_id", orderID,
				"error", err,
			)
		}
	}

	chargeReq := s.buildChargeRequest(orderID, order, tracking)

	charge, err := s.gateway.CreateCharge(ctx, chargeReq)
	if err != nil {
		s.logger.Error("gateway charge creation failed",
			"order_id", orderID,
			"error", err,
		)
		return nil, err
	}

	// Attribution is a best-effort side channel: a failure here is logged
	// and the checkout still succeeds from the storefront's perspective.
	event := buildWaitingEvent(orderID, order, charge, tracking, time.Now())
	if err := s.attribution.SubmitOrderEvent(ctx, event); err != nil {
		s.logger.Error("failed to submit waiting_payment event",
			"order_id", orderID,
			"transaction_id", charge.ID,
			"error", err,
		)
	}

	return &domain.CheckoutResult{
		OrderID:       orderID,
		TransactionID: charge.ID,
		Pix:           pixFromCharge(charge),
	}, nil
}

func (s *CheckoutService) buildChargeRequest(orderID string, order *domain.Order, tracking *domain.TrackingParams) domain.ChargeRequest {
	items := make([]domain.ChargeItem, 0, len(order.Items)+1)
	for _, item := range order.Items {
		items = append(items, domain.ChargeItem{
			Title:     item.Name,
			UnitPrice: domain.ToCents(item.Price),
			Quantity:  item.Quantity,
			Tangible:  true,
		})
	}
	if order.Shipping.Price > 0 {
		items = append(items, domain.ChargeItem{
			Title:     shippingTitle(order.Shipping.Carrier),
			UnitPrice: domain.ToCents(order.Shipping.Price),
			Quantity:  1,
			Tangible:  false,
		})
	}

	docType := order.Customer.DocumentType
	if docType == "" {
		docType = "cpf"
	}

	phone := digitsOnly(order.Customer.Phone)
	phoneStr := ""
	if phone != nil {
		phoneStr = *phone
	}

	return domain.ChargeRequest{
		Amount:        domain.ToCents(order.Total),
		Currency:      currencyBRL,
		PaymentMethod: paymentMethod,
		Items:         items,
		Customer: domain.ChargeCustomer{
			Name:  order.Customer.Name,
			Email: order.Customer.Email,
			Phone: phoneStr,
			Document: domain.ChargeDocument{
				Number: order.Customer.Document,
				Type:   docType,
			},
		},
		Shipping: domain.ChargeShipping{
			Street:       order.Address.Street,
			Number:       order.Address.Number,
			Complement:   order.Address.Complement,
			Neighborhood: order.Address.Neighborhood,
			City:         order.Address.City,
			State:        order.Address.State,
			ZipCode:      order.Address.ZipCode,
		},
		Pix:         domain.ChargePixConfig{ExpiresInDays: pixExpiryDays},
		PostbackURL: s.appBaseURL + PostbackPath,
		ExternalRef: orderID,
		Metadata:    encodeMetadata(orderID, tracking),
	}
}

// encodeMetadata serializes the correlation record into the charge so the
// gateway echoes it back on webhooks. Serialization of plain strings and
// pointers cannot fail; the empty-string fallback is for form only.
func encodeMetadata(orderID string, tracking *domain.TrackingParams) string {
	meta := domain.ChargeMetadata{
		OrderID:        orderID,
		TrackingParams: tracking,
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return ""
	}
	return string(raw)
}

// pixFromCharge prefers the copy-paste string over the raw QR payload.
func pixFromCharge(charge *domain.ChargeResponse) domain.CheckoutPix {
	qrcode := charge.Pix.CopyPaste
	if qrcode == "" {
		qrcode = charge.Pix.QRCode
	}
	return domain.CheckoutPix{
		QRCode:       qrcode,
		QRCodeBase64: charge.Pix.QRCodeBase64,
		ExpiresAt:    charge.Pix.ExpiresAt,
	}
}

func shippingTitle(carrier string) string {
	if carrier == "" {
		return "Frete"
	}
	return "Frete - " + carrier
}
