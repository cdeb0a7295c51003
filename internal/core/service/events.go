package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/storefront-br/pix-checkout-bridge/internal/core/domain"
)

const (
	// platformTag identifies this storefront integration to the
	// attribution service.
	platformTag   = "pix-checkout-bridge"
	paymentMethod = "pix"
	currencyBRL   = "BRL"
)

// digitsOnly keeps only the numeric characters of a document or phone
// number, returning nil for an effectively empty value so the attribution
// payload carries null instead of "".
func digitsOnly(s string) *string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return nil
	}
	out := b.String()
	return &out
}

func eventCustomerFromOrder(c domain.Customer) domain.EventCustomer {
	return domain.EventCustomer{
		Name:     c.Name,
		Email:    c.Email,
		Phone:    digitsOnly(c.Phone),
		Document: digitsOnly(c.Document),
		Country:  "BR",
	}
}

func eventCustomerFromWebhook(c *domain.WebhookCustomer) domain.EventCustomer {
	if c == nil {
		return domain.EventCustomer{Country: "BR"}
	}
	return domain.EventCustomer{
		Name:     c.Name,
		Email:    c.Email,
		Phone:    digitsOnly(c.Phone),
		Document: digitsOnly(c.Document),
		Country:  "BR",
	}
}

func trackingOrEmpty(t *domain.TrackingParams) domain.TrackingParams {
	if t == nil {
		return domain.TrackingParams{}
	}
	return *t
}

// buildWaitingEvent is the attribution event fired right after a charge is
// created, while the PIX code is still unpaid.
func buildWaitingEvent(orderID string, order *domain.Order, charge *domain.ChargeResponse, tracking *domain.TrackingParams, now time.Time) domain.OrderEvent {
	products := make([]domain.EventProduct, 0, len(order.Items))
	for i, item := range order.Items {
		products = append(products, domain.EventProduct{
			ID:           orderItemID(orderID, i),
			Name:         item.Name,
			Quantity:     item.Quantity,
			PriceInCents: domain.ToCents(item.Price),
		})
	}

	return domain.OrderEvent{
		OrderID:            orderID,
		Platform:           platformTag,
		PaymentMethod:      paymentMethod,
		Status:             domain.EventWaitingPayment,
		CreatedAt:          domain.FormatEventDate(now),
		Customer:           eventCustomerFromOrder(order.Customer),
		Products:           products,
		TrackingParameters: trackingOrEmpty(tracking),
		Commission: domain.EventCommission{
			TotalPriceInCents:     charge.Amount,
			GatewayFeeInCents:     charge.Fee,
			UserCommissionInCents: charge.NetAmount,
			Currency:              currencyBRL,
		},
	}
}

// buildPaidEvent marks the order approved. approvedAt is the gateway's
// paid-at timestamp, or the processing time when the event omitted it.
func buildPaidEvent(orderID string, event *domain.WebhookEvent, tracking *domain.TrackingParams, approvedAt time.Time, now time.Time) domain.OrderEvent {
	return domain.OrderEvent{
		OrderID:            orderID,
		Platform:           platformTag,
		PaymentMethod:      paymentMethod,
		Status:             domain.EventPaid,
		CreatedAt:          domain.FormatEventDate(now),
		ApprovedDate:       domain.FormatEventDate(approvedAt),
		Customer:           eventCustomerFromWebhook(event.Customer),
		Products:           webhookProducts(orderID, event),
		TrackingParameters: trackingOrEmpty(tracking),
		Commission: domain.EventCommission{
			TotalPriceInCents:     event.Amount,
			GatewayFeeInCents:     event.Fee,
			UserCommissionInCents: event.NetAmount,
			Currency:              currencyBRL,
		},
	}
}

// buildRefusedEvent marks the order failed. Commission fields are zeroed:
// nothing settles on a refused charge.
func buildRefusedEvent(orderID string, event *domain.WebhookEvent, tracking *domain.TrackingParams, now time.Time) domain.OrderEvent {
	return domain.OrderEvent{
		OrderID:            orderID,
		Platform:           platformTag,
		PaymentMethod:      paymentMethod,
		Status:             domain.EventRefused,
		CreatedAt:          domain.FormatEventDate(now),
		Customer:           eventCustomerFromWebhook(event.Customer),
		Products:           webhookProducts(orderID, event),
		TrackingParameters: trackingOrEmpty(tracking),
		Commission: domain.EventCommission{
			Currency: currencyBRL,
		},
	}
}

// webhookProducts reconstructs a minimal product snapshot at webhook time.
// The original item list is gone by then; the charge total is all the
// gateway echoes back.
func webhookProducts(orderID string, event *domain.WebhookEvent) []domain.EventProduct {
	return []domain.EventProduct{
		{
			ID:           orderID,
			Name:         "Pedido " + orderID,
			Quantity:     1,
			PriceInCents: event.Amount,
		},
	}
}

func orderItemID(orderID string, index int) string {
	return fmt.Sprintf("%s-%d", orderID, index+1)
}
