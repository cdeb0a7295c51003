package domain

import (
	"encoding/json"
	"strings"
)

// EventKind is the closed set of gateway webhook event types this service
// dispatches on. Anything it does not recognize is EventUnknown and gets
// acknowledged without further action.
type EventKind string

const (
	EventTransactionCreated EventKind = "transaction.created"
	EventTransactionPaid    EventKind = "transaction.paid"
	EventTransactionFailed  EventKind = "transaction.failed"
	EventWithdrawal         EventKind = "withdrawal"
	EventUnknown            EventKind = "unknown"
)

// ParseEventKind classifies a raw event-type string. All withdrawal.*
// events collapse into EventWithdrawal: they belong to the gateway
// operator's payout lifecycle, not to order tracking.
func ParseEventKind(raw string) EventKind {
	switch raw {
	case string(EventTransactionCreated):
		return EventTransactionCreated
	case string(EventTransactionPaid):
		return EventTransactionPaid
	case string(EventTransactionFailed):
		return EventTransactionFailed
	}
	if strings.HasPrefix(raw, "withdrawal.") {
		return EventWithdrawal
	}
	return EventUnknown
}

type WebhookCustomer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
}

// WebhookEvent is the inbound gateway event envelope.
type WebhookEvent struct {
	Event         string           `json:"event"`
	TransactionID string           `json:"transactionId"`
	ExternalRef   string           `json:"externalRef"`
	Status        string           `json:"status"`
	Amount        int64            `json:"amount"`
	NetAmount     int64            `json:"netAmount"`
	Fee           int64            `json:"fee"`
	PaidAt        string           `json:"paidAt"`
	Customer      *WebhookCustomer `json:"customer"`
	Metadata      string           `json:"metadata"`
}

func (e *WebhookEvent) Kind() EventKind {
	return ParseEventKind(e.Event)
}

// OrderID resolves the correlation key for the event: the external
// reference when the gateway echoed it, else the transaction id.
func (e *WebhookEvent) OrderID() string {
	if e.ExternalRef != "" {
		return e.ExternalRef
	}
	return e.TransactionID
}

// ChargeMetadata is the structure serialized into the gateway's opaque
// metadata string at charge time and recovered from webhooks when the
// correlation store has lost state.
type ChargeMetadata struct {
	OrderID        string          `json:"orderId"`
	TrackingParams *TrackingParams `json:"trackingParams"`
}

// ParseMetadataTracking extracts tracking parameters from a webhook's
// metadata string. It accepts the nested trackingParams shape first and a
// flat tracking block as fallback; unparseable input yields an all-null
// block so webhook processing never fails on metadata.
func ParseMetadataTracking(metadata string) *TrackingParams {
	if metadata == "" {
		return &TrackingParams{}
	}

	var meta ChargeMetadata
	if err := json.Unmarshal([]byte(metadata), &meta); err == nil && meta.TrackingParams != nil {
		return meta.TrackingParams
	}

	var flat TrackingParams
	if err := json.Unmarshal([]byte(metadata), &flat); err == nil && !flat.IsEmpty() {
		return &flat
	}

	return &TrackingParams{}
}
