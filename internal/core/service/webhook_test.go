package service

import (
	"context"
	"errors"
	"testing"

	"github.com/storefront-br/pix-checkout-bridge/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWebhookFixture() (*WebhookService, *MockTrackingStore, *MockAttribution) {
	store := NewMockTrackingStore()
	attr := &MockAttribution{}
	svc := NewWebhookService(store, attr, testLogger())
	return svc, store, attr
}

func paidEvent() *domain.WebhookEvent {
	return &domain.WebhookEvent{
		Event:         "transaction.paid",
		TransactionID: "tx-123",
		ExternalRef:   "PED-1-ABCD",
		Status:        "PAID",
		Amount:        13970,
		NetAmount:     13870,
		Fee:           100,
		PaidAt:        "2026-03-14T15:09:26Z",
		Customer: &domain.WebhookCustomer{
			Name:     "Maria Silva",
			Email:    "maria@example.com",
			Phone:    "(11) 91234-5678",
			Document: "123.456.789-01",
		},
	}
}

func TestWebhookPaidSendsEventAndCleansUp(t *testing.T) {
	svc, store, attr := newWebhookFixture()

	require.NoError(t, store.Save(context.Background(), "PED-1-ABCD", domain.TrackingParams{
		UTMSource: strptr("facebook"),
	}))

	msg := svc.Process(context.Background(), paidEvent())
	assert.Equal(t, "payment processed", msg)

	require.Len(t, attr.Events, 1)
	event := attr.Events[0]
	assert.Equal(t, domain.EventPaid, event.Status)
	assert.Equal(t, "PED-1-ABCD", event.OrderID)
	assert.Equal(t, "2026-03-14 15:09:26", event.ApprovedDate)
	assert.Equal(t, "facebook", *event.TrackingParameters.UTMSource)
	assert.Equal(t, int64(13970), event.Commission.TotalPriceInCents)
	assert.Equal(t, int64(100), event.Commission.GatewayFeeInCents)

	// terminal cleanup
	_, found, err := store.Get(context.Background(), "PED-1-ABCD")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestWebhookPaidWithoutPaidAtUsesCurrentTime(t *testing.T) {
	svc, _, attr := newWebhookFixture()

	event := paidEvent()
	event.PaidAt = ""

	svc.Process(context.Background(), event)

	require.Len(t, attr.Events, 1)
	assert.NotEmpty(t, attr.Events[0].ApprovedDate)
}

func TestWebhookPaidAttributionFailureKeepsTracking(t *testing.T) {
	svc, store, attr := newWebhookFixture()
	attr.SubmitOrderEventFn = func(ctx context.Context, event domain.OrderEvent) error {
		return errors.New("attribution down")
	}

	require.NoError(t, store.Save(context.Background(), "PED-1-ABCD", domain.TrackingParams{}))

	msg := svc.Process(context.Background(), paidEvent())
	assert.Equal(t, "payment processed", msg)

	// entry survives so a gateway redelivery can retry attribution
	_, found, err := store.Get(context.Background(), "PED-1-ABCD")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestWebhookFailedSendsRefusedWithZeroCommission(t *testing.T) {
	svc, store, attr := newWebhookFixture()

	require.NoError(t, store.Save(context.Background(), "PED-1-ABCD", domain.TrackingParams{}))

	event := paidEvent()
	event.Event = "transaction.failed"
	event.Status = "CANCELLED"

	msg := svc.Process(context.Background(), event)
	assert.Equal(t, "failure processed", msg)

	require.Len(t, attr.Events, 1)
	assert.Equal(t, domain.EventRefused, attr.Events[0].Status)
	assert.Zero(t, attr.Events[0].Commission.TotalPriceInCents)
	assert.Zero(t, attr.Events[0].Commission.GatewayFeeInCents)
	assert.Zero(t, attr.Events[0].Commission.UserCommissionInCents)

	// failed is terminal even when no attribution issue occurred
	_, found, err := store.Get(context.Background(), "PED-1-ABCD")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestWebhookFailedDeletesEvenWhenAttributionFails(t *testing.T) {
	svc, store, attr := newWebhookFixture()
	attr.SubmitOrderEventFn = func(ctx context.Context, event domain.OrderEvent) error {
		return errors.New("attribution down")
	}

	require.NoError(t, store.Save(context.Background(), "PED-1-ABCD", domain.TrackingParams{}))

	event := paidEvent()
	event.Event = "transaction.failed"
	svc.Process(context.Background(), event)

	_, found, err := store.Get(context.Background(), "PED-1-ABCD")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestWebhookCreatedOnlyAcknowledges(t *testing.T) {
	svc, _, attr := newWebhookFixture()

	event := paidEvent()
	event.Event = "transaction.created"

	msg := svc.Process(context.Background(), event)
	assert.Equal(t, "transaction creation acknowledged", msg)
	assert.Empty(t, attr.Events)
}

func TestWebhookWithdrawalOnlyAcknowledges(t *testing.T) {
	svc, _, attr := newWebhookFixture()

	event := paidEvent()
	event.Event = "withdrawal.created"

	msg := svc.Process(context.Background(), event)
	assert.Equal(t, "withdrawal event acknowledged", msg)
	assert.Empty(t, attr.Events)
}

func TestWebhookUnknownEventOnlyAcknowledges(t *testing.T) {
	svc, _, attr := newWebhookFixture()

	event := paidEvent()
	event.Event = "something.else"

	msg := svc.Process(context.Background(), event)
	assert.Equal(t, "event ignored", msg)
	assert.Empty(t, attr.Events)
}

func TestWebhookRecoversTrackingFromMetadata(t *testing.T) {
	svc, _, attr := newWebhookFixture()

	event := paidEvent()
	event.Metadata = `{"orderId":"PED-1-ABCD","trackingParams":{"utm_campaign":"lancamento"}}`

	svc.Process(context.Background(), event)

	require.Len(t, attr.Events, 1)
	require.NotNil(t, attr.Events[0].TrackingParameters.UTMCampaign)
	assert.Equal(t, "lancamento", *attr.Events[0].TrackingParameters.UTMCampaign)
}

func TestWebhookStorePreferredOverMetadata(t *testing.T) {
	svc, store, attr := newWebhookFixture()

	require.NoError(t, store.Save(context.Background(), "PED-1-ABCD", domain.TrackingParams{
		UTMSource: strptr("from-store"),
	}))

	event := paidEvent()
	event.Metadata = `{"trackingParams":{"utm_source":"from-metadata"}}`

	svc.Process(context.Background(), event)

	require.Len(t, attr.Events, 1)
	assert.Equal(t, "from-store", *attr.Events[0].TrackingParameters.UTMSource)
}

func TestWebhookOrderIDFallsBackToTransactionID(t *testing.T) {
	svc, store, attr := newWebhookFixture()

	require.NoError(t, store.Save(context.Background(), "tx-123", domain.TrackingParams{
		Sck: strptr("sck-1"),
	}))

	event := paidEvent()
	event.ExternalRef = ""

	svc.Process(context.Background(), event)

	require.Len(t, attr.Events, 1)
	assert.Equal(t, "tx-123", attr.Events[0].OrderID)
	assert.Equal(t, "sck-1", *attr.Events[0].TrackingParameters.Sck)
}
