package service

import (
	"context"
	"sync"
	"time"

	"github.com/storefront-br/pix-checkout-bridge/internal/core/domain"
)

// MockTrackingStore is an in-memory TrackingStore with per-method
// overrides for failure injection.
type MockTrackingStore struct {
	mu      sync.RWMutex
	entries map[string]domain.TrackingParams

	SaveFn   func(ctx context.Context, orderID string, params domain.TrackingParams) error
	GetFn    func(ctx context.Context, orderID string) (domain.TrackingParams, bool, error)
	DeleteFn func(ctx context.Context, orderID string) error
}

func NewMockTrackingStore() *MockTrackingStore {
	return &MockTrackingStore{
		entries: make(map[string]domain.TrackingParams),
	}
}

func (m *MockTrackingStore) Save(ctx context.Context, orderID string, params domain.TrackingParams) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, orderID, params)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[orderID] = params
	return nil
}

func (m *MockTrackingStore) Get(ctx context.Context, orderID string) (domain.TrackingParams, bool, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, orderID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	params, ok := m.entries[orderID]
	return params, ok, nil
}

func (m *MockTrackingStore) Delete(ctx context.Context, orderID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, orderID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, orderID)
	return nil
}

func (m *MockTrackingStore) DeleteExpired(ctx context.Context, olderThan time.Duration) (int64, error) {
	return 0, nil
}

// MockGateway records the last charge request and answers with canned
// responses.
type MockGateway struct {
	CreateChargeFn     func(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResponse, error)
	GetStatusFn        func(ctx context.Context, transactionID string) (*domain.ChargeStatusResponse, error)
	GetSellerProfileFn func(ctx context.Context) (*domain.SellerProfile, error)

	mu             sync.Mutex
	ChargeRequests []domain.ChargeRequest
}

func (m *MockGateway) CreateCharge(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResponse, error) {
	m.mu.Lock()
	m.ChargeRequests = append(m.ChargeRequests, req)
	m.mu.Unlock()

	if m.CreateChargeFn != nil {
		return m.CreateChargeFn(ctx, req)
	}
	return &domain.ChargeResponse{
		ID:        "tx-123",
		Status:    "PENDING",
		Amount:    req.Amount,
		NetAmount: req.Amount - 100,
		Fee:       100,
		Pix: domain.PixPayment{
			QRCode:       "qr-raw",
			CopyPaste:    "pix-copy-paste",
			QRCodeBase64: "base64data",
			ExpiresAt:    "2026-01-02T15:04:05Z",
		},
	}, nil
}

func (m *MockGateway) GetStatus(ctx context.Context, transactionID string) (*domain.ChargeStatusResponse, error) {
	if m.GetStatusFn != nil {
		return m.GetStatusFn(ctx, transactionID)
	}
	return &domain.ChargeStatusResponse{
		ID:     transactionID,
		Status: "PENDING",
	}, nil
}

func (m *MockGateway) GetSellerProfile(ctx context.Context) (*domain.SellerProfile, error) {
	if m.GetSellerProfileFn != nil {
		return m.GetSellerProfileFn(ctx)
	}
	return &domain.SellerProfile{
		Name:         "Loja Teste",
		BusinessName: "Loja Teste LTDA",
		Document:     "12345678000190",
	}, nil
}

// MockAttribution records every submitted event.
type MockAttribution struct {
	SubmitOrderEventFn func(ctx context.Context, event domain.OrderEvent) error

	mu     sync.Mutex
	Events []domain.OrderEvent
}

func (m *MockAttribution) SubmitOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	m.mu.Lock()
	m.Events = append(m.Events, event)
	m.mu.Unlock()

	if m.SubmitOrderEventFn != nil {
		return m.SubmitOrderEventFn(ctx, event)
	}
	return nil
}
