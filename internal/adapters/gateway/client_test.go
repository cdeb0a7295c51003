package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/storefront-br/pix-checkout-bridge/internal/config"
	"github.com/storefront-br/pix-checkout-bridge/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) config.GatewayConfig {
	return config.GatewayConfig{
		BaseURL:     baseURL,
		PublicKey:   "pk_test",
		SecretKey:   "sk_test",
		ConnTimeout: 5 * time.Second,
	}
}

func chargeRequest() domain.ChargeRequest {
	return domain.ChargeRequest{
		Amount:        13970,
		Currency:      "BRL",
		PaymentMethod: "pix",
		Items: []domain.ChargeItem{
			{Title: "Camiseta", UnitPrice: 5990, Quantity: 2, Tangible: true},
		},
		ExternalRef: "PED-1-ABCD",
	}
}

func TestCreateChargeSendsCredentialHeaders(t *testing.T) {
	var gotHeaders http.Header
	var gotBody domain.ChargeRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.ChargeResponse{
			ID:     "tx-123",
			Status: "PENDING",
			Amount: 13970,
			Pix:    domain.PixPayment{CopyPaste: "pix-copy-paste"},
		})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	resp, err := client.CreateCharge(context.Background(), chargeRequest())
	require.NoError(t, err)

	assert.Equal(t, "tx-123", resp.ID)
	assert.Equal(t, "pix-copy-paste", resp.Pix.CopyPaste)

	// the secret key wins as the combined credential
	assert.Equal(t, "sk_test", gotHeaders.Get("x-api-key"))
	assert.Equal(t, "Bearer sk_test", gotHeaders.Get("Authorization"))
	// legacy raw pair still present
	assert.Equal(t, "pk_test", gotHeaders.Get("x-public-key"))
	assert.Equal(t, "sk_test", gotHeaders.Get("x-secret-key"))

	assert.Equal(t, "PED-1-ABCD", gotBody.ExternalRef)
	assert.Equal(t, int64(13970), gotBody.Amount)
}

func TestAPIKeyFallsBackToPublicKey(t *testing.T) {
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("x-api-key")
		_ = json.NewEncoder(w).Encode(domain.SellerProfile{Name: "Loja"})
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.SecretKey = ""
	client := NewClient(cfg)

	_, err := client.GetSellerProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pk_test", gotAuth)
}

func TestGetStatusByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/sale-status/tx-123", r.URL.Path)
		_ = json.NewEncoder(w).Encode(domain.ChargeStatusResponse{
			ID:         "tx-123",
			Status:     "PAID",
			PaidAt:     "2026-03-14T15:09:26Z",
			EndToEndID: "E1234",
		})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	resp, err := client.GetStatus(context.Background(), "tx-123")
	require.NoError(t, err)
	assert.Equal(t, "PAID", resp.Status)
	assert.Equal(t, "E1234", resp.EndToEndID)
}

func TestGatewayRefusalCarriesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":   "invalid_document",
			"message": "documento invalido",
		})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.CreateCharge(context.Background(), chargeRequest())
	require.Error(t, err)

	gwErr, ok := IsGatewayError(err)
	require.True(t, ok)
	assert.Equal(t, ErrCodeRefused, gwErr.Code)
	assert.Equal(t, "documento invalido", gwErr.Message)
	assert.Equal(t, http.StatusUnprocessableEntity, gwErr.StatusCode)
}

func TestGatewayRefusalWithoutBodyGetsGenericMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.CreateCharge(context.Background(), chargeRequest())
	require.Error(t, err)

	gwErr, ok := IsGatewayError(err)
	require.True(t, ok)
	assert.Equal(t, ErrCodeRefused, gwErr.Code)
	assert.Contains(t, gwErr.Message, "502")
}

func TestTransportFailureBecomesConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient(testConfig(server.URL))

	_, err := client.CreateCharge(context.Background(), chargeRequest())
	require.Error(t, err)

	gwErr, ok := IsGatewayError(err)
	require.True(t, ok)
	assert.Equal(t, ErrCodeConnection, gwErr.Code)
	assert.Equal(t, "could not reach the payment gateway", gwErr.Message)
}
