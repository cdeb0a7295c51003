package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/storefront-br/pix-checkout-bridge/internal/config"
	"github.com/storefront-br/pix-checkout-bridge/internal/core/domain"
	"github.com/storefront-br/pix-checkout-bridge/internal/core/ports"
)

// HTTPClient talks to the payment processor's REST API. Every operation
// returns either a decoded response or a *Error; raw transport errors never
// escape this package.
type HTTPClient struct {
	baseURL    string
	publicKey  string
	secretKey  string
	httpClient *http.Client
}

func NewClient(cfg config.GatewayConfig) ports.GatewayPort {
	return &HTTPClient{
		baseURL:   cfg.BaseURL,
		publicKey: cfg.PublicKey,
		secretKey: cfg.SecretKey,
		httpClient: &http.Client{
			Timeout: cfg.ConnTimeout,
		},
	}
}

func (c *HTTPClient) CreateCharge(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResponse, error) {
	url := fmt.Sprintf("%s/v1/create-sale", c.baseURL)
	return sendRequest[domain.ChargeRequest, domain.ChargeResponse](c, ctx, http.MethodPost, url, &req)
}

func (c *HTTPClient) GetStatus(ctx context.Context, transactionID string) (*domain.ChargeStatusResponse, error) {
	url := fmt.Sprintf("%s/v1/sale-status/%s", c.baseURL, transactionID)
	return sendRequest[any, domain.ChargeStatusResponse](c, ctx, http.MethodGet, url, nil)
}

func (c *HTTPClient) GetSellerProfile(ctx context.Context) (*domain.SellerProfile, error) {
	url := fmt.Sprintf("%s/v1/seller", c.baseURL)
	return sendRequest[any, domain.SellerProfile](c, ctx, http.MethodGet, url, nil)
}

// apiKey is the combined credential: the secret key when configured, the
// public key otherwise.
func (c *HTTPClient) apiKey() string {
	if c.secretKey != "" {
		return c.secretKey
	}
	return c.publicKey
}

// setAuthHeaders writes the combined key under both current header names
// and the raw credential pair under the legacy names. The legacy pair
// stays until the processor retires its old credential scheme.
func (c *HTTPClient) setAuthHeaders(req *http.Request) {
	key := c.apiKey()
	req.Header.Set("x-api-key", key)
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("x-public-key", c.publicKey)
	req.Header.Set("x-secret-key", c.secretKey)
}

func sendRequest[Req any, Resp any](c *HTTPClient, ctx context.Context, method, url string, reqBody *Req) (*Resp, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, &Error{
				Code:    ErrCodeConnection,
				Message: "could not encode gateway request",
				Err:     err,
			}
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, newConnectionError(err)
	}

	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	c.setAuthHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, newConnectionError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err != nil || (errResp.Message == "" && errResp.Err == "") {
			return nil, &Error{
				Code:       ErrCodeRefused,
				Message:    fmt.Sprintf("gateway returned status %d", resp.StatusCode),
				StatusCode: resp.StatusCode,
			}
		}
		message := errResp.Message
		if message == "" {
			message = errResp.Err
		}
		return nil, &Error{
			Code:       ErrCodeRefused,
			Message:    message,
			StatusCode: resp.StatusCode,
		}
	}

	var gwResp Resp
	if err := json.NewDecoder(resp.Body).Decode(&gwResp); err != nil {
		return nil, &Error{
			Code:    ErrCodeConnection,
			Message: "could not decode gateway response",
			Err:     err,
		}
	}

	return &gwResp, nil
}
