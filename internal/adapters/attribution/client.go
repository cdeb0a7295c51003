package attribution

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/storefront-br/pix-checkout-bridge/internal/config"
	"github.com/storefront-br/pix-checkout-bridge/internal/core/domain"
	"github.com/storefront-br/pix-checkout-bridge/internal/core/ports"
)

// HTTPClient posts order lifecycle events to the attribution service.
// Errors return to the caller; isolating them is the caller's job, since a
// lost attribution event must never fail a checkout or a webhook.
type HTTPClient struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg config.AttributionConfig) ports.AttributionPort {
	return &HTTPClient{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.ConnTimeout,
		},
	}
}

func (c *HTTPClient) SubmitOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	jsonData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("error marshalling order event: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("x-api-token", c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("attribution service returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// FormatDate renders a timestamp in the attribution service's expected
// format, UTC. The zero time renders as an empty string.
func FormatDate(t time.Time) string {
	return domain.FormatEventDate(t)
}
