package handler

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"

	"github.com/storefront-br/pix-checkout-bridge/internal/core/domain"
)

type webhookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HandleWebhook receives gateway payment events. Any recognized or safely
// ignorable event is acknowledged with 200; only an unparseable envelope
// (or a bad token, when one is configured) is rejected, so the gateway
// does not retry events this service intentionally no-ops.
func (h *BridgeHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("webhook received",
		"event_header", r.Header.Get("X-Webhook-Event"),
		"source", r.Header.Get("X-Webhook-Source"),
	)

	if h.webhookSecret != "" {
		token := r.Header.Get("X-Webhook-Token")
		if subtle.ConstantTimeCompare([]byte(token), []byte(h.webhookSecret)) != 1 {
			respondWithError(w, h.logger, &domain.DomainError{
				Code:    domain.ErrCodeUnauthorizedWebhook,
				Message: "invalid webhook token",
			})
			return
		}
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondWithError(w, h.logger, domain.NewMalformedEventError(err))
		return
	}

	var event domain.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		respondWithError(w, h.logger, domain.NewMalformedEventError(err))
		return
	}

	message := h.webhookService.Process(r.Context(), &event)

	respondJSON(w, http.StatusOK, webhookResponse{
		Success: true,
		Message: message,
	})
}
