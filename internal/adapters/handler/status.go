package handler

import (
	"net/http"

	"github.com/storefront-br/pix-checkout-bridge/internal/core/domain"
)

type statusResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	PaidAt        string `json:"paidAt,omitempty"`
	EndToEndID    string `json:"endToEndId,omitempty"`
}

// HandleStatus polls the gateway for the current charge status.
func (h *BridgeHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	transactionID := r.URL.Query().Get("transactionId")
	if transactionID == "" {
		respondWithError(w, h.logger, domain.NewMissingParameterError("transactionId"))
		return
	}

	status, err := h.statusService.GetStatus(r.Context(), transactionID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, statusResponse{
		Success:       true,
		TransactionID: status.TransactionID,
		Status:        string(status.Status),
		PaidAt:        status.PaidAt,
		EndToEndID:    status.EndToEndID,
	})
}
