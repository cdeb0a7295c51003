package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/storefront-br/pix-checkout-bridge/internal/adapters/gateway"
	"github.com/storefront-br/pix-checkout-bridge/internal/core/domain"
)

type errorBody struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondWithError maps errors to HTTP statuses: validation problems are
// the client's fault, gateway refusals surface as 500 with the gateway's
// own message, anything else is a generic 500 so internals never leak.
func respondWithError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case domain.ErrCodeValidation, domain.ErrCodeMissingParameter:
			respondJSON(w, http.StatusBadRequest, errorBody{Error: domainErr.Message})
			return
		case domain.ErrCodeUnauthorizedWebhook:
			respondJSON(w, http.StatusUnauthorized, errorBody{Error: domainErr.Message})
			return
		case domain.ErrCodeMalformedEvent:
			respondJSON(w, http.StatusInternalServerError, errorBody{Error: domainErr.Message})
			return
		}
	}

	if gwErr, ok := gateway.IsGatewayError(err); ok {
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: gwErr.Message})
		return
	}

	logger.Error("unexpected handler error", "error", err)
	respondJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
}
