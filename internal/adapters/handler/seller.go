package handler

import "net/http"

type sellerResponse struct {
	Success      bool    `json:"success"`
	Name         string  `json:"name"`
	BusinessName string  `json:"businessName"`
	Document     string  `json:"document"`
	LogoURL      *string `json:"logoUrl"`
}

// HandleSeller exposes the gateway's seller profile for the checkout page.
func (h *BridgeHandler) HandleSeller(w http.ResponseWriter, r *http.Request) {
	profile, err := h.statusService.SellerProfile(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, sellerResponse{
		Success:      true,
		Name:         profile.Name,
		BusinessName: profile.BusinessName,
		Document:     profile.Document,
		LogoURL:      profile.LogoURL,
	})
}
