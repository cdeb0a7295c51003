package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/storefront-br/pix-checkout-bridge/internal/core/domain"
)

type CheckoutCustomer struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	CPF          string `json:"cpf" validate:"required"`
	DocumentType string `json:"documentType"`
	Phone        string `json:"phone" validate:"required"`
}

type CheckoutAddress struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

type CheckoutItem struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
}

type CheckoutShipping struct {
	Carrier string  `json:"carrier"`
	Price   float64 `json:"price"`
}

type CheckoutRequest struct {
	Customer       CheckoutCustomer       `json:"customer" validate:"required"`
	Address        CheckoutAddress        `json:"address"`
	Items          []CheckoutItem         `json:"items" validate:"required,min=1,dive"`
	Total          float64                `json:"total" validate:"required,gt=0"`
	Shipping       *CheckoutShipping      `json:"shipping"`
	TrackingParams *domain.TrackingParams `json:"trackingParams"`
}

type checkoutPixResponse struct {
	QRCode       string `json:"qrcode"`
	QRCodeBase64 string `json:"qrCodeBase64"`
	ExpiresAt    string `json:"expiresAt"`
}

type checkoutResponse struct {
	Success       bool                `json:"success"`
	OrderID       string              `json:"orderId"`
	TransactionID string              `json:"transactionId"`
	Pix           checkoutPixResponse `json:"pix"`
}

// HandleCheckout creates a PIX charge for a storefront order.
func (h *BridgeHandler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondWithError(w, h.logger, domain.NewValidationError("could not read request body"))
		return
	}

	var req CheckoutRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondWithError(w, h.logger, domain.NewValidationError("malformed request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondWithError(w, h.logger, domain.NewValidationError(err.Error()))
		return
	}

	result, err := h.checkoutService.Checkout(r.Context(), toOrder(&req), req.TrackingParams)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, checkoutResponse{
		Success:       true,
		OrderID:       result.OrderID,
		TransactionID: result.TransactionID,
		Pix: checkoutPixResponse{
			QRCode:       result.Pix.QRCode,
			QRCodeBase64: result.Pix.QRCodeBase64,
			ExpiresAt:    result.Pix.ExpiresAt,
		},
	})
}

func toOrder(req *CheckoutRequest) *domain.Order {
	items := make([]domain.Item, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.Item{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	order := &domain.Order{
		Customer: domain.Customer{
			Name:         req.Customer.Name,
			Email:        req.Customer.Email,
			Document:     req.Customer.CPF,
			DocumentType: req.Customer.DocumentType,
			Phone:        req.Customer.Phone,
		},
		Address: domain.Address{
			Street:       req.Address.Street,
			Number:       req.Address.Number,
			Complement:   req.Address.Complement,
			Neighborhood: req.Address.Neighborhood,
			City:         req.Address.City,
			State:        req.Address.State,
			ZipCode:      req.Address.ZipCode,
		},
		Items: items,
		Total: req.Total,
	}
	if req.Shipping != nil {
		order.Shipping = domain.Shipping{
			Carrier: req.Shipping.Carrier,
			Price:   req.Shipping.Price,
		}
	}
	return order
}
