package domain

// ChargeStatus is the gateway's own charge state. The gateway owns the
// authoritative state machine; this service only maps it for the storefront.
type ChargeStatus string

const (
	ChargePending   ChargeStatus = "PENDING"
	ChargePaid      ChargeStatus = "PAID"
	ChargeCancelled ChargeStatus = "CANCELLED"
	ChargeRefunded  ChargeStatus = "REFUNDED"
)

type ChargeItem struct {
	Title     string `json:"title"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Tangible  bool   `json:"tangible"`
}

type ChargeCustomer struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	Document ChargeDocument `json:"document"`
}

type ChargeDocument struct {
	Number string `json:"number"`
	Type   string `json:"type"`
}

type ChargeShipping struct {
	Street       string `json:"street"`
	Number       string `json:"streetNumber"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

type ChargePixConfig struct {
	ExpiresInDays int `json:"expiresInDays"`
}

// ChargeRequest is the gateway's create-sale payload. Amount and unit
// prices are minor units. Metadata is an opaque string the gateway echoes
// back on webhooks; it carries the order id and tracking parameters as the
// durable fallback for correlation-store loss.
type ChargeRequest struct {
	Amount        int64           `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"paymentMethod"`
	Items         []ChargeItem    `json:"items"`
	Customer      ChargeCustomer  `json:"customer"`
	Shipping      ChargeShipping  `json:"shipping"`
	Pix           ChargePixConfig `json:"pix"`
	PostbackURL   string          `json:"postbackUrl"`
	ExternalRef   string          `json:"externalRef"`
	Metadata      string          `json:"metadata,omitempty"`
}

type PixPayment struct {
	QRCode       string `json:"qrCode"`
	CopyPaste    string `json:"copyPaste"`
	QRCodeBase64 string `json:"qrCodeBase64"`
	ExpiresAt    string `json:"expirationDate"`
}

type ChargeResponse struct {
	ID        string     `json:"id"`
	Status    string     `json:"status"`
	Amount    int64      `json:"amount"`
	NetAmount int64      `json:"netAmount"`
	Fee       int64      `json:"fee"`
	Pix       PixPayment `json:"pix"`
}

type ChargeStatusResponse struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	PaidAt     string `json:"paidAt"`
	EndToEndID string `json:"endToEndId"`
}

type SellerProfile struct {
	Name         string  `json:"name"`
	BusinessName string  `json:"businessName"`
	Document     string  `json:"document"`
	LogoURL      *string `json:"logoUrl"`
}
