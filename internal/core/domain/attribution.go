package domain

// EventStatus is the attribution service's order lifecycle vocabulary.
type EventStatus string

const (
	EventWaitingPayment EventStatus = "waiting_payment"
	EventPaid           EventStatus = "paid"
	EventRefused        EventStatus = "refused"
)

type EventCustomer struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Document *string `json:"document"`
	Country  string  `json:"country"`
}

type EventProduct struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	PriceInCents int64  `json:"priceInCents"`
}

type EventCommission struct {
	TotalPriceInCents     int64  `json:"totalPriceInCents"`
	GatewayFeeInCents     int64  `json:"gatewayFeeInCents"`
	UserCommissionInCents int64  `json:"userCommissionInCents"`
	Currency              string `json:"currency"`
}

// OrderEvent is the payload submitted to the attribution service for every
// order lifecycle change. Write-only from this system's perspective.
type OrderEvent struct {
	OrderID            string          `json:"orderId"`
	Platform           string          `json:"platform"`
	PaymentMethod      string          `json:"paymentMethod"`
	Status             EventStatus     `json:"status"`
	CreatedAt          string          `json:"createdAt"`
	ApprovedDate       string          `json:"approvedDate,omitempty"`
	RefundedAt         string          `json:"refundedAt,omitempty"`
	Customer           EventCustomer   `json:"customer"`
	Products           []EventProduct  `json:"products"`
	TrackingParameters TrackingParams  `json:"trackingParameters"`
	Commission         EventCommission `json:"commission"`
}
