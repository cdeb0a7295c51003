package domain

// CheckoutPix is the PIX payment block returned to the storefront. QRCode
// holds the copy-paste string when the gateway provided one, else the raw
// QR payload.
type CheckoutPix struct {
	QRCode       string
	QRCodeBase64 string
	ExpiresAt    string
}

// CheckoutResult is what a successful checkout hands back to the caller.
type CheckoutResult struct {
	OrderID       string
	TransactionID string
	Pix           CheckoutPix
}

// PaymentStatus is the storefront view of a charge's current state.
type PaymentStatus struct {
	TransactionID string
	Status        PublicStatus
	PaidAt        string
	EndToEndID    string
}
