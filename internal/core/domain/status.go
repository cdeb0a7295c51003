package domain

import "strings"

// PublicStatus is the storefront-facing payment status.
type PublicStatus string

const (
	PublicPending   PublicStatus = "pending"
	PublicPaid      PublicStatus = "paid"
	PublicCancelled PublicStatus = "cancelled"
	PublicRefunded  PublicStatus = "refunded"
)

// MapStatus translates a raw gateway charge status to the storefront
// vocabulary. The comparison is case-insensitive and unknown values fall
// back to pending, so this never fails.
func MapStatus(raw string) PublicStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "PAID":
		return PublicPaid
	case "CANCELLED":
		return PublicCancelled
	case "REFUNDED":
		return PublicRefunded
	default:
		return PublicPending
	}
}
