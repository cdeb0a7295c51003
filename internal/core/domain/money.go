package domain

import "math"

// ToCents converts a currency-decimal amount to integer minor units.
// Rounding is half-away-from-zero (Go's math.Round), so ToCents(0.005) == 1.
// Must be applied exactly once, at the gateway boundary.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromCents converts integer minor units back to a decimal amount.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}
