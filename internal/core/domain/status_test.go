package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want PublicStatus
	}{
		{"paid", PublicPaid},
		{"PAID", PublicPaid},
		{"Paid", PublicPaid},
		{"PENDING", PublicPending},
		{"pending", PublicPending},
		{"CANCELLED", PublicCancelled},
		{"cancelled", PublicCancelled},
		{"REFUNDED", PublicRefunded},
		{"bogus", PublicPending},
		{"", PublicPending},
		{"  paid  ", PublicPaid},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapStatus(tt.raw), "raw=%q", tt.raw)
	}
}
