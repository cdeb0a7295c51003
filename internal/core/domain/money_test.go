package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(1990), ToCents(19.9))
	assert.Equal(t, int64(100), ToCents(1.0))
	assert.Equal(t, int64(0), ToCents(0))
	assert.Equal(t, int64(12345), ToCents(123.45))

	// math.Round is half-away-from-zero.
	assert.Equal(t, int64(1), ToCents(0.005))
	assert.Equal(t, int64(-1), ToCents(-0.005))
}

func TestFromCents(t *testing.T) {
	assert.Equal(t, 19.9, FromCents(1990))
	assert.Equal(t, 0.01, FromCents(1))
	assert.Equal(t, 0.0, FromCents(0))
}

func TestToCentsFromCentsRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 1990, 123456789} {
		assert.Equal(t, cents, ToCents(FromCents(cents)))
	}
}
