package domain

import "time"

// eventDateLayout is the timestamp format the attribution service expects.
const eventDateLayout = "2006-01-02 15:04:05"

// FormatEventDate renders a timestamp for attribution payloads, UTC.
// The zero time renders as an empty string.
func FormatEventDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(eventDateLayout)
}

// ParseGatewayTime reads a timestamp from a gateway payload. The gateway
// sends RFC 3339; older payloads used the attribution layout, accepted as
// fallback.
func ParseGatewayTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(eventDateLayout, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
