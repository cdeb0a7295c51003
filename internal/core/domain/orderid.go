package domain

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const orderIDPrefix = "PED"

// NewOrderID produces a human-readable order reference of the form
// PED-<base36 epoch millis>-<4 base36 chars>, all uppercase. Uniqueness is
// probabilistic only: the random suffix gives about 20 bits of entropy per
// millisecond bucket, which callers treat as collision-resistant, not
// collision-free.
func NewOrderID() string {
	return newOrderIDAt(time.Now(), uint32(rand.Intn(36*36*36*36)))
}

func newOrderIDAt(now time.Time, random uint32) string {
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	suffix := strings.ToUpper(strconv.FormatUint(uint64(random), 36))
	for len(suffix) < 4 {
		suffix = "0" + suffix
	}
	return fmt.Sprintf("%s-%s-%s", orderIDPrefix, ts, suffix)
}
