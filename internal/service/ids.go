package service

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	base36Alphabet      = "0123456789abcdefghijklmnopqrstuvwxyz"
	purchaseTokenLength = 8
	requestIDSuffixMax  = 1_000_000
)

// IDGenerator builds the purchase and request identifiers. Both embed the
// current Unix time in milliseconds plus a random suffix.
type IDGenerator struct {
	now    func() time.Time
	int64n func(n int64) int64
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{
		now:    time.Now,
		int64n: rand.Int64N,
	}
}

// PurchaseID returns purch_<unix ms>_<8 base-36 chars>
func (generator *IDGenerator) PurchaseID() string {
	var builder strings.Builder
	builder.WriteString("purch_")
	builder.WriteString(strconv.FormatInt(generator.now().UnixMilli(), 10))
	builder.WriteByte('_')
	for i := 0; i < purchaseTokenLength; i++ {
		builder.WriteByte(base36Alphabet[generator.int64n(int64(len(base36Alphabet)))])
	}
	return builder.String()
}

// RequestID returns <unix ms>-<n> with n in [0, 1000000)
func (generator *IDGenerator) RequestID() string {
	return strconv.FormatInt(generator.now().UnixMilli(), 10) + "-" +
		strconv.FormatInt(generator.int64n(requestIDSuffixMax), 10)
}
