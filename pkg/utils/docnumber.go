package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// Document number prefixes used across the billing system.
const (
	PrefixKitchenOrder   = "KO"
	PrefixResortInvoice  = "RS"
	PrefixKitchenInvoice = "KT"
)

// GenerateDocumentNumber produces a human-readable document number of the
// form PREFIX + YYYYMMDD + 4-digit random suffix, e.g. KT202403051234.
//
// With only 10,000 suffixes per prefix per day the result is not guaranteed
// unique; callers inserting it into a unique column must treat a duplicate-key
// failure as retryable and regenerate.
func GenerateDocumentNumber(prefix string, when time.Time) string {
	return fmt.Sprintf("%s%s%04d", prefix, when.Format("20060102"), rand.Intn(10000))
}
