package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// InvoiceNoFromBillID derives the human-facing invoice number from a bill ID:
// the first five characters of the ID, uppercased.
func InvoiceNoFromBillID(billID uuid.UUID) string {
	return strings.ToUpper(billID.String()[:5])
}

// GenerateOrderNo generates a unique order reference number
func GenerateOrderNo() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}
