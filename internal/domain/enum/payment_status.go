package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentStatus represents the payment state of an order or bill.
// Pending is the initial state; Paid and Unpaid are user-toggleable at any
// time via an explicit status update. There are no automatic transitions.
type PaymentStatus int

const (
	PaymentStatusPending PaymentStatus = 0
	PaymentStatusPaid    PaymentStatus = 1
	PaymentStatusUnpaid  PaymentStatus = 2
)

func (s PaymentStatus) String() string {
	switch s {
	case PaymentStatusPaid:
		return "Paid"
	case PaymentStatusUnpaid:
		return "Unpaid"
	default:
		return "Pending"
	}
}

// IsValid reports whether the value is one of the known states
func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusPending || s == PaymentStatusPaid || s == PaymentStatusUnpaid
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PaymentStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = PaymentStatusPending
	case "Paid":
		*s = PaymentStatusPaid
	case "Unpaid":
		*s = PaymentStatusUnpaid
	}
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PaymentStatus(v)
	case int:
		*s = PaymentStatus(v)
	}
	return nil
}
