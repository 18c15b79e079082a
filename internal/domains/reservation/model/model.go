package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	cartModel "resort/internal/domains/cart/model"
	"resort/shared/model"
)

const (
	EntityName = "reservation"
	TableName  = "reservations"

	FieldID            = "id"
	FieldUserID        = "user_id"
	FieldFullName      = "full_name"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldGuests        = "guests"
	FieldPaymentMethod = "payment_method"
	FieldStatus        = "status"
	FieldTotalCents    = "total_cents"
	FieldCreatedAt     = "created_at"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
	StatusCompleted Status = "Completed"
)

// ParseStatus maps free-form input to a known status. The bool reports
// whether the input named one; unknown statuses are never invented.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return Status(s), true
	}

	return "", false
}

// CanTransition encodes the reservation lifecycle. Pending moves to
// Confirmed or Cancelled; Confirmed moves to Completed. Cancelled and
// Completed are terminal.
func (s Status) CanTransition(to Status) bool {
	switch s {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCompleted
	}

	return false
}

// Cancellable reports whether the guest may still start a cancellation.
func (s Status) Cancellable() bool {
	return s == StatusPending
}

type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "Cash"
	PaymentMethodGCash PaymentMethod = "GCash"
)

// LineItems is the cart snapshot frozen at submission, stored as JSONB.
type LineItems []cartModel.LineItem

func (l LineItems) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *LineItems) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil

		return nil
	}

	return fmt.Errorf("unsupported source type %T for line items", src)
}

type Reservation struct {
	ID                 string        `db:"id"`
	UserID             string        `db:"user_id"`
	FullName           string        `db:"full_name"`
	Email              string        `db:"email"`
	Phone              string        `db:"phone"`
	CheckIn            time.Time     `db:"check_in"`
	CheckOut           time.Time     `db:"check_out"`
	Guests             int           `db:"guests"`
	PaymentMethod      PaymentMethod `db:"payment_method"`
	SpecialRequest     string        `db:"special_request"`
	EvidenceURL        string        `db:"evidence_url"`
	Status             Status        `db:"status"`
	Items              LineItems     `db:"items"`
	TotalCents         int64         `db:"total_cents"`
	OriginalTotalCents int64         `db:"original_total_cents"`
	model.Metadata
}
