package model

import "time"

const (
	EventTypeSubmitted     = "reservation.submitted"
	EventTypeStatusChanged = "reservation.status_changed"
	EventTypeCancelled     = "reservation.cancelled"
)

// Event is published to Kafka on every lifecycle change so downstream
// consumers (housekeeping, billing) can react without polling.
type Event struct {
	Type          string    `json:"type"`
	ReservationID string    `json:"reservation_id"`
	UserID        string    `json:"user_id"`
	Status        Status    `json:"status"`
	TotalCents    int64     `json:"total_cents"`
	OccurredAt    time.Time `json:"occurred_at"`
}
