package shared

import (
	"encoding/json"
	"time"

	"workshop-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// Outbox topics for booking lifecycle events consumed by demand auditing.
const (
	TopicBookingReserved      = "booking.reserved"
	TopicBookingCanceled      = "booking.canceled"
	TopicBookingStatusChanged = "booking.status_changed"
)

type OutboxEvent struct {
	AggregateID uuid.UUID
	Topic       string
	Payload     []byte
}

type BookingEvent struct {
	BookingID      uuid.UUID       `json:"booking_id"`
	CustomerID     uuid.UUID       `json:"customer_id"`
	WorkshopID     uuid.UUID       `json:"workshop_id"`
	SlotID         uuid.UUID       `json:"slot_id"`
	Status         booking.Status  `json:"status"`
	PreviousStatus *booking.Status `json:"previous_status,omitempty"`
	OccurredAt     time.Time       `json:"occurred_at"`
}

func NewBookingOutboxEvent(topic string, ev BookingEvent) (OutboxEvent, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return OutboxEvent{}, err
	}
	return OutboxEvent{
		AggregateID: ev.BookingID,
		Topic:       topic,
		Payload:     payload,
	}, nil
}
