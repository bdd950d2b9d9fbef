package request

import (
	"strings"

	"workshop-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	WorkshopID uuid.UUID `json:"workshopId" binding:"required"`
	SlotID     uuid.UUID `json:"timeSlotId" binding:"required"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListBookingsQuery struct {
	// comma separated; empty means PENDING and CONFIRMED
	Status string `form:"status"`
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Statuses ignores unknown values so a stray filter falls back to the default listing.
func (q ListBookingsQuery) Statuses() []booking.Status {
	if strings.TrimSpace(q.Status) == "" {
		return nil
	}
	var out []booking.Status
	for _, raw := range strings.Split(q.Status, ",") {
		if s, err := booking.ParseStatus(raw); err == nil {
			out = append(out, s)
		}
	}
	return out
}
