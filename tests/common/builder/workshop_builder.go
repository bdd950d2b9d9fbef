//go:build unit || e2e

package builder

import (
	"time"

	domworkshop "workshop-booking/internal/domain/workshop"
	reqdto "workshop-booking/internal/handler/dto/request"

	"github.com/google/uuid"
)

type WorkshopBuilder struct {
	Title       string
	Description string
	ScheduledAt time.Time
	Capacity    int
	Slots       []domworkshop.SlotLabels
}

func NewWorkshopBuilder() *WorkshopBuilder {
	return &WorkshopBuilder{
		Title:       "Practical Go",
		Description: "Hands-on session on idiomatic Go services",
		ScheduledAt: time.Now().Add(7 * 24 * time.Hour).UTC().Truncate(time.Second),
		Capacity:    10,
		Slots: []domworkshop.SlotLabels{
			{Start: "9:00 AM", End: "10:00 AM"},
		},
	}
}

func (b *WorkshopBuilder) With(mutate func(*WorkshopBuilder)) *WorkshopBuilder {
	mutate(b)
	return b
}

func (b *WorkshopBuilder) WithCapacity(capacity int) *WorkshopBuilder {
	b.Capacity = capacity
	return b
}

func (b *WorkshopBuilder) WithSlots(labels ...domworkshop.SlotLabels) *WorkshopBuilder {
	b.Slots = labels
	return b
}

func (b *WorkshopBuilder) BuildDomain() (*domworkshop.Workshop, error) {
	return domworkshop.NewWorkshop(b.Title, b.Description, b.ScheduledAt, b.Capacity, b.Slots)
}

func (b *WorkshopBuilder) BuildCreateRequestDTO() reqdto.CreateWorkshopRequest {
	slots := make([]reqdto.SlotRequest, len(b.Slots))
	for i, l := range b.Slots {
		slots[i] = reqdto.SlotRequest{StartTime: l.Start, EndTime: l.End}
	}
	return reqdto.CreateWorkshopRequest{
		Title:       b.Title,
		Description: b.Description,
		Date:        b.ScheduledAt,
		MaxCapacity: b.Capacity,
		TimeSlots:   slots,
	}
}

// BookingRequest pairs a workshop with one of its slots.
func BookingRequest(workshopID, slotID uuid.UUID) reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{WorkshopID: workshopID, SlotID: slotID}
}
