package request

import (
	"time"

	"workshop-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type SlotRequest struct {
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

type CreateWorkshopRequest struct {
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description" binding:"required"`
	Date        time.Time     `json:"date" binding:"required"`
	MaxCapacity int           `json:"maxCapacity" binding:"required"`
	TimeSlots   []SlotRequest `json:"timeSlots" binding:"required,min=1,dive"`
}

func (r CreateWorkshopRequest) ToInput() commands.PublishWorkshopInput {
	slots := make([]commands.SlotInput, len(r.TimeSlots))
	for i, s := range r.TimeSlots {
		slots[i] = s.toInput()
	}
	return commands.PublishWorkshopInput{
		Title:       r.Title,
		Description: r.Description,
		ScheduledAt: r.Date,
		Capacity:    r.MaxCapacity,
		Slots:       slots,
	}
}

func (r SlotRequest) ToAddInput(workshopID uuid.UUID) commands.AddSlotInput {
	return commands.AddSlotInput{WorkshopID: workshopID, SlotInput: r.toInput()}
}

func (r SlotRequest) ToUpdateInput(slotID uuid.UUID) commands.UpdateSlotInput {
	return commands.UpdateSlotInput{SlotID: slotID, SlotInput: r.toInput()}
}

func (r SlotRequest) toInput() commands.SlotInput {
	return commands.SlotInput{StartTime: r.StartTime, EndTime: r.EndTime}
}
