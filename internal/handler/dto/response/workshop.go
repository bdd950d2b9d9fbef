package response

import (
	"time"

	"workshop-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	ID             uuid.UUID `json:"id"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	RemainingSeats int       `json:"availableSpots"`
}

type WorkshopResponse struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	ScheduledAt time.Time      `json:"date"`
	Capacity    int            `json:"maxCapacity"`
	DeletedAt   *time.Time     `json:"deletedAt,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	Slots       []SlotResponse `json:"timeSlots"`
}

type WorkshopDetailResponse struct {
	WorkshopResponse
	ActiveBookings []BookingResponse `json:"bookings"`
}

type SlotAvailabilityResponse struct {
	SlotID         uuid.UUID `json:"timeSlotId"`
	WorkshopID     uuid.UUID `json:"workshopId"`
	RemainingSeats int       `json:"availableSpots"`
	Capacity       int       `json:"maxCapacity"`
	Bookable       bool      `json:"bookable"`
}

type CreatedResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromWorkshopViews(vs []*queries.WorkshopView) ([]WorkshopResponse, error) {
	out := make([]WorkshopResponse, 0, len(vs))
	if len(vs) == 0 {
		return out, nil
	}
	if err := copier.Copy(&out, vs); err != nil {
		return nil, err
	}
	return out, nil
}

func FromWorkshopDetail(v *queries.WorkshopDetailView) (WorkshopDetailResponse, error) {
	var out WorkshopDetailResponse
	if err := copier.Copy(&out.WorkshopResponse, &v.WorkshopView); err != nil {
		return out, err
	}
	bookings, err := FromBookingViews(v.ActiveBookings)
	if err != nil {
		return out, err
	}
	out.ActiveBookings = bookings
	return out, nil
}

func FromSlotAvailability(v *queries.SlotAvailabilityView) (SlotAvailabilityResponse, error) {
	var out SlotAvailabilityResponse
	err := copier.Copy(&out, v)
	return out, err
}
