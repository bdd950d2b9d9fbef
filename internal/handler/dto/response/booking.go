package response

import (
	"time"

	"workshop-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	CustomerID    uuid.UUID `json:"customerId"`
	WorkshopID    uuid.UUID `json:"workshopId"`
	WorkshopTitle string    `json:"workshopTitle"`
	ScheduledAt   time.Time `json:"scheduledAt"`
	SlotID        uuid.UUID `json:"timeSlotId"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type BookingCreatedResponse struct {
	Message   string    `json:"message"`
	BookingID uuid.UUID `json:"bookingId"`
}

type BookingStatusResponse struct {
	Message         string    `json:"message"`
	BookingID       uuid.UUID `json:"bookingId"`
	Status          string    `json:"status"`
	PreviousStatus  string    `json:"previousStatus,omitempty"`
	AlreadyCanceled bool      `json:"alreadyCanceled"`
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type BookingListResponse struct {
	Data       []BookingResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

func FromBookingView(v *queries.BookingView) (BookingResponse, error) {
	var out BookingResponse
	err := copier.Copy(&out, v)
	return out, err
}

func FromBookingViews(vs []*queries.BookingView) ([]BookingResponse, error) {
	out := make([]BookingResponse, 0, len(vs))
	if len(vs) == 0 {
		return out, nil
	}
	if err := copier.Copy(&out, vs); err != nil {
		return nil, err
	}
	return out, nil
}

func FromBookingPage(p *queries.BookingPage) (BookingListResponse, error) {
	items, err := FromBookingViews(p.Items)
	if err != nil {
		return BookingListResponse{}, err
	}
	return BookingListResponse{
		Data: items,
		Pagination: Pagination{
			Total:      p.Total,
			Page:       p.Page,
			Limit:      p.Limit,
			TotalPages: p.TotalPages,
		},
	}, nil
}
