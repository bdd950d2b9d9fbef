package queries

import (
	"time"

	"github.com/google/uuid"
)

type SlotView struct {
	ID             uuid.UUID  `json:"id"`
	WorkshopID     uuid.UUID  `json:"workshop_id"`
	StartTime      string     `json:"start_time"`
	EndTime        string     `json:"end_time"`
	RemainingSeats int        `json:"remaining_seats"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
}

type SlotAvailabilityView struct {
	SlotID         uuid.UUID `json:"slot_id"`
	WorkshopID     uuid.UUID `json:"workshop_id"`
	RemainingSeats int       `json:"remaining_seats"`
	Capacity       int       `json:"capacity"`
	Bookable       bool      `json:"bookable"`
}

type WorkshopView struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	Capacity    int        `json:"capacity"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Slots       []SlotView `json:"slots"`
}

type WorkshopDetailView struct {
	WorkshopView
	ActiveBookings []*BookingView `json:"active_bookings"`
}

type BookingView struct {
	ID            uuid.UUID `json:"id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	WorkshopID    uuid.UUID `json:"workshop_id"`
	WorkshopTitle string    `json:"workshop_title"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	SlotID        uuid.UUID `json:"slot_id"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BookingPage struct {
	Items      []*BookingView `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

type WorkshopDemand struct {
	WorkshopID   uuid.UUID `json:"workshop_id"`
	Title        string    `json:"title"`
	BookingCount int64     `json:"booking_count"`
}

type DashboardStats struct {
	ActiveBookings    int64            `json:"active_bookings"`
	UpcomingWorkshops int64            `json:"upcoming_workshops"`
	TotalSeats        int64            `json:"total_seats"`
	SeatsFilled       int64            `json:"seats_filled"`
	FillPercentage    float64          `json:"fill_percentage"`
	TopWorkshops      []WorkshopDemand `json:"top_workshops"`
}
