package response

import (
	"workshop-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PopularWorkshop struct {
	WorkshopID   uuid.UUID `json:"workshopId"`
	Title        string    `json:"title"`
	BookingCount int64     `json:"bookings"`
}

type DashboardResponse struct {
	ActiveBookings    int64             `json:"totalBookings"`
	UpcomingWorkshops int64             `json:"totalWorkshops"`
	TotalSeats        int64             `json:"totalSeats"`
	SeatsFilled       int64             `json:"slotsFilled"`
	FillPercentage    float64           `json:"slotsFilledPercentage"`
	TopWorkshops      []PopularWorkshop `json:"popularWorkshops"`
}

func FromDashboard(s *queries.DashboardStats) (DashboardResponse, error) {
	var out DashboardResponse
	if err := copier.Copy(&out, s); err != nil {
		return out, err
	}
	if out.TopWorkshops == nil {
		out.TopWorkshops = []PopularWorkshop{}
	}
	return out, nil
}
