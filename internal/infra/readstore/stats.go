package readstore

import (
	"context"
	"time"

	"workshop-booking/internal/infra"
	"workshop-booking/internal/infra/query"
	"workshop-booking/internal/pkg/pgconv"
	"workshop-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type StatsQueries interface {
	GetSeatTotals(ctx context.Context, db query.DBTX, now pgtype.Timestamptz) (query.SeatTotalsRow, error)
	ListTopWorkshops(ctx context.Context, db query.DBTX, limit int32) ([]query.TopWorkshopRow, error)
}

type StatsReadStore struct {
	queries StatsQueries
	db      query.DBTX
}

func NewStatsReadStore(queries StatsQueries, db query.DBTX) *StatsReadStore {
	return &StatsReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *StatsReadStore) SeatTotals(ctx context.Context, now time.Time) (*queries.DashboardStats, error) {
	row, err := r.queries.GetSeatTotals(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute seat totals", err)
	}

	return &queries.DashboardStats{
		ActiveBookings:    row.ActiveBookings,
		UpcomingWorkshops: row.UpcomingWorkshops,
		TotalSeats:        row.TotalSeats,
		SeatsFilled:       row.SeatsFilled,
	}, nil
}

func (r *StatsReadStore) TopWorkshops(ctx context.Context, limit int32) ([]queries.WorkshopDemand, error) {
	rows, err := r.queries.ListTopWorkshops(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list top workshops", err)
	}

	result := make([]queries.WorkshopDemand, len(rows))
	for i, row := range rows {
		result[i] = queries.WorkshopDemand{
			WorkshopID:   row.WorkshopID,
			Title:        row.Title,
			BookingCount: row.BookingCount,
		}
	}
	return result, nil
}
