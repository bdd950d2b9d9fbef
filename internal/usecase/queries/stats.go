package queries

import (
	"context"
	"math"
	"time"

	"workshop-booking/internal/pkg/clock"
)

const topWorkshopsLimit = 5

type StatsQueries interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type StatsRepo interface {
	SeatTotals(ctx context.Context, now time.Time) (*DashboardStats, error)
	TopWorkshops(ctx context.Context, limit int32) ([]WorkshopDemand, error)
}

type statsQueriesImpl struct {
	repo  StatsRepo
	clock clock.Clock
}

func NewStatsQueries(repo StatsRepo, clk clock.Clock) StatsQueries {
	return &statsQueriesImpl{repo: repo, clock: clk}
}

func (q *statsQueriesImpl) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats, err := q.repo.SeatTotals(ctx, q.clock.Now())
	if err != nil {
		return nil, err
	}

	top, err := q.repo.TopWorkshops(ctx, topWorkshopsLimit)
	if err != nil {
		return nil, err
	}
	stats.TopWorkshops = top

	if stats.TotalSeats > 0 {
		pct := float64(stats.SeatsFilled) / float64(stats.TotalSeats) * 100
		stats.FillPercentage = math.Round(pct*10) / 10
	}
	return stats, nil
}
