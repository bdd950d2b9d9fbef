package readstore

import (
	"context"

	"workshop-booking/internal/infra"
	"workshop-booking/internal/infra/query"
	"workshop-booking/internal/pkg/pgconv"
	"workshop-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingView(ctx context.Context, db query.DBTX, id uuid.UUID) (query.BookingViewRow, error)
	ListBookingViewsByCustomer(ctx context.Context, db query.DBTX, customerID uuid.UUID) ([]query.BookingViewRow, error)
	ListBookingViews(ctx context.Context, db query.DBTX, arg query.ListBookingViewsParams) ([]query.BookingViewRow, error)
	CountBookingsByStatus(ctx context.Context, db query.DBTX, statuses []string) (int64, error)
	ListActiveBookingViewsByWorkshop(ctx context.Context, db query.DBTX, workshopID uuid.UUID) ([]query.BookingViewRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      query.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db query.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return rowToBookingView(row), nil
}

func (r *BookingReadStore) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsByCustomer(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer bookings", err)
	}
	return rowsToBookingViews(rows), nil
}

func (r *BookingReadStore) FindPage(ctx context.Context, statuses []string, limit, offset int32) ([]*queries.BookingView, int64, error) {
	rows, err := r.queries.ListBookingViews(ctx, r.db, query.ListBookingViewsParams{
		Statuses: statuses,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list bookings", err)
	}

	total, err := r.queries.CountBookingsByStatus(ctx, r.db, statuses)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count bookings", err)
	}

	return rowsToBookingViews(rows), total, nil
}

func (r *BookingReadStore) FindActiveByWorkshop(ctx context.Context, workshopID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListActiveBookingViewsByWorkshop(ctx, r.db, workshopID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list workshop bookings", err)
	}
	return rowsToBookingViews(rows), nil
}

func rowsToBookingViews(rows []query.BookingViewRow) []*queries.BookingView {
	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = rowToBookingView(row)
	}
	return result
}

func rowToBookingView(row query.BookingViewRow) *queries.BookingView {
	return &queries.BookingView{
		ID:            row.ID,
		CustomerID:    row.CustomerID,
		WorkshopID:    row.WorkshopID,
		WorkshopTitle: row.WorkshopTitle,
		ScheduledAt:   row.ScheduledAt.Time,
		SlotID:        row.SlotID,
		StartTime:     row.StartLabel,
		EndTime:       row.EndLabel,
		Status:        row.Status,
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}
