package repository

import (
	"context"

	"workshop-booking/internal/domain/booking"
	"workshop-booking/internal/infra"
	"workshop-booking/internal/infra/query"
	"workshop-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingQueries interface {
	InsertBooking(ctx context.Context, db query.DBTX, arg query.InsertBookingParams) (uuid.UUID, error)
	FindActiveBooking(ctx context.Context, db query.DBTX, customerID, slotID uuid.UUID) (query.Bookings, error)
	GetBooking(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Bookings, error)
	GetBookingForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Bookings, error)
	SetBookingStatus(ctx context.Context, db query.DBTX, id uuid.UUID, status string) (string, error)
	CountActiveBookingsBySlot(ctx context.Context, db query.DBTX, slotID uuid.UUID) (int64, error)
}

type BookingRepository struct {
	queries BookingQueries
	db      query.DBTX
}

func NewBookingRepository(queries BookingQueries, db query.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	params := query.InsertBookingParams{
		CustomerID: b.CustomerID(),
		WorkshopID: b.WorkshopID(),
		SlotID:     b.SlotID(),
		Status:     b.Status().String(),
		CreatedAt:  pgconv.TimeToPgtype(b.CreatedAt()),
	}

	id, err := r.queries.InsertBooking(ctx, r.db, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert booking", err)
	}
	return id, nil
}

func (r *BookingRepository) FindActive(ctx context.Context, customerID, slotID uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.FindActiveBooking(ctx, r.db, customerID, slotID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find active booking", err)
	}
	return toBooking(row), nil
}

func (r *BookingRepository) Get(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBooking(ctx, r.db, id)
	if err != nil {
		return nil, wrapBookingLookupErr(err)
	}
	return toBooking(row), nil
}

func (r *BookingRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, wrapBookingLookupErr(err)
	}
	return toBooking(row), nil
}

func (r *BookingRepository) SetStatus(ctx context.Context, id uuid.UUID, status booking.Status) (booking.Status, error) {
	previous, err := r.queries.SetBookingStatus(ctx, r.db, id, status.String())
	if err != nil {
		return "", wrapBookingLookupErr(err)
	}
	return booking.Status(previous), nil
}

func (r *BookingRepository) CountActiveBySlot(ctx context.Context, slotID uuid.UUID) (int, error) {
	n, err := r.queries.CountActiveBookingsBySlot(ctx, r.db, slotID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active bookings", err)
	}
	return int(n), nil
}

func wrapBookingLookupErr(err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to load booking", err)
}

func toBooking(row query.Bookings) *booking.Booking {
	return booking.Reconstruct(
		row.ID,
		row.CustomerID,
		row.WorkshopID,
		row.SlotID,
		booking.Status(row.Status),
		row.CreatedAt.Time,
		row.UpdatedAt.Time,
		pgconv.TimePtrFromPgtype(row.DeletedAt),
	)
}
