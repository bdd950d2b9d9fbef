package queries

import (
	"context"
	"time"

	"workshop-booking/internal/infra"
	"workshop-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type WorkshopListFilter struct {
	IncludeDeleted bool
	// UpcomingAfter, when set, hides workshops scheduled before it and slots without seats.
	UpcomingAfter *time.Time
}

type WorkshopQueries interface {
	ListPublic(ctx context.Context) ([]*WorkshopView, error)
	ListAdmin(ctx context.Context) ([]*WorkshopView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*WorkshopDetailView, error)
	SlotAvailability(ctx context.Context, slotID uuid.UUID) (*SlotAvailabilityView, error)
}

type WorkshopViewRepo interface {
	FindWorkshops(ctx context.Context, filter WorkshopListFilter) ([]*WorkshopView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*WorkshopView, error)
	FindSlotAvailability(ctx context.Context, slotID uuid.UUID) (*SlotAvailabilityView, error)
}

type workshopQueriesImpl struct {
	repo     WorkshopViewRepo
	bookings BookingActivityRepo
	clock    clock.Clock
}

type BookingActivityRepo interface {
	FindActiveByWorkshop(ctx context.Context, workshopID uuid.UUID) ([]*BookingView, error)
}

func NewWorkshopQueries(repo WorkshopViewRepo, bookings BookingActivityRepo, clk clock.Clock) WorkshopQueries {
	return &workshopQueriesImpl{
		repo:     repo,
		bookings: bookings,
		clock:    clk,
	}
}

func (q *workshopQueriesImpl) ListPublic(ctx context.Context) ([]*WorkshopView, error) {
	now := q.clock.Now()
	return q.repo.FindWorkshops(ctx, WorkshopListFilter{UpcomingAfter: &now})
}

func (q *workshopQueriesImpl) ListAdmin(ctx context.Context) ([]*WorkshopView, error) {
	return q.repo.FindWorkshops(ctx, WorkshopListFilter{IncludeDeleted: true})
}

func (q *workshopQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*WorkshopDetailView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWorkshopNotFound
		}
		return nil, err
	}

	active, err := q.bookings.FindActiveByWorkshop(ctx, id)
	if err != nil {
		return nil, err
	}

	return &WorkshopDetailView{
		WorkshopView:   *view,
		ActiveBookings: active,
	}, nil
}

func (q *workshopQueriesImpl) SlotAvailability(ctx context.Context, slotID uuid.UUID) (*SlotAvailabilityView, error) {
	view, err := q.repo.FindSlotAvailability(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return view, nil
}
