package queries

import (
	"context"
	"math"

	"workshop-booking/internal/domain/booking"
	"workshop-booking/internal/infra"
	"workshop-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultPageLimit = 10
	MaxListLimit     = 100
)

var (
	ErrBookingNotFound  = errs.New("booking view not found")
	ErrSlotNotFound     = errs.New("slot view not found")
	ErrWorkshopNotFound = errs.New("workshop view not found")
)

// Viewer identifies who is reading; customers only see their own bookings.
type Viewer struct {
	UserID   uuid.UUID
	Operator bool
}

type BookingFilter struct {
	// empty means every active status
	Statuses []booking.Status
	Page     int
	Limit    int
}

type BookingQueries interface {
	GetByID(ctx context.Context, viewer Viewer, id uuid.UUID) (*BookingView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingView, error)
	List(ctx context.Context, filter BookingFilter) (*BookingPage, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingView, error)
	FindPage(ctx context.Context, statuses []string, limit, offset int32) ([]*BookingView, int64, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, viewer Viewer, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	// other customers' bookings read as missing
	if !viewer.Operator && view.CustomerID != viewer.UserID {
		return nil, ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingView, error) {
	return q.repo.FindByCustomer(ctx, customerID)
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter) (*BookingPage, error) {
	page, limit := normalizePaging(filter.Page, filter.Limit)

	statuses := filter.Statuses
	if len(statuses) == 0 {
		statuses = []booking.Status{booking.StatusPending, booking.StatusConfirmed}
	}
	raw := make([]string, len(statuses))
	for i, s := range statuses {
		raw[i] = s.String()
	}

	offset := (page - 1) * limit
	items, total, err := q.repo.FindPage(ctx, raw, int32(limit), int32(offset)) // #nosec G115 -- bounded by normalizePaging
	if err != nil {
		return nil, err
	}

	return &BookingPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	// keeps (page-1)*limit inside the int32 offset the store takes
	if maxPage := math.MaxInt32/limit + 1; page > maxPage {
		page = maxPage
	}
	return page, limit
}
