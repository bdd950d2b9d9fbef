package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type SlotAvailabilityRow struct {
	SlotID            uuid.UUID
	WorkshopID        uuid.UUID
	RemainingSeats    int32
	Capacity          int32
	SlotDeletedAt     pgtype.Timestamptz
	WorkshopDeletedAt pgtype.Timestamptz
}

const getSlotAvailability = `
SELECT s.id, s.workshop_id, s.remaining_seats, w.capacity, s.deleted_at, w.deleted_at
FROM slots s
JOIN workshops w ON w.id = s.workshop_id
WHERE s.id = $1
`

func (q *Queries) GetSlotAvailability(ctx context.Context, db DBTX, slotID uuid.UUID) (SlotAvailabilityRow, error) {
	var i SlotAvailabilityRow
	err := db.QueryRow(ctx, getSlotAvailability, slotID).Scan(
		&i.SlotID,
		&i.WorkshopID,
		&i.RemainingSeats,
		&i.Capacity,
		&i.SlotDeletedAt,
		&i.WorkshopDeletedAt,
	)
	return i, err
}

type BookingViewRow struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	WorkshopID    uuid.UUID
	WorkshopTitle string
	ScheduledAt   pgtype.Timestamptz
	SlotID        uuid.UUID
	StartLabel    string
	EndLabel      string
	Status        string
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

const bookingViewSelect = `
SELECT b.id, b.customer_id, b.workshop_id, w.title, w.scheduled_at,
       b.slot_id, s.start_label, s.end_label, b.status, b.created_at, b.updated_at
FROM bookings b
JOIN workshops w ON w.id = b.workshop_id
JOIN slots s ON s.id = b.slot_id
`

func scanBookingViewRow(row pgx.Row) (BookingViewRow, error) {
	var i BookingViewRow
	err := row.Scan(
		&i.ID,
		&i.CustomerID,
		&i.WorkshopID,
		&i.WorkshopTitle,
		&i.ScheduledAt,
		&i.SlotID,
		&i.StartLabel,
		&i.EndLabel,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectBookingViewRows(rows pgx.Rows) ([]BookingViewRow, error) {
	defer rows.Close()
	var items []BookingViewRow
	for rows.Next() {
		i, err := scanBookingViewRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getBookingView = bookingViewSelect + `WHERE b.id = $1`

func (q *Queries) GetBookingView(ctx context.Context, db DBTX, id uuid.UUID) (BookingViewRow, error) {
	return scanBookingViewRow(db.QueryRow(ctx, getBookingView, id))
}

const listBookingViewsByCustomer = bookingViewSelect + `
WHERE b.customer_id = $1
ORDER BY b.created_at DESC, b.id DESC
`

func (q *Queries) ListBookingViewsByCustomer(ctx context.Context, db DBTX, customerID uuid.UUID) ([]BookingViewRow, error) {
	rows, err := db.Query(ctx, listBookingViewsByCustomer, customerID)
	if err != nil {
		return nil, err
	}
	return collectBookingViewRows(rows)
}

type ListBookingViewsParams struct {
	Statuses []string
	Limit    int32
	Offset   int32
}

const listBookingViews = bookingViewSelect + `
WHERE b.status = ANY($1::text[])
ORDER BY b.created_at DESC, b.id DESC
LIMIT $2 OFFSET $3
`

func (q *Queries) ListBookingViews(ctx context.Context, db DBTX, arg ListBookingViewsParams) ([]BookingViewRow, error) {
	rows, err := db.Query(ctx, listBookingViews, arg.Statuses, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return collectBookingViewRows(rows)
}

const countBookingsByStatus = `
SELECT count(*) FROM bookings WHERE status = ANY($1::text[])
`

func (q *Queries) CountBookingsByStatus(ctx context.Context, db DBTX, statuses []string) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countBookingsByStatus, statuses).Scan(&n)
	return n, err
}

const listActiveBookingViewsByWorkshop = bookingViewSelect + `
WHERE b.workshop_id = $1 AND b.status <> 'CANCELED'
ORDER BY b.created_at, b.id
`

func (q *Queries) ListActiveBookingViewsByWorkshop(ctx context.Context, db DBTX, workshopID uuid.UUID) ([]BookingViewRow, error) {
	rows, err := db.Query(ctx, listActiveBookingViewsByWorkshop, workshopID)
	if err != nil {
		return nil, err
	}
	return collectBookingViewRows(rows)
}

type ListWorkshopsParams struct {
	IncludeDeleted bool
	// zero value disables the filter
	ScheduledAfter pgtype.Timestamptz
}

const listWorkshops = `
SELECT id, title, description, scheduled_at, capacity, deleted_at, created_at
FROM workshops
WHERE ($1::boolean OR deleted_at IS NULL)
  AND ($2::timestamptz IS NULL OR scheduled_at > $2)
ORDER BY scheduled_at, id
`

func (q *Queries) ListWorkshops(ctx context.Context, db DBTX, arg ListWorkshopsParams) ([]Workshops, error) {
	rows, err := db.Query(ctx, listWorkshops, arg.IncludeDeleted, arg.ScheduledAfter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Workshops
	for rows.Next() {
		var i Workshops
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Description,
			&i.ScheduledAt,
			&i.Capacity,
			&i.DeletedAt,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getWorkshop = `
SELECT id, title, description, scheduled_at, capacity, deleted_at, created_at
FROM workshops
WHERE id = $1
`

func (q *Queries) GetWorkshop(ctx context.Context, db DBTX, id uuid.UUID) (Workshops, error) {
	var i Workshops
	err := db.QueryRow(ctx, getWorkshop, id).Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.ScheduledAt,
		&i.Capacity,
		&i.DeletedAt,
		&i.CreatedAt,
	)
	return i, err
}

type Slots struct {
	ID             uuid.UUID
	WorkshopID     uuid.UUID
	StartLabel     string
	EndLabel       string
	RemainingSeats int32
	DeletedAt      pgtype.Timestamptz
}

type ListSlotsByWorkshopsParams struct {
	WorkshopIDs   []uuid.UUID
	OnlyAvailable bool
}

const listSlotsByWorkshops = `
SELECT id, workshop_id, start_label, end_label, remaining_seats, deleted_at
FROM slots
WHERE workshop_id = ANY($1::uuid[])
  AND deleted_at IS NULL
  AND (NOT $2::boolean OR remaining_seats > 0)
ORDER BY workshop_id, created_at, id
`

func (q *Queries) ListSlotsByWorkshops(ctx context.Context, db DBTX, arg ListSlotsByWorkshopsParams) ([]Slots, error) {
	rows, err := db.Query(ctx, listSlotsByWorkshops, arg.WorkshopIDs, arg.OnlyAvailable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Slots
	for rows.Next() {
		var i Slots
		if err := rows.Scan(
			&i.ID,
			&i.WorkshopID,
			&i.StartLabel,
			&i.EndLabel,
			&i.RemainingSeats,
			&i.DeletedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
