package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type Bookings struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	WorkshopID uuid.UUID
	SlotID     uuid.UUID
	Status     string
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
	DeletedAt  pgtype.Timestamptz
}

const bookingColumns = `id, customer_id, workshop_id, slot_id, status, created_at, updated_at, deleted_at`

func scanBooking(row pgx.Row) (Bookings, error) {
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.CustomerID,
		&i.WorkshopID,
		&i.SlotID,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.DeletedAt,
	)
	return i, err
}

type InsertBookingParams struct {
	CustomerID uuid.UUID
	WorkshopID uuid.UUID
	SlotID     uuid.UUID
	Status     string
	CreatedAt  pgtype.Timestamptz
}

const insertBooking = `
INSERT INTO bookings (customer_id, workshop_id, slot_id, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING id
`

func (q *Queries) InsertBooking(ctx context.Context, db DBTX, arg InsertBookingParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, insertBooking,
		arg.CustomerID,
		arg.WorkshopID,
		arg.SlotID,
		arg.Status,
		arg.CreatedAt,
	).Scan(&id)
	return id, err
}

const findActiveBooking = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE customer_id = $1 AND slot_id = $2 AND status <> 'CANCELED'
LIMIT 1
`

func (q *Queries) FindActiveBooking(ctx context.Context, db DBTX, customerID, slotID uuid.UUID) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, findActiveBooking, customerID, slotID))
}

const getBooking = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBooking(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, getBooking, id))
}

const getBookingForUpdate = getBooking + `FOR UPDATE
`

func (q *Queries) GetBookingForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, getBookingForUpdate, id))
}

// The CTE locks the row and carries the old status into RETURNING.
const setBookingStatus = `
WITH prev AS (
    SELECT id, status FROM bookings WHERE id = $1 FOR UPDATE
)
UPDATE bookings b
SET status = $2, updated_at = now()
FROM prev
WHERE b.id = prev.id
RETURNING prev.status
`

func (q *Queries) SetBookingStatus(ctx context.Context, db DBTX, id uuid.UUID, status string) (string, error) {
	var previous string
	err := db.QueryRow(ctx, setBookingStatus, id, status).Scan(&previous)
	return previous, err
}

const countActiveBookingsBySlot = `
SELECT count(*) FROM bookings WHERE slot_id = $1 AND status <> 'CANCELED'
`

func (q *Queries) CountActiveBookingsBySlot(ctx context.Context, db DBTX, slotID uuid.UUID) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countActiveBookingsBySlot, slotID).Scan(&n)
	return n, err
}
