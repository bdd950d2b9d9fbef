package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SeatTotalsRow struct {
	ActiveBookings    int64
	UpcomingWorkshops int64
	TotalSeats        int64
	SeatsFilled       int64
}

// Seat totals cover live slots of live upcoming workshops only.
const getSeatTotals = `
SELECT
    (SELECT count(*) FROM bookings WHERE status <> 'CANCELED'),
    (SELECT count(*) FROM workshops WHERE deleted_at IS NULL AND scheduled_at > $1),
    COALESCE(sum(w.capacity), 0),
    COALESCE(sum(w.capacity - s.remaining_seats), 0)
FROM slots s
JOIN workshops w ON w.id = s.workshop_id
WHERE s.deleted_at IS NULL AND w.deleted_at IS NULL AND w.scheduled_at > $1
`

func (q *Queries) GetSeatTotals(ctx context.Context, db DBTX, now pgtype.Timestamptz) (SeatTotalsRow, error) {
	var i SeatTotalsRow
	err := db.QueryRow(ctx, getSeatTotals, now).Scan(
		&i.ActiveBookings,
		&i.UpcomingWorkshops,
		&i.TotalSeats,
		&i.SeatsFilled,
	)
	return i, err
}

type TopWorkshopRow struct {
	WorkshopID   uuid.UUID
	Title        string
	BookingCount int64
}

const listTopWorkshops = `
SELECT w.id, w.title, count(b.id) AS booking_count
FROM workshops w
JOIN bookings b ON b.workshop_id = w.id AND b.status <> 'CANCELED'
WHERE w.deleted_at IS NULL
GROUP BY w.id, w.title
ORDER BY booking_count DESC, w.title
LIMIT $1
`

func (q *Queries) ListTopWorkshops(ctx context.Context, db DBTX, limit int32) ([]TopWorkshopRow, error) {
	rows, err := db.Query(ctx, listTopWorkshops, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []TopWorkshopRow
	for rows.Next() {
		var i TopWorkshopRow
		if err := rows.Scan(&i.WorkshopID, &i.Title, &i.BookingCount); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
