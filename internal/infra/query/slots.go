package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type LockSlotRow struct {
	ID                uuid.UUID
	WorkshopID        uuid.UUID
	RemainingSeats    int32
	Capacity          int32
	SlotDeletedAt     pgtype.Timestamptz
	WorkshopDeletedAt pgtype.Timestamptz
}

const lockSlot = `
SELECT s.id, s.workshop_id, s.remaining_seats, w.capacity, s.deleted_at, w.deleted_at
FROM slots s
JOIN workshops w ON w.id = s.workshop_id
WHERE s.id = $1
FOR UPDATE OF s
`

func (q *Queries) LockSlot(ctx context.Context, db DBTX, slotID uuid.UUID) (LockSlotRow, error) {
	var i LockSlotRow
	err := db.QueryRow(ctx, lockSlot, slotID).Scan(
		&i.ID,
		&i.WorkshopID,
		&i.RemainingSeats,
		&i.Capacity,
		&i.SlotDeletedAt,
		&i.WorkshopDeletedAt,
	)
	return i, err
}

const decrementSlotSeat = `
UPDATE slots
SET remaining_seats = remaining_seats - 1, updated_at = now()
WHERE id = $1 AND remaining_seats > 0
`

func (q *Queries) DecrementSlotSeat(ctx context.Context, db DBTX, slotID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, decrementSlotSeat, slotID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const incrementSlotSeat = `
UPDATE slots s
SET remaining_seats = LEAST(s.remaining_seats + 1, w.capacity), updated_at = now()
FROM workshops w
WHERE w.id = s.workshop_id AND s.id = $1
`

func (q *Queries) IncrementSlotSeat(ctx context.Context, db DBTX, slotID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, incrementSlotSeat, slotID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type InsertSlotParams struct {
	ID             uuid.UUID
	WorkshopID     uuid.UUID
	StartLabel     string
	EndLabel       string
	RemainingSeats int32
}

const insertSlot = `
INSERT INTO slots (id, workshop_id, start_label, end_label, remaining_seats)
VALUES ($1, $2, $3, $4, $5)
`

func (q *Queries) InsertSlot(ctx context.Context, db DBTX, arg InsertSlotParams) error {
	_, err := db.Exec(ctx, insertSlot,
		arg.ID,
		arg.WorkshopID,
		arg.StartLabel,
		arg.EndLabel,
		arg.RemainingSeats,
	)
	return err
}

const updateSlotLabels = `
UPDATE slots
SET start_label = $2, end_label = $3, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL
`

func (q *Queries) UpdateSlotLabels(ctx context.Context, db DBTX, slotID uuid.UUID, start, end string) (int64, error) {
	tag, err := db.Exec(ctx, updateSlotLabels, slotID, start, end)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const softDeleteSlot = `
UPDATE slots
SET deleted_at = $2, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL
`

func (q *Queries) SoftDeleteSlot(ctx context.Context, db DBTX, slotID uuid.UUID, at pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, softDeleteSlot, slotID, at)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
