package repository

import (
	"context"

	"workshop-booking/internal/infra"
	"workshop-booking/internal/infra/query"
	"workshop-booking/internal/pkg/pgconv"
	"workshop-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotQueries interface {
	LockSlot(ctx context.Context, db query.DBTX, slotID uuid.UUID) (query.LockSlotRow, error)
	DecrementSlotSeat(ctx context.Context, db query.DBTX, slotID uuid.UUID) (int64, error)
	IncrementSlotSeat(ctx context.Context, db query.DBTX, slotID uuid.UUID) (int64, error)
}

// SlotRepository is the capacity ledger. It only ever runs on the caller's transaction.
type SlotRepository struct {
	queries SlotQueries
	db      query.DBTX
}

func NewSlotRepository(queries SlotQueries, db query.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SlotRepository) LockSlot(ctx context.Context, slotID uuid.UUID) (*shared.SlotSnapshot, error) {
	row, err := r.queries.LockSlot(ctx, r.db, slotID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock slot", err)
	}

	return &shared.SlotSnapshot{
		ID:                row.ID,
		WorkshopID:        row.WorkshopID,
		RemainingSeats:    int(row.RemainingSeats),
		Capacity:          int(row.Capacity),
		SlotDeletedAt:     pgconv.TimePtrFromPgtype(row.SlotDeletedAt),
		WorkshopDeletedAt: pgconv.TimePtrFromPgtype(row.WorkshopDeletedAt),
	}, nil
}

func (r *SlotRepository) TryDecrement(ctx context.Context, slotID uuid.UUID) (bool, error) {
	affected, err := r.queries.DecrementSlotSeat(ctx, r.db, slotID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement remaining seats", err)
	}
	return affected == 1, nil
}

func (r *SlotRepository) Increment(ctx context.Context, slotID uuid.UUID) error {
	affected, err := r.queries.IncrementSlotSeat(ctx, r.db, slotID)
	if err != nil {
		return infra.WrapRepoErr("failed to increment remaining seats", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}
