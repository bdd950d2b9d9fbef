package repository

import (
	"context"
	"time"

	"workshop-booking/internal/domain/workshop"
	"workshop-booking/internal/infra"
	"workshop-booking/internal/infra/query"
	"workshop-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type WorkshopWriteQueries interface {
	InsertWorkshop(ctx context.Context, db query.DBTX, arg query.InsertWorkshopParams) error
	InsertSlot(ctx context.Context, db query.DBTX, arg query.InsertSlotParams) error
	GetWorkshopForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Workshops, error)
	SetWorkshopDeletedAt(ctx context.Context, db query.DBTX, id uuid.UUID, deletedAt pgtype.Timestamptz) (int64, error)
	UpdateSlotLabels(ctx context.Context, db query.DBTX, slotID uuid.UUID, start, end string) (int64, error)
	SoftDeleteSlot(ctx context.Context, db query.DBTX, slotID uuid.UUID, at pgtype.Timestamptz) (int64, error)
}

type WorkshopRepository struct {
	queries WorkshopWriteQueries
	db      query.DBTX
}

func NewWorkshopRepository(queries WorkshopWriteQueries, db query.DBTX) *WorkshopRepository {
	return &WorkshopRepository{
		queries: queries,
		db:      db,
	}
}

func (r *WorkshopRepository) Create(ctx context.Context, w *workshop.Workshop) error {
	params := query.InsertWorkshopParams{
		ID:          w.ID(),
		Title:       w.Title(),
		Description: w.Description(),
		ScheduledAt: pgconv.TimeToPgtype(w.ScheduledAt()),
		Capacity:    int32(w.Capacity()), // #nosec G115 -- capacity is validated positive and small
	}
	if err := r.queries.InsertWorkshop(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to insert workshop", err)
	}

	for _, s := range w.Slots() {
		if err := r.AddSlot(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (r *WorkshopRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*workshop.Workshop, error) {
	row, err := r.queries.GetWorkshopForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("workshop not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock workshop", err)
	}

	return workshop.ReconstructWorkshop(
		row.ID,
		row.Title,
		row.Description,
		row.ScheduledAt.Time,
		int(row.Capacity),
		pgconv.TimePtrFromPgtype(row.DeletedAt),
		row.CreatedAt.Time,
	), nil
}

// SetDeletedAt soft-deletes the workshop, or restores it when deletedAt is nil.
func (r *WorkshopRepository) SetDeletedAt(ctx context.Context, id uuid.UUID, deletedAt *time.Time) error {
	var ts pgtype.Timestamptz
	if deletedAt != nil {
		ts = pgconv.TimeToPgtype(*deletedAt)
	}

	affected, err := r.queries.SetWorkshopDeletedAt(ctx, r.db, id, ts)
	if err != nil {
		return infra.WrapRepoErr("failed to update workshop deletion", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("workshop not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *WorkshopRepository) AddSlot(ctx context.Context, s *workshop.Slot) error {
	params := query.InsertSlotParams{
		ID:             s.ID(),
		WorkshopID:     s.WorkshopID(),
		StartLabel:     s.Labels().Start,
		EndLabel:       s.Labels().End,
		RemainingSeats: int32(s.Remaining()), // #nosec G115 -- bounded by workshop capacity
	}
	if err := r.queries.InsertSlot(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to insert slot", err)
	}
	return nil
}

func (r *WorkshopRepository) UpdateSlotLabels(ctx context.Context, slotID uuid.UUID, labels workshop.SlotLabels) error {
	affected, err := r.queries.UpdateSlotLabels(ctx, r.db, slotID, labels.Start, labels.End)
	if err != nil {
		return infra.WrapRepoErr("failed to update slot", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *WorkshopRepository) SoftDeleteSlot(ctx context.Context, slotID uuid.UUID, at time.Time) error {
	affected, err := r.queries.SoftDeleteSlot(ctx, r.db, slotID, pgconv.TimeToPgtype(at))
	if err != nil {
		return infra.WrapRepoErr("failed to delete slot", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}
