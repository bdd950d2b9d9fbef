package readstore

import (
	"context"

	"workshop-booking/internal/infra"
	"workshop-booking/internal/infra/query"
	"workshop-booking/internal/pkg/pgconv"
	"workshop-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type WorkshopViewQueries interface {
	ListWorkshops(ctx context.Context, db query.DBTX, arg query.ListWorkshopsParams) ([]query.Workshops, error)
	GetWorkshop(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Workshops, error)
	ListSlotsByWorkshops(ctx context.Context, db query.DBTX, arg query.ListSlotsByWorkshopsParams) ([]query.Slots, error)
	GetSlotAvailability(ctx context.Context, db query.DBTX, slotID uuid.UUID) (query.SlotAvailabilityRow, error)
}

type WorkshopReadStore struct {
	queries WorkshopViewQueries
	db      query.DBTX
}

func NewWorkshopReadStore(queries WorkshopViewQueries, db query.DBTX) *WorkshopReadStore {
	return &WorkshopReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *WorkshopReadStore) FindWorkshops(ctx context.Context, filter queries.WorkshopListFilter) ([]*queries.WorkshopView, error) {
	params := query.ListWorkshopsParams{IncludeDeleted: filter.IncludeDeleted}
	if filter.UpcomingAfter != nil {
		params.ScheduledAfter = pgconv.TimeToPgtype(*filter.UpcomingAfter)
	}

	rows, err := r.queries.ListWorkshops(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list workshops", err)
	}

	views := make([]*queries.WorkshopView, len(rows))
	for i, row := range rows {
		views[i] = rowToWorkshopView(row)
	}
	if err := r.attachSlots(ctx, views, filter.UpcomingAfter != nil); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *WorkshopReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.WorkshopView, error) {
	row, err := r.queries.GetWorkshop(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("workshop not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find workshop by ID", err)
	}

	view := rowToWorkshopView(row)
	if err := r.attachSlots(ctx, []*queries.WorkshopView{view}, false); err != nil {
		return nil, err
	}
	return view, nil
}

func (r *WorkshopReadStore) FindSlotAvailability(ctx context.Context, slotID uuid.UUID) (*queries.SlotAvailabilityView, error) {
	row, err := r.queries.GetSlotAvailability(ctx, r.db, slotID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read slot availability", err)
	}

	return &queries.SlotAvailabilityView{
		SlotID:         row.SlotID,
		WorkshopID:     row.WorkshopID,
		RemainingSeats: int(row.RemainingSeats),
		Capacity:       int(row.Capacity),
		Bookable:       !row.SlotDeletedAt.Valid && !row.WorkshopDeletedAt.Valid,
	}, nil
}

// attachSlots loads slots for all views in one round trip.
func (r *WorkshopReadStore) attachSlots(ctx context.Context, views []*queries.WorkshopView, onlyAvailable bool) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(views))
	byID := make(map[uuid.UUID]*queries.WorkshopView, len(views))
	for i, v := range views {
		ids[i] = v.ID
		byID[v.ID] = v
		v.Slots = []queries.SlotView{}
	}

	slots, err := r.queries.ListSlotsByWorkshops(ctx, r.db, query.ListSlotsByWorkshopsParams{
		WorkshopIDs:   ids,
		OnlyAvailable: onlyAvailable,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to list slots", err)
	}

	for _, s := range slots {
		if v, ok := byID[s.WorkshopID]; ok {
			v.Slots = append(v.Slots, queries.SlotView{
				ID:             s.ID,
				WorkshopID:     s.WorkshopID,
				StartTime:      s.StartLabel,
				EndTime:        s.EndLabel,
				RemainingSeats: int(s.RemainingSeats),
				DeletedAt:      pgconv.TimePtrFromPgtype(s.DeletedAt),
			})
		}
	}
	return nil
}

func rowToWorkshopView(row query.Workshops) *queries.WorkshopView {
	return &queries.WorkshopView{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		ScheduledAt: row.ScheduledAt.Time,
		Capacity:    int(row.Capacity),
		DeletedAt:   pgconv.TimePtrFromPgtype(row.DeletedAt),
		CreatedAt:   row.CreatedAt.Time,
	}
}

