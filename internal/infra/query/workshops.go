package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Workshops struct {
	ID          uuid.UUID
	Title       string
	Description string
	ScheduledAt pgtype.Timestamptz
	Capacity    int32
	DeletedAt   pgtype.Timestamptz
	CreatedAt   pgtype.Timestamptz
}

type InsertWorkshopParams struct {
	ID          uuid.UUID
	Title       string
	Description string
	ScheduledAt pgtype.Timestamptz
	Capacity    int32
}

const insertWorkshop = `
INSERT INTO workshops (id, title, description, scheduled_at, capacity)
VALUES ($1, $2, $3, $4, $5)
`

func (q *Queries) InsertWorkshop(ctx context.Context, db DBTX, arg InsertWorkshopParams) error {
	_, err := db.Exec(ctx, insertWorkshop,
		arg.ID,
		arg.Title,
		arg.Description,
		arg.ScheduledAt,
		arg.Capacity,
	)
	return err
}

const getWorkshopForUpdate = `
SELECT id, title, description, scheduled_at, capacity, deleted_at, created_at
FROM workshops
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetWorkshopForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Workshops, error) {
	var i Workshops
	err := db.QueryRow(ctx, getWorkshopForUpdate, id).Scan(
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

const setWorkshopDeletedAt = `
UPDATE workshops
SET deleted_at = $2, updated_at = now()
WHERE id = $1
`

func (q *Queries) SetWorkshopDeletedAt(ctx context.Context, db DBTX, id uuid.UUID, deletedAt pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, setWorkshopDeletedAt, id, deletedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
