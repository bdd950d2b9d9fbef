package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OutboxEvents struct {
	ID          int64
	AggregateID uuid.UUID
	Topic       string
	Payload     []byte
	Attempts    int32
	CreatedAt   pgtype.Timestamptz
}

type InsertOutboxEventParams struct {
	AggregateID uuid.UUID
	Topic       string
	Payload     []byte
}

const insertOutboxEvent = `
INSERT INTO outbox_events (aggregate_id, topic, payload)
VALUES ($1, $2, $3)
`

func (q *Queries) InsertOutboxEvent(ctx context.Context, db DBTX, arg InsertOutboxEventParams) error {
	_, err := db.Exec(ctx, insertOutboxEvent, arg.AggregateID, arg.Topic, arg.Payload)
	return err
}

// Concurrent relays skip each other's claimed rows.
const claimOutboxEvents = `
SELECT id, aggregate_id, topic, payload, attempts, created_at
FROM outbox_events
WHERE published_at IS NULL
ORDER BY id
LIMIT $1
FOR UPDATE SKIP LOCKED
`

func (q *Queries) ClaimOutboxEvents(ctx context.Context, db DBTX, limit int32) ([]OutboxEvents, error) {
	rows, err := db.Query(ctx, claimOutboxEvents, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OutboxEvents
	for rows.Next() {
		var i OutboxEvents
		if err := rows.Scan(
			&i.ID,
			&i.AggregateID,
			&i.Topic,
			&i.Payload,
			&i.Attempts,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const markOutboxPublished = `
UPDATE outbox_events
SET published_at = now(), attempts = attempts + 1, last_error = NULL
WHERE id = ANY($1::bigint[])
`

func (q *Queries) MarkOutboxPublished(ctx context.Context, db DBTX, ids []int64) error {
	_, err := db.Exec(ctx, markOutboxPublished, ids)
	return err
}

const markOutboxFailed = `
UPDATE outbox_events
SET attempts = attempts + 1, last_error = $2
WHERE id = $1
`

func (q *Queries) MarkOutboxFailed(ctx context.Context, db DBTX, id int64, lastError string) error {
	_, err := db.Exec(ctx, markOutboxFailed, id, lastError)
	return err
}
