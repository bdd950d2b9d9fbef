package repository

import (
	"context"

	"workshop-booking/internal/infra"
	"workshop-booking/internal/infra/query"
	"workshop-booking/internal/usecase/shared"
)

type OutboxQueries interface {
	InsertOutboxEvent(ctx context.Context, db query.DBTX, arg query.InsertOutboxEventParams) error
}

type OutboxRepository struct {
	queries OutboxQueries
	db      query.DBTX
}

func NewOutboxRepository(queries OutboxQueries, db query.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Append(ctx context.Context, event shared.OutboxEvent) error {
	params := query.InsertOutboxEventParams{
		AggregateID: event.AggregateID,
		Topic:       event.Topic,
		Payload:     event.Payload,
	}
	if err := r.queries.InsertOutboxEvent(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to append outbox event", err)
	}
	return nil
}
