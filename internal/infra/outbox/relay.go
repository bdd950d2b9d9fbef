package outbox

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"workshop-booking/internal/infra/query"
	"workshop-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
)

type Queries interface {
	ClaimOutboxEvents(ctx context.Context, db query.DBTX, limit int32) ([]query.OutboxEvents, error)
	MarkOutboxPublished(ctx context.Context, db query.DBTX, ids []int64) error
	MarkOutboxFailed(ctx context.Context, db query.DBTX, id int64, lastError string) error
}

// TxBeginner is satisfied by *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type RelayConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// Relay drains unpublished outbox rows. Rows stay locked by the claiming transaction
// while they are published, so several relays can run side by side.
type Relay struct {
	db        TxBeginner
	queries   Queries
	publisher Publisher
	cfg       RelayConfig

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRelay(db TxBeginner, queries Queries, publisher Publisher, cfg RelayConfig) *Relay {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	return &Relay{
		db:        db,
		queries:   queries,
		publisher: publisher,
		cfg:       cfg,
	}
}

// RunOnce relays a single batch and returns how many events were published.
// A failed publish stops the batch so later events of the same booking are not sent ahead of it.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, errs.Wrap(err, "failed to begin outbox transaction")
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errs.Is(rbErr, pgx.ErrTxClosed) {
			slog.Error("Outbox rollback failed", slog.String("error", rbErr.Error()))
		}
	}()

	events, err := r.queries.ClaimOutboxEvents(ctx, tx, int32(r.cfg.BatchSize)) // #nosec G115 -- small configured batch
	if err != nil {
		return 0, errs.Wrap(err, "failed to claim outbox events")
	}
	if len(events) == 0 {
		return 0, nil
	}

	published := make([]int64, 0, len(events))
	for _, ev := range events {
		pubErr := r.publisher.Publish(ctx, Message{
			ID:        ev.ID,
			Key:       ev.AggregateID.String(),
			Topic:     ev.Topic,
			Payload:   ev.Payload,
			CreatedAt: ev.CreatedAt.Time,
		})
		if pubErr != nil {
			slog.Warn("Outbox publish failed",
				slog.Int64("id", ev.ID),
				slog.String("topic", ev.Topic),
				slog.Int("attempts", int(ev.Attempts)+1),
				slog.String("error", pubErr.Error()))
			if err := r.queries.MarkOutboxFailed(ctx, tx, ev.ID, pubErr.Error()); err != nil {
				return 0, errs.Wrap(err, "failed to record outbox failure")
			}
			break
		}
		published = append(published, ev.ID)
	}

	if len(published) > 0 {
		if err := r.queries.MarkOutboxPublished(ctx, tx, published); err != nil {
			return 0, errs.Wrap(err, "failed to mark outbox events published")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, errs.Wrap(err, "failed to commit outbox transaction")
	}
	return len(published), nil
}

func (r *Relay) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	r.cancel = cancel

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.loop(runCtx)
	}()

	slog.Info("Outbox relay started", slog.Duration("interval", r.cfg.PollInterval))
	return nil
}

func (r *Relay) Stop(ctx context.Context) error {
	if r.cancel != nil {
		r.cancel()
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	slog.Info("Outbox relay stopped")
	return r.publisher.Close()
}

func (r *Relay) loop(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		// keep draining while full batches come back
		for {
			n, err := r.RunOnce(ctx)
			if err != nil {
				if ctx.Err() == nil {
					slog.Error("Outbox relay batch failed", slog.String("error", err.Error()))
				}
				break
			}
			if n < r.cfg.BatchSize {
				break
			}
		}
	}
}
