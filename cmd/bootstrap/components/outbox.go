package components

import (
	"context"

	"workshop-booking/internal/infra/outbox"
	"workshop-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var OutboxModule = fx.Module("outbox",
	fx.Provide(
		outbox.NewPublisher,
		NewRelay,
	),
	fx.Invoke(func(*outbox.Relay) {}),
)

// NewRelay ties the relay loop to the application lifecycle.
func NewRelay(lc fx.Lifecycle, cfg config.Config, db outbox.TxBeginner, q outbox.Queries, pub outbox.Publisher) *outbox.Relay {
	relay := outbox.NewRelay(db, q, pub, outbox.RelayConfig{
		PollInterval: cfg.Outbox.PollInterval,
		BatchSize:    cfg.Outbox.BatchSize,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return relay.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return relay.Stop(ctx)
		},
	})

	return relay
}
