package bootstrap

import (
	"context"
	"log/slog"

	"workshop-booking/internal/infra/db"
	"workshop-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

// NewDB connects eagerly so a bad DSN fails the app before any hook runs.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			slog.Info("database pool ready",
				slog.String("host", cfg.DB.Host),
				slog.String("database", cfg.DB.DBName),
				slog.Int("max_conns", int(pool.Config().MaxConns)),
				slog.Duration("lock_timeout", cfg.DB.LockTimeout))
			return nil
		},
		OnStop: func(context.Context) error {
			cleanup()
			return nil
		},
	})

	return pool, nil
}
