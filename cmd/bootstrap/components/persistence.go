package components

import (
	"workshop-booking/internal/handler/api"
	"workshop-booking/internal/infra/outbox"
	"workshop-booking/internal/infra/query"
	"workshop-booking/internal/infra/readstore"
	"workshop-booking/internal/infra/uow"
	"workshop-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	writeModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	fx.Annotate(
		func(pool *pgxpool.Pool) *pgxpool.Pool { return pool },
		fx.As(new(api.Pinger)),
		fx.As(new(outbox.TxBeginner)),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
			fx.As(new(queries.BookingActivityRepo)),
		),
		// Workshop
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.WorkshopViewQueries)),
		),
		fx.Annotate(
			readstore.NewWorkshopReadStore,
			fx.As(new(queries.WorkshopViewRepo)),
		),
		// Stats
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.StatsQueries)),
		),
		fx.Annotate(
			readstore.NewStatsReadStore,
			fx.As(new(queries.StatsRepo)),
		),
	),
)

// Write-side repositories are built per transaction inside the unit of work.
var writeModule = fx.Module("persistence/write",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(outbox.Queries)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}
