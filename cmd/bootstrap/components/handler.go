package components

import (
	"workshop-booking/internal/handler"
	"workshop-booking/internal/handler/api"
	"workshop-booking/internal/handler/middleware"
	"workshop-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHealthHandler,
		api.NewBookingHandler,
		api.NewWorkshopHandler,
		api.NewSlotHandler,
		api.NewStatsHandler,
		middleware.NewAuthMiddleware,
		fx.Annotate(
			NewRateLimiter,
			fx.ResultTags(`name:"rateLimiter"`),
		),
	),
	fx.Invoke(handler.NewRouter),
)

// NewRateLimiter keeps a nil client from reaching the limiter as a non-nil interface.
func NewRateLimiter(cfg config.RateLimitConfig, rdb *redis.Client) gin.HandlerFunc {
	if rdb == nil {
		return middleware.NewRateLimiter(cfg, nil)
	}
	return middleware.NewRateLimiter(cfg, rdb)
}
