//go:build unit

package handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"workshop-booking/internal/handler"
	"workshop-booking/internal/handler/api"
	"workshop-booking/internal/handler/middleware"
	"workshop-booking/internal/pkg/config"
	"workshop-booking/internal/pkg/jwt"
	"workshop-booking/internal/usecase"
	"workshop-booking/internal/usecase/commands"
	"workshop-booking/tests/common/authtest"
	"workshop-booking/tests/common/builder"
	"workshop-booking/tests/common/httptest"
	"workshop-booking/tests/common/redistest"
	commandsmock "workshop-booking/tests/mock/commands"
	queriesmock "workshop-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type routerFixture struct {
	engine   *gin.Engine
	buckets  *redistest.BucketScripter
	commands *commandsmock.MockReservationCommands
	jwt      *authtest.JWTHelper
}

func newRouterFixture(t *testing.T, capacity int) routerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	cfg := config.NewTestConfig()
	cfg.RateLimit = config.RateLimitConfig{
		Enabled:        true,
		Capacity:       capacity,
		RefillTokens:   capacity,
		RefillInterval: time.Minute,
		TTL:            2 * time.Minute,
		Prefix:         "rl",
	}

	buckets := redistest.NewBucketScripter()
	reservations := commandsmock.NewMockReservationCommands(ctrl)
	workshops := commandsmock.NewMockWorkshopCommands(ctrl)
	workshopQueries := queriesmock.NewMockWorkshopQueries(ctrl)

	engine := gin.New()
	handler.NewRouter(handler.RouterParams{
		Engine:          engine,
		Config:          cfg,
		Logger:          middleware.NewLogger(cfg.Log),
		RateLimiter:     middleware.NewRateLimiter(cfg.RateLimit, buckets),
		AuthMiddleware:  middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer))),
		HealthHandler:   api.NewHealthHandler(pingerFunc(func(context.Context) error { return nil })),
		BookingHandler:  api.NewBookingHandler(reservations, queriesmock.NewMockBookingQueries(ctrl)),
		WorkshopHandler: api.NewWorkshopHandler(workshops, workshopQueries),
		SlotHandler:     api.NewSlotHandler(workshops, workshopQueries),
		StatsHandler:    api.NewStatsHandler(queriesmock.NewMockStatsQueries(ctrl)),
	})

	return routerFixture{
		engine:   engine,
		buckets:  buckets,
		commands: reservations,
		jwt:      authtest.NewJWTHelper(cfg.JWT),
	}
}

func TestRouter_RateLimitsAuthenticatedRoutesPerUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	f := newRouterFixture(t, 1)

	customerID, token := f.jwt.NewCustomer(t)
	otherID, otherToken := f.jwt.NewCustomer(t)
	workshopID, slotID := uuid.New(), uuid.New()

	f.commands.EXPECT().
		Reserve(gomock.Any(), commands.ReserveCommand{CustomerID: customerID, WorkshopID: workshopID, SlotID: slotID}).
		Return(uuid.New(), nil)
	f.commands.EXPECT().
		Reserve(gomock.Any(), commands.ReserveCommand{CustomerID: otherID, WorkshopID: workshopID, SlotID: slotID}).
		Return(uuid.New(), nil)

	body := builder.BookingRequest(workshopID, slotID)

	w := httptest.PerformRequest(t, f.engine, http.MethodPost, "/api/bookings", body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = httptest.PerformRequest(t, f.engine, http.MethodPost, "/api/bookings", body, token)
	httptest.AssertErrorResponse(t, w, http.StatusTooManyRequests, "Rate limit exceeded")

	// same client address, different customer
	w = httptest.PerformRequest(t, f.engine, http.MethodPost, "/api/bookings", body, otherToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	keys := f.buckets.Keys()
	require.Len(t, keys, 3)
	assert.Equal(t, "rl:user:"+customerID.String()+":/api/bookings", keys[0])
	assert.Equal(t, "rl:user:"+otherID.String()+":/api/bookings", keys[2])
}

func TestRouter_AnonymousRequestsAreRejectedBeforeTheLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	f := newRouterFixture(t, 1)

	w := httptest.PerformRequest(t, f.engine, http.MethodGet, "/api/bookings/my-bookings", nil, "")
	httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	assert.Empty(t, f.buckets.Keys())
}

func TestRouter_SwaggerOnlyInDebugMode(t *testing.T) {
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })

	gin.SetMode(gin.TestMode)
	f := newRouterFixture(t, 10)
	w := httptest.PerformRequest(t, f.engine, http.MethodGet, "/swagger/index.html", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	gin.SetMode(gin.DebugMode)
	f = newRouterFixture(t, 10)
	w = httptest.PerformRequest(t, f.engine, http.MethodGet, "/swagger/index.html", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}
