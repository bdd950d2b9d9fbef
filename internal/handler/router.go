package handler

import (
	"net/http"

	"workshop-booking/internal/handler/api"
	"workshop-booking/internal/handler/middleware"
	"workshop-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine          *gin.Engine
	Config          config.Config
	Logger          *middleware.Logger
	RateLimiter     gin.HandlerFunc `name:"rateLimiter"`
	AuthMiddleware  *middleware.AuthMiddleware
	HealthHandler   *api.HealthHandler
	BookingHandler  *api.BookingHandler
	WorkshopHandler *api.WorkshopHandler
	SlotHandler     *api.SlotHandler
	StatsHandler    *api.StatsHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	p.Engine.GET("/health", p.HealthHandler.Check)

	if gin.Mode() == gin.DebugMode {
		p.Engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// the limiter runs after RequireAuth so authenticated callers get their own bucket
	limit := p.RateLimiter
	public := []gin.HandlerFunc{limit}
	authed := []gin.HandlerFunc{p.AuthMiddleware.RequireAuth(), limit}
	operator := append(append([]gin.HandlerFunc{}, authed...), p.AuthMiddleware.RequireOperator())

	apiGroup := p.Engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: p.BookingHandler.Create, Mw: authed},
			{Method: http.MethodGet, Path: "/my-bookings", Handler: p.BookingHandler.ListMine, Mw: authed},
			{Method: http.MethodPut, Path: "/my-bookings/:id/cancel", Handler: p.BookingHandler.Cancel, Mw: authed},
			{Method: http.MethodGet, Path: "/:id", Handler: p.BookingHandler.Get, Mw: authed},
			{Method: http.MethodGet, Path: "", Handler: p.BookingHandler.List, Mw: operator},
			{Method: http.MethodPut, Path: "/:id", Handler: p.BookingHandler.UpdateStatus, Mw: operator},
		})

		workshops := apiGroup.Group("/workshops")
		addRoutes(workshops, []route{
			{Method: http.MethodGet, Path: "", Handler: p.WorkshopHandler.ListPublic, Mw: public},
			{Method: http.MethodPost, Path: "", Handler: p.WorkshopHandler.Create, Mw: operator},
			{Method: http.MethodGet, Path: "/admin", Handler: p.WorkshopHandler.ListAdmin, Mw: operator},
			{Method: http.MethodGet, Path: "/:id", Handler: p.WorkshopHandler.Get, Mw: operator},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.WorkshopHandler.Delete, Mw: operator},
			{Method: http.MethodPut, Path: "/:id/restore", Handler: p.WorkshopHandler.Restore, Mw: operator},
			{Method: http.MethodPost, Path: "/:id/slots", Handler: p.SlotHandler.Add, Mw: operator},
		})

		slots := apiGroup.Group("/slots")
		addRoutes(slots, []route{
			{Method: http.MethodGet, Path: "/:id/availability", Handler: p.SlotHandler.Availability, Mw: public},
			{Method: http.MethodPut, Path: "/:id", Handler: p.SlotHandler.Update, Mw: operator},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.SlotHandler.Delete, Mw: operator},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/stats", Handler: p.StatsHandler.Dashboard, Mw: operator},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
