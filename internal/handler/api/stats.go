package api

import (
	"net/http"

	resdto "workshop-booking/internal/handler/dto/response"
	"workshop-booking/internal/handler/httperr"
	"workshop-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	q queries.StatsQueries
}

func NewStatsHandler(q queries.StatsQueries) *StatsHandler {
	return &StatsHandler{q: q}
}

// @Summary Dashboard statistics (operator)
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Router /api/stats [get]
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.q.Dashboard(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	respond(c, http.StatusOK, func() (any, error) { return resdto.FromDashboard(stats) })
}
