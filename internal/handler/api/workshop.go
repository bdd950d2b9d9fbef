package api

import (
	"net/http"

	reqdto "workshop-booking/internal/handler/dto/request"
	resdto "workshop-booking/internal/handler/dto/response"
	"workshop-booking/internal/handler/httperr"
	"workshop-booking/internal/usecase/commands"
	"workshop-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WorkshopHandler struct {
	cmds commands.WorkshopCommands
	q    queries.WorkshopQueries
}

func NewWorkshopHandler(cmds commands.WorkshopCommands, q queries.WorkshopQueries) *WorkshopHandler {
	return &WorkshopHandler{cmds: cmds, q: q}
}

// @Summary List upcoming workshops
// @Description Public listing; only future workshops and slots that still have seats.
// @Tags workshops
// @Produce json
// @Success 200 {array} resdto.WorkshopResponse
// @Router /api/workshops [get]
func (h *WorkshopHandler) ListPublic(c *gin.Context) {
	views, err := h.q.ListPublic(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	respond(c, http.StatusOK, func() (any, error) { return resdto.FromWorkshopViews(views) })
}

// @Summary List all workshops (operator)
// @Tags workshops
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.WorkshopResponse
// @Router /api/workshops/admin [get]
func (h *WorkshopHandler) ListAdmin(c *gin.Context) {
	views, err := h.q.ListAdmin(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	respond(c, http.StatusOK, func() (any, error) { return resdto.FromWorkshopViews(views) })
}

// @Summary Get workshop with active bookings (operator)
// @Tags workshops
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workshop ID"
// @Success 200 {object} resdto.WorkshopDetailResponse
// @Failure 400,404 {object} httperr.Response
// @Router /api/workshops/{id} [get]
func (h *WorkshopHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	respond(c, http.StatusOK, func() (any, error) { return resdto.FromWorkshopDetail(view) })
}

// @Summary Publish a workshop with its slots (operator)
// @Tags workshops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateWorkshopRequest true "Workshop"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Router /api/workshops [post]
func (h *WorkshopHandler) Create(c *gin.Context) {
	var req reqdto.CreateWorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.PublishWorkshop(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	c.Header("Location", "/api/workshops/"+id.String())
	c.JSON(http.StatusCreated, resdto.CreatedResponse{Message: "Workshop created", ID: id})
}

// @Summary Soft-delete a workshop (operator)
// @Tags workshops
// @Security BearerAuth
// @Param id path string true "Workshop ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400,404 {object} httperr.Response
// @Router /api/workshops/{id} [delete]
func (h *WorkshopHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.SoftDeleteWorkshop(c.Request.Context(), id); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Workshop deleted"})
}

// @Summary Restore a soft-deleted workshop (operator)
// @Tags workshops
// @Security BearerAuth
// @Param id path string true "Workshop ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400,404 {object} httperr.Response
// @Router /api/workshops/{id}/restore [put]
func (h *WorkshopHandler) Restore(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.RestoreWorkshop(c.Request.Context(), id); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Workshop restored"})
}
