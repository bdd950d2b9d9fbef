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

type SlotHandler struct {
	cmds commands.WorkshopCommands
	q    queries.WorkshopQueries
}

func NewSlotHandler(cmds commands.WorkshopCommands, q queries.WorkshopQueries) *SlotHandler {
	return &SlotHandler{cmds: cmds, q: q}
}

// @Summary Remaining seats of a slot
// @Tags slots
// @Produce json
// @Param id path string true "Slot ID"
// @Success 200 {object} resdto.SlotAvailabilityResponse
// @Failure 400,404 {object} httperr.Response
// @Router /api/slots/{id}/availability [get]
func (h *SlotHandler) Availability(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.SlotAvailability(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	respond(c, http.StatusOK, func() (any, error) { return resdto.FromSlotAvailability(view) })
}

// @Summary Add a slot to a workshop (operator)
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workshop ID"
// @Param request body reqdto.SlotRequest true "Slot labels"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400,404 {object} httperr.Response
// @Router /api/workshops/{id}/slots [post]
func (h *SlotHandler) Add(c *gin.Context) {
	workshopID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.AddSlot(c.Request.Context(), req.ToAddInput(workshopID))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{Message: "Time slot added", ID: id})
}

// @Summary Relabel a slot (operator)
// @Description Only the start/end labels change; seats are never writable here.
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Param request body reqdto.SlotRequest true "Slot labels"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400,404 {object} httperr.Response
// @Router /api/slots/{id} [put]
func (h *SlotHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.UpdateSlotLabels(c.Request.Context(), req.ToUpdateInput(id)); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Time slot updated"})
}

// @Summary Delete a slot without active bookings (operator)
// @Tags slots
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400,404,409 {object} httperr.Response
// @Router /api/slots/{id} [delete]
func (h *SlotHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteSlot(c.Request.Context(), id); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Time slot deleted"})
}
