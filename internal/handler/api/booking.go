package api

import (
	"net/http"

	"workshop-booking/internal/domain/booking"
	reqdto "workshop-booking/internal/handler/dto/request"
	resdto "workshop-booking/internal/handler/dto/response"
	"workshop-booking/internal/handler/httperr"
	"workshop-booking/internal/handler/middleware"
	"workshop-booking/internal/pkg/errs"
	"workshop-booking/internal/usecase/commands"
	"workshop-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errMissingIdentity = errs.New("authenticated user missing from context")

type BookingHandler struct {
	cmds commands.ReservationCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.ReservationCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Reserve a seat
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingCreatedResponse
// @Failure 400,404,409,503 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Reserve(c.Request.Context(), commands.ReserveCommand{
		CustomerID: userID,
		WorkshopID: req.WorkshopID,
		SlotID:     req.SlotID,
	})
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	c.Header("Location", "/api/bookings/"+id.String())
	c.JSON(http.StatusCreated, resdto.BookingCreatedResponse{Message: "Booking successful", BookingID: id})
}

// @Summary List my bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Router /api/bookings/my-bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListByCustomer(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	respond(c, http.StatusOK, func() (any, error) { return resdto.FromBookingViews(views) })
}

// @Summary Get a booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400,404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(c)

	view, err := h.q.GetByID(c.Request.Context(), queries.Viewer{
		UserID:   userID,
		Operator: middleware.IsOperator(c),
	}, id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	respond(c, http.StatusOK, func() (any, error) { return resdto.FromBookingView(view) })
}

// @Summary Cancel my booking
// @Description Canceling an already canceled booking succeeds with alreadyCanceled=true.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingStatusResponse
// @Failure 400,404,503 {object} httperr.Response
// @Router /api/bookings/my-bookings/{id}/cancel [put]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	err := h.cmds.Cancel(c.Request.Context(), commands.CancelCommand{
		BookingID: id,
		CallerID:  userID,
		Operator:  middleware.IsOperator(c),
	})
	switch {
	case errs.Is(err, commands.ErrAlreadyCanceled):
		c.JSON(http.StatusOK, resdto.BookingStatusResponse{
			Message:         "Booking was already canceled",
			BookingID:       id,
			Status:          booking.StatusCanceled.String(),
			AlreadyCanceled: true,
		})
	case err != nil:
		httperr.AbortWithUseCaseError(c, err)
	default:
		c.JSON(http.StatusOK, resdto.BookingStatusResponse{
			Message:   "Booking canceled successfully",
			BookingID: id,
			Status:    booking.StatusCanceled.String(),
		})
	}
}

// @Summary List bookings (operator)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Comma separated statuses, default PENDING,CONFIRMED"
// @Param page query int false "Page, 1-based"
// @Param limit query int false "Page size, max 100"
// @Success 200 {object} resdto.BookingListResponse
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	page, err := h.q.List(c.Request.Context(), queries.BookingFilter{
		Statuses: q.Statuses(),
		Page:     q.Page,
		Limit:    q.Limit,
	})
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	respond(c, http.StatusOK, func() (any, error) { return resdto.FromBookingPage(page) })
}

// @Summary Set booking status (operator)
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} resdto.BookingStatusResponse
// @Failure 400,403,404,409,503 {object} httperr.Response
// @Router /api/bookings/{id} [put]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	previous, err := h.cmds.AdminSetStatus(c.Request.Context(), commands.SetStatusCommand{
		BookingID: id,
		Status:    req.Status,
		Operator:  middleware.IsOperator(c),
	})
	switch {
	case errs.Is(err, commands.ErrAlreadyCanceled):
		c.JSON(http.StatusOK, resdto.BookingStatusResponse{
			Message:         "Booking was already canceled",
			BookingID:       id,
			Status:          booking.StatusCanceled.String(),
			PreviousStatus:  previous.String(),
			AlreadyCanceled: true,
		})
	case err != nil:
		httperr.AbortWithUseCaseError(c, err)
	default:
		// validated by the command, so the parse cannot fail here
		next, _ := booking.ParseStatus(req.Status)
		c.JSON(http.StatusOK, resdto.BookingStatusResponse{
			Message:        "Booking status updated",
			BookingID:      id,
			Status:         next.String(),
			PreviousStatus: previous.String(),
		})
	}
}
