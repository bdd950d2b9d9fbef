//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"workshop-booking/internal/domain/booking"
	"workshop-booking/internal/handler/api"
	resdto "workshop-booking/internal/handler/dto/response"
	"workshop-booking/internal/pkg/errs"
	"workshop-booking/internal/usecase/commands"
	"workshop-booking/internal/usecase/queries"
	"workshop-booking/internal/usecase/shared"
	"workshop-booking/tests/common/httptest"
	"workshop-booking/tests/common/testutil"
	commandsmock "workshop-booking/tests/mock/commands"
	queriesmock "workshop-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockBookingQueries
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.router = newTestEngine()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.userID = uuid.New()

	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)
	auth := fakeAuth(s.userID)

	s.router.POST("/api/bookings", auth, h.Create)
	s.router.GET("/api/bookings", auth, h.List)
	s.router.GET("/api/bookings/my-bookings", auth, h.ListMine)
	s.router.PUT("/api/bookings/my-bookings/:id/cancel", auth, h.Cancel)
	s.router.GET("/api/bookings/:id", auth, h.Get)
	s.router.PUT("/api/bookings/:id", auth, h.UpdateStatus)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// Create
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/api/bookings"
	workshopID, slotID := uuid.New(), uuid.New()
	reqBody := map[string]any{
		"workshopId": workshopID.String(),
		"timeSlotId": slotID.String(),
	}

	s.Run("success: 201 with booking id", func() {
		bookingID := uuid.New()
		s.mockCommands.EXPECT().Reserve(gomock.Any(), commands.ReserveCommand{
			CustomerID: s.userID,
			WorkshopID: workshopID,
			SlotID:     slotID,
		}).Return(bookingID, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, customerToken)

		var body resdto.BookingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(bookingID, body.BookingID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/" + bookingID.String()})
	})

	outcomes := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"duplicate booking", commands.ErrDuplicateBooking, http.StatusConflict, "already booked"},
		{"slot full", commands.ErrSlotFull, http.StatusConflict, "No available seats"},
		{"slot mismatch", commands.ErrSlotMismatch, http.StatusBadRequest, "does not belong"},
		{"slot not found", commands.ErrSlotNotFound, http.StatusNotFound, "Time slot not found"},
		{"transient conflict", errs.Mark(errs.New("40001"), shared.ErrTransient), http.StatusServiceUnavailable, "retry"},
		{"database failure", errs.Mark(errs.New("conn"), commands.ErrDatabaseOperationFailed), http.StatusInternalServerError, "Internal"},
	}
	for _, tc := range outcomes {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, customerToken)

			httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
		})
	}

	invalid := []struct {
		name   string
		mutate testutil.Mutation
	}{
		{"missing workshopId", testutil.Field("workshopId", nil)},
		{"missing timeSlotId", testutil.Field("timeSlotId", nil)},
		{"malformed timeSlotId", testutil.Field("timeSlotId", "not-a-uuid")},
	}
	for _, tc := range invalid {
		s.Run("error: 400 on "+tc.name, func() {
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, customerToken)

			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// Cancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/api/bookings/my-bookings/" + bookingID.String() + "/cancel"

	s.Run("success", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), commands.CancelCommand{
			BookingID: bookingID,
			CallerID:  s.userID,
		}).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, customerToken)

		var body resdto.BookingStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("CANCELED", body.Status)
		s.False(body.AlreadyCanceled)
	})

	s.Run("already canceled is a 200 with the flag set", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any()).Return(commands.ErrAlreadyCanceled)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, customerToken)

		var body resdto.BookingStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.AlreadyCanceled)
	})

	s.Run("another customer's booking looks missing", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any()).Return(commands.ErrNotOwner)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, customerToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("operator flag is forwarded", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), commands.CancelCommand{
			BookingID: bookingID,
			CallerID:  s.userID,
			Operator:  true,
		}).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, operatorToken)

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/bookings/my-bookings/nope/cancel", nil, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// UpdateStatus
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	bookingID := uuid.New()
	url := "/api/bookings/" + bookingID.String()

	s.Run("success: returns previous and new status", func() {
		s.mockCommands.EXPECT().AdminSetStatus(gomock.Any(), commands.SetStatusCommand{
			BookingID: bookingID,
			Status:    "confirmed",
			Operator:  true,
		}).Return(booking.StatusPending, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "confirmed"}, operatorToken)

		var body resdto.BookingStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("CONFIRMED", body.Status)
		s.Equal("PENDING", body.PreviousStatus)
	})

	s.Run("already canceled", func() {
		s.mockCommands.EXPECT().AdminSetStatus(gomock.Any(), gomock.Any()).Return(booking.StatusCanceled, commands.ErrAlreadyCanceled)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "PENDING"}, operatorToken)

		var body resdto.BookingStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.AlreadyCanceled)
		s.Equal("CANCELED", body.PreviousStatus)
	})

	errCases := []struct {
		name   string
		err    error
		status int
	}{
		{"customer is forbidden", commands.ErrForbidden, http.StatusForbidden},
		{"unknown status", errs.Mark(errs.New("oneof"), commands.ErrInvalidStatus), http.StatusBadRequest},
		{"confirmed back to pending", commands.ErrInvalidTransition, http.StatusConflict},
		{"missing booking", commands.ErrBookingNotFound, http.StatusNotFound},
	}
	for _, tc := range errCases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().AdminSetStatus(gomock.Any(), gomock.Any()).Return(booking.Status(""), tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "ARCHIVED"}, customerToken)

			s.Equal(tc.status, rec.Code)
		})
	}

	s.Run("missing status field", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, operatorToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// Reads
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	bookingID := uuid.New()

	s.Run("viewer identity is forwarded", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), queries.Viewer{UserID: s.userID}, bookingID).
			Return(&queries.BookingView{ID: bookingID, CustomerID: s.userID, Status: "PENDING", WorkshopTitle: "Go"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+bookingID.String(), nil, customerToken)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(bookingID, body.ID)
		s.Equal("Go", body.WorkshopTitle)
	})

	s.Run("not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), bookingID).Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+bookingID.String(), nil, customerToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestListMine() {
	s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), s.userID).Return([]*queries.BookingView{
		{ID: uuid.New(), Status: "PENDING", CreatedAt: time.Now()},
		{ID: uuid.New(), Status: "CANCELED", CreatedAt: time.Now()},
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/my-bookings", nil, customerToken)

	var body []resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Len(body, 2)
}

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("status filter and paging are parsed", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.BookingFilter{
			Statuses: []booking.Status{booking.StatusCanceled},
			Page:     2,
			Limit:    5,
		}).Return(&queries.BookingPage{Items: []*queries.BookingView{}, Total: 6, Page: 2, Limit: 5, TotalPages: 2}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings?status=canceled&page=2&limit=5", nil, operatorToken)

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(6), body.Pagination.Total)
		s.Equal(2, body.Pagination.TotalPages)
		s.NotNil(body.Data)
	})

	s.Run("limit above the cap is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings?limit=1000", nil, operatorToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}
