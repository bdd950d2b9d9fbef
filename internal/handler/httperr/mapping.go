package httperr

import (
	"net/http"

	"workshop-booking/internal/pkg/errs"
	"workshop-booking/internal/usecase/commands"
	"workshop-booking/internal/usecase/queries"
	"workshop-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type mapping struct {
	target  error
	status  int
	message string
}

// Order matters: the first matching sentinel wins.
var mappings = []mapping{
	{commands.ErrDuplicateBooking, http.StatusConflict, "You have already booked this time slot"},
	{commands.ErrSlotFull, http.StatusConflict, "No available seats for this time slot"},
	{commands.ErrSlotMismatch, http.StatusBadRequest, "Time slot does not belong to the specified workshop"},
	{commands.ErrSlotInUse, http.StatusConflict, "Time slot still has active bookings"},
	{commands.ErrSlotNotFound, http.StatusNotFound, "Time slot not found"},
	{commands.ErrWorkshopNotFound, http.StatusNotFound, "Workshop not found"},
	{commands.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	// same response as a missing booking
	{commands.ErrNotOwner, http.StatusNotFound, "Booking not found"},
	{commands.ErrForbidden, http.StatusForbidden, "Insufficient permissions"},
	{commands.ErrInvalidStatus, http.StatusBadRequest, "Status must be one of: PENDING, CONFIRMED, CANCELED"},
	{commands.ErrInvalidTransition, http.StatusConflict, "Booking status transition not allowed"},
	{commands.ErrDomainValidation, http.StatusBadRequest, "Validation failed"},
	{queries.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{queries.ErrSlotNotFound, http.StatusNotFound, "Time slot not found"},
	{queries.ErrWorkshopNotFound, http.StatusNotFound, "Workshop not found"},
	{shared.ErrTransient, http.StatusServiceUnavailable, "Service busy, please retry"},
}

// StatusFor maps a use-case error to its HTTP status and public message.
func StatusFor(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

func AbortWithUseCaseError(c *gin.Context, err error) {
	status, msg := StatusFor(err)
	var detail any
	if status == http.StatusBadRequest && errs.Is(err, commands.ErrDomainValidation) {
		detail = gin.H{"reason": err.Error()}
	}
	AbortWithError(c, status, err, msg, detail)
}
