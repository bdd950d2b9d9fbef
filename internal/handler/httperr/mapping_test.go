//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"workshop-booking/internal/handler/httperr"
	"workshop-booking/internal/pkg/errs"
	"workshop-booking/internal/usecase/commands"
	"workshop-booking/internal/usecase/queries"
	"workshop-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{"duplicate booking", commands.ErrDuplicateBooking, http.StatusConflict},
		{"slot full", commands.ErrSlotFull, http.StatusConflict},
		{"slot mismatch", commands.ErrSlotMismatch, http.StatusBadRequest},
		{"slot missing", commands.ErrSlotNotFound, http.StatusNotFound},
		{"booking missing", commands.ErrBookingNotFound, http.StatusNotFound},
		{"not owner hides existence", commands.ErrNotOwner, http.StatusNotFound},
		{"forbidden", commands.ErrForbidden, http.StatusForbidden},
		{"invalid status", commands.ErrInvalidStatus, http.StatusBadRequest},
		{"invalid transition", commands.ErrInvalidTransition, http.StatusConflict},
		{"marked validation error", errs.Mark(errors.New("title too short"), commands.ErrDomainValidation), http.StatusBadRequest},
		{"transient after retries", errs.Mark(errors.New("40001"), shared.ErrTransient), http.StatusServiceUnavailable},
		{"view not found", queries.ErrBookingNotFound, http.StatusNotFound},
		{"wrapped sentinel", errs.Wrap(commands.ErrSlotFull, "reserve"), http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"database failure", errs.Mark(errors.New("conn reset"), commands.ErrDatabaseOperationFailed), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := httperr.StatusFor(tc.err)
			assert.Equal(t, tc.status, status)
			assert.NotEmpty(t, msg)
		})
	}
}
