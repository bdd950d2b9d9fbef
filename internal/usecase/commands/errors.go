package commands

import (
	"workshop-booking/internal/pkg/errs"
)

var (
	ErrSlotNotFound            = errs.New("slot not found")
	ErrWorkshopNotFound        = errs.New("workshop not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrDuplicateBooking        = errs.New("customer already holds an active booking for this slot")
	ErrSlotMismatch            = errs.New("slot does not belong to the workshop")
	ErrSlotFull                = errs.New("slot is fully booked")
	ErrSlotInUse               = errs.New("slot has active bookings")
	ErrNotOwner                = errs.New("booking belongs to another customer")
	ErrForbidden               = errs.New("operator role required")
	ErrAlreadyCanceled         = errs.New("booking already canceled")
	ErrInvalidStatus           = errs.New("invalid booking status")
	ErrInvalidTransition       = errs.New("booking status transition not allowed")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)
