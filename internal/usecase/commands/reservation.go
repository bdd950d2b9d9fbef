package commands

import (
	"context"
	"log/slog"

	"workshop-booking/internal/domain/booking"
	"workshop-booking/internal/infra"
	"workshop-booking/internal/pkg/clock"
	"workshop-booking/internal/pkg/errs"
	"workshop-booking/internal/usecase/shared"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ReserveCommand struct {
	CustomerID uuid.UUID `validate:"required"`
	WorkshopID uuid.UUID `validate:"required"`
	SlotID     uuid.UUID `validate:"required"`
}

type CancelCommand struct {
	BookingID uuid.UUID `validate:"required"`
	CallerID  uuid.UUID `validate:"required"`
	// Operator callers may cancel bookings they do not own.
	Operator bool
}

type SetStatusCommand struct {
	BookingID uuid.UUID `validate:"required"`
	Status    string    `validate:"required"`
	Operator  bool
}

// ReservationCommands is the only writer of the capacity and booking ledgers.
type ReservationCommands interface {
	Reserve(ctx context.Context, cmd ReserveCommand) (uuid.UUID, error)
	Cancel(ctx context.Context, cmd CancelCommand) error
	AdminSetStatus(ctx context.Context, cmd SetStatusCommand) (booking.Status, error)
}

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	validate *validator.Validate
}

func NewReservationCommands(uow shared.UnitOfWork, clk clock.Clock, validate *validator.Validate) ReservationCommands {
	return &reservationCommandsImpl{
		uow:      uow,
		clock:    clk,
		validate: validate,
	}
}

func (r *reservationCommandsImpl) Reserve(ctx context.Context, cmd ReserveCommand) (uuid.UUID, error) {
	if err := r.validate.Struct(cmd); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	newBooking, err := booking.NewBooking(cmd.CustomerID, cmd.WorkshopID, cmd.SlotID, r.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var bookingID uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		slot, err := tx.Slots().LockSlot(ctx, cmd.SlotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return err
		}
		if !slot.IsBookable() {
			return ErrSlotNotFound
		}

		existing, err := tx.Bookings().FindActive(ctx, cmd.CustomerID, cmd.SlotID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrDuplicateBooking
		}

		if slot.WorkshopID != cmd.WorkshopID {
			return ErrSlotMismatch
		}

		ok, err := tx.Slots().TryDecrement(ctx, cmd.SlotID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrSlotFull
		}

		id, err := tx.Bookings().Insert(ctx, newBooking)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateBooking
			}
			return err
		}

		event, err := shared.NewBookingOutboxEvent(shared.TopicBookingReserved, shared.BookingEvent{
			BookingID:  id,
			CustomerID: cmd.CustomerID,
			WorkshopID: cmd.WorkshopID,
			SlotID:     cmd.SlotID,
			Status:     booking.StatusPending,
			OccurredAt: r.clock.Now(),
		})
		if err != nil {
			return err
		}
		if err := tx.Outbox().Append(ctx, event); err != nil {
			return err
		}

		bookingID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, r.translate(err)
	}

	slog.Info("booking reserved",
		"booking_id", bookingID.String(),
		"slot_id", cmd.SlotID.String(),
		"customer_id", cmd.CustomerID.String())

	return bookingID, nil
}

func (r *reservationCommandsImpl) Cancel(ctx context.Context, cmd CancelCommand) error {
	if err := r.validate.Struct(cmd); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	current, err := r.loadBooking(ctx, cmd.BookingID)
	if err != nil {
		return err
	}
	if !cmd.Operator && !current.IsOwnedBy(cmd.CallerID) {
		return ErrNotOwner
	}
	if current.IsCanceled() {
		return ErrAlreadyCanceled
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := r.applyStatus(ctx, tx, current.SlotID(), cmd.BookingID, booking.StatusCanceled, shared.TopicBookingCanceled)
		return err
	})
	if err != nil {
		return r.translate(err)
	}

	slog.Info("booking canceled",
		"booking_id", cmd.BookingID.String(),
		"caller_id", cmd.CallerID.String(),
		"operator", cmd.Operator)

	return nil
}

func (r *reservationCommandsImpl) AdminSetStatus(ctx context.Context, cmd SetStatusCommand) (booking.Status, error) {
	if !cmd.Operator {
		return "", ErrForbidden
	}
	if err := r.validate.Struct(cmd); err != nil {
		return "", errs.Mark(err, ErrInvalidStatus)
	}

	next, err := booking.ParseStatus(cmd.Status)
	if err != nil {
		return "", ErrInvalidStatus
	}

	current, err := r.loadBooking(ctx, cmd.BookingID)
	if err != nil {
		return "", err
	}

	var previous booking.Status
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		prev, err := r.applyStatus(ctx, tx, current.SlotID(), cmd.BookingID, next, shared.TopicBookingStatusChanged)
		previous = prev
		return err
	})
	if err != nil {
		if errs.Is(err, ErrAlreadyCanceled) {
			return booking.StatusCanceled, ErrAlreadyCanceled
		}
		return "", r.translate(err)
	}

	return previous, nil
}

// applyStatus locks slot then booking (the same order Reserve uses) and applies next.
// It returns the status the booking had before the call.
func (r *reservationCommandsImpl) applyStatus(
	ctx context.Context,
	tx shared.Tx,
	slotID, bookingID uuid.UUID,
	next booking.Status,
	topic string,
) (booking.Status, error) {
	if next == booking.StatusCanceled {
		if _, err := tx.Slots().LockSlot(ctx, slotID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return "", ErrSlotNotFound
			}
			return "", err
		}
	}

	locked, err := tx.Bookings().GetForUpdate(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrBookingNotFound
		}
		return "", err
	}

	transition, err := locked.Apply(next, r.clock.Now())
	if err != nil {
		return locked.Status(), mapDomainStatusErr(err)
	}
	if !transition.Changed {
		return transition.From, nil
	}

	previous, err := tx.Bookings().SetStatus(ctx, bookingID, next)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrBookingNotFound
		}
		return "", err
	}

	// the seat is owed back only if the row really held one
	if transition.ReleasesSeat && previous.IsActive() {
		if err := tx.Slots().Increment(ctx, slotID); err != nil {
			return "", err
		}
	}

	prev := previous
	event, err := shared.NewBookingOutboxEvent(topic, shared.BookingEvent{
		BookingID:      bookingID,
		CustomerID:     locked.CustomerID(),
		WorkshopID:     locked.WorkshopID(),
		SlotID:         locked.SlotID(),
		Status:         next,
		PreviousStatus: &prev,
		OccurredAt:     r.clock.Now(),
	})
	if err != nil {
		return "", err
	}
	if err := tx.Outbox().Append(ctx, event); err != nil {
		return "", err
	}

	return previous, nil
}

func (r *reservationCommandsImpl) loadBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, err := r.uow.CommandReads().BookingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return b, nil
}

func mapDomainStatusErr(err error) error {
	switch {
	case errs.Is(err, booking.ErrAlreadyCanceled):
		return ErrAlreadyCanceled
	case errs.Is(err, booking.ErrInvalidTransition):
		return ErrInvalidTransition
	case errs.Is(err, booking.ErrInvalidStatus):
		return ErrInvalidStatus
	default:
		return errs.Mark(err, ErrDomainValidation)
	}
}

// translate keeps use-case sentinels as they are and tags storage failures.
func (r *reservationCommandsImpl) translate(err error) error {
	switch {
	case isOutcome(err):
		return err
	case errs.Is(err, shared.ErrTransient):
		return err
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}

// outcomes are the sentinels callers act on; they pass through translation untouched.
var outcomes = []error{
	ErrSlotNotFound,
	ErrBookingNotFound,
	ErrDuplicateBooking,
	ErrSlotMismatch,
	ErrSlotFull,
	ErrNotOwner,
	ErrAlreadyCanceled,
	ErrInvalidStatus,
	ErrInvalidTransition,
	ErrSlotInUse,
	ErrWorkshopNotFound,
}

func isOutcome(err error) bool {
	return errs.IsAny(err, outcomes...)
}
