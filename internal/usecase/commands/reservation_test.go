//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"workshop-booking/internal/domain/booking"
	"workshop-booking/internal/infra"
	"workshop-booking/internal/pkg/clock"
	"workshop-booking/internal/pkg/errs"
	"workshop-booking/internal/pkg/pgconv"
	"workshop-booking/internal/usecase/commands"
	"workshop-booking/internal/usecase/shared"
	sharedmock "workshop-booking/tests/mock/shared"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type ReservationCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	slots    *sharedmock.MockCapacityLedger
	bookings *sharedmock.MockBookingLedger
	outbox   *sharedmock.MockOutboxRepository
	reads    *sharedmock.MockCommandReads
	sut      commands.ReservationCommands

	customerID uuid.UUID
	workshopID uuid.UUID
	slotID     uuid.UUID
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.slots = sharedmock.NewMockCapacityLedger(s.ctrl)
	s.bookings = sharedmock.NewMockBookingLedger(s.ctrl)
	s.outbox = sharedmock.NewMockOutboxRepository(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)

	s.tx.EXPECT().Slots().Return(s.slots).AnyTimes()
	s.tx.EXPECT().Bookings().Return(s.bookings).AnyTimes()
	s.tx.EXPECT().Outbox().Return(s.outbox).AnyTimes()
	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()

	s.sut = commands.NewReservationCommands(s.uow, clock.NewMockClock(fixedNow), validator.New(validator.WithRequiredStructEnabled()))

	s.customerID = uuid.New()
	s.workshopID = uuid.New()
	s.slotID = uuid.New()
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

// expectTx runs the callback against the mocked Tx exactly once.
func (s *ReservationCommandsTestSuite) expectTx() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		})
}

func (s *ReservationCommandsTestSuite) openSlot(remaining int) *shared.SlotSnapshot {
	return &shared.SlotSnapshot{
		ID:             s.slotID,
		WorkshopID:     s.workshopID,
		RemainingSeats: remaining,
		Capacity:       10,
	}
}

func (s *ReservationCommandsTestSuite) existingBooking(owner uuid.UUID, status booking.Status) *booking.Booking {
	return booking.Reconstruct(uuid.New(), owner, s.workshopID, s.slotID, status, fixedNow, fixedNow, nil)
}

func (s *ReservationCommandsTestSuite) reserveCmd() commands.ReserveCommand {
	return commands.ReserveCommand{CustomerID: s.customerID, WorkshopID: s.workshopID, SlotID: s.slotID}
}

// =============================================================================
// Reserve
// =============================================================================

func (s *ReservationCommandsTestSuite) TestReserve_Success() {
	bookingID := uuid.New()
	s.expectTx()

	gomock.InOrder(
		s.slots.EXPECT().LockSlot(gomock.Any(), s.slotID).Return(s.openSlot(1), nil),
		s.bookings.EXPECT().FindActive(gomock.Any(), s.customerID, s.slotID).Return(nil, nil),
		s.slots.EXPECT().TryDecrement(gomock.Any(), s.slotID).Return(true, nil),
		s.bookings.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b *booking.Booking) (uuid.UUID, error) {
				s.Equal(booking.StatusPending, b.Status())
				s.Equal(s.customerID, b.CustomerID())
				return bookingID, nil
			}),
		s.outbox.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev shared.OutboxEvent) error {
				s.Equal(shared.TopicBookingReserved, ev.Topic)
				s.Equal(bookingID, ev.AggregateID)

				var payload shared.BookingEvent
				s.Require().NoError(json.Unmarshal(ev.Payload, &payload))
				s.Equal(s.slotID, payload.SlotID)
				s.Equal(booking.StatusPending, payload.Status)
				return nil
			}),
	)

	id, err := s.sut.Reserve(s.ctx, s.reserveCmd())

	s.Require().NoError(err)
	s.Equal(bookingID, id)
}

func (s *ReservationCommandsTestSuite) TestReserve_SlotMissing() {
	s.expectTx()
	s.slots.EXPECT().LockSlot(gomock.Any(), s.slotID).
		Return(nil, infra.WrapRepoErr("slot not found", nil, infra.KindNotFound))

	_, err := s.sut.Reserve(s.ctx, s.reserveCmd())

	s.ErrorIs(err, commands.ErrSlotNotFound)
}

func (s *ReservationCommandsTestSuite) TestReserve_SoftDeletedIsNotFound() {
	deletedAt := fixedNow.Add(-time.Hour)

	testCases := []struct {
		name   string
		mutate func(*shared.SlotSnapshot)
	}{
		{name: "slot deleted", mutate: func(snap *shared.SlotSnapshot) { snap.SlotDeletedAt = &deletedAt }},
		{name: "workshop deleted", mutate: func(snap *shared.SlotSnapshot) { snap.WorkshopDeletedAt = &deletedAt }},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			snap := s.openSlot(5)
			tc.mutate(snap)

			s.expectTx()
			s.slots.EXPECT().LockSlot(gomock.Any(), s.slotID).Return(snap, nil)

			_, err := s.sut.Reserve(s.ctx, s.reserveCmd())

			s.ErrorIs(err, commands.ErrSlotNotFound)
		})
	}
}

func (s *ReservationCommandsTestSuite) TestReserve_DuplicateIsCheckedBeforeCapacity() {
	s.expectTx()
	s.slots.EXPECT().LockSlot(gomock.Any(), s.slotID).Return(s.openSlot(0), nil)
	s.bookings.EXPECT().FindActive(gomock.Any(), s.customerID, s.slotID).
		Return(s.existingBooking(s.customerID, booking.StatusConfirmed), nil)

	_, err := s.sut.Reserve(s.ctx, s.reserveCmd())

	s.ErrorIs(err, commands.ErrDuplicateBooking)
}

func (s *ReservationCommandsTestSuite) TestReserve_SlotMismatch() {
	cmd := s.reserveCmd()
	cmd.WorkshopID = uuid.New()

	s.expectTx()
	s.slots.EXPECT().LockSlot(gomock.Any(), s.slotID).Return(s.openSlot(3), nil)
	s.bookings.EXPECT().FindActive(gomock.Any(), s.customerID, s.slotID).Return(nil, nil)

	_, err := s.sut.Reserve(s.ctx, cmd)

	s.ErrorIs(err, commands.ErrSlotMismatch)
}

func (s *ReservationCommandsTestSuite) TestReserve_SlotFull() {
	s.expectTx()
	s.slots.EXPECT().LockSlot(gomock.Any(), s.slotID).Return(s.openSlot(0), nil)
	s.bookings.EXPECT().FindActive(gomock.Any(), s.customerID, s.slotID).Return(nil, nil)
	s.slots.EXPECT().TryDecrement(gomock.Any(), s.slotID).Return(false, nil)

	_, err := s.sut.Reserve(s.ctx, s.reserveCmd())

	s.ErrorIs(err, commands.ErrSlotFull)
}

func (s *ReservationCommandsTestSuite) TestReserve_UniqueViolationMapsToDuplicate() {
	s.expectTx()
	s.slots.EXPECT().LockSlot(gomock.Any(), s.slotID).Return(s.openSlot(2), nil)
	s.bookings.EXPECT().FindActive(gomock.Any(), s.customerID, s.slotID).Return(nil, nil)
	s.slots.EXPECT().TryDecrement(gomock.Any(), s.slotID).Return(true, nil)
	s.bookings.EXPECT().Insert(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, infra.WrapRepoErr("failed to insert booking", &pgconn.PgError{Code: pgconv.CodeUniqueViolation}))

	_, err := s.sut.Reserve(s.ctx, s.reserveCmd())

	s.ErrorIs(err, commands.ErrDuplicateBooking)
}

func (s *ReservationCommandsTestSuite) TestReserve_TransientFailureSurfaces() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		Return(errs.Mark(&pgconn.PgError{Code: pgconv.CodeSerializationFailure}, shared.ErrTransient))

	_, err := s.sut.Reserve(s.ctx, s.reserveCmd())

	s.Require().Error(err)
	s.True(errs.Is(err, shared.ErrTransient))
}

func (s *ReservationCommandsTestSuite) TestReserve_RejectsMissingIdentifiers() {
	_, err := s.sut.Reserve(s.ctx, commands.ReserveCommand{CustomerID: s.customerID})

	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrDomainValidation))
}

// =============================================================================
// Cancel
// =============================================================================

func (s *ReservationCommandsTestSuite) TestCancel_Success() {
	current := s.existingBooking(s.customerID, booking.StatusPending)
	s.reads.EXPECT().BookingByID(gomock.Any(), current.ID()).Return(current, nil)
	s.expectTx()

	gomock.InOrder(
		s.slots.EXPECT().LockSlot(gomock.Any(), s.slotID).Return(s.openSlot(0), nil),
		s.bookings.EXPECT().GetForUpdate(gomock.Any(), current.ID()).
			Return(s.existingBooking(s.customerID, booking.StatusPending), nil),
		s.bookings.EXPECT().SetStatus(gomock.Any(), current.ID(), booking.StatusCanceled).Return(booking.StatusPending, nil),
		s.slots.EXPECT().Increment(gomock.Any(), s.slotID).Return(nil),
		s.outbox.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev shared.OutboxEvent) error {
				s.Equal(shared.TopicBookingCanceled, ev.Topic)
				return nil
			}),
	)

	err := s.sut.Cancel(s.ctx, commands.CancelCommand{BookingID: current.ID(), CallerID: s.customerID})

	s.NoError(err)
}

func (s *ReservationCommandsTestSuite) TestCancel_NotFound() {
	id := uuid.New()
	s.reads.EXPECT().BookingByID(gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

	err := s.sut.Cancel(s.ctx, commands.CancelCommand{BookingID: id, CallerID: s.customerID})

	s.ErrorIs(err, commands.ErrBookingNotFound)
}

func (s *ReservationCommandsTestSuite) TestCancel_NotOwner() {
	current := s.existingBooking(uuid.New(), booking.StatusPending)
	s.reads.EXPECT().BookingByID(gomock.Any(), current.ID()).Return(current, nil)

	err := s.sut.Cancel(s.ctx, commands.CancelCommand{BookingID: current.ID(), CallerID: s.customerID})

	s.ErrorIs(err, commands.ErrNotOwner)
}

func (s *ReservationCommandsTestSuite) TestCancel_OperatorMayCancelAnyBooking() {
	owner := uuid.New()
	current := s.existingBooking(owner, booking.StatusConfirmed)
	s.reads.EXPECT().BookingByID(gomock.Any(), current.ID()).Return(current, nil)
	s.expectTx()

	s.slots.EXPECT().LockSlot(gomock.Any(), s.slotID).Return(s.openSlot(0), nil)
	s.bookings.EXPECT().GetForUpdate(gomock.Any(), current.ID()).Return(s.existingBooking(owner, booking.StatusConfirmed), nil)
	s.bookings.EXPECT().SetStatus(gomock.Any(), current.ID(), booking.StatusCanceled).Return(booking.StatusConfirmed, nil)
	s.slots.EXPECT().Increment(gomock.Any(), s.slotID).Return(nil)
	s.outbox.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	err := s.sut.Cancel(s.ctx, commands.CancelCommand{BookingID: current.ID(), CallerID: uuid.New(), Operator: true})

	s.NoError(err)
}

func (s *ReservationCommandsTestSuite) TestCancel_AlreadyCanceledSkipsTransaction() {
	current := s.existingBooking(s.customerID, booking.StatusCanceled)
	s.reads.EXPECT().BookingByID(gomock.Any(), current.ID()).Return(current, nil)

	err := s.sut.Cancel(s.ctx, commands.CancelCommand{BookingID: current.ID(), CallerID: s.customerID})

	s.ErrorIs(err, commands.ErrAlreadyCanceled)
}

func (s *ReservationCommandsTestSuite) TestCancel_LosingConcurrentCancelDoesNotReleaseTwice() {
	current := s.existingBooking(s.customerID, booking.StatusPending)
	s.reads.EXPECT().BookingByID(gomock.Any(), current.ID()).Return(current, nil)
	s.expectTx()

	// another request canceled the booking while this one waited for the slot lock
	s.slots.EXPECT().LockSlot(gomock.Any(), s.slotID).Return(s.openSlot(1), nil)
	s.bookings.EXPECT().GetForUpdate(gomock.Any(), current.ID()).
		Return(s.existingBooking(s.customerID, booking.StatusCanceled), nil)

	err := s.sut.Cancel(s.ctx, commands.CancelCommand{BookingID: current.ID(), CallerID: s.customerID})

	s.ErrorIs(err, commands.ErrAlreadyCanceled)
}

// =============================================================================
// AdminSetStatus
// =============================================================================

func (s *ReservationCommandsTestSuite) TestAdminSetStatus_RequiresOperator() {
	_, err := s.sut.AdminSetStatus(s.ctx, commands.SetStatusCommand{BookingID: uuid.New(), Status: "CONFIRMED"})

	s.ErrorIs(err, commands.ErrForbidden)
}

func (s *ReservationCommandsTestSuite) TestAdminSetStatus_InvalidStatus() {
	for _, raw := range []string{"", "DONE", "REFUNDED"} {
		_, err := s.sut.AdminSetStatus(s.ctx, commands.SetStatusCommand{BookingID: uuid.New(), Status: raw, Operator: true})

		s.Require().Error(err, raw)
		s.True(errs.Is(err, commands.ErrInvalidStatus), raw)
	}
}

func (s *ReservationCommandsTestSuite) TestAdminSetStatus_ConfirmKeepsCapacity() {
	current := s.existingBooking(s.customerID, booking.StatusPending)
	s.reads.EXPECT().BookingByID(gomock.Any(), current.ID()).Return(current, nil)
	s.expectTx()

	s.bookings.EXPECT().GetForUpdate(gomock.Any(), current.ID()).Return(s.existingBooking(s.customerID, booking.StatusPending), nil)
	s.bookings.EXPECT().SetStatus(gomock.Any(), current.ID(), booking.StatusConfirmed).Return(booking.StatusPending, nil)
	s.outbox.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ev shared.OutboxEvent) error {
			s.Equal(shared.TopicBookingStatusChanged, ev.Topic)
			return nil
		})

	prev, err := s.sut.AdminSetStatus(s.ctx, commands.SetStatusCommand{BookingID: current.ID(), Status: "confirmed", Operator: true})

	s.Require().NoError(err)
	s.Equal(booking.StatusPending, prev)
}

func (s *ReservationCommandsTestSuite) TestAdminSetStatus_CancelReleasesSeat() {
	current := s.existingBooking(s.customerID, booking.StatusConfirmed)
	s.reads.EXPECT().BookingByID(gomock.Any(), current.ID()).Return(current, nil)
	s.expectTx()

	gomock.InOrder(
		s.slots.EXPECT().LockSlot(gomock.Any(), s.slotID).Return(s.openSlot(0), nil),
		s.bookings.EXPECT().GetForUpdate(gomock.Any(), current.ID()).Return(s.existingBooking(s.customerID, booking.StatusConfirmed), nil),
		s.bookings.EXPECT().SetStatus(gomock.Any(), current.ID(), booking.StatusCanceled).Return(booking.StatusConfirmed, nil),
		s.slots.EXPECT().Increment(gomock.Any(), s.slotID).Return(nil),
		s.outbox.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil),
	)

	prev, err := s.sut.AdminSetStatus(s.ctx, commands.SetStatusCommand{BookingID: current.ID(), Status: "CANCELED", Operator: true})

	s.Require().NoError(err)
	s.Equal(booking.StatusConfirmed, prev)
}

func (s *ReservationCommandsTestSuite) TestAdminSetStatus_SameStateIsNoop() {
	current := s.existingBooking(s.customerID, booking.StatusConfirmed)
	s.reads.EXPECT().BookingByID(gomock.Any(), current.ID()).Return(current, nil)
	s.expectTx()

	s.bookings.EXPECT().GetForUpdate(gomock.Any(), current.ID()).Return(s.existingBooking(s.customerID, booking.StatusConfirmed), nil)

	prev, err := s.sut.AdminSetStatus(s.ctx, commands.SetStatusCommand{BookingID: current.ID(), Status: "CONFIRMED", Operator: true})

	s.Require().NoError(err)
	s.Equal(booking.StatusConfirmed, prev)
}

func (s *ReservationCommandsTestSuite) TestAdminSetStatus_FromCanceled() {
	for _, target := range []string{"PENDING", "CONFIRMED", "CANCELED"} {
		s.Run(target, func() {
			current := s.existingBooking(s.customerID, booking.StatusCanceled)
			s.reads.EXPECT().BookingByID(gomock.Any(), current.ID()).Return(current, nil)
			s.expectTx()

			if target == "CANCELED" {
				s.slots.EXPECT().LockSlot(gomock.Any(), s.slotID).Return(s.openSlot(1), nil)
			}
			s.bookings.EXPECT().GetForUpdate(gomock.Any(), current.ID()).Return(s.existingBooking(s.customerID, booking.StatusCanceled), nil)

			prev, err := s.sut.AdminSetStatus(s.ctx, commands.SetStatusCommand{BookingID: current.ID(), Status: target, Operator: true})

			s.ErrorIs(err, commands.ErrAlreadyCanceled)
			s.Equal(booking.StatusCanceled, prev)
		})
	}
}

func (s *ReservationCommandsTestSuite) TestAdminSetStatus_ConfirmedBackToPendingRejected() {
	current := s.existingBooking(s.customerID, booking.StatusConfirmed)
	s.reads.EXPECT().BookingByID(gomock.Any(), current.ID()).Return(current, nil)
	s.expectTx()

	s.bookings.EXPECT().GetForUpdate(gomock.Any(), current.ID()).Return(s.existingBooking(s.customerID, booking.StatusConfirmed), nil)

	_, err := s.sut.AdminSetStatus(s.ctx, commands.SetStatusCommand{BookingID: current.ID(), Status: "PENDING", Operator: true})

	s.ErrorIs(err, commands.ErrInvalidTransition)
}
