package shared

import (
	"context"
	"time"

	"workshop-booking/internal/domain/booking"
	"workshop-booking/internal/domain/workshop"
	"workshop-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTransient marks errors caused by storage contention that survived every retry.
var ErrTransient = errs.New("transient storage conflict")

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic.
	// Any error returned by fn rolls back every mutation made through tx.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Slots() CapacityLedger
	Bookings() BookingLedger
	Workshops() WorkshopRepository
	Outbox() OutboxRepository
}

type CommandReads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

// Minimal snapshot of a locked slot row joined with its workshop
type SlotSnapshot struct {
	ID                uuid.UUID
	WorkshopID        uuid.UUID
	RemainingSeats    int
	Capacity          int
	SlotDeletedAt     *time.Time
	WorkshopDeletedAt *time.Time
}

// IsBookable reports whether new reservations may target the slot.
func (s SlotSnapshot) IsBookable() bool {
	return s.SlotDeletedAt == nil && s.WorkshopDeletedAt == nil
}

// CapacityLedger owns remaining_seats. It has no commit boundary of its own.
type CapacityLedger interface {
	// LockSlot takes the row lock that serializes every seat mutation on the slot.
	LockSlot(ctx context.Context, slotID uuid.UUID) (*SlotSnapshot, error)
	// TryDecrement takes one seat; false means none was left and nothing changed.
	TryDecrement(ctx context.Context, slotID uuid.UUID) (bool, error)
	// Increment returns one seat, never exceeding the workshop capacity.
	Increment(ctx context.Context, slotID uuid.UUID) error
}

type BookingLedger interface {
	Insert(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	// FindActive returns nil, nil when the customer holds no active booking on the slot.
	FindActive(ctx context.Context, customerID, slotID uuid.UUID) (*booking.Booking, error)
	Get(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// SetStatus writes status and returns the status the row had before.
	SetStatus(ctx context.Context, id uuid.UUID, status booking.Status) (booking.Status, error)
	CountActiveBySlot(ctx context.Context, slotID uuid.UUID) (int, error)
}

type WorkshopRepository interface {
	Create(ctx context.Context, w *workshop.Workshop) error
	GetForUpdate(ctx context.Context, id uuid.UUID) (*workshop.Workshop, error)
	SetDeletedAt(ctx context.Context, id uuid.UUID, deletedAt *time.Time) error
	AddSlot(ctx context.Context, s *workshop.Slot) error
	UpdateSlotLabels(ctx context.Context, slotID uuid.UUID, labels workshop.SlotLabels) error
	SoftDeleteSlot(ctx context.Context, slotID uuid.UUID, at time.Time) error
}

type OutboxRepository interface {
	Append(ctx context.Context, event OutboxEvent) error
}
