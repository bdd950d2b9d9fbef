package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingCustomer = errors.New("customer id is required")
	ErrMissingWorkshop = errors.New("workshop id is required")
	ErrMissingSlot     = errors.New("slot id is required")
)

type Booking struct {
	id         uuid.UUID
	customerID uuid.UUID
	workshopID uuid.UUID
	slotID     uuid.UUID
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
	deletedAt  *time.Time
}

// NewBooking builds a PENDING booking that has not been persisted yet (ID is assigned by storage).
func NewBooking(customerID, workshopID, slotID uuid.UUID, now time.Time) (*Booking, error) {
	if customerID == uuid.Nil {
		return nil, ErrMissingCustomer
	}
	if workshopID == uuid.Nil {
		return nil, ErrMissingWorkshop
	}
	if slotID == uuid.Nil {
		return nil, ErrMissingSlot
	}

	return &Booking{
		customerID: customerID,
		workshopID: workshopID,
		slotID:     slotID,
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func Reconstruct(
	id, customerID, workshopID, slotID uuid.UUID,
	status Status,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) *Booking {
	return &Booking{
		id:         id,
		customerID: customerID,
		workshopID: workshopID,
		slotID:     slotID,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		deletedAt:  deletedAt,
	}
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

func (b *Booking) IsCanceled() bool {
	return b.status == StatusCanceled
}

func (b *Booking) IsOwnedBy(customerID uuid.UUID) bool {
	return b.customerID == customerID
}

// Apply moves the booking to next and reports what storage has to do.
func (b *Booking) Apply(next Status, now time.Time) (Transition, error) {
	t, err := b.status.Plan(next)
	if err != nil {
		return Transition{}, err
	}
	if t.Changed {
		b.status = next
		b.updatedAt = now
	}
	return t, nil
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) CustomerID() uuid.UUID { return b.customerID }
func (b *Booking) WorkshopID() uuid.UUID { return b.workshopID }
func (b *Booking) SlotID() uuid.UUID     { return b.slotID }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
func (b *Booking) DeletedAt() *time.Time { return b.deletedAt }
