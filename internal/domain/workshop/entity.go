package workshop

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTitleTooShort       = errors.New("title must be at least 3 characters long")
	ErrTitleTooLong        = errors.New("title is too long (max 255 characters)")
	ErrDescriptionTooShort = errors.New("description must be at least 10 characters long")
	ErrInvalidCapacity     = errors.New("capacity must be a positive integer")
	ErrNoSlots             = errors.New("at least one time slot is required")
	ErrInvalidSlotLabel    = errors.New("slot time must be in 'H:MM AM/PM' format")
	ErrMissingSchedule     = errors.New("scheduled date is required")
)

const (
	MinTitleLength       = 3
	MaxTitleLength       = 255
	MinDescriptionLength = 10
)

var slotLabelRegex = regexp.MustCompile(`^\d{1,2}:\d{2}\s(AM|PM)$`)

type Workshop struct {
	id          uuid.UUID
	title       string
	description string
	scheduledAt time.Time
	capacity    int
	slots       []*Slot
	deletedAt   *time.Time
	createdAt   time.Time
}

type SlotLabels struct {
	Start string
	End   string
}

func NewWorkshop(title, description string, scheduledAt time.Time, capacity int, labels []SlotLabels) (*Workshop, error) {
	title = strings.TrimSpace(title)
	switch {
	case len(title) < MinTitleLength:
		return nil, ErrTitleTooShort
	case len(title) > MaxTitleLength:
		return nil, ErrTitleTooLong
	}

	description = strings.TrimSpace(description)
	if len(description) < MinDescriptionLength {
		return nil, ErrDescriptionTooShort
	}
	if scheduledAt.IsZero() {
		return nil, ErrMissingSchedule
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if len(labels) == 0 {
		return nil, ErrNoSlots
	}

	w := &Workshop{
		id:          uuid.New(),
		title:       title,
		description: description,
		scheduledAt: scheduledAt,
		capacity:    capacity,
	}
	for _, l := range labels {
		s, err := NewSlot(w.id, w.capacity, l)
		if err != nil {
			return nil, err
		}
		w.slots = append(w.slots, s)
	}
	return w, nil
}

func ReconstructWorkshop(
	id uuid.UUID,
	title, description string,
	scheduledAt time.Time,
	capacity int,
	deletedAt *time.Time,
	createdAt time.Time,
) *Workshop {
	return &Workshop{
		id:          id,
		title:       title,
		description: description,
		scheduledAt: scheduledAt,
		capacity:    capacity,
		deletedAt:   deletedAt,
		createdAt:   createdAt,
	}
}

func (w *Workshop) IsDeleted() bool {
	return w.deletedAt != nil
}

func (w *Workshop) ID() uuid.UUID          { return w.id }
func (w *Workshop) Title() string          { return w.title }
func (w *Workshop) Description() string    { return w.description }
func (w *Workshop) ScheduledAt() time.Time { return w.scheduledAt }
func (w *Workshop) Capacity() int          { return w.capacity }
func (w *Workshop) Slots() []*Slot         { return w.slots }
func (w *Workshop) DeletedAt() *time.Time  { return w.deletedAt }
func (w *Workshop) CreatedAt() time.Time   { return w.createdAt }

// Slot is exclusively owned by its workshop; remaining never exceeds the workshop capacity.
type Slot struct {
	id         uuid.UUID
	workshopID uuid.UUID
	labels     SlotLabels
	remaining  int
}

func NewSlot(workshopID uuid.UUID, capacity int, labels SlotLabels) (*Slot, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	labels, err := NormalizeLabels(labels)
	if err != nil {
		return nil, err
	}
	return &Slot{
		id:         uuid.New(),
		workshopID: workshopID,
		labels:     labels,
		remaining:  capacity,
	}, nil
}

// NormalizeLabels trims and validates the human-readable start/end times.
func NormalizeLabels(labels SlotLabels) (SlotLabels, error) {
	labels.Start = strings.TrimSpace(labels.Start)
	labels.End = strings.TrimSpace(labels.End)
	if !slotLabelRegex.MatchString(labels.Start) || !slotLabelRegex.MatchString(labels.End) {
		return SlotLabels{}, ErrInvalidSlotLabel
	}
	return labels, nil
}

func (s *Slot) ID() uuid.UUID         { return s.id }
func (s *Slot) WorkshopID() uuid.UUID { return s.workshopID }
func (s *Slot) Labels() SlotLabels    { return s.labels }
func (s *Slot) Remaining() int        { return s.remaining }
