package booking

import (
	"errors"
	"strings"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrAlreadyCanceled   = errors.New("booking is already canceled")
	ErrInvalidTransition = errors.New("invalid booking status transition")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCanceled  Status = "CANCELED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the booking still holds a seat.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// ParseStatus accepts the canonical upper-case names, case-insensitively.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// Transition describes what applying a status change does to storage.
type Transition struct {
	From Status
	To   Status
	// Changed is false for same-state requests, which must not write anything.
	Changed bool
	// ReleasesSeat is true exactly when an active booking becomes CANCELED.
	ReleasesSeat bool
}

// allowed lists every permitted change; CANCELED has no outgoing edge.
var allowed = map[Status]map[Status]bool{
	StatusPending: {
		StatusConfirmed: true,
		StatusCanceled:  true,
	},
	StatusConfirmed: {
		StatusCanceled: true,
	},
	StatusCanceled: {},
}

// Plan validates moving from s to next without mutating anything.
func (s Status) Plan(next Status) (Transition, error) {
	if !s.IsValid() || !next.IsValid() {
		return Transition{}, ErrInvalidStatus
	}

	if s == StatusCanceled {
		return Transition{}, ErrAlreadyCanceled
	}

	t := Transition{From: s, To: next}
	if s == next {
		return t, nil
	}

	if !allowed[s][next] {
		return Transition{}, ErrInvalidTransition
	}

	t.Changed = true
	t.ReleasesSeat = next == StatusCanceled
	return t, nil
}
