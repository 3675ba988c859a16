package model

import (
	"errors"
	"strings"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
)

var ErrInvalidBookingStatus = errors.New("invalid booking status")

// allowedTransitions is the dashboard workflow: confirm, complete, or reset to pending.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusPending},
	BookingStatusCompleted: {BookingStatusPending},
}

func BookingStatuses() []BookingStatus {
	return []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted}
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(strings.TrimSpace(s))
	if !status.IsValid() {
		return "", ErrInvalidBookingStatus
	}
	return status, nil
}

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted:
		return true
	}
	return false
}

func (s BookingStatus) String() string {
	return string(s)
}

// CanTransition reports whether from may move to to. Staying in the same
// state is always allowed.
func CanTransition(from, to BookingStatus) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}
	if from == to {
		return true
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
