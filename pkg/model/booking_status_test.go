package model

import (
	"errors"
	"testing"
)

func TestParseBookingStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    BookingStatus
		wantErr bool
	}{
		{"pending", BookingStatusPending, false},
		{"confirmed", BookingStatusConfirmed, false},
		{"completed", BookingStatusCompleted, false},
		{"  confirmed ", BookingStatusConfirmed, false},
		{"cancelled", "", true},
		{"archived", "", true},
		{"", "", true},
		{"Pending", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBookingStatus(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidBookingStatus) {
					t.Fatalf("expected ErrInvalidBookingStatus, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusConfirmed, BookingStatusPending, true},
		{BookingStatusCompleted, BookingStatusPending, true},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusCompleted, BookingStatusConfirmed, false},
		{BookingStatusPending, BookingStatusPending, true},
		{BookingStatusCompleted, BookingStatusCompleted, true},
		{BookingStatusPending, BookingStatus("archived"), false},
		{BookingStatus("archived"), BookingStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestBookingStatuses(t *testing.T) {
	statuses := BookingStatuses()
	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}
	for _, s := range statuses {
		if !s.IsValid() {
			t.Errorf("status %q reported invalid", s)
		}
	}
}
