package query

import (
	"testing"

	apperrors "dreamshoots/pkg/errors"
	"dreamshoots/pkg/model"
)

func fixture() []*model.Booking {
	return []*model.Booking{
		{ID: "1", Status: model.BookingStatusPending, PreferredDate: "2025-03-01"},
		{ID: "2", Status: model.BookingStatusConfirmed, PreferredDate: "2025-03-01"},
		{ID: "3", Status: model.BookingStatusConfirmed, PreferredDate: "2025-03-02"},
		{ID: "4", Status: model.BookingStatusCompleted, PreferredDate: "2025-03-01"},
		{ID: "5", Status: model.BookingStatusPending, PreferredDate: "2025-03-02"},
	}
}

func ids(bookings []*model.Booking) string {
	s := ""
	for _, b := range bookings {
		s += b.ID
	}
	return s
}

func TestApply(t *testing.T) {
	confirmed := model.BookingStatusConfirmed
	pending := model.BookingStatusPending
	completed := model.BookingStatusCompleted

	tests := []struct {
		name   string
		filter Filter
		want   string
	}{
		{"no predicates", Filter{}, "12345"},
		{"status only", Filter{Status: &confirmed}, "23"},
		{"date only", Filter{PreferredDate: "2025-03-01"}, "124"},
		{"status and date", Filter{Status: &confirmed, PreferredDate: "2025-03-01"}, "2"},
		{"status and date other day", Filter{Status: &pending, PreferredDate: "2025-03-02"}, "5"},
		{"conjunction with no match", Filter{Status: &completed, PreferredDate: "2025-03-02"}, ""},
		{"unknown date", Filter{PreferredDate: "2030-01-01"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ids(Apply(fixture(), tt.filter)); got != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApply_IsConjunctive(t *testing.T) {
	bookings := fixture()
	confirmed := model.BookingStatusConfirmed
	both := Apply(bookings, Filter{Status: &confirmed, PreferredDate: "2025-03-01"})
	byStatus := Apply(bookings, Filter{Status: &confirmed})
	byDate := Apply(bookings, Filter{PreferredDate: "2025-03-01"})

	if len(both) > len(byStatus) || len(both) > len(byDate) {
		t.Fatalf("combined filter returned more than either predicate alone")
	}
	for _, b := range both {
		if b.Status != confirmed || b.PreferredDate != "2025-03-01" {
			t.Errorf("booking %s does not satisfy both predicates", b.ID)
		}
	}
}

func TestSummarize(t *testing.T) {
	got := Summarize(fixture())
	want := model.BookingSummary{Pending: 2, Confirmed: 2, Completed: 1, Total: 5}
	if got != want {
		t.Errorf("Summarize() = %+v, want %+v", got, want)
	}

	if empty := Summarize(nil); empty != (model.BookingSummary{}) {
		t.Errorf("Summarize(nil) = %+v", empty)
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		date       string
		wantStatus string
		wantDate   string
		wantErr    bool
	}{
		{name: "empty", wantStatus: ""},
		{name: "all", status: "all", wantStatus: ""},
		{name: "ALL is case insensitive", status: "ALL", wantStatus: ""},
		{name: "pending", status: "pending", wantStatus: "pending"},
		{name: "date trimmed", date: " 2025-03-01 ", wantDate: "2025-03-01"},
		{name: "unknown status", status: "archived", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFilter(tt.status, tt.date)
			if tt.wantErr {
				if !apperrors.HasCode(err, apperrors.CodeValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			gotStatus := ""
			if f.Status != nil {
				gotStatus = string(*f.Status)
			}
			if gotStatus != tt.wantStatus {
				t.Errorf("status = %q, want %q", gotStatus, tt.wantStatus)
			}
			if f.PreferredDate != tt.wantDate {
				t.Errorf("date = %q, want %q", f.PreferredDate, tt.wantDate)
			}
		})
	}
}
