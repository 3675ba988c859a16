// Package query filters and summarizes booking listings for the admin dashboard.
package query

import (
	"strings"

	apperrors "dreamshoots/pkg/errors"
	"dreamshoots/pkg/model"
)

// StatusAll is the dashboard's "no status filter" value.
const StatusAll = "all"

// Filter holds optional predicates. A nil Status or empty PreferredDate
// matches every booking; supplied predicates are combined with AND.
type Filter struct {
	Status        *model.BookingStatus
	PreferredDate string
}

// ParseFilter builds a Filter from raw query parameters.
func ParseFilter(status, preferredDate string) (Filter, error) {
	var f Filter

	status = strings.TrimSpace(status)
	if status != "" && !strings.EqualFold(status, StatusAll) {
		parsed, err := model.ParseBookingStatus(status)
		if err != nil {
			return Filter{}, apperrors.Validation("Invalid status filter", map[string]any{
				"fields": []map[string]string{{
					"field":   "status",
					"message": "status must be one of: all, pending, confirmed, completed",
				}},
			})
		}
		f.Status = &parsed
	}

	f.PreferredDate = strings.TrimSpace(preferredDate)
	return f, nil
}

func (f Filter) IsEmpty() bool {
	return f.Status == nil && f.PreferredDate == ""
}

func (f Filter) Matches(b *model.Booking) bool {
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	if f.PreferredDate != "" && b.PreferredDate != f.PreferredDate {
		return false
	}
	return true
}

// Apply returns the bookings matching f, preserving input order.
func Apply(bookings []*model.Booking, f Filter) []*model.Booking {
	out := make([]*model.Booking, 0, len(bookings))
	for _, b := range bookings {
		if f.Matches(b) {
			out = append(out, b)
		}
	}
	return out
}

// Summarize counts bookings per status.
func Summarize(bookings []*model.Booking) model.BookingSummary {
	summary := model.BookingSummary{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case model.BookingStatusPending:
			summary.Pending++
		case model.BookingStatusConfirmed:
			summary.Confirmed++
		case model.BookingStatusCompleted:
			summary.Completed++
		}
	}
	return summary
}
