// Package export renders booking listings as downloadable reports.
package export

import (
	"fmt"
	"time"

	"dreamshoots/pkg/model"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	TimestampLayout = "2006-01-02 15:04:05"
	Placeholder     = "-"
)

var Header = []string{"Name", "Phone", "Date", "Time", "Location", "Event", "Package", "Status", "Notes", "Booked On"}

// Row returns the report cells for b. Empty optional fields become
// Placeholder and created_at is rendered in loc.
func Row(b *model.Booking, loc *time.Location) []string {
	if loc == nil {
		loc = time.UTC
	}
	return []string{
		b.Name,
		b.Phone,
		b.PreferredDate,
		b.PreferredTime,
		orPlaceholder(b.Location),
		b.EventType,
		orPlaceholder(b.SelectedPackage),
		string(b.Status),
		orPlaceholder(b.ImportantInfo),
		b.CreatedAt.In(loc).Format(TimestampLayout),
	}
}

// Filename names the attachment for a report generated at now.
func Filename(format string, now time.Time) string {
	return fmt.Sprintf("bookings_%s.%s", now.Format("2006-01-02"), format)
}

func ContentType(format string) string {
	if format == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
