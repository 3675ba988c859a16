package export

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"time"

	"dreamshoots/pkg/model"
)

// WriteCSV writes the header and one row per booking. Every cell is quoted
// with embedded quotes doubled, and rows are separated by a single "\n"
// with no trailing newline, so output is byte-stable for a given input.
func WriteCSV(w io.Writer, bookings []*model.Booking, loc *time.Location) error {
	bw := bufio.NewWriter(w)

	if err := writeRecord(bw, Header); err != nil {
		return err
	}
	for _, b := range bookings {
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
		if err := writeRecord(bw, Row(b, loc)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// CSV renders the report into memory.
func CSV(bookings []*model.Booking, loc *time.Location) []byte {
	var buf bytes.Buffer
	_ = WriteCSV(&buf, bookings, loc)
	return buf.Bytes()
}

func writeRecord(w *bufio.Writer, fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(quote(field)); err != nil {
			return err
		}
	}
	return nil
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
