package export

import (
	"fmt"
	"io"
	"time"

	"dreamshoots/pkg/model"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Bookings"

var columnWidths = []float64{20, 16, 12, 10, 20, 18, 14, 11, 40, 20}

// WriteXLSX writes the same report as WriteCSV as a single-sheet workbook.
func WriteXLSX(w io.Writer, bookings []*model.Booking, loc *time.Location) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("error naming sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("error creating header style: %w", err)
	}

	for i, header := range Header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellStr(SheetName, cell, header); err != nil {
			return fmt.Errorf("error writing header: %w", err)
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(Header), 1)
	if err := f.SetCellStyle(SheetName, "A1", lastHeader, headerStyle); err != nil {
		return fmt.Errorf("error styling header: %w", err)
	}

	for r, b := range bookings {
		for c, value := range Row(b, loc) {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			// SetCellStr keeps phone numbers and dates as text.
			if err := f.SetCellStr(SheetName, cell, value); err != nil {
				return fmt.Errorf("error writing row %d: %w", r+1, err)
			}
		}
	}

	for i, width := range columnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("error sizing column %s: %w", col, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("error writing workbook: %w", err)
	}
	return nil
}
