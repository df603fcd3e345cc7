// Package export renders the roster as an Excel workbook.
package export

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/aanand-mishra/student-roster/internal/types"
)

// SheetName is the name of the single worksheet in every export.
const SheetName = "Students"

// ErrEmptyRoster is returned when there is nothing to export.
var ErrEmptyRoster = errors.New("no student records to export")

var (
	headers = []any{"S.No", "Student Name", "Roll Number", "Standard/Class", "Mobile Number"}
	widths  = []float64{8, 20, 15, 15, 15}
)

// FileName returns the download name for an export taken at t,
// e.g. Student_Database_2024-06-01.xlsx.
func FileName(t time.Time) string {
	return fmt.Sprintf("Student_Database_%s.xlsx", t.Format(time.DateOnly))
}

// Workbook builds the export in memory. Row n+1 holds the n-th student in
// roster order, numbered from 1. The caller must Close the returned file.
func Workbook(students []types.Student) (*excelize.File, error) {
	if len(students) == 0 {
		return nil, ErrEmptyRoster
	}

	f := excelize.NewFile()
	if err := build(f, students); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func build(f *excelize.File, students []types.Student) error {
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return fmt.Errorf("export: header row: %w", err)
	}

	for i, s := range students {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("export: row %d: %w", i+1, err)
		}
		// Roll number and mobile stay strings so leading zeros survive.
		row := []any{i + 1, s.Name, s.RollNumber, s.Standard, s.Mobile}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("export: row %d: %w", i+1, err)
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, col, col, w); err != nil {
			return fmt.Errorf("export: column %s width: %w", col, err)
		}
	}

	return nil
}

// Write streams the .xlsx encoding of the roster to w.
func Write(w io.Writer, students []types.Student) error {
	f, err := Workbook(students)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}
