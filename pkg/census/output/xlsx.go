// Package output writes aggregation results.
package output

import (
	"fmt"
	"io"

	"github.com/ukaji3/census-go/pkg/census/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the single summary sheet.
const SheetName = "Sheet1"

// Header is the summary sheet header row.
var Header = []interface{}{"Year", "Month", "Calculated Values"}

// Column widths of the summary sheet.
const (
	monthColWidth = 11
	valueColWidth = 17
)

// FileName returns the summary workbook file name for year.
func FileName(year int) string {
	return fmt.Sprintf("Hospital_Monthly_Sums_%d.xlsx", year)
}

// Build creates the summary workbook: a bold centered header followed by
// one row per result in the given order. The caller must Close the file.
func Build(results []models.MonthResult) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeSummary(f, results); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// WriteXLSX writes the summary workbook to w.
func WriteXLSX(w io.Writer, results []models.MonthResult) error {
	f, err := Build(results)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write summary workbook: %w", err)
	}
	return nil
}

// SaveXLSX writes the summary workbook to path.
func SaveXLSX(path string, results []models.MonthResult) error {
	f, err := Build(results)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save summary workbook %s: %w", path, err)
	}
	return nil
}

func writeSummary(f *excelize.File, results []models.MonthResult) error {
	header := Header
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}

	for i, r := range results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := r.Row()
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	endCell, err := excelize.CoordinatesToCellName(len(Header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", endCell, headerStyle); err != nil {
		return err
	}

	if err := f.SetColWidth(SheetName, "B", "B", monthColWidth); err != nil {
		return err
	}
	return f.SetColWidth(SheetName, "C", "C", valueColWidth)
}
