// Package parser provides workbook access and cell parsing utilities.
package parser

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExcelWorkbook exposes an excelize workbook as ordered sheet names and
// untyped grids.
type ExcelWorkbook struct {
	f *excelize.File
}

// Open opens an xlsx file from disk.
func Open(path string) (*ExcelWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return &ExcelWorkbook{f: f}, nil
}

// OpenReader reads an xlsx workbook from r.
func OpenReader(r io.Reader) (*ExcelWorkbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	return &ExcelWorkbook{f: f}, nil
}

// FromFile wraps an already opened excelize file. The caller keeps
// ownership of f.
func FromFile(f *excelize.File) *ExcelWorkbook {
	return &ExcelWorkbook{f: f}
}

// SheetNames returns the sheet names in workbook order.
func (w *ExcelWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// Grid loads one sheet as a raw grid. Row 0 is data, not a header.
// Cell values are read unformatted so numeric cells keep their stored value.
func (w *ExcelWorkbook) Grid(sheet string) ([][]string, error) {
	rows, err := w.f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Close releases the underlying workbook.
func (w *ExcelWorkbook) Close() error {
	return w.f.Close()
}
