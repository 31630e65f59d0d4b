package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the result sheet looked up before falling back to the first sheet.
const DefaultSheetName = "STD VALORACIÓN Y UD"

// Workbook is an open spreadsheet file.
type Workbook struct {
	f        *excelize.File
	date1904 bool
}

// Open opens an xlsx/xlsm workbook for reading.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return newWorkbook(f), nil
}

func newWorkbook(f *excelize.File) *Workbook {
	wb := &Workbook{f: f}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}
	return wb
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// Sheets returns the sheet names in workbook order.
func (w *Workbook) Sheets() []string {
	return w.f.GetSheetList()
}

// SelectSheet returns preferred when the workbook has it, otherwise the first sheet.
func (w *Workbook) SelectSheet(preferred string) (string, error) {
	sheets := w.f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}
	if preferred != "" {
		for _, name := range sheets {
			if name == preferred {
				return name, nil
			}
		}
	}
	return sheets[0], nil
}

// Grid loads a sheet as a zero-indexed cell grid.
func (w *Workbook) Grid(sheetName string) (*SheetGrid, error) {
	return newSheetGrid(w.f, sheetName, w.date1904)
}
