package sheet

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"github.com/xuri/nfp"
)

// Grid is a zero-indexed, header-less view of one sheet.
// Cell returns nil for empty or out-of-range cells.
type Grid interface {
	Cell(row, col int) any
}

// Table is an in-memory Grid.
type Table [][]any

// Cell returns the value at row, col or nil.
func (t Table) Cell(row, col int) any {
	if row < 0 || row >= len(t) || col < 0 || col >= len(t[row]) {
		return nil
	}
	return t[row][col]
}

// cellKind classifies how a raw numeric value should be presented.
type cellKind int

const (
	kindPlain cellKind = iota
	kindClock
	kindElapsed
)

// SheetGrid reads typed cell values from one worksheet.
type SheetGrid struct {
	f        *excelize.File
	name     string
	rows     [][]string
	date1904 bool
	kinds    map[int]cellKind
}

// newSheetGrid loads the raw values of a sheet.
func newSheetGrid(f *excelize.File, sheetName string, date1904 bool) (*SheetGrid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	return &SheetGrid{
		f:        f,
		name:     sheetName,
		rows:     rows,
		date1904: date1904,
		kinds:    make(map[int]cellKind),
	}, nil
}

// Name returns the sheet name.
func (g *SheetGrid) Name() string {
	return g.name
}

// Cell returns the typed value at the zero-based row and column.
// Text cells stay strings even when they look numeric and boolean cells
// come back as bool. Cells with a date or time number format come back as
// time.Time, elapsed formats ([h]:mm:ss) as time.Duration.
func (g *SheetGrid) Cell(row, col int) any {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= len(g.rows[row]) {
		return nil
	}
	raw := g.rows[row][col]
	if raw == "" {
		return nil
	}

	cellName, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return nil
	}
	cellType, err := g.f.GetCellType(g.name, cellName)
	if err == nil {
		switch cellType {
		case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
			return raw
		case excelize.CellTypeBool:
			return raw == "1"
		}
	}

	v := parseValue(raw)
	serial, ok := Number(v)
	if !ok {
		return v
	}

	switch g.kindAt(cellName) {
	case kindClock:
		t, err := excelize.ExcelDateToTime(serial, g.date1904)
		if err != nil {
			return v
		}
		return t.Round(time.Millisecond)
	case kindElapsed:
		d := time.Duration(math.Round(serial * 24 * float64(time.Hour) / float64(time.Millisecond)))
		return d * time.Millisecond
	}
	return v
}

// kindAt resolves the number format of a cell, caching by style index.
func (g *SheetGrid) kindAt(cellName string) cellKind {
	styleID, err := g.f.GetCellStyle(g.name, cellName)
	if err != nil || styleID == 0 {
		return kindPlain
	}
	if k, ok := g.kinds[styleID]; ok {
		return k
	}

	k := kindPlain
	if style, err := g.f.GetStyle(styleID); err == nil && style != nil {
		if style.CustomNumFmt != nil {
			k = classifyNumFmt(*style.CustomNumFmt)
		} else {
			k = builtinNumFmtKind(style.NumFmt)
		}
	}
	g.kinds[styleID] = k
	return k
}

// builtinNumFmtKind classifies the built-in number format IDs.
func builtinNumFmtKind(id int) cellKind {
	switch {
	case id >= 14 && id <= 22, id == 45, id == 47:
		return kindClock
	case id == 46:
		return kindElapsed
	}
	return kindPlain
}

// classifyNumFmt inspects a custom number format code for date/time tokens.
func classifyNumFmt(code string) cellKind {
	p := nfp.NumberFormatParser()
	k := kindPlain
	for _, section := range p.Parse(code) {
		for _, token := range section.Items {
			switch token.TType {
			case nfp.TokenTypeElapsedDateTimes:
				return kindElapsed
			case nfp.TokenTypeDateTimes:
				k = kindClock
			}
		}
	}
	return k
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// CellName formats zero-based coordinates as an A1 reference for messages.
func CellName(row, col int) string {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return fmt.Sprintf("R%dC%d", row+1, col+1)
	}
	return name
}
