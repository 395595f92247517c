package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellRange is a rectangular block of cells on one sheet.
type CellRange struct {
	Sheet string
	// R1, C1 is the top-left cell (1-based).
	R1, C1 int
	// R2, C2 is the bottom-right cell (1-based, inclusive).
	R2, C2 int
}

// ParseRangeReference parses a reference such as 'My Sheet'!$B$2:$B$7 or Sheet1!$A$1.
func ParseRangeReference(ref string) (CellRange, error) {
	ref = strings.TrimSpace(ref)
	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		return CellRange{}, fmt.Errorf("range %q has no sheet name", ref)
	}

	sheet := ref[:idx]
	if strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") && len(sheet) >= 2 {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}

	cells := strings.ReplaceAll(ref[idx+1:], "$", "")
	parts := strings.Split(cells, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return CellRange{}, fmt.Errorf("range %q is not a cell block", ref)
	}

	c1, r1, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return CellRange{}, err
	}
	c2, r2, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return CellRange{}, err
	}
	if r2 < r1 {
		r1, r2 = r2, r1
	}
	if c2 < c1 {
		c1, c2 = c2, c1
	}

	return CellRange{Sheet: sheet, R1: r1, C1: c1, R2: r2, C2: c2}, nil
}

// ReadRange reads the numeric values of a range reference in row-major order.
// Blank and non-numeric cells become nil.
func ReadRange(f *excelize.File, ref string) ([]*float64, error) {
	rng, err := ParseRangeReference(ref)
	if err != nil {
		return nil, err
	}

	var result []*float64
	for row := rng.R1; row <= rng.R2; row++ {
		for col := rng.C1; col <= rng.C2; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, err
			}
			raw, err := f.GetCellValue(rng.Sheet, cell, excelize.Options{RawCellValue: true})
			if err != nil {
				return nil, err
			}
			result = append(result, parseNumber(raw))
		}
	}

	return result, nil
}

// ReadCellText returns the text of the first cell of a reference.
func ReadCellText(f *excelize.File, ref string) (string, error) {
	rng, err := ParseRangeReference(ref)
	if err != nil {
		return "", err
	}
	cell, err := excelize.CoordinatesToCellName(rng.C1, rng.R1)
	if err != nil {
		return "", err
	}
	return f.GetCellValue(rng.Sheet, cell)
}

// parseNumber parses a cell value as a float, returning nil for blanks and text.
func parseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
