package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ColumnData is a numeric column read from a sheet.
type ColumnData struct {
	// Name is the header text, empty when the column starts with a number.
	Name string
	// Ref is the range the values were read from.
	Ref string
	// Values holds one entry per row, nil for blanks and text.
	Values []*float64
}

// ReadColumn reads column col (1-based) of a sheet. A non-numeric first cell is
// taken as the header; values run to the last non-empty row.
func ReadColumn(f *excelize.File, sheetName string, col int) (*ColumnData, error) {
	if col < 1 {
		return nil, fmt.Errorf("column %d out of range", col)
	}
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	first, last := findColumnBounds(rows, col-1)
	if first < 0 {
		return &ColumnData{}, nil
	}

	data := &ColumnData{}
	start := first
	if parseNumber(rows[first][col-1]) == nil {
		data.Name = strings.TrimSpace(rows[first][col-1])
		start++
	}

	for rowIdx := start; rowIdx <= last; rowIdx++ {
		var cell string
		if col-1 < len(rows[rowIdx]) {
			cell = rows[rowIdx][col-1]
		}
		data.Values = append(data.Values, parseNumber(cell))
	}

	if start <= last {
		startCell, _ := excelize.CoordinatesToCellName(col, start+1)
		endCell, _ := excelize.CoordinatesToCellName(col, last+1)
		data.Ref = fmt.Sprintf("'%s'!%s:%s", strings.ReplaceAll(sheetName, "'", "''"), startCell, endCell)
	}
	return data, nil
}

// NumericColumns returns the 1-based indexes of columns holding at least one number.
func NumericColumns(f *excelize.File, sheetName string) ([]int, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	maxCol := 0
	for _, row := range rows {
		for colIdx, cell := range row {
			if parseNumber(cell) != nil {
				seen[colIdx] = true
				maxCol = max(maxCol, colIdx+1)
			}
		}
	}

	var result []int
	for colIdx := 0; colIdx < maxCol; colIdx++ {
		if seen[colIdx] {
			result = append(result, colIdx+1)
		}
	}
	return result, nil
}

// findColumnBounds finds the first and last row index with a non-empty cell in colIdx.
func findColumnBounds(rows [][]string, colIdx int) (first, last int) {
	first, last = -1, -1
	for rowIdx, row := range rows {
		if colIdx >= len(row) || strings.TrimSpace(row[colIdx]) == "" {
			continue
		}
		if first < 0 {
			first = rowIdx
		}
		last = rowIdx
	}
	return
}
