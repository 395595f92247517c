package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// budgetRows is a small radar chart data set: categories in row 1, one series per row.
var budgetRows = [][]interface{}{
	{"", "Sales", "Marketing", "Development", "Support", "IT", "Admin"},
	{"Allocated Budget", 43000, 19000, 60000, 35000, 17000, 10000},
	{"Actual Spending", 50000, 39000, 42000, 31000, 26000, 14000},
}

// writeBudgetWorkbook saves a workbook with budgetRows and, when withChart is
// set, a radar chart over both series with a reversed value axis starting at -10.
func writeBudgetWorkbook(t *testing.T, withChart bool) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	for idx, row := range budgetRows {
		cell, err := excelize.CoordinatesToCellName(1, idx+1)
		if err != nil {
			t.Fatalf("Failed to build cell name: %v", err)
		}
		r := row
		if err := f.SetSheetRow(sheetName, cell, &r); err != nil {
			t.Fatalf("Failed to write row %d: %v", idx+1, err)
		}
	}

	if withChart {
		min, max := -10.0, 70000.0
		err := f.AddChart(sheetName, "I1", &excelize.Chart{
			Type: excelize.Radar,
			Series: []excelize.ChartSeries{
				{Name: "Sheet1!$A$2", Categories: "Sheet1!$B$1:$G$1", Values: "Sheet1!$B$2:$G$2"},
				{Name: "Sheet1!$A$3", Categories: "Sheet1!$B$1:$G$1", Values: "Sheet1!$B$3:$G$3"},
			},
			Title: []excelize.RichTextRun{{Text: "Budget vs Spending"}},
			YAxis: excelize.ChartAxis{Minimum: &min, Maximum: &max, ReverseOrder: true},
		})
		if err != nil {
			t.Fatalf("Failed to add chart: %v", err)
		}
	}

	tmpFile := filepath.Join(t.TempDir(), "budget.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return tmpFile
}
