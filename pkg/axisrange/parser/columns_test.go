package parser

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadColumn(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "B2", "Score")
	f.SetCellValue(sheetName, "B3", 15)
	f.SetCellValue(sheetName, "B4", 20)
	f.SetCellValue(sheetName, "B6", -25)
	f.SetCellValue(sheetName, "C3", 1)

	data, err := ReadColumn(f, sheetName, 2)
	if err != nil {
		t.Fatalf("ReadColumn failed: %v", err)
	}
	if data.Name != "Score" {
		t.Errorf("Expected header 'Score', got %q", data.Name)
	}
	if data.Ref != "'Sheet1'!B3:B6" {
		t.Errorf("Expected ref 'Sheet1'!B3:B6, got %q", data.Ref)
	}
	if len(data.Values) != 4 {
		t.Fatalf("Expected 4 values, got %d", len(data.Values))
	}
	if data.Values[2] != nil {
		t.Errorf("Expected blank row to be nil, got %v", *data.Values[2])
	}
	if data.Values[3] == nil || *data.Values[3] != -25 {
		t.Errorf("Expected last value -25, got %v", data.Values[3])
	}

	headerless, err := ReadColumn(f, sheetName, 3)
	if err != nil {
		t.Fatalf("ReadColumn failed: %v", err)
	}
	if headerless.Name != "" || len(headerless.Values) != 1 {
		t.Errorf("Unexpected headerless column %+v", headerless)
	}

	empty, err := ReadColumn(f, sheetName, 9)
	if err != nil {
		t.Fatalf("ReadColumn failed: %v", err)
	}
	if len(empty.Values) != 0 {
		t.Errorf("Expected empty column, got %d values", len(empty.Values))
	}

	if _, err := ReadColumn(f, sheetName, 0); err == nil {
		t.Errorf("Expected error for column 0")
	}
}

func TestNumericColumns(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "label")
	f.SetCellValue(sheetName, "B1", "x")
	f.SetCellValue(sheetName, "B2", 3)
	f.SetCellValue(sheetName, "D5", 4.5)

	cols, err := NumericColumns(f, sheetName)
	if err != nil {
		t.Fatalf("NumericColumns failed: %v", err)
	}
	if len(cols) != 2 || cols[0] != 2 || cols[1] != 4 {
		t.Errorf("Expected [2 4], got %v", cols)
	}
}

func TestColumnsToChartSpec(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Temp")
	f.SetCellValue(sheetName, "A2", 12)
	f.SetCellValue(sheetName, "A3", 14)
	f.SetCellValue(sheetName, "B1", 7)

	spec, err := ColumnsToChartSpec(f, sheetName, []int{1, 2}, true)
	if err != nil {
		t.Fatalf("ColumnsToChartSpec failed: %v", err)
	}
	if !spec.Polar || spec.Name != sheetName {
		t.Errorf("Unexpected spec header %+v", spec)
	}
	if len(spec.Series) != 2 {
		t.Fatalf("Expected 2 series, got %d", len(spec.Series))
	}
	if spec.Series[0].Name != "Temp" || len(spec.Series[0].Data) != 2 {
		t.Errorf("Unexpected first series %+v", spec.Series[0])
	}
	if spec.Series[1].Name != "B" {
		t.Errorf("Expected column letter name 'B', got %q", spec.Series[1].Name)
	}
}
