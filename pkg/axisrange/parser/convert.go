package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/axisrange-go/pkg/axisrange/models"
)

// ToChartSpec reads the series data referenced by src and returns a chart spec.
func ToChartSpec(f *excelize.File, src models.ChartSource) (models.ChartSpec, error) {
	spec := models.ChartSpec{
		Name:   src.Name,
		Polar:  src.Polar,
		Width:  float64(src.W),
		Height: float64(src.H),
		XAxis:  src.XAxis,
		YAxis:  src.YAxis,
	}
	if spec.Name == "" {
		spec.Name = src.Title
	}

	for i, ref := range src.Series {
		if ref.ValueRange == "" {
			continue
		}
		values, err := ReadRange(f, ref.ValueRange)
		if err != nil {
			return models.ChartSpec{}, fmt.Errorf("series %d values: %w", i+1, err)
		}

		var xs []*float64
		if ref.XRange != "" {
			xs, err = ReadRange(f, ref.XRange)
			if err != nil {
				return models.ChartSpec{}, fmt.Errorf("series %d x values: %w", i+1, err)
			}
		}

		name := ref.Name
		if name == "" && ref.NameRange != "" {
			if text, err := ReadCellText(f, ref.NameRange); err == nil {
				name = text
			}
		}
		if name == "" {
			name = fmt.Sprintf("Series %d", i+1)
		}

		spec.Series = append(spec.Series, models.SeriesSpec{Name: name, Data: values, X: xs})
	}

	return spec, nil
}

// ColumnsToChartSpec builds a chart spec from numeric sheet columns, one series per column.
func ColumnsToChartSpec(f *excelize.File, sheetName string, cols []int, polar bool) (models.ChartSpec, error) {
	spec := models.ChartSpec{Name: sheetName, Polar: polar}
	for _, col := range cols {
		data, err := ReadColumn(f, sheetName, col)
		if err != nil {
			return models.ChartSpec{}, err
		}
		name := data.Name
		if name == "" {
			name, _ = excelize.ColumnNumberToName(col)
		}
		spec.Series = append(spec.Series, models.SeriesSpec{Name: name, Data: data.Values})
	}
	return spec, nil
}
