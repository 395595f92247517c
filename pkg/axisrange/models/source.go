package models

// SeriesRef holds the workbook references of one chart series.
type SeriesRef struct {
	// Name is the literal series name, if stored inline.
	Name string `json:"name,omitempty"`
	// NameRange is the cell holding the series name.
	NameRange string `json:"name_range,omitempty"`
	// CategoryRange is the range of category labels.
	CategoryRange string `json:"category_range,omitempty"`
	// ValueRange is the range of series values.
	ValueRange string `json:"value_range"`
	// XRange is the range of x values of scatter series.
	XRange string `json:"x_range,omitempty"`
}

// ChartSource is a chart found in a workbook, before its data is read.
type ChartSource struct {
	// Sheet is the sheet the chart is anchored on.
	Sheet string `json:"sheet"`
	// Name is the drawing object name.
	Name string `json:"name"`
	// ChartType is the chart type (e.g., Radar, Line).
	ChartType string `json:"chart_type"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// Polar is true for radar charts.
	Polar bool `json:"polar"`
	// XAxis holds the category axis settings.
	XAxis AxisOptions `json:"x_axis"`
	// YAxis holds the value axis settings.
	YAxis AxisOptions `json:"y_axis"`
	// Series lists the series references.
	Series []SeriesRef `json:"series"`
	// W is the approximate frame width in pixels (0 if unknown).
	W int `json:"w,omitempty"`
	// H is the approximate frame height in pixels (0 if unknown).
	H int `json:"h,omitempty"`
}
