package models

// AxisReport is the resolved state of one axis.
type AxisReport struct {
	// Config is the effective axis configuration.
	Config AxisConfig `json:"config"`
	// Extent is the data extent the axis was resolved from.
	Extent SeriesExtent `json:"extent"`
	// Extremes is the resolved range.
	Extremes ResolvedExtremes `json:"extremes"`
}

// ChartReport is the output of resolving a chart.
type ChartReport struct {
	// Name is the chart name.
	Name string `json:"name,omitempty"`
	// Source is the workbook and sheet a chart was read from, if any.
	Source string `json:"source,omitempty"`
	// Polar is true for polar charts.
	Polar bool `json:"polar"`
	// XAxis is the resolved x axis.
	XAxis AxisReport `json:"x_axis"`
	// YAxis is the resolved y axis.
	YAxis AxisReport `json:"y_axis"`
	// Series holds the classified points of every series.
	Series []Series `json:"series"`
}
