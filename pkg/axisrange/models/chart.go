package models

// SeriesSpec is the raw data of one series.
type SeriesSpec struct {
	// Name is the series display name.
	Name string `json:"name"`
	// Data holds the y values; JSON null marks missing data.
	Data []*float64 `json:"data"`
	// X holds explicit x values for linear x axes (scatter data). When empty
	// the point index is used.
	X []*float64 `json:"x,omitempty"`
}

// ChartSpec describes a chart whose axes should be resolved.
type ChartSpec struct {
	// Name is the chart name.
	Name string `json:"name,omitempty"`
	// Polar selects polar geometry.
	Polar bool `json:"polar,omitempty"`
	// Pane is the polar arc (ignored on cartesian charts).
	Pane *Pane `json:"pane,omitempty"`
	// Width is the plot width in pixels.
	Width float64 `json:"width,omitempty"`
	// Height is the plot height in pixels.
	Height float64 `json:"height,omitempty"`
	// XAxis holds the x (angular) axis options.
	XAxis AxisOptions `json:"x_axis"`
	// YAxis holds the y (radial) axis options.
	YAxis AxisOptions `json:"y_axis"`
	// Series lists the chart data.
	Series []SeriesSpec `json:"series"`
}
