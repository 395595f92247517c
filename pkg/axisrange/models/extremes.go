package models

// SeriesExtent is the data range of every non-null value bound to an axis.
type SeriesExtent struct {
	// DataMin is the smallest value.
	DataMin float64 `json:"data_min"`
	// DataMax is the largest value.
	DataMax float64 `json:"data_max"`
	// Count is the number of values that contributed.
	Count int `json:"count"`
	// PointRange is the closest distance between two distinct values (0 if unknown).
	PointRange float64 `json:"point_range,omitempty"`
	// EvenlySpaced is true when every distinct value is PointRange apart.
	EvenlySpaced bool `json:"evenly_spaced,omitempty"`
}

// Empty reports whether no value contributed to the extent.
func (e SeriesExtent) Empty() bool {
	return e.Count == 0
}

// ResolvedExtremes is the effective numeric range of an axis.
type ResolvedExtremes struct {
	// Min is the lower bound.
	Min float64 `json:"min"`
	// Max is the upper bound, always greater than Min.
	Max float64 `json:"max"`
	// TranslationSlope is pixels per data unit.
	TranslationSlope float64 `json:"translation_slope"`
	// PlotLength is the pixel length the slope was computed for.
	PlotLength float64 `json:"plot_length"`
	// AutoConnected is set when the wraparound unit was appended.
	AutoConnected bool `json:"auto_connected,omitempty"`
	// Degenerate is set when a synthetic span replaced an empty or single-value range.
	Degenerate bool `json:"degenerate,omitempty"`
}
