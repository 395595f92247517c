// Package models defines data structures for axis extremes resolution.
package models

// AxisType is the value scale of an axis.
type AxisType string

const (
	// AxisLinear is a continuous numeric axis.
	AxisLinear AxisType = "linear"
	// AxisCategory is a discrete axis where point i sits at value i.
	AxisCategory AxisType = "category"
)

// AxisOptions holds user supplied axis settings as read from a chart spec.
// Nil fields are unset and take the chart-dependent default.
type AxisOptions struct {
	// Min is the hard axis minimum.
	Min *float64 `json:"min,omitempty"`
	// Max is the hard axis maximum.
	Max *float64 `json:"max,omitempty"`
	// MinPadding is the fraction of the data span added below the data minimum.
	MinPadding *float64 `json:"min_padding,omitempty"`
	// MaxPadding is the fraction of the data span added above the data maximum.
	MaxPadding *float64 `json:"max_padding,omitempty"`
	// Reversed flips the translation direction.
	Reversed bool `json:"reversed,omitempty"`
	// Type is the axis scale (linear or category).
	Type AxisType `json:"type,omitempty"`
	// AutoConnect closes a circular axis into a full ring (default true on polar charts).
	AutoConnect *bool `json:"auto_connect,omitempty"`
}

// AxisConfig is the effective configuration of one axis.
type AxisConfig struct {
	// Name identifies the axis in errors and logs ("x", "y").
	Name string `json:"name,omitempty"`
	// ExplicitMin is the user minimum, nil when derived from data.
	ExplicitMin *float64 `json:"explicit_min,omitempty"`
	// ExplicitMax is the user maximum, nil when derived from data.
	ExplicitMax *float64 `json:"explicit_max,omitempty"`
	// MinPadding is a fraction in [0,1] of the base span.
	MinPadding float64 `json:"min_padding"`
	// MaxPadding is a fraction in [0,1] of the base span.
	MaxPadding float64 `json:"max_padding"`
	// Reversed flips the translation direction.
	Reversed bool `json:"reversed,omitempty"`
	// IsPolar is set for axes of a polar chart.
	IsPolar bool `json:"is_polar,omitempty"`
	// AutoConnect requests the wraparound unit on circular axes.
	AutoConnect bool `json:"auto_connect,omitempty"`
	// Circular is set for the angular axis of a polar chart.
	Circular bool `json:"circular,omitempty"`
	// Type is the axis scale.
	Type AxisType `json:"type,omitempty"`
	// Pane is the angular span the circular axis is drawn on.
	Pane *Pane `json:"pane,omitempty"`
}

// Pane describes the arc a polar chart occupies, in degrees clockwise from north.
type Pane struct {
	// StartAngle is where the angular axis begins.
	StartAngle float64 `json:"start_angle"`
	// EndAngle is where the angular axis ends. Nil means StartAngle + 360.
	EndAngle *float64 `json:"end_angle,omitempty"`
}
